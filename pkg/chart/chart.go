package chart

import (
	"fmt"
	"os"
	"path/filepath"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/TMCantwell/HPSO-image-sizes/pkg/fleet"
	"github.com/TMCantwell/HPSO-image-sizes/pkg/hpso"
	"github.com/TMCantwell/HPSO-image-sizes/pkg/timeline"
)

// Chart geometry and labels.
const (
	Width  = 8 * vg.Inch
	Height = 5 * vg.Inch

	XLabel = "year"
	YLabel = "storage requirements (PB)"

	FleetSeriesName  = "Total"
	FleetSeriesStyle = "k-"
)

// Series is one line on a chart.
type Series struct {
	Name     string
	Timeline timeline.Timeline
	Style    string
}

// SeriesFor collects the series a chart definition asks for.
func SeriesFor(def hpso.ChartDef, p *fleet.Projection) ([]Series, error) {
	series := make([]Series, 0, len(def.Programs)+1)
	for _, name := range def.Programs {
		r := p.Program(name)
		if r == nil {
			return nil, fmt.Errorf("chart %s: unknown program %q", def.File, name)
		}
		if r.Timeline == nil {
			return nil, fmt.Errorf("chart %s: program %s has no timeline", def.File, name)
		}
		series = append(series, Series{Name: r.Name, Timeline: *r.Timeline, Style: r.Style})
	}
	if def.Fleet {
		series = append(series, Series{Name: FleetSeriesName, Timeline: p.Fleet, Style: FleetSeriesStyle})
	}
	return series, nil
}

// Render draws series as a line chart and saves it as dir/def.File. The
// image format follows the file extension.
func Render(def hpso.ChartDef, series []Series, dir string) (string, error) {
	p := plot.New()
	p.Title.Text = def.Title
	p.X.Label.Text = XLabel
	p.Y.Label.Text = YLabel
	p.Legend.Top = true
	p.Legend.Left = true
	p.Add(plotter.NewGrid())

	for _, s := range series {
		st, err := ParseStyle(s.Style)
		if err != nil {
			return "", fmt.Errorf("chart %s, series %s: %w", def.File, s.Name, err)
		}

		pts := make(plotter.XYs, timeline.Years)
		for i, v := range s.Timeline {
			pts[i].X = float64(i)
			pts[i].Y = v
		}
		line, err := plotter.NewLine(pts)
		if err != nil {
			return "", fmt.Errorf("chart %s, series %s: %w", def.File, s.Name, err)
		}
		line.LineStyle.Color = st.Color
		line.LineStyle.Dashes = st.Dashes
		line.LineStyle.Width = vg.Points(1.5)

		p.Add(line)
		p.Legend.Add(s.Name, line)
	}

	p.X.Min = 0
	p.X.Max = timeline.Years - 1
	p.Y.Min = 0

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("creating chart directory: %w", err)
	}
	path := filepath.Join(dir, def.File)
	if err := p.Save(Width, Height, path); err != nil {
		return "", fmt.Errorf("saving chart %s: %w", path, err)
	}
	return path, nil
}

// RenderAll writes every chart in the catalog and returns the file paths.
func RenderAll(c *hpso.Catalog, p *fleet.Projection, dir string) ([]string, error) {
	paths := make([]string, 0, len(c.Charts))
	for _, def := range c.Charts {
		series, err := SeriesFor(def, p)
		if err != nil {
			return paths, err
		}
		path, err := Render(def, series, dir)
		if err != nil {
			return paths, err
		}
		paths = append(paths, path)
	}
	return paths, nil
}
