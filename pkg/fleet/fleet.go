package fleet

import (
	"fmt"

	"github.com/TMCantwell/HPSO-image-sizes/pkg/hpso"
	"github.com/TMCantwell/HPSO-image-sizes/pkg/storage"
	"github.com/TMCantwell/HPSO-image-sizes/pkg/timeline"
)

// Projection holds the computed storage of every program in a catalog and
// the fleet-wide timeline.
type Projection struct {
	Source    string           `yaml:"source" json:"source"`
	Programs  []storage.Result `yaml:"programs" json:"programs"`
	Cosmology *CosmologyResult `yaml:"cosmology,omitempty" json:"cosmology,omitempty"`

	// TotalStoragePB is the raw storage of all programs. Cosmology reuses
	// the image stack of its source program and is not added.
	TotalStoragePB float64           `yaml:"total_storage_pb" json:"total_storage_pb"`
	Fleet          timeline.Timeline `yaml:"fleet_timeline,flow" json:"fleet_timeline"`
	FleetPeakPB    float64           `yaml:"fleet_peak_pb" json:"fleet_peak_pb"`
	PeakYear       int               `yaml:"peak_year" json:"peak_year"`
	Projected      int               `yaml:"projected_programs" json:"projected_programs"`
}

// CosmologyResult is the derived Cosmology:33 scalar.
type CosmologyResult struct {
	Name      string  `yaml:"name" json:"name"`
	Source    string  `yaml:"source" json:"source"`
	StoragePB float64 `yaml:"storage_pb" json:"storage_pb"`
}

// Resolve computes every program in catalog order and sums the projected
// timelines. It stops at the first program that fails.
func Resolve(c *hpso.Catalog) (*Projection, error) {
	p := &Projection{
		Source:   c.Source,
		Programs: make([]storage.Result, 0, len(c.Programs)),
	}

	var timelines []timeline.Timeline
	for _, prog := range c.Programs {
		r, err := storage.Compute(prog)
		if err != nil {
			return nil, fmt.Errorf("computing storage: %w", err)
		}
		p.Programs = append(p.Programs, *r)
		p.TotalStoragePB += r.TotalStoragePB
		if r.Timeline != nil {
			timelines = append(timelines, *r.Timeline)
		}
	}

	if c.Cosmology.Source != "" {
		src := c.ByName(c.Cosmology.Source)
		if src == nil {
			return nil, fmt.Errorf("computing cosmology: %w", &storage.ParameterError{
				Program:   c.Cosmology.Name,
				Parameter: "cosmology.source",
				Value:     c.Cosmology.Source,
				Expected:  "a program in the catalog",
			})
		}
		pb, err := storage.CosmologyStoragePB(*src, c.Cosmology.Multiplier)
		if err != nil {
			return nil, fmt.Errorf("computing cosmology: %w", err)
		}
		p.Cosmology = &CosmologyResult{
			Name:      c.Cosmology.Name,
			Source:    src.Name,
			StoragePB: pb,
		}
	}

	p.Fleet = timeline.Aggregate(timelines...)
	p.FleetPeakPB = p.Fleet.Max()
	p.PeakYear = p.Fleet.PlateauYear()
	p.Projected = len(timelines)

	return p, nil
}

// Program returns the result for the named program, or nil if not found.
func (p *Projection) Program(name string) *storage.Result {
	for i := range p.Programs {
		if p.Programs[i].Name == name {
			return &p.Programs[i]
		}
	}
	return nil
}
