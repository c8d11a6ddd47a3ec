package validation

import (
	"fmt"

	"github.com/TMCantwell/HPSO-image-sizes/pkg/hpso"
	"github.com/TMCantwell/HPSO-image-sizes/pkg/storage"
)

// ValidateSchema performs schema validation on a scenario catalog.
// It checks every program precondition before any computation.
func ValidateSchema(c *hpso.Catalog) *Report {
	r := NewReport()

	validatePrograms(c, r)
	validateNames(c, r)
	validateCosmology(c, r)
	validateCharts(c, r)

	return r
}

func validatePrograms(c *hpso.Catalog, r *Report) {
	if len(c.Programs) == 0 {
		r.AddError(Result{
			Level:    LevelSchema,
			Message:  "catalog must contain at least one program",
			Path:     "programs",
			Expected: "at least 1 program",
		})
		return
	}

	for i, p := range c.Programs {
		for _, pe := range storage.Check(p) {
			r.AddError(Result{
				Level:       LevelSchema,
				Message:     pe.Error(),
				Program:     p.Name,
				Path:        fmt.Sprintf("programs[%d].%s", i, pe.Parameter),
				ActualValue: pe.Value,
				Expected:    pe.Expected,
			})
		}
		if !p.Projected() {
			r.AddWarning(Result{
				Level:       LevelSchema,
				Message:     fmt.Sprintf("%s has no duty cycle and is left out of the timelines", p.Name),
				Program:     p.Name,
				Path:        fmt.Sprintf("programs[%d].duty_cycle", i),
				Suggestions: []string{"Set duty_cycle to the fraction of telescope time allocated to the program"},
			})
		}
	}
}

func validateNames(c *hpso.Catalog, r *Report) {
	first := map[string]int{}
	for i, p := range c.Programs {
		if p.Name == "" {
			continue
		}
		if j, dup := first[p.Name]; dup {
			r.AddError(Result{
				Level:        LevelSchema,
				Message:      fmt.Sprintf("program name %q is used more than once", p.Name),
				Program:      p.Name,
				Path:         fmt.Sprintf("programs[%d].name", i),
				ConflictWith: fmt.Sprintf("programs[%d].name", j),
				Suggestions:  []string{"Give each program a unique name so reports and chart legends stay distinct"},
			})
			continue
		}
		first[p.Name] = i
	}
}

func validateCosmology(c *hpso.Catalog, r *Report) {
	if c.Cosmology.Source == "" {
		return
	}
	src := c.ByName(c.Cosmology.Source)
	if src == nil {
		r.AddError(Result{
			Level:       LevelSchema,
			Message:     fmt.Sprintf("cosmology source %q is not a program in the catalog", c.Cosmology.Source),
			Path:        "cosmology.source",
			ActualValue: c.Cosmology.Source,
		})
		return
	}
	if src.Kind != hpso.KindImaging {
		r.AddError(Result{
			Level:       LevelSchema,
			Message:     fmt.Sprintf("cosmology source %s must be an imaging program", src.Name),
			Program:     src.Name,
			Path:        "cosmology.source",
			ActualValue: src.Kind,
			Expected:    string(hpso.KindImaging),
		})
	}
	if !(c.Cosmology.Multiplier > 0) {
		r.AddError(Result{
			Level:       LevelSchema,
			Message:     "cosmology multiplier must be > 0",
			Path:        "cosmology.multiplier",
			ActualValue: c.Cosmology.Multiplier,
			Expected:    "> 0",
		})
	}
}

func validateCharts(c *hpso.Catalog, r *Report) {
	files := map[string]bool{}
	for i, ch := range c.Charts {
		if ch.File == "" {
			r.AddError(Result{
				Level:    LevelSchema,
				Message:  fmt.Sprintf("charts[%d] has no file name", i),
				Path:     fmt.Sprintf("charts[%d].file", i),
				Expected: "non-empty",
			})
		} else if files[ch.File] {
			r.AddError(Result{
				Level:       LevelSchema,
				Message:     fmt.Sprintf("chart file %s is written more than once", ch.File),
				Path:        fmt.Sprintf("charts[%d].file", i),
				ActualValue: ch.File,
			})
		}
		files[ch.File] = true

		if len(ch.Programs) == 0 && !ch.Fleet {
			r.AddWarning(Result{
				Level:   LevelSchema,
				Message: fmt.Sprintf("chart %s has no series", ch.File),
				Path:    fmt.Sprintf("charts[%d]", i),
			})
		}
		for j, name := range ch.Programs {
			p := c.ByName(name)
			switch {
			case p == nil:
				r.AddError(Result{
					Level:       LevelSchema,
					Message:     fmt.Sprintf("chart %s references unknown program %q", ch.File, name),
					Path:        fmt.Sprintf("charts[%d].programs[%d]", i, j),
					ActualValue: name,
				})
			case !p.Projected():
				r.AddError(Result{
					Level:       LevelSchema,
					Message:     fmt.Sprintf("chart %s plots %s, which has no timeline", ch.File, name),
					Program:     name,
					Path:        fmt.Sprintf("charts[%d].programs[%d]", i, j),
					Suggestions: []string{fmt.Sprintf("Set a duty_cycle for %s or remove it from the chart", name)},
				})
			}
		}
	}
}
