package fleet

import (
	"fmt"
	"math"

	"github.com/TMCantwell/HPSO-image-sizes/pkg/hpso"
	"github.com/TMCantwell/HPSO-image-sizes/pkg/timeline"
	"github.com/TMCantwell/HPSO-image-sizes/pkg/validation"
)

// Validate runs analytical checks on a resolved projection.
func Validate(p *Projection) *validation.Report {
	report := validation.NewReport()

	validatePlateau(p, report)
	validateImageCounts(p, report)
	validateCosmology(p, report)

	return report
}

func validatePlateau(p *Projection, report *validation.Report) {
	for _, r := range p.Programs {
		if r.ActiveYears > timeline.Years-1 {
			report.AddWarning(validation.Result{
				Level:       validation.LevelAnalytical,
				Message:     fmt.Sprintf("%s: %d active years exceed the %d-year window; the ramp never plateaus", r.Name, r.ActiveYears, timeline.Years-1),
				Program:     r.Name,
				Path:        "duty_cycle",
				ActualValue: r.ActiveYears,
				Expected:    fmt.Sprintf("<= %d active years", timeline.Years-1),
				Suggestions: []string{
					"Increase the duty cycle",
					"Reduce the observing time",
				},
			})
		}
	}
}

func validateImageCounts(p *Projection, report *validation.Report) {
	for _, r := range p.Programs {
		if r.Kind != hpso.KindImaging {
			continue
		}
		if math.Abs(r.ImageCount-math.Round(r.ImageCount)) > 1e-6 {
			report.AddInfo(validation.Result{
				Level:       validation.LevelAnalytical,
				Message:     fmt.Sprintf("%s: image count %.2f is fractional; storage is not rounded to whole images", r.Name, r.ImageCount),
				Program:     r.Name,
				Path:        "image_cadence_hours",
				ActualValue: r.ImageCount,
			})
		}
	}
}

func validateCosmology(p *Projection, report *validation.Report) {
	if p.Cosmology == nil {
		return
	}
	report.AddInfo(validation.Result{
		Level:        validation.LevelAnalytical,
		Message:      fmt.Sprintf("%s (%.4f PB) reuses the %s image stack and is excluded from fleet totals", p.Cosmology.Name, p.Cosmology.StoragePB, p.Cosmology.Source),
		Program:      p.Cosmology.Name,
		Path:         "cosmology",
		ConflictWith: p.Cosmology.Source,
	})
}
