package storage

import (
	"fmt"
	"math"

	"github.com/TMCantwell/HPSO-image-sizes/pkg/hpso"
	"github.com/TMCantwell/HPSO-image-sizes/pkg/timeline"
)

// Result is the computed storage footprint of one program.
type Result struct {
	Name              string             `yaml:"name" json:"name"`
	Kind              hpso.Kind          `yaml:"kind" json:"kind"`
	TotalStoragePB    float64            `yaml:"total_storage_pb" json:"total_storage_pb"`
	ObservingHours    float64            `yaml:"observing_hours" json:"observing_hours"`
	TimePerFieldHours float64            `yaml:"time_per_field_hours,omitempty" json:"time_per_field_hours,omitempty"`
	ImageCount        float64            `yaml:"image_count,omitempty" json:"image_count,omitempty"`
	ActiveYears       int                `yaml:"active_years,omitempty" json:"active_years,omitempty"`
	AnnualRatePB      float64            `yaml:"annual_rate_pb,omitempty" json:"annual_rate_pb,omitempty"`
	Timeline          *timeline.Timeline `yaml:"timeline,omitempty,flow" json:"timeline,omitempty"`
	Style             string             `yaml:"-" json:"-"`
}

// Compute returns the storage footprint of p. The timeline is projected
// only when p carries a duty cycle.
func Compute(p hpso.Program) (*Result, error) {
	if err := Validate(p); err != nil {
		return nil, err
	}

	r := &Result{
		Name:           p.Name,
		Kind:           p.Kind,
		ObservingHours: p.ObservingHours,
		Style:          p.Style,
	}

	switch p.Kind {
	case hpso.KindImaging:
		r.TimePerFieldHours = p.ObservingHours / float64(p.Fields)
		r.ImageCount = (r.TimePerFieldHours / p.ImageCadenceHours) * float64(p.Fields)
		r.TotalStoragePB = r.ImageCount * p.ImageSizeBytes / BytesPerPB
	case hpso.KindStreaming:
		r.TotalStoragePB = p.ObservingHours * SecondsPerHour * p.DataRateBitsPerSec * BytesPerBit / BytesPerPB
	}

	if !p.Projected() {
		return r, nil
	}

	years, err := ActiveYears(p.ObservingHours, *p.DutyCycle)
	if err != nil {
		return nil, withProgram(err, p.Name)
	}
	tl, err := timeline.Project(r.TotalStoragePB, years)
	if err != nil {
		return nil, fmt.Errorf("HPSO %s: %w", p.Name, err)
	}

	r.ActiveYears = years
	r.AnnualRatePB = timeline.AnnualRate(r.TotalStoragePB, years)
	r.Timeline = &tl
	return r, nil
}

// ActiveYears converts required observing hours into calendar years given
// the fraction of telescope time allocated to the program.
func ActiveYears(observingHours, dutyCycle float64) (int, error) {
	if !(dutyCycle > 0 && dutyCycle <= 1) {
		return 0, &ParameterError{Parameter: "duty_cycle", Value: dutyCycle, Expected: "(0, 1]"}
	}
	if !(observingHours > 0) || math.IsInf(observingHours, 0) {
		return 0, &ParameterError{Parameter: "observing_hours", Value: observingHours, Expected: "> 0"}
	}
	return int(math.Ceil(observingHours / (dutyCycle * HoursPerYear))), nil
}

// CosmologyStoragePB derives the Cosmology:33 footprint from the image stack
// of source, scaled by multiplier.
func CosmologyStoragePB(source hpso.Program, multiplier float64) (float64, error) {
	if err := Validate(source); err != nil {
		return 0, err
	}
	if source.Kind != hpso.KindImaging {
		return 0, &ParameterError{Program: source.Name, Parameter: "kind", Value: source.Kind, Expected: string(hpso.KindImaging)}
	}
	if !(multiplier > 0) || math.IsInf(multiplier, 0) {
		return 0, &ParameterError{Program: source.Name, Parameter: "cosmology.multiplier", Value: multiplier, Expected: "> 0"}
	}
	timePerField := source.ObservingHours / float64(source.Fields)
	return source.ImageSizeBytes * (timePerField / source.ImageCadenceHours) * multiplier / BytesPerPB, nil
}

func withProgram(err error, name string) error {
	if pe, ok := err.(*ParameterError); ok {
		pe.Program = name
		return pe
	}
	return fmt.Errorf("HPSO %s: %w", name, err)
}
