package storage

import (
	"math"

	"github.com/TMCantwell/HPSO-image-sizes/pkg/hpso"
)

// Validate returns the first precondition p violates, or nil.
func Validate(p hpso.Program) error {
	if errs := Check(p); len(errs) > 0 {
		return errs[0]
	}
	return nil
}

// Check returns every precondition p violates.
func Check(p hpso.Program) []*ParameterError {
	var errs []*ParameterError
	fail := func(param string, value any, expected string) {
		errs = append(errs, &ParameterError{Program: p.Name, Parameter: param, Value: value, Expected: expected})
	}

	if p.Name == "" {
		fail("name", p.Name, "non-empty")
	}
	if !positive(p.ObservingHours) {
		fail("observing_hours", p.ObservingHours, "> 0")
	}

	switch p.Kind {
	case hpso.KindImaging:
		if !nonNegative(p.ImageSizeBytes) {
			fail("image_size_bytes", p.ImageSizeBytes, ">= 0")
		}
		if p.Fields <= 0 {
			fail("fields", p.Fields, "> 0")
		}
		if !positive(p.ImageCadenceHours) {
			fail("image_cadence_hours", p.ImageCadenceHours, "> 0")
		}
	case hpso.KindStreaming:
		if !nonNegative(p.DataRateBitsPerSec) {
			fail("data_rate_bits_per_sec", p.DataRateBitsPerSec, ">= 0")
		}
	default:
		fail("kind", p.Kind, "imaging or streaming")
	}

	if p.DutyCycle != nil {
		if d := *p.DutyCycle; !(d > 0 && d <= 1) {
			fail("duty_cycle", d, "(0, 1]")
		}
	}
	return errs
}

func positive(v float64) bool {
	return v > 0 && !math.IsInf(v, 0)
}

func nonNegative(v float64) bool {
	return v >= 0 && !math.IsInf(v, 0)
}
