package timeline

import (
	"errors"
	"fmt"
	"math"
)

// Years is the length of every projection window (year 0 through 15).
const Years = 16

// AdvancedProductsFactor inflates raw storage to cover derived data
// products retained alongside the raw images.
const AdvancedProductsFactor = 4.0

// ErrDegenerate is returned when a projection cannot be formed.
var ErrDegenerate = errors.New("degenerate timeline")

// Timeline holds cumulative storage in PB indexed by year.
type Timeline [Years]float64

// Project builds the storage timeline for a program that stores totalPB of
// raw data over activeYears. Years 1..activeYears ramp linearly through the
// origin at totalPB*4/activeYears per year; later years hold the last value.
// The ramp is rate*year, not a running sum of yearly increments.
func Project(totalPB float64, activeYears int) (Timeline, error) {
	var t Timeline
	if activeYears < 1 {
		return t, fmt.Errorf("%w: active years %d, want >= 1", ErrDegenerate, activeYears)
	}
	if totalPB < 0 || math.IsNaN(totalPB) || math.IsInf(totalPB, 0) {
		return t, fmt.Errorf("%w: total storage %v PB", ErrDegenerate, totalPB)
	}

	rate := AnnualRate(totalPB, activeYears)
	last := activeYears
	if last > Years-1 {
		last = Years - 1
	}
	for i := 1; i <= last; i++ {
		t[i] = rate * float64(i)
	}
	for i := last + 1; i < Years; i++ {
		t[i] = t[last]
	}
	return t, nil
}

// AnnualRate is the per-year storage growth including advanced data products.
func AnnualRate(totalPB float64, activeYears int) float64 {
	if activeYears < 1 {
		return 0
	}
	return totalPB * AdvancedProductsFactor / float64(activeYears)
}

// Aggregate sums timelines element-wise.
func Aggregate(ts ...Timeline) Timeline {
	var sum Timeline
	for _, t := range ts {
		for i := range t {
			sum[i] += t[i]
		}
	}
	return sum
}

// Max returns the largest value in the timeline.
func (t Timeline) Max() float64 {
	m := t[0]
	for _, v := range t[1:] {
		if v > m {
			m = v
		}
	}
	return m
}

// PlateauYear returns the first year at which the timeline reaches its
// maximum.
func (t Timeline) PlateauYear() int {
	m := t.Max()
	for i, v := range t {
		if v == m {
			return i
		}
	}
	return Years - 1
}

// Increments returns the storage added in each year.
func (t Timeline) Increments() Timeline {
	var inc Timeline
	for i := 1; i < Years; i++ {
		inc[i] = t[i] - t[i-1]
	}
	return inc
}

// Slice returns the timeline as a slice, for encoders and plotters that
// do not accept arrays.
func (t Timeline) Slice() []float64 {
	out := make([]float64, Years)
	copy(out, t[:])
	return out
}
