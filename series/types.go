package series

import (
	"errors"
	"fmt"
	"math"
)

var (
	// ErrEmptyWindow indicates that no sample fell inside the fit window.
	ErrEmptyWindow = errors.New("series: no samples in fit window")

	// ErrInvalidWindow indicates Start > Stop or a NaN bound.
	ErrInvalidWindow = errors.New("series: invalid fit window")

	// ErrLengthMismatch indicates energy and cross-section slices of different length.
	ErrLengthMismatch = errors.New("series: energy and cross-section lengths differ")
)

// Sample is one tabulated point: cross-section XS measured at Energy.
type Sample struct {
	Energy float64
	XS     float64
}

// Series is an ordered sequence of samples. Order is significant.
type Series []Sample

// FromColumns zips parallel energy and cross-section slices into a Series.
func FromColumns(energies, xs []float64) (Series, error) {
	if len(energies) != len(xs) {
		return nil, fmt.Errorf("%d vs %d: %w", len(energies), len(xs), ErrLengthMismatch)
	}
	out := make(Series, len(energies))
	for i := range energies {
		out[i] = Sample{Energy: energies[i], XS: xs[i]}
	}

	return out, nil
}

// Clone returns a copy that shares no storage with s.
func (s Series) Clone() Series {
	if s == nil {
		return nil
	}
	out := make(Series, len(s))
	copy(out, s)

	return out
}

// Energies returns the energy column as a new slice.
func (s Series) Energies() []float64 {
	out := make([]float64, len(s))
	for i, p := range s {
		out[i] = p.Energy
	}

	return out
}

// CrossSections returns the cross-section column as a new slice.
func (s Series) CrossSections() []float64 {
	out := make([]float64, len(s))
	for i, p := range s {
		out[i] = p.XS
	}

	return out
}

// IsSorted reports whether energies are non-decreasing.
func (s Series) IsSorted() bool {
	for i := 1; i < len(s); i++ {
		if s[i].Energy < s[i-1].Energy {
			return false
		}
	}

	return true
}

// Scale returns a copy with every energy multiplied by nrg and every
// cross-section by xs (unit conversion).
func (s Series) Scale(nrg, xs float64) Series {
	out := make(Series, len(s))
	for i, p := range s {
		out[i] = Sample{Energy: p.Energy * nrg, XS: p.XS * xs}
	}

	return out
}

// Window is an inclusive energy range [Start, Stop].
type Window struct {
	Start float64
	Stop  float64
}

// Validate returns ErrInvalidWindow when Start > Stop or a bound is NaN.
// Infinite bounds are allowed (an open-ended window).
func (w Window) Validate() error {
	if math.IsNaN(w.Start) || math.IsNaN(w.Stop) {
		return fmt.Errorf("[%v, %v]: %w", w.Start, w.Stop, ErrInvalidWindow)
	}
	if w.Start > w.Stop {
		return fmt.Errorf("start %g > stop %g: %w", w.Start, w.Stop, ErrInvalidWindow)
	}

	return nil
}

// Contains reports whether e lies in [Start, Stop].
func (w Window) Contains(e float64) bool {
	return e >= w.Start && e <= w.Stop
}
