package extrap

import (
	"errors"
	"fmt"
	"math"

	"github.com/katalvlaran/xsaug/fit"
	"github.com/katalvlaran/xsaug/series"
)

var (
	// ErrInvalidSpec indicates Count < 1, Start > Stop, or a non-finite bound.
	ErrInvalidSpec = errors.New("extrap: invalid extrapolation spec")

	// ErrNilResult indicates a nil fit result passed to Evaluate.
	ErrNilResult = errors.New("extrap: nil fit result")
)

// Spec describes a linear extrapolation grid.
type Spec struct {
	Start float64
	Stop  float64
	Count int
}

// Validate returns ErrInvalidSpec for an unusable grid description.
func (s Spec) Validate() error {
	switch {
	case s.Count < 1:
		return fmt.Errorf("count %d < 1: %w", s.Count, ErrInvalidSpec)
	case math.IsNaN(s.Start) || math.IsNaN(s.Stop) || math.IsInf(s.Start, 0) || math.IsInf(s.Stop, 0):
		return fmt.Errorf("bounds [%v, %v]: %w", s.Start, s.Stop, ErrInvalidSpec)
	case s.Start > s.Stop:
		return fmt.Errorf("start %g > stop %g: %w", s.Start, s.Stop, ErrInvalidSpec)
	}

	return nil
}

// Grid returns Count evenly spaced energies from Start to Stop inclusive.
//
// Complexity: O(Count).
func Grid(s Spec) ([]float64, error) {
	if err := s.Validate(); err != nil {
		return nil, err
	}
	out := make([]float64, s.Count)
	out[0] = s.Start
	if s.Count == 1 {
		return out, nil
	}

	step := (s.Stop - s.Start) / float64(s.Count-1)
	for i := 1; i < s.Count-1; i++ {
		out[i] = s.Start + float64(i)*step
	}
	out[s.Count-1] = s.Stop // exact upper bound

	return out, nil
}

// Evaluate returns one sample per grid energy with XS = model(energy; params).
func Evaluate(s Spec, res *fit.Result) (series.Series, error) {
	if res == nil {
		return nil, ErrNilResult
	}
	grid, err := Grid(s)
	if err != nil {
		return nil, err
	}
	out := make(series.Series, len(grid))
	for i, e := range grid {
		out[i] = series.Sample{Energy: e, XS: res.Eval(e)}
	}

	return out, nil
}
