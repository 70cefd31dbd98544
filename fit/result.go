package fit

import (
	"fmt"
	"math"

	"github.com/katalvlaran/xsaug/matrix"
	"github.com/katalvlaran/xsaug/model"
)

// Result is an immutable fitted model. Accessors return copies.
type Result struct {
	model      model.Model
	params     []float64
	cov        *matrix.Dense // nil when not estimable
	iterations int
	cost       float64 // ½·SSR at the solution
	points     int
}

// NewResult wraps an already known parameter vector, e.g. to extrapolate
// with published coefficients instead of a fresh fit.
func NewResult(m model.Model, params []float64) (*Result, error) {
	if m == nil {
		return nil, ErrNilModel
	}
	if len(params) != m.Arity() {
		return nil, fmt.Errorf("%s wants %d, got %d: %w", m.Kind(), m.Arity(), len(params), ErrArityMismatch)
	}
	if !allFinite(params) {
		return nil, ErrNonFinite
	}

	return &Result{model: m, params: append([]float64(nil), params...)}, nil
}

// Model returns the fitted model.
func (r *Result) Model() model.Model { return r.model }

// Params returns a copy of the fitted parameters.
func (r *Result) Params() []float64 { return append([]float64(nil), r.params...) }

// Covariance returns a copy of the parameter covariance estimate, or nil.
func (r *Result) Covariance() *matrix.Dense {
	if r.cov == nil {
		return nil
	}

	return r.cov.Clone()
}

// StdErr returns sqrt(diag(cov)), or nil when no covariance is available.
func (r *Result) StdErr() []float64 {
	if r.cov == nil {
		return nil
	}
	d := r.cov.Diag()
	for i, v := range d {
		d[i] = math.Sqrt(v)
	}

	return d
}

// Iterations returns the number of LM iterations performed (0 for NewResult).
func (r *Result) Iterations() int { return r.iterations }

// SSR returns the sum of squared residuals at the solution.
func (r *Result) SSR() float64 { return 2 * r.cost }

// Points returns how many samples were fitted (0 for NewResult).
func (r *Result) Points() int { return r.points }

// Eval evaluates the fitted model at x.
func (r *Result) Eval(x float64) float64 { return r.model.Eval(x, r.params) }
