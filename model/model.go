package model

import (
	"fmt"
	"math"
)

// Kind tags a model variant. The zero value is Unknown.
type Kind int

const (
	// Unknown is never returned by a successful lookup.
	Unknown Kind = iota

	// SingleExponential is y = a·exp(b·x).
	SingleExponential

	// DoubleExponential is y = a·exp(b·x) + c·exp(d·x).
	DoubleExponential
)

// String returns the canonical identifier of k.
func (k Kind) String() string {
	switch k {
	case SingleExponential:
		return "single-exponential"
	case DoubleExponential:
		return "double-exponential"
	default:
		return fmt.Sprintf("unknown(%d)", int(k))
	}
}

// Model is a pure function of energy and a fixed-size parameter vector.
//
// Implementations must not retain or mutate p. Gradient writes ∂y/∂pᵢ into
// dst, which has length Arity().
type Model interface {
	Kind() Kind
	Arity() int
	Eval(x float64, p []float64) float64
	Gradient(x float64, p []float64, dst []float64)
	Formula() string
}

// singleExp is y = a·exp(b·x).
type singleExp struct{}

func (singleExp) Kind() Kind      { return SingleExponential }
func (singleExp) Arity() int      { return 2 }
func (singleExp) Formula() string { return "a*exp(b*x)" }

func (singleExp) Eval(x float64, p []float64) float64 {
	return p[0] * math.Exp(p[1]*x)
}

func (singleExp) Gradient(x float64, p []float64, dst []float64) {
	e := math.Exp(p[1] * x)
	dst[0] = e            // ∂/∂a
	dst[1] = p[0] * x * e // ∂/∂b
}

// doubleExp is y = a·exp(b·x) + c·exp(d·x).
type doubleExp struct{}

func (doubleExp) Kind() Kind      { return DoubleExponential }
func (doubleExp) Arity() int      { return 4 }
func (doubleExp) Formula() string { return "a*exp(b*x) + c*exp(d*x)" }

func (doubleExp) Eval(x float64, p []float64) float64 {
	return p[0]*math.Exp(p[1]*x) + p[2]*math.Exp(p[3]*x)
}

func (doubleExp) Gradient(x float64, p []float64, dst []float64) {
	e1 := math.Exp(p[1] * x)
	e2 := math.Exp(p[3] * x)
	dst[0] = e1
	dst[1] = p[0] * x * e1
	dst[2] = e2
	dst[3] = p[2] * x * e2
}

// Single returns the single-exponential model.
func Single() Model { return singleExp{} }

// Double returns the double-exponential model.
func Double() Model { return doubleExp{} }

// EvalAll evaluates m at every x with parameters p.
func EvalAll(m Model, xs []float64, p []float64) []float64 {
	out := make([]float64, len(xs))
	for i, x := range xs {
		out[i] = m.Eval(x, p)
	}

	return out
}
