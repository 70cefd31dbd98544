package fit

import "math"

// Defaults (single source of truth for zero-value behavior).
const (
	// DefaultMaxIterations bounds the number of damped solves per fit.
	DefaultMaxIterations = 500

	// DefaultStepTolerance stops when ‖h‖ ≤ xtol·(‖p‖ + xtol).
	DefaultStepTolerance = 1e-12

	// DefaultCostTolerance stops when both the actual and the predicted
	// relative reduction of the cost fall below ftol.
	DefaultCostTolerance = 1e-15

	// DefaultInitialDamping is μ₀ (relative to the Marquardt scaling).
	DefaultInitialDamping = 1e-3
)

const (
	panicMaxIterInvalid = "fit: WithMaxIterations: n must be >= 1"
	panicTolInvalid     = "fit: tolerance must be finite and >= 0"
	panicDampingInvalid = "fit: WithInitialDamping: tau must be finite and > 0"
)

// Option mutates fitter options. Constructors panic only on nonsensical
// values (programmer error); user-facing values are validated upstream.
type Option func(*options)

type options struct {
	maxIter int     // DefaultMaxIterations
	xtol    float64 // DefaultStepTolerance
	ftol    float64 // DefaultCostTolerance
	tau     float64 // DefaultInitialDamping
}

func defaultOptions() options {
	return options{
		maxIter: DefaultMaxIterations,
		xtol:    DefaultStepTolerance,
		ftol:    DefaultCostTolerance,
		tau:     DefaultInitialDamping,
	}
}

// gatherOptions applies opts over the defaults; nil options are skipped.
func gatherOptions(opts ...Option) options {
	o := defaultOptions()
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	return o
}

// WithMaxIterations sets the iteration budget.
func WithMaxIterations(n int) Option {
	if n < 1 {
		panic(panicMaxIterInvalid)
	}

	return func(o *options) { o.maxIter = n }
}

// WithStepTolerance sets xtol.
func WithStepTolerance(xtol float64) Option {
	if !validTol(xtol) {
		panic(panicTolInvalid)
	}

	return func(o *options) { o.xtol = xtol }
}

// WithCostTolerance sets ftol.
func WithCostTolerance(ftol float64) Option {
	if !validTol(ftol) {
		panic(panicTolInvalid)
	}

	return func(o *options) { o.ftol = ftol }
}

// WithInitialDamping sets μ₀.
func WithInitialDamping(tau float64) Option {
	if !(tau > 0) || math.IsInf(tau, 0) {
		panic(panicDampingInvalid)
	}

	return func(o *options) { o.tau = tau }
}

func validTol(v float64) bool {
	return v >= 0 && !math.IsInf(v, 0) && !math.IsNaN(v)
}
