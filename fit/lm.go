package fit

import (
	"errors"
	"fmt"
	"math"

	"github.com/katalvlaran/xsaug/matrix"
	"github.com/katalvlaran/xsaug/model"
	"github.com/katalvlaran/xsaug/series"
)

// Fit runs Levenberg–Marquardt nonlinear least squares.
//
// Algorithm Outline:
//  1. Validate: model non-nil, len(guess) == k, n ≥ k, all inputs finite.
//  2. r = y − f(x; p), J = ∂f/∂p, A = JᵀJ, g = Jᵀr, μ = τ.
//  3. Repeat up to MaxIterations:
//     D = running max of diag(A)
//     solve (A + μ·D) h = g
//     stop if ‖h‖ ≤ xtol·(‖p‖ + xtol)
//     if cost(p + h) < cost(p): accept, refresh J/A/g,
//     μ *= max(1/3, 1 − (2ρ − 1)³), ν = 2,
//     stop if relative actual and predicted reductions ≤ ftol
//     else: μ *= ν, ν *= 2
//  4. Covariance = inv(A)·SSR/(n − k) when n > k.
//
// Errors:
//   - ErrNilModel, ErrArityMismatch, ErrNonFinite on invalid input.
//   - ErrRankDeficient: n < k, or the damped system is singular.
//   - ErrConvergence: budget exhausted, or non-finite residuals
//     (typically exp overflow from a poor guess).
func Fit(samples series.Series, m model.Model, guess []float64, opts ...Option) (*Result, error) {
	// Stage 1: Validate
	if m == nil {
		return nil, ErrNilModel
	}
	k := m.Arity()
	if len(guess) != k {
		return nil, fmt.Errorf("%s wants %d parameters, got %d: %w", m.Kind(), k, len(guess), ErrArityMismatch)
	}
	n := len(samples)
	if n < k {
		return nil, fmt.Errorf("%d samples for %d parameters: %w", n, k, ErrRankDeficient)
	}
	xs, ys := samples.Energies(), samples.CrossSections()
	if !allFinite(guess) || !allFinite(xs) || !allFinite(ys) {
		return nil, ErrNonFinite
	}
	cfg := gatherOptions(opts...)

	// Stage 2: Prepare
	p := append([]float64(nil), guess...)
	r := make([]float64, n)
	cost := residuals(m, xs, ys, p, r)
	if !isFinite(cost) {
		return nil, fmt.Errorf("initial guess %v: non-finite residuals: %w", guess, ErrConvergence)
	}
	J, err := matrix.NewDense(n, k)
	if err != nil {
		return nil, fmt.Errorf("jacobian: %w", err)
	}
	grad := make([]float64, k) // per-row scratch for model gradients
	A, g, err := normalEquations(m, xs, p, r, J, grad)
	if err != nil {
		return nil, err
	}

	var (
		mu     = cfg.tau
		nu     = 2.0
		scale  = A.Diag()          // Marquardt scaling, running max of diag(A)
		damp   = make([]float64, k) // μ·D
		pNew   = make([]float64, k)
		rNew   = make([]float64, n)
		iter   int
		h      []float64
		solved bool
	)

	// Stage 3: Iterate
	for iter = 1; iter <= cfg.maxIter; iter++ {
		for i, d := range A.Diag() {
			scale[i] = math.Max(scale[i], d)
			damp[i] = mu * scale[i]
		}
		damped, err := matrix.AddDiag(A, damp)
		if err != nil {
			return nil, fmt.Errorf("damping: %w", err)
		}
		h, err = matrix.Solve(damped, g)
		if err != nil {
			if errors.Is(err, matrix.ErrSingular) || errors.Is(err, matrix.ErrNaNInf) {
				return nil, fmt.Errorf("iteration %d: %v: %w", iter, err, ErrRankDeficient)
			}
			return nil, fmt.Errorf("iteration %d: %w", iter, err)
		}

		// Step-size convergence
		if norm(h) <= cfg.xtol*(norm(p)+cfg.xtol) {
			solved = true
			break
		}

		for i := range p {
			pNew[i] = p[i] + h[i]
		}
		costNew := residuals(m, xs, ys, pNew, rNew)
		pred := predictedReduction(h, damp, g)

		if isFinite(costNew) && costNew < cost {
			// Accept
			rho := (cost - costNew) / pred
			actRel, predRel := (cost-costNew)/cost, pred/cost
			copy(p, pNew)
			copy(r, rNew)
			cost = costNew
			if A, g, err = normalEquations(m, xs, p, r, J, grad); err != nil {
				return nil, err
			}
			mu *= math.Max(1.0/3.0, 1-math.Pow(2*rho-1, 3))
			nu = 2

			if cost == 0 || (actRel <= cfg.ftol && predRel <= cfg.ftol) {
				solved = true
				break
			}
			continue
		}

		// Reject: raise damping and retry from the same point
		mu *= nu
		nu *= 2
		if math.IsInf(mu, 0) || math.IsInf(nu, 0) {
			return nil, fmt.Errorf("iteration %d: damping overflow: %w", iter, ErrConvergence)
		}
	}
	if !solved {
		return nil, fmt.Errorf("%d iterations, cost %g: %w", cfg.maxIter, cost, ErrConvergence)
	}

	// Stage 4: Finalize
	return &Result{
		model:      m,
		params:     p,
		cov:        covariance(A, cost, n, k),
		iterations: iter,
		cost:       cost,
		points:     n,
	}, nil
}

// residuals fills r = y − f(x; p) and returns ½·Σr² (NaN/Inf propagate).
func residuals(m model.Model, xs, ys, p, r []float64) float64 {
	sum := 0.0
	for i, x := range xs {
		r[i] = ys[i] - m.Eval(x, p)
		sum += r[i] * r[i]
	}

	return 0.5 * sum
}

// normalEquations refreshes J at p and returns A = JᵀJ and g = Jᵀr.
func normalEquations(m model.Model, xs, p, r []float64, J *matrix.Dense, grad []float64) (*matrix.Dense, []float64, error) {
	for i, x := range xs {
		m.Gradient(x, p, grad)
		for j, v := range grad {
			_ = J.Set(i, j, v) // indices are in range by construction
		}
	}
	A, err := matrix.Gram(J)
	if err != nil {
		return nil, nil, fmt.Errorf("normal equations: %w", err)
	}
	g, err := matrix.TMulVec(J, r)
	if err != nil {
		return nil, nil, fmt.Errorf("normal equations: %w", err)
	}

	return A, g, nil
}

// predictedReduction is L(0) − L(h) = ½·hᵀ(μ·D·h + g) for the linear model.
func predictedReduction(h, damp, g []float64) float64 {
	sum := 0.0
	for i := range h {
		sum += h[i] * (damp[i]*h[i] + g[i])
	}

	return 0.5 * sum
}

// covariance returns inv(A)·2·cost/(n−k), or nil when not estimable.
func covariance(A *matrix.Dense, cost float64, n, k int) *matrix.Dense {
	if n <= k {
		return nil
	}
	inv, err := matrix.Inverse(A)
	if err != nil {
		return nil
	}
	s2 := 2 * cost / float64(n-k)
	out, err := matrix.NewDense(k, k)
	if err != nil {
		return nil
	}
	for i := 0; i < k; i++ {
		for j := 0; j < k; j++ {
			v, _ := inv.At(i, j)
			_ = out.Set(i, j, v*s2)
		}
	}

	return out
}

func norm(v []float64) float64 {
	sum := 0.0
	for _, x := range v {
		sum += x * x
	}

	return math.Sqrt(sum)
}

func isFinite(v float64) bool { return !math.IsNaN(v) && !math.IsInf(v, 0) }

func allFinite(v []float64) bool {
	for _, x := range v {
		if !isFinite(x) {
			return false
		}
	}

	return true
}
