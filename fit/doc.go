// Package fit performs nonlinear least-squares regression of a model.Model
// against windowed samples.
//
// 🚀 What is it?
//
//	Fit minimises ½·Σ (yᵢ − f(xᵢ; p))² over the parameter vector p, starting
//	from a caller-supplied guess, with the Levenberg–Marquardt method:
//
//	  (JᵀJ + μ·D) h = Jᵀr
//
//	where J is the analytic Jacobian ∂f/∂p, r the residual vector, D the
//	running maximum of diag(JᵀJ) (Marquardt scaling) and μ the damping
//	parameter, updated with Nielsen's rule after every accepted step.
//
// ✨ Guarantees:
//   - Deterministic: no randomised start, fixed loop order, no pivoting.
//   - Bounded: at most MaxIterations damped solves, so one pathological entry
//     cannot stall a batch.
//   - Covariance: inv(JᵀJ)·SSR/(n−k) at the solution when n > k and JᵀJ is
//     invertible (the curve_fit convention), nil otherwise.
//
// ⚙️ Usage:
//
//	res, err := fit.Fit(window, model.Double(), []float64{1, -0.1, 1, -0.01},
//	    fit.WithMaxIterations(1000))
//	switch {
//	case errors.Is(err, fit.ErrArityMismatch):
//	case errors.Is(err, fit.ErrRankDeficient):
//	case errors.Is(err, fit.ErrConvergence):
//	}
//	fmt.Println(res.Params(), res.Iterations())
//
// Complexity: O(iter · (n·k² + k³)) time, O(n·k) memory.
package fit
