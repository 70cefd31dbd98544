// SPDX-License-Identifier: MIT

// Package matrix provides the small dense linear-algebra kernel used by the
// nonlinear least-squares fitter.
//
// What & Why:
//
//	Levenberg–Marquardt needs, on every iteration, the Gram matrix JᵀJ of the
//	Jacobian, the gradient Jᵀr and the solution of one damped k×k system.
//	At the end of a fit the inverse of JᵀJ yields the covariance estimate.
//	k is tiny (2 or 4 parameters), so a flat row-major Dense with
//	deterministic Doolittle LU (no pivoting) is all that is required.
//
// Provided:
//
//   - Dense: row-major float64 storage with bounds-checked At/Set.
//   - Gram, TMulVec: JᵀJ and Jᵀv without materialising Jᵀ.
//   - LU, Solve, Inverse: Doolittle factorisation and triangular solves.
//
// Determinism:
//
//	Every kernel walks its loops in a fixed order and never reorders rows,
//	so identical inputs produce bit-identical outputs.
//
// Complexity:
//
//	Gram O(n·k²), LU/Inverse O(k³), Solve O(k²) after factorisation.
package matrix
