package fit

import "errors"

var (
	// ErrArityMismatch indicates len(guess) != model arity.
	ErrArityMismatch = errors.New("fit: initial guess length does not match model arity")

	// ErrRankDeficient indicates fewer samples than parameters, or a damped
	// normal system that could not be factorised.
	ErrRankDeficient = errors.New("fit: rank-deficient problem")

	// ErrConvergence indicates the iteration budget ran out or the residuals
	// stopped being finite.
	ErrConvergence = errors.New("fit: optimizer did not converge")

	// ErrNilModel indicates a nil model argument.
	ErrNilModel = errors.New("fit: nil model")

	// ErrNonFinite indicates NaN or ±Inf in the samples or the guess.
	ErrNonFinite = errors.New("fit: non-finite input")
)
