package augment

import (
	"context"
	"errors"
	"io/fs"

	"github.com/katalvlaran/xsaug/extrap"
	"github.com/katalvlaran/xsaug/fit"
	"github.com/katalvlaran/xsaug/model"
	"github.com/katalvlaran/xsaug/series"
)

// Failure kinds reported per entry.
const (
	KindEmptyWindow          = "empty_window"
	KindInvalidWindow        = "invalid_window"
	KindUnknownModel         = "unknown_model"
	KindArityMismatch        = "arity_mismatch"
	KindConvergence          = "fit_convergence"
	KindRankDeficient        = "rank_deficient"
	KindInvalidInput         = "invalid_input"
	KindInvalidExtrapolation = "invalid_extrapolation"
	KindConfig               = "config"
	KindIO                   = "io"
	KindCanceled             = "canceled"
	KindUnknown              = "unknown"
)

// KindError tags an error with a failure kind. Sources and sinks use it for
// errors of their own (configuration, parsing, output).
type KindError struct {
	Kind string
	Err  error
}

func (e *KindError) Error() string { return e.Err.Error() }
func (e *KindError) Unwrap() error { return e.Err }

// WithKind wraps err as a KindError; nil stays nil.
func WithKind(kind string, err error) error {
	if err == nil {
		return nil
	}

	return &KindError{Kind: kind, Err: err}
}

var sentinelKinds = []struct {
	err  error
	kind string
}{
	{context.Canceled, KindCanceled},
	{context.DeadlineExceeded, KindCanceled},
	{series.ErrEmptyWindow, KindEmptyWindow},
	{series.ErrInvalidWindow, KindInvalidWindow},
	{model.ErrUnknownModel, KindUnknownModel},
	{fit.ErrArityMismatch, KindArityMismatch},
	{fit.ErrConvergence, KindConvergence},
	{fit.ErrRankDeficient, KindRankDeficient},
	{fit.ErrNonFinite, KindInvalidInput},
	{fit.ErrNilModel, KindUnknownModel},
	{extrap.ErrInvalidSpec, KindInvalidExtrapolation},
}

// Kind classifies err for logs and metrics. Pipeline sentinels win over a
// KindError tag; unmatched file-system errors are KindIO.
func Kind(err error) string {
	if err == nil {
		return ""
	}
	for _, sk := range sentinelKinds {
		if errors.Is(err, sk.err) {
			return sk.kind
		}
	}
	var ke *KindError
	if errors.As(err, &ke) {
		return ke.Kind
	}
	var pe *fs.PathError
	if errors.As(err, &pe) {
		return KindIO
	}

	return KindUnknown
}
