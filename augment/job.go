package augment

import (
	"context"
	"fmt"

	"github.com/katalvlaran/xsaug/extrap"
	"github.com/katalvlaran/xsaug/fit"
	"github.com/katalvlaran/xsaug/model"
	"github.com/katalvlaran/xsaug/series"
)

// Job is a fully resolved augmentation request.
type Job struct {
	Name          string
	Data          series.Series // measured samples, file order
	Window        series.Window
	Model         model.Model
	Guess         []float64
	Extrapolation extrap.Spec
	FitOptions    []fit.Option
}

// Outcome is the result of Augment for one Job.
type Outcome struct {
	Job          *Job
	Fit          *fit.Result
	Retained     series.Series // measured samples with energy <= Window.Stop
	Extrapolated series.Series
	Augmented    series.Series // Retained followed by Extrapolated
}

// Source resolves an entry name into a Job.
type Source interface {
	Job(ctx context.Context, name string) (*Job, error)
}

// Sink consumes a successful Outcome.
type Sink interface {
	Consume(ctx context.Context, out *Outcome) error
}

// SinkFunc adapts a function to Sink.
type SinkFunc func(ctx context.Context, out *Outcome) error

// Consume calls f.
func (f SinkFunc) Consume(ctx context.Context, out *Outcome) error { return f(ctx, out) }

// Augment runs the pipeline for job. It does not modify job.
//
// Errors (matched with errors.Is):
//   - series.ErrInvalidWindow, extrap.ErrInvalidSpec: rejected before fitting.
//   - series.ErrEmptyWindow: no sample inside the window.
//   - fit.ErrNilModel, fit.ErrArityMismatch, fit.ErrRankDeficient,
//     fit.ErrConvergence, fit.ErrNonFinite: from the fitter.
func Augment(job *Job) (*Outcome, error) {
	// Stage 1: Validate
	if job == nil {
		return nil, fmt.Errorf("nil job: %w", fit.ErrNilModel)
	}
	if err := job.Window.Validate(); err != nil {
		return nil, err
	}
	if err := job.Extrapolation.Validate(); err != nil {
		return nil, err
	}

	// Stage 2: Fit
	window, err := series.Select(job.Data, job.Window)
	if err != nil {
		return nil, err
	}
	res, err := fit.Fit(window, job.Model, job.Guess, job.FitOptions...)
	if err != nil {
		return nil, err
	}

	// Stage 3: Extrapolate and merge
	tail, err := extrap.Evaluate(job.Extrapolation, res)
	if err != nil {
		return nil, err
	}

	return &Outcome{
		Job:          job,
		Fit:          res,
		Retained:     series.Retain(job.Data, job.Window.Stop),
		Extrapolated: tail,
		Augmented:    series.Merge(job.Data, job.Window.Stop, tail),
	}, nil
}
