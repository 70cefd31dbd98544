package augment

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"
	"go.uber.org/multierr"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/xsaug/metrics"
)

const panicWorkersInvalid = "augment: WithWorkers: n must be >= 1"

// Option configures an Orchestrator.
type Option func(*Orchestrator)

// WithWorkers bounds the number of entries processed concurrently (default 1).
func WithWorkers(n int) Option {
	if n < 1 {
		panic(panicWorkersInvalid)
	}

	return func(o *Orchestrator) { o.workers = n }
}

// WithLogger sets the batch logger (default: disabled).
func WithLogger(l zerolog.Logger) Option {
	return func(o *Orchestrator) { o.log = l }
}

// WithMetrics records per-entry metrics on rec.
func WithMetrics(rec *metrics.Recorder) Option {
	return func(o *Orchestrator) { o.rec = rec }
}

// Orchestrator drives Source → Augment → Sink over a list of entries.
type Orchestrator struct {
	src     Source
	sink    Sink
	workers int
	log     zerolog.Logger
	rec     *metrics.Recorder
}

// New returns an Orchestrator. A nil sink discards outcomes.
func New(src Source, sink Sink, opts ...Option) *Orchestrator {
	o := &Orchestrator{src: src, sink: sink, workers: 1, log: zerolog.Nop()}
	for _, opt := range opts {
		if opt != nil {
			opt(o)
		}
	}

	return o
}

// EntryResult is the outcome of one entry. Exactly one of Outcome and Err is set.
type EntryResult struct {
	Name     string
	Outcome  *Outcome
	Err      error
	Kind     string // "" on success
	Duration time.Duration
}

// Report lists entry results in input order.
type Report struct {
	Entries  []EntryResult
	Duration time.Duration
}

// Succeeded counts entries without error.
func (r *Report) Succeeded() int {
	n := 0
	for _, e := range r.Entries {
		if e.Err == nil {
			n++
		}
	}

	return n
}

// Failed counts entries with an error.
func (r *Report) Failed() int { return len(r.Entries) - r.Succeeded() }

// Err combines all entry errors, or returns nil when every entry succeeded.
// multierr.Errors splits the result back into per-entry errors.
func (r *Report) Err() error {
	var err error
	for _, e := range r.Entries {
		if e.Err != nil {
			err = multierr.Append(err, fmt.Errorf("entry %q (%s): %w", e.Name, e.Kind, e.Err))
		}
	}

	return err
}

// Run processes names and returns once every entry has finished or been
// skipped. Cancelling ctx stops new entries from starting; those are
// reported with KindCanceled.
func (o *Orchestrator) Run(ctx context.Context, names []string) *Report {
	start := time.Now()
	rep := &Report{Entries: make([]EntryResult, len(names))}

	var g errgroup.Group
	g.SetLimit(o.workers)
	for i, name := range names {
		if err := ctx.Err(); err != nil {
			rep.Entries[i] = o.fail(name, err, 0)
			continue
		}
		i, name := i, name
		g.Go(func() error {
			rep.Entries[i] = o.runOne(ctx, name) // own slot, no locking
			return nil
		})
	}
	_ = g.Wait() // workers never return errors

	rep.Duration = time.Since(start)
	o.log.Info().
		Int("entries", len(names)).
		Int("succeeded", rep.Succeeded()).
		Int("failed", rep.Failed()).
		Dur("duration", rep.Duration).
		Msg("batch finished")

	return rep
}

func (o *Orchestrator) runOne(ctx context.Context, name string) EntryResult {
	start := time.Now()
	log := o.log.With().Str("entry", name).Logger()
	if err := ctx.Err(); err != nil {
		return o.fail(name, err, 0)
	}
	log.Debug().Msg("entry started")

	job, err := o.src.Job(ctx, name)
	if err != nil {
		return o.fail(name, err, time.Since(start))
	}
	if !job.Data.IsSorted() {
		log.Warn().Msg("input energies are not ascending; merging positionally")
	}

	out, err := Augment(job)
	if err != nil {
		return o.fail(name, err, time.Since(start))
	}
	log.Info().
		Str("model", job.Model.Kind().String()).
		Floats64("params", out.Fit.Params()).
		Int("iterations", out.Fit.Iterations()).
		Float64("ssr", out.Fit.SSR()).
		Int("fit_points", out.Fit.Points()).
		Int("rows", len(out.Augmented)).
		Msg("entry fitted")

	if o.sink != nil {
		if err := o.sink.Consume(ctx, out); err != nil {
			return o.fail(name, err, time.Since(start))
		}
	}

	d := time.Since(start)
	if o.rec != nil {
		o.rec.RecordSuccess(name, out.Fit.Iterations(), len(out.Augmented), d.Seconds())
	}

	return EntryResult{Name: name, Outcome: out, Duration: d}
}

func (o *Orchestrator) fail(name string, err error, d time.Duration) EntryResult {
	kind := Kind(err)
	o.log.Error().Str("entry", name).Str("kind", kind).Err(err).Msg("entry failed")
	if o.rec != nil {
		o.rec.RecordFailure(kind, d.Seconds())
	}

	return EntryResult{Name: name, Err: err, Kind: kind, Duration: d}
}
