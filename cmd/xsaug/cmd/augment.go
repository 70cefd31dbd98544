package cmd

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/xsaug/augment"
	"github.com/katalvlaran/xsaug/batch"
	"github.com/katalvlaran/xsaug/metrics"
	"github.com/katalvlaran/xsaug/tabular"
)

type augmentOptions struct {
	*rootOptions
	workers     int
	metricsFile string
	only        []string
}

func newAugmentCmd(root *rootOptions) *cobra.Command {
	opts := &augmentOptions{rootOptions: root}
	c := &cobra.Command{
		Use:   "augment <config.yaml>",
		Short: "Fit, extrapolate and export every entry of a batch file",
		Long: `Process the entries listed under xs_of_int. Each entry is fitted and
exported independently; a failing entry is reported and the others still run.
The exit status is 1 when any entry failed.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return opts.run(cmd, args[0])
		},
	}
	c.Flags().IntVarP(&opts.workers, "workers", "w", 0, "entries processed concurrently (default: config workers)")
	c.Flags().StringVar(&opts.metricsFile, "metrics-file", "", "write Prometheus metrics to this textfile after the run")
	c.Flags().StringSliceVar(&opts.only, "only", nil, "process only these entries (comma-separated)")

	return c
}

func (o *augmentOptions) run(cmd *cobra.Command, path string) error {
	f, log, closer, err := o.setup(cmd, path)
	if err != nil {
		return err
	}
	defer closer.Close()

	names, err := selectNames(f.Names, o.only)
	if err != nil {
		return err
	}
	workers := f.Workers
	if o.workers > 0 {
		workers = o.workers
	}
	if f.Metrics.File != "" && o.metricsFile == "" {
		o.metricsFile = f.Metrics.File
	}

	reg := prometheus.NewRegistry()
	orch := augment.New(
		&batch.ConfigSource{File: f, BaseDir: o.baseDir},
		&batch.FileSink{File: f, BaseDir: o.baseDir, Log: log},
		augment.WithWorkers(workers),
		augment.WithLogger(log),
		augment.WithMetrics(metrics.New(reg)),
	)

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	rep := orch.Run(ctx, names)

	if o.metricsFile != "" {
		if err := metrics.WriteTextfile(o.metricsFile, reg); err != nil {
			log.Error().Err(err).Str("path", o.metricsFile).Msg("metrics export failed")
		}
	}
	printReport(cmd, rep)
	if rep.Failed() > 0 {
		return fmt.Errorf("%d of %d entries failed", rep.Failed(), len(rep.Entries))
	}

	return nil
}

func printReport(cmd *cobra.Command, rep *augment.Report) {
	w := cmd.OutOrStdout()
	for _, e := range rep.Entries {
		if e.Err != nil {
			fmt.Fprintf(w, "FAIL  %-20s %s: %v\n", e.Name, e.Kind, e.Err)
			continue
		}
		p := e.Outcome.Fit.Params()
		params := make([]string, len(p))
		for i, v := range p {
			params[i] = tabular.FormatFloat(v)
		}
		fmt.Fprintf(w, "ok    %-20s %s %v, %d rows\n", e.Name, e.Outcome.Job.Model.Kind(), params, len(e.Outcome.Augmented))
	}
}

// selectNames keeps the names of all that appear in only (all when only is empty).
func selectNames(all, only []string) ([]string, error) {
	if len(only) == 0 {
		return all, nil
	}
	known := make(map[string]bool, len(all))
	for _, n := range all {
		known[n] = true
	}
	out := make([]string, 0, len(only))
	for _, n := range only {
		if !known[n] {
			return nil, fmt.Errorf("--only: %q is not listed in xs_of_int", n)
		}
		out = append(out, n)
	}

	return out, nil
}
