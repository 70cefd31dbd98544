// Package cmd provides the CLI commands for xsaug.
package cmd

import (
	"fmt"
	"io"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/xsaug/config"
	"github.com/katalvlaran/xsaug/logging"
)

// Version is set at build time with -ldflags "-X .../cmd.Version=...".
var Version = "dev"

type rootOptions struct {
	logLevel  string
	logFormat string
	baseDir   string
}

// NewRootCmd builds the command tree.
func NewRootCmd() *cobra.Command {
	opts := &rootOptions{}
	root := &cobra.Command{
		Use:   "xsaug",
		Short: "Augment cross-section data by exponential fit and extrapolation",
		Long: `xsaug fits a single- or double-exponential model to a window of measured
cross sections and extends the data beyond the measured range.

Examples:
  xsaug augment mo100.yaml
  xsaug augment --workers 4 --only mo100_gn,zr90_gn batch.yaml
  xsaug convert units.yaml
  xsaug models`,
		SilenceUsage: true,
	}

	root.PersistentFlags().StringVar(&opts.logLevel, "log-level", "", "override log.level (trace, debug, info, warn, error)")
	root.PersistentFlags().StringVar(&opts.logFormat, "log-format", "", "override log.format (console, json)")
	root.PersistentFlags().StringVar(&opts.baseDir, "base-dir", "", "directory relative entry paths are resolved against (default: working directory)")

	root.AddCommand(newAugmentCmd(opts))
	root.AddCommand(newConvertCmd(opts))
	root.AddCommand(newModelsCmd())
	root.AddCommand(newVersionCmd())

	return root
}

// Execute runs the CLI.
func Execute() error {
	return NewRootCmd().Execute()
}

// newVersionCmd prints version information
func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "xsaug version %s\n", Version)
		},
	}
}

// setup loads the batch file and builds its run-scoped logger.
func (o *rootOptions) setup(cmd *cobra.Command, path string) (*config.File, zerolog.Logger, io.Closer, error) {
	f, err := config.Load(path)
	if err != nil {
		return nil, zerolog.Nop(), nil, err
	}
	lc := f.Log
	if o.logLevel != "" {
		lc.Level = o.logLevel
	}
	if o.logFormat != "" {
		lc.Format = o.logFormat
	}
	log, closer, err := logging.New(lc)
	if err != nil {
		return nil, zerolog.Nop(), nil, err
	}
	log = log.With().Str("run_id", uuid.NewString()).Str("cmd", cmd.Name()).Logger()

	return f, log, closer, nil
}
