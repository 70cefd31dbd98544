package cmd

import (
	"github.com/spf13/cobra"

	"github.com/katalvlaran/xsaug/batch"
)

func newConvertCmd(root *rootOptions) *cobra.Command {
	var only []string
	c := &cobra.Command{
		Use:   "convert <config.yaml>",
		Short: "Rescale the energy and cross-section columns of every entry",
		Long: `Read each entry's inp columns, multiply them by nrg.multiply_by and
xs.multiply_by, and write them to out with the configured headers.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, log, closer, err := root.setup(cmd, args[0])
			if err != nil {
				return err
			}
			defer closer.Close()

			names, err := selectNames(f.Names, only)
			if err != nil {
				return err
			}
			conv := &batch.Converter{File: f, BaseDir: root.baseDir, Log: log}

			return conv.Run(cmd.Context(), names)
		},
	}
	c.Flags().StringSliceVar(&only, "only", nil, "convert only these entries (comma-separated)")

	return c
}
