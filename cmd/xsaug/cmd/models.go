package cmd

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/xsaug/model"
)

func newModelsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "models",
		Short: "List the fit models and the identifiers that select them",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "MODEL\tPARAMS\tFORMULA\tIDENTIFIERS")
			aliases := model.Default.Aliases()
			for _, m := range []model.Model{model.Single(), model.Double()} {
				fmt.Fprintf(tw, "%s\t%d\t%s\t%s\n", m.Kind(), m.Arity(), m.Formula(), strings.Join(aliases[m.Kind()], ", "))
			}
			tw.Flush()
		},
	}
}
