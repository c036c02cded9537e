package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newListCmd(opts Options) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List registered benchmarks and reporters",
		Run: func(cmd *cobra.Command, args []string) {
			out := cmd.OutOrStdout()
			fmt.Fprintln(out, "Benchmarks:")
			for _, b := range opts.Benchmarks.All() {
				fmt.Fprintf(out, "  %s\n", b.Name)
			}
			fmt.Fprintln(out, "Reporters:")
			for _, name := range opts.Reporters.Names() {
				fmt.Fprintf(out, "  %s\n", name)
			}
			if names := opts.Types.Names(); len(names) > 0 {
				fmt.Fprintln(out, "Parameters:")
				for _, name := range names {
					fmt.Fprintf(out, "  %s\n", name)
				}
			}
		},
	}
}
