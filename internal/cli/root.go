// Package cli implements the cadence command-line interface.
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/wesleyorama2/cadence/bench"
	"github.com/wesleyorama2/cadence/params"
	"github.com/wesleyorama2/cadence/report"
)

var version = "0.1.0"

// Options carries the registries a cadence binary runs against. The
// registries are explicit rather than process-wide globals so tests
// and embedders can substitute their own.
type Options struct {
	Benchmarks *bench.Registry
	Reporters  *report.Registry
	Types      *params.Registry
}

// NewRootCmd builds the base command with all subcommands attached.
func NewRootCmd(opts Options) *cobra.Command {
	root := &cobra.Command{
		Use:     "cadence",
		Short:   "A microbenchmark harness with calibrated timing",
		Version: version,
		Long: `Cadence runs registered microbenchmarks under a calibrated clock,
optionally sweeping a named parameter across a range, and reports
per-benchmark statistics through pluggable reporters.`,
		Run: func(cmd *cobra.Command, args []string) {
			// If no subcommand is provided, print help
			cmd.Help()
		},
	}

	root.AddCommand(newRunCmd(opts))
	root.AddCommand(newListCmd(opts))
	return root
}

// Execute runs the root command against the given registries. This is
// called by main.main() of a cadence binary.
func Execute(opts Options) {
	if err := NewRootCmd(opts).Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
