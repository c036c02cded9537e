package cli

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/wesleyorama2/cadence/clock"
	"github.com/wesleyorama2/cadence/config"
	"github.com/wesleyorama2/cadence/params"
	"github.com/wesleyorama2/cadence/runner"
)

func newRunCmd(opts Options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Run benchmarks",
		Long: `Execute registered benchmarks and report their timing statistics.

Config file mode:
  cadence run --config bench.yaml

Quick CLI mode:
  cadence run --filter 'sort/.*' --samples 200

Parameter sweep (name:op:init:step:count):
  cadence run --sweep 'n:*:16:2:5'`,
		Run: func(cmd *cobra.Command, args []string) {
			runBenchmarks(cmd, opts)
		},
	}

	cmd.Flags().StringP("config", "c", "", "run configuration file (YAML or JSON)")
	cmd.Flags().StringP("filter", "f", "", "whole-name regexp selecting benchmarks")
	cmd.Flags().StringP("reporter", "r", "", "reporter name")
	cmd.Flags().IntP("samples", "s", 0, "timed trials per benchmark")
	cmd.Flags().Bool("no-analysis", false, "skip statistical analysis")
	cmd.Flags().String("sweep", "", "parameter sweep as name:op:init:step:count")
	return cmd
}

func runBenchmarks(cmd *cobra.Command, opts Options) {
	configFile, _ := cmd.Flags().GetString("config")
	filter, _ := cmd.Flags().GetString("filter")
	reporterName, _ := cmd.Flags().GetString("reporter")
	samples, _ := cmd.Flags().GetInt("samples")
	noAnalysis, _ := cmd.Flags().GetBool("no-analysis")
	sweep, _ := cmd.Flags().GetString("sweep")

	var cfg *config.Run
	if configFile != "" {
		data, err := os.ReadFile(configFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
			os.Exit(1)
		}
		if err := config.CheckDocument(data, configFile); err != nil {
			fmt.Fprintf(os.Stderr, "Error in config: %v\n", err)
			os.Exit(1)
		}
		cfg, err = config.Parse(data, configFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
			os.Exit(1)
		}
	} else {
		cfg = config.Default()
	}

	// Flags override file settings
	if filter != "" {
		cfg.Filter = filter
	}
	if reporterName != "" {
		cfg.Reporter = reporterName
	}
	if samples > 0 {
		cfg.Samples = samples
	}
	if noAnalysis {
		cfg.NoAnalysis = true
	}
	if sweep != "" {
		spec, err := parseSweep(sweep)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error in --sweep: %v\n", err)
			os.Exit(1)
		}
		cfg.Params = spec
	}

	if errs := config.Validate(cfg); len(errs) > 0 {
		for _, e := range errs {
			fmt.Fprintf(os.Stderr, "Config error: %s\n", e)
		}
		os.Exit(1)
	}

	err := runner.GoByName(cfg, opts.Reporters, clock.NewMonotonic(), opts.Benchmarks.All(), opts.Types)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Run failed: %v\n", err)
		os.Exit(1)
	}
}

// parseSweep parses "name:op:init:step:count" into a sweep spec.
func parseSweep(s string) (*params.RunSpec, error) {
	parts := strings.Split(s, ":")
	if len(parts) != 5 {
		return nil, fmt.Errorf("expected name:op:init:step:count, got %q", s)
	}
	count, err := strconv.Atoi(parts[4])
	if err != nil {
		return nil, fmt.Errorf("invalid count %q: %w", parts[4], err)
	}
	return &params.RunSpec{
		Name:  parts[0],
		Op:    parts[1],
		Init:  parts[2],
		Step:  parts[3],
		Count: count,
	}, nil
}
