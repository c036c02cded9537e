package report

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"

	"github.com/wesleyorama2/cadence/analysis"
	"github.com/wesleyorama2/cadence/bench"
	"github.com/wesleyorama2/cadence/clock"
	"github.com/wesleyorama2/cadence/config"
	"github.com/wesleyorama2/cadence/params"
)

// ColorScheme defines the colors used for different elements in
// console output.
type ColorScheme struct {
	Title     *color.Color
	Benchmark *color.Color
	Param     *color.Color
	Detail    *color.Color
	Success   *color.Color
	Error     *color.Color
}

// DefaultColorScheme returns the default color scheme.
func DefaultColorScheme() *ColorScheme {
	return &ColorScheme{
		Title:     color.New(color.FgCyan, color.Bold),
		Benchmark: color.New(color.FgWhite, color.Bold),
		Param:     color.New(color.FgMagenta),
		Detail:    color.New(color.Faint),
		Success:   color.New(color.FgGreen),
		Error:     color.New(color.FgRed, color.Bold),
	}
}

// NoColorScheme returns a color scheme with all colors disabled.
func NoColorScheme() *ColorScheme {
	scheme := DefaultColorScheme()
	scheme.Title.DisableColor()
	scheme.Benchmark.DisableColor()
	scheme.Param.DisableColor()
	scheme.Detail.DisableColor()
	scheme.Success.DisableColor()
	scheme.Error.DisableColor()
	return scheme
}

// Console renders run progress and results as human-readable text.
type Console struct {
	w       io.Writer
	scheme  *ColorScheme
	samples int
}

// ConsoleConfig contains configuration for the console reporter.
type ConsoleConfig struct {
	// Writer receives the output. Defaults to os.Stdout.
	Writer io.Writer

	// ForceColors enables color even when Writer is not a terminal.
	ForceColors bool
}

// NewConsole creates a console reporter. Colors are used when the
// writer is a terminal and NO_COLOR is unset, matching fatih/color
// conventions.
func NewConsole(cfg ConsoleConfig) *Console {
	w := cfg.Writer
	if w == nil {
		w = os.Stdout
	}

	scheme := DefaultColorScheme()
	if !cfg.ForceColors && !writerIsTerminal(w) {
		scheme = NoColorScheme()
	}

	return &Console{w: w, scheme: scheme}
}

func writerIsTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

func (c *Console) Configure(cfg *config.Run) {
	name := cfg.Name
	if name == "" {
		name = "benchmark suite"
	}
	c.scheme.Title.Fprintln(c.w, name)
	fmt.Fprintf(c.w, "filter: %s  samples: %d  reporter: %s\n", cfg.Filter, cfg.Samples, cfg.Reporter)
	if cfg.Params != nil {
		fmt.Fprintf(c.w, "sweep: %s %s from %s step %s, %d runs\n",
			cfg.Params.Name, cfg.Params.Op, cfg.Params.Init, cfg.Params.Step, cfg.Params.Count)
	}
}

func (c *Console) WarmupStart() {
	c.scheme.Detail.Fprintln(c.w, "clock: warming up")
}

func (c *Console) WarmupEnd(iterations int) {
	c.scheme.Detail.Fprintf(c.w, "clock: warmed up in %d iterations\n", iterations)
}

func (c *Console) EstimateClockResolutionStart() {
	c.scheme.Detail.Fprintln(c.w, "clock: estimating resolution")
}

func (c *Console) EstimateClockResolutionComplete(est clock.Estimate) {
	c.scheme.Detail.Fprintf(c.w, "clock: resolution %v (stddev %v, %d samples)\n",
		est.Mean, est.StdDev, est.Samples)
}

func (c *Console) EstimateClockCostStart() {
	c.scheme.Detail.Fprintln(c.w, "clock: estimating read cost")
}

func (c *Console) EstimateClockCostComplete(est clock.Estimate) {
	c.scheme.Detail.Fprintf(c.w, "clock: read cost %v (stddev %v, %d samples)\n",
		est.Mean, est.StdDev, est.Samples)
}

func (c *Console) SuiteStart() {
	fmt.Fprintln(c.w)
}

func (c *Console) ParamsStart(set *params.Set) {
	if set.Len() > 0 {
		c.scheme.Param.Fprintf(c.w, "parameters: %s\n", set)
	}
}

func (c *Console) BenchmarkStart(name string) {
	c.scheme.Benchmark.Fprintf(c.w, "  %s\n", name)
}

func (c *Console) BenchmarkFailure(err error) {
	c.scheme.Error.Fprintf(c.w, "    failure: %v\n", err)
}

func (c *Console) MeasurementStart(plan *bench.Plan) {
	c.samples = 0
}

func (c *Console) MeasurementComplete(samples bench.Samples) {
	c.samples = len(samples)
}

func (c *Console) AnalysisStart() {}

func (c *Console) AnalysisComplete(result analysis.Result) {
	fmt.Fprintf(c.w, "    mean %v  stddev %v\n", result.Mean, result.StdDev)
	fmt.Fprintf(c.w, "    min %v  p50 %v  p95 %v  p99 %v  max %v\n",
		result.Min, result.P50, result.P95, result.P99, result.Max)
}

func (c *Console) BenchmarkComplete() {
	c.scheme.Detail.Fprintf(c.w, "    %d samples\n", c.samples)
}

func (c *Console) ParamsComplete() {
	fmt.Fprintln(c.w)
}

func (c *Console) SuiteComplete() {
	c.scheme.Success.Fprintln(c.w, "suite complete")
}
