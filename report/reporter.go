package report

import (
	"github.com/wesleyorama2/cadence/analysis"
	"github.com/wesleyorama2/cadence/bench"
	"github.com/wesleyorama2/cadence/clock"
	"github.com/wesleyorama2/cadence/config"
	"github.com/wesleyorama2/cadence/params"
)

// Reporter receives the ordered lifecycle notifications of a run.
//
// The orchestrator drives every reporter through the same fixed
// sequence: Configure, the six calibration calls, SuiteStart, then per
// parameter set ParamsStart, per benchmark BenchmarkStart through
// BenchmarkComplete, ParamsComplete, and finally SuiteComplete.
// BenchmarkFailure is called only when a benchmark's own code fails,
// in place of the remaining calls for that benchmark; the analysis
// pair is skipped when analysis is disabled.
//
// Implementations are free to ignore any callback. They can assume the
// sequence above: calls arrive from a single goroutine, and a
// MeasurementComplete always belongs to the most recent
// BenchmarkStart.
type Reporter interface {
	// Configure announces the run's settings before anything executes.
	Configure(cfg *config.Run)

	// Calibration callbacks, in call order.
	WarmupStart()
	WarmupEnd(iterations int)
	EstimateClockResolutionStart()
	EstimateClockResolutionComplete(est clock.Estimate)
	EstimateClockCostStart()
	EstimateClockCostComplete(est clock.Estimate)

	SuiteStart()
	ParamsStart(set *params.Set)
	BenchmarkStart(name string)

	// BenchmarkFailure carries the original failure from the
	// benchmark's own code. It is the only place that failure is
	// observable; the orchestrator sees a generic error afterwards.
	BenchmarkFailure(err error)

	MeasurementStart(plan *bench.Plan)
	MeasurementComplete(samples bench.Samples)
	AnalysisStart()
	AnalysisComplete(result analysis.Result)
	BenchmarkComplete()
	ParamsComplete()
	SuiteComplete()
}
