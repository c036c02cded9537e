package runner

import (
	"errors"
	"fmt"

	"github.com/wesleyorama2/cadence/analysis"
	"github.com/wesleyorama2/cadence/bench"
	"github.com/wesleyorama2/cadence/clock"
	"github.com/wesleyorama2/cadence/config"
	"github.com/wesleyorama2/cadence/params"
	"github.com/wesleyorama2/cadence/report"
)

// ErrBenchmarkUser is returned when a benchmark's own setup or run
// code fails. The original failure is forwarded to the reporter's
// BenchmarkFailure and deliberately not carried past this error: the
// orchestrator only needs to know that a benchmark failed, not why.
var ErrBenchmarkUser = errors.New("benchmark user code failed")

// NoSuchReporterError indicates the configured reporter name is not
// registered.
type NoSuchReporterError struct {
	Name string
}

func (e *NoSuchReporterError) Error() string {
	return fmt.Sprintf("no such reporter %q", e.Name)
}

// GoByName resolves the configured reporter from the registry and
// validates the benchmark set, then runs the suite via Go. It fails
// before any reporter call when the reporter name is unknown or the
// benchmark set contains duplicate names.
func GoByName(cfg *config.Run, reporters *report.Registry, clk clock.Clock, benchmarks []bench.Benchmark, types *params.Registry) error {
	rep, ok := reporters.Get(cfg.Reporter)
	if !ok {
		return &NoSuchReporterError{Name: cfg.Reporter}
	}
	if err := bench.CheckDuplicates(benchmarks); err != nil {
		return err
	}
	return Go(cfg, rep, clk, benchmarks, types)
}

// Go runs every benchmark matching the configured filter, once per
// generated parameter set, driving the reporter through the full
// lifecycle protocol.
//
// Configuration errors (bad filter pattern, unknown sweep parameter)
// are detected before any reporter call. A failure inside a
// benchmark's own code is reported via BenchmarkFailure and then
// aborts the rest of the run: Go returns ErrBenchmarkUser and
// SuiteComplete is never called. Execution is strictly sequential.
func Go(cfg *config.Run, rep report.Reporter, clk clock.Clock, benchmarks []bench.Benchmark, types *params.Registry) error {
	filtered, err := bench.Filter(benchmarks, cfg.Filter)
	if err != nil {
		return err
	}
	sweep, err := generateSweep(cfg, types)
	if err != nil {
		return err
	}

	rep.Configure(cfg)
	env := calibrate(clk, rep)
	rep.SuiteStart()

	for _, set := range sweep {
		rep.ParamsStart(set)
		for _, b := range filtered {
			rep.BenchmarkStart(b.Name)

			setup := b.Setup
			plan, err := guard(rep, func() (*bench.Plan, error) {
				r, err := setup(bench.Input{Params: set, Env: env})
				if err != nil {
					return nil, err
				}
				return bench.NewPlan(b.Name, r, clk, cfg.Samples), nil
			})
			if err != nil {
				return err
			}

			rep.MeasurementStart(plan)
			samples, err := guard(rep, plan.Run)
			if err != nil {
				return err
			}
			rep.MeasurementComplete(samples)

			if !cfg.NoAnalysis {
				rep.AnalysisStart()
				rep.AnalysisComplete(analysis.Analyse(samples))
			}
			rep.BenchmarkComplete()
		}
		rep.ParamsComplete()
	}

	rep.SuiteComplete()
	return nil
}

// calibrate measures the ambient timing environment once per run,
// bracketing each step with the matching reporter calls.
func calibrate(clk clock.Clock, rep report.Reporter) clock.Environment {
	rep.WarmupStart()
	iters := clock.Warmup(clk)
	rep.WarmupEnd(iters)

	rep.EstimateClockResolutionStart()
	res := clock.EstimateResolution(clk, iters)
	rep.EstimateClockResolutionComplete(res)

	rep.EstimateClockCostStart()
	cost := clock.EstimateCost(clk, res.Mean)
	rep.EstimateClockCostComplete(cost)

	return clock.Environment{Resolution: res, Cost: cost}
}

// generateSweep expands the configured sweep into an ordered sequence
// of parameter sets. No sweep yields a single empty set; a sweep with
// count n yields exactly n sets, stepping the value between emissions.
// Each emitted value is persisted into the spec's Current map.
func generateSweep(cfg *config.Run, types *params.Registry) ([]*params.Set, error) {
	spec := cfg.Params
	if spec == nil {
		return []*params.Set{params.NewSet()}, nil
	}

	if types == nil {
		return nil, &params.UnknownParameterError{Name: spec.Name}
	}
	ops, ok := types.Lookup(spec.Name)
	if !ok {
		return nil, &params.UnknownParameterError{Name: spec.Name}
	}

	var step func(current, step string) (string, error)
	switch spec.Op {
	case "+":
		step = ops.Add
	case "*":
		step = ops.Mul
	default:
		return nil, fmt.Errorf("unknown sweep operator %q for parameter %q", spec.Op, spec.Name)
	}

	out := make([]*params.Set, 0, spec.Count)
	current := spec.Init
	for i := 0; i < spec.Count; i++ {
		set := params.NewSet()
		set.Put(spec.Name, current)
		if spec.Current == nil {
			spec.Current = make(map[string]string)
		}
		spec.Current[spec.Name] = current
		out = append(out, set)

		next, err := step(current, spec.Step)
		if err != nil {
			return nil, fmt.Errorf("stepping parameter %q: %w", spec.Name, err)
		}
		current = next
	}
	return out, nil
}

// guard wraps one invocation of benchmark-authoring code. Any failure,
// whether an error return or a panic, is forwarded to the reporter and
// replaced with ErrBenchmarkUser so the orchestrator treats every user
// failure uniformly.
func guard[T any](rep report.Reporter, fn func() (T, error)) (val T, err error) {
	defer func() {
		if r := recover(); r != nil {
			rep.BenchmarkFailure(fmt.Errorf("panic: %v", r))
			var zero T
			val, err = zero, ErrBenchmarkUser
		}
	}()

	val, err = fn()
	if err != nil {
		rep.BenchmarkFailure(err)
		var zero T
		return zero, ErrBenchmarkUser
	}
	return val, nil
}
