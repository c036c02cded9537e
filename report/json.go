package report

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/wesleyorama2/cadence/analysis"
	"github.com/wesleyorama2/cadence/bench"
	"github.com/wesleyorama2/cadence/clock"
	"github.com/wesleyorama2/cadence/config"
	"github.com/wesleyorama2/cadence/params"
)

// Document is the top-level JSON report for one run. Durations are
// serialized as integer nanoseconds.
type Document struct {
	Name    string            `json:"name,omitempty"`
	Filter  string            `json:"filter,omitempty"`
	Samples int               `json:"samples"`
	Clock   clock.Environment `json:"clock"`
	Warmup  int               `json:"warmupIterations"`
	Runs    []RunRecord       `json:"runs"`
}

// RunRecord groups the benchmarks of one parameter set.
type RunRecord struct {
	Params     map[string]string `json:"params,omitempty"`
	Benchmarks []BenchmarkRecord `json:"benchmarks"`
}

// BenchmarkRecord captures one benchmark's measurement.
type BenchmarkRecord struct {
	Name     string           `json:"name"`
	Samples  []int64          `json:"samples,omitempty"`
	Analysis *analysis.Result `json:"analysis,omitempty"`
	Failure  string           `json:"failure,omitempty"`
}

// JSON accumulates a run into a Document and writes it, indented, when
// the suite completes. If the run aborts early the document is never
// written; partial results go to whatever reporter the failure reached.
type JSON struct {
	w   io.Writer
	doc Document
}

// NewJSON creates a JSON reporter writing to w.
func NewJSON(w io.Writer) *JSON {
	return &JSON{w: w}
}

func (j *JSON) Configure(cfg *config.Run) {
	j.doc = Document{
		Name:    cfg.Name,
		Filter:  cfg.Filter,
		Samples: cfg.Samples,
	}
}

func (j *JSON) WarmupStart() {}

func (j *JSON) WarmupEnd(iterations int) {
	j.doc.Warmup = iterations
}

func (j *JSON) EstimateClockResolutionStart() {}

func (j *JSON) EstimateClockResolutionComplete(est clock.Estimate) {
	j.doc.Clock.Resolution = est
}

func (j *JSON) EstimateClockCostStart() {}

func (j *JSON) EstimateClockCostComplete(est clock.Estimate) {
	j.doc.Clock.Cost = est
}

func (j *JSON) SuiteStart() {}

func (j *JSON) ParamsStart(set *params.Set) {
	rec := RunRecord{}
	if set.Len() > 0 {
		rec.Params = make(map[string]string, set.Len())
		for _, name := range set.Names() {
			v, _ := set.Get(name)
			rec.Params[name] = v
		}
	}
	j.doc.Runs = append(j.doc.Runs, rec)
}

func (j *JSON) BenchmarkStart(name string) {
	run := j.currentRun()
	run.Benchmarks = append(run.Benchmarks, BenchmarkRecord{Name: name})
}

func (j *JSON) BenchmarkFailure(err error) {
	if b := j.currentBenchmark(); b != nil {
		b.Failure = err.Error()
	}
}

func (j *JSON) MeasurementStart(plan *bench.Plan) {}

func (j *JSON) MeasurementComplete(samples bench.Samples) {
	b := j.currentBenchmark()
	if b == nil {
		return
	}
	b.Samples = make([]int64, len(samples))
	for i, s := range samples {
		b.Samples[i] = int64(s)
	}
}

func (j *JSON) AnalysisStart() {}

func (j *JSON) AnalysisComplete(result analysis.Result) {
	if b := j.currentBenchmark(); b != nil {
		b.Analysis = &result
	}
}

func (j *JSON) BenchmarkComplete() {}

func (j *JSON) ParamsComplete() {}

func (j *JSON) SuiteComplete() {
	enc := json.NewEncoder(j.w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(j.doc); err != nil {
		fmt.Fprintf(j.w, `{"error":%q}`, err.Error())
	}
}

func (j *JSON) currentRun() *RunRecord {
	if len(j.doc.Runs) == 0 {
		// BenchmarkStart without ParamsStart only happens if the
		// protocol is driven by hand; tolerate it.
		j.doc.Runs = append(j.doc.Runs, RunRecord{})
	}
	return &j.doc.Runs[len(j.doc.Runs)-1]
}

func (j *JSON) currentBenchmark() *BenchmarkRecord {
	run := j.currentRun()
	if len(run.Benchmarks) == 0 {
		return nil
	}
	return &run.Benchmarks[len(run.Benchmarks)-1]
}
