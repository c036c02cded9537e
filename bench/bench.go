package bench

import (
	"fmt"
	"regexp"
	"time"

	"github.com/wesleyorama2/cadence/clock"
	"github.com/wesleyorama2/cadence/params"
)

// Runner executes one timed trial of a benchmark. The harness times
// the whole call, so a Runner should do nothing but the measured work.
type Runner func() error

// Input carries everything a benchmark may need while preparing: the
// parameter values for this pass and the calibrated environment.
type Input struct {
	Params *params.Set
	Env    clock.Environment
}

// SetupFunc prepares a benchmark for one parameter set. It runs once
// per (parameter set, benchmark) pair and returns the Runner to be
// measured. Setup cost is not measured.
type SetupFunc func(in Input) (Runner, error)

// Benchmark is a named, user-supplied unit of measurable work.
type Benchmark struct {
	Name  string
	Setup SetupFunc
}

// Samples is the ordered sequence of per-trial elapsed times produced
// by running a Plan.
type Samples []time.Duration

// Plan is the prepared, ready-to-run form of a benchmark: a Runner
// bound to the clock and the number of trials to take.
type Plan struct {
	name    string
	runner  Runner
	clk     clock.Clock
	samples int
}

// NewPlan binds a prepared Runner to a clock and a trial count.
func NewPlan(name string, r Runner, clk clock.Clock, samples int) *Plan {
	return &Plan{name: name, runner: r, clk: clk, samples: samples}
}

// Name returns the name of the benchmark this plan was prepared from.
func (p *Plan) Name() string {
	return p.name
}

// Run takes one timed sample per trial. The first trial failure aborts
// the plan and discards any samples already taken.
func (p *Plan) Run() (Samples, error) {
	out := make(Samples, 0, p.samples)
	for i := 0; i < p.samples; i++ {
		start := p.clk.Now()
		if err := p.runner(); err != nil {
			return nil, err
		}
		out = append(out, p.clk.Now()-start)
	}
	return out, nil
}

// Registry is an ordered collection of benchmarks. Registration order
// is execution order.
type Registry struct {
	benchmarks []Benchmark
}

// NewRegistry creates an empty benchmark registry.
func NewRegistry() *Registry {
	return &Registry{}
}

// Register appends a benchmark. Duplicate names are allowed here and
// rejected later by CheckDuplicates, so registration mistakes surface
// as a run-level error rather than a silent overwrite.
func (r *Registry) Register(name string, setup SetupFunc) {
	r.benchmarks = append(r.benchmarks, Benchmark{Name: name, Setup: setup})
}

// All returns the registered benchmarks in registration order.
func (r *Registry) All() []Benchmark {
	out := make([]Benchmark, len(r.benchmarks))
	copy(out, r.benchmarks)
	return out
}

// Len returns the number of registered benchmarks.
func (r *Registry) Len() int {
	return len(r.benchmarks)
}

// Filter returns the ordered subsequence of benchmarks whose names
// match pattern in full. Substring hits do not count: the pattern is
// anchored to the whole name.
func Filter(list []Benchmark, pattern string) ([]Benchmark, error) {
	re, err := regexp.Compile("^(?:" + pattern + ")$")
	if err != nil {
		return nil, &InvalidFilterPatternError{Pattern: pattern, Err: err}
	}
	out := make([]Benchmark, 0, len(list))
	for _, b := range list {
		if re.MatchString(b.Name) {
			out = append(out, b)
		}
	}
	return out, nil
}

// CheckDuplicates verifies no two benchmarks share a name, reporting
// the first duplicate in registration order.
func CheckDuplicates(list []Benchmark) error {
	seen := make(map[string]struct{}, len(list))
	for _, b := range list {
		if _, ok := seen[b.Name]; ok {
			return &DuplicateBenchmarkError{Name: b.Name}
		}
		seen[b.Name] = struct{}{}
	}
	return nil
}

// DuplicateBenchmarkError indicates two registered benchmarks share a
// name.
type DuplicateBenchmarkError struct {
	Name string
}

func (e *DuplicateBenchmarkError) Error() string {
	return fmt.Sprintf("duplicate benchmark %q", e.Name)
}

// InvalidFilterPatternError indicates the configured filter is not a
// valid regular expression.
type InvalidFilterPatternError struct {
	Pattern string
	Err     error
}

func (e *InvalidFilterPatternError) Error() string {
	return fmt.Sprintf("invalid filter pattern %q: %v", e.Pattern, e.Err)
}

func (e *InvalidFilterPatternError) Unwrap() error {
	return e.Err
}
