// Package runner is the execution core of the harness: it calibrates
// the timing environment, expands the parameter sweep, filters and
// validates benchmarks, and drives each one through measurement,
// analysis, and reporting.
//
// The entry points are Go and GoByName. GoByName additionally resolves
// the reporter by name and rejects duplicate benchmark names:
//
//	cfg := config.Default()
//	err := runner.GoByName(cfg, reporters, clock.NewMonotonic(), benchmarks.All(), types)
//
// # Failure model
//
// Configuration problems (unknown reporter, duplicate names, bad
// filter pattern, unknown sweep parameter) abort before any reporter
// call. A failure inside a benchmark's own code is different: the
// original error reaches the reporter through BenchmarkFailure, and
// the run then stops with ErrBenchmarkUser. There is no skip-and-
// continue mode; one misbehaving benchmark aborts the whole suite.
//
// # Execution model
//
// Everything is sequential and synchronous on the calling goroutine.
// The calibrated Environment is computed once, before the first
// benchmark, and shared read-only across the run.
package runner
