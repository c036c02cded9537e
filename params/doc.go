// Package params provides parameter sets and sweep specifications for
// benchmark runs.
//
// A Set is one concrete assignment of parameter values, passed into a
// benchmark's setup. A RunSpec describes how a single named parameter
// sweeps across a run: start at an initial value and advance by a step
// under "+" or "*", a fixed number of times.
//
// Parameter values travel as strings; the Registry binds each
// parameter name to the Ops that know how to step values of its type:
//
//	types := params.NewRegistry()
//	types.Register("n", params.Int64Ops())
//
//	spec := &params.RunSpec{Name: "n", Op: "*", Init: "16", Step: "2", Count: 5}
//	// generates n=16, 32, 64, 128, 256
package params
