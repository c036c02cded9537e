// Package bench defines benchmarks and the machinery that selects and
// prepares them for measurement.
//
// A Benchmark pairs a name with a SetupFunc. Setup runs once per
// parameter set and returns the Runner whose calls get timed:
//
//	reg := bench.NewRegistry()
//	reg.Register("sort/ints", func(in bench.Input) (bench.Runner, error) {
//	    n, err := in.Params.GetInt("n", 1024)
//	    if err != nil {
//	        return nil, err
//	    }
//	    data := makeInput(int(n))
//	    return func() error {
//	        buf := make([]int, len(data))
//	        copy(buf, data)
//	        sort.Ints(buf)
//	        return nil
//	    }, nil
//	})
//
// The runner package turns a prepared benchmark into a Plan, runs it,
// and hands the resulting Samples to analysis and reporting.
package bench
