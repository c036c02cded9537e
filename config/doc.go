// Package config provides loading and validation for benchmark run
// configuration files.
//
// A run configuration selects which benchmarks to run, how many
// samples to take, which reporter renders the run, and optionally how
// a named parameter sweeps across it.
//
// Basic Usage:
//
//	cfg, err := config.Load("bench.yaml")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	if errs := config.Validate(cfg); len(errs) > 0 {
//	    for _, e := range errs {
//	        log.Printf("config error: %s", e)
//	    }
//	    os.Exit(1)
//	}
//
// Configuration files may be YAML or JSON, selected by extension:
//
//	name: sort benchmarks
//	filter: "sort/.*"
//	samples: 200
//	params:
//	  name: n
//	  op: "*"
//	  init: "16"
//	  step: "2"
//	  count: 5
//
// CheckDocument validates a raw document against the run schema before
// decoding, which catches structural mistakes with better messages
// than decode errors give.
package config
