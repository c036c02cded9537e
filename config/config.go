package config

import (
	"github.com/wesleyorama2/cadence/params"
)

// Run holds the run-wide settings for one harness invocation. A Run is
// built by the caller (or loaded from a file) before the orchestrator
// starts and is not modified during the run.
type Run struct {
	// Name labels the run in reporter output.
	Name string `yaml:"name,omitempty" json:"name,omitempty"`

	// Filter selects benchmarks by whole-name regular expression
	// match. The default ".*" matches everything.
	Filter string `yaml:"filter,omitempty" json:"filter,omitempty"`

	// Reporter names the reporter to resolve from the reporter
	// registry. Defaults to "console".
	Reporter string `yaml:"reporter,omitempty" json:"reporter,omitempty"`

	// NoAnalysis skips statistical analysis after measurement.
	NoAnalysis bool `yaml:"noAnalysis,omitempty" json:"noAnalysis,omitempty"`

	// Samples is the number of timed trials taken per benchmark.
	// Defaults to 100.
	Samples int `yaml:"samples,omitempty" json:"samples,omitempty"`

	// Params optionally sweeps one named parameter across the run.
	Params *params.RunSpec `yaml:"params,omitempty" json:"params,omitempty"`
}

// Defaults for fields left zero by the caller or the config file.
const (
	DefaultFilter   = ".*"
	DefaultReporter = "console"
	DefaultSamples  = 100
)

// Default returns a Run with every default applied.
func Default() *Run {
	cfg := &Run{}
	ApplyDefaults(cfg)
	return cfg
}

// ApplyDefaults fills in defaults for unset fields.
func ApplyDefaults(cfg *Run) {
	if cfg.Filter == "" {
		cfg.Filter = DefaultFilter
	}
	if cfg.Reporter == "" {
		cfg.Reporter = DefaultReporter
	}
	if cfg.Samples == 0 {
		cfg.Samples = DefaultSamples
	}
}
