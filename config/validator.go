package config

import (
	"fmt"
	"regexp"
)

// ValidationError represents a configuration validation error
type ValidationError struct {
	Path    string
	Message string
}

// Error returns the error message
func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Path, e.Message)
}

// Validate validates the configuration. Defaults should be applied
// first; Load and Parse do this for you.
func Validate(cfg *Run) []ValidationError {
	var errors []ValidationError

	if cfg.Samples < 1 {
		errors = append(errors, ValidationError{
			Path:    "samples",
			Message: "must be at least 1",
		})
	}

	if cfg.Reporter == "" {
		errors = append(errors, ValidationError{
			Path:    "reporter",
			Message: "reporter name is required",
		})
	}

	if cfg.Filter != "" {
		if _, err := regexp.Compile(cfg.Filter); err != nil {
			errors = append(errors, ValidationError{
				Path:    "filter",
				Message: fmt.Sprintf("invalid pattern: %v", err),
			})
		}
	}

	if p := cfg.Params; p != nil {
		if p.Name == "" {
			errors = append(errors, ValidationError{
				Path:    "params.name",
				Message: "parameter name is required",
			})
		}
		if p.Op != "+" && p.Op != "*" {
			errors = append(errors, ValidationError{
				Path:    "params.op",
				Message: fmt.Sprintf("operator must be \"+\" or \"*\", got %q", p.Op),
			})
		}
		if p.Count < 0 {
			errors = append(errors, ValidationError{
				Path:    "params.count",
				Message: "count must not be negative",
			})
		}
		if p.Init == "" {
			errors = append(errors, ValidationError{
				Path:    "params.init",
				Message: "initial value is required",
			})
		}
		if p.Step == "" {
			errors = append(errors, ValidationError{
				Path:    "params.step",
				Message: "step value is required",
			})
		}
	}

	return errors
}
