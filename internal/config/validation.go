package config

import (
	"slices"
	"strings"
)

const maxWorkers = 256

var (
	validOutputs   = []string{OutputText, OutputJSON}
	validLogLevels = []string{"debug", "info", "warn", "error"}
)

// Validate checks the configuration for correctness.
func Validate(cfg *Config) error {
	var errs []ValidationError

	if cfg.Workers < 1 || cfg.Workers > maxWorkers {
		errs = append(errs, ValidationError{
			Field:   "workers",
			Message: "must be between 1 and 256",
			Value:   cfg.Workers,
		})
	}

	if !slices.Contains(validOutputs, cfg.Output) {
		errs = append(errs, ValidationError{
			Field:   "output",
			Message: "must be one of: " + strings.Join(validOutputs, ", "),
			Value:   cfg.Output,
		})
	}

	if !slices.Contains(validLogLevels, cfg.Log.Level) {
		errs = append(errs, ValidationError{
			Field:   "log.level",
			Message: "must be one of: " + strings.Join(validLogLevels, ", "),
			Value:   cfg.Log.Level,
		})
	}

	if len(errs) > 0 {
		return &ValidationErrors{Errors: errs}
	}
	return nil
}
