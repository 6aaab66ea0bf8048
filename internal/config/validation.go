package config

import (
	"fmt"
	"net"
)

// maxEventWaitMS keeps EventSetWait from stalling callers for long.
const maxEventWaitMS = 60000

// Validate checks if the configuration is valid
func (c *Config) Validate() []ValidationError {
	var errors []ValidationError

	errors = append(errors, c.validateLogging()...)
	errors = append(errors, c.validateEvents()...)
	errors = append(errors, c.validateServer()...)
	errors = append(errors, c.validateSampling()...)
	errors = append(errors, c.validateLayout()...)

	return errors
}

func (c *Config) validateLogging() []ValidationError {
	var errors []ValidationError
	validLevels := []string{"debug", "info", "warn", "error"}
	if !contains(validLevels, c.Logging.Level) {
		errors = append(errors, ValidationError{
			Path:    "logging.level",
			Message: fmt.Sprintf("must be one of %v, got '%s'", validLevels, c.Logging.Level),
		})
	}

	validFormats := []string{"json", "text"}
	if !contains(validFormats, c.Logging.Format) {
		errors = append(errors, ValidationError{
			Path:    "logging.format",
			Message: fmt.Sprintf("must be one of %v, got '%s'", validFormats, c.Logging.Format),
		})
	}

	return errors
}

func (c *Config) validateEvents() []ValidationError {
	if c.Events.MaxWaitMS >= 0 && c.Events.MaxWaitMS <= maxEventWaitMS {
		return nil
	}

	return []ValidationError{{
		Path:    "events.max_wait_ms",
		Message: fmt.Sprintf("must be between 0 and %d, got %d", maxEventWaitMS, c.Events.MaxWaitMS),
	}}
}

func (c *Config) validateServer() []ValidationError {
	var errors []ValidationError

	if _, _, err := net.SplitHostPort(c.Server.Listen); err != nil {
		errors = append(errors, ValidationError{
			Path:    "server.listen",
			Message: fmt.Sprintf("must be host:port, got '%s'", c.Server.Listen),
		})
	}

	if c.Server.ReadTimeoutSeconds < 1 {
		errors = append(errors, ValidationError{
			Path:    "server.read_timeout_seconds",
			Message: fmt.Sprintf("must be at least 1, got %d", c.Server.ReadTimeoutSeconds),
		})
	}

	return errors
}

func (c *Config) validateSampling() []ValidationError {
	var errors []ValidationError

	if c.Sampling.IntervalSeconds < 1 {
		errors = append(errors, ValidationError{
			Path:    "sampling.interval_seconds",
			Message: fmt.Sprintf("must be at least 1, got %d", c.Sampling.IntervalSeconds),
		})
	}

	if c.Sampling.Output == "" {
		errors = append(errors, ValidationError{
			Path:    "sampling.output",
			Message: "must not be empty",
		})
	}

	return errors
}

func (c *Config) validateLayout() []ValidationError {
	var errors []ValidationError

	if c.Layout.Base == "" {
		errors = append(errors, ValidationError{Path: "layout.base", Message: "must not be empty"})
	}
	if c.Layout.DriverRoot == "" {
		errors = append(errors, ValidationError{Path: "layout.driver_root", Message: "must not be empty"})
	}
	if c.Layout.Machine == "" {
		errors = append(errors, ValidationError{Path: "layout.machine", Message: "must not be empty"})
	}

	return errors
}

// contains checks if a string is in a slice
func contains(slice []string, item string) bool {
	for _, s := range slice {
		if s == item {
			return true
		}
	}
	return false
}
