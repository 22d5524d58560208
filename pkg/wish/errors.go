package wish

import (
	"errors"
	"fmt"
)

// ConfigurationError reports a missing or unusable piece of startup configuration
type ConfigurationError struct {
	Component string // Component that cannot operate, e.g. "sheets"
	Err       error
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("%s is not configured: %v", e.Component, e.Err)
}

func (e *ConfigurationError) Unwrap() error {
	return e.Err
}

// UpstreamError reports a failed call to an external API
type UpstreamError struct {
	Service string // External service name, e.g. "google sheets"
	Err     error
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("%s request failed: %v", e.Service, e.Err)
}

func (e *UpstreamError) Unwrap() error {
	return e.Err
}

// ValidationError reports a bad client submission
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Reason)
}

// IsConfiguration reports whether err is or wraps a ConfigurationError
func IsConfiguration(err error) bool {
	var target *ConfigurationError
	return errors.As(err, &target)
}

// IsUpstream reports whether err is or wraps an UpstreamError
func IsUpstream(err error) bool {
	var target *UpstreamError
	return errors.As(err, &target)
}

// IsValidation reports whether err is or wraps a ValidationError
func IsValidation(err error) bool {
	var target *ValidationError
	return errors.As(err, &target)
}
