package core

import (
	"errors"
	"fmt"
)

// ErrConfiguration is the sentinel all translation-time semantic errors
// unwrap to.
var ErrConfiguration = errors.New("invalid configuration")

// ConfigurationError reports input that passed schema validation but is
// semantically invalid: a missing required key, a malformed version
// specifier, a value of the wrong shape. It aborts the whole
// translation; no partial model is considered valid.
type ConfigurationError struct {
	Field  string
	Reason string
	Err    error
}

func (e *ConfigurationError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Field, e.Reason, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Field, e.Reason)
}

func (e *ConfigurationError) Unwrap() error {
	if e.Err != nil {
		return e.Err
	}
	return ErrConfiguration
}

// Is lets errors.Is(err, ErrConfiguration) hold even when a cause is
// attached.
func (e *ConfigurationError) Is(target error) bool {
	return target == ErrConfiguration
}

// ConfigError builds a ConfigurationError for a field.
func ConfigError(field, reason string) *ConfigurationError {
	return &ConfigurationError{Field: field, Reason: reason}
}

// ConfigErrorWrap builds a ConfigurationError carrying an underlying
// cause (e.g. a specifier parse failure).
func ConfigErrorWrap(field, reason string, err error) *ConfigurationError {
	return &ConfigurationError{Field: field, Reason: reason, Err: err}
}

// SchemaError reports a document rejected by the external schema
// validator before translation starts. Path points at the offending
// field using dotted notation (e.g. "project.authors[0]").
type SchemaError struct {
	Path    string
	Message string
}

func (e *SchemaError) Error() string {
	if e.Path == "" {
		return e.Message
	}
	return fmt.Sprintf("%s: %s", e.Path, e.Message)
}
