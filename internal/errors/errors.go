package errors

import (
	"fmt"
	"time"
)

// Error types for the surname clustering tool
type ErrorType string

const (
	// Input errors
	ErrorTypeInput      ErrorType = "input"
	ErrorTypePermission ErrorType = "permission"

	// Output errors
	ErrorTypeExport ErrorType = "export"

	// Reference data errors
	ErrorTypeTaxonomy ErrorType = "taxonomy"

	// Configuration errors
	ErrorTypeConfig ErrorType = "config"
)

// InputError represents a failure reading a surname source
type InputError struct {
	Type       ErrorType
	Path       string
	Operation  string
	Line       int
	Underlying error
	Timestamp  time.Time
}

// NewInputError creates a new input error
func NewInputError(op, path string, err error) *InputError {
	errorType := ErrorTypeInput
	if isPermissionError(err) {
		errorType = ErrorTypePermission
	}

	return &InputError{
		Type:       errorType,
		Path:       path,
		Operation:  op,
		Underlying: err,
		Timestamp:  time.Now(),
	}
}

// WithLine adds the offending line number to the error
func (e *InputError) WithLine(line int) *InputError {
	e.Line = line
	return e
}

// isPermissionError checks if the error is a permission error
func isPermissionError(err error) bool {
	if err == nil {
		return false
	}
	errStr := err.Error()
	return errStr == "permission denied" || errStr == "access denied"
}

// Error implements the error interface
func (e *InputError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("%s %s failed for %s:%d: %v", e.Type, e.Operation, e.Path, e.Line, e.Underlying)
	}
	return fmt.Sprintf("%s %s failed for %s: %v", e.Type, e.Operation, e.Path, e.Underlying)
}

// Unwrap returns the underlying error for errors.Is/As
func (e *InputError) Unwrap() error {
	return e.Underlying
}

// ExportError represents a failure writing clusters in some format
type ExportError struct {
	Type       ErrorType
	Format     string
	Path       string
	Underlying error
	Timestamp  time.Time
}

// NewExportError creates a new export error
func NewExportError(format, path string, err error) *ExportError {
	return &ExportError{
		Type:       ErrorTypeExport,
		Format:     format,
		Path:       path,
		Underlying: err,
		Timestamp:  time.Now(),
	}
}

// Error implements the error interface
func (e *ExportError) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("%s export to %s failed: %v", e.Format, e.Path, e.Underlying)
	}
	return fmt.Sprintf("%s export failed: %v", e.Format, e.Underlying)
}

// Unwrap returns the underlying error
func (e *ExportError) Unwrap() error {
	return e.Underlying
}

// TaxonomyError represents a bad surname record in reference data
type TaxonomyError struct {
	Type       ErrorType
	Key        string
	SubID      int
	Underlying error
	Timestamp  time.Time
}

// NewTaxonomyError creates a new taxonomy error
func NewTaxonomyError(key string, subID int, err error) *TaxonomyError {
	return &TaxonomyError{
		Type:       ErrorTypeTaxonomy,
		Key:        key,
		SubID:      subID,
		Underlying: err,
		Timestamp:  time.Now(),
	}
}

// Error implements the error interface
func (e *TaxonomyError) Error() string {
	return fmt.Sprintf("taxonomy error for surname %q (sub_id %d): %v", e.Key, e.SubID, e.Underlying)
}

// Unwrap returns the underlying error
func (e *TaxonomyError) Unwrap() error {
	return e.Underlying
}

// ConfigError represents a configuration error
type ConfigError struct {
	Field      string
	Value      string
	Underlying error
	Timestamp  time.Time
}

// NewConfigError creates a new config error
func NewConfigError(field, value string, err error) *ConfigError {
	return &ConfigError{
		Field:      field,
		Value:      value,
		Underlying: err,
		Timestamp:  time.Now(),
	}
}

// Error implements the error interface
func (e *ConfigError) Error() string {
	return fmt.Sprintf("config error for field %s (value %s): %v", e.Field, e.Value, e.Underlying)
}

// Unwrap returns the underlying error
func (e *ConfigError) Unwrap() error {
	return e.Underlying
}

// MultiError represents multiple errors
type MultiError struct {
	Errors []error
}

// NewMultiError creates a new multi-error
func NewMultiError(errs []error) *MultiError {
	// Filter out nil errors
	filtered := make([]error, 0, len(errs))
	for _, err := range errs {
		if err != nil {
			filtered = append(filtered, err)
		}
	}
	return &MultiError{Errors: filtered}
}

// Error implements the error interface
func (e *MultiError) Error() string {
	if len(e.Errors) == 0 {
		return "no errors"
	}
	if len(e.Errors) == 1 {
		return e.Errors[0].Error()
	}
	return fmt.Sprintf("%d errors: %v", len(e.Errors), e.Errors)
}

// Unwrap returns all errors
func (e *MultiError) Unwrap() []error {
	return e.Errors
}

// ErrOrNil returns nil when no errors were collected
func (e *MultiError) ErrOrNil() error {
	if len(e.Errors) == 0 {
		return nil
	}
	return e
}
