// Package errors provides the error taxonomy used by the vref2sfm converter.
package errors

import (
	"errors"
	"fmt"
)

// Sentinel errors for common cases
var (
	// ErrInvalidInput indicates malformed input or a failed validation
	ErrInvalidInput = errors.New("invalid input")
	// ErrNotFound indicates an input file was not found
	ErrNotFound = errors.New("not found")
	// ErrLengthMismatch indicates the reference and text sequences are not aligned
	ErrLengthMismatch = errors.New("length mismatch")
)

// ValidationError represents a rejected option or argument value.
type ValidationError struct {
	Field   string // Option name (e.g., "book", "project-id")
	Value   string // Rejected value
	Message string // Human-readable error message
	Err     error  // Underlying error, if any
}

func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("validation failed for %s: %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation failed: %s", e.Message)
}

func (e *ValidationError) Unwrap() error {
	if e.Err != nil {
		return e.Err
	}
	return ErrInvalidInput
}

// IOError represents a failed file operation.
type IOError struct {
	Operation string // Operation being performed (e.g., "read", "write", "create")
	Path      string // File or directory path involved
	Err       error  // Underlying error
}

func (e *IOError) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("failed to %s %s: %v", e.Operation, e.Path, e.Err)
	}
	return fmt.Sprintf("failed to %s: %v", e.Operation, e.Err)
}

func (e *IOError) Unwrap() error {
	return e.Err
}

// ParseError represents a line that does not match its expected format.
// A malformed vref line is reported as a ParseError with Format "vref".
type ParseError struct {
	Format  string // Format being parsed (e.g., "vref")
	Path    string // File path, if known
	Line    int    // 1-based line number, 0 if unknown
	Message string // Error details
	Err     error  // Underlying error, if any
}

func (e *ParseError) Error() string {
	switch {
	case e.Path != "" && e.Line > 0:
		return fmt.Sprintf("failed to parse %s at %s:%d: %s", e.Format, e.Path, e.Line, e.Message)
	case e.Path != "":
		return fmt.Sprintf("failed to parse %s at %s: %s", e.Format, e.Path, e.Message)
	case e.Line > 0:
		return fmt.Sprintf("failed to parse %s at line %d: %s", e.Format, e.Line, e.Message)
	}
	return fmt.Sprintf("failed to parse %s: %s", e.Format, e.Message)
}

func (e *ParseError) Unwrap() error {
	if e.Err != nil {
		return e.Err
	}
	return ErrInvalidInput
}

// LengthMismatchError reports reference and text sequences of different lengths.
type LengthMismatchError struct {
	Refs  int
	Texts int
}

func (e *LengthMismatchError) Error() string {
	return fmt.Sprintf("mismatch: %d refs but %d text lines", e.Refs, e.Texts)
}

func (e *LengthMismatchError) Unwrap() error {
	return ErrLengthMismatch
}

// Helper functions for creating common errors

// NewValidation creates a ValidationError
func NewValidation(field, value, message string) *ValidationError {
	return &ValidationError{
		Field:   field,
		Value:   value,
		Message: message,
	}
}

// NewIO creates an IOError
func NewIO(operation, path string, err error) *IOError {
	return &IOError{
		Operation: operation,
		Path:      path,
		Err:       err,
	}
}

// NewParse creates a ParseError
func NewParse(format, path string, line int, message string) *ParseError {
	return &ParseError{
		Format:  format,
		Path:    path,
		Line:    line,
		Message: message,
	}
}

// NewLengthMismatch creates a LengthMismatchError
func NewLengthMismatch(refs, texts int) *LengthMismatchError {
	return &LengthMismatchError{Refs: refs, Texts: texts}
}

// Wrap adds context to an error. If err is nil, returns nil.
func Wrap(err error, message string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", message, err)
}

// Is wraps errors.Is for convenience
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// As wraps errors.As for convenience
func As(err error, target interface{}) bool {
	return errors.As(err, target)
}
