package analyzer

import "fmt"

// ErrorKind classifies analyzer errors.
type ErrorKind string

const (
	// ErrorKindInput indicates the contract text violated the input contract.
	ErrorKindInput ErrorKind = "input"
	// ErrorKindConfig indicates a referenced framework is absent from the registry.
	ErrorKindConfig ErrorKind = "config"
)

// Error is a structured analyzer error.
type Error struct {
	Err     error
	Kind    ErrorKind
	Message string
}

// Error implements the error interface.
func (e *Error) Error() string {
	return fmt.Sprintf("analyzer %s error: %s", e.Kind, e.Message)
}

// Unwrap returns the underlying error.
func (e *Error) Unwrap() error {
	return e.Err
}

// NewInputError creates an input-contract violation error.
func NewInputError(format string, args ...any) *Error {
	return &Error{Kind: ErrorKindInput, Message: fmt.Sprintf(format, args...)}
}

// NewConfigError creates a registry/configuration error.
func NewConfigError(format string, args ...any) *Error {
	return &Error{Kind: ErrorKindConfig, Message: fmt.Sprintf(format, args...)}
}

// IsInputError checks if the error is an input error.
func IsInputError(err error) bool {
	if e, ok := err.(*Error); ok {
		return e.Kind == ErrorKindInput
	}
	return false
}

// IsConfigError checks if the error is a configuration error.
func IsConfigError(err error) bool {
	if e, ok := err.(*Error); ok {
		return e.Kind == ErrorKindConfig
	}
	return false
}
