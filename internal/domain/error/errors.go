package error

import (
	"errors"
	"fmt"
)

// Error codes for standardized reporting
const (
	// 4xxx - Caller errors
	CodeInvalidArgument = 4001
	CodeIllegalState    = 4002
	CodeParse           = 4003
	CodeInvalidConfig   = 4004

	// 5xxx - Infrastructure errors
	CodeInternal         = 5000
	CodeConnectionFailed = 5001
)

// Base error types
var (
	// ErrInvalidArgument is returned when a factory receives a value
	// outside its documented domain
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrIllegalState is returned when an accessor is invoked on a value that
	// cannot satisfy it, such as reading an absent optional
	ErrIllegalState = errors.New("illegal state")

	// ErrParse is returned when textual input cannot be parsed
	ErrParse = errors.New("malformed input")

	// ErrInvalidConfig is returned when a connector configuration fails validation
	ErrInvalidConfig = errors.New("invalid configuration")

	// ErrConnectionFailed is returned when a connector cannot reach its backend
	ErrConnectionFailed = errors.New("connection failed")

	// ErrInternal is returned for unexpected internal failures
	ErrInternal = errors.New("internal error")
)

// ErrorCode returns standardized error codes for known errors
func ErrorCode(err error) int {
	switch {
	case errors.Is(err, ErrInvalidArgument):
		return CodeInvalidArgument
	case errors.Is(err, ErrIllegalState):
		return CodeIllegalState
	case errors.Is(err, ErrParse):
		return CodeParse
	case errors.Is(err, ErrInvalidConfig):
		return CodeInvalidConfig
	case errors.Is(err, ErrConnectionFailed):
		return CodeConnectionFailed
	default:
		return CodeInternal
	}
}

// InvalidArgumentError carries the operation and offending value for a
// rejected argument
type InvalidArgumentError struct {
	Op     string
	Value  any
	Reason string
}

// Error implements the error interface for InvalidArgumentError
func (e *InvalidArgumentError) Error() string {
	return fmt.Sprintf("%s: %s (got %v): %v", e.Op, e.Reason, e.Value, ErrInvalidArgument)
}

// Is checks if the target error is an ErrInvalidArgument
func (e *InvalidArgumentError) Is(target error) bool {
	return target == ErrInvalidArgument
}

// LogFields returns a map of fields for structured logging
func (e *InvalidArgumentError) LogFields() map[string]any {
	return map[string]any{
		"error_type": "invalid_argument",
		"op":         e.Op,
		"value":      fmt.Sprintf("%v", e.Value),
		"reason":     e.Reason,
		"error_code": CodeInvalidArgument,
	}
}

// NewInvalidArgumentError creates a new detailed invalid argument error
func NewInvalidArgumentError(op string, value any, reason string) error {
	return &InvalidArgumentError{Op: op, Value: value, Reason: reason}
}

// ParseError carries the input that failed to parse
type ParseError struct {
	Input string
	Err   error
}

// Error implements the error interface for ParseError
func (e *ParseError) Error() string {
	return fmt.Sprintf("cannot parse %q: %v", e.Input, e.Err)
}

// Unwrap returns the underlying error
func (e *ParseError) Unwrap() error {
	return e.Err
}

// Is checks if the target error is an ErrParse
func (e *ParseError) Is(target error) bool {
	return target == ErrParse
}

// LogFields returns a map of fields for structured logging
func (e *ParseError) LogFields() map[string]any {
	return map[string]any{
		"error_type": "parse_error",
		"input":      e.Input,
		"error":      e.Err.Error(),
		"error_code": CodeParse,
	}
}

// NewParseError creates a new detailed parse error
func NewParseError(input string, err error) error {
	return &ParseError{Input: input, Err: err}
}

// IsInvalidArgumentError checks if the error is an invalid argument error
func IsInvalidArgumentError(err error) bool {
	return errors.Is(err, ErrInvalidArgument)
}

// IsIllegalStateError checks if the error is an illegal state error
func IsIllegalStateError(err error) bool {
	return errors.Is(err, ErrIllegalState)
}

// IsParseError checks if the error is a parse error
func IsParseError(err error) bool {
	return errors.Is(err, ErrParse)
}

// IsConnectionError checks if the error is a connection failure
func IsConnectionError(err error) bool {
	return errors.Is(err, ErrConnectionFailed)
}
