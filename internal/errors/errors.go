// Package errors provides domain-specific error types for the fios-stats application.
//
// This package defines structured errors with error codes, making it easier to handle
// and test different error conditions consistently across the application.
package errors

import "fmt"

// ErrorCode represents a category of error that can occur in the application.
type ErrorCode string

const (
	// ErrCodeTransport indicates a connection-level failure (refused
	// connection, TLS handshake, timeout, interrupted read).
	ErrCodeTransport ErrorCode = "TRANSPORT_ERROR"

	// ErrCodeProtocol indicates an unexpected HTTP status from the gateway
	// or the metrics sink.
	ErrCodeProtocol ErrorCode = "PROTOCOL_ERROR"

	// ErrCodeParse indicates malformed or incomplete data: JSON that does not
	// match the expected schema, or a cookie value that cannot be parsed.
	ErrCodeParse ErrorCode = "PARSE_ERROR"

	// ErrCodeAuth indicates a failed login: the gateway rejected the password
	// hash or returned a session without the expected credentials.
	ErrCodeAuth ErrorCode = "AUTH_ERROR"
)

// Error represents a domain-specific error with an error code and optional cause.
type Error struct {
	Code    ErrorCode
	Message string
	Cause   error
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap returns the underlying cause of the error for errors.Is and errors.As support.
func (e *Error) Unwrap() error {
	return e.Cause
}

// Is checks if the error matches the target error code.
func (e *Error) Is(target error) bool {
	if t, ok := target.(*Error); ok {
		return e.Code == t.Code
	}
	return false
}

// New creates a new domain error with the specified code and message.
func New(code ErrorCode, message string) *Error {
	return &Error{
		Code:    code,
		Message: message,
		Cause:   nil,
	}
}

// Wrap creates a new domain error wrapping an existing error.
func Wrap(code ErrorCode, message string, cause error) *Error {
	return &Error{
		Code:    code,
		Message: message,
		Cause:   cause,
	}
}

// NewTransportError creates a new connection-level error.
func NewTransportError(message string, cause error) *Error {
	return Wrap(ErrCodeTransport, message, cause)
}

// NewProtocolError creates a new unexpected-status error.
func NewProtocolError(message string, cause error) *Error {
	return Wrap(ErrCodeProtocol, message, cause)
}

// NewParseError creates a new malformed-data error.
func NewParseError(message string, cause error) *Error {
	return Wrap(ErrCodeParse, message, cause)
}

// NewAuthError creates a new authentication error.
func NewAuthError(message string, cause error) *Error {
	return Wrap(ErrCodeAuth, message, cause)
}
