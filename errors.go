package rutego

import (
	"errors"
	"fmt"
)

// Sentinel errors for common failure scenarios
var (
	// ErrMissingPathParams is wrapped by ResolvePath when one or more
	// template placeholders have no matching parameter.
	ErrMissingPathParams = errors.New("missing path parameters")

	// ErrUndeclaredRoute is returned when a route table is configured and a
	// call names a path/method pair the table does not declare.
	ErrUndeclaredRoute = errors.New("rutego: undeclared route")

	// ErrUndeclaredParam is returned when a route table is configured and a
	// call passes a path parameter the route does not declare.
	ErrUndeclaredParam = errors.New("rutego: undeclared path parameter")
)

// Error type constants used in CallError.Type.
const (
	ErrorTypeValidation = "Validation"
	ErrorTypeRoute      = "Route"
	ErrorTypeRequest    = "Request"
	ErrorTypeNetwork    = "Network"
	ErrorTypeHTTP       = "HTTP"
	ErrorTypeDecode     = "Decode"
)

// CallError is the structured error carried on the hard-error channel for
// unexpected failures (transport errors, undecodable bodies, route table
// violations) and handed to the onError hook for classified HTTP failures.
// Expected failures surface to callers as Result messages; CallError exists
// so programmatic callers keep errors.Is / errors.As ergonomics.
type CallError struct {
	Type       string
	Message    string
	StatusCode int
	Method     string
	URL        string
	Cause      error
}

// Error implements the error interface.
func (e *CallError) Error() string {
	if e == nil {
		return "<nil>"
	}
	msg := e.Message
	if msg == "" && e.Cause != nil {
		msg = e.Cause.Error()
	}
	if e.Cause != nil && e.Message != "" {
		return fmt.Sprintf("%s: %s (%v)", e.Type, msg, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Type, msg)
}

// Unwrap returns the underlying cause.
func (e *CallError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Cause
}

// Is compares error types for errors.Is.
func (e *CallError) Is(target error) bool {
	if e == nil {
		return false
	}
	if targetErr, ok := target.(*CallError); ok {
		return e.Type == targetErr.Type
	}
	return false
}

// DebugInfo renders a multi-line string with diagnostic context.
func (e *CallError) DebugInfo() string {
	if e == nil {
		return "Error: <nil>"
	}
	info := fmt.Sprintf("Error Type: %s\n", e.Type)
	info += fmt.Sprintf("Message: %s\n", e.Message)
	if e.Method != "" {
		info += fmt.Sprintf("Method: %s\n", e.Method)
	}
	if e.URL != "" {
		info += fmt.Sprintf("URL: %s\n", e.URL)
	}
	if e.StatusCode > 0 {
		info += fmt.Sprintf("Status Code: %d\n", e.StatusCode)
	}
	if e.Cause != nil {
		info += fmt.Sprintf("Cause: %v\n", e.Cause)
	}
	return info
}
