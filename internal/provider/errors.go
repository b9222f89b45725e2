package provider

import "fmt"

// UnreachableError indicates the provider could not be reached at the
// transport level (connection refused, DNS failure, timeout).
type UnreachableError struct {
	Err error
}

func (e *UnreachableError) Error() string {
	return fmt.Sprintf("cannot reach service: %v", e.Err)
}

func (e *UnreachableError) Unwrap() error { return e.Err }

// ServerError indicates the service answered with a non-2xx status.
type ServerError struct {
	StatusCode int
	Status     string
}

func (e *ServerError) Error() string {
	return fmt.Sprintf("server error: %s", e.Status)
}

// ValidationError indicates the service answered with a structurally
// invalid payload: unparseable JSON, missing required fields, or wrong
// field types.
type ValidationError struct {
	Err error
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("malformed response: %v", e.Err)
}

func (e *ValidationError) Unwrap() error { return e.Err }
