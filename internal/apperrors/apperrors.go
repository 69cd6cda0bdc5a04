// Package apperrors defines the typed failures raised by use-cases and
// repositories. Handlers map each kind to an HTTP status; anything else is
// reported as an internal error without exposing its detail.
package apperrors

import "fmt"

// ValidationError means the caller sent malformed or missing input and can
// recover by resubmitting a corrected request.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("%s: %s", e.Field, e.Message)
	}
	return e.Message
}

// AuthorizationError means the caller lacks the required role or ownership.
type AuthorizationError struct {
	Message string
}

func (e *AuthorizationError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return "access denied"
}

// NotFoundError means the referenced resource does not exist, or is not
// visible to the caller.
type NotFoundError struct {
	Resource string
}

func (e *NotFoundError) Error() string {
	if e.Resource != "" {
		return e.Resource + " not found"
	}
	return "not found"
}

// ConflictError means the requested state transition is not allowed.
type ConflictError struct {
	Message string
}

func (e *ConflictError) Error() string { return e.Message }

// SelfActionError means an admin targeted their own account where that is
// forbidden.
type SelfActionError struct {
	Message string
}

func (e *SelfActionError) Error() string { return e.Message }

// DependencyError wraps a failure from persistence, storage or another
// collaborator that the caller cannot do anything about.
type DependencyError struct {
	Op  string
	Err error
}

func (e *DependencyError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Op, e.Err)
	}
	return e.Op + " failed"
}

func (e *DependencyError) Unwrap() error { return e.Err }
