package prismapi

import "fmt"

// AuthError indicates the cluster rejected the supplied credentials.
type AuthError struct{ Endpoint string }

func (e *AuthError) Error() string {
	return fmt.Sprintf("authentication rejected by %s", e.Endpoint)
}

// NotFoundError indicates a named resource does not exist on the cluster.
type NotFoundError struct{ Resource, Name string }

func (e *NotFoundError) Error() string { return e.Resource + " not found: " + e.Name }

// ConflictError indicates the requested mutation does not apply to the
// entity's current state, e.g. unprotecting a VM that is not a member.
type ConflictError struct{ Resource, Name string }

func (e *ConflictError) Error() string { return e.Resource + " conflict: " + e.Name }

// NetworkError wraps a transport-level failure.
type NetworkError struct {
	Endpoint string
	Err      error
}

func (e *NetworkError) Error() string {
	return fmt.Sprintf("request to %s failed: %v", e.Endpoint, e.Err)
}

func (e *NetworkError) Unwrap() error { return e.Err }

// APIError reports an HTTP status the client has no specific mapping for.
type APIError struct {
	Status int
	Body   string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("unexpected HTTP status %d: %s", e.Status, e.Body)
}
