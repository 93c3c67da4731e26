package domain

import (
	"errors"
	"fmt"
)

// Sentinel errors shared across the client core.
var (
	// ErrInvalidCredentials is raised when the auth endpoint rejects a login.
	ErrInvalidCredentials = errors.New("invalid credentials")
	// ErrNotAuthenticated is raised when an operation requires a session and
	// none is present.
	ErrNotAuthenticated = errors.New("not authenticated")
	// ErrInvalidDraft is raised when a submit is attempted on a draft that
	// fails validation. It never reaches the network or the notifier.
	ErrInvalidDraft = errors.New("draft is not valid")
	// ErrNegativeStock is raised when a stock delta would drive the
	// resulting stock below zero.
	ErrNegativeStock = errors.New("resulting stock would be negative")
	// ErrProductNotFound / ErrUserNotFound mirror the server's 404s.
	ErrProductNotFound = errors.New("product not found")
	ErrUserNotFound    = errors.New("user not found")
	ErrUserExists      = errors.New("user already exists")
)

// RequestError is a non-2xx response from the remote API. Message carries the
// server-provided text when the body included one; callers surface it
// verbatim and fall back to a per-operation generic message when empty.
type RequestError struct {
	StatusCode int
	Message    string
}

func (e *RequestError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("request failed (%d): %s", e.StatusCode, e.Message)
	}
	return fmt.Sprintf("request failed (%d)", e.StatusCode)
}

// NetworkError wraps a request that could not complete at all (DNS, refused
// connection, broken pipe). Distinct from RequestError: no response arrived.
type NetworkError struct {
	Op  string
	Err error
}

func (e *NetworkError) Error() string {
	return fmt.Sprintf("%s: network failure: %v", e.Op, e.Err)
}

func (e *NetworkError) Unwrap() error { return e.Err }

// UserMessage extracts the best user-facing text for a failed call: the
// server-provided message when present, otherwise the supplied fallback.
func UserMessage(err error, fallback string) string {
	var re *RequestError
	if errors.As(err, &re) && re.Message != "" {
		return re.Message
	}
	return fallback
}
