package recommend

import (
	"errors"
	"fmt"
)

var (
	// ErrEmptyQuery means the caller submitted nothing to search for. No
	// provider call is made.
	ErrEmptyQuery = errors.New("search query is required")

	// ErrMissingAPIKey means the Gemini credential is not configured. No
	// provider call is made.
	ErrMissingAPIKey = errors.New("recommendation provider is not configured")
)

// UpstreamError wraps a failed provider call, keeping the HTTP status when
// the transport exposed one.
type UpstreamError struct {
	Status int
	Err    error
}

func (e *UpstreamError) Error() string {
	if e.Status != 0 {
		return fmt.Sprintf("recommendation provider call failed (status %d): %v", e.Status, e.Err)
	}
	return fmt.Sprintf("recommendation provider call failed: %v", e.Err)
}

func (e *UpstreamError) Unwrap() error { return e.Err }

// ParseError means the provider's response could not be decoded through the
// structured path or the dash-list fallback. Terminal for the invocation.
type ParseError struct {
	Raw string
	Err error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("malformed recommendation response: %v", e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }
