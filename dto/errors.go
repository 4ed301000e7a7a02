package dto

import (
	"fmt"
	"time"
)

// NetworkError wraps a transport failure that happened before any response
// was received. Never retried automatically.
type NetworkError struct {
	Err error
}

func (e *NetworkError) Error() string {
	return fmt.Sprintf("network error: %v", e.Err)
}

func (e *NetworkError) Unwrap() error { return e.Err }

// AuthError is a terminal authentication failure: either the refresh itself
// failed, or a replayed request was rejected again.
type AuthError struct {
	Message string
}

func (e *AuthError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("authentication required: %s", e.Message)
	}
	return "authentication required"
}

// RateLimitError is a terminal 429 after backoff attempts were exhausted.
type RateLimitError struct {
	Message  string
	Attempts int
	Wait     time.Duration
}

func (e *RateLimitError) Error() string {
	if e.Wait > 0 {
		return fmt.Sprintf("rate limited after %d attempts (retry in ~%s): %s", e.Attempts, e.Wait, e.Message)
	}
	return fmt.Sprintf("rate limited after %d attempts: %s", e.Attempts, e.Message)
}

// ValidationError is any other non-2xx status whose body carried an
// error/message field. The message is propagated verbatim for display.
type ValidationError struct {
	StatusCode int
	Message    string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// ParseError marks a body that could not be decoded as JSON despite a JSON
// content type. The call degrades to a text-derived message instead of
// failing outright, so this type mostly shows up wrapped in logs.
type ParseError struct {
	Message string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("unparseable response body: %s", e.Message)
}
