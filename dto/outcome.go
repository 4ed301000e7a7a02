package dto

import "time"

// OutcomeKind is the exhaustive classification of a completed response.
type OutcomeKind int

const (
	OutcomeSuccess OutcomeKind = iota
	OutcomeAuthFailure
	OutcomeRateLimited
	OutcomeGenericFailure
)

func (k OutcomeKind) String() string {
	switch k {
	case OutcomeSuccess:
		return "success"
	case OutcomeAuthFailure:
		return "auth_failure"
	case OutcomeRateLimited:
		return "rate_limited"
	case OutcomeGenericFailure:
		return "generic_failure"
	default:
		return "unknown"
	}
}

// Outcome is the classifier result for one completed HTTP response.
// Exactly one kind applies; the remaining fields qualify it.
type Outcome struct {
	Kind       OutcomeKind
	StatusCode int
	Envelope   Envelope
	// Message is always derivable: envelope fields, raw body text, or a
	// synthesized status line.
	Message string
	// RetryAfter is the server-provided wait hint on rate limiting.
	RetryAfter    time.Duration
	RetryAfterSet bool
	// Remaining is the raw RateLimit-Remaining header value, if any.
	Remaining string
	// ParseErr records a body that claimed JSON but failed to decode. The
	// classification degrades to the raw text instead of failing, so this
	// is diagnostic rather than terminal.
	ParseErr *ParseError
}
