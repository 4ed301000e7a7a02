package httpclient

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/nethrys/gofolio/dto"
)

// Classify inspects a completed response and produces an exhaustive
// outcome. It never mutates client state.
func Classify(resp dto.Response) dto.Outcome {
	env, parseErr := decodeEnvelope(resp)
	statusLine := fmt.Sprintf("HTTP %d: %s", resp.StatusCode, http.StatusText(resp.StatusCode))

	out := dto.Outcome{
		StatusCode: resp.StatusCode,
		Envelope:   env,
		Message:    env.DerivedMessage(statusLine),
		ParseErr:   parseErr,
	}

	switch {
	case resp.StatusCode >= 200 && resp.StatusCode < 300:
		out.Kind = dto.OutcomeSuccess
	case resp.StatusCode == http.StatusTooManyRequests:
		out.Kind = dto.OutcomeRateLimited
		out.Remaining = resp.Header("RateLimit-Remaining")
		if d, ok := parseRetryAfter(resp.Header("Retry-After")); ok {
			out.RetryAfter = d
			out.RetryAfterSet = true
			out.Message = fmt.Sprintf("rate limited, retry in %s", d)
		} else {
			out.Message = "rate limited"
		}
		if out.Remaining != "" {
			out.Message += fmt.Sprintf(" (%s requests remaining)", out.Remaining)
		}
	case resp.StatusCode == http.StatusUnauthorized:
		out.Kind = dto.OutcomeAuthFailure
	default:
		out.Kind = dto.OutcomeGenericFailure
	}

	return out
}

// decodeEnvelope parses the body according to the Content-Type header,
// degrading from JSON to raw text to nothing. A non-2xx status forces
// Success=false regardless of what the body claimed. When the header
// promises JSON but the body does not parse, the ParseError is reported
// alongside the text-derived envelope.
func decodeEnvelope(resp dto.Response) (dto.Envelope, *dto.ParseError) {
	var env dto.Envelope
	var parseErr *dto.ParseError

	body := strings.TrimSpace(string(resp.Body))
	if isJSONContentType(resp.Header("Content-Type")) {
		if err := json.Unmarshal(resp.Body, &env); err != nil {
			// header lied; fall back to the raw text
			env = dto.Envelope{Message: body}
			parseErr = &dto.ParseError{Message: body}
		}
	} else if body != "" {
		env.Message = body
	}

	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		if len(resp.Body) > 0 && parseErr == nil && isJSONContentType(resp.Header("Content-Type")) {
			// trust the decoded envelope as-is
			return env, nil
		}
		env.Success = true
		return env, parseErr
	}

	env.Success = false
	return env, parseErr
}

func isJSONContentType(ct string) bool {
	return strings.Contains(strings.ToLower(ct), "json")
}

// parseRetryAfter understands the delay-seconds form of the header.
func parseRetryAfter(v string) (time.Duration, bool) {
	v = strings.TrimSpace(v)
	if v == "" {
		return 0, false
	}
	secs, err := strconv.Atoi(v)
	if err != nil || secs < 0 {
		return 0, false
	}
	return time.Duration(secs) * time.Second, true
}
