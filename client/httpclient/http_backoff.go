package httpclient

import (
	"math/rand"
	"time"
)

// jitterIn is overridable in tests for deterministic delays.
var jitterIn = func(max time.Duration) time.Duration {
	if max <= 0 {
		return 0
	}
	return time.Duration(rand.Int63n(int64(max)))
}

// BackoffDelay computes the wait before re-issuing a rate-limited request.
// Attempts are 1-based. With a server hint the delay is the hint plus up to
// 2s of jitter; otherwise base * 2^(attempt-1) plus up to 1s of jitter.
func BackoffDelay(attempt int, retryAfter time.Duration, hasHint bool, base time.Duration) time.Duration {
	if attempt < 1 {
		attempt = 1
	}
	if hasHint {
		return retryAfter + jitterIn(2*time.Second)
	}
	if base <= 0 {
		base = time.Second
	}
	return base<<uint(attempt-1) + jitterIn(time.Second)
}
