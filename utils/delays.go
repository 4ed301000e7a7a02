package utils

import (
	"math/rand"
	"time"
)

// RetryDelay decides how long to wait before a retry attempt. Attempts are
// zero-based.
type RetryDelay interface {
	Wait(task string, attempt int)
}

// ConstantDelay waits a fixed number of seconds between attempts.
type ConstantDelay struct {
	Period int
}

func (d ConstantDelay) Wait(task string, attempt int) {
	time.Sleep(time.Duration(d.Period) * time.Second)
}

// ExponentialBackoff doubles a 2s base per attempt, capped at 10s, with up
// to 1s of jitter.
type ExponentialBackoff struct{}

func (d ExponentialBackoff) Wait(task string, attempt int) {
	backoff := 2 * time.Second << uint(attempt)
	if backoff > 10*time.Second {
		backoff = 10 * time.Second
	}
	jitter := time.Duration(rand.Int63n(int64(time.Second)))
	time.Sleep(backoff + jitter)
}
