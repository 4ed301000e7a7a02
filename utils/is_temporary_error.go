package utils

import "errors"

// IsTemporaryErr reports whether a transport error is worth retrying.
// Errors exposing Temporary() are trusted; everything else at the network
// level is treated as transient.
func IsTemporaryErr(err error) bool {
	var netErr interface{ Temporary() bool }
	if errors.As(err, &netErr) {
		return netErr.Temporary()
	}
	return true
}
