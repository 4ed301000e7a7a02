package dto

import (
	"net/http"
	"time"
)

// TokenInfo represents active credential or session data.
// It supports both header-based tokens and cookie-based sessions.
type TokenInfo struct {
	// Authorization token value without the scheme prefix, e.g. "abc123"
	AccessToken string
	// TokenType is inferred if not provided (default "Bearer").
	TokenType string
	// Expiry time. Optional; empty for opaque tokens whose validity is
	// only discovered by the server's response.
	Expiry  time.Time
	Cookies []*http.Cookie
}

// BearerToken builds a TokenInfo for a plain opaque bearer string.
func BearerToken(token string) TokenInfo {
	return TokenInfo{AccessToken: token, TokenType: "Bearer"}
}

// IsZero reports whether no credential of any kind is held.
func (t *TokenInfo) IsZero() bool {
	return t.AccessToken == "" && len(t.Cookies) == 0
}

// IsExpired returns true if the token is absent, or close to or past expiry.
func (t *TokenInfo) IsExpired(buffer time.Duration) bool {
	if t.IsZero() {
		return true
	}
	if t.Expiry.IsZero() {
		// Tokens with no expiry are considered valid until rejected
		return false
	}
	return time.Now().After(t.Expiry.Add(-buffer))
}
