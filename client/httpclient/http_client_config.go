package httpclient

import (
	"context"
	"time"

	"github.com/nethrys/gofolio/dto"
	"golang.org/x/oauth2"
	"golang.org/x/time/rate"
)

type Middleware func(ctx context.Context, req *HTTPRequest) error

type HTTPClientConfig struct {
	// AuthProvider handles login-session credentials (bearer token and/or
	// session cookie). OAuthSource takes precedence when both are set.
	AuthProvider dto.AuthProvider
	OAuthSource  oauth2.TokenSource
	// RefreshBuffer triggers proactive refresh this long before a known
	// expiry. Opaque tokens without expiry skip the proactive path.
	RefreshBuffer time.Duration
	Middlewares   []Middleware
	// Limiter optionally throttles outgoing requests client-side.
	Limiter *rate.Limiter
	// MaxRateAttempts bounds 429 retries; counts the initial attempt.
	MaxRateAttempts int
	// BaseBackoff is the first-attempt delay when the server gives no
	// Retry-After hint. Doubles per attempt.
	BaseBackoff time.Duration
}

func DefaultHTTPClientConfig() HTTPClientConfig {
	return HTTPClientConfig{
		RefreshBuffer:   30 * time.Second,
		Middlewares:     make([]Middleware, 0),
		MaxRateAttempts: 3,
		BaseBackoff:     time.Second,
	}
}

func (c *HTTPClientConfig) WithAuthProvider(provider dto.AuthProvider) *HTTPClientConfig {
	c.AuthProvider = provider
	return c
}

func (c *HTTPClientConfig) WithOAuthSource(tokenSource oauth2.TokenSource) *HTTPClientConfig {
	c.OAuthSource = tokenSource
	return c
}

func (c *HTTPClientConfig) WithRefreshBuffer(d time.Duration) *HTTPClientConfig {
	c.RefreshBuffer = d
	return c
}

func (c *HTTPClientConfig) WithMiddleware(m ...Middleware) *HTTPClientConfig {
	c.Middlewares = append(c.Middlewares, m...)
	return c
}

func (c *HTTPClientConfig) WithLimiter(l *rate.Limiter) *HTTPClientConfig {
	c.Limiter = l
	return c
}

func (c *HTTPClientConfig) WithMaxRateAttempts(n int) *HTTPClientConfig {
	c.MaxRateAttempts = n
	return c
}

func (c *HTTPClientConfig) WithBaseBackoff(d time.Duration) *HTTPClientConfig {
	c.BaseBackoff = d
	return c
}
