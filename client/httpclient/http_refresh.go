package httpclient

import (
	"context"
	"fmt"

	"github.com/nethrys/gofolio/dto"
)

// Token returns the currently held credential with no side effects.
func (c *HTTPClient) Token() dto.TokenInfo {
	c.tokenMu.RLock()
	defer c.tokenMu.RUnlock()
	return c.token
}

// SetToken replaces the held credential unconditionally. No validation of
// token shape happens here; validity is only discovered by the server.
func (c *HTTPClient) SetToken(tok dto.TokenInfo) {
	c.tokenMu.Lock()
	defer c.tokenMu.Unlock()
	c.token = tok
}

// ClearToken drops the held credential.
func (c *HTTPClient) ClearToken() {
	c.SetToken(dto.TokenInfo{})
}

// ensureToken refreshes proactively when a known expiry is inside the
// refresh buffer. Opaque tokens without expiry pass through untouched.
func (c *HTTPClient) ensureToken(ctx context.Context) error {
	c.tokenMu.RLock()
	tok := c.token
	c.tokenMu.RUnlock()

	if !tok.IsZero() && !tok.IsExpired(c.cfg.RefreshBuffer) {
		return nil
	}
	if tok.IsZero() && c.cfg.OAuthSource == nil {
		// nothing to refresh from; the server decides what unauthenticated
		// requests may do
		return nil
	}
	if tok.Expiry.IsZero() && !tok.IsZero() {
		return nil
	}
	return c.refreshToken(ctx, tok)
}

// refreshAfterAuthFailure runs the single permitted refresh for a 401.
// sent is the credential the failed request was issued with: when the held
// token already differs, a concurrent caller refreshed first and the replay
// can proceed with the current credential. Refreshes are serialized on
// refreshMu, so concurrent 401s trigger at most one refresh call.
func (c *HTTPClient) refreshAfterAuthFailure(ctx context.Context, sent dto.TokenInfo) error {
	c.refreshMu.Lock()
	defer c.refreshMu.Unlock()

	c.tokenMu.RLock()
	cur := c.token
	c.tokenMu.RUnlock()

	if cur.AccessToken != sent.AccessToken && cur.AccessToken != "" {
		c.log.Debug("credential already rotated by a concurrent refresh")
		return nil
	}

	if err := c.refreshToken(ctx, cur); err != nil {
		// the refresh ran and failed: only now is the credential cleared
		c.ClearToken()
		c.log.WithError(err).Warn("credential refresh failed")
		return &dto.AuthError{Message: err.Error()}
	}

	c.log.Debug("credential refreshed, replaying original request")
	return nil
}

// refreshToken retrieves a new token using OAuth2 or the AuthProvider.
// OAuth2 takes precedence when both are configured.
func (c *HTTPClient) refreshToken(ctx context.Context, old dto.TokenInfo) error {
	if c.cfg.OAuthSource != nil {
		oauthTok, err := c.cfg.OAuthSource.Token()
		if err != nil {
			return fmt.Errorf("oauth2 token fetch: %w", err)
		}
		c.SetToken(dto.TokenInfo{
			AccessToken: oauthTok.AccessToken,
			TokenType:   normalizeAuthType(oauthTok.TokenType),
			Expiry:      oauthTok.Expiry,
			Cookies:     old.Cookies,
		})
		return nil
	}

	if c.cfg.AuthProvider != nil {
		var (
			newTok dto.TokenInfo
			err    error
		)
		if old.IsZero() {
			newTok, err = c.cfg.AuthProvider.Authenticate(ctx)
		} else {
			newTok, err = c.cfg.AuthProvider.Refresh(ctx, old)
		}
		if err != nil {
			return fmt.Errorf("auth provider refresh: %w", err)
		}
		newTok.TokenType = normalizeAuthType(newTok.TokenType)
		if len(newTok.Cookies) == 0 {
			newTok.Cookies = old.Cookies
		}
		c.SetToken(newTok)
		return nil
	}

	return fmt.Errorf("no credential source configured")
}
