package gofolio

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/cenkalti/backoff/v4"
	"github.com/sirupsen/logrus"

	"github.com/nethrys/gofolio/config"
	"github.com/nethrys/gofolio/dto"
)

// tokenPayload is the data shape of /auth/login and /auth/refresh.
type tokenPayload struct {
	Token string `json:"token"`
}

// Login authenticates with the backend and installs the returned bearer
// token as the session credential. Session cookies set by the server are
// retained alongside the token.
func (s *PortfolioSvc) Login(ctx context.Context, email, password string) error {
	var payload tokenPayload
	_, err := s.Post(ctx, "/auth/login", map[string]any{
		"email":    email,
		"password": password,
	}, &payload)
	if err != nil {
		return err
	}
	if payload.Token == "" {
		return errors.New("login succeeded but no token returned")
	}

	// keep cookies the client captured during the login exchange
	tok := s.httpClient.Token()
	tok.AccessToken = payload.Token
	tok.TokenType = "Bearer"
	s.httpClient.SetToken(tok)

	s.log.WithField("email", email).Debug("logged in")
	return nil
}

// Refresh forces a credential refresh outside the automatic 401 path.
func (s *PortfolioSvc) Refresh(ctx context.Context) error {
	provider := &sessionAuthProvider{cfg: s.cfg, log: s.log}
	newTok, err := provider.Refresh(ctx, s.httpClient.Token())
	if err != nil {
		return err
	}
	s.httpClient.SetToken(newTok)
	return nil
}

// Me probes the backend with the current credential. Transient network
// errors are retried with exponential backoff; auth rejections are
// permanent and surface immediately.
func (s *PortfolioSvc) Me(ctx context.Context) (*dto.Envelope, error) {
	var env *dto.Envelope

	probe := func() error {
		var err error
		env, err = s.Get(ctx, "/auth/me", nil, nil)
		if err != nil {
			var netErr *dto.NetworkError
			if errors.As(err, &netErr) {
				return err
			}
			return backoff.Permanent(err)
		}
		return nil
	}

	retryLogic := backoff.WithContext(backoff.WithMaxRetries(backoff.NewExponentialBackOff(), 3), ctx)
	if err := backoff.Retry(probe, retryLogic); err != nil {
		return nil, err
	}
	return env, nil
}

// Logout invalidates the session server-side and drops the credential
// regardless of the server's answer.
func (s *PortfolioSvc) Logout(ctx context.Context) error {
	_, err := s.Post(ctx, "/auth/logout", nil, nil)
	s.httpClient.ClearToken()
	return err
}

// Token exposes the current credential for inspection (e.g. persisting a
// CLI session). Mutation goes through Login/Logout/SetToken.
func (s *PortfolioSvc) Token() dto.TokenInfo {
	return s.httpClient.Token()
}

// SetToken installs a previously persisted credential.
func (s *PortfolioSvc) SetToken(tok dto.TokenInfo) {
	s.httpClient.SetToken(tok)
}

// sessionAuthProvider exchanges an existing (possibly expired) token for a
// fresh one at the backend's refresh endpoint. The stale bearer and any
// session cookie both travel with the refresh call; the backend honors
// either.
type sessionAuthProvider struct {
	cfg *config.Config
	log *logrus.Entry
}

func (p *sessionAuthProvider) Authenticate(ctx context.Context) (dto.TokenInfo, error) {
	// credentials are interactive; only Login can establish a session
	return dto.TokenInfo{}, errors.New("no session to refresh, login required")
}

func (p *sessionAuthProvider) Refresh(ctx context.Context, old dto.TokenInfo) (dto.TokenInfo, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, p.cfg.ResolveURL("/auth/refresh"), nil)
	if err != nil {
		return dto.TokenInfo{}, fmt.Errorf("build refresh request: %w", err)
	}
	if old.AccessToken != "" {
		req.Header.Set("Authorization", "Bearer "+old.AccessToken)
	}
	for _, ck := range old.Cookies {
		req.AddCookie(ck)
	}

	client := &http.Client{Timeout: p.cfg.RequestTimeout}
	resp, err := client.Do(req)
	if err != nil {
		return dto.TokenInfo{}, fmt.Errorf("refresh request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return dto.TokenInfo{}, fmt.Errorf("read refresh body: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		var env dto.Envelope
		_ = json.Unmarshal(body, &env)
		return dto.TokenInfo{}, fmt.Errorf("refresh rejected: %s",
			env.DerivedMessage(fmt.Sprintf("HTTP %d: %s", resp.StatusCode, http.StatusText(resp.StatusCode))))
	}

	var env dto.Envelope
	if err := json.Unmarshal(body, &env); err != nil {
		return dto.TokenInfo{}, fmt.Errorf("decode refresh body: %w", err)
	}
	var payload tokenPayload
	if err := env.DecodeData(&payload); err != nil {
		return dto.TokenInfo{}, err
	}
	if payload.Token == "" {
		return dto.TokenInfo{}, errors.New("refresh succeeded but no token returned")
	}

	newTok := dto.BearerToken(payload.Token)
	newTok.Cookies = mergeCookies(old.Cookies, resp.Cookies())

	p.log.WithField("cookies", len(newTok.Cookies)).Debug("session refreshed")
	return newTok, nil
}

func mergeCookies(old, fresh []*http.Cookie) []*http.Cookie {
	merged := append([]*http.Cookie(nil), old...)
	for _, ck := range fresh {
		replaced := false
		for i, existing := range merged {
			if existing.Name == ck.Name {
				merged[i] = ck
				replaced = true
				break
			}
		}
		if !replaced {
			merged = append(merged, ck)
		}
	}
	return merged
}
