package httpclient

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"reflect"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"golang.org/x/oauth2"
	"golang.org/x/time/rate"

	"github.com/nethrys/gofolio/config"
	"github.com/nethrys/gofolio/dto"
)

// --- helpers ----------------------------------------------------------------

func mustJSON(t *testing.T, v any) []byte {
	t.Helper()
	b, err := json.Marshal(v)
	if err != nil {
		t.Fatalf("json.Marshal: %v", err)
	}
	return b
}

func newTestClient(t *testing.T, cfg *HTTPClientConfig) *HTTPClient {
	t.Helper()

	netCfg := &config.Config{
		RequestTimeout: 2 * time.Second,
	}
	if cfg == nil {
		c := DefaultHTTPClientConfig()
		cfg = &c
	}
	return NewHTTPClient("test", netCfg, cfg)
}

// noJitter makes backoff delays deterministic for the duration of a test.
func noJitter(t *testing.T) {
	t.Helper()
	prev := jitterIn
	jitterIn = func(max time.Duration) time.Duration { return 0 }
	t.Cleanup(func() { jitterIn = prev })
}

type staticTokenSource struct {
	tok *oauth2.Token
	err error
	n   atomic.Int64
}

func (s *staticTokenSource) Token() (*oauth2.Token, error) {
	s.n.Add(1)
	if s.err != nil {
		return nil, s.err
	}
	// return a copy to avoid tests mutating shared state
	cpy := *s.tok
	return &cpy, nil
}

type fakeAuthProvider struct {
	authenticate func(ctx context.Context) (dto.TokenInfo, error)
	refresh      func(ctx context.Context, old dto.TokenInfo) (dto.TokenInfo, error)
}

func (f fakeAuthProvider) Authenticate(ctx context.Context) (dto.TokenInfo, error) {
	if f.authenticate == nil {
		return dto.TokenInfo{}, errors.New("Authenticate not implemented")
	}
	return f.authenticate(ctx)
}

func (f fakeAuthProvider) Refresh(ctx context.Context, old dto.TokenInfo) (dto.TokenInfo, error) {
	if f.refresh == nil {
		return dto.TokenInfo{}, errors.New("Refresh not implemented")
	}
	return f.refresh(ctx, old)
}

type recordedRequest struct {
	Method      string
	Path        string
	RawQuery    string
	Header      http.Header
	Body        []byte
	ContentType string
}

func newRecordingServer(t *testing.T, handler func(rr recordedRequest, w http.ResponseWriter)) (*httptest.Server, *recordedRequest) {
	t.Helper()

	var last recordedRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var body []byte
		if r.Body != nil {
			body, _ = io.ReadAll(r.Body)
			_ = r.Body.Close()
		}

		last = recordedRequest{
			Method:      r.Method,
			Path:        r.URL.Path,
			RawQuery:    r.URL.RawQuery,
			Header:      r.Header.Clone(),
			Body:        body,
			ContentType: r.Header.Get("Content-Type"),
		}
		handler(last, w)
	}))
	return srv, &last
}

// --- tests ------------------------------------------------------------------

func Test_HTTPClient_ProcessRequest_golden_endToEnd(t *testing.T) {
	type golden struct {
		status int
		body   string

		wantReqMethod string
		wantAuth      string
		wantCookie    string
		wantHeaders   map[string]string
		wantCT        string
		wantBodyJSON  map[string]any
		wantRawQuery  string

		expectStoredCookieName string

		errContains string
	}

	makeServer := func(t *testing.T, g golden) (*httptest.Server, *recordedRequest) {
		t.Helper()
		return newRecordingServer(t, func(rr recordedRequest, w http.ResponseWriter) {
			if g.expectStoredCookieName != "" {
				http.SetCookie(w, &http.Cookie{
					Name:  g.expectStoredCookieName,
					Value: "cookieval",
					Path:  "/",
				})
			}

			if g.status != 0 {
				w.WriteHeader(g.status)
			} else {
				w.WriteHeader(200)
			}
			if g.body != "" {
				_, _ = w.Write([]byte(g.body))
			}
		})
	}

	cases := []struct {
		name  string
		query map[string]any
		setup func(t *testing.T) (*HTTPClient, *httptest.Server, *recordedRequest, golden)
	}{
		{
			name: "oauth bearer attached + static headers + json body",
			setup: func(t *testing.T) (*HTTPClient, *httptest.Server, *recordedRequest, golden) {
				g := golden{
					status:        200,
					body:          "ok",
					wantReqMethod: http.MethodPost,
					wantAuth:      "Bearer abc",
					wantHeaders: map[string]string{
						"X-Static": "1",
						"X-Extra":  "1",
					},
					wantCT:       "application/json",
					wantBodyJSON: map[string]any{"orig": "v"},
				}

				srv, last := makeServer(t, g)

				cfg := DefaultHTTPClientConfig()
				cfg.OAuthSource = &staticTokenSource{
					tok: &oauth2.Token{
						AccessToken: "abc",
						TokenType:   "bearer",
						Expiry:      time.Now().Add(1 * time.Hour),
					},
				}
				cfg.WithMiddleware(StaticHeaderMiddleware(map[string]string{
					"X-Static": "1",
				}))

				c := newTestClient(t, &cfg)
				return c, srv, last, g
			},
		},
		{
			name: "authprovider used when no oauth + inject field middleware recomputes bytes",
			setup: func(t *testing.T) (*HTTPClient, *httptest.Server, *recordedRequest, golden) {
				g := golden{
					status:        200,
					body:          "ok",
					wantReqMethod: http.MethodPost,
					wantAuth:      "Bearer from-provider",
					wantCT:        "application/json",
					wantBodyJSON:  map[string]any{"orig": "v", "injected": "yes"},
				}

				srv, last := makeServer(t, g)

				cfg := DefaultHTTPClientConfig()
				cfg.WithMiddleware(InjectFieldMiddleware("injected", "yes"))

				c := newTestClient(t, &cfg)
				c.SetToken(dto.TokenInfo{AccessToken: "from-provider", TokenType: "bearer"})
				return c, srv, last, g
			},
		},
		{
			name: "cookie session used when no access token",
			setup: func(t *testing.T) (*HTTPClient, *httptest.Server, *recordedRequest, golden) {
				g := golden{
					status:        200,
					body:          "ok",
					wantReqMethod: http.MethodGet,
					wantCookie:    "a=b;",
				}
				srv, last := makeServer(t, g)

				cfg := DefaultHTTPClientConfig()
				c := newTestClient(t, &cfg)
				c.SetToken(dto.TokenInfo{
					Cookies: []*http.Cookie{{Name: "a", Value: "b"}},
				})
				return c, srv, last, g
			},
		},
		{
			name: "captures set-cookie from response into token store",
			setup: func(t *testing.T) (*HTTPClient, *httptest.Server, *recordedRequest, golden) {
				g := golden{
					status:                 200,
					body:                   "ok",
					wantReqMethod:          http.MethodGet,
					expectStoredCookieName: "sid",
				}
				srv, last := makeServer(t, g)

				cfg := DefaultHTTPClientConfig()
				c := newTestClient(t, &cfg)
				c.SetToken(dto.TokenInfo{AccessToken: "abc", TokenType: "bearer"})
				return c, srv, last, g
			},
		},
		{
			name:  "query params cleaned before encoding",
			query: map[string]any{"page": 2, "empty": "", "missing": nil},
			setup: func(t *testing.T) (*HTTPClient, *httptest.Server, *recordedRequest, golden) {
				g := golden{
					status:        200,
					body:          "ok",
					wantReqMethod: http.MethodGet,
					wantRawQuery:  "page=2",
				}
				srv, last := makeServer(t, g)

				cfg := DefaultHTTPClientConfig()
				c := newTestClient(t, &cfg)
				return c, srv, last, g
			},
		},
		{
			name: "other non-2xx surfaces as validation error without retry",
			setup: func(t *testing.T) (*HTTPClient, *httptest.Server, *recordedRequest, golden) {
				g := golden{
					status:        http.StatusRequestEntityTooLarge,
					body:          `{"success":false,"error":"File too large"}`,
					wantReqMethod: http.MethodGet,
					errContains:   "File too large",
				}
				srv, last := makeServer(t, g)

				cfg := DefaultHTTPClientConfig()
				c := newTestClient(t, &cfg)
				return c, srv, last, g
			},
		},
	}

	for _, cse := range cases {
		t.Run(cse.name, func(t *testing.T) {
			client, srv, last, g := cse.setup(t)
			defer srv.Close()

			reqCfg := DefaultHTTPRequestConfig()
			reqCfg.WithURL(srv.URL).WithMethod(g.wantReqMethod)

			if cse.query != nil {
				reqCfg.WithQuery(cse.query)
			}

			if g.wantBodyJSON != nil {
				reqCfg.WithMethod(http.MethodPost)
				reqCfg.WithBody(map[string]any{"orig": "v"})
			}
			if g.wantHeaders != nil {
				reqCfg.WithHeaders(map[string]string{"X-Extra": "1"})
			}

			resp, err := client.ProcessRequest(context.Background(), &dto.RequestConfig{
				ReqConfig: &reqCfg,
			})

			if g.errContains != "" {
				if err == nil || !strings.Contains(err.Error(), g.errContains) {
					t.Fatalf("err=%v; want contains %q", err, g.errContains)
				}
				if resp.StatusCode != g.status {
					t.Fatalf("resp.StatusCode=%d; want %d", resp.StatusCode, g.status)
				}
				return
			}

			if err != nil {
				t.Fatalf("ProcessRequest error: %v", err)
			}

			if last.Method != g.wantReqMethod {
				t.Fatalf("method=%q; want %q", last.Method, g.wantReqMethod)
			}

			if g.wantAuth != "" {
				if got := last.Header.Get("Authorization"); got != g.wantAuth {
					t.Fatalf("Authorization=%q; want %q", got, g.wantAuth)
				}
			}

			if g.wantCookie != "" {
				got := last.Header.Get("Cookie")
				if !strings.Contains(got, g.wantCookie) {
					t.Fatalf("Cookie=%q; want contains %q", got, g.wantCookie)
				}
			}

			for k, v := range g.wantHeaders {
				if got := last.Header.Get(k); got != v {
					t.Fatalf("header %s=%q; want %q", k, got, v)
				}
			}

			if g.wantCT != "" && last.ContentType != g.wantCT {
				t.Fatalf("Content-Type=%q; want %q", last.ContentType, g.wantCT)
			}

			if g.wantRawQuery != "" && last.RawQuery != g.wantRawQuery {
				t.Fatalf("RawQuery=%q; want %q", last.RawQuery, g.wantRawQuery)
			}

			if g.wantBodyJSON != nil {
				var got map[string]any
				if err := json.Unmarshal(last.Body, &got); err != nil {
					t.Fatalf("unmarshal body=%q: %v", last.Body, err)
				}
				if !reflect.DeepEqual(got, g.wantBodyJSON) {
					t.Fatalf("json body=%v; want %v", got, g.wantBodyJSON)
				}
			}

			if g.expectStoredCookieName != "" {
				tok := client.Token()
				found := false
				for _, ck := range tok.Cookies {
					if ck != nil && ck.Name == g.expectStoredCookieName {
						found = true
						break
					}
				}
				if !found {
					t.Fatalf("expected stored cookie %q; got %v", g.expectStoredCookieName, tok.Cookies)
				}
			}
		})
	}
}

func Test_HTTPClient_401_refreshAndReplaySucceeds(t *testing.T) {
	var refreshes atomic.Int64
	var hits atomic.Int64

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		if r.Header.Get("Authorization") == "Bearer fresh" {
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`{"success":true,"data":{"ok":true}}`))
			return
		}
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"success":false,"error":"token expired"}`))
	}))
	defer srv.Close()

	cfg := DefaultHTTPClientConfig()
	cfg.AuthProvider = fakeAuthProvider{
		refresh: func(ctx context.Context, old dto.TokenInfo) (dto.TokenInfo, error) {
			refreshes.Add(1)
			if old.AccessToken != "stale" {
				t.Errorf("refresh got old token %q; want stale", old.AccessToken)
			}
			return dto.TokenInfo{AccessToken: "fresh", TokenType: "bearer"}, nil
		},
	}

	c := newTestClient(t, &cfg)
	c.SetToken(dto.TokenInfo{AccessToken: "stale", TokenType: "bearer"})

	reqCfg := DefaultHTTPRequestConfig()
	reqCfg.WithURL(srv.URL).WithMethod(http.MethodGet)

	resp, err := c.ProcessRequest(context.Background(), &dto.RequestConfig{ReqConfig: &reqCfg})
	if err != nil {
		t.Fatalf("ProcessRequest error: %v", err)
	}
	if resp.StatusCode != 200 {
		t.Fatalf("status=%d; want 200", resp.StatusCode)
	}
	if refreshes.Load() != 1 {
		t.Fatalf("refreshes=%d; want 1", refreshes.Load())
	}
	if hits.Load() != 2 {
		t.Fatalf("wire attempts=%d; want 2", hits.Load())
	}
	if tok := c.Token(); tok.AccessToken != "fresh" {
		t.Fatalf("stored token=%q; want fresh", tok.AccessToken)
	}
}

func Test_HTTPClient_401_replayRejectedIsTerminal(t *testing.T) {
	var refreshes atomic.Int64
	var hits atomic.Int64

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"success":false,"error":"still no"}`))
	}))
	defer srv.Close()

	cfg := DefaultHTTPClientConfig()
	cfg.AuthProvider = fakeAuthProvider{
		refresh: func(ctx context.Context, old dto.TokenInfo) (dto.TokenInfo, error) {
			refreshes.Add(1)
			return dto.TokenInfo{AccessToken: "fresh", TokenType: "bearer"}, nil
		},
	}

	c := newTestClient(t, &cfg)
	c.SetToken(dto.TokenInfo{AccessToken: "stale", TokenType: "bearer"})

	reqCfg := DefaultHTTPRequestConfig()
	reqCfg.WithURL(srv.URL).WithMethod(http.MethodGet)

	_, err := c.ProcessRequest(context.Background(), &dto.RequestConfig{ReqConfig: &reqCfg})

	var authErr *dto.AuthError
	if !errors.As(err, &authErr) {
		t.Fatalf("err=%v; want *dto.AuthError", err)
	}
	if refreshes.Load() != 1 {
		t.Fatalf("refreshes=%d; want exactly 1", refreshes.Load())
	}
	if hits.Load() != 2 {
		t.Fatalf("wire attempts=%d; want 2 (original + single replay)", hits.Load())
	}
}

func Test_HTTPClient_401_refreshFailureClearsToken(t *testing.T) {
	var hits atomic.Int64

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer srv.Close()

	cfg := DefaultHTTPClientConfig()
	cfg.AuthProvider = fakeAuthProvider{
		refresh: func(ctx context.Context, old dto.TokenInfo) (dto.TokenInfo, error) {
			return dto.TokenInfo{}, errors.New("refresh endpoint said no")
		},
	}

	c := newTestClient(t, &cfg)
	c.SetToken(dto.TokenInfo{AccessToken: "stale", TokenType: "bearer"})

	reqCfg := DefaultHTTPRequestConfig()
	reqCfg.WithURL(srv.URL).WithMethod(http.MethodGet)

	_, err := c.ProcessRequest(context.Background(), &dto.RequestConfig{ReqConfig: &reqCfg})

	var authErr *dto.AuthError
	if !errors.As(err, &authErr) {
		t.Fatalf("err=%v; want *dto.AuthError", err)
	}
	if hits.Load() != 1 {
		t.Fatalf("wire attempts=%d; want 1 (no replay after failed refresh)", hits.Load())
	}
	if tok := c.Token(); !tok.IsZero() {
		t.Fatalf("token not cleared after failed refresh: %+v", tok)
	}
}

func Test_HTTPClient_concurrent401s_singleRefresh(t *testing.T) {
	var refreshes atomic.Int64

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") == "Bearer fresh" {
			w.WriteHeader(200)
			return
		}
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer srv.Close()

	cfg := DefaultHTTPClientConfig()
	cfg.AuthProvider = fakeAuthProvider{
		refresh: func(ctx context.Context, old dto.TokenInfo) (dto.TokenInfo, error) {
			refreshes.Add(1)
			time.Sleep(20 * time.Millisecond) // widen the race window
			return dto.TokenInfo{AccessToken: "fresh", TokenType: "bearer"}, nil
		},
	}

	c := newTestClient(t, &cfg)
	c.SetToken(dto.TokenInfo{AccessToken: "stale", TokenType: "bearer"})

	var wg sync.WaitGroup
	errs := make([]error, 5)
	for i := 0; i < 5; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			reqCfg := DefaultHTTPRequestConfig()
			reqCfg.WithURL(srv.URL).WithMethod(http.MethodGet)
			_, errs[i] = c.ProcessRequest(context.Background(), &dto.RequestConfig{ReqConfig: &reqCfg})
		}(i)
	}
	wg.Wait()

	for i, err := range errs {
		if err != nil {
			t.Fatalf("request %d failed: %v", i, err)
		}
	}
	if refreshes.Load() != 1 {
		t.Fatalf("refreshes=%d; want 1 shared across concurrent 401s", refreshes.Load())
	}
}

func Test_HTTPClient_429_exhaustsAfterThreeAttempts(t *testing.T) {
	noJitter(t)

	var hits atomic.Int64
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		w.Header().Set("Retry-After", "0")
		w.WriteHeader(http.StatusTooManyRequests)
	}))
	defer srv.Close()

	cfg := DefaultHTTPClientConfig()
	cfg.WithBaseBackoff(time.Millisecond)

	c := newTestClient(t, &cfg)

	reqCfg := DefaultHTTPRequestConfig()
	reqCfg.WithURL(srv.URL).WithMethod(http.MethodGet)

	_, err := c.ProcessRequest(context.Background(), &dto.RequestConfig{ReqConfig: &reqCfg})

	var rlErr *dto.RateLimitError
	if !errors.As(err, &rlErr) {
		t.Fatalf("err=%v; want *dto.RateLimitError", err)
	}
	if rlErr.Attempts != 3 {
		t.Fatalf("attempts=%d; want 3", rlErr.Attempts)
	}
	if hits.Load() != 3 {
		t.Fatalf("wire attempts=%d; want 3", hits.Load())
	}
}

func Test_HTTPClient_429_recoversWhenLimitLifts(t *testing.T) {
	noJitter(t)

	var hits atomic.Int64
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if hits.Add(1) == 1 {
			w.Header().Set("Retry-After", "0")
			w.WriteHeader(http.StatusTooManyRequests)
			return
		}
		w.WriteHeader(200)
	}))
	defer srv.Close()

	cfg := DefaultHTTPClientConfig()
	cfg.WithBaseBackoff(time.Millisecond)
	c := newTestClient(t, &cfg)

	reqCfg := DefaultHTTPRequestConfig()
	reqCfg.WithURL(srv.URL).WithMethod(http.MethodGet)

	resp, err := c.ProcessRequest(context.Background(), &dto.RequestConfig{ReqConfig: &reqCfg})
	if err != nil {
		t.Fatalf("ProcessRequest error: %v", err)
	}
	if resp.StatusCode != 200 {
		t.Fatalf("status=%d; want 200", resp.StatusCode)
	}
	if hits.Load() != 2 {
		t.Fatalf("wire attempts=%d; want 2", hits.Load())
	}
}

func Test_HTTPClient_transportFailureWrapsNetworkError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // connection refused from here on

	cfg := DefaultHTTPClientConfig()
	c := newTestClient(t, &cfg)

	reqCfg := DefaultHTTPRequestConfig()
	reqCfg.WithURL(srv.URL).WithMethod(http.MethodGet)

	_, err := c.ProcessRequest(context.Background(), &dto.RequestConfig{ReqConfig: &reqCfg})

	var netErr *dto.NetworkError
	if !errors.As(err, &netErr) {
		t.Fatalf("err=%v; want *dto.NetworkError", err)
	}
}

func Test_HTTPClient_ensureToken_refreshBufferTriggersRefresh(t *testing.T) {
	ts := &staticTokenSource{
		tok: &oauth2.Token{
			AccessToken: "t1",
			TokenType:   "bearer",
			Expiry:      time.Now().Add(2 * time.Second),
		},
	}

	cfg := DefaultHTTPClientConfig()
	cfg.OAuthSource = ts
	cfg.RefreshBuffer = 30 * time.Second // larger than remaining lifetime -> refresh

	c := newTestClient(t, &cfg)

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(200)
	}))
	defer srv.Close()

	reqCfg := DefaultHTTPRequestConfig()
	reqCfg.WithURL(srv.URL).WithMethod(http.MethodGet)

	_, err := c.ProcessRequest(context.Background(), &dto.RequestConfig{ReqConfig: &reqCfg})
	if err != nil {
		t.Fatalf("ProcessRequest error: %v", err)
	}

	if ts.n.Load() != 1 {
		t.Fatalf("Token() calls=%d; want 1", ts.n.Load())
	}
}

func Test_HTTPClient_Limiter_throttlesRequests(t *testing.T) {
	t.Parallel()

	var hits atomic.Int64
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		w.WriteHeader(200)
	}))
	defer srv.Close()

	cfg := DefaultHTTPClientConfig()
	cfg.WithLimiter(rate.NewLimiter(rate.Every(25*time.Millisecond), 1))

	c := newTestClient(t, &cfg)

	reqCfg := DefaultHTTPRequestConfig()
	reqCfg.WithURL(srv.URL).WithMethod(http.MethodGet)

	start := time.Now()
	for i := 0; i < 3; i++ {
		if _, err := c.ProcessRequest(context.Background(), &dto.RequestConfig{ReqConfig: &reqCfg}); err != nil {
			t.Fatalf("ProcessRequest %d error: %v", i, err)
		}
	}
	elapsed := time.Since(start)

	if hits.Load() != 3 {
		t.Fatalf("server hits=%d; want 3", hits.Load())
	}
	// One token is available immediately; the other two each wait a 25ms
	// refill, so the run cannot finish before ~50ms. Assert a bit under
	// that to leave room for coarse timers.
	if elapsed < 45*time.Millisecond {
		t.Fatalf("elapsed=%s; want >= 45ms under a 25ms refill limiter", elapsed)
	}
}

func Test_HTTPClient_Limiter_cancelledContext(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Error("request must not reach the server when the limiter wait is cancelled")
	}))
	defer srv.Close()

	cfg := DefaultHTTPClientConfig()
	l := rate.NewLimiter(rate.Every(time.Hour), 1)
	l.Allow() // drain the burst so the next Wait blocks
	cfg.WithLimiter(l)

	c := newTestClient(t, &cfg)

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	reqCfg := DefaultHTTPRequestConfig()
	reqCfg.WithURL(srv.URL).WithMethod(http.MethodGet)

	_, err := c.ProcessRequest(ctx, &dto.RequestConfig{ReqConfig: &reqCfg})
	if err == nil {
		t.Fatal("expected an error when the limiter wait outlives the context")
	}
}
