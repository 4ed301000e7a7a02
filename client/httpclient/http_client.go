package httpclient

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"sync"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/nethrys/gofolio/config"
	"github.com/nethrys/gofolio/dto"
	"github.com/nethrys/gofolio/pkg/log"
	"github.com/nethrys/gofolio/utils"
)

// -----------------------------------------------------------------------------
// PERSISTENT CLIENT IMPLEMENTATION
// -----------------------------------------------------------------------------

// HTTPClient is the resilient authenticated client every portfolio call
// funnels through. It owns the credential as private instance state and
// recovers from the two transient protocol failures on its own:
//
//   - 401: one credential refresh, then one replay of the original request.
//     A second 401 on the replay is terminal.
//   - 429: exponential backoff (or the server's Retry-After hint), bounded
//     by MaxRateAttempts.
//
// All other non-2xx statuses surface immediately with a derived message.

const NetClientHTTPRef dto.NetClientType = "net.client.http"

type HTTPClient struct {
	NetClient dto.NetClient `json:"net_client" yaml:"net_client"`
	cfg       *HTTPClientConfig
	netCfg    *config.Config
	client    *http.Client
	log       *logrus.Entry
	token     dto.TokenInfo
	tokenMu   sync.RWMutex
	// refreshMu serializes credential refreshes across concurrent 401s.
	refreshMu sync.Mutex
}

func NewHTTPClient(ref string, netCfg *config.Config, cfg *HTTPClientConfig) *HTTPClient {
	return &HTTPClient{
		cfg:    cfg,
		netCfg: netCfg,
		log:    log.L.WithField("client", ref),
		NetClient: dto.NetClient{
			Name:        "HTTP Client",
			Ref:         ref,
			ClientType:  NetClientHTTPRef,
			Description: "Performs portfolio API requests with refresh and backoff recovery",
		},
		client: &http.Client{
			Timeout: netCfg.RequestTimeout,
			Transport: &http.Transport{
				MaxIdleConns:        50,
				IdleConnTimeout:     90 * time.Second,
				TLSHandshakeTimeout: 10 * time.Second,
				DisableKeepAlives:   false,
				Proxy:               http.ProxyFromEnvironment,
			},
		},
	}
}

func (c *HTTPClient) Ref() string {
	return c.NetClient.Ref
}

func (c *HTTPClient) Type() dto.NetClientType {
	return NetClientHTTPRef
}

// -----------------------------------------------------------------------------
// REQUEST EXECUTION
// -----------------------------------------------------------------------------

// ProcessRequest executes one authenticated, middleware-wrapped call. The
// response body is finalized into deterministic bytes up front, so every
// replay (refresh or backoff) re-sends an identical payload.
func (c *HTTPClient) ProcessRequest(ctx context.Context, inCfg *dto.RequestConfig) (dto.Response, error) {
	cfg, castOk := inCfg.ReqConfig.(*HTTPRequestConfig)
	if !castOk {
		return dto.Response{}, errors.New("problem casting to httprequestconfig")
	}

	reqAny, err := cfg.NewRequest(ctx)
	if err != nil {
		return dto.Response{}, fmt.Errorf("build request: %w", err)
	}
	reqCfg, ok := reqAny.(*HTTPRequest)
	if !ok {
		return dto.Response{}, errors.New("problem casting built request to httprequest")
	}

	for _, mw := range c.cfg.Middlewares {
		if err := mw(ctx, reqCfg); err != nil {
			return dto.Response{}, fmt.Errorf("middleware aborted: %w", err)
		}
	}

	if err := c.ensureToken(ctx); err != nil {
		return dto.Response{}, fmt.Errorf("ensure token: %w", err)
	}

	if err := reqCfg.FinalizeBody(); err != nil {
		return dto.Response{}, err
	}

	reqCfg.URL = utils.AppendQuery(reqCfg.URL, utils.CleanParams(reqCfg.Query))

	maxAttempts := c.cfg.MaxRateAttempts
	if maxAttempts < 1 {
		maxAttempts = 1
	}

	attempt := 1
	replayed := false

	for {
		sent := c.Token()
		c.attachAuth(reqCfg, sent)

		resp, sendErr := c.send(ctx, reqCfg)
		if sendErr != nil {
			return dto.Response{}, &dto.NetworkError{Err: sendErr}
		}

		if setCookies := resp.Headers["Set-Cookie"]; len(setCookies) > 0 {
			c.captureCookiesFromResponse(resp)
		}

		out := Classify(resp)
		if out.ParseErr != nil {
			c.log.WithError(out.ParseErr).WithField("status", resp.StatusCode).
				Warn("response body did not match its content type")
		}
		switch out.Kind {
		case dto.OutcomeSuccess:
			return resp, nil

		case dto.OutcomeAuthFailure:
			if replayed {
				// the replay was rejected too; do not loop
				return resp, &dto.AuthError{Message: out.Message}
			}
			if err := c.refreshAfterAuthFailure(ctx, sent); err != nil {
				return resp, err
			}
			replayed = true
			continue

		case dto.OutcomeRateLimited:
			if attempt >= maxAttempts {
				return resp, &dto.RateLimitError{
					Message:  out.Message,
					Attempts: attempt,
					Wait:     out.RetryAfter,
				}
			}
			delay := BackoffDelay(attempt, out.RetryAfter, out.RetryAfterSet, c.cfg.BaseBackoff)
			c.log.WithFields(logrus.Fields{
				"attempt": attempt,
				"delay":   delay,
			}).Debug("rate limited, backing off")
			select {
			case <-time.After(delay):
			case <-ctx.Done():
				return resp, ctx.Err()
			}
			attempt++
			continue

		default:
			return resp, &dto.ValidationError{
				StatusCode: out.StatusCode,
				Message:    out.Message,
			}
		}
	}
}

// send performs a single wire exchange and reads the body fully.
func (c *HTTPClient) send(ctx context.Context, reqCfg *HTTPRequest) (dto.Response, error) {
	if c.cfg.Limiter != nil {
		if err := c.cfg.Limiter.Wait(ctx); err != nil {
			return dto.Response{}, err
		}
	}

	var body io.Reader
	if reqCfg.BodyBytes != nil {
		body = bytes.NewReader(reqCfg.BodyBytes)
	}

	httpReq, err := http.NewRequestWithContext(ctx, reqCfg.Method, reqCfg.URL, body)
	if err != nil {
		return dto.Response{}, fmt.Errorf("create request: %w", err)
	}

	for k, v := range reqCfg.Headers {
		httpReq.Header.Set(k, v)
	}
	if reqCfg.ContentType != "" && httpReq.Header.Get("Content-Type") == "" {
		httpReq.Header.Set("Content-Type", reqCfg.ContentType)
	}
	if c.netCfg.UserAgent != "" && httpReq.Header.Get("User-Agent") == "" {
		httpReq.Header.Set("User-Agent", c.netCfg.UserAgent)
	}
	for k, v := range c.netCfg.ExtraHeaders {
		if httpReq.Header.Get(k) == "" {
			httpReq.Header.Set(k, v)
		}
	}

	httpResp, reqErr := c.client.Do(httpReq)
	if httpResp != nil {
		defer func() {
			io.Copy(io.Discard, httpResp.Body) // drain fully for connection reuse
			httpResp.Body.Close()
		}()
	}
	if reqErr != nil {
		return dto.Response{}, fmt.Errorf("perform request: %w", reqErr)
	}

	bodyBytes, err := io.ReadAll(httpResp.Body)
	if err != nil {
		return dto.Response{}, fmt.Errorf("read body: %w", err)
	}

	return dto.Response{
		StatusCode: httpResp.StatusCode,
		Headers:    httpResp.Header.Clone(),
		Body:       bodyBytes,
	}, nil
}
