package gofolio

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/nethrys/gofolio/client/httpclient"
	"github.com/nethrys/gofolio/dto"
	"github.com/nethrys/gofolio/utils"
)

// Get issues a GET against a backend path (or absolute URL) and decodes
// the envelope payload into out when provided.
func (s *PortfolioSvc) Get(ctx context.Context, path string, params map[string]any, out any) (*dto.Envelope, error) {
	return s.doJSON(ctx, http.MethodGet, path, params, nil, out)
}

// Post issues a POST with an optional JSON body. A nil body sends no body
// at all, not an empty object.
func (s *PortfolioSvc) Post(ctx context.Context, path string, body map[string]any, out any) (*dto.Envelope, error) {
	return s.doJSON(ctx, http.MethodPost, path, nil, body, out)
}

func (s *PortfolioSvc) Put(ctx context.Context, path string, body map[string]any, out any) (*dto.Envelope, error) {
	return s.doJSON(ctx, http.MethodPut, path, nil, body, out)
}

// Delete issues a DELETE with no body.
func (s *PortfolioSvc) Delete(ctx context.Context, path string) (*dto.Envelope, error) {
	return s.doJSON(ctx, http.MethodDelete, path, nil, nil, nil)
}

func (s *PortfolioSvc) doJSON(ctx context.Context, method, path string, params map[string]any, body map[string]any, out any) (*dto.Envelope, error) {
	reqCfg := httpclient.DefaultHTTPRequestConfig()
	reqCfg.WithURL(s.cfg.ResolveURL(path)).WithMethod(method)
	if params != nil {
		reqCfg.WithQuery(params)
	}
	if body != nil {
		reqCfg.WithBody(body)
	}

	cfg := dto.DefaultRequestConfig()
	cfg.WithReqConfig(&reqCfg).
		WithTimeout(s.cfg.RequestTimeout).
		WithTaskName(method + " " + path)

	resp, err := s.RequestOnce(ctx, &cfg)
	if err != nil {
		return nil, err
	}

	env := httpclient.Classify(resp).Envelope
	if out != nil {
		if err := env.DecodeData(out); err != nil {
			return &env, err
		}
	}
	return &env, nil
}

// RequestWithRetry re-issues a call on transient transport errors and 5xx
// responses. This is an explicit opt-in on top of RequestOnce; refresh and
// rate-limit recovery already happen inside the HTTP client.
func (s *PortfolioSvc) RequestWithRetry(ctx context.Context, cfg *dto.RequestConfig) (dto.Response, error) {
	if cfg == nil {
		return dto.Response{}, errors.New("nil RequestConfig provided")
	}
	if cfg.MaxRetries < 0 {
		cfg.MaxRetries = 0
	}
	if cfg.Delay == nil {
		cfg.Delay = utils.ConstantDelay{Period: 1}
	}
	var lastErr error
	for attempt := 0; attempt <= cfg.MaxRetries; attempt++ {
		if attempt > 0 {
			cfg.Delay.Wait(cfg.TaskName, attempt)
		}

		resp, err := s.RequestOnce(ctx, cfg)
		if err != nil {
			lastErr = err
			var netErr *dto.NetworkError
			if errors.As(err, &netErr) && utils.IsTemporaryErr(netErr.Err) && attempt < cfg.MaxRetries {
				continue
			}
			return resp, err
		}

		if resp.StatusCode >= 500 {
			lastErr = fmt.Errorf("server error (%d)", resp.StatusCode)
			if attempt < cfg.MaxRetries {
				continue
			}
			return resp, fmt.Errorf(
				"failed after %d attempts: %w",
				cfg.MaxRetries+1,
				lastErr,
			)
		}
		return resp, nil
	}

	return dto.Response{}, fmt.Errorf("failed after %d attempts: %w", cfg.MaxRetries+1, lastErr)
}

func (s *PortfolioSvc) RequestOnce(ctx context.Context, cfg *dto.RequestConfig) (dto.Response, error) {
	if cfg.ClientRef == "" {
		return dto.Response{}, errors.New("nil ClientRef provided")
	}

	if cfg.ReqConfig == nil {
		return dto.Response{}, errors.New("nil ReqConfig provided")
	}

	if cfg.TaskName == "" {
		cfg.TaskName = "http_request"
	}

	netClient, isOK := s.clients[cfg.ClientRef]
	if !isOK {
		return dto.Response{}, fmt.Errorf("client not found: %s", cfg.ClientRef)
	}

	// Sanity check that the req config matches the client type to avoid later casting confusion
	if netClient.Type() != cfg.ReqConfig.Ref() {
		return dto.Response{}, fmt.Errorf(
			"client type mismatch: client=%s(%s) req=%s",
			cfg.ClientRef,
			netClient.Type(),
			cfg.ReqConfig.Ref(),
		)
	}

	if cfg.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, cfg.Timeout)
		defer cancel()
	}

	response, err := netClient.ProcessRequest(ctx, cfg)
	if err != nil {
		return response, fmt.Errorf("%s: %w", cfg.TaskName, err)
	}

	if cfg.ResponseObject != nil && len(response.Body) > 0 {
		if unmarshalErr := json.Unmarshal(response.Body, cfg.ResponseObject); unmarshalErr != nil {
			return response, fmt.Errorf("unmarshal response: %w", unmarshalErr)
		}
	}

	return response, nil
}

// toBodyMap converts a typed resource into the map form the request
// builders expect.
func toBodyMap(v any) (map[string]any, error) {
	raw, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("encode body: %w", err)
	}
	var body map[string]any
	if err := json.Unmarshal(raw, &body); err != nil {
		return nil, fmt.Errorf("decode body: %w", err)
	}
	return body, nil
}
