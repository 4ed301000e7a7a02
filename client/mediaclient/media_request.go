package mediaclient

import (
	"context"
	"encoding/json"
	"fmt"
	"io"

	"github.com/nethrys/gofolio/dto"
)

func (c *MediaClient) ProcessRequest(ctx context.Context, reqCfg *dto.RequestConfig) (dto.Response, error) {
	cfg, ok := reqCfg.ReqConfig.(*MediaRequestConfig)
	if !ok {
		return dto.Response{}, fmt.Errorf("problem casting to mediarequestconfig")
	}

	reqAny, err := cfg.NewRequest(ctx)
	if err != nil {
		return dto.Response{}, fmt.Errorf("build request: %w", err)
	}
	r, ok := reqAny.(*MediaRequest)
	if !ok {
		return dto.Response{}, fmt.Errorf("problem casting built request to mediarequest")
	}

	for _, mw := range c.cfg.Middlewares {
		if err := mw(ctx, r); err != nil {
			return dto.Response{}, fmt.Errorf("middleware aborted: %w", err)
		}
	}

	if err := r.Finalize(c.cfg); err != nil {
		return dto.Response{}, err
	}

	switch r.Operation {
	case "get":
		return c.doGet(ctx, r)
	case "put":
		return c.doPut(ctx, r)
	case "delete":
		return c.doDelete(ctx, r)
	case "list":
		return c.doList(ctx, r)
	default:
		return dto.Response{}, fmt.Errorf("unsupported media operation: %s", r.Operation)
	}
}

func (c *MediaClient) doGet(ctx context.Context, r *MediaRequest) (dto.Response, error) {
	out, err := c.client.GetObject(ctx, r.GetInput)
	if err != nil {
		return dto.Response{}, fmt.Errorf("media get object: %w", err)
	}
	defer out.Body.Close()

	body, err := io.ReadAll(out.Body)
	if err != nil {
		return dto.Response{}, fmt.Errorf("media read object: %w", err)
	}
	return dto.Response{StatusCode: 200, Body: body}, nil
}

func (c *MediaClient) doPut(ctx context.Context, r *MediaRequest) (dto.Response, error) {
	_, err := c.client.PutObject(ctx, r.PutInput)
	if err != nil {
		return dto.Response{}, fmt.Errorf("media put object: %w", err)
	}
	return dto.Response{StatusCode: 200}, nil
}

func (c *MediaClient) doDelete(ctx context.Context, r *MediaRequest) (dto.Response, error) {
	_, err := c.client.DeleteObject(ctx, r.DeleteInput)
	if err != nil {
		return dto.Response{}, fmt.Errorf("media delete object: %w", err)
	}
	return dto.Response{StatusCode: 200}, nil
}

func (c *MediaClient) doList(ctx context.Context, r *MediaRequest) (dto.Response, error) {
	out, err := c.client.ListObjectsV2(ctx, r.ListInput)
	if err != nil {
		return dto.Response{}, fmt.Errorf("media list objects: %w", err)
	}

	keys := make([]string, 0, len(out.Contents))
	for _, obj := range out.Contents {
		if obj.Key != nil {
			keys = append(keys, *obj.Key)
		}
	}
	body, err := json.Marshal(keys)
	if err != nil {
		return dto.Response{}, fmt.Errorf("media encode listing: %w", err)
	}
	return dto.Response{StatusCode: 200, Body: body}, nil
}
