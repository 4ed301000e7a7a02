package httpclient

import (
	"context"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// StaticHeaderMiddleware injects static headers into every request.
func StaticHeaderMiddleware(headers map[string]string) Middleware {
	return func(ctx context.Context, r *HTTPRequest) error {
		if r.Headers == nil {
			r.Headers = make(map[string]string)
		}
		for k, v := range headers {
			r.Headers[k] = v
		}
		return nil
	}
}

// RequestIDMiddleware tags every request with a fresh X-Request-ID so the
// backend logs can be correlated with client-side ones.
func RequestIDMiddleware() Middleware {
	return func(ctx context.Context, r *HTTPRequest) error {
		r.SetHeader("X-Request-ID", uuid.NewString())
		return nil
	}
}

func LoggingMiddleware(entry *logrus.Entry) Middleware {
	return func(ctx context.Context, r *HTTPRequest) error {
		entry.WithFields(logrus.Fields{
			"method": r.Method,
			"url":    r.URL,
		}).Debug("http request")
		return nil
	}
}

// InjectFieldMiddleware adds a field to the JSON body of every request.
func InjectFieldMiddleware(key string, val any) Middleware {
	return func(ctx context.Context, r *HTTPRequest) error {
		if r.Body == nil {
			r.Body = map[string]any{}
		}
		r.Body[key] = val

		// Ensure final bytes will be recomputed from Body.
		r.BodyBytes = nil
		r.ContentType = ""
		return nil
	}
}
