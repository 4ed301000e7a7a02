package httpclient

import (
	"context"
	"net/http"

	"github.com/nethrys/gofolio/dto"
)

// FilePart is one in-memory file carried by a multipart payload. Content is
// retained for the whole call so replays after a token refresh or a rate
// limit wait rebuild an identical body.
type FilePart struct {
	FieldName string
	FileName  string
	Content   []byte
}

// HTTPRequestConfig is immutable input (safe to reuse).
type HTTPRequestConfig struct {
	Method string `json:"method" yaml:"method"`
	URL    string
	// Query parameters; nil and empty-string values are dropped before
	// encoding.
	Query map[string]any         `json:"query,omitempty" yaml:"query,omitempty"`
	Body  map[string]interface{} `json:"body,omitempty" yaml:"body,omitempty"`
	// BodyType application/json, application/x-www-form-urlencoded, or
	// multipart/form-data when Files are present
	BodyType string            `json:"body_type" yaml:"body_type"`
	Headers  map[string]string `json:"headers,omitempty" yaml:"headers,omitempty"`
	// Files switches the payload to multipart; FormFields are extra plain
	// fields (e.g. the destination folder) sent alongside.
	Files      []FilePart        `json:"-" yaml:"-"`
	FormFields map[string]string `json:"form_fields,omitempty" yaml:"form_fields,omitempty"`
}

func DefaultHTTPRequestConfig() HTTPRequestConfig {
	return HTTPRequestConfig{
		Method:   http.MethodGet,
		BodyType: "application/json",
		Headers:  make(map[string]string),
	}
}

func (c *HTTPRequestConfig) Ref() dto.NetClientType {
	return NetClientHTTPRef
}

func (c *HTTPRequestConfig) WithMethod(method string) *HTTPRequestConfig {
	c.Method = method
	return c
}

func (c *HTTPRequestConfig) WithBody(body map[string]interface{}) *HTTPRequestConfig {
	c.Body = body
	return c
}

func (c *HTTPRequestConfig) WithQuery(params map[string]any) *HTTPRequestConfig {
	c.Query = params
	return c
}

func (c *HTTPRequestConfig) WithHeaders(headers map[string]string) *HTTPRequestConfig {
	c.Headers = headers
	return c
}

func (c *HTTPRequestConfig) WithURL(url string) *HTTPRequestConfig {
	c.URL = url
	return c
}

func (c *HTTPRequestConfig) WithFiles(files ...FilePart) *HTTPRequestConfig {
	c.Files = append(c.Files, files...)
	c.BodyType = "multipart/form-data"
	return c
}

func (c *HTTPRequestConfig) WithFormField(key, value string) *HTTPRequestConfig {
	if c.FormFields == nil {
		c.FormFields = make(map[string]string)
	}
	c.FormFields[key] = value
	return c
}

// NewRequest creates a per-call mutable request object.
// This avoids mutating the config and avoids leaks without cloning it.
func (c *HTTPRequestConfig) NewRequest(ctx context.Context) (any, error) {
	r := &HTTPRequest{
		Method:     c.Method,
		URL:        c.URL,
		BodyType:   c.BodyType,
		Headers:    make(map[string]string, len(c.Headers)),
		Body:       make(map[string]any, len(c.Body)),
		Query:      make(map[string]any, len(c.Query)),
		FormFields: make(map[string]string, len(c.FormFields)),
		Files:      append([]FilePart(nil), c.Files...),
	}
	if c.Body == nil {
		r.Body = nil
	}
	for k, v := range c.Headers {
		r.Headers[k] = v
	}
	for k, v := range c.Body {
		r.Body[k] = v
	}
	for k, v := range c.Query {
		r.Query[k] = v
	}
	for k, v := range c.FormFields {
		r.FormFields[k] = v
	}
	return r, nil
}

// HTTPRequest is per-call mutable state.
type HTTPRequest struct {
	Method     string
	URL        string
	Query      map[string]any
	Body       map[string]any
	BodyType   string
	Headers    map[string]string
	Files      []FilePart
	FormFields map[string]string
	// Finalized wire body (deterministic for tests and replays)
	BodyBytes   []byte
	ContentType string
}

func (r *HTTPRequest) ClientType() dto.NetClientType { return NetClientHTTPRef }

func (r *HTTPRequest) SetHeader(k, v string) {
	if r.Headers == nil {
		r.Headers = map[string]string{}
	}
	r.Headers[k] = v
}

func (r *HTTPRequest) Header(k string) string {
	if r.Headers == nil {
		return ""
	}
	return r.Headers[k]
}
