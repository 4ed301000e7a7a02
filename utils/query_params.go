package utils

import (
	"fmt"
	"net/url"
)

// CleanParams encodes scalar query parameters, omitting nil and
// empty-string values entirely.
func CleanParams(params map[string]any) url.Values {
	vals := url.Values{}
	for k, v := range params {
		if v == nil {
			continue
		}
		if s, ok := v.(string); ok {
			if s == "" {
				continue
			}
			vals.Set(k, s)
			continue
		}
		vals.Set(k, fmt.Sprintf("%v", v))
	}
	return vals
}

// AppendQuery attaches encoded values to a URL, respecting any existing
// query string.
func AppendQuery(rawURL string, vals url.Values) string {
	if len(vals) == 0 {
		return rawURL
	}
	u, err := url.Parse(rawURL)
	if err != nil {
		return rawURL
	}
	q := u.Query()
	for k, vs := range vals {
		for _, v := range vs {
			q.Add(k, v)
		}
	}
	u.RawQuery = q.Encode()
	return u.String()
}
