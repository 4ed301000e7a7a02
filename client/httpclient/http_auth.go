package httpclient

import (
	"fmt"
	"strings"

	"github.com/nethrys/gofolio/dto"
)

// normalizeAuthType ensures proper "Bearer", "Basic", or custom capitalization.
func normalizeAuthType(t string) string {
	switch strings.ToLower(strings.TrimSpace(t)) {
	case "bearer":
		return "Bearer"
	case "basic":
		return "Basic"
	default:
		if t == "" {
			return "Bearer"
		}
		return t
	}
}

// attachAuth injects the given credential into the per-call request.
// Called once per attempt so a replay picks up a refreshed token.
func (c *HTTPClient) attachAuth(r *HTTPRequest, tok dto.TokenInfo) {
	if r.Headers == nil {
		r.Headers = map[string]string{}
	}

	if tok.AccessToken != "" {
		r.Headers["Authorization"] = fmt.Sprintf("%s %s", normalizeAuthType(tok.TokenType), tok.AccessToken)
	} else {
		delete(r.Headers, "Authorization")
	}

	if len(tok.Cookies) > 0 {
		merged := ""
		for _, ck := range tok.Cookies {
			merged += ck.Name + "=" + ck.Value + "; "
		}
		r.Headers["Cookie"] = merged
	}
}
