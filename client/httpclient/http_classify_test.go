package httpclient

import (
	"net/http"
	"testing"
	"time"

	"github.com/nethrys/gofolio/dto"
)

func makeResponse(status int, contentType, body string, extra map[string]string) dto.Response {
	h := http.Header{}
	if contentType != "" {
		h.Set("Content-Type", contentType)
	}
	for k, v := range extra {
		h.Set(k, v)
	}
	return dto.Response{StatusCode: status, Headers: h, Body: []byte(body)}
}

func Test_Classify_golden(t *testing.T) {
	cases := []struct {
		name string
		resp dto.Response

		wantKind       dto.OutcomeKind
		wantMessage    string
		wantSuccess    bool
		wantRetryAfter time.Duration
		wantHintSet    bool
		wantParseErr   bool
	}{
		{
			name:        "2xx json envelope",
			resp:        makeResponse(200, "application/json", `{"success":true,"data":{"x":1},"message":"saved"}`, nil),
			wantKind:    dto.OutcomeSuccess,
			wantMessage: "saved",
			wantSuccess: true,
		},
		{
			name:        "2xx non-json body treated successful with raw text",
			resp:        makeResponse(200, "text/plain", "ok", nil),
			wantKind:    dto.OutcomeSuccess,
			wantMessage: "ok",
			wantSuccess: true,
		},
		{
			name:        "2xx empty body synthesizes status line",
			resp:        makeResponse(204, "", "", nil),
			wantKind:    dto.OutcomeSuccess,
			wantMessage: "HTTP 204: No Content",
			wantSuccess: true,
		},
		{
			name:        "non-2xx forces success false even when body claims otherwise",
			resp:        makeResponse(500, "application/json", `{"success":true,"message":"fine"}`, nil),
			wantKind:    dto.OutcomeGenericFailure,
			wantMessage: "fine",
			wantSuccess: false,
		},
		{
			name:        "error field preferred for message",
			resp:        makeResponse(400, "application/json", `{"success":false,"error":"Title is required","message":"secondary"}`, nil),
			wantKind:    dto.OutcomeGenericFailure,
			wantMessage: "Title is required",
		},
		{
			name:         "json content type with unparseable body falls back to raw text",
			resp:         makeResponse(502, "application/json", "<html>Bad Gateway</html>", nil),
			wantKind:     dto.OutcomeGenericFailure,
			wantMessage:  "<html>Bad Gateway</html>",
			wantParseErr: true,
		},
		{
			name:         "2xx json content type with unparseable body still succeeds",
			resp:         makeResponse(200, "application/json", "not json at all", nil),
			wantKind:     dto.OutcomeSuccess,
			wantMessage:  "not json at all",
			wantSuccess:  true,
			wantParseErr: true,
		},
		{
			name:        "empty error body synthesizes status line",
			resp:        makeResponse(404, "", "", nil),
			wantKind:    dto.OutcomeGenericFailure,
			wantMessage: "HTTP 404: Not Found",
		},
		{
			name:        "401 classifies as auth failure",
			resp:        makeResponse(401, "application/json", `{"success":false,"error":"token expired"}`, nil),
			wantKind:    dto.OutcomeAuthFailure,
			wantMessage: "token expired",
		},
		{
			name:           "429 with retry-after seconds",
			resp:           makeResponse(429, "application/json", `{"success":false}`, map[string]string{"Retry-After": "5"}),
			wantKind:       dto.OutcomeRateLimited,
			wantMessage:    "rate limited, retry in 5s",
			wantRetryAfter: 5 * time.Second,
			wantHintSet:    true,
		},
		{
			name:        "429 without hint reports remaining budget",
			resp:        makeResponse(429, "", "", map[string]string{"RateLimit-Remaining": "0"}),
			wantKind:    dto.OutcomeRateLimited,
			wantMessage: "rate limited (0 requests remaining)",
		},
		{
			name:        "429 with http-date retry-after ignored as hint",
			resp:        makeResponse(429, "", "", map[string]string{"Retry-After": "Wed, 21 Oct 2026 07:28:00 GMT"}),
			wantKind:    dto.OutcomeRateLimited,
			wantMessage: "rate limited",
		},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			out := Classify(c.resp)

			if out.Kind != c.wantKind {
				t.Fatalf("kind=%s; want %s", out.Kind, c.wantKind)
			}
			if out.Message != c.wantMessage {
				t.Fatalf("message=%q; want %q", out.Message, c.wantMessage)
			}
			if out.StatusCode != c.resp.StatusCode {
				t.Fatalf("status=%d; want %d", out.StatusCode, c.resp.StatusCode)
			}
			if out.RetryAfterSet != c.wantHintSet {
				t.Fatalf("retryAfterSet=%v; want %v", out.RetryAfterSet, c.wantHintSet)
			}
			if c.wantHintSet && out.RetryAfter != c.wantRetryAfter {
				t.Fatalf("retryAfter=%s; want %s", out.RetryAfter, c.wantRetryAfter)
			}
			if (out.ParseErr != nil) != c.wantParseErr {
				t.Fatalf("parseErr=%v; want set=%v", out.ParseErr, c.wantParseErr)
			}

			if c.resp.StatusCode >= 300 && out.Envelope.Success {
				t.Fatal("envelope success must be forced false on non-2xx")
			}
			if c.wantSuccess && !out.Envelope.Success {
				t.Fatal("expected envelope success")
			}
		})
	}
}
