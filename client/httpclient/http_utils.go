package httpclient

import (
	"net/http"

	"github.com/nethrys/gofolio/dto"
)

// captureCookiesFromResponse stores updated cookies from Set-Cookie headers
// so cookie-carried session state (e.g. the refresh cookie) survives across
// calls.
func (c *HTTPClient) captureCookiesFromResponse(resp dto.Response) {
	c.tokenMu.Lock()
	defer c.tokenMu.Unlock()
	for _, set := range resp.Headers["Set-Cookie"] {
		for _, cookie := range parseSetCookieHeader(set) {
			c.storeOrReplaceCookie(cookie)
		}
	}
}

// storeOrReplaceCookie updates or appends a cookie by its name. The slice is
// rebuilt rather than mutated in place because Token() hands out snapshots
// that share the old backing array.
func (c *HTTPClient) storeOrReplaceCookie(cookie *http.Cookie) {
	cookies := make([]*http.Cookie, len(c.token.Cookies), len(c.token.Cookies)+1)
	copy(cookies, c.token.Cookies)
	replaced := false
	for i, existing := range cookies {
		if existing.Name == cookie.Name {
			cookies[i] = cookie
			replaced = true
			break
		}
	}
	if !replaced {
		cookies = append(cookies, cookie)
	}
	c.token.Cookies = cookies
}

// parseSetCookieHeader safely extracts cookies from a raw Set-Cookie header line.
func parseSetCookieHeader(v string) []*http.Cookie {
	resp := &http.Response{Header: http.Header{"Set-Cookie": []string{v}}}
	return resp.Cookies()
}
