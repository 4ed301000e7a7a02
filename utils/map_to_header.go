package utils

import "net/http"

// MapToHeader converts a flat header map into http.Header form, with
// canonical key casing applied by Set.
func MapToHeader(m map[string]string) http.Header {
	h := make(http.Header)
	for k, v := range m {
		h.Set(k, v)
	}
	return h
}
