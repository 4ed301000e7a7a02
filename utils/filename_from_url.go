package utils

import (
	"net/url"
	"path/filepath"
)

// FilenameFromUrl takes an escaped url and outputs the unescaped filename
// of its last path segment.
func FilenameFromUrl(inputUrl string) (string, error) {
	u, err := url.Parse(inputUrl)
	if err != nil {
		return "", err
	}
	x, _ := url.QueryUnescape(u.EscapedPath())
	return filepath.Base(x), nil
}
