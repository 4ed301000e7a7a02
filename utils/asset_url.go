package utils

import "strings"

// BuildAssetURL composes a CDN delivery URL for a stored media asset.
// publicID values that are already absolute URLs pass through unchanged,
// so composing the result back through this function is idempotent.
func BuildAssetURL(deliveryBase, publicID, transform string) string {
	if publicID == "" {
		return ""
	}
	if strings.HasPrefix(publicID, "http://") || strings.HasPrefix(publicID, "https://") {
		return publicID
	}

	base := strings.TrimSuffix(deliveryBase, "/")
	id := strings.TrimPrefix(publicID, "/")
	if transform == "" {
		return base + "/" + id
	}
	return base + "/" + strings.Trim(transform, "/") + "/" + id
}
