package dto

import (
	"context"
)

// AuthProvider defines methods for credential acquisition outside OAuth2.
// Authenticate establishes a fresh session; Refresh exchanges an existing
// (possibly expired) token for a new one.
type AuthProvider interface {
	Authenticate(ctx context.Context) (TokenInfo, error)
	Refresh(ctx context.Context, old TokenInfo) (TokenInfo, error)
}

// NetClientInterface abstracts a registered request client for mocking.
type NetClientInterface interface {
	Ref() string
	Type() NetClientType
	ProcessRequest(ctx context.Context, cfg *RequestConfig) (Response, error)
}
