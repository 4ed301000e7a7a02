package dto

import (
	"net/http"
	"time"
)

type NetClientType string

const (
	// NET_DEFAULT_CLIENT_REF is the ref of the HTTP client registered by Hydrate.
	NET_DEFAULT_CLIENT_REF = "default"
)

// NetClient carries the descriptive identity of a registered client.
type NetClient struct {
	Name        string        `json:"name" yaml:"name"`
	Ref         string        `json:"ref" yaml:"ref"`
	ClientType  NetClientType `json:"client_type" yaml:"client_type"`
	Description string        `json:"description,omitempty" yaml:"description,omitempty"`
}

type TransferStatus string

const (
	PENDING     TransferStatus = "pending"
	IN_PROGRESS TransferStatus = "in_progress"
	COMPLETE    TransferStatus = "complete"
	ERROR       TransferStatus = "error"
	STOPPED     TransferStatus = "stopped"
)

type TransferNotification struct {
	Source      string         `json:"source" yaml:"source"`
	Destination string         `json:"destination" yaml:"destination"`
	Message     string         `json:"message,omitempty" yaml:"message,omitempty"`
	Status      TransferStatus `json:"status" yaml:"status"`
	// Percentage completion status as a percentage
	Percentage float64 `json:"percentage" yaml:"percentage"`
	// TotalSize length of the content in bytes. -1 when unknown
	TotalSize int64 `json:"total_size,omitempty" yaml:"total_size,omitempty"`
	// Transferred body length in bytes so far
	Transferred int64 `json:"transferred,omitempty" yaml:"transferred,omitempty"`
}

// SvcState is a point-in-time snapshot of the service configuration and
// any in-flight transfers.
type SvcState struct {
	BaseURL          string                          `json:"base_url,omitempty" yaml:"base_url,omitempty"`
	RequestTimeout   time.Duration                   `json:"request_timeout,omitempty" yaml:"request_timeout,omitempty"`
	UserAgent        string                          `json:"user_agent,omitempty" yaml:"user_agent,omitempty"`
	ExtraHeaders     ExtraHeaders                    `json:"extra_headers,omitempty" yaml:"extra_headers,omitempty"`
	ProgressInterval time.Duration                   `json:"progress_interval,omitempty" yaml:"progress_interval,omitempty"`
	TransfersStatus  map[string]TransferNotification `json:"transfers_status,omitempty" yaml:"transfers_status,omitempty"`
}

// DownloadAssetConfig describes a media asset download (e.g. backing up
// uploaded portfolio media to disk).
type DownloadAssetConfig struct {
	URL      string
	Checksum string
	// DestinationFolder is used when OutputFileName is derived from the URL.
	DestinationFolder string
	OutputFileName    string
}

type Response struct {
	StatusCode int
	Headers    http.Header
	// Raw body bytes; Envelope decoding happens in the classifier.
	Body []byte
}

// Header returns the first value of the named response header.
func (r Response) Header(key string) string {
	if r.Headers == nil {
		return ""
	}
	return r.Headers.Get(key)
}
