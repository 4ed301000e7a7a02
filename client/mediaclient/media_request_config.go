package mediaclient

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/service/s3"

	"github.com/nethrys/gofolio/dto"
)

// MediaRequestConfig describes one storage operation on portfolio media.
type MediaRequestConfig struct {
	Operation string // "get", "put", "delete", "list"
	Folder    string
	Filename  string

	// Optional depending on operation
	Body        []byte
	ContentType string
	// Checksum tags puts with the hex SHA-256 of the payload.
	Checksum  string
	ExtraOpts map[string]interface{}
}

func (c *MediaRequestConfig) Ref() dto.NetClientType {
	return NetClientMediaRef
}

// MediaRequest is per-call mutable state.
type MediaRequest struct {
	Operation string
	Folder    string
	Filename  string
	Key       string

	Body        []byte
	ContentType string
	Checksum    string
	ExtraOpts   map[string]any

	// Deterministic prepared AWS inputs (built after middleware)
	PutInput    *s3.PutObjectInput
	GetInput    *s3.GetObjectInput
	DeleteInput *s3.DeleteObjectInput
	ListInput   *s3.ListObjectsV2Input
}

func (c *MediaRequestConfig) NewRequest(ctx context.Context) (any, error) {
	r := &MediaRequest{
		Operation:   c.Operation,
		Folder:      c.Folder,
		Filename:    c.Filename,
		Body:        c.Body,
		ContentType: c.ContentType,
		Checksum:    c.Checksum,
		ExtraOpts:   make(map[string]any, len(c.ExtraOpts)),
	}

	for k, v := range c.ExtraOpts {
		r.ExtraOpts[k] = v
	}

	return r, nil
}
