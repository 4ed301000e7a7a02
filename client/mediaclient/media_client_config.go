package mediaclient

import (
	"context"
	"path"

	"github.com/aws/aws-sdk-go-v2/aws"

	"github.com/nethrys/gofolio/dto"
)

const NetClientMediaRef dto.NetClientType = "net.client.media"

type Middleware func(ctx context.Context, req *MediaRequest) error

// MediaClientConfig defines the static properties for a media client
// instance.
type MediaClientConfig struct {
	Region      string
	Bucket      string
	BaseFolder  string
	Credentials aws.CredentialsProvider
	Middlewares []Middleware
	// Endpoint optionally points at an S3-compatible service.
	Endpoint       string
	ForcePathStyle bool
}

func DefaultMediaClientConfig(region, bucket string) MediaClientConfig {
	return MediaClientConfig{
		Region:      region,
		Bucket:      bucket,
		Middlewares: []Middleware{},
	}
}

func (c *MediaClientConfig) WithMiddleware(m ...Middleware) *MediaClientConfig {
	c.Middlewares = append(c.Middlewares, m...)
	return c
}

func (c *MediaClientConfig) WithBaseFolder(folder string) *MediaClientConfig {
	c.BaseFolder = folder
	return c
}

// objectKey joins the base folder, destination folder, and filename into
// the stored object key.
func (c *MediaClientConfig) objectKey(folder, filename string) string {
	return path.Join(c.BaseFolder, folder, filename)
}
