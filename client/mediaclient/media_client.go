package mediaclient

import (
	"context"
	"fmt"
	"sync"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"

	"github.com/nethrys/gofolio/dto"
)

// s3API abstracts the s3 client for easier testing
type s3API interface {
	GetObject(ctx context.Context, params *s3.GetObjectInput, optFns ...func(*s3.Options)) (*s3.GetObjectOutput, error)
	PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
	DeleteObject(ctx context.Context, params *s3.DeleteObjectInput, optFns ...func(*s3.Options)) (*s3.DeleteObjectOutput, error)
	ListObjectsV2(ctx context.Context, params *s3.ListObjectsV2Input, optFns ...func(*s3.Options)) (*s3.ListObjectsV2Output, error)
}

// MediaClient stores portfolio media directly in S3-compatible object
// storage, bypassing the backend /upload endpoints. Objects are keyed as
// <folder>/<filename> under the configured base folder.
type MediaClient struct {
	NetClient dto.NetClient
	cfg       *MediaClientConfig
	client    s3API
	mu        sync.RWMutex
}

func NewMediaClient(ref string, cfg *MediaClientConfig) (*MediaClient, error) {
	awsCfg, err := awsconfig.LoadDefaultConfig(context.Background(),
		awsconfig.WithRegion(cfg.Region),
		awsconfig.WithCredentialsProvider(cfg.Credentials),
	)
	if err != nil {
		return nil, fmt.Errorf("load aws config: %w", err)
	}

	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		o.UsePathStyle = cfg.ForcePathStyle
		if cfg.Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.Endpoint)
		}
	})

	return &MediaClient{
		cfg:    cfg,
		client: client,
		NetClient: dto.NetClient{
			Name:        "Media Client",
			Ref:         ref,
			ClientType:  NetClientMediaRef,
			Description: "Stores and retrieves portfolio media in object storage",
		},
	}, nil
}

func (c *MediaClient) Ref() string {
	return c.NetClient.Ref
}

func (c *MediaClient) Type() dto.NetClientType {
	return NetClientMediaRef
}
