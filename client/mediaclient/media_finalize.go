package mediaclient

import (
	"bytes"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

// Finalize builds the deterministic AWS SDK input struct for the
// operation. Call this exactly once after middleware has run and before
// executing.
func (r *MediaRequest) Finalize(cfg *MediaClientConfig) error {
	// Clear any previous prepared state (in case caller reuses r incorrectly)
	r.PutInput = nil
	r.GetInput = nil
	r.DeleteInput = nil
	r.ListInput = nil

	r.Key = cfg.objectKey(r.Folder, r.Filename)

	switch r.Operation {
	case "get":
		r.GetInput = &s3.GetObjectInput{
			Bucket: aws.String(cfg.Bucket),
			Key:    aws.String(r.Key),
		}
		return nil

	case "put":
		in := &s3.PutObjectInput{
			Bucket: aws.String(cfg.Bucket),
			Key:    aws.String(r.Key),
			Body:   bytes.NewReader(r.Body),
		}
		if r.ContentType != "" {
			in.ContentType = aws.String(r.ContentType)
		}

		md, _ := extractStringMap(r.ExtraOpts, "metadata")
		if md == nil {
			md = map[string]string{}
		}
		if r.Checksum != "" {
			md["sha256"] = r.Checksum
		}
		if len(md) > 0 {
			in.Metadata = md
		}

		// Convention: ExtraOpts["cache_control"] string
		if v, ok := r.ExtraOpts["cache_control"].(string); ok && v != "" {
			in.CacheControl = aws.String(v)
		}

		r.PutInput = in
		return nil

	case "delete":
		r.DeleteInput = &s3.DeleteObjectInput{
			Bucket: aws.String(cfg.Bucket),
			Key:    aws.String(r.Key),
		}
		return nil

	case "list":
		r.ListInput = &s3.ListObjectsV2Input{
			Bucket: aws.String(cfg.Bucket),
		}
		if prefix := cfg.objectKey(r.Folder, ""); prefix != "" {
			r.ListInput.Prefix = aws.String(prefix)
		}
		return nil

	default:
		return fmt.Errorf("unsupported media operation: %s", r.Operation)
	}
}

// extractStringMap reads extra[key] as either map[string]string or
// map[string]any with string values, returning a copy.
func extractStringMap(extra map[string]any, key string) (map[string]string, bool) {
	raw, ok := extra[key]
	if !ok || raw == nil {
		return nil, false
	}

	switch v := raw.(type) {
	case map[string]string:
		out := make(map[string]string, len(v))
		for k, s := range v {
			out[k] = s
		}
		return out, true

	case map[string]any:
		out := make(map[string]string, len(v))
		for k, val := range v {
			s, ok := val.(string)
			if !ok {
				continue
			}
			out[k] = s
		}
		return out, true

	default:
		return nil, false
	}
}
