package mediaclient

import (
	"context"

	"github.com/sirupsen/logrus"

	"github.com/nethrys/gofolio/utils"
)

// StaticMetaMiddleware adds default metadata to each put operation.
func StaticMetaMiddleware(meta map[string]string) Middleware {
	return func(ctx context.Context, r *MediaRequest) error {
		if r.Operation != "put" {
			return nil
		}
		if r.ExtraOpts == nil {
			r.ExtraOpts = map[string]any{}
		}

		mdAny, ok := r.ExtraOpts["metadata"]
		var md map[string]string
		if ok {
			if existing, ok := mdAny.(map[string]string); ok {
				md = existing
			}
		}
		if md == nil {
			md = make(map[string]string)
		}

		for k, v := range meta {
			md[k] = v
		}

		r.ExtraOpts["metadata"] = md
		return nil
	}
}

// ChecksumMiddleware fills the integrity checksum for puts that did not
// set one explicitly.
func ChecksumMiddleware() Middleware {
	return func(ctx context.Context, r *MediaRequest) error {
		if r.Operation != "put" || r.Checksum != "" || len(r.Body) == 0 {
			return nil
		}
		r.Checksum = utils.Sha256SumBytes(r.Body)
		return nil
	}
}

func LoggingMiddleware(entry *logrus.Entry) Middleware {
	return func(ctx context.Context, r *MediaRequest) error {
		entry.WithFields(logrus.Fields{
			"operation": r.Operation,
			"folder":    r.Folder,
			"filename":  r.Filename,
		}).Debug("media request")
		return nil
	}
}
