package gofolio

import (
	"context"
	"errors"
	"fmt"

	"github.com/joy-dx/lockablemap"

	"github.com/nethrys/gofolio/client/httpclient"
	"github.com/nethrys/gofolio/client/mediaclient"
	"github.com/nethrys/gofolio/config"
	"github.com/nethrys/gofolio/dto"
	"github.com/nethrys/gofolio/pkg/log"
)

// New builds a service instance around the given configuration. Call
// Hydrate before use to register the default clients.
func New(cfg *config.Config) *PortfolioSvc {
	return &PortfolioSvc{
		cfg:            cfg,
		log:            log.L.WithField("svc", "gofolio"),
		listenersByURL: make(map[string][]chan dto.TransferNotification),
		transferState:  *lockablemap.NewLockableMap[string, dto.TransferNotification](),
		clients:        make(map[string]dto.NetClientInterface),
	}
}

// Hydrate validates configuration and registers the default HTTP client,
// plus the direct media client when a bucket is configured.
func (s *PortfolioSvc) Hydrate(ctx context.Context) error {
	if s.cfg == nil {
		return errors.New("no config")
	}
	if err := s.cfg.Validate(); err != nil {
		return err
	}

	clientCfg := httpclient.DefaultHTTPClientConfig()
	clientCfg.WithRefreshBuffer(s.cfg.RefreshBuffer).
		WithAuthProvider(&sessionAuthProvider{cfg: s.cfg, log: s.log}).
		WithMiddleware(httpclient.RequestIDMiddleware())

	s.httpClient = httpclient.NewHTTPClient(dto.NET_DEFAULT_CLIENT_REF, s.cfg, &clientCfg)
	s.clients[dto.NET_DEFAULT_CLIENT_REF] = s.httpClient

	if s.cfg.Media.Bucket != "" {
		mediaCfg := mediaclient.DefaultMediaClientConfig(s.cfg.Media.Region, s.cfg.Media.Bucket)
		mediaCfg.WithBaseFolder(s.cfg.Media.BaseFolder).
			WithMiddleware(mediaclient.ChecksumMiddleware())
		mediaCfg.Endpoint = s.cfg.Media.Endpoint
		mediaCfg.ForcePathStyle = s.cfg.Media.ForcePathStyle

		media, err := mediaclient.NewMediaClient(mediaClientRef, &mediaCfg)
		if err != nil {
			return fmt.Errorf("media client: %w", err)
		}
		s.clients[mediaClientRef] = media
	}

	s.log.Debug("portfolio service hydrated")
	return nil
}

const mediaClientRef = "media"
