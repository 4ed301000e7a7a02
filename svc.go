package gofolio

import (
	"sync"

	"github.com/joy-dx/lockablemap"
	"github.com/sirupsen/logrus"

	"github.com/nethrys/gofolio/client/httpclient"
	"github.com/nethrys/gofolio/config"
	"github.com/nethrys/gofolio/dto"
)

// PortfolioSvc is the typed entry point to the portfolio backend: resource
// services (projects, certificates, timeline, skills, about, contact),
// media uploads, and the authentication lifecycle, all funneled through
// the resilient HTTP client.
//
// Construct one instance per application session with New and pass it by
// reference; the credential is private state of that instance.
type PortfolioSvc struct {
	cfg     *config.Config
	log     *logrus.Entry
	clients map[string]dto.NetClientInterface
	// httpClient is the default registered client, retained directly for
	// credential access.
	httpClient     *httpclient.HTTPClient
	transferState  lockablemap.LockableMap[string, dto.TransferNotification]
	muListeners    sync.Mutex
	listenersByURL map[string][]chan dto.TransferNotification
}

func (s *PortfolioSvc) RegisterClient(ref string, client dto.NetClientInterface) {
	s.clients[ref] = client
}

// TransferListener returns a channel of updates for a particular source URL
// or filename.
func (s *PortfolioSvc) TransferListener(source string) (<-chan dto.TransferNotification, func()) {
	s.muListeners.Lock()
	defer s.muListeners.Unlock()

	ch := make(chan dto.TransferNotification, 10)
	s.listenersByURL[source] = append(s.listenersByURL[source], ch)

	unsub := func() {
		s.muListeners.Lock()
		defer s.muListeners.Unlock()

		chans := s.listenersByURL[source]
		out := chans[:0]
		for _, c := range chans {
			if c != ch {
				out = append(out, c)
			}
		}
		if len(out) == 0 {
			delete(s.listenersByURL, source)
		} else {
			s.listenersByURL[source] = out
		}
		close(ch)
	}

	return ch, unsub
}

// TransferListenerClose closes all channels for a given source manually
func (s *PortfolioSvc) TransferListenerClose(source string) {
	s.muListeners.Lock()
	defer s.muListeners.Unlock()
	if chans, ok := s.listenersByURL[source]; ok {
		for _, c := range chans {
			close(c)
		}
		delete(s.listenersByURL, source)
	}
}
