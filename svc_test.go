package gofolio

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/nethrys/gofolio/config"
	"github.com/nethrys/gofolio/dto"
)

// ---------- fakes ----------

type fakeNetClient struct {
	ref  string
	typ  dto.NetClientType
	fn   func(ctx context.Context, cfg *dto.RequestConfig) (dto.Response, error)
	call int
	mu   sync.Mutex
}

func (c *fakeNetClient) Ref() string             { return c.ref }
func (c *fakeNetClient) Type() dto.NetClientType { return c.typ }
func (c *fakeNetClient) ProcessRequest(
	ctx context.Context,
	cfg *dto.RequestConfig,
) (dto.Response, error) {
	c.mu.Lock()
	c.call++
	c.mu.Unlock()
	return c.fn(ctx, cfg)
}

type tempErr struct{ msg string }

func (e tempErr) Error() string   { return e.msg }
func (e tempErr) Temporary() bool { return true }

// ---------- helpers ----------

func newTestSvc(t *testing.T) *PortfolioSvc {
	t.Helper()

	cfg := config.DefaultConfig()
	cfg.WithBaseURL("http://backend.test/api")
	return New(&cfg)
}

type noWaitDelay struct{}

func (d noWaitDelay) Wait(taskName string, attempt int) {}

func TestPortfolioSvc_RegisterClient_Golden(t *testing.T) {
	t.Parallel()

	s := newTestSvc(t)
	c := &fakeNetClient{ref: "x", fn: func(ctx context.Context, cfg *dto.RequestConfig) (dto.Response, error) {
		return dto.Response{StatusCode: 200}, nil
	}}

	s.RegisterClient("x", c)

	if _, ok := s.clients["x"]; !ok {
		t.Fatalf("client not registered")
	}
}

func TestPortfolioSvc_TransferListeners_Golden(t *testing.T) {
	t.Parallel()

	s := newTestSvc(t)

	url := "https://example.com/file"
	ch1, _ := s.TransferListener(url)
	ch2, _ := s.TransferListener(url)

	s.publishTransferUpdate(dto.TransferNotification{
		Source:      url,
		Destination: "/tmp/x",
		Status:      dto.IN_PROGRESS,
		Percentage:  50,
	})

	// Both should receive IN_PROGRESS.
	select {
	case n := <-ch1:
		if n.Status != dto.IN_PROGRESS {
			t.Fatalf("ch1 status=%s want %s", n.Status, dto.IN_PROGRESS)
		}
	case <-time.After(500 * time.Millisecond):
		t.Fatalf("timeout waiting for ch1 update")
	}

	select {
	case n := <-ch2:
		if n.Status != dto.IN_PROGRESS {
			t.Fatalf("ch2 status=%s want %s", n.Status, dto.IN_PROGRESS)
		}
	case <-time.After(500 * time.Millisecond):
		t.Fatalf("timeout waiting for ch2 update")
	}

	// Terminal state should be delivered (channel may remain open now).
	s.publishTransferUpdate(dto.TransferNotification{
		Source:      url,
		Destination: "/tmp/x",
		Status:      dto.COMPLETE,
		Percentage:  100,
	})

	select {
	case n := <-ch1:
		if n.Status != dto.COMPLETE {
			t.Fatalf("ch1 status=%s want %s", n.Status, dto.COMPLETE)
		}
	case <-time.After(500 * time.Millisecond):
		t.Fatalf("timeout waiting for ch1 COMPLETE")
	}

	select {
	case n := <-ch2:
		if n.Status != dto.COMPLETE {
			t.Fatalf("ch2 status=%s want %s", n.Status, dto.COMPLETE)
		}
	case <-time.After(500 * time.Millisecond):
		t.Fatalf("timeout waiting for ch2 COMPLETE")
	}
}

func TestPortfolioSvc_State_Golden(t *testing.T) {
	t.Parallel()

	s := newTestSvc(t)
	s.publishTransferUpdate(dto.TransferNotification{
		Source:      "a",
		Destination: "/tmp/a",
		Status:      dto.COMPLETE,
		Percentage:  100,
	})

	state := s.State()
	if state.BaseURL != "http://backend.test/api" {
		t.Fatalf("base url=%q", state.BaseURL)
	}
	if n, ok := state.TransfersStatus["/tmp/a"]; !ok || n.Status != dto.COMPLETE {
		t.Fatalf("transfer snapshot=%v", state.TransfersStatus)
	}
}
