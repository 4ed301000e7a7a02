package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/nethrys/gofolio"
	"github.com/nethrys/gofolio/config"
	"github.com/nethrys/gofolio/dto"
	"github.com/nethrys/gofolio/pkg/log"
)

var (
	flagBaseURL string
	flagToken   string
	flagVerbose bool
)

var rootCmd = &cobra.Command{
	Use:   "gofolio",
	Short: "Manage a portfolio backend from the command line",
	Long: `gofolio is a client for the portfolio backend API. It handles
authenticated sessions (automatic token refresh, rate-limit backoff) and
exposes the content resources: projects, certificates, timeline, skills,
about profiles, contact messages and media uploads.

Configuration is read from .gofolio.yaml in the home or working directory
and from GOFOLIO_* environment variables.`,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagBaseURL, "base-url", "", "backend API base URL (overrides config)")
	rootCmd.PersistentFlags().StringVar(&flagToken, "token", "", "bearer token for an existing session")
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "debug logging")
}

// newService loads configuration, applies flag overrides and returns a
// hydrated service.
func newService(ctx context.Context) (*gofolio.PortfolioSvc, error) {
	level := "info"
	if flagVerbose {
		level = "debug"
	}
	log.InitLog(level)

	cfg, err := config.NewLoader().Load()
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	if flagBaseURL != "" {
		cfg.WithBaseURL(flagBaseURL)
	}

	svc := gofolio.New(cfg)
	if err := svc.Hydrate(ctx); err != nil {
		return nil, err
	}

	token := flagToken
	if token == "" {
		token = os.Getenv("GOFOLIO_TOKEN")
	}
	if token != "" {
		svc.SetToken(dto.BearerToken(token))
	}

	return svc, nil
}
