package config

import (
	"errors"
	"strings"
	"time"

	"github.com/nethrys/gofolio/dto"
)

// MediaConfig selects the direct object-storage backend for portfolio
// media. When Bucket is empty, media bytes are routed through the backend
// /upload endpoints instead.
type MediaConfig struct {
	Region         string `json:"region" yaml:"region" mapstructure:"region"`
	Bucket         string `json:"bucket" yaml:"bucket" mapstructure:"bucket"`
	BaseFolder     string `json:"base_folder" yaml:"base_folder" mapstructure:"base_folder"`
	Endpoint       string `json:"endpoint,omitempty" yaml:"endpoint,omitempty" mapstructure:"endpoint"`
	ForcePathStyle bool   `json:"force_path_style,omitempty" yaml:"force_path_style,omitempty" mapstructure:"force_path_style"`
	// DeliveryBase is the public CDN root used to compose asset URLs.
	DeliveryBase string `json:"delivery_base,omitempty" yaml:"delivery_base,omitempty" mapstructure:"delivery_base"`
}

// Config holds the static settings of one service instance.
type Config struct {
	BaseURL          string           `json:"base_url" yaml:"base_url" mapstructure:"base_url"`
	RequestTimeout   time.Duration    `json:"request_timeout" yaml:"request_timeout" mapstructure:"request_timeout"`
	RefreshBuffer    time.Duration    `json:"refresh_buffer" yaml:"refresh_buffer" mapstructure:"refresh_buffer"`
	UserAgent        string           `json:"user_agent,omitempty" yaml:"user_agent,omitempty" mapstructure:"user_agent"`
	ExtraHeaders     dto.ExtraHeaders `json:"extra_headers,omitempty" yaml:"extra_headers,omitempty" mapstructure:"extra_headers"`
	ProgressInterval time.Duration    `json:"progress_interval,omitempty" yaml:"progress_interval,omitempty" mapstructure:"progress_interval"`
	Media            MediaConfig      `json:"media,omitempty" yaml:"media,omitempty" mapstructure:"media"`
}

func DefaultConfig() Config {
	return Config{
		RequestTimeout:   20 * time.Second,
		RefreshBuffer:    30 * time.Second,
		UserAgent:        "gofolio",
		ExtraHeaders:     dto.ExtraHeaders{},
		ProgressInterval: 2 * time.Second,
	}
}

func (c *Config) WithBaseURL(u string) *Config {
	c.BaseURL = strings.TrimSuffix(u, "/")
	return c
}

func (c *Config) WithRequestTimeout(d time.Duration) *Config {
	c.RequestTimeout = d
	return c
}

func (c *Config) WithRefreshBuffer(d time.Duration) *Config {
	c.RefreshBuffer = d
	return c
}

func (c *Config) WithUserAgent(ua string) *Config {
	c.UserAgent = ua
	return c
}

func (c *Config) WithExtraHeaders(h dto.ExtraHeaders) *Config {
	c.ExtraHeaders = h
	return c
}

func (c *Config) WithMedia(m MediaConfig) *Config {
	c.Media = m
	return c
}

// Validate catches the settings a running instance cannot function without.
func (c *Config) Validate() error {
	if c.BaseURL == "" {
		return errors.New("base_url is required")
	}
	if c.RequestTimeout <= 0 {
		return errors.New("request_timeout must be positive")
	}
	return nil
}

// ResolveURL joins a request path to the base URL. Absolute URLs are used
// verbatim.
func (c *Config) ResolveURL(path string) string {
	if strings.HasPrefix(path, "http://") || strings.HasPrefix(path, "https://") {
		return path
	}
	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}
	return strings.TrimSuffix(c.BaseURL, "/") + path
}
