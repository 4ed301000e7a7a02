package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/viper"
)

// Loader handles configuration loading from file and environment.
type Loader struct {
	v *viper.Viper
}

func NewLoader() *Loader {
	return &Loader{
		v: viper.New(),
	}
}

// Load reads configuration from an optional config file plus GOFOLIO_*
// environment variables, falling back to defaults.
func (l *Loader) Load() (*Config, error) {
	l.setDefaults()
	l.setupConfigPaths()
	l.setupEnvVars()

	if err := l.v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
		// Config file not found is OK, defaults + env vars apply
	}

	cfg := DefaultConfig()
	if err := l.v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	cfg.BaseURL = strings.TrimSuffix(cfg.BaseURL, "/")
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return &cfg, nil
}

func (l *Loader) setDefaults() {
	def := DefaultConfig()
	l.v.SetDefault("base_url", "http://localhost:5000/api")
	l.v.SetDefault("request_timeout", def.RequestTimeout)
	l.v.SetDefault("refresh_buffer", def.RefreshBuffer)
	l.v.SetDefault("user_agent", def.UserAgent)
	l.v.SetDefault("progress_interval", def.ProgressInterval)
}

func (l *Loader) setupConfigPaths() {
	l.v.SetConfigName(".gofolio")
	l.v.SetConfigType("yaml")

	if home, err := os.UserHomeDir(); err == nil {
		l.v.AddConfigPath(home)
	}
	l.v.AddConfigPath(".")
}

func (l *Loader) setupEnvVars() {
	l.v.SetEnvPrefix("GOFOLIO")
	l.v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	l.v.AutomaticEnv()
}
