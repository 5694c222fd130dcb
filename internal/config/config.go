package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds runtime configuration for the storefront gateway. Values come
// from an optional YAML file overridden by STOREFRONT_* environment
// variables (dots replaced with underscores, e.g. STOREFRONT_BACKEND_URL).
type Config struct {
	Server  ServerConfig  `mapstructure:"server"`
	Session SessionConfig `mapstructure:"session"`
	Backend BackendConfig `mapstructure:"backend"`
	CORS    CORSConfig    `mapstructure:"cors"`
}

type ServerConfig struct {
	Addr string `mapstructure:"addr"`
	// Origin is the public URL this storefront is served from. It feeds the
	// backend locator's port-swap fallback for same-machine development.
	Origin                 string `mapstructure:"origin"`
	ShutdownTimeoutSeconds int    `mapstructure:"shutdown_timeout_seconds"`
}

type SessionConfig struct {
	TTLMinutes int `mapstructure:"ttl_minutes"`
}

type BackendConfig struct {
	// URL is the explicitly configured ordering service base, the highest
	// precedence locator source.
	URL string `mapstructure:"url"`
	// Override is the deploy-time injected base, consulted after URL.
	Override              string `mapstructure:"override"`
	SubmitTimeoutSeconds  int    `mapstructure:"submit_timeout_seconds"`
	RequestTimeoutSeconds int    `mapstructure:"request_timeout_seconds"`
}

type CORSConfig struct {
	AllowOrigins []string `mapstructure:"allow_origins"`
}

// Load reads configuration from path (optional, "" skips the file) and the
// environment, applying defaults for everything unset.
func Load(path string) (*Config, error) {
	v := viper.New()

	v.SetDefault("server.addr", ":3000")
	v.SetDefault("server.origin", "http://localhost:3000")
	v.SetDefault("server.shutdown_timeout_seconds", 10)
	v.SetDefault("session.ttl_minutes", 60)
	v.SetDefault("backend.url", "")
	v.SetDefault("backend.override", "")
	v.SetDefault("backend.submit_timeout_seconds", 12)
	v.SetDefault("backend.request_timeout_seconds", 30)
	v.SetDefault("cors.allow_origins", []string{})

	v.SetEnvPrefix("STOREFRONT")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		v.SetConfigType("yaml")
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}
	return &cfg, nil
}

func (c *Config) ShutdownTimeout() time.Duration {
	return time.Duration(c.Server.ShutdownTimeoutSeconds) * time.Second
}

func (c *Config) SessionTTL() time.Duration {
	return time.Duration(c.Session.TTLMinutes) * time.Minute
}

// SubmitTimeout bounds a single order submission, measured from request
// start.
func (c *Config) SubmitTimeout() time.Duration {
	return time.Duration(c.Backend.SubmitTimeoutSeconds) * time.Second
}

// RequestTimeout is the overall ceiling on any call to the ordering service.
func (c *Config) RequestTimeout() time.Duration {
	return time.Duration(c.Backend.RequestTimeoutSeconds) * time.Second
}
