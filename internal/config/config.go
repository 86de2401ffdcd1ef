// Package config loads searchadmin settings from the environment.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/searchplatform/searchadmin/client"
)

// Prefix is prepended to every environment variable, e.g. SEARCHADMIN_BACKEND_URL.
const Prefix = "SEARCHADMIN"

// Config holds the settings shared by the CLI and the MCP server.
type Config struct {
	BackendURL     string        `envconfig:"BACKEND_URL" default:"http://localhost:8080"`
	BackendTimeout time.Duration `envconfig:"BACKEND_TIMEOUT" default:"10s"`

	// ClusterTimeout of zero leaves cluster requests unbounded.
	ClusterURL     string        `envconfig:"CLUSTER_URL" default:"http://localhost:9200"`
	ClusterTimeout time.Duration `envconfig:"CLUSTER_TIMEOUT" default:"0s"`

	LogLevel string `envconfig:"LOG_LEVEL" default:"info"`
	Debug    bool   `envconfig:"DEBUG" default:"false"`

	// MCP server
	MCPAddr         string        `envconfig:"MCP_ADDR" default:":11550"`
	ShutdownTimeout time.Duration `envconfig:"SHUTDOWN_TIMEOUT" default:"10s"`
}

// Load reads an optional .env file from envFiles (".env" when none are given)
// and then the process environment. Variables already set in the environment
// win over the file.
func Load(envFiles ...string) (*Config, error) {
	if len(envFiles) == 0 {
		envFiles = []string{".env"}
	}
	for _, f := range envFiles {
		if err := godotenv.Load(f); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("load %s: %w", f, err)
		}
	}

	var cfg Config
	if err := envconfig.Process(Prefix, &cfg); err != nil {
		return nil, fmt.Errorf("failed to process environment variables: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	log.Debug().
		Str("backend_url", cfg.BackendURL).
		Dur("backend_timeout", cfg.BackendTimeout).
		Str("cluster_url", cfg.ClusterURL).
		Dur("cluster_timeout", cfg.ClusterTimeout).
		Str("log_level", cfg.LogLevel).
		Bool("debug", cfg.Debug).
		Msg("Configuration loaded")

	return &cfg, nil
}

// Validate checks values envconfig cannot.
func (c *Config) Validate() error {
	if c.BackendTimeout <= 0 {
		return fmt.Errorf("BACKEND_TIMEOUT must be > 0, got %s", c.BackendTimeout)
	}
	if c.ClusterTimeout < 0 {
		return fmt.Errorf("CLUSTER_TIMEOUT must be >= 0, got %s", c.ClusterTimeout)
	}
	if _, err := ParseLevel(c.LogLevel); err != nil {
		return err
	}
	return nil
}

// ClientOptions translates the configuration into SDK options.
func (c *Config) ClientOptions() []client.Option {
	return []client.Option{
		client.WithHTTPTimeout(c.BackendTimeout),
		client.WithClusterURL(c.ClusterURL),
		client.WithClusterTimeout(c.ClusterTimeout),
		client.WithDebugLogging(c.Debug),
	}
}

// NewClient builds an SDK client from the configuration.
func (c *Config) NewClient() (*client.Client, error) {
	return client.New(c.BackendURL, c.ClientOptions()...)
}

// ParseLevel accepts debug, info, warn and error in any case.
func ParseLevel(s string) (zerolog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return zerolog.DebugLevel, nil
	case "info", "":
		return zerolog.InfoLevel, nil
	case "warn", "warning":
		return zerolog.WarnLevel, nil
	case "error":
		return zerolog.ErrorLevel, nil
	default:
		return zerolog.NoLevel, fmt.Errorf("unsupported LOG_LEVEL: %s", s)
	}
}
