// Package config loads the application configuration from a YAML file with
// environment variable expansion and applies defaults.
package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

//go:generate go run ../../cmd/schema/main.go schema.json

// DefaultFeedURL is the Kandilli live earthquake feed
const DefaultFeedURL = "https://api.orhanaydogdu.com.tr/deprem/kandilli/live"

// Config holds the application configuration
type Config struct {
	Server struct {
		Listen  string        `yaml:"listen" json:"listen" jsonschema:"default=:8080,description=HTTP server listen address"`
		Timeout time.Duration `yaml:"timeout" json:"timeout" jsonschema:"default=30s,description=HTTP server timeout"`
	} `yaml:"server" json:"server" jsonschema:"description=Server configuration"`

	Database struct {
		DSN             string `yaml:"dsn" json:"dsn" jsonschema:"default=file:quakewatch.db?cache=shared&mode=rwc,description=Database connection string"`
		MaxOpenConns    int    `yaml:"max_open_conns" json:"max_open_conns" jsonschema:"default=10,description=Maximum number of open connections"`
		MaxIdleConns    int    `yaml:"max_idle_conns" json:"max_idle_conns" jsonschema:"default=5,description=Maximum number of idle connections"`
		ConnMaxLifetime int    `yaml:"conn_max_lifetime" json:"conn_max_lifetime" jsonschema:"default=3600,description=Connection maximum lifetime in seconds"`
	} `yaml:"database" json:"database" jsonschema:"description=Database configuration"`

	Feed struct {
		URL      string        `yaml:"url" json:"url" jsonschema:"description=Earthquake feed endpoint"`
		Timeout  time.Duration `yaml:"timeout" json:"timeout" jsonschema:"default=15s,description=Feed request timeout"`
		CacheTTL time.Duration `yaml:"cache_ttl" json:"cache_ttl" jsonschema:"default=3m,description=Feed cache time-to-live"`
	} `yaml:"feed" json:"feed" jsonschema:"description=Upstream feed configuration"`

	Monitor struct {
		Interval time.Duration `yaml:"interval" json:"interval" jsonschema:"default=3m,description=Background check interval"`
	} `yaml:"monitor" json:"monitor" jsonschema:"description=Monitor loop configuration"`

	Telegram struct {
		Token   string        `yaml:"token" json:"token" jsonschema:"required,description=Bot token (can use environment variable)"`
		Timeout time.Duration `yaml:"timeout" json:"timeout" jsonschema:"default=10s,description=Send request timeout"`
	} `yaml:"telegram" json:"telegram" jsonschema:"description=Telegram delivery configuration"`
}

// Load reads configuration from a YAML file
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path) //nolint:gosec // file path comes from CLI flag
	if err != nil {
		return nil, fmt.Errorf("read config file: %w", err)
	}

	// expand environment variables
	expanded := os.ExpandEnv(string(data))

	var cfg Config
	if err := yaml.Unmarshal([]byte(expanded), &cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	// set defaults for server
	if cfg.Server.Listen == "" {
		cfg.Server.Listen = ":8080"
	}
	if cfg.Server.Timeout == 0 {
		cfg.Server.Timeout = 30 * time.Second
	}

	// set defaults for database
	if cfg.Database.DSN == "" {
		cfg.Database.DSN = "file:quakewatch.db?cache=shared&mode=rwc&_txlock=immediate"
	}
	if cfg.Database.MaxOpenConns == 0 {
		cfg.Database.MaxOpenConns = 10
	}
	if cfg.Database.MaxIdleConns == 0 {
		cfg.Database.MaxIdleConns = 5
	}
	if cfg.Database.ConnMaxLifetime == 0 {
		cfg.Database.ConnMaxLifetime = 3600
	}

	// set defaults for feed
	if cfg.Feed.URL == "" {
		cfg.Feed.URL = DefaultFeedURL
	}
	if cfg.Feed.Timeout == 0 {
		cfg.Feed.Timeout = 15 * time.Second
	}
	if cfg.Feed.CacheTTL == 0 {
		cfg.Feed.CacheTTL = 3 * time.Minute
	}

	// the check interval follows the cache TTL unless set explicitly, a
	// shorter interval would only hit the cache anyway
	if cfg.Monitor.Interval == 0 {
		cfg.Monitor.Interval = cfg.Feed.CacheTTL
	}

	if cfg.Telegram.Timeout == 0 {
		cfg.Telegram.Timeout = 10 * time.Second
	}

	if err := validate(&cfg); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}

	return &cfg, nil
}

// validate checks configuration for correctness
func validate(cfg *Config) error {
	if cfg.Telegram.Token == "" {
		return fmt.Errorf("telegram.token is required")
	}
	if cfg.Feed.CacheTTL < time.Second {
		return fmt.Errorf("feed.cache_ttl must be at least 1 second")
	}
	if cfg.Monitor.Interval < time.Second {
		return fmt.Errorf("monitor.interval must be at least 1 second")
	}
	if cfg.Server.Timeout < time.Second {
		return fmt.Errorf("server timeout must be at least 1 second")
	}
	return nil
}
