// Shelfmark - Media Catalog Recommendations
// Copyright 2026 Shelfmark Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/shelfmark/shelfmark

package config

import (
	"fmt"
	"time"
)

// Config is the root configuration for the Shelfmark server.
// Values are layered from defaults, an optional YAML file, and
// environment variables, in increasing order of precedence.
type Config struct {
	Server    ServerConfig    `koanf:"server"`
	Database  DatabaseConfig  `koanf:"database"`
	Recommend RecommendConfig `koanf:"recommend"`
	API       APIConfig       `koanf:"api"`
	Logging   LoggingConfig   `koanf:"logging"`
}

// ServerConfig controls the HTTP listener.
type ServerConfig struct {
	Host            string        `koanf:"host"`
	Port            int           `koanf:"port"`
	ReadTimeout     time.Duration `koanf:"read_timeout"`
	WriteTimeout    time.Duration `koanf:"write_timeout"`
	ShutdownTimeout time.Duration `koanf:"shutdown_timeout"`
	Environment     string        `koanf:"environment"`
}

// DatabaseConfig controls the embedded DuckDB store.
type DatabaseConfig struct {
	// Path is the DuckDB database file. ":memory:" keeps the
	// catalog in memory, which is the default for demo setups.
	Path         string `koanf:"path"`
	MaxMemory    string `koanf:"max_memory"`
	Threads      int    `koanf:"threads"`
	SeedDemoData bool   `koanf:"seed_demo_data"`
}

// RecommendConfig tunes the recommendation engine.
type RecommendConfig struct {
	// NeighborhoodSize caps how many of the most similar users
	// contribute to a prediction.
	NeighborhoodSize int `koanf:"neighborhood_size"`
	// DefaultTopN is the result count when the request omits k.
	DefaultTopN int `koanf:"default_top_n"`
	// MaxTopN caps the per-request k parameter.
	MaxTopN int `koanf:"max_top_n"`
	// RelatedTopN is the default result count for also-liked lookups.
	RelatedTopN int `koanf:"related_top_n"`
	// UniverseTTL enables caching of the rating universe between
	// requests. Zero disables caching and every request rebuilds.
	UniverseTTL time.Duration `koanf:"universe_ttl"`
	// MaxUsers bounds how many users are loaded into the universe.
	// Zero means unbounded.
	MaxUsers int `koanf:"max_users"`
}

// APIConfig controls cross-cutting HTTP API behavior.
type APIConfig struct {
	RateLimitRequests int           `koanf:"rate_limit_requests"`
	RateLimitWindow   time.Duration `koanf:"rate_limit_window"`
	CORSOrigins       []string      `koanf:"cors_origins"`
}

// LoggingConfig controls the global zerolog logger.
type LoggingConfig struct {
	Level  string `koanf:"level"`
	Format string `koanf:"format"`
	Caller bool   `koanf:"caller"`
}

// Validate checks the configuration for values that would break the
// server at runtime. It is called by Load after all layers are merged.
func (c *Config) Validate() error {
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("server.port must be between 1 and 65535, got %d", c.Server.Port)
	}
	if c.Database.Path == "" {
		return fmt.Errorf("database.path must not be empty")
	}
	if c.Database.Threads < 0 {
		return fmt.Errorf("database.threads must not be negative, got %d", c.Database.Threads)
	}
	if c.Recommend.NeighborhoodSize < 1 {
		return fmt.Errorf("recommend.neighborhood_size must be at least 1, got %d", c.Recommend.NeighborhoodSize)
	}
	if c.Recommend.DefaultTopN < 1 {
		return fmt.Errorf("recommend.default_top_n must be at least 1, got %d", c.Recommend.DefaultTopN)
	}
	if c.Recommend.MaxTopN < c.Recommend.DefaultTopN {
		return fmt.Errorf("recommend.max_top_n (%d) must be at least recommend.default_top_n (%d)",
			c.Recommend.MaxTopN, c.Recommend.DefaultTopN)
	}
	if c.Recommend.RelatedTopN < 1 {
		return fmt.Errorf("recommend.related_top_n must be at least 1, got %d", c.Recommend.RelatedTopN)
	}
	if c.Recommend.UniverseTTL < 0 {
		return fmt.Errorf("recommend.universe_ttl must not be negative, got %s", c.Recommend.UniverseTTL)
	}
	if c.Recommend.MaxUsers < 0 {
		return fmt.Errorf("recommend.max_users must not be negative, got %d", c.Recommend.MaxUsers)
	}
	if c.API.RateLimitRequests < 1 {
		return fmt.Errorf("api.rate_limit_requests must be at least 1, got %d", c.API.RateLimitRequests)
	}
	if c.API.RateLimitWindow <= 0 {
		return fmt.Errorf("api.rate_limit_window must be positive, got %s", c.API.RateLimitWindow)
	}
	switch c.Logging.Format {
	case "json", "console":
	default:
		return fmt.Errorf("logging.format must be json or console, got %q", c.Logging.Format)
	}
	return nil
}

// Addr returns the listen address for the HTTP server.
func (c *ServerConfig) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// IsProduction reports whether the server runs in production mode.
func (c *ServerConfig) IsProduction() bool {
	return c.Environment == "production"
}
