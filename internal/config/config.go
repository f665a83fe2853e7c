package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config represents the application configuration
type Config struct {
	Database  DatabaseConfig  `yaml:"database"`
	Server    ServerConfig    `yaml:"server"`
	Search    SearchConfig    `yaml:"search"`
	Scheduler SchedulerConfig `yaml:"scheduler"`
	RateLimit RateLimitConfig `yaml:"rate_limit"`
}

// DatabaseConfig contains embedded database settings
type DatabaseConfig struct {
	// Path to the sqlite database file; ":memory:" for an ephemeral store.
	Path string `yaml:"path"`
}

// ServerConfig contains HTTP listener settings
type ServerConfig struct {
	// Addr is the listen address. Loopback by default: the API only
	// serves the app's own screens.
	Addr        string   `yaml:"addr"`
	CORSOrigins []string `yaml:"cors_origins"`
}

// SearchConfig contains the optional Meilisearch settings
type SearchConfig struct {
	Enabled bool   `yaml:"enabled"`
	Host    string `yaml:"host"`
	APIKey  string `yaml:"api_key"`
}

// SchedulerConfig contains the optional nightly reindex settings
type SchedulerConfig struct {
	ReindexEnabled bool `yaml:"reindex_enabled"`
	// ReindexTime is "HH:MM" local time.
	ReindexTime string `yaml:"reindex_time"`
}

// RateLimitConfig guards mutating routes against submission bursts
type RateLimitConfig struct {
	Enabled           bool `yaml:"enabled"`
	RequestsPerMinute int  `yaml:"requests_per_minute"`
	RequestsPerHour   int  `yaml:"requests_per_hour"`
}

// DefaultConfig returns default configuration
func DefaultConfig() *Config {
	return &Config{
		Database: DatabaseConfig{
			Path: "kos.db",
		},
		Server: ServerConfig{
			Addr:        "127.0.0.1:8084",
			CORSOrigins: []string{"http://localhost:8081"},
		},
		Search: SearchConfig{
			Enabled: false,
			Host:    "http://localhost:7700",
		},
		Scheduler: SchedulerConfig{
			ReindexEnabled: false,
			ReindexTime:    "02:00",
		},
		RateLimit: RateLimitConfig{
			Enabled:           false,
			RequestsPerMinute: 60,
			RequestsPerHour:   1800,
		},
	}
}

// LoadConfig loads configuration from a YAML file. A missing file is
// not an error; defaults apply.
func LoadConfig(filepath string) (*Config, error) {
	config := DefaultConfig()

	if _, err := os.Stat(filepath); os.IsNotExist(err) {
		return config, nil
	}

	data, err := os.ReadFile(filepath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	return config, nil
}
