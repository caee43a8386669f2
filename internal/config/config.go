// Package config handles TOML configuration loading with environment
// variable substitution.
package config

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
)

// Config is the root configuration structure.
type Config struct {
	Catalog  CatalogConfig  `toml:"catalog"`
	Database DatabaseConfig `toml:"database"`
	Photos   PhotosConfig   `toml:"photos"`
	Log      LogConfig      `toml:"log"`
}

// CatalogConfig points at the remote catalog's read endpoint.
type CatalogConfig struct {
	URL             string `toml:"url"`
	APIKey          string `toml:"api_key"`
	CacheTTLMinutes int    `toml:"cache_ttl_minutes"`
}

type DatabaseConfig struct {
	Path string `toml:"path"`
}

// PhotosConfig bounds the profile photo pipeline.
type PhotosConfig struct {
	Dir          string `toml:"dir"`
	MaxUploadMB  int    `toml:"max_upload_mb"`
	MaxDimension int    `toml:"max_dimension"`
	JPEGQuality  int    `toml:"jpeg_quality"`
}

type LogConfig struct {
	Level string `toml:"level"`
	Path  string `toml:"path"`
}

// Load reads and parses the configuration file.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}

	// Substitute environment variables
	content, missing := substituteEnvVars(string(data))

	var cfg Config
	if _, err := toml.Decode(content, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}

	cfg.applyDefaults()

	cerr := &ConfigError{Path: path, Missing: missing, Errors: cfg.Validate()}
	if cerr.HasErrors() {
		return nil, cerr
	}
	return &cfg, nil
}

func (c *Config) applyDefaults() {
	if c.Catalog.CacheTTLMinutes == 0 {
		c.Catalog.CacheTTLMinutes = 15
	}
	if c.Database.Path == "" {
		c.Database.Path = "./data/motherbox.db"
	}
	if c.Photos.Dir == "" {
		c.Photos.Dir = "./data/photos"
	}
	if c.Photos.MaxUploadMB == 0 {
		c.Photos.MaxUploadMB = 5
	}
	if c.Photos.MaxDimension == 0 {
		c.Photos.MaxDimension = 300
	}
	if c.Photos.JPEGQuality == 0 {
		c.Photos.JPEGQuality = 80
	}
	if c.Log.Level == "" {
		c.Log.Level = "info"
	}
	if c.Log.Path == "" {
		c.Log.Path = "./data/motherbox.log"
	}
}
