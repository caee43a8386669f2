package config

import (
	"fmt"
	"net/url"
)

var validLogLevels = map[string]bool{
	"debug": true, "info": true, "warn": true, "error": true, "": true,
}

// Validate checks the configuration for errors.
// Returns a slice of error messages (empty if valid).
func (c *Config) Validate() []string {
	var errs []string

	if c.Catalog.URL == "" {
		errs = append(errs, "catalog.url: required")
	} else if u, err := url.Parse(c.Catalog.URL); err != nil || u.Scheme == "" || u.Host == "" {
		errs = append(errs, fmt.Sprintf("catalog.url: not a valid URL: %q", c.Catalog.URL))
	}

	if c.Catalog.CacheTTLMinutes < 0 {
		errs = append(errs, fmt.Sprintf("catalog.cache_ttl_minutes: must not be negative, got %d", c.Catalog.CacheTTLMinutes))
	}

	if c.Photos.MaxUploadMB < 1 {
		errs = append(errs, fmt.Sprintf("photos.max_upload_mb: must be at least 1, got %d", c.Photos.MaxUploadMB))
	}
	if c.Photos.MaxDimension < 1 {
		errs = append(errs, fmt.Sprintf("photos.max_dimension: must be at least 1, got %d", c.Photos.MaxDimension))
	}
	if c.Photos.JPEGQuality < 1 || c.Photos.JPEGQuality > 100 {
		errs = append(errs, fmt.Sprintf("photos.jpeg_quality: must be between 1 and 100, got %d", c.Photos.JPEGQuality))
	}

	if !validLogLevels[c.Log.Level] {
		errs = append(errs, fmt.Sprintf("log.level: must be one of debug, info, warn, error; got %q", c.Log.Level))
	}

	return errs
}
