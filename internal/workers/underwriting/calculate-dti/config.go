// internal/workers/underwriting/calculate-dti/config.go
package calculatedti

import "time"

type Config struct {
	// Limits applied when no program-specific rule is cached.
	DefaultFrontEndLimit float64
	DefaultBackEndLimit  float64
	CachePrefix          string
	CacheTTL             time.Duration
	Timeout              time.Duration
}

func LoadConfig() *Config {
	return &Config{
		DefaultFrontEndLimit: 28.0,
		DefaultBackEndLimit:  43.0,
		CachePrefix:          "mortgage:rules:dti:",
		CacheTTL:             time.Hour,
		Timeout:              10 * time.Second,
	}
}
