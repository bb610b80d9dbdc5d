// internal/workers/intake/receive-application/config.go
package receiveapplication

import "time"

type Config struct {
	// Assumed loan-to-value ratio when the applicant stated a loan
	// amount but no property value.
	DefaultLTV float64
	Timeout    time.Duration
}

func LoadConfig() *Config {
	return &Config{
		DefaultLTV: 0.80,
		Timeout:    15 * time.Second,
	}
}
