// internal/workers/intake/check-completeness/config.go
package checkcompleteness

import "time"

// No per-worker config needed, struct provided for consistency
type Config struct {
	Timeout time.Duration
}

func LoadConfig() *Config {
	return &Config{
		Timeout: 10 * time.Second,
	}
}
