// internal/workers/intake/parse-application/config.go
package parseapplication

import (
	"time"

	"mortgage-workers/internal/parse"
)

type Config struct {
	Parser  parse.Config
	Timeout time.Duration
}

func LoadConfig() *Config {
	return &Config{
		Parser:  parse.DefaultConfig(),
		Timeout: 10 * time.Second,
	}
}
