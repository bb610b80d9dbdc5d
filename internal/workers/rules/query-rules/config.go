// internal/workers/rules/query-rules/config.go
package queryrules

import "time"

type Config struct {
	Index   string
	Timeout time.Duration
}

func LoadConfig() *Config {
	return &Config{
		Index:   "mortgage-rules",
		Timeout: 5 * time.Second,
	}
}
