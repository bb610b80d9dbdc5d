package config

import "fmt"

// Config is the main application configuration struct.
type Config struct {
	App           AppConfig               `mapstructure:"app"`
	Camunda       CamundaConfig           `mapstructure:"camunda"`
	Database      DatabaseConfig          `mapstructure:"database"`
	Parser        ParserConfig            `mapstructure:"parser"`
	Rules         RulesConfig             `mapstructure:"rules"`
	Registry      RegistryConfig          `mapstructure:"registry"`
	Workers       map[string]WorkerConfig `mapstructure:"workers"`
	Notifications NotificationConfig      `mapstructure:"notifications"`
	Logging       LoggingConfig           `mapstructure:"logging"`
}

type AppConfig struct {
	Name        string `mapstructure:"name"`
	Version     string `mapstructure:"version"`
	Environment string `mapstructure:"environment"`
}

type CamundaConfig struct {
	BrokerAddress  string `mapstructure:"broker_address"`
	MaxJobsActive  int    `mapstructure:"max_jobs_active"`
	Timeout        int    `mapstructure:"timeout"`         // milliseconds
	RequestTimeout int    `mapstructure:"request_timeout"` // milliseconds
}

type DatabaseConfig struct {
	Postgres      PostgresConfig      `mapstructure:"postgres"`
	Elasticsearch ElasticsearchConfig `mapstructure:"elasticsearch"`
	Redis         RedisConfig         `mapstructure:"redis"`
}

type PostgresConfig struct {
	Host           string `mapstructure:"host"`
	Port           int    `mapstructure:"port"`
	Database       string `mapstructure:"database"`
	User           string `mapstructure:"user"`
	Password       string `mapstructure:"password"`
	MaxConnections int    `mapstructure:"max_connections"`
	MaxIdle        int    `mapstructure:"max_idle"`
	SSLMode        string `mapstructure:"sslmode"`
}

// GetDSN returns the PostgreSQL connection string.
func (p PostgresConfig) GetDSN() string {
	return fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		p.Host, p.Port, p.User, p.Password, p.Database, p.SSLMode,
	)
}

type ElasticsearchConfig struct {
	Addresses  []string `mapstructure:"addresses"`
	Username   string   `mapstructure:"username"`
	Password   string   `mapstructure:"password"`
	SSLEnabled bool     `mapstructure:"ssl_enabled"`
	URL        string   `mapstructure:"url"` // single URL alternative to addresses
}

// GetURL returns the URL field or the first configured address.
func (e ElasticsearchConfig) GetURL() string {
	if e.URL != "" {
		return e.URL
	}
	if len(e.Addresses) > 0 {
		return e.Addresses[0]
	}
	return ""
}

type RedisConfig struct {
	Address  string `mapstructure:"address"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
}

// ParserConfig exposes the parsing heuristics. The defaults reproduce the
// validated production behavior; see internal/parse.DefaultConfig.
type ParserConfig struct {
	AnnualIncomeThreshold float64 `mapstructure:"annual_income_threshold"`
	PropertyValueMin      float64 `mapstructure:"property_value_min"`
	PropertyValueMax      float64 `mapstructure:"property_value_max"`
	DefaultDownPaymentPct float64 `mapstructure:"default_down_payment_pct"`
	DownPaymentPctMin     float64 `mapstructure:"down_payment_pct_min"`
	DownPaymentPctMax     float64 `mapstructure:"down_payment_pct_max"`
	EmployerMaxWords      int     `mapstructure:"employer_max_words"`
	MaxInputLength        int     `mapstructure:"max_input_length"`
}

// RulesConfig holds the rule provider settings.
type RulesConfig struct {
	Index        string `mapstructure:"index"`         // Elasticsearch index holding rule documents
	CacheTTL     int    `mapstructure:"cache_ttl"`     // seconds
	CachePrefix  string `mapstructure:"cache_prefix"`  // Redis key prefix
	QueryTimeout int    `mapstructure:"query_timeout"` // milliseconds
}

// RegistryConfig locates the activity registry file.
type RegistryConfig struct {
	Path string `mapstructure:"path"`
}

// WorkerConfig holds the core settings applicable to every worker.
type WorkerConfig struct {
	Enabled       bool `mapstructure:"enabled"`
	MaxJobsActive int  `mapstructure:"max_jobs_active"`
	Timeout       int  `mapstructure:"timeout"`     // milliseconds
	MaxRetries    int  `mapstructure:"max_retries"` // for error handling
}

// NotificationConfig holds settings for the send-notification worker.
type NotificationConfig struct {
	Email struct {
		Enabled   bool   `mapstructure:"enabled"`
		FromEmail string `mapstructure:"from_email"`
	} `mapstructure:"email"`
	SMS struct {
		Enabled           bool   `mapstructure:"enabled"`
		PriorityThreshold string `mapstructure:"priority_threshold"`
	} `mapstructure:"sms"`
	AWS struct {
		Region string `mapstructure:"region"`
	} `mapstructure:"aws"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
	Output string `mapstructure:"output"`
}
