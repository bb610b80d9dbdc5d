// Package parse turns free-text mortgage conversation snippets into
// structured application fields.
//
// Every extractor is a pure function over the input text: it either finds a
// field or reports absence, and it never returns an error. Pattern lists are
// evaluated in declared order with first-match-wins semantics, so explicit
// phrasing ("Name: John Smith") always beats casual phrasing ("hey im mike").
// All functions are safe for concurrent use.
package parse

const (
	// CreditScoreMin and CreditScoreMax bound the accepted FICO range.
	// Matched values outside the range are discarded, never clamped.
	CreditScoreMin = 300
	CreditScoreMax = 850

	// YearBuiltMin and YearBuiltMax bound plausible construction years.
	YearBuiltMin = 1800
	YearBuiltMax = 2030

	// casualThousandsCutoff: a bare numeral below this with a trailing "k"
	// ("make 5k per month") is expanded by a factor of 1000.
	casualThousandsCutoff = 100

	// monthsPerYear converts annual amounts to monthly ones.
	monthsPerYear = 12
)

// Config carries the heuristic constants that are business assumptions rather
// than pattern syntax. The defaults reproduce the validated production
// behavior; they are configurable so deployments in other markets can adjust
// them without a code change.
type Config struct {
	// AnnualIncomeThreshold disambiguates unmarked income amounts: anything
	// above it is assumed to be an annual figure and divided by 12.
	AnnualIncomeThreshold float64

	// PropertyValueMin and PropertyValueMax bound accepted property values.
	PropertyValueMin float64
	PropertyValueMax float64

	// DefaultDownPaymentPct is assumed when a property value is known but no
	// down payment was stated (0.20 = the standard 80% LTV assumption).
	DefaultDownPaymentPct float64

	// DownPaymentPctMin and DownPaymentPctMax bound stated down payment
	// percentages, as fractions.
	DownPaymentPctMin float64
	DownPaymentPctMax float64

	// EmployerMaxWords caps the employer name length.
	EmployerMaxWords int

	// MaxInputLength truncates pathological inputs before any pattern runs.
	// Zero falls back to the default cap; the cap is always in effect.
	MaxInputLength int
}

// DefaultConfig returns the documented production defaults.
func DefaultConfig() Config {
	return Config{
		AnnualIncomeThreshold: 15000,
		PropertyValueMin:      50000,
		PropertyValueMax:      5000000,
		DefaultDownPaymentPct: 0.20,
		DownPaymentPctMin:     0.03,
		DownPaymentPctMax:     0.50,
		EmployerMaxWords:      4,
		MaxInputLength:        16384,
	}
}

// Parser evaluates the full extraction pipeline with a fixed Config.
type Parser struct {
	cfg Config
}

// New creates a Parser. Zero-valued config fields fall back to the defaults,
// so callers can override a single threshold without restating the rest.
func New(cfg Config) *Parser {
	def := DefaultConfig()
	if cfg.AnnualIncomeThreshold == 0 {
		cfg.AnnualIncomeThreshold = def.AnnualIncomeThreshold
	}
	if cfg.PropertyValueMin == 0 {
		cfg.PropertyValueMin = def.PropertyValueMin
	}
	if cfg.PropertyValueMax == 0 {
		cfg.PropertyValueMax = def.PropertyValueMax
	}
	if cfg.DefaultDownPaymentPct == 0 {
		cfg.DefaultDownPaymentPct = def.DefaultDownPaymentPct
	}
	if cfg.DownPaymentPctMin == 0 {
		cfg.DownPaymentPctMin = def.DownPaymentPctMin
	}
	if cfg.DownPaymentPctMax == 0 {
		cfg.DownPaymentPctMax = def.DownPaymentPctMax
	}
	if cfg.EmployerMaxWords == 0 {
		cfg.EmployerMaxWords = def.EmployerMaxWords
	}
	if cfg.MaxInputLength == 0 {
		cfg.MaxInputLength = def.MaxInputLength
	}
	return &Parser{cfg: cfg}
}

// NewDefault creates a Parser with DefaultConfig.
func NewDefault() *Parser {
	return New(DefaultConfig())
}

var defaultParser = NewDefault()

// Parse runs the full pipeline with the default configuration.
func Parse(text string) *Record {
	return defaultParser.Parse(text)
}

// NormalizeIncome runs the income normalizer with the default configuration.
func NormalizeIncome(text string) (float64, bool) {
	return defaultParser.NormalizeIncome(text)
}

// ResolveFinancing runs the monetary resolver with the default configuration.
func ResolveFinancing(text string) Financing {
	return defaultParser.ResolveFinancing(text)
}

// ExtractEmployer runs the employer extractor with the default configuration.
func ExtractEmployer(text string) (string, bool) {
	return defaultParser.ExtractEmployer(text)
}
