package parse

import "regexp"

// Financing is the monetary resolver's output. When AssumedDefault is set the
// loan figures came from the default LTV assumption rather than a stated down
// payment, and callers should prefer any explicitly extracted values.
type Financing struct {
	PropertyValue      *float64
	DownPaymentPercent *float64
	DownPayment        *float64
	LoanAmount         *float64
	AssumedDefault     bool
}

var (
	// Thousands-shorthand property values ("300k house"). The captured
	// numeral is multiplied by 1000 before the range check.
	propertyValueKPatterns = chain{
		regexp.MustCompile(`(?i)\$?(\d+(?:\.\d+)?)k\s+(?:house|home|property|condo|townhouse)\b`),
		regexp.MustCompile(`(?i)\b(?:house|home|property|condo)\b[^0-9$\n]{0,24}\$?(\d+(?:\.\d+)?)k\b`),
	}

	// Full-figure property values. The bare "$N" catch-all sits last so any
	// labeled phrasing wins first.
	propertyValuePatterns = chain{
		regexp.MustCompile(`(?i)\b(?:value|worth|price|valued\s+at|priced\s+at)\s*(?:is|of|:)?\s*\$?([0-9,]+(?:\.[0-9]+)?)`),
		regexp.MustCompile(`(?i)\$?([0-9][0-9,]{4,})\s*(?:house|home|property|condo|townhouse)\b`),
		regexp.MustCompile(`(?i)\b(?:house|home|property|condo)\s+(?:for|at|around|about|worth)\s+\$?([0-9,]+(?:\.[0-9]+)?)`),
		regexp.MustCompile(`\$([0-9,]+(?:\.[0-9]+)?)\b`),
	}

	downPaymentPctPatterns = chain{
		regexp.MustCompile(`(?i)\b(\d+(?:\.\d+)?)\s*%\s*down\b`),
		regexp.MustCompile(`(?i)\bdown\s*payment\s*(?:of|:)?\s*(\d+(?:\.\d+)?)\s*%`),
		regexp.MustCompile(`(?i)\bput(?:ting)?\s*(?:down\s*)?(\d+(?:\.\d+)?)\s*%`),
	}
)

// ResolveFinancing finds a property value and stated down payment percentage,
// then derives the dependent figures so property value, loan amount, and down
// payment always agree.
//
// With a value and a stated percentage, loan = value x (1 - pct) and down
// payment = value x pct. With only a value, the default down payment
// assumption fills in all three figures and AssumedDefault is set. Without a
// value nothing is derived.
func (p *Parser) ResolveFinancing(text string) Financing {
	var f Financing
	if v, ok := p.propertyValue(text); ok {
		f.PropertyValue = f64p(v)
	}
	if pct, ok := statedPercent(text, p.cfg.DownPaymentPctMin*100, p.cfg.DownPaymentPctMax*100); ok {
		f.DownPaymentPercent = f64p(pct / 100)
	}

	if f.PropertyValue == nil {
		return f
	}
	pct := p.cfg.DefaultDownPaymentPct
	if f.DownPaymentPercent != nil {
		pct = *f.DownPaymentPercent
	} else {
		f.AssumedDefault = true
		f.DownPaymentPercent = f64p(pct)
	}
	f.DownPayment = f64p(*f.PropertyValue * pct)
	f.LoanAmount = f64p(*f.PropertyValue * (1 - pct))
	return f
}

// statedPercent finds a down payment percentage within [lo, hi] percent.
// Implausible percentages fall through to later patterns.
func statedPercent(text string, lo, hi float64) (float64, bool) {
	for _, re := range downPaymentPctPatterns {
		m := re.FindStringSubmatch(text)
		if m == nil {
			continue
		}
		if v, ok := parseAmount(m[1]); ok && v >= lo && v <= hi {
			return v, true
		}
	}
	return 0, false
}

// propertyValue tries the shorthand chain first, then the full-figure chain.
// Values outside the configured band are discarded and the scan continues.
func (p *Parser) propertyValue(text string) (float64, bool) {
	for _, re := range propertyValueKPatterns {
		m := re.FindStringSubmatch(text)
		if m == nil {
			continue
		}
		v, ok := parseAmount(m[1])
		if !ok {
			continue
		}
		v *= 1000
		if v >= p.cfg.PropertyValueMin && v <= p.cfg.PropertyValueMax {
			return v, true
		}
	}
	return propertyValuePatterns.amountIn(text, p.cfg.PropertyValueMin, p.cfg.PropertyValueMax)
}
