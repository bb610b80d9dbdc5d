package parse

import "regexp"

// Income patterns are tiered: explicit annual markers, then explicit monthly
// markers, then unmarked amounts. Only the unmarked tier consults the
// AnnualIncomeThreshold heuristic.
var (
	annualIncomePatterns = chain{
		regexp.MustCompile(`(?i)\b(?:annual|yearly)\s*income\s*(?:is|of|:)?\s*\$?([0-9,]+(?:\.[0-9]+)?)`),
		regexp.MustCompile(`(?i)\bsalary\s*(?:is|of|:)?\s*\$?([0-9,]+(?:\.[0-9]+)?)\s*(?:per\s+year|/\s*year|a\s+year|annually)`),
		regexp.MustCompile(`(?i)\$?([0-9,]+(?:\.[0-9]+)?)\s*(?:per\s+year|/\s*year|a\s+year|annually)`),
	}

	monthlyIncomeExplicit = regexp.MustCompile(`(?i)\bmonthly\s*income\s*(?:is|of|:)?\s*\$?([0-9,]+(?:\.[0-9]+)?)`)
	monthlyIncomePerMonth = regexp.MustCompile(`(?i)\$?([0-9,]+(?:\.[0-9]+)?)(k?)\s*(?:per\s+|a\s+|/\s*)month\b`)
	monthlyIncomeCasual   = regexp.MustCompile(`(?i)\bmake(?:s|ing)?\s*(?:about|around|roughly)?\s*\$?([0-9]+(?:\.[0-9]+)?)(k?)\s*(?:per\s+|a\s+|/\s*)month\b`)

	unmarkedIncomePatterns = chain{
		regexp.MustCompile(`(?i)\bincome\s*(?:is|of|:)?\s*\$?([0-9,]+(?:\.[0-9]+)?)`),
		regexp.MustCompile(`(?i)\bearn(?:s|ing)?\s*(?:about|around)?\s*\$?([0-9,]+(?:\.[0-9]+)?)`),
	}
)

// NormalizeIncome finds a stated income and returns it as a monthly amount.
//
// Explicit annual markers divide by 12. Explicit monthly markers are taken
// as-is, with casual thousands shorthand ("5k per month") expanded when the
// numeral is small. Unmarked amounts above AnnualIncomeThreshold are assumed
// annual and divided by 12; at or below, they are taken as already monthly.
func (p *Parser) NormalizeIncome(text string) (float64, bool) {
	if v, ok := annualIncomePatterns.amount(text); ok {
		return v / monthsPerYear, true
	}
	if v, ok := monthlyIncome(text); ok {
		return v, true
	}
	if v, ok := unmarkedIncomePatterns.amount(text); ok {
		if v > p.cfg.AnnualIncomeThreshold {
			return v / monthsPerYear, true
		}
		return v, true
	}
	return 0, false
}

func monthlyIncome(text string) (float64, bool) {
	if m := monthlyIncomeExplicit.FindStringSubmatch(text); m != nil {
		if v, ok := parseAmount(m[1]); ok {
			return v, true
		}
	}
	for _, re := range []*regexp.Regexp{monthlyIncomePerMonth, monthlyIncomeCasual} {
		m := re.FindStringSubmatch(text)
		if m == nil {
			continue
		}
		v, ok := parseAmount(m[1])
		if !ok {
			continue
		}
		if m[2] != "" && v < casualThousandsCutoff {
			v *= 1000
		}
		return v, true
	}
	return 0, false
}
