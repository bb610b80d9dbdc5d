package parse

import "regexp"

// AmountField names a field-specific currency pattern set.
type AmountField string

const (
	FieldIncome      AmountField = "income"
	FieldLoan        AmountField = "loan"
	FieldDownPayment AmountField = "down_payment"
	FieldDebts       AmountField = "debts"
	FieldAssets      AmountField = "assets"
)

// Field-specific currency chains. The income chain extracts the raw stated
// amount without period normalization; callers that need a monthly figure use
// NormalizeIncome instead.
var amountPatterns = map[AmountField]chain{
	FieldIncome: {
		regexp.MustCompile(`(?i)\b(?:monthly\s*|annual\s*|yearly\s*)?income\s*(?:is|of|:)?\s*\$?([0-9,]+(?:\.[0-9]+)?)`),
		regexp.MustCompile(`(?i)\bsalary\s*(?:is|of|:)?\s*\$?([0-9,]+(?:\.[0-9]+)?)`),
	},
	FieldLoan: {
		regexp.MustCompile(`(?i)\bloan\s*(?:amount|for)?\s*(?:is|of|:)?\s*\$?([0-9,]+(?:\.[0-9]+)?)`),
		regexp.MustCompile(`(?i)\bborrow\s*(?:ing)?\s*\$?([0-9,]+(?:\.[0-9]+)?)`),
	},
	FieldDownPayment: {
		regexp.MustCompile(`(?i)\bdown\s*payment\s*(?:is|of|:)?\s*\$?([0-9,]+(?:\.[0-9]+)?)`),
		regexp.MustCompile(`(?i)\$([0-9,]+(?:\.[0-9]+)?)\s+down\b`),
	},
	FieldDebts: {
		regexp.MustCompile(`(?i)\b(?:monthly\s*)?debts?\s*(?:is|are|of|:)?\s*\$?([0-9,]+(?:\.[0-9]+)?)`),
		regexp.MustCompile(`(?i)\bowe\s*(?:about|around)?\s*\$?([0-9,]+(?:\.[0-9]+)?)\s*(?:a|per|/)\s*month`),
	},
	FieldAssets: {
		regexp.MustCompile(`(?i)\b(?:liquid\s*)?(?:assets?|savings?)\s*(?:is|are|of|:)?\s*\$?([0-9,]+(?:\.[0-9]+)?)`),
		regexp.MustCompile(`(?i)\bcash\s*(?:on\s*hand|reserves)?\s*(?:is|of|:)?\s*\$?([0-9,]+(?:\.[0-9]+)?)`),
	},
}

// ExtractAmount finds a dollar amount for the given field. Commas and dollar
// signs are tolerated; a match followed by a percent sign is skipped so
// percentages are never mistaken for amounts.
func ExtractAmount(text string, field AmountField) (float64, bool) {
	c, ok := amountPatterns[field]
	if !ok {
		return 0, false
	}
	return c.amount(text)
}
