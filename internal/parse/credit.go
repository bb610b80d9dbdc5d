package parse

import "regexp"

// Credit score patterns. The trailing form ("720 credit score") comes last so
// labeled phrasings win when both appear.
var creditScorePatterns = chain{
	regexp.MustCompile(`(?i)\bcredit\s*(?:score)?\s*(?:is|of|:)?\s*(?:about|around)?\s*(\d{3})\b`),
	regexp.MustCompile(`(?i)\bfico\s*(?:score)?\s*(?:is|of|:)?\s*(\d{3})\b`),
	regexp.MustCompile(`(?i)\bscore\s*(?:is|of|:)?\s*(?:about|around)?\s*(\d{3})\b`),
	regexp.MustCompile(`(?i)\b(\d{3})\s+credit\s+score\b`),
}

// ExtractCreditScore finds a FICO score in [CreditScoreMin, CreditScoreMax].
// A matched value outside the range is discarded and later patterns are still
// tried; if none yields a valid score the field is absent.
func ExtractCreditScore(text string) (int, bool) {
	return creditScorePatterns.intIn(text, CreditScoreMin, CreditScoreMax)
}
