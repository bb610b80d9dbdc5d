package parse

import "strings"

// IntentResult labels the user's request with a flat confidence.
type IntentResult struct {
	Intent     string
	Confidence float64
}

// intentRules are evaluated in order; the first rule with any matching
// trigger wins. Status checks outrank application keywords so "check my
// application status" classifies as a status check, not a new application.
var intentRules = []struct {
	intent   string
	triggers []string
}{
	{IntentCheckStatus, []string{
		"status", "check my application", "where is my application",
		"track my", "any update", "how is my application",
	}},
	{IntentApplyMortgage, []string{
		"apply", "applying", "start an application", "new mortgage",
		"get a mortgage", "need a mortgage", "want a mortgage",
		"buy a house", "buy a home", "buying a home", "purchase a home",
	}},
	{IntentGetDocuments, []string{
		"document", "paperwork", "what do i need to provide",
		"upload", "w-2", "pay stub", "bank statement",
	}},
	{IntentCheckQualification, []string{
		"qualify", "qualification", "eligible", "eligibility",
		"pre-approval", "preapproval", "pre-approved", "preapproved",
		"pre-qualify", "prequalify", "afford",
	}},
	{IntentLoanPrograms, []string{
		"loan program", "loan option", "fha", "va loan", "usda loan",
		"conventional", "jumbo", "interest rate", "rates",
	}},
	{IntentExtractDocument, []string{
		"extract", "parse this", "read this document", "scan this",
	}},
}

// ClassifyIntent assigns one of the fixed intent labels by keyword scan.
// Inputs that trip no rule fall back to general_inquiry at low confidence.
func ClassifyIntent(text string) IntentResult {
	lower := strings.ToLower(text)
	for _, rule := range intentRules {
		if containsAny(lower, rule.triggers) {
			return IntentResult{Intent: rule.intent, Confidence: ConfidenceMatched}
		}
	}
	return IntentResult{Intent: IntentGeneralInquiry, Confidence: ConfidenceFallback}
}
