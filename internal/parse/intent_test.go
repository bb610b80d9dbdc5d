package parse

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassifyIntent(t *testing.T) {
	tests := []struct {
		name       string
		input      string
		intent     string
		confidence float64
	}{
		{name: "status check", input: "What's the status of my application?", intent: IntentCheckStatus, confidence: ConfidenceMatched},
		{name: "status outranks application keywords", input: "check my application status please", intent: IntentCheckStatus, confidence: ConfidenceMatched},
		{name: "new application", input: "I want to apply for a mortgage", intent: IntentApplyMortgage, confidence: ConfidenceMatched},
		{name: "documents", input: "What documents do I need?", intent: IntentGetDocuments, confidence: ConfidenceMatched},
		{name: "qualification", input: "Do I qualify for a loan?", intent: IntentCheckQualification, confidence: ConfidenceMatched},
		{name: "programs", input: "Tell me about FHA loans", intent: IntentLoanPrograms, confidence: ConfidenceMatched},
		{name: "document extraction", input: "Can you extract the fields from this?", intent: IntentExtractDocument, confidence: ConfidenceMatched},
		{name: "fallback", input: "Hello there", intent: IntentGeneralInquiry, confidence: ConfidenceFallback},
		{name: "empty input falls back", input: "", intent: IntentGeneralInquiry, confidence: ConfidenceFallback},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ClassifyIntent(tt.input)
			assert.Equal(t, tt.intent, got.Intent)
			assert.InDelta(t, tt.confidence, got.Confidence, 0.0001)
		})
	}
}

func TestDetectLoanPurposeBasic(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
		found bool
	}{
		{name: "purchase", input: "we are buying our first home", want: LoanPurposePurchase, found: true},
		{name: "refinance", input: "I want to refinance my current loan", want: LoanPurposeRefinance, found: true},
		{name: "refi shorthand", input: "thinking about a refi", want: LoanPurposeRefinance, found: true},
		{name: "no purpose", input: "what are your hours?", found: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := DetectLoanPurpose(tt.input)
			assert.Equal(t, tt.found, ok)
			if tt.found {
				assert.Equal(t, tt.want, got)
			}
		})
	}
}
