// internal/models/rule.go
package models

// Rule is a single underwriting rule document from the rules index.
type Rule struct {
	ID             string  `json:"id"`
	Category       string  `json:"category"`
	Name           string  `json:"name"`
	Description    string  `json:"description,omitempty"`
	LoanProgram    string  `json:"loanProgram,omitempty"`
	MinCreditScore int     `json:"minCreditScore,omitempty"`
	MaxFrontEndDTI float64 `json:"maxFrontEndDti,omitempty"`
	MaxBackEndDTI  float64 `json:"maxBackEndDti,omitempty"`
	MaxLoanAmount  float64 `json:"maxLoanAmount,omitempty"`
	MinDownPayment float64 `json:"minDownPayment,omitempty"`
	Active         bool    `json:"active"`
	UpdatedAt      string  `json:"updatedAt,omitempty"`
}

type RuleCategory string

const (
	RuleCategoryDTILimits            RuleCategory = "dti_limits"
	RuleCategoryCreditRequirements   RuleCategory = "credit_requirements"
	RuleCategoryLoanPrograms         RuleCategory = "loan_programs"
	RuleCategoryDownPayment          RuleCategory = "down_payment"
	RuleCategoryPropertyRequirements RuleCategory = "property_requirements"
)

// ValidRuleCategory reports whether the given category is queryable.
func ValidRuleCategory(category string) bool {
	switch RuleCategory(category) {
	case RuleCategoryDTILimits,
		RuleCategoryCreditRequirements,
		RuleCategoryLoanPrograms,
		RuleCategoryDownPayment,
		RuleCategoryPropertyRequirements:
		return true
	}
	return false
}
