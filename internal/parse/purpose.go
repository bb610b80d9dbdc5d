package parse

import "strings"

var (
	purchaseTriggers  = []string{"buy a", "buying", "new home"}
	refinanceTriggers = []string{"refinance", "refinancing", "refi", "lower rate", "better rate"}

	// propertyWords gate the bare "purchase" trigger, which is too common
	// outside mortgage talk ("purchase order") to stand on its own.
	propertyWords = []string{"home", "house", "property"}
)

// DetectLoanPurpose looks for a purchase or refinance phrase. Purchase
// phrases are checked first.
func DetectLoanPurpose(text string) (string, bool) {
	lower := strings.ToLower(text)
	if containsAny(lower, purchaseTriggers) ||
		(strings.Contains(lower, "purchase") && containsAny(lower, propertyWords)) {
		return LoanPurposePurchase, true
	}
	if containsAny(lower, refinanceTriggers) {
		return LoanPurposeRefinance, true
	}
	return "", false
}
