package parse

import (
	"regexp"
	"strings"
)

// Employer patterns. The continuation words of a multi-word employer must be
// capitalized ("First National Bank"), which stops the capture before
// trailing clauses like "as a software engineer".
var employerPatterns = chain{
	regexp.MustCompile(`(?i:\bwork(?:s|ing)?\s+(?:at|for)\s+)([A-Za-z][A-Za-z0-9&'-]*(?:\s+[A-Z][A-Za-z0-9&'-]*)*)`),
	regexp.MustCompile(`(?i:\bemployed\s+(?:by|at)\s+)([A-Za-z][A-Za-z0-9&'-]*(?:\s+[A-Z][A-Za-z0-9&'-]*)*)`),
	regexp.MustCompile(`(?i:\bemployer\s*(?:is|:)\s*)([A-Za-z][A-Za-z0-9&'-]*(?:\s+[A-Z][A-Za-z0-9&'-]*)*)`),
	regexp.MustCompile(`(?i:\bi'?m\s+an?\s+)[a-z]+(?:\s+[a-z]+)?(?i:\s+at\s+)([A-Za-z][A-Za-z0-9&'-]*(?:\s+[A-Z][A-Za-z0-9&'-]*)*)`),
}

// employerStopwords reject captures that are generic nouns rather than a
// company name. Comparison happens after title-casing.
var employerStopwords = map[string]bool{
	"The": true, "A": true, "An": true, "My": true, "This": true,
	"That": true, "Home": true, "Work": true, "Office": true,
	"Software": true, "Developer": true, "Engineer": true, "Company": true,
}

// ExtractEmployer finds an employer name, title-cased and capped at the
// configured word count. Captures that reduce to a stopword are rejected.
func (p *Parser) ExtractEmployer(text string) (string, bool) {
	span, ok := employerPatterns.find(text)
	if !ok {
		return "", false
	}
	words := strings.Fields(span)
	// A capitalized pronoun starting the next sentence can ride along in
	// the capture ("work at Google I think").
	for len(words) > 0 && words[len(words)-1] == "I" {
		words = words[:len(words)-1]
	}
	if len(words) == 0 {
		return "", false
	}
	if len(words) > p.cfg.EmployerMaxWords {
		words = words[:p.cfg.EmployerMaxWords]
	}
	for i, w := range words {
		words[i] = titleWord(w)
	}
	name := strings.Join(words, " ")
	if name == "" || employerStopwords[name] {
		return "", false
	}
	return name, true
}

// titleWord uppercases the first letter only, preserving interior casing so
// "TechCorp" survives intact.
func titleWord(w string) string {
	if w == "" {
		return w
	}
	return strings.ToUpper(w[:1]) + w[1:]
}
