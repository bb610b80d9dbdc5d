package parse

import (
	"fmt"
	"regexp"
	"strings"
)

// Contact holds normalized contact fields. Empty string means absent.
type Contact struct {
	Phone       string
	Email       string
	SSN         string
	DateOfBirth string
}

var (
	phonePatterns = chain{
		regexp.MustCompile(`(?i)\bphone\s*(?:number)?\s*(?:is|:)?\s*(\d{3}[-.]\d{3}[-.]\d{4})`),
		regexp.MustCompile(`(\d{3}[-.]\d{3}[-.]\d{4})`),
	}

	emailPatterns = chain{
		regexp.MustCompile(`(?i)\bemail\s*(?:address)?\s*(?:is|:)?\s*([a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,})`),
		regexp.MustCompile(`([a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,})`),
	}

	ssnPatterns = chain{
		regexp.MustCompile(`(?i)\bssn\s*(?:is|:)?\s*(\d{3}-\d{2}-\d{4})`),
		regexp.MustCompile(`(?i)\bsocial\s*security\s*(?:number)?\s*(?:is|:)?\s*(\d{3}-\d{2}-\d{4})`),
	}

	dobPatterns = chain{
		regexp.MustCompile(`(?i)\b(?:birth|dob|born)\s*(?:date|on)?\s*(?:is|:)?\s*(\d{4}-\d{2}-\d{2})`),
		regexp.MustCompile(`(?i)\b(?:birth|dob|born)\s*(?:date|on)?\s*(?:is|:)?\s*(\d{1,2}[/-]\d{1,2}[/-]\d{4})`),
	}
)

// ExtractContact finds phone, email, SSN, and date of birth. Phones are
// normalized to dashed form and dates of birth to ISO 8601.
func ExtractContact(text string) Contact {
	var c Contact
	if v, ok := phonePatterns.find(text); ok {
		c.Phone = strings.ReplaceAll(v, ".", "-")
	}
	if v, ok := emailPatterns.find(text); ok {
		c.Email = v
	}
	if v, ok := ssnPatterns.find(text); ok {
		c.SSN = v
	}
	if v, ok := dobPatterns.find(text); ok {
		c.DateOfBirth = normalizeDOB(v)
	}
	return c
}

var isoDate = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)

// normalizeDOB converts US-style MM/DD/YYYY (or dashed) dates to YYYY-MM-DD.
// Already-ISO dates pass through untouched.
func normalizeDOB(s string) string {
	if isoDate.MatchString(s) {
		return s
	}
	parts := strings.FieldsFunc(s, func(r rune) bool { return r == '/' || r == '-' })
	if len(parts) != 3 || len(parts[2]) != 4 {
		return s
	}
	return fmt.Sprintf("%s-%s-%s", parts[2], pad2(parts[0]), pad2(parts[1]))
}

func pad2(s string) string {
	if len(s) == 1 {
		return "0" + s
	}
	return s
}
