package parse

import (
	"regexp"
	"strings"
)

// StructuredFields are values pulled from "key: value" style fragments plus
// boolean program triggers. Empty strings and nil pointers mean absent;
// booleans are only meaningful when true, since absence of a trigger phrase
// proves nothing.
type StructuredFields struct {
	ApplicationID   string
	LoanAmount      *float64
	EmploymentType  string
	PropertyAddress string
	OccupancyType   string
	PropertyType    string
	Status          string

	CoBorrower      bool
	FirstTimeBuyer  bool
	MilitaryService bool
	RuralProperty   bool
}

var (
	structuredApplication = regexp.MustCompile(`(?i)\bapplication\s*:\s*([^\s,]+)`)
	structuredLoan        = regexp.MustCompile(`(?i)\bloan\s*:\s*\$?([0-9,]+(?:\.[0-9]+)?)`)
	structuredEmployment  = regexp.MustCompile(`(?i)\bemployment\s*:\s*([a-zA-Z_-]+)`)
	structuredProperty    = regexp.MustCompile(`(?i)\bproperty\s*:\s*([^,\n]+)`)
	structuredOccupancy   = regexp.MustCompile(`(?i)\boccupancy\s*:\s*([a-zA-Z_-]+(?:\s+[a-zA-Z_-]+)?)`)
	structuredType        = regexp.MustCompile(`(?i)\btype\s*:\s*([a-zA-Z_-]+(?:\s+[a-zA-Z_-]+)?)`)
	structuredStatus      = regexp.MustCompile(`(?i)\bstatus\s*:\s*([a-zA-Z_-]+)`)
)

// Boolean trigger phrases, matched as case-insensitive substrings.
var (
	coBorrowerTriggers     = []string{"co-borrower", "co borrower", "coborrower"}
	firstTimeBuyerTriggers = []string{"first time", "first-time"}
	militaryTriggers       = []string{"military", "veteran", "va loan"}
	ruralTriggers          = []string{"rural", "usda"}
)

// ExtractStructured reads explicit "key: value" fragments and scans for
// program trigger phrases. Employment type additionally falls back to phrase
// detection ("self employed", "contract") when no label is present.
func ExtractStructured(text string) StructuredFields {
	var s StructuredFields
	lower := strings.ToLower(text)

	if m := structuredApplication.FindStringSubmatch(text); m != nil {
		s.ApplicationID = strings.ToUpper(m[1])
	}
	if m := structuredLoan.FindStringSubmatch(text); m != nil {
		if v, ok := parseAmount(m[1]); ok {
			s.LoanAmount = f64p(v)
		}
	}
	if m := structuredEmployment.FindStringSubmatch(text); m != nil {
		s.EmploymentType = strings.ToLower(m[1])
	}
	if m := structuredProperty.FindStringSubmatch(text); m != nil {
		s.PropertyAddress = strings.TrimSpace(m[1])
	}
	if m := structuredOccupancy.FindStringSubmatch(text); m != nil {
		s.OccupancyType = normalizePropertyType(m[1])
	}
	if m := structuredType.FindStringSubmatch(text); m != nil {
		s.PropertyType = normalizePropertyType(m[1])
	}
	if m := structuredStatus.FindStringSubmatch(text); m != nil {
		s.Status = strings.ToLower(m[1])
	}

	if s.EmploymentType == "" {
		switch {
		case strings.Contains(lower, "self employed"), strings.Contains(lower, "self-employed"):
			s.EmploymentType = "self_employed"
		case strings.Contains(lower, "contract"):
			s.EmploymentType = "contract"
		}
	}

	s.CoBorrower = containsAny(lower, coBorrowerTriggers)
	s.FirstTimeBuyer = containsAny(lower, firstTimeBuyerTriggers)
	s.MilitaryService = containsAny(lower, militaryTriggers)
	s.RuralProperty = containsAny(lower, ruralTriggers)
	return s
}

func containsAny(text string, phrases []string) bool {
	for _, p := range phrases {
		if strings.Contains(text, p) {
			return true
		}
	}
	return false
}
