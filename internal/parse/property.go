package parse

import (
	"regexp"
	"strconv"
	"strings"
)

// PropertyDetails holds physical property attributes. The property value
// itself is owned by the monetary resolver so its range check has a single
// authority.
type PropertyDetails struct {
	Address      string
	PropertyType string
	Bedrooms     *int
	Bathrooms    *float64
	SquareFeet   *int
	YearBuilt    *int
}

var (
	// Address captures require a leading street number, which keeps phrases
	// like "looking at a condo" from being read as an address.
	addressPatterns = chain{
		regexp.MustCompile(`(?i)\b(?:address|located)\s*:?\s*(?:is\s+|at\s+)?(\d+\s+[^,\n]+(?:,\s*[^,\n]+)*)`),
		regexp.MustCompile(`(?i)\bproperty\s*(?:at|:)\s*(\d+\s+[^,\n]+(?:,\s*[^,\n]+)*)`),
		regexp.MustCompile(`(?i)\b(?:at|on)\s+(\d+\s+[A-Za-z][^,\n]*(?:,\s*[^,\n]+)*)`),
	}

	propertyTypePatterns = chain{
		regexp.MustCompile(`(?i)\b(?:property\s*)?type\s*:\s*([a-zA-Z_-]+(?:\s+[a-zA-Z_-]+)?)`),
		regexp.MustCompile(`(?i)\b(single[\s_-]?family|condo(?:minium)?|townhouse|multi[\s_-]?family|duplex|manufactured)\b`),
	}

	bedroomPatterns = chain{
		regexp.MustCompile(`(?i)\bbedrooms?\s*:?\s*(\d+)\b`),
		regexp.MustCompile(`(?i)\b(\d+)\s*(?:bed(?:room)?s?|br)\b`),
	}

	bathroomPatterns = chain{
		regexp.MustCompile(`(?i)\bbathrooms?\s*:?\s*(\d+(?:\.\d+)?)\b`),
		regexp.MustCompile(`(?i)\b(\d+(?:\.\d+)?)\s*(?:bath(?:room)?s?|ba)\b`),
	}

	sqftPatterns = chain{
		regexp.MustCompile(`(?i)\b(?:square\s*f(?:ee|oo)t|sq\.?\s*ft\.?|sqft)\s*:?\s*([0-9,]+)`),
		regexp.MustCompile(`(?i)\b([0-9,]+)\s*(?:square\s*f(?:ee|oo)t|sq\.?\s*ft\.?|sqft)`),
	}

	yearBuiltPatterns = chain{
		regexp.MustCompile(`(?i)\b(?:year\s*built|built\s*(?:in)?)\s*:?\s*(\d{4})\b`),
		regexp.MustCompile(`(?i)\b(\d{4})\s+built\b`),
	}
)

// ExtractPropertyDetails finds address, property type, and room counts.
// Implausible construction years are discarded rather than clamped.
func ExtractPropertyDetails(text string) PropertyDetails {
	var d PropertyDetails
	if v, ok := addressPatterns.find(text); ok {
		d.Address = strings.TrimRight(strings.TrimSpace(v), ".")
	}
	if v, ok := propertyTypePatterns.find(text); ok {
		d.PropertyType = normalizePropertyType(v)
	}
	if n, ok := bedroomPatterns.intIn(text, 0, 50); ok {
		d.Bedrooms = intp(n)
	}
	if v, ok := bathroomPatterns.find(text); ok {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			d.Bathrooms = f64p(f)
		}
	}
	if v, ok := sqftPatterns.find(text); ok {
		if f, ok := parseAmount(v); ok {
			d.SquareFeet = intp(int(f))
		}
	}
	if n, ok := yearBuiltPatterns.intIn(text, YearBuiltMin, YearBuiltMax); ok {
		d.YearBuilt = intp(n)
	}
	return d
}

// normalizePropertyType lowercases a property type and joins its words with
// underscores. Common abbreviations map to canonical names.
func normalizePropertyType(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	s = strings.NewReplacer(" ", "_", "-", "_").Replace(s)
	switch s {
	case "condo":
		return "condominium"
	case "single_family", "singlefamily":
		return "single_family"
	case "multi_family", "multifamily":
		return "multi_family"
	}
	return s
}
