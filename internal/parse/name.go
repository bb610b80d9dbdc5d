package parse

import (
	"regexp"
	"strings"
)

// Name is a borrower name split into parts. Full always holds the raw
// matched span; Middle is empty unless the span had three or more words.
type Name struct {
	First  string
	Middle string
	Last   string
	Full   string
}

// Name patterns, most explicit first. The casual forms bound the captured
// span to three words so trailing verbs are not swallowed into the name.
var namePatterns = chain{
	regexp.MustCompile(`(?i)\b(?:name|i'm|i am)\s*(?:is\s*)?:?\s*([a-zA-Z]+(?:\s+[a-zA-Z]+){1,3})`),
	regexp.MustCompile(`(?i)\b(?:mortgage|loan)\s+for\s+([a-zA-Z]+(?:\s+[a-zA-Z]+){1,2})`),
	regexp.MustCompile(`(?i)\b([a-zA-Z]+(?:\s+[a-zA-Z]+){1,3})\s*,\s*dob\b`),
	regexp.MustCompile(`(?i)\b(?:borrower|applicant|customer)\s*:?\s+([a-zA-Z]+(?:\s+[a-zA-Z]+){1,3})`),
	regexp.MustCompile(`(?i)\bapply\s+([a-zA-Z]+(?:\s+[a-zA-Z]+){1,2})\s+wants\b`),
	regexp.MustCompile(`(?i)\bhey\s+im\s+([a-zA-Z]+(?:\s+[a-zA-Z]+){1,2})`),
	regexp.MustCompile(`(?i)\b([a-zA-Z]+\s+[a-zA-Z]+)\s+(?:wants|needs|is\s+applying|applying)\b`),
}

// ExtractName finds a borrower name. Single-word spans are rejected; a name
// needs at least a first and last part to be usable downstream.
func ExtractName(text string) (Name, bool) {
	span, ok := namePatterns.find(text)
	if !ok {
		return Name{}, false
	}
	return splitName(span)
}

// nameStopwords are filler words the looser patterns can capture at either
// edge of a span ("is John", "John Smith with"). They are trimmed before the
// span is split, and a span reduced below two words is rejected.
var nameStopwords = map[string]bool{
	"is": true, "i": true, "a": true, "an": true, "the": true, "and": true,
	"for": true, "to": true, "with": true, "from": true, "who": true,
	"applying": true, "looking": true, "interested": true, "trying": true,
	"currently": true,
}

// splitName assigns parts positionally: first word, last word, and anything
// between joined as the middle name.
func splitName(span string) (Name, bool) {
	words := strings.Fields(span)
	for len(words) > 0 && nameStopwords[strings.ToLower(words[0])] {
		words = words[1:]
	}
	for len(words) > 0 && nameStopwords[strings.ToLower(words[len(words)-1])] {
		words = words[:len(words)-1]
	}
	if len(words) < 2 {
		return Name{}, false
	}
	n := Name{
		First: words[0],
		Last:  words[len(words)-1],
		Full:  strings.Join(words, " "),
	}
	if len(words) > 2 {
		n.Middle = strings.Join(words[1:len(words)-1], " ")
	}
	return n, true
}
