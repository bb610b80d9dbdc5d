package parse

import (
	"regexp"
	"strconv"
	"strings"
)

// chain is an ordered list of alternative patterns for one field. Patterns
// are tried in declared order and the first match wins, so earlier entries
// must be the more explicit phrasings.
type chain []*regexp.Regexp

// find returns the first non-empty capture group of the first matching
// pattern. Multi-group alternations ("bedrooms: 3" vs "3 bed") leave the
// unmatched branch's group empty, hence the inner scan.
func (c chain) find(text string) (string, bool) {
	for _, re := range c {
		m := re.FindStringSubmatch(text)
		if m == nil {
			continue
		}
		for _, g := range m[1:] {
			if g != "" {
				return g, true
			}
		}
	}
	return "", false
}

// amount returns the first capture that parses as a dollar amount. A capture
// that fails to parse, or that is immediately followed by a percent sign,
// does not short-circuit the chain; later patterns still get a chance.
func (c chain) amount(text string) (float64, bool) {
	for _, re := range c {
		idx := re.FindStringSubmatchIndex(text)
		if idx == nil {
			continue
		}
		start, end := firstGroup(idx)
		if start < 0 {
			continue
		}
		if followedByPercent(text, end) {
			continue
		}
		if v, ok := parseAmount(text[start:end]); ok {
			return v, true
		}
	}
	return 0, false
}

// amountIn is amount with an inclusive range gate. Out-of-range matches are
// discarded and the chain keeps going.
func (c chain) amountIn(text string, lo, hi float64) (float64, bool) {
	for _, re := range c {
		idx := re.FindStringSubmatchIndex(text)
		if idx == nil {
			continue
		}
		start, end := firstGroup(idx)
		if start < 0 {
			continue
		}
		if followedByPercent(text, end) {
			continue
		}
		if v, ok := parseAmount(text[start:end]); ok && v >= lo && v <= hi {
			return v, true
		}
	}
	return 0, false
}

// intIn returns the first capture that parses as an integer within [lo, hi].
func (c chain) intIn(text string, lo, hi int) (int, bool) {
	for _, re := range c {
		m := re.FindStringSubmatch(text)
		if m == nil {
			continue
		}
		for _, g := range m[1:] {
			if g == "" {
				continue
			}
			if n, err := strconv.Atoi(g); err == nil && n >= lo && n <= hi {
				return n, true
			}
			break
		}
	}
	return 0, false
}

// firstGroup returns the byte offsets of the first participating capture
// group in a FindStringSubmatchIndex result.
func firstGroup(idx []int) (int, int) {
	for i := 2; i+1 < len(idx); i += 2 {
		if idx[i] >= 0 {
			return idx[i], idx[i+1]
		}
	}
	return -1, -1
}

// followedByPercent reports whether the next non-space character after end is
// a percent sign. Numbers like the 15 in "15% down" are percentages, not
// dollar amounts, and must be left for the monetary resolver.
func followedByPercent(text string, end int) bool {
	rest := strings.TrimLeft(text[end:], " ")
	return strings.HasPrefix(rest, "%")
}

// parseAmount parses a monetary capture, tolerating a leading dollar sign and
// thousands separators.
func parseAmount(s string) (float64, bool) {
	s = strings.TrimSpace(s)
	s = strings.TrimPrefix(s, "$")
	s = strings.ReplaceAll(s, ",", "")
	if s == "" {
		return 0, false
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, false
	}
	return v, true
}
