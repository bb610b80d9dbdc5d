package parse

import (
	"fmt"
	"regexp"
	"strings"
	"time"
)

var (
	// Canonical ids look like APP_20240115_143052_ITH. The loose form picks
	// up hand-typed variants; the labeled form accepts foreign id schemes
	// after an explicit "application id:" style prefix.
	appIDCanonical = regexp.MustCompile(`(?i)\b(APP_\d{8}_\d{6}_[A-Z0-9]+)\b`)
	appIDLoose     = regexp.MustCompile(`(?i)\b(APP_[A-Z0-9_]+)\b`)
	appIDLabeled   = regexp.MustCompile(`(?i)\b(?:application|app)\s*(?:id|number|#)\s*:?\s*([A-Z0-9][A-Z0-9_-]+)`)
)

// ExtractApplicationID finds an application reference and uppercases it.
func ExtractApplicationID(text string) (string, bool) {
	for _, re := range []*regexp.Regexp{appIDCanonical, appIDLoose, appIDLabeled} {
		if m := re.FindStringSubmatch(text); m != nil {
			return strings.ToUpper(m[1]), true
		}
	}
	return "", false
}

// NewApplicationID builds a canonical application id from the submission time
// and the last three letters of the borrower's last name. Short last names
// use whatever letters they have; a missing one falls back to "XXX".
func NewApplicationID(now time.Time, lastName string) string {
	suffix := "XXX"
	if lastName != "" {
		n := len(lastName)
		if n > 3 {
			n = 3
		}
		suffix = strings.ToUpper(lastName[len(lastName)-n:])
	}
	return fmt.Sprintf("APP_%s_%s", now.UTC().Format("20060102_150405"), suffix)
}
