package governance

import (
	"fmt"
	"sort"
	"strings"
)

// biasTriggers is the fixed list of sensitive terms whose presence in an
// outbound answer produces an advisory warning. Membership is substring
// based and case-insensitive.
var biasTriggers = []string{
	"young", "old", "age", "gender", "female", "male", "married", "single",
	"religion", "race", "ethnicity", "pregnant", "disabled",
}

// CheckBias scans already-redacted text for sensitive terms. It returns
// CheckOK on a clean pass, otherwise a warning naming the deduplicated,
// sorted set of matched terms. Advisory only; the text is never altered.
func CheckBias(text string) string {
	t := strings.ToLower(text)

	seen := make(map[string]bool)
	for _, term := range biasTriggers {
		if strings.Contains(t, term) {
			seen[term] = true
		}
	}
	if len(seen) == 0 {
		return CheckOK
	}

	hits := make([]string, 0, len(seen))
	for term := range seen {
		hits = append(hits, term)
	}
	sort.Strings(hits)

	return fmt.Sprintf("Bias warning: detected potentially sensitive terms %v.", hits)
}
