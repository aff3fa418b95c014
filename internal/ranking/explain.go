package ranking

import (
	"fmt"

	"github.com/jonathan/hr-copilot/internal/types"
)

// maxExplained is the number of top-ranked entries that receive a score
// breakdown.
const maxExplained = 10

// explainTop formats score breakdowns for the leading entries. Pure
// formatting over an already-sorted slice; it never reorders.
func explainTop(ranked []types.RankedCandidate) []string {
	count := min(len(ranked), maxExplained)
	explanations := make([]string, 0, count)
	for _, c := range ranked[:count] {
		explanations = append(explanations, ExplainScore(c))
	}
	return explanations
}

// ExplainScore renders one candidate's score breakdown as a single line.
func ExplainScore(c types.RankedCandidate) string {
	return fmt.Sprintf(
		"Candidate %d | semantic=%.3f, jd_match=%.3f, combined=%.3f. Matched terms: %v",
		c.ID, c.Score, c.JDMatchScore, c.CombinedScore, c.MatchedTerms,
	)
}
