// Package ranking provides functionality to rank retrieved candidates
// against free-text job descriptions.
package ranking

import (
	"sort"
	"strings"

	"github.com/jonathan/hr-copilot/internal/types"
)

// Weights for blending the semantic score with the JD token-overlap score.
// Both inputs are on a "higher is better" scale; the vectorsearch layer
// guarantees that regardless of the underlying index metric.
const (
	semanticWeight = 0.6
	jdMatchWeight  = 0.4
)

// Tokens shorter than this carry no matching signal and are discarded.
const minTokenLen = 3

// maxMatchedTerms caps the matched-term set carried per candidate.
const maxMatchedTerms = 30

const tokenPunctuation = ".,:;()[]{}<>\"'"

// Result holds the ranked list plus per-candidate explanations for the top
// entries.
type Result struct {
	Ranked       []types.RankedCandidate `json:"ranked"`
	Explanations []string                `json:"explanations"`
}

// Rank scores every candidate against the JD text and returns a new list
// sorted non-increasing by combined score. The sort is stable so equal
// scores keep their retrieval order, and the input list is never mutated.
func Rank(candidates []types.Candidate, jdText string) *Result {
	jdTokens := tokenSet(jdText)

	ranked := make([]types.RankedCandidate, 0, len(candidates))
	for _, c := range candidates {
		jdMatch, matched := matchJD(jdTokens, c.Preview)
		ranked = append(ranked, types.RankedCandidate{
			Candidate:     c,
			JDMatchScore:  jdMatch,
			CombinedScore: combineScores(c.Score, jdMatch),
			MatchedTerms:  matched,
		})
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].CombinedScore > ranked[j].CombinedScore
	})

	return &Result{
		Ranked:       ranked,
		Explanations: explainTop(ranked),
	}
}

// matchJD computes the JD token-overlap score for one candidate preview:
// |jd ∩ cv| / max(1, |jd|), zero when the JD has no usable tokens. The
// matched-term list is sorted and capped at maxMatchedTerms.
func matchJD(jdTokens map[string]bool, preview string) (float64, []string) {
	if len(jdTokens) == 0 {
		return 0.0, []string{}
	}

	cvTokens := tokenSet(preview)

	matched := make([]string, 0)
	for token := range jdTokens {
		if cvTokens[token] {
			matched = append(matched, token)
		}
	}
	sort.Strings(matched)

	score := float64(len(matched)) / float64(len(jdTokens))

	if len(matched) > maxMatchedTerms {
		matched = matched[:maxMatchedTerms]
	}
	return score, matched
}

// combineScores blends semantic similarity and JD match with fixed weights.
func combineScores(semantic, jdMatch float64) float64 {
	return semanticWeight*semantic + jdMatchWeight*jdMatch
}

// tokenSet splits on whitespace, lower-cases, strips surrounding
// punctuation, and discards tokens shorter than minTokenLen.
func tokenSet(s string) map[string]bool {
	tokens := make(map[string]bool)
	for _, field := range strings.Fields(s) {
		token := strings.ToLower(strings.Trim(field, tokenPunctuation))
		if len(token) >= minTokenLen {
			tokens[token] = true
		}
	}
	return tokens
}
