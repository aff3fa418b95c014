// Package skills implements the skill analysis worker: fixed-vocabulary
// extraction from candidate text, frequency trends across a candidate pool,
// and JD-vs-candidate gap analysis.
package skills

import (
	"sort"
	"strings"

	"github.com/jonathan/hr-copilot/internal/types"
)

// vocabulary is the closed skill list. Extraction is substring membership
// against this list only; novel skills are never detected by design.
var vocabulary = []string{
	"python", "sql", "excel", "power bi", "tableau", "spark", "pandas",
	"ml", "machine learning", "nlp", "aws", "azure", "gcp", "docker",
	"kubernetes", "java", "javascript", "react", "node", "postgres",
}

// Extract returns the sorted set of vocabulary skills present in text,
// matched case-insensitively.
func Extract(text string) []string {
	t := strings.ToLower(text)

	found := make([]string, 0)
	for _, skill := range vocabulary {
		if strings.Contains(t, skill) {
			found = append(found, skill)
		}
	}
	sort.Strings(found)
	return found
}

// Profile attaches extracted skills to each candidate's preview text. The
// input list is not mutated; profiles are new records in the same order.
func Profile(candidates []types.Candidate) []types.SkillProfile {
	profiles := make([]types.SkillProfile, 0, len(candidates))
	for _, c := range candidates {
		profiles = append(profiles, types.SkillProfile{
			Candidate: c,
			Skills:    Extract(c.Preview),
		})
	}
	return profiles
}
