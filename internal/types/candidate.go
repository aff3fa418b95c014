// Package types provides type definitions for structured data used throughout the hr-copilot system.
package types

// Candidate represents a single resume hit returned by the vector search collaborator.
// ID is the row identity of the originating document; Score is semantic
// similarity on a "larger is better" scale after adaptation.
type Candidate struct {
	ID       int               `json:"id"`
	Category string            `json:"category"`
	Score    float64           `json:"score"`
	Preview  string            `json:"preview"`
	Metadata map[string]string `json:"metadata,omitempty"`
}

// RankedCandidate extends a Candidate with job-description match information.
// It is a new record produced by the ranking worker; the original Candidate
// is never mutated.
type RankedCandidate struct {
	Candidate
	JDMatchScore  float64  `json:"jd_match_score"`
	CombinedScore float64  `json:"combined_score"`
	MatchedTerms  []string `json:"matched_terms"`
}

// SkillProfile extends a Candidate with the skills extracted from its preview text.
type SkillProfile struct {
	Candidate
	Skills []string `json:"skills"`
}

// SkillGap holds the three disjoint skill partitions for one candidate
// measured against a job description's skill list.
type SkillGap struct {
	CandidateID int      `json:"candidate_id"`
	Missing     []string `json:"missing"`
	Matched     []string `json:"matched"`
	Extra       []string `json:"extra"`
}
