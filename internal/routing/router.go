// Package routing classifies free-text HR queries into intents and maps each
// intent to its fixed worker plan.
package routing

import (
	"strings"

	"github.com/jonathan/hr-copilot/internal/types"
)

// Keyword tables per intent, tested in priority order: governance first so a
// compliance question about candidates never leaks into retrieval, then
// interview, skill, ranking, retrieval. First match wins; no scoring.
// Terms cover English and Indonesian phrasings.
var (
	governanceTerms = []string{"rbac", "akses", "permission", "pii", "privacy", "redact", "bias", "compliance", "risk"}
	interviewTerms  = []string{"interview", "questions", "pertanyaan", "assessment", "rubric", "kompetensi"}
	skillTerms      = []string{"skill gap", "gap skill", "kesenjangan", "extract skills", "skills", "kompetensi teknis"}
	rankTerms       = []string{"rank", "ranking", "match", "jd", "job description", "cocok", "compare candidates", "scoring"}
	retrieveTerms   = []string{"find", "search", "cari", "resume", "candidate", "kandidat", "talent"}
)

// workerPlans is the static intent → worker table. Plans are returned by
// copy so a routed plan can never alias this table.
var workerPlans = map[types.Intent][]string{
	types.IntentRetrieveCandidates: {types.WorkerRetrieval},
	types.IntentRankAndMatch:       {types.WorkerRetrieval, types.WorkerRanking},
	types.IntentSkillAnalysis:      {types.WorkerRetrieval, types.WorkerSkill},
	types.IntentInterviewPrep:      {types.WorkerRetrieval, types.WorkerInterview},
	types.IntentGovernanceCheck:    {types.WorkerGovernance},
	types.IntentGeneralQA:          {},
}

// ClassifyIntent maps a raw query to one of the six fixed intents.
// Classification is pure: identical text always yields an identical intent.
func ClassifyIntent(query string) types.Intent {
	q := strings.ToLower(query)

	switch {
	case containsAny(q, governanceTerms):
		return types.IntentGovernanceCheck
	case containsAny(q, interviewTerms):
		return types.IntentInterviewPrep
	case containsAny(q, skillTerms):
		return types.IntentSkillAnalysis
	case containsAny(q, rankTerms):
		return types.IntentRankAndMatch
	case containsAny(q, retrieveTerms):
		return types.IntentRetrieveCandidates
	default:
		return types.IntentGeneralQA
	}
}

// Route classifies the query and returns its immutable worker plan.
func Route(query string) types.RoutedPlan {
	intent := ClassifyIntent(query)

	workers := make([]string, len(workerPlans[intent]))
	copy(workers, workerPlans[intent])

	return types.RoutedPlan{
		Intent:  intent,
		Workers: workers,
		Notes:   "rule-based routing",
	}
}

func containsAny(q string, terms []string) bool {
	for _, t := range terms {
		if strings.Contains(q, t) {
			return true
		}
	}
	return false
}
