package types

// Intent is the classified purpose of a query. The set is closed; routing
// never produces a value outside these six.
type Intent string

// Intent constants enumerate the supported query intents.
const (
	IntentRetrieveCandidates Intent = "RETRIEVE_CANDIDATES"
	IntentRankAndMatch       Intent = "RANK_AND_MATCH"
	IntentSkillAnalysis      Intent = "SKILL_ANALYSIS"
	IntentInterviewPrep      Intent = "INTERVIEW_PREP"
	IntentGovernanceCheck    Intent = "GOVERNANCE_CHECK"
	IntentGeneralQA          Intent = "GENERAL_QA"
)

// Worker names as they appear in routed plans and traces.
const (
	WorkerRetrieval  = "retrieval"
	WorkerRanking    = "ranking"
	WorkerSkill      = "skill"
	WorkerInterview  = "interview"
	WorkerGovernance = "governance"
)

// RoutedPlan is the routing decision for one request: the classified intent
// and the ordered list of workers to invoke. Produced once per request and
// immutable thereafter.
type RoutedPlan struct {
	Intent  Intent   `json:"intent"`
	Workers []string `json:"workers"`
	Notes   string   `json:"notes,omitempty"`
}

// HasWorker reports whether the plan includes the named worker.
func (p *RoutedPlan) HasWorker(name string) bool {
	for _, w := range p.Workers {
		if w == name {
			return true
		}
	}
	return false
}
