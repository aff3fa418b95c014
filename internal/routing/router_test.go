package routing

import (
	"testing"

	"github.com/jonathan/hr-copilot/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClassifyIntent(t *testing.T) {
	tests := []struct {
		name  string
		query string
		want  types.Intent
	}{
		{"retrieval", "find candidates data analyst", types.IntentRetrieveCandidates},
		{"retrieval by resume term", "show me resume of a backend engineer", types.IntentRetrieveCandidates},
		{"ranking", "rank candidates against this JD: python sql", types.IntentRankAndMatch},
		{"skills", "what skills do these candidates have", types.IntentSkillAnalysis},
		{"interview", "generate interview questions for candidate", types.IntentInterviewPrep},
		{"governance", "run a pii compliance check", types.IntentGovernanceCheck},
		{"general", "hello there", types.IntentGeneralQA},
		{"case insensitive", "FIND CANDIDATES", types.IntentRetrieveCandidates},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ClassifyIntent(tt.query))
		})
	}
}

func TestClassifyIntent_PriorityOrder(t *testing.T) {
	// Governance terms outrank everything, even when retrieval and ranking
	// terms are present in the same query.
	assert.Equal(t, types.IntentGovernanceCheck,
		ClassifyIntent("check bias when you rank and find candidates"))

	// Interview outranks skill, rank, and retrieval.
	assert.Equal(t, types.IntentInterviewPrep,
		ClassifyIntent("interview questions about skills for ranked candidates"))

	// Skill outranks rank and retrieval.
	assert.Equal(t, types.IntentSkillAnalysis,
		ClassifyIntent("extract skills and rank the candidates"))
}

func TestRoute_WorkerPlans(t *testing.T) {
	tests := []struct {
		query   string
		workers []string
	}{
		{"find candidates data analyst", []string{types.WorkerRetrieval}},
		{"rank candidates for this jd", []string{types.WorkerRetrieval, types.WorkerRanking}},
		{"skill gap for data engineers", []string{types.WorkerRetrieval, types.WorkerSkill}},
		{"generate interview questions for candidate", []string{types.WorkerRetrieval, types.WorkerInterview}},
		{"redact pii from the report", []string{types.WorkerGovernance}},
		{"hello", []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.query, func(t *testing.T) {
			plan := Route(tt.query)
			assert.Equal(t, tt.workers, plan.Workers)
		})
	}
}

func TestRoute_Deterministic(t *testing.T) {
	first := Route("find candidates data analyst")
	for i := 0; i < 10; i++ {
		again := Route("find candidates data analyst")
		assert.Equal(t, first, again)
	}
}

func TestRoute_PlanIsolation(t *testing.T) {
	// Mutating a returned plan must not affect subsequent routing.
	plan := Route("rank candidates for this jd")
	require.Len(t, plan.Workers, 2)
	plan.Workers[0] = "tampered"

	again := Route("rank candidates for this jd")
	assert.Equal(t, []string{types.WorkerRetrieval, types.WorkerRanking}, again.Workers)
}
