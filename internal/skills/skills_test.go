package skills

import (
	"testing"

	"github.com/jonathan/hr-copilot/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtract(t *testing.T) {
	skills := Extract("Senior Python developer, strong SQL and Docker. Some AWS.")
	assert.Equal(t, []string{"aws", "docker", "python", "sql"}, skills)
}

func TestExtract_NovelSkillsNeverDetected(t *testing.T) {
	skills := Extract("expert in rust and elixir")
	assert.Empty(t, skills)
}

func TestExtract_SubstringSemantics(t *testing.T) {
	// "machine learning" also contains "ml"? It does not; but "html" does.
	// Extraction is plain substring membership over the fixed vocabulary.
	skills := Extract("built html dashboards")
	assert.Equal(t, []string{"ml"}, skills)

	skills = Extract("machine learning pipelines")
	assert.Equal(t, []string{"machine learning"}, skills)
}

func TestTrend_CountsAndOrder(t *testing.T) {
	profiles := []types.SkillProfile{
		{Skills: []string{"python", "sql"}},
		{Skills: []string{"python", "docker"}},
		{Skills: []string{"python", "sql"}},
	}

	trend := Trend(profiles)
	require.Len(t, trend, 3)
	assert.Equal(t, SkillCount{Skill: "python", Count: 3}, trend[0])
	assert.Equal(t, SkillCount{Skill: "sql", Count: 2}, trend[1])
	assert.Equal(t, SkillCount{Skill: "docker", Count: 1}, trend[2])
}

func TestTrend_TiesKeepFirstSeenOrder(t *testing.T) {
	profiles := []types.SkillProfile{
		{Skills: []string{"sql", "tableau"}},
		{Skills: []string{"docker"}},
	}

	trend := Trend(profiles)
	require.Len(t, trend, 3)
	assert.Equal(t, "sql", trend[0].Skill)
	assert.Equal(t, "tableau", trend[1].Skill)
	assert.Equal(t, "docker", trend[2].Skill)
}

func TestGapAnalysis_Partitions(t *testing.T) {
	gap := GapAnalysis([]string{"Python", "SQL", "Spark"}, []string{"python", "docker"})

	assert.Equal(t, []string{"spark", "sql"}, gap.Missing)
	assert.Equal(t, []string{"python"}, gap.Matched)
	assert.Equal(t, []string{"docker"}, gap.Extra)
}

func TestGapAnalysis_SetInvariants(t *testing.T) {
	jd := []string{"python", "sql", "aws"}
	cv := []string{"sql", "aws", "docker", "react"}
	gap := GapAnalysis(jd, cv)

	// Pairwise disjoint.
	for _, m := range gap.Missing {
		assert.NotContains(t, gap.Matched, m)
		assert.NotContains(t, gap.Extra, m)
	}
	for _, m := range gap.Matched {
		assert.NotContains(t, gap.Extra, m)
	}

	// missing ∪ matched == JD set; matched ∪ extra == candidate set.
	assert.ElementsMatch(t, jd, append(append([]string{}, gap.Missing...), gap.Matched...))
	assert.ElementsMatch(t, cv, append(append([]string{}, gap.Matched...), gap.Extra...))
}

func TestAnalyze_GapBoundedToFirstTen(t *testing.T) {
	candidates := make([]types.Candidate, 0, 15)
	for i := 0; i < 15; i++ {
		candidates = append(candidates, types.Candidate{ID: i, Preview: "python and sql"})
	}

	res := Analyze(candidates, []string{"python", "spark"})
	assert.Len(t, res.Profiles, 15)
	assert.Len(t, res.Gaps, maxGapCandidates)
	assert.Equal(t, 0, res.Gaps[0].CandidateID)
}

func TestAnalyze_NoJDSkillsSkipsGaps(t *testing.T) {
	res := Analyze([]types.Candidate{{ID: 1, Preview: "python"}}, nil)
	assert.Nil(t, res.Gaps)
	require.Len(t, res.Profiles, 1)
	assert.Equal(t, []string{"python"}, res.Profiles[0].Skills)
}
