package skills

import (
	"sort"
	"strings"

	"github.com/jonathan/hr-copilot/internal/types"
)

// maxGapCandidates bounds gap analysis cost: only the first candidates of an
// already-ordered pool are compared against the JD. This is a deliberate,
// documented limit, not a truncation artifact.
const maxGapCandidates = 10

// Result is the skill worker's full output.
type Result struct {
	Profiles []types.SkillProfile `json:"profiles"`
	Trend    []SkillCount         `json:"trend"`
	Gaps     []types.SkillGap     `json:"gaps,omitempty"`
}

// Analyze profiles every candidate, aggregates the trend, and, when JD
// skills are supplied, runs gap analysis over the first maxGapCandidates
// profiles.
func Analyze(candidates []types.Candidate, jdSkills []string) *Result {
	profiles := Profile(candidates)

	res := &Result{
		Profiles: profiles,
		Trend:    Trend(profiles),
	}

	if len(jdSkills) > 0 {
		bound := min(len(profiles), maxGapCandidates)
		gaps := make([]types.SkillGap, 0, bound)
		for _, p := range profiles[:bound] {
			gap := GapAnalysis(jdSkills, p.Skills)
			gap.CandidateID = p.ID
			gaps = append(gaps, gap)
		}
		res.Gaps = gaps
	}

	return res
}

// GapAnalysis partitions skills into three disjoint, case-folded sets:
// missing (JD only), matched (both), extra (candidate only). The union of
// missing and matched equals the JD set; matched and extra cover the
// candidate set.
func GapAnalysis(jdSkills, candidateSkills []string) types.SkillGap {
	jd := foldSet(jdSkills)
	cv := foldSet(candidateSkills)

	gap := types.SkillGap{
		Missing: []string{},
		Matched: []string{},
		Extra:   []string{},
	}
	for s := range jd {
		if cv[s] {
			gap.Matched = append(gap.Matched, s)
		} else {
			gap.Missing = append(gap.Missing, s)
		}
	}
	for s := range cv {
		if !jd[s] {
			gap.Extra = append(gap.Extra, s)
		}
	}

	sort.Strings(gap.Missing)
	sort.Strings(gap.Matched)
	sort.Strings(gap.Extra)
	return gap
}

func foldSet(skills []string) map[string]bool {
	set := make(map[string]bool, len(skills))
	for _, s := range skills {
		folded := strings.ToLower(strings.TrimSpace(s))
		if folded != "" {
			set[folded] = true
		}
	}
	return set
}
