package skills

import (
	"sort"

	"github.com/jonathan/hr-copilot/internal/types"
)

// maxTrendSkills bounds the trend report to the most frequent skills.
const maxTrendSkills = 20

// SkillCount is one trend entry: a skill and how many candidates carry it.
type SkillCount struct {
	Skill string `json:"skill"`
	Count int    `json:"count"`
}

// Trend aggregates skill occurrence frequency across all profiles and
// returns the top entries by descending count. Ties keep first-seen order,
// so equal-frequency skills report in the order they first appeared across
// the candidate pool.
func Trend(profiles []types.SkillProfile) []SkillCount {
	counts := make(map[string]int)
	firstSeen := make(map[string]int)
	order := 0

	for _, p := range profiles {
		for _, skill := range p.Skills {
			if _, ok := counts[skill]; !ok {
				firstSeen[skill] = order
				order++
			}
			counts[skill]++
		}
	}

	top := make([]SkillCount, 0, len(counts))
	for skill, count := range counts {
		top = append(top, SkillCount{Skill: skill, Count: count})
	}
	sort.SliceStable(top, func(i, j int) bool {
		if top[i].Count != top[j].Count {
			return top[i].Count > top[j].Count
		}
		return firstSeen[top[i].Skill] < firstSeen[top[j].Skill]
	})

	if len(top) > maxTrendSkills {
		top = top[:maxTrendSkills]
	}
	return top
}
