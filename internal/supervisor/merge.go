package supervisor

import (
	"fmt"
	"strings"

	"github.com/jonathan/hr-copilot/internal/interview"
	"github.com/jonathan/hr-copilot/internal/skills"
	"github.com/jonathan/hr-copilot/internal/types"
)

// Display bounds for merged sections.
const (
	previewDisplayLimit  = 250
	rankedDisplayLimit   = 10
	snapshotDisplayLimit = 5
	trendDisplayLimit    = 10
	gapDisplayLimit      = 5
)

// merge concatenates each worker's formatted content under a labeled
// section, in invocation order, followed by the fixed next-actions block.
func merge(results []types.WorkerResult, intent types.Intent) string {
	parts := []string{fmt.Sprintf("**Intent:** %s", intent)}
	for _, r := range results {
		parts = append(parts, fmt.Sprintf("\n### %s RESULT\n%s", strings.ToUpper(r.Worker), r.Content))
	}
	parts = append(parts, "\n### Next actions\n"+
		"- Refine by adding role/title, years of experience, location, or specific skills.\n"+
		"- Paste JD text for more accurate matching.")
	return strings.Join(parts, "\n")
}

func formatCandidates(candidates []types.Candidate) string {
	if len(candidates) == 0 {
		return "No candidates found."
	}

	var lines []string
	for i, c := range candidates {
		lines = append(lines, fmt.Sprintf(
			"%d. ID=%d | category=%s | score=%.3f\n   preview: %s...",
			i+1, c.ID, c.Category, c.Score, clip(c.Preview, previewDisplayLimit),
		))
	}
	return strings.Join(lines, "\n")
}

func formatRanked(ranked []types.RankedCandidate) string {
	if len(ranked) == 0 {
		return "No ranked candidates."
	}

	var lines []string
	count := min(len(ranked), rankedDisplayLimit)
	for i, c := range ranked[:count] {
		lines = append(lines, fmt.Sprintf(
			"%d. ID=%d | combined=%.3f | jd_match=%.3f | semantic=%.3f\n   matched_terms: %v",
			i+1, c.ID, c.CombinedScore, c.JDMatchScore, c.Score, c.MatchedTerms,
		))
	}
	return strings.Join(lines, "\n")
}

func formatSkills(res *skills.Result) string {
	var out []string

	if len(res.Profiles) > 0 {
		out = append(out, "Top candidates skill snapshots:")
		count := min(len(res.Profiles), snapshotDisplayLimit)
		for _, p := range res.Profiles[:count] {
			out = append(out, fmt.Sprintf("- ID=%d: %v", p.ID, p.Skills))
		}
	}

	if len(res.Trend) > 0 {
		out = append(out, fmt.Sprintf("\nSkill trends (top %d):", trendDisplayLimit))
		count := min(len(res.Trend), trendDisplayLimit)
		for _, t := range res.Trend[:count] {
			out = append(out, fmt.Sprintf("- %s: %d", t.Skill, t.Count))
		}
	}

	if len(res.Gaps) > 0 {
		out = append(out, fmt.Sprintf("\nSkill gaps vs JD skills (top %d candidates):", gapDisplayLimit))
		count := min(len(res.Gaps), gapDisplayLimit)
		for _, g := range res.Gaps[:count] {
			out = append(out, fmt.Sprintf("- ID=%d: missing=%v, matched=%v", g.CandidateID, g.Missing, g.Matched))
		}
	}

	if len(out) == 0 {
		return "No skill analysis output."
	}
	return strings.Join(out, "\n")
}

func formatInterview(prepared *interview.Prepared) string {
	out := []string{"Interview Questions:"}

	out = append(out, "\nTechnical:")
	for _, q := range prepared.Questions.Technical {
		out = append(out, "- "+q)
	}

	out = append(out, "\nBehavioral:")
	for _, q := range prepared.Questions.Behavioral {
		out = append(out, "- "+q)
	}

	out = append(out, "\nRubric:")
	for _, r := range prepared.Questions.Rubric {
		out = append(out, fmt.Sprintf("- %s: %s", r.Competency, strings.Join(r.Signals, ", ")))
	}

	return strings.Join(out, "\n")
}

func clip(s string, limit int) string {
	if len(s) > limit {
		return s[:limit]
	}
	return s
}
