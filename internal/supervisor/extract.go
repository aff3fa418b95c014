package supervisor

import "strings"

// ExtractJDText pulls job-description text out of a query. When the user
// pastes a "JD:" marker, everything after it is the JD; otherwise the whole
// query doubles as the matching target.
func ExtractJDText(query string) string {
	if idx := indexFold(query, "jd:"); idx >= 0 {
		return strings.TrimSpace(query[idx+len("jd:"):])
	}
	return query
}

// ExtractJDSkills parses a "skills: a, b, c" marker into a skill list.
// Returns nil when the marker is absent or carries nothing.
func ExtractJDSkills(query string) []string {
	idx := indexFold(query, "skills:")
	if idx < 0 {
		return nil
	}

	tail := query[idx+len("skills:"):]
	var skills []string
	for _, item := range strings.Split(tail, ",") {
		if s := strings.TrimSpace(item); s != "" {
			skills = append(skills, s)
		}
	}
	return skills
}

// indexFold is a case-insensitive strings.Index.
func indexFold(s, substr string) int {
	return strings.Index(strings.ToLower(s), strings.ToLower(substr))
}
