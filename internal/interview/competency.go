package interview

// Competencies assigned by the mapper.
const (
	CompetencyTechnicalDepth = "technical_depth"
	CompetencyCommunication  = "communication/leadership"
)

// CompetencyTag links one question to the competency it probes.
type CompetencyTag struct {
	Question   string `json:"question"`
	Competency string `json:"competency"`
}

// MapCompetencies tags every technical question with technical_depth and
// every behavioral question with communication/leadership. Pure function.
func MapCompetencies(q Questions) []CompetencyTag {
	mapping := make([]CompetencyTag, 0, len(q.Technical)+len(q.Behavioral))
	for _, question := range q.Technical {
		mapping = append(mapping, CompetencyTag{Question: question, Competency: CompetencyTechnicalDepth})
	}
	for _, question := range q.Behavioral {
		mapping = append(mapping, CompetencyTag{Question: question, Competency: CompetencyCommunication})
	}
	return mapping
}
