// Package interview implements the interview preparation worker. The
// reference generator is a fixed template; a generative implementation can
// be swapped in behind the same Generator contract without touching callers.
package interview

import (
	"context"

	"github.com/jonathan/hr-copilot/internal/types"
)

// Questions is a prepared interview question set.
type Questions struct {
	Technical  []string     `json:"technical"`
	Behavioral []string     `json:"behavioral"`
	Rubric     []RubricItem `json:"rubric"`
	Notes      string       `json:"notes,omitempty"`
}

// RubricItem names a competency and the signals an interviewer should look
// for when scoring it.
type RubricItem struct {
	Competency string   `json:"competency"`
	Signals    []string `json:"signals"`
}

// Prepared is the worker's full output: the question set plus the
// competency mapping.
type Prepared struct {
	Questions     Questions       `json:"questions"`
	CompetencyMap []CompetencyTag `json:"competency_map"`
}

// Generator produces a question set for a JD and a target candidate.
type Generator interface {
	Generate(ctx context.Context, jdText string, candidate types.Candidate) (Questions, error)
}

// TemplateGenerator is the deterministic reference generator. The JD and
// candidate are accepted for contract compatibility but do not alter the
// template.
type TemplateGenerator struct{}

// Generate returns the fixed question template.
func (TemplateGenerator) Generate(_ context.Context, _ string, _ types.Candidate) (Questions, error) {
	return Questions{
		Technical: []string{
			"Walk me through a recent project that matches this JD. What was your role and impact?",
			"How do you ensure data quality and reliability in your pipeline/work?",
			"Explain a tradeoff you made between speed and correctness.",
			"Describe how you would debug a failing ETL / model drift issue.",
			"What metrics would you use to evaluate success for this role?",
		},
		Behavioral: []string{
			"Tell me about a time you handled conflicting stakeholder requirements (STAR).",
			"Describe a time you failed or made a mistake and what you learned.",
			"Tell me about a time you influenced without authority.",
			"How do you prioritize tasks when everything is urgent?",
			"Describe a time you improved a process end-to-end.",
		},
		Rubric: []RubricItem{
			{Competency: "role_fit", Signals: []string{"relevant experience", "clear impact", "domain understanding"}},
			{Competency: "communication", Signals: []string{"structured answers", "clarity", "stakeholder empathy"}},
			{Competency: "technical_depth", Signals: []string{"correct concepts", "tradeoffs", "problem solving"}},
		},
		Notes: "Templated question set.",
	}, nil
}

// Prepare runs the generator and attaches the competency mapping.
func Prepare(ctx context.Context, gen Generator, jdText string, candidate types.Candidate) (*Prepared, error) {
	questions, err := gen.Generate(ctx, jdText, candidate)
	if err != nil {
		return nil, err
	}
	return &Prepared{
		Questions:     questions,
		CompetencyMap: MapCompetencies(questions),
	}, nil
}
