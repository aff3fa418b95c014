package interview

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/jonathan/hr-copilot/internal/llm"
	"github.com/jonathan/hr-copilot/internal/types"
)

const questionsPerSection = 5

// LLMGenerator personalizes the question set with a model call. It keeps the
// template's rubric and falls back to the full template whenever the model
// is unavailable or its output cannot be parsed, so callers always get a
// usable set.
type LLMGenerator struct {
	client llm.Client
	logger *zap.Logger
}

// NewLLMGenerator creates a generator backed by the given client.
func NewLLMGenerator(client llm.Client, logger *zap.Logger) *LLMGenerator {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &LLMGenerator{client: client, logger: logger}
}

// Generate asks the model for personalized questions, falling back to the
// template on any failure.
func (g *LLMGenerator) Generate(ctx context.Context, jdText string, candidate types.Candidate) (Questions, error) {
	prompt := buildPrompt(jdText, candidate.Preview)

	raw, err := g.client.GenerateContent(ctx, prompt, llm.TierStandard)
	if err != nil {
		g.logger.Warn("interview generation failed, using template", zap.Error(err))
		return TemplateGenerator{}.Generate(ctx, jdText, candidate)
	}

	technical, behavioral, err := parseQuestions(raw)
	if err != nil {
		g.logger.Warn("interview output unparseable, using template", zap.Error(err))
		return TemplateGenerator{}.Generate(ctx, jdText, candidate)
	}

	template, _ := TemplateGenerator{}.Generate(ctx, jdText, candidate)
	return Questions{
		Technical:  technical,
		Behavioral: behavioral,
		Rubric:     template.Rubric,
		Notes:      "Model-generated question set.",
	}, nil
}

func buildPrompt(jdText, candidateSummary string) string {
	var sb strings.Builder
	sb.WriteString("You are preparing an interview for an HR team.\n")
	sb.WriteString(fmt.Sprintf("Write exactly %d technical and %d behavioral interview questions.\n", questionsPerSection, questionsPerSection))
	sb.WriteString("Format: a line 'TECHNICAL:' followed by one question per line, then a line 'BEHAVIORAL:' followed by one question per line. No numbering.\n\n")
	if jdText != "" {
		sb.WriteString("Job description:\n")
		sb.WriteString(jdText)
		sb.WriteString("\n\n")
	}
	if candidateSummary != "" {
		sb.WriteString("Candidate summary:\n")
		sb.WriteString(candidateSummary)
		sb.WriteString("\n")
	}
	return sb.String()
}

func parseQuestions(raw string) (technical, behavioral []string, err error) {
	section := ""
	for _, line := range strings.Split(raw, "\n") {
		line = strings.TrimSpace(strings.TrimPrefix(strings.TrimSpace(line), "- "))
		switch {
		case line == "":
			continue
		case strings.EqualFold(line, "TECHNICAL:"):
			section = "technical"
		case strings.EqualFold(line, "BEHAVIORAL:"):
			section = "behavioral"
		case section == "technical" && len(technical) < questionsPerSection:
			technical = append(technical, line)
		case section == "behavioral" && len(behavioral) < questionsPerSection:
			behavioral = append(behavioral, line)
		}
	}

	if len(technical) != questionsPerSection || len(behavioral) != questionsPerSection {
		return nil, nil, fmt.Errorf("expected %d+%d questions, got %d technical and %d behavioral",
			questionsPerSection, questionsPerSection, len(technical), len(behavioral))
	}
	return technical, behavioral, nil
}
