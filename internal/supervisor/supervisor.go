// Package supervisor provides the top-level orchestration for one HR query:
// routing, RBAC gating, sequential worker dispatch, answer merging, and the
// mandatory governance pass.
package supervisor

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/jonathan/hr-copilot/internal/governance"
	"github.com/jonathan/hr-copilot/internal/interview"
	"github.com/jonathan/hr-copilot/internal/ranking"
	"github.com/jonathan/hr-copilot/internal/retrieval"
	"github.com/jonathan/hr-copilot/internal/routing"
	"github.com/jonathan/hr-copilot/internal/skills"
	"github.com/jonathan/hr-copilot/internal/types"
	"github.com/jonathan/hr-copilot/internal/vectorsearch"
)

// DefaultTopK is the retrieval depth used when none is configured.
const DefaultTopK = 5

// Config holds supervisor tuning knobs.
type Config struct {
	TopK int
}

// Supervisor orchestrates the full request pipeline. It is stateless across
// requests; every trace and candidate list lives only for one Handle call.
type Supervisor struct {
	retrieval *retrieval.Worker
	generator interview.Generator
	topK      int
	logger    *zap.Logger
}

// New creates a supervisor. A nil generator gets the deterministic template
// generator; a nil logger gets a no-op logger.
func New(searcher vectorsearch.Searcher, generator interview.Generator, cfg Config, logger *zap.Logger) *Supervisor {
	if generator == nil {
		generator = interview.TemplateGenerator{}
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	topK := cfg.TopK
	if topK <= 0 {
		topK = DefaultTopK
	}
	return &Supervisor{
		retrieval: retrieval.NewWorker(searcher),
		generator: generator,
		topK:      topK,
		logger:    logger,
	}
}

// Handle services one request end to end. Worker failures propagate as
// request failures; access denials and empty result sets are normal answers,
// not errors.
func (s *Supervisor) Handle(ctx context.Context, req types.QueryRequest) (*types.SupervisorResponse, error) {
	user := req.User.Normalize()
	plan := routing.Route(req.Query)

	s.logger.Info("routed query",
		zap.String("intent", string(plan.Intent)),
		zap.Strings("workers", plan.Workers),
		zap.String("role", string(user.Role)))

	traces := make([]types.ToolTrace, 0, 8)

	// General QA requires no elevated action: answer directly, bypass gating.
	if len(plan.Workers) == 0 {
		answer := capabilityMenu(req.Query)
		return s.finalize(answer, user.Role, traces), nil
	}

	action := governance.RequiredAction(plan.Workers)
	allowed, msg := governance.Enforce(user.Role, action)
	traces = append(traces, types.ToolTrace{
		Actor:  "rbac_enforcer",
		Input:  fmt.Sprintf("role=%s action=%s", user.Role, action),
		Output: fmt.Sprintf("allowed=%t msg=%s", allowed, msg),
	})
	if !allowed {
		return s.finalize(msg, user.Role, traces), nil
	}

	results := make([]types.WorkerResult, 0, len(plan.Workers))
	var candidates []types.Candidate

	// Retrieval runs first; its candidate list is threaded into every later
	// worker in fixed order.
	if plan.HasWorker(types.WorkerRetrieval) {
		res, err := s.retrieval.Retrieve(ctx, req.Query, s.topK, "")
		if err != nil {
			return nil, err
		}
		candidates = res.Candidates
		traces = append(traces, types.ToolTrace{
			Actor:  types.WorkerRetrieval,
			Input:  fmt.Sprintf("query=%s k=%d", summarize(req.Query), s.topK),
			Output: fmt.Sprintf("semantic=%d keyword_used=%t final=%d", res.Debug.SemanticHits, res.Debug.KeywordUsed, len(res.Candidates)),
		})
		results = append(results, types.WorkerResult{
			Worker:  types.WorkerRetrieval,
			Content: formatCandidates(candidates),
			Raw:     res,
		})
	}

	if plan.HasWorker(types.WorkerRanking) {
		jdText := ExtractJDText(req.Query)
		res := ranking.Rank(candidates, jdText)
		traces = append(traces, types.ToolTrace{
			Actor:  types.WorkerRanking,
			Input:  fmt.Sprintf("jd=%s candidates=%d", summarize(jdText), len(candidates)),
			Output: fmt.Sprintf("ranked=%d", len(res.Ranked)),
		})
		results = append(results, types.WorkerResult{
			Worker:  types.WorkerRanking,
			Content: formatRanked(res.Ranked),
			Raw:     res,
		})
		// Downstream workers consume the re-ordered list.
		candidates = unwrapRanked(res.Ranked)
	}

	if plan.HasWorker(types.WorkerSkill) {
		jdSkills := ExtractJDSkills(req.Query)
		res := skills.Analyze(candidates, jdSkills)
		traces = append(traces, types.ToolTrace{
			Actor:  types.WorkerSkill,
			Input:  fmt.Sprintf("candidates=%d jd_skills=%d", len(candidates), len(jdSkills)),
			Output: fmt.Sprintf("profiles=%d trend=%d gaps=%d", len(res.Profiles), len(res.Trend), len(res.Gaps)),
		})
		results = append(results, types.WorkerResult{
			Worker:  types.WorkerSkill,
			Content: formatSkills(res),
			Raw:     res,
		})
	}

	if plan.HasWorker(types.WorkerInterview) {
		var target types.Candidate
		if len(candidates) > 0 {
			target = candidates[0]
		}
		prepared, err := interview.Prepare(ctx, s.generator, ExtractJDText(req.Query), target)
		if err != nil {
			return nil, fmt.Errorf("interview worker: %w", err)
		}
		traces = append(traces, types.ToolTrace{
			Actor:  types.WorkerInterview,
			Input:  fmt.Sprintf("candidate=%d", target.ID),
			Output: fmt.Sprintf("technical=%d behavioral=%d rubric=%d", len(prepared.Questions.Technical), len(prepared.Questions.Behavioral), len(prepared.Questions.Rubric)),
		})
		results = append(results, types.WorkerResult{
			Worker:  types.WorkerInterview,
			Content: formatInterview(prepared),
			Raw:     prepared,
		})
	}

	if plan.HasWorker(types.WorkerGovernance) {
		report := governance.PolicyReport()
		traces = append(traces, types.ToolTrace{
			Actor:  types.WorkerGovernance,
			Input:  "policy audit",
			Output: "report generated",
		})
		results = append(results, types.WorkerResult{
			Worker:  types.WorkerGovernance,
			Content: report,
		})
	}

	answer := merge(results, plan.Intent)
	return s.finalize(answer, user.Role, traces), nil
}

// finalize runs the governance pipeline over the outgoing text: redaction
// first so it can never be skipped, then the advisory bias and risk checks.
// Every step is traced exactly once, on every path.
func (s *Supervisor) finalize(text string, role types.Role, traces []types.ToolTrace) *types.SupervisorResponse {
	redacted := governance.RedactPII(text)
	bias := governance.CheckBias(redacted)
	risk := governance.CheckRisk(redacted)

	traces = append(traces,
		types.ToolTrace{Actor: "pii_redactor", Output: "applied"},
		types.ToolTrace{Actor: "bias_checker", Output: bias},
		types.ToolTrace{Actor: "risk_detector", Output: risk},
	)

	return &types.SupervisorResponse{
		Answer: redacted,
		Governance: types.GovernanceVerdict{
			Bias: bias,
			Risk: risk,
			Role: role,
		},
		ToolTraces: traces,
	}
}

func capabilityMenu(query string) string {
	return fmt.Sprintf(
		"I can help with resume search, ranking, skill analysis, interview prep, and governance checks. Your query: %s",
		query,
	)
}

func unwrapRanked(ranked []types.RankedCandidate) []types.Candidate {
	out := make([]types.Candidate, 0, len(ranked))
	for _, r := range ranked {
		out = append(out, r.Candidate)
	}
	return out
}

// summarize bounds free text for trace entries.
func summarize(s string) string {
	const limit = 80
	if len(s) > limit {
		return s[:limit] + "..."
	}
	return s
}
