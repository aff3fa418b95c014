// Package governance provides the access-control and answer-hygiene
// primitives applied to every request: the RBAC policy table, PII redaction,
// and the bias and risk detectors.
package governance

import (
	"fmt"
	"strings"

	"github.com/jonathan/hr-copilot/internal/types"
)

// Action is the elevated capability a routed plan requires.
type Action string

// Action constants enumerate the gated capabilities.
const (
	ActionGeneralQA  Action = "general_qa"
	ActionRetrieve   Action = "retrieve"
	ActionRank       Action = "rank"
	ActionSkill      Action = "skill"
	ActionInterview  Action = "interview"
	ActionGovernance Action = "governance"
)

// allowedActions is the static role → permitted-action policy table.
// Roles not listed here degrade to general_qa only.
var allowedActions = map[types.Role]map[Action]bool{
	types.RoleGuest:     actionSet(ActionGeneralQA),
	types.RoleManager:   actionSet(ActionGeneralQA, ActionRetrieve),
	types.RoleHR:        actionSet(ActionGeneralQA, ActionRetrieve, ActionSkill, ActionRank, ActionInterview),
	types.RoleRecruiter: actionSet(ActionGeneralQA, ActionRetrieve, ActionSkill, ActionRank, ActionInterview),
	types.RoleAdmin:     actionSet(ActionGeneralQA, ActionRetrieve, ActionSkill, ActionRank, ActionInterview, ActionGovernance),
}

func actionSet(actions ...Action) map[Action]bool {
	set := make(map[Action]bool, len(actions))
	for _, a := range actions {
		set[a] = true
	}
	return set
}

// Enforce checks the policy table for the given role and action. Empty or
// unknown roles fall back to the guest policy. The returned message is
// human-readable and safe to surface as the answer on denial.
func Enforce(role types.Role, action Action) (bool, string) {
	normalized := types.Role(strings.ToLower(string(role)))
	if normalized == "" {
		normalized = types.RoleGuest
	}

	allowed, ok := allowedActions[normalized]
	if !ok {
		allowed = allowedActions[types.RoleGuest]
	}

	if !allowed[action] {
		return false, fmt.Sprintf("Access denied for role=%q to action=%q.", normalized, action)
	}
	return true, "OK"
}

// RequiredAction derives the gated action from a worker plan by fixed
// precedence: governance > interview > skill > rank > retrieve > general_qa.
func RequiredAction(workers []string) Action {
	precedence := []struct {
		worker string
		action Action
	}{
		{types.WorkerGovernance, ActionGovernance},
		{types.WorkerInterview, ActionInterview},
		{types.WorkerSkill, ActionSkill},
		{types.WorkerRanking, ActionRank},
		{types.WorkerRetrieval, ActionRetrieve},
	}

	for _, p := range precedence {
		for _, w := range workers {
			if w == p.worker {
				return p.action
			}
		}
	}
	return ActionGeneralQA
}
