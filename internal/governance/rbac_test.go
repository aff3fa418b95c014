package governance

import (
	"testing"

	"github.com/jonathan/hr-copilot/internal/types"
	"github.com/stretchr/testify/assert"
)

func TestEnforce_RetrieveByRole(t *testing.T) {
	tests := []struct {
		role    types.Role
		allowed bool
	}{
		{types.RoleGuest, false},
		{types.RoleManager, true},
		{types.RoleHR, true},
		{types.RoleRecruiter, true},
		{types.RoleAdmin, true},
	}

	for _, tt := range tests {
		t.Run(string(tt.role), func(t *testing.T) {
			ok, _ := Enforce(tt.role, ActionRetrieve)
			assert.Equal(t, tt.allowed, ok)
		})
	}
}

func TestEnforce_GovernanceIsAdminOnly(t *testing.T) {
	for _, role := range []types.Role{types.RoleGuest, types.RoleManager, types.RoleHR, types.RoleRecruiter} {
		ok, msg := Enforce(role, ActionGovernance)
		assert.False(t, ok, "role %s should be denied governance", role)
		assert.Contains(t, msg, "Access denied")
	}

	ok, msg := Enforce(types.RoleAdmin, ActionGovernance)
	assert.True(t, ok)
	assert.Equal(t, "OK", msg)
}

func TestEnforce_UnknownRoleDegradesToGuest(t *testing.T) {
	ok, _ := Enforce("intern", ActionRetrieve)
	assert.False(t, ok)

	ok, _ = Enforce("intern", ActionGeneralQA)
	assert.True(t, ok)

	ok, _ = Enforce("", ActionRetrieve)
	assert.False(t, ok)
}

func TestEnforce_RoleCaseInsensitive(t *testing.T) {
	ok, _ := Enforce("HR", ActionRank)
	assert.True(t, ok)
}

func TestRequiredAction_Precedence(t *testing.T) {
	tests := []struct {
		name    string
		workers []string
		want    Action
	}{
		{"empty plan", nil, ActionGeneralQA},
		{"retrieval only", []string{types.WorkerRetrieval}, ActionRetrieve},
		{"ranking outranks retrieval", []string{types.WorkerRetrieval, types.WorkerRanking}, ActionRank},
		{"skill outranks ranking", []string{types.WorkerRetrieval, types.WorkerRanking, types.WorkerSkill}, ActionSkill},
		{"interview outranks skill", []string{types.WorkerSkill, types.WorkerInterview}, ActionInterview},
		{"governance outranks everything", []string{types.WorkerRetrieval, types.WorkerGovernance}, ActionGovernance},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, RequiredAction(tt.workers))
		})
	}
}
