package observability

import (
	"bytes"
	"strings"
	"testing"

	"github.com/jonathan/hr-copilot/internal/types"
	"github.com/stretchr/testify/assert"
)

func TestPrintPlan(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintPlan(&types.RoutedPlan{
		Intent:  types.IntentRankAndMatch,
		Workers: []string{types.WorkerRetrieval, types.WorkerRanking},
		Notes:   "rule-based routing",
	})
	output := buf.String()

	assert.Contains(t, output, "ROUTED PLAN")
	assert.Contains(t, output, "RANK_AND_MATCH")
	assert.Contains(t, output, "retrieval → ranking")
	assert.Contains(t, output, "rule-based routing")
}

func TestPrintPlan_Nil(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintPlan(nil)

	assert.Empty(t, buf.String())
}

func TestPrintPlan_NoWorkers(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintPlan(&types.RoutedPlan{Intent: types.IntentGeneralQA})

	assert.Contains(t, buf.String(), "answered directly")
}

func TestPrintGovernance(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintGovernance(types.GovernanceVerdict{
		Bias: "OK",
		Risk: "Risk: overconfident claim detected.",
		Role: types.RoleHR,
	})
	output := buf.String()

	assert.Contains(t, output, "GOVERNANCE")
	assert.Contains(t, output, "hr")
	assert.Contains(t, output, "overconfident")
}

func TestPrintTraces(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintTraces([]types.ToolTrace{
		{Actor: "rbac_enforcer", Input: "role=hr action=rank", Output: "allowed=true msg="},
		{Actor: "retrieval", Input: "query=rank candidates k=5", Output: "final=3"},
	})
	output := buf.String()

	assert.Contains(t, output, "TOOL TRACES")
	assert.Contains(t, output, "Total trace entries: 2")
	assert.Contains(t, output, "rbac_enforcer")
	assert.Contains(t, output, "retrieval")
}

func TestPrintTraces_Empty(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintTraces(nil)

	assert.Empty(t, buf.String())
}

func TestPrintTraces_LongLinesTruncated(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintTraces([]types.ToolTrace{
		{Actor: "retrieval", Input: strings.Repeat("x", 200)},
	})

	for _, line := range strings.Split(buf.String(), "\n") {
		assert.LessOrEqual(t, len([]rune(line)), boxWidth)
	}
}

func TestPrintWorkerResults(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintWorkerResults([]types.WorkerResult{
		{Worker: types.WorkerRetrieval, Content: "1. ID=3 | category=IT\nmore detail"},
	})
	output := buf.String()

	assert.Contains(t, output, "WORKER RESULTS")
	assert.Contains(t, output, "retrieval")
	assert.NotContains(t, output, "more detail")
}
