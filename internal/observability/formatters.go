// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/jonathan/hr-copilot/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 5
)

// Printer handles formatted output for verbose mode
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	lines := strings.Split(content, "\n")
	for _, line := range lines {
		// Truncate long lines
		if len(line) > boxWidth-4 {
			line = line[:boxWidth-7] + "..."
		}
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, line)
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// PrintPlan outputs the routed intent and planned worker sequence.
func (p *Printer) PrintPlan(plan *types.RoutedPlan) {
	if plan == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Intent:   %s\n", plan.Intent))
	if len(plan.Workers) > 0 {
		sb.WriteString(fmt.Sprintf("Workers:  %s\n", strings.Join(plan.Workers, " → ")))
	} else {
		sb.WriteString("Workers:  (none — answered directly)\n")
	}
	if plan.Notes != "" {
		sb.WriteString(fmt.Sprintf("Notes:    %s", plan.Notes))
	}

	p.printBox("ROUTED PLAN", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintGovernance outputs the governance verdict attached to a response.
func (p *Printer) PrintGovernance(verdict types.GovernanceVerdict) {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Role:  %s\n", verdict.Role))
	sb.WriteString(fmt.Sprintf("Bias:  %s\n", clipLine(verdict.Bias, 45)))
	sb.WriteString(fmt.Sprintf("Risk:  %s", clipLine(verdict.Risk, 45)))

	p.printBox("GOVERNANCE", sb.String())
}

// PrintTraces outputs the per-actor tool trace for one request.
func (p *Printer) PrintTraces(traces []types.ToolTrace) {
	if len(traces) == 0 {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Total trace entries: %d\n\n", len(traces)))

	for i, tr := range traces {
		sb.WriteString(fmt.Sprintf("#%d  %s\n", i+1, tr.Actor))
		if tr.Input != "" {
			sb.WriteString(fmt.Sprintf("    in:  %s\n", clipLine(tr.Input, 45)))
		}
		if tr.Output != "" {
			sb.WriteString(fmt.Sprintf("    out: %s\n", clipLine(tr.Output, 45)))
		}
		if i < len(traces)-1 {
			sb.WriteString("\n")
		}
	}

	p.printBox("TOOL TRACES", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintWorkerResults outputs a short summary per worker result.
func (p *Printer) PrintWorkerResults(results []types.WorkerResult) {
	if len(results) == 0 {
		return
	}

	var sb strings.Builder
	count := min(len(results), maxItemsToShow)
	for i := 0; i < count; i++ {
		r := results[i]
		sb.WriteString(fmt.Sprintf("• %s: %s\n", r.Worker, clipLine(firstLine(r.Content), 40)))
	}
	if len(results) > maxItemsToShow {
		sb.WriteString(fmt.Sprintf("... and %d more", len(results)-maxItemsToShow))
	}

	p.printBox("WORKER RESULTS", strings.TrimSuffix(sb.String(), "\n"))
}

func clipLine(s string, limit int) string {
	if len(s) > limit {
		return s[:limit-3] + "..."
	}
	return s
}

func firstLine(s string) string {
	if idx := strings.IndexByte(s, '\n'); idx >= 0 {
		return s[:idx]
	}
	return s
}
