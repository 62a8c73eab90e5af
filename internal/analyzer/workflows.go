package analyzer

import (
	"sort"
	"strings"

	"github.com/cmdchronicle/cmdchronicle/internal/history"
)

const (
	// WorkflowWindowSeconds is the maximum gap between adjacent commands
	// in the same workflow.
	WorkflowWindowSeconds = 300

	// maxWorkflows caps the number of reported workflows.
	maxWorkflows = 10
)

// AnalyzeWorkflows groups timestamped records into time-bounded clusters and
// classifies each cluster's dominant activity. Records are sorted ascending
// by timestamp (stable, so untimestamped records keep input order at the
// front), then grouped greedily: a gap over windowSeconds closes the current
// group, which is kept only if it has at least two members. A windowSeconds
// of zero or less uses WorkflowWindowSeconds.
func AnalyzeWorkflows(records []history.Record, windowSeconds int64) []Workflow {
	if len(records) == 0 {
		return []Workflow{}
	}
	if windowSeconds <= 0 {
		windowSeconds = WorkflowWindowSeconds
	}

	sorted := make([]history.Record, len(records))
	copy(sorted, records)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Timestamp < sorted[j].Timestamp
	})

	workflows := []Workflow{}
	group := []history.Record{sorted[0]}

	flush := func() {
		if len(group) >= 2 && len(workflows) < maxWorkflows {
			workflows = append(workflows, buildWorkflow(group))
		}
	}

	for _, rec := range sorted[1:] {
		if rec.Timestamp-group[len(group)-1].Timestamp <= windowSeconds {
			group = append(group, rec)
			continue
		}
		flush()
		group = []history.Record{rec}
	}
	flush()

	return workflows
}

// buildWorkflow assembles a Workflow from a group of at least two records.
func buildWorkflow(group []history.Record) Workflow {
	commands := make([]string, len(group))
	for i, rec := range group {
		commands[i] = rec.Command
	}
	return Workflow{
		Commands:     commands,
		Duration:     group[len(group)-1].Timestamp - group[0].Timestamp,
		CommandCount: len(group),
		WorkflowType: classifyWorkflow(commands),
	}
}

// classifyWorkflow picks the workflow type by keyword containment against
// the joined lower-cased command text, in fixed rule priority order.
func classifyWorkflow(commands []string) string {
	text := strings.ToLower(strings.Join(commands, " "))
	for _, rule := range workflowRules {
		if matchesAnyKeyword(text, rule.keywords) {
			return rule.workflowType
		}
	}
	return generalWorkflow
}
