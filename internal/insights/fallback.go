package insights

import (
	"fmt"
	"sort"
	"strings"

	"github.com/cmdchronicle/cmdchronicle/internal/analyzer"
	"github.com/cmdchronicle/cmdchronicle/internal/history"
)

// archetype scores a workflow classification by tool-category keywords.
type archetype struct {
	name     string
	keywords []string
}

// workflowArchetypes classify the overall workflow from tool usage. Order
// breaks score ties deterministically.
var workflowArchetypes = []archetype{
	{"frontend_developer", []string{"npm", "yarn", "node", "react", "vue", "angular", "webpack", "babel"}},
	{"backend_developer", []string{"python", "django", "flask", "node", "express", "java", "spring"}},
	{"devops_engineer", []string{"docker", "kubernetes", "kubectl", "terraform", "ansible", "jenkins"}},
	{"data_scientist", []string{"python", "jupyter", "pandas", "numpy", "matplotlib", "r", "sql"}},
	{"system_administrator", []string{"sudo", "systemctl", "apt", "yum", "ssh", "rsync", "cron"}},
	{"security_analyst", []string{"nmap", "wireshark", "tcpdump", "openssl", "gpg", "hash"}},
}

var funTitles = map[string]string{
	"frontend_developer":   "The Frontend Wizard",
	"backend_developer":    "The Backend Architect",
	"devops_engineer":      "The Infrastructure Maestro",
	"data_scientist":       "The Data Explorer",
	"system_administrator": "The System Guardian",
	"security_analyst":     "The Security Sentinel",
	"general_development":  "The Command Line Explorer",
}

// Fallback generates deterministic, data-driven insights from the report
// alone. It is used whenever the model service is unavailable or returns
// garbage, and never fails.
func Fallback(report analyzer.Report, records []history.Record) Insights {
	workflowType := classifyFromTools(report.ToolUsage)

	return Insights{
		WorkflowType:            workflowType,
		PrimaryFocus:            primaryFocus(report.ToolUsage),
		WorkflowCharacteristics: characteristics(report),
		AutomationOpportunities: automationOpportunities(report),
		ProductivityInsights:    productivityInsights(report),
		SkillLevel:              estimateSkillLevel(report),
		Recommendations: []string{
			"Create aliases for frequently used commands",
			"Consider automation scripts for repetitive tasks",
			"Explore shell configuration improvements",
		},
		FunTitle:              funTitle(workflowType),
		PersonalityTraits:     personalityTraits(report),
		DataDrivenInsights:    dataDrivenInsights(report),
		CommandDiversityScore: report.Summary.CommandDiversity,
		ModelUsed:             "fallback_analysis",
		DataSummary:           buildDataSummary(report, records),
	}
}

// classifyFromTools scores each archetype by summing the counts of tool
// categories whose name contains an archetype keyword.
func classifyFromTools(toolUsage map[string]analyzer.ToolStats) string {
	if len(toolUsage) == 0 {
		return "general_development"
	}

	best := "general_development"
	bestScore := 0
	for _, a := range workflowArchetypes {
		score := 0
		for _, kw := range a.keywords {
			for tool, stats := range toolUsage {
				if strings.Contains(strings.ToLower(tool), kw) {
					score += stats.Count
				}
			}
		}
		if score > bestScore {
			bestScore = score
			best = a.name
		}
	}
	return best
}

// primaryFocus is the tool category with the highest count.
func primaryFocus(toolUsage map[string]analyzer.ToolStats) string {
	tools := rankedTools(toolUsage)
	if len(tools) == 0 {
		return "command_line_automation"
	}
	return tools[0]
}

func characteristics(report analyzer.Report) []string {
	var out []string
	if _, ok := report.ToolUsage["git"]; ok {
		out = append(out, "version control focused")
	}
	if _, ok := report.ToolUsage["docker"]; ok {
		out = append(out, "containerization aware")
	}
	if _, ok := report.ToolUsage["python"]; ok {
		out = append(out, "python development")
	}
	if _, ok := report.ToolUsage["node"]; ok {
		out = append(out, "javascript/node.js development")
	}

	if report.Summary.CommandDiversity > 0.5 {
		out = append(out, "diverse command usage")
	} else {
		out = append(out, "focused command patterns")
	}
	return out
}

func automationOpportunities(report analyzer.Report) []string {
	var out []string
	if n := len(report.FrequentCommands); n > 0 {
		if n > 5 {
			n = 5
		}
		out = append(out, fmt.Sprintf("Create aliases for %d most frequent commands", n))
	}
	if n := len(report.AutomationCandidates); n > 0 {
		if n > 3 {
			n = 3
		}
		out = append(out, fmt.Sprintf("Automate %d complex command sequences", n))
	}
	return out
}

func productivityInsights(report analyzer.Report) []string {
	var out []string
	switch {
	case report.Summary.CommandDiversity < 0.3:
		out = append(out, "High command repetition suggests automation opportunities")
	case report.Summary.CommandDiversity > 0.7:
		out = append(out, "Diverse command usage indicates exploratory work patterns")
	}
	return out
}

// estimateSkillLevel applies a simple heuristic over command complexity and
// tool breadth.
func estimateSkillLevel(report analyzer.Report) string {
	if report.Summary.TotalCommands == 0 {
		return "beginner"
	}

	complex := 0
	counted := 0
	for _, fc := range report.FrequentCommands {
		if len(strings.Fields(fc.Command)) > 3 {
			complex += fc.Count
		}
		counted += fc.Count
	}
	if counted == 0 {
		return "beginner"
	}

	ratio := float64(complex) / float64(counted)
	switch {
	case ratio > 0.3 && len(report.ToolUsage) > 3:
		return "advanced"
	case ratio > 0.1 && len(report.ToolUsage) > 1:
		return "intermediate"
	default:
		return "beginner"
	}
}

func funTitle(workflowType string) string {
	if title, ok := funTitles[workflowType]; ok {
		return title
	}
	return "The Terminal Master"
}

func personalityTraits(report analyzer.Report) []string {
	var traits []string
	if _, ok := report.ToolUsage["git"]; ok {
		traits = append(traits, "version control conscious")
	}
	if _, ok := report.ToolUsage["docker"]; ok {
		traits = append(traits, "containerization minded")
	}
	if report.Summary.CommandDiversity > 0.5 {
		traits = append(traits, "exploratory")
	} else {
		traits = append(traits, "focused")
	}
	return traits
}

// dataDrivenInsights derives observations directly from the report numbers.
func dataDrivenInsights(report analyzer.Report) []string {
	var out []string

	switch {
	case report.Summary.TotalCommands == 0:
	case report.Summary.CommandDiversity < 0.3:
		out = append(out, "Low command diversity suggests heavy reliance on a few commands")
	case report.Summary.CommandDiversity > 0.7:
		out = append(out, "High command diversity indicates exploratory and varied work patterns")
	}

	if tools := rankedTools(report.ToolUsage); len(tools) > 0 {
		top := report.ToolUsage[tools[0]]
		out = append(out, fmt.Sprintf("Primary tool focus: %s (%.1f%% of commands)", tools[0], top.Percentage))
	}

	if wf := mostCommonWorkflowType(report.Workflows); wf != "" {
		out = append(out, fmt.Sprintf("Most common workflow type: %s", wf))
	}
	return out
}

func mostCommonWorkflowType(workflows []analyzer.Workflow) string {
	if len(workflows) == 0 {
		return ""
	}
	counts := make(map[string]int)
	var order []string
	for _, wf := range workflows {
		if _, seen := counts[wf.WorkflowType]; !seen {
			order = append(order, wf.WorkflowType)
		}
		counts[wf.WorkflowType]++
	}
	best := order[0]
	for _, wt := range order[1:] {
		if counts[wt] > counts[best] {
			best = wt
		}
	}
	return best
}

// rankedTools sorts tool categories by count descending, name ascending on
// ties, for deterministic output.
func rankedTools(toolUsage map[string]analyzer.ToolStats) []string {
	tools := make([]string, 0, len(toolUsage))
	for tool := range toolUsage {
		tools = append(tools, tool)
	}
	sort.Slice(tools, func(i, j int) bool {
		ci, cj := toolUsage[tools[i]].Count, toolUsage[tools[j]].Count
		if ci != cj {
			return ci > cj
		}
		return tools[i] < tools[j]
	})
	return tools
}

// buildDataSummary recaps the analyzed batch.
func buildDataSummary(report analyzer.Report, records []history.Record) DataSummary {
	shells := make(map[string]int)
	var earliest, latest int64
	for _, rec := range records {
		shell := rec.Shell
		if shell == "" {
			shell = history.ShellUnknown
		}
		shells[shell]++

		if rec.Timestamp == 0 {
			continue
		}
		if earliest == 0 || rec.Timestamp < earliest {
			earliest = rec.Timestamp
		}
		if rec.Timestamp > latest {
			latest = rec.Timestamp
		}
	}

	timeRange := "Unknown"
	if earliest != 0 {
		spanHours := float64(latest-earliest) / 3600
		if spanHours < 24 {
			timeRange = fmt.Sprintf("%.1f hours", spanHours)
		} else {
			timeRange = fmt.Sprintf("%.1f days", spanHours/24)
		}
	}

	topTools := rankedTools(report.ToolUsage)
	if len(topTools) > 3 {
		topTools = topTools[:3]
	}

	return DataSummary{
		TotalCommands:     report.Summary.TotalCommands,
		UniqueCommands:    report.Summary.UniqueCommands,
		TimeRange:         timeRange,
		ShellDistribution: shells,
		TopTools:          topTools,
	}
}
