package analyzer

import "github.com/cmdchronicle/cmdchronicle/internal/history"

// Options tunes the analysis thresholds. Zero values fall back to the
// package defaults.
type Options struct {
	// WorkflowWindowSeconds is the maximum gap between adjacent commands
	// in the same workflow.
	WorkflowWindowSeconds int64

	// AutomationThreshold is the minimum automation score for a command
	// to be reported as a candidate.
	AutomationThreshold float64
}

func (o Options) withDefaults() Options {
	if o.WorkflowWindowSeconds <= 0 {
		o.WorkflowWindowSeconds = WorkflowWindowSeconds
	}
	if o.AutomationThreshold <= 0 {
		o.AutomationThreshold = CandidateThreshold
	}
	return o
}

// Analyze runs every analyzer over the given deduplicated records with the
// default thresholds. Empty input yields a report where every collection is
// empty and every scalar is zero; it never fails.
func Analyze(records []history.Record) Report {
	return AnalyzeWithOptions(records, Options{})
}

// AnalyzeWithOptions is Analyze with configurable thresholds.
func AnalyzeWithOptions(records []history.Record, opts Options) Report {
	if len(records) == 0 {
		return emptyReport()
	}
	opts = opts.withDefaults()

	commands := make([]string, len(records))
	for i, rec := range records {
		commands[i] = rec.Command
	}

	frequent := AnalyzeFrequency(commands)
	toolUsage := AnalyzeToolUsage(commands)

	return Report{
		FrequentCommands:     frequent,
		CommandTypes:         CountCommandTypes(commands),
		Patterns:             AnalyzePatterns(commands),
		AutomationCandidates: FindAutomationCandidates(commands, opts.AutomationThreshold),
		Workflows:            AnalyzeWorkflows(records, opts.WorkflowWindowSeconds),
		ToolUsage:            toolUsage,
		TimePatterns:         AnalyzeTimePatterns(records),
		Summary:              buildSummary(commands, frequent, toolUsage, opts.AutomationThreshold),
	}
}

func emptyReport() Report {
	return Report{
		FrequentCommands: []FrequentCommand{},
		CommandTypes:     map[string]int{},
		Patterns: Patterns{
			RepeatedSequences: []ValueCount{},
			CommonPrefixes:    []ValueCount{},
			CommonSuffixes:    []ValueCount{},
			ParameterPatterns: []ValueCount{},
		},
		AutomationCandidates: []AutomationCandidate{},
		Workflows:            []Workflow{},
		ToolUsage:            map[string]ToolStats{},
		TimePatterns: TimePatterns{
			HourlyDistribution: map[int]int{},
			DailyDistribution:  map[string]int{},
		},
		Summary: Summary{MostUsedTool: "None", MostFrequentCommand: "None"},
	}
}

// buildSummary computes the headline scalars from already-analyzed pieces.
func buildSummary(commands []string, frequent []FrequentCommand, toolUsage map[string]ToolStats, threshold float64) Summary {
	total := len(commands)
	unique := countUnique(commands)

	diversity := 0.0
	if total > 0 {
		diversity = float64(unique) / float64(total)
	}

	// Highest tool count wins; ties resolve in taxonomy order.
	mostUsedTool := "None"
	bestCount := 0
	for _, tc := range toolCategories {
		if stats, ok := toolUsage[tc.name]; ok && stats.Count > bestCount {
			bestCount = stats.Count
			mostUsedTool = tc.name
		}
	}

	mostFrequent := "None"
	if len(frequent) > 0 {
		mostFrequent = frequent[0].Command
	}

	opportunities := 0
	for _, fc := range frequent {
		if fc.AutomationPotential > threshold {
			opportunities++
		}
	}

	return Summary{
		TotalCommands:           total,
		UniqueCommands:          unique,
		CommandDiversity:        diversity,
		MostUsedTool:            mostUsedTool,
		MostFrequentCommand:     mostFrequent,
		AutomationOpportunities: opportunities,
	}
}

func countUnique(commands []string) int {
	set := make(map[string]struct{}, len(commands))
	for _, cmd := range commands {
		set[cmd] = struct{}{}
	}
	return len(set)
}
