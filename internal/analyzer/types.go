// Package analyzer derives behavioral statistics from shell command history:
// command frequency, repeated sequences, automation candidates, workflow
// clusters, tool usage, and time-of-day patterns.
package analyzer

// Report is the top-level result of analyzing a command history batch.
// The JSON field names are a compatibility surface consumed by the insights
// and visualization layers; do not rename them.
type Report struct {
	FrequentCommands     []FrequentCommand     `json:"frequent_commands"`
	CommandTypes         map[string]int        `json:"command_types"`
	Patterns             Patterns              `json:"patterns"`
	AutomationCandidates []AutomationCandidate `json:"automation_candidates"`
	Workflows            []Workflow            `json:"workflows"`
	ToolUsage            map[string]ToolStats  `json:"tool_usage"`
	TimePatterns         TimePatterns          `json:"time_patterns"`
	Summary              Summary               `json:"summary"`
}

// FrequentCommand is one entry in the frequency ranking.
type FrequentCommand struct {
	// Command is the exact command text.
	Command string `json:"command"`

	// Count is the number of occurrences in the input.
	Count int `json:"count"`

	// Percentage is count/total*100, rounded to 2 decimals.
	Percentage float64 `json:"percentage"`

	// AutomationPotential is the heuristic automation score in [0, 1].
	AutomationPotential float64 `json:"automation_potential"`
}

// Patterns groups the structural pattern rankings.
type Patterns struct {
	// RepeatedSequences are contiguous command runs of length 2-4 that
	// occur more than once, joined with " | ".
	RepeatedSequences []ValueCount `json:"repeated_sequences"`

	// CommonPrefixes are leading word runs (1-3 words) seen more than twice.
	CommonPrefixes []ValueCount `json:"common_prefixes"`

	// CommonSuffixes are full argument tails seen more than twice.
	CommonSuffixes []ValueCount `json:"common_suffixes"`

	// ParameterPatterns are sorted flag combinations seen more than once.
	ParameterPatterns []ValueCount `json:"parameter_patterns"`
}

// ValueCount is a ranked pattern entry.
type ValueCount struct {
	Value string `json:"value"`
	Count int    `json:"count"`
}

// AutomationCandidate is a command worth turning into an alias, function,
// or script.
type AutomationCandidate struct {
	Command         string  `json:"command"`
	AutomationScore float64 `json:"automation_score"`

	// AutomationType is one of "alias", "function", or "script".
	AutomationType string `json:"automation_type"`

	// SuggestedAlias is a ready-to-paste alias definition.
	SuggestedAlias string `json:"suggested_alias"`

	// SuggestedScript is a generated script that re-runs the command.
	SuggestedScript Script `json:"suggested_script"`
}

// Script is a generated shell script suggestion.
type Script struct {
	Name    string `json:"name"`
	Content string `json:"content"`
}

// Workflow is a time-bounded cluster of temporally adjacent commands.
type Workflow struct {
	// Commands are the command texts in chronological order.
	Commands []string `json:"commands"`

	// Duration is the span in seconds between the first and last command.
	Duration int64 `json:"duration"`

	// CommandCount is len(Commands); always >= 2.
	CommandCount int `json:"command_count"`

	// WorkflowType classifies the dominant activity, e.g. "git_workflow".
	WorkflowType string `json:"workflow_type"`
}

// ToolStats captures how much activity belongs to one tool category.
type ToolStats struct {
	Count      int     `json:"count"`
	Percentage float64 `json:"percentage"`

	// PrimaryCommands lists the first tokens of matching commands,
	// deduplicated in first-seen order, capped at 5.
	PrimaryCommands []string `json:"primary_commands"`
}

// TimePatterns holds the hour-of-day and day-of-week histograms. Records
// without a timestamp are excluded from both.
type TimePatterns struct {
	// HourlyDistribution maps hour of day (0-23) to command count.
	// Only hours with activity are present.
	HourlyDistribution map[int]int `json:"hourly_distribution"`

	// DailyDistribution maps weekday name ("Monday"...) to command count.
	DailyDistribution map[string]int `json:"daily_distribution"`
}

// Summary aggregates headline scalars for the whole report.
type Summary struct {
	TotalCommands  int `json:"total_commands"`
	UniqueCommands int `json:"unique_commands"`

	// CommandDiversity is unique/total, or 0 for empty input.
	CommandDiversity float64 `json:"command_diversity"`

	// MostUsedTool is the tool category with the highest count, or "None".
	MostUsedTool string `json:"most_used_tool"`

	// MostFrequentCommand is the top-ranked command text, or "None".
	MostFrequentCommand string `json:"most_frequent_command"`

	// AutomationOpportunities counts frequent commands whose automation
	// potential exceeds the candidate threshold.
	AutomationOpportunities int `json:"automation_opportunities"`
}
