// Package insights generates workflow insights from an analysis report,
// either via a local Ollama model or a deterministic data-driven fallback.
package insights

// Insights is the generated workflow profile.
type Insights struct {
	WorkflowType            string   `json:"workflow_type"`
	PrimaryFocus            string   `json:"primary_focus"`
	WorkflowCharacteristics []string `json:"workflow_characteristics"`
	AutomationOpportunities []string `json:"automation_opportunities"`
	ProductivityInsights    []string `json:"productivity_insights"`
	SkillLevel              string   `json:"skill_level"`
	Recommendations         []string `json:"recommendations"`
	FunTitle                string   `json:"fun_title"`
	PersonalityTraits       []string `json:"personality_traits"`

	// DataDrivenInsights are always computed locally, regardless of source.
	DataDrivenInsights []string `json:"data_driven_insights"`

	// CommandDiversityScore is unique/total from the underlying data.
	CommandDiversityScore float64 `json:"command_diversity_score"`

	// ModelUsed names the generating model, or "fallback_analysis".
	ModelUsed string `json:"model_used"`

	DataSummary DataSummary `json:"data_summary"`
}

// DataSummary recaps the analyzed data alongside the insights.
type DataSummary struct {
	TotalCommands     int            `json:"total_commands"`
	UniqueCommands    int            `json:"unique_commands"`
	TimeRange         string         `json:"time_range"`
	ShellDistribution map[string]int `json:"shell_distribution"`
	TopTools          []string       `json:"top_tools"`
}
