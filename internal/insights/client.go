package insights

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/cmdchronicle/cmdchronicle/internal/analyzer"
	"github.com/cmdchronicle/cmdchronicle/internal/history"
)

// Client talks to a local Ollama instance to generate workflow insights.
type Client struct {
	http    *resty.Client
	baseURL string
	model   string
}

// NewClient creates an insight client for the given Ollama endpoint.
func NewClient(baseURL, model string, timeout time.Duration) *Client {
	http := resty.New()
	http.SetTimeout(timeout)
	return &Client{
		http:    http,
		baseURL: strings.TrimRight(baseURL, "/"),
		model:   model,
	}
}

// generateRequest is the Ollama /api/generate request body.
type generateRequest struct {
	Model   string          `json:"model"`
	Prompt  string          `json:"prompt"`
	Stream  bool            `json:"stream"`
	Options generateOptions `json:"options"`
}

type generateOptions struct {
	Temperature float64 `json:"temperature"`
	TopP        float64 `json:"top_p"`
}

// generateResponse is the non-streaming Ollama response.
type generateResponse struct {
	Response string `json:"response"`
}

// Generate asks the model for insights about the report. Any failure
// (service down, bad status, unparseable reply) falls back to local
// data-driven insights rather than returning an error to the caller.
func (c *Client) Generate(ctx context.Context, report analyzer.Report, records []history.Record) Insights {
	result, err := c.generateFromModel(ctx, report)
	if err != nil {
		return Fallback(report, records)
	}

	result.ModelUsed = c.model
	result.DataDrivenInsights = dataDrivenInsights(report)
	result.CommandDiversityScore = report.Summary.CommandDiversity
	result.DataSummary = buildDataSummary(report, records)
	fillDefaults(&result)
	return result
}

func (c *Client) generateFromModel(ctx context.Context, report analyzer.Report) (Insights, error) {
	body := generateRequest{
		Model:  c.model,
		Prompt: buildPrompt(report),
		Stream: false,
		Options: generateOptions{
			Temperature: 0.7,
			TopP:        0.9,
		},
	}

	var reply generateResponse
	resp, err := c.http.R().
		SetContext(ctx).
		SetBody(body).
		SetResult(&reply).
		Post(c.baseURL + "/api/generate")
	if err != nil {
		return Insights{}, fmt.Errorf("calling ollama: %w", err)
	}
	if resp.IsError() {
		return Insights{}, fmt.Errorf("ollama returned status %d", resp.StatusCode())
	}

	return parseModelReply(reply.Response)
}

// parseModelReply extracts the JSON object embedded in the model's reply.
func parseModelReply(text string) (Insights, error) {
	start := strings.Index(text, "{")
	end := strings.LastIndex(text, "}")
	if start == -1 || end <= start {
		return Insights{}, fmt.Errorf("no JSON object in model reply")
	}

	var result Insights
	if err := json.Unmarshal([]byte(text[start:end+1]), &result); err != nil {
		return Insights{}, fmt.Errorf("parsing model reply: %w", err)
	}
	return result, nil
}

// buildPrompt renders the analysis data into the model prompt.
func buildPrompt(report analyzer.Report) string {
	var sb strings.Builder

	sb.WriteString("You are an expert command-line workflow analyst. Analyze the following command history data and provide insights about the user's work patterns, automation opportunities, and workflow characteristics.\n\n")

	fmt.Fprintf(&sb, "Data Summary:\n- Total commands: %d\n- Unique commands: %d\n\n",
		report.Summary.TotalCommands, report.Summary.UniqueCommands)

	sb.WriteString("Most frequent commands:\n")
	for i, fc := range report.FrequentCommands {
		if i == 10 {
			break
		}
		fmt.Fprintf(&sb, "- %s (used %d times, %.2f%%)\n", fc.Command, fc.Count, fc.Percentage)
	}

	sb.WriteString("\nTool usage:\n")
	for _, tool := range rankedTools(report.ToolUsage) {
		stats := report.ToolUsage[tool]
		fmt.Fprintf(&sb, "- %s: %d commands (%.1f%%)\n", tool, stats.Count, stats.Percentage)
	}

	workflowTypes := make([]string, 0, len(report.Workflows))
	for _, wf := range report.Workflows {
		workflowTypes = append(workflowTypes, wf.WorkflowType)
	}
	fmt.Fprintf(&sb, "\nWorkflow types observed:\n%s\n", strings.Join(workflowTypes, ", "))

	sb.WriteString(`
Please provide a JSON response with the following structure:
{
    "workflow_type": "classification of the user's primary workflow",
    "primary_focus": "main area of work/technology focus",
    "workflow_characteristics": ["list", "of", "key", "characteristics"],
    "automation_opportunities": ["list", "of", "automation", "suggestions"],
    "productivity_insights": ["list", "of", "productivity", "observations"],
    "skill_level": "estimated skill level (beginner/intermediate/advanced/expert)",
    "recommendations": ["list", "of", "recommendations", "for", "improvement"],
    "fun_title": "a fun, creative title for this user's workflow",
    "personality_traits": ["list", "of", "personality", "traits"]
}

Focus on being insightful, practical, and fun.
`)
	return sb.String()
}

// fillDefaults substitutes defaults for fields the model omitted.
func fillDefaults(in *Insights) {
	if in.WorkflowType == "" {
		in.WorkflowType = "general_development"
	}
	if in.PrimaryFocus == "" {
		in.PrimaryFocus = "command_line_automation"
	}
	if len(in.WorkflowCharacteristics) == 0 {
		in.WorkflowCharacteristics = []string{"command-line focused"}
	}
	if len(in.AutomationOpportunities) == 0 {
		in.AutomationOpportunities = []string{"alias creation"}
	}
	if len(in.ProductivityInsights) == 0 {
		in.ProductivityInsights = []string{"frequent command repetition"}
	}
	if in.SkillLevel == "" {
		in.SkillLevel = "intermediate"
	}
	if len(in.Recommendations) == 0 {
		in.Recommendations = []string{"create aliases for frequent commands"}
	}
	if in.FunTitle == "" {
		in.FunTitle = "The Command Line Explorer"
	}
	if len(in.PersonalityTraits) == 0 {
		in.PersonalityTraits = []string{"efficient"}
	}
}
