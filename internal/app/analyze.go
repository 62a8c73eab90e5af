package app

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/spf13/cobra"

	"github.com/cmdchronicle/cmdchronicle/internal/analyzer"
	"github.com/cmdchronicle/cmdchronicle/internal/config"
	"github.com/cmdchronicle/cmdchronicle/internal/data"
	"github.com/cmdchronicle/cmdchronicle/internal/output"
)

var (
	analyzeInput  string
	analyzeOutput string
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze",
	Short: "Mine patterns and automation opportunities",
	Long: `Analyze collected command records: frequency ranking, repeated
sequences, automation candidates, workflow clusters, tool usage, and
time-of-day patterns. The resulting report feeds the insights command.`,
	RunE: runAnalyze,
}

func init() {
	analyzeCmd.Flags().StringVar(&analyzeInput, "input", "", "Commands file path (default: <data_dir>/commands.json)")
	analyzeCmd.Flags().StringVar(&analyzeOutput, "output", "", "Patterns file path (default: <data_dir>/patterns.json)")
	rootCmd.AddCommand(analyzeCmd)
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	configureOutput(cfg)

	inPath := analyzeInput
	if inPath == "" {
		inPath = filepath.Join(cfg.DataDir, "commands.json")
	}
	records, err := data.LoadRecords(inPath)
	if err != nil {
		return err
	}

	report := analyzer.AnalyzeWithOptions(records, analyzer.Options{
		WorkflowWindowSeconds: int64(cfg.Analysis.WorkflowWindowSeconds),
		AutomationThreshold:   cfg.Analysis.AutomationThreshold,
	})

	outPath := analyzeOutput
	if outPath == "" {
		outPath = filepath.Join(cfg.DataDir, "patterns.json")
	}
	if err := data.SaveReport(report, outPath); err != nil {
		return err
	}

	if flagJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(report)
	}

	renderSummary(report.Summary)
	renderFrequentCommands(report.FrequentCommands)
	renderToolUsage(report.ToolUsage)
	renderAutomationCandidates(report.AutomationCandidates)
	renderWorkflows(report.Workflows)
	renderPatterns(report.Patterns)
	renderTimePatterns(report.TimePatterns)

	fmt.Printf(" %s\n\n", output.StyleMuted.Render("Saved to "+outPath))
	return nil
}

func renderSummary(s analyzer.Summary) {
	fmt.Println(output.Section("Summary"))

	fmt.Printf(" %s %s\n",
		output.StyleLabel.Render("Total commands"),
		output.StyleValue.Render(fmt.Sprintf("%d", s.TotalCommands)))
	fmt.Printf(" %s %s\n",
		output.StyleLabel.Render("Unique commands"),
		output.StyleValue.Render(fmt.Sprintf("%d", s.UniqueCommands)))
	fmt.Printf(" %s %s\n",
		output.StyleLabel.Render("Command diversity"),
		output.StyleValue.Render(fmt.Sprintf("%.2f", s.CommandDiversity)))
	fmt.Printf(" %s %s\n",
		output.StyleLabel.Render("Most used tool"),
		output.StyleValue.Render(s.MostUsedTool))
	fmt.Printf(" %s %s\n",
		output.StyleLabel.Render("Automation opportunities"),
		output.StyleValue.Render(fmt.Sprintf("%d", s.AutomationOpportunities)))
	fmt.Println()
}

func renderFrequentCommands(frequent []analyzer.FrequentCommand) {
	fmt.Println(output.Section("Frequent Commands"))

	if len(frequent) == 0 {
		fmt.Printf(" %s\n\n", output.StyleMuted.Render("No commands to analyze"))
		return
	}

	table := output.NewTable("Command", "Count", "Share", "Automation")
	limit := 10
	if len(frequent) < limit {
		limit = len(frequent)
	}
	for _, fc := range frequent[:limit] {
		table.AddRow(
			truncate(fc.Command, 44),
			fmt.Sprintf("%d", fc.Count),
			fmt.Sprintf("%.2f%%", fc.Percentage),
			output.ScoreBar(fc.AutomationPotential, 10),
		)
	}
	table.Print()
	fmt.Println()
}

func renderToolUsage(usage map[string]analyzer.ToolStats) {
	fmt.Println(output.Section("Tool Usage"))

	if len(usage) == 0 {
		fmt.Printf(" %s\n\n", output.StyleMuted.Render("No tool activity detected"))
		return
	}

	tools := make([]string, 0, len(usage))
	for tool := range usage {
		tools = append(tools, tool)
	}
	sort.Slice(tools, func(i, j int) bool {
		ci, cj := usage[tools[i]].Count, usage[tools[j]].Count
		if ci != cj {
			return ci > cj
		}
		return tools[i] < tools[j]
	})

	for _, tool := range tools {
		stats := usage[tool]
		fmt.Printf(" %s %s %s\n",
			output.StyleLabel.Render(tool),
			output.StyleValue.Render(fmt.Sprintf("%d", stats.Count)),
			output.StyleMuted.Render(fmt.Sprintf("(%.1f%%)", stats.Percentage)))
	}
	fmt.Println()
}

func renderAutomationCandidates(candidates []analyzer.AutomationCandidate) {
	fmt.Println(output.Section("Automation Candidates"))

	if len(candidates) == 0 {
		fmt.Printf(" %s\n\n", output.StyleMuted.Render("No automation candidates found"))
		return
	}

	limit := 5
	if len(candidates) < limit {
		limit = len(candidates)
	}
	for _, c := range candidates[:limit] {
		fmt.Printf(" %s %s %s\n",
			output.ScoreBar(c.AutomationScore, 10),
			output.StyleBold.Render(truncate(c.Command, 48)),
			output.StyleMuted.Render("("+c.AutomationType+")"))
		fmt.Printf("   %s\n", output.StyleMuted.Render(c.SuggestedAlias))
	}
	fmt.Println()
}

func renderWorkflows(workflows []analyzer.Workflow) {
	fmt.Println(output.Section("Workflows"))

	if len(workflows) == 0 {
		fmt.Printf(" %s\n\n", output.StyleMuted.Render("No workflows detected"))
		return
	}

	for _, wf := range workflows {
		fmt.Printf(" %s %s %s\n",
			output.StyleBold.Render(wf.WorkflowType),
			output.StyleValue.Render(fmt.Sprintf("%d cmds", wf.CommandCount)),
			output.StyleMuted.Render(fmt.Sprintf("%ds", wf.Duration)))
		preview := wf.Commands
		if len(preview) > 3 {
			preview = preview[:3]
		}
		for _, cmd := range preview {
			fmt.Printf("   %s\n", output.StyleMuted.Render(truncate(cmd, 60)))
		}
	}
	fmt.Println()
}

func renderPatterns(p analyzer.Patterns) {
	fmt.Println(output.Section("Patterns"))

	renderPatternList("Repeated sequences:", p.RepeatedSequences)
	renderPatternList("Common prefixes:", p.CommonPrefixes)
	renderPatternList("Parameter patterns:", p.ParameterPatterns)
	fmt.Println()
}

func renderPatternList(title string, entries []analyzer.ValueCount) {
	if len(entries) == 0 {
		return
	}
	fmt.Printf(" %s\n", output.StyleMuted.Render(title))
	limit := 5
	if len(entries) < limit {
		limit = len(entries)
	}
	for _, e := range entries[:limit] {
		fmt.Printf("   %s %s\n",
			output.StyleLabel.Render(truncate(e.Value, 50)),
			output.StyleValue.Render(fmt.Sprintf("%d", e.Count)))
	}
}

func renderTimePatterns(tp analyzer.TimePatterns) {
	if len(tp.HourlyDistribution) == 0 {
		return
	}
	fmt.Println(output.Section("Activity by Hour"))

	maxCount := 0
	for _, count := range tp.HourlyDistribution {
		if count > maxCount {
			maxCount = count
		}
	}
	for hour := 0; hour < 24; hour++ {
		count, ok := tp.HourlyDistribution[hour]
		if !ok {
			continue
		}
		fmt.Printf(" %s %s %s\n",
			output.StyleMuted.Render(fmt.Sprintf("%02d:00", hour)),
			output.ScoreBar(float64(count)/float64(maxCount), 20),
			output.StyleValue.Render(fmt.Sprintf("%d", count)))
	}
	fmt.Println()
}
