package app

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"github.com/cmdchronicle/cmdchronicle/internal/config"
	"github.com/cmdchronicle/cmdchronicle/internal/data"
	"github.com/cmdchronicle/cmdchronicle/internal/insights"
	"github.com/cmdchronicle/cmdchronicle/internal/output"
)

var (
	insightsPatterns string
	insightsCommands string
	insightsOutput   string
	insightsModel    string
)

var insightsCmd = &cobra.Command{
	Use:   "insights",
	Short: "Generate AI-powered workflow insights",
	Long: `Send the analysis report to a local Ollama model and render its
workflow insights. When the model is unreachable, deterministic data-driven
insights are generated locally instead.`,
	RunE: runInsights,
}

func init() {
	insightsCmd.Flags().StringVar(&insightsPatterns, "patterns", "", "Patterns file path (default: <data_dir>/patterns.json)")
	insightsCmd.Flags().StringVar(&insightsCommands, "commands", "", "Commands file path (default: <data_dir>/commands.json)")
	insightsCmd.Flags().StringVar(&insightsOutput, "output", "", "Insights file path (default: <data_dir>/insights.json)")
	insightsCmd.Flags().StringVar(&insightsModel, "model", "", "Ollama model to use")
	rootCmd.AddCommand(insightsCmd)
}

func runInsights(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	configureOutput(cfg)

	patternsPath := insightsPatterns
	if patternsPath == "" {
		patternsPath = filepath.Join(cfg.DataDir, "patterns.json")
	}
	report, err := data.LoadReport(patternsPath)
	if err != nil {
		return err
	}

	commandsPath := insightsCommands
	if commandsPath == "" {
		commandsPath = filepath.Join(cfg.DataDir, "commands.json")
	}
	records, err := data.LoadRecords(commandsPath)
	if err != nil {
		return err
	}

	model := insightsModel
	if model == "" {
		model = cfg.Ollama.Model
	}

	client := insights.NewClient(cfg.Ollama.BaseURL, model, time.Duration(cfg.Ollama.TimeoutSeconds)*time.Second)
	result := client.Generate(cmd.Context(), report, records)

	outPath := insightsOutput
	if outPath == "" {
		outPath = filepath.Join(cfg.DataDir, "insights.json")
	}
	if err := data.SaveJSON(result, outPath); err != nil {
		return err
	}

	if flagJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(result)
	}

	renderInsights(result, outPath)
	return nil
}

func renderInsights(in insights.Insights, outPath string) {
	fmt.Println(output.Section(in.FunTitle))

	fmt.Printf(" %s %s\n",
		output.StyleLabel.Render("Workflow type"),
		output.StyleValue.Render(in.WorkflowType))
	fmt.Printf(" %s %s\n",
		output.StyleLabel.Render("Primary focus"),
		output.StyleValue.Render(in.PrimaryFocus))
	fmt.Printf(" %s %s\n",
		output.StyleLabel.Render("Skill level"),
		output.StyleValue.Render(in.SkillLevel))
	fmt.Printf(" %s %s\n",
		output.StyleLabel.Render("Model"),
		output.StyleMuted.Render(in.ModelUsed))

	renderStringList("Characteristics:", in.WorkflowCharacteristics)
	renderStringList("Automation opportunities:", in.AutomationOpportunities)
	renderStringList("Productivity insights:", in.ProductivityInsights)
	renderStringList("Recommendations:", in.Recommendations)
	renderStringList("Data-driven observations:", in.DataDrivenInsights)

	fmt.Printf("\n %s\n\n", output.StyleMuted.Render("Saved to "+outPath))
}

func renderStringList(title string, items []string) {
	if len(items) == 0 {
		return
	}
	fmt.Printf("\n %s\n", output.StyleMuted.Render(title))
	for _, item := range items {
		fmt.Printf("   • %s\n", item)
	}
}
