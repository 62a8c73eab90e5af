package app

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/cmdchronicle/cmdchronicle/internal/analyzer"
	"github.com/cmdchronicle/cmdchronicle/internal/config"
	"github.com/cmdchronicle/cmdchronicle/internal/data"
	"github.com/cmdchronicle/cmdchronicle/internal/output"
	"github.com/cmdchronicle/cmdchronicle/internal/store"
)

var (
	trackPatterns string
	trackCompare  bool
)

var trackCmd = &cobra.Command{
	Use:   "track",
	Short: "Snapshot and compare analysis runs over time",
	Long: `Record the summary metrics of the latest analysis report as a run
snapshot in the local database. With --compare, diff the two most recent
snapshots to see how your command habits are shifting.`,
	RunE: runTrack,
}

func init() {
	trackCmd.Flags().StringVar(&trackPatterns, "patterns", "", "Patterns file path (default: <data_dir>/patterns.json)")
	trackCmd.Flags().BoolVar(&trackCompare, "compare", false, "Compare the two most recent snapshots")
	rootCmd.AddCommand(trackCmd)
}

func runTrack(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	configureOutput(cfg)

	patternsPath := trackPatterns
	if patternsPath == "" {
		patternsPath = filepath.Join(cfg.DataDir, "patterns.json")
	}
	report, err := data.LoadReport(patternsPath)
	if err != nil {
		return err
	}

	db, err := store.Open(config.DBPath())
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer db.Close()

	runID, err := db.CreateRun(cfg.Collection.Shell, appVersion)
	if err != nil {
		return fmt.Errorf("creating run: %w", err)
	}

	s := report.Summary
	metrics := []struct {
		name   string
		value  float64
		detail string
	}{
		{"total_commands", float64(s.TotalCommands), ""},
		{"unique_commands", float64(s.UniqueCommands), ""},
		{"command_diversity", s.CommandDiversity, ""},
		{"automation_opportunities", float64(s.AutomationOpportunities), ""},
		{"workflows", float64(len(report.Workflows)), ""},
		{"most_used_tool", float64(toolCount(report, s.MostUsedTool)), s.MostUsedTool},
	}
	for _, m := range metrics {
		if err := db.InsertMetric(runID, m.name, m.value, m.detail); err != nil {
			return fmt.Errorf("recording metric %s: %w", m.name, err)
		}
	}

	if !trackCompare {
		if flagJSON {
			enc := json.NewEncoder(os.Stdout)
			enc.SetIndent("", "  ")
			return enc.Encode(map[string]any{"run_id": runID, "metrics": len(metrics)})
		}
		fmt.Printf(" %s\n", output.StyleSuccess.Render(fmt.Sprintf("Recorded run %d (%d metrics)", runID, len(metrics))))
		return nil
	}

	diff, err := db.DiffLatestRuns()
	if err != nil {
		return fmt.Errorf("comparing runs: %w", err)
	}
	if diff == nil {
		fmt.Printf(" %s\n", output.StyleMuted.Render("Need at least two runs to compare. Run 'cmdchronicle track' again later."))
		return nil
	}

	if flagJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(diff)
	}

	renderDiff(diff)
	return nil
}

// toolCount returns the usage count of a tool from the report, or 0 when the
// tool is "None" or unknown.
func toolCount(report analyzer.Report, tool string) int {
	stats, ok := report.ToolUsage[tool]
	if !ok {
		return 0
	}
	return stats.Count
}

func renderDiff(diff *store.RunDiff) {
	fmt.Println(output.Section("Run Comparison"))

	fmt.Printf(" %s %s\n",
		output.StyleLabel.Render("Previous"),
		output.StyleMuted.Render(diff.Previous.TakenAt.Local().Format("2006-01-02 15:04")))
	fmt.Printf(" %s %s\n",
		output.StyleLabel.Render("Current"),
		output.StyleMuted.Render(diff.Current.TakenAt.Local().Format("2006-01-02 15:04")))
	fmt.Println()

	table := output.NewTable("Metric", "Previous", "Current", "Trend")
	for _, d := range diff.Deltas {
		table.AddRow(
			d.Name,
			fmt.Sprintf("%.2f", d.Previous),
			fmt.Sprintf("%.2f", d.Current),
			output.TrendArrow(d.Delta, true),
		)
	}
	table.Print()
	fmt.Println()
}
