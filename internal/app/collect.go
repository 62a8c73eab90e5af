package app

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/cmdchronicle/cmdchronicle/internal/config"
	"github.com/cmdchronicle/cmdchronicle/internal/data"
	"github.com/cmdchronicle/cmdchronicle/internal/history"
	"github.com/cmdchronicle/cmdchronicle/internal/output"
)

var (
	collectShell  string
	collectLimit  int
	collectOutput string
)

var collectCmd = &cobra.Command{
	Use:   "collect",
	Short: "Gather commands from shell history and active sessions",
	Long: `Collect command records from the shell's history file and from active
shell processes, merge and deduplicate them, and save the result for
analysis.`,
	RunE: runCollect,
}

func init() {
	collectCmd.Flags().StringVar(&collectShell, "shell", "", "Shell type (bash, zsh, fish, auto)")
	collectCmd.Flags().IntVar(&collectLimit, "limit", 0, "Maximum number of commands to collect")
	collectCmd.Flags().StringVar(&collectOutput, "output", "", "Output file path (default: <data_dir>/commands.json)")
	rootCmd.AddCommand(collectCmd)
}

func runCollect(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	configureOutput(cfg)

	shell := collectShell
	if shell == "" {
		shell = cfg.Collection.Shell
	}
	if shell == "" || shell == "auto" {
		shell = history.DetectShell()
	}

	limit := collectLimit
	if limit <= 0 {
		limit = cfg.Collection.Limit
	}

	collector := &history.Collector{
		Shell:       shell,
		Limit:       limit,
		HistoryFile: cfg.Collection.HistoryFile,
	}
	records, err := collector.Collect(cmd.Context())
	if err != nil {
		return fmt.Errorf("collecting commands: %w", err)
	}

	outPath := collectOutput
	if outPath == "" {
		outPath = filepath.Join(cfg.DataDir, "commands.json")
	}
	if err := data.SaveRecords(records, outPath); err != nil {
		return err
	}

	stats := history.ComputeStats(records)

	if flagJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(stats)
	}

	renderCollectionStats(shell, outPath, stats)
	return nil
}

func renderCollectionStats(shell, outPath string, stats history.Stats) {
	fmt.Println(output.Section("Collection"))

	fmt.Printf(" %s %s\n",
		output.StyleLabel.Render("Shell"),
		output.StyleValue.Render(shell))
	fmt.Printf(" %s %s\n",
		output.StyleLabel.Render("Commands collected"),
		output.StyleValue.Render(fmt.Sprintf("%d", stats.TotalCommands)))
	fmt.Printf(" %s %s\n",
		output.StyleLabel.Render("Unique commands"),
		output.StyleValue.Render(fmt.Sprintf("%d", stats.UniqueCommands)))

	if stats.TimeRange != nil {
		fmt.Printf(" %s %s\n",
			output.StyleLabel.Render("Time span"),
			output.StyleValue.Render(fmt.Sprintf("%.1f hours", stats.TimeRange.SpanHours)))
	}

	if len(stats.MostCommon) > 0 {
		fmt.Printf("\n %s\n", output.StyleMuted.Render("Most common:"))
		for _, cc := range stats.MostCommon {
			fmt.Printf("   %s %s\n",
				output.StyleLabel.Render(truncate(cc.Command, 40)),
				output.StyleValue.Render(fmt.Sprintf("%d", cc.Count)))
		}
	}

	fmt.Printf("\n %s\n", output.StyleMuted.Render("Saved to "+outPath))
	fmt.Println()
}

// truncate shortens a string for display, appending an ellipsis.
func truncate(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max-1]) + "…"
}
