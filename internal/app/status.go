package app

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/cmdchronicle/cmdchronicle/internal/config"
	"github.com/cmdchronicle/cmdchronicle/internal/data"
	"github.com/cmdchronicle/cmdchronicle/internal/output"
)

var statusCleanupDays int

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show collected data files",
	RunE:  runStatus,
}

func init() {
	statusCmd.Flags().IntVar(&statusCleanupDays, "cleanup-days", 0, "Delete data files older than this many days before listing")
	rootCmd.AddCommand(statusCmd)
}

func runStatus(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	configureOutput(cfg)

	if statusCleanupDays > 0 {
		deleted, err := data.Cleanup(cfg.DataDir, time.Duration(statusCleanupDays)*24*time.Hour)
		if err != nil {
			return fmt.Errorf("cleaning up old data: %w", err)
		}
		if deleted > 0 {
			fmt.Printf(" %s\n", output.StyleWarning.Render(fmt.Sprintf("Deleted %d file(s) older than %d days", deleted, statusCleanupDays)))
		}
	}

	files, err := data.Summarize(cfg.DataDir)
	if err != nil {
		return fmt.Errorf("reading data directory: %w", err)
	}

	if flagJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(files)
	}

	fmt.Println(output.Section("Data Files"))

	if len(files) == 0 {
		fmt.Printf(" %s\n\n", output.StyleMuted.Render("No data collected yet. Run 'cmdchronicle collect' first."))
		return nil
	}

	table := output.NewTable("File", "Type", "Size", "Modified")
	for _, f := range files {
		table.AddRow(
			f.Name,
			f.Type,
			fmt.Sprintf("%.1f KB", f.SizeKB),
			f.Modified.Format("2006-01-02 15:04"),
		)
	}
	table.Print()
	fmt.Println()
	return nil
}
