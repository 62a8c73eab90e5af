package app

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/cmdchronicle/cmdchronicle/internal/config"
	"github.com/cmdchronicle/cmdchronicle/internal/data"
	"github.com/cmdchronicle/cmdchronicle/internal/output"
)

var (
	exportInput  string
	exportOutput string
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export collected commands as CSV",
	Long: `Export the collected command records to a CSV file for use in
spreadsheets or external analysis tools.`,
	RunE: runExport,
}

func init() {
	exportCmd.Flags().StringVar(&exportInput, "input", "", "Commands file path (default: <data_dir>/commands.json)")
	exportCmd.Flags().StringVar(&exportOutput, "output", "", "CSV file path (default: <data_dir>/commands.csv)")
	rootCmd.AddCommand(exportCmd)
}

func runExport(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	configureOutput(cfg)

	inPath := exportInput
	if inPath == "" {
		inPath = filepath.Join(cfg.DataDir, "commands.json")
	}
	records, err := data.LoadRecords(inPath)
	if err != nil {
		return err
	}

	outPath := exportOutput
	if outPath == "" {
		outPath = filepath.Join(cfg.DataDir, "commands.csv")
	}
	if err := data.ExportCSV(records, outPath); err != nil {
		return err
	}

	fmt.Printf(" %s\n", output.StyleSuccess.Render(fmt.Sprintf("Exported %d commands to %s", len(records), outPath)))
	return nil
}
