package app

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/cmdchronicle/cmdchronicle/internal/output"
)

var fullAnalysisCmd = &cobra.Command{
	Use:   "full-analysis",
	Short: "Run the complete pipeline: collect, analyze, insights",
	Long: `Run collection, pattern analysis, and insight generation in one
invocation, with each step reading the previous step's output from the
data directory.`,
	RunE: runFullAnalysis,
}

func init() {
	rootCmd.AddCommand(fullAnalysisCmd)
}

func runFullAnalysis(cmd *cobra.Command, args []string) error {
	steps := []struct {
		name string
		run  func(*cobra.Command, []string) error
	}{
		{"Collecting commands", runCollect},
		{"Analyzing patterns", runAnalyze},
		{"Generating insights", runInsights},
	}

	for i, step := range steps {
		fmt.Printf("\n %s\n", output.StyleBold.Render(fmt.Sprintf("Step %d/%d: %s", i+1, len(steps), step.name)))
		if err := step.run(cmd, args); err != nil {
			return fmt.Errorf("step %d (%s): %w", i+1, step.name, err)
		}
	}

	fmt.Printf(" %s\n\n", output.StyleSuccess.Render("Full analysis complete"))
	return nil
}
