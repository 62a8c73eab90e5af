// Package app contains the Cobra command tree for cmdchronicle.
package app

import (
	"fmt"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/cmdchronicle/cmdchronicle/internal/config"
	"github.com/cmdchronicle/cmdchronicle/internal/output"
)

var appVersion = "dev"

// SetVersion sets the application version (called from main with ldflags value).
func SetVersion(v string) {
	appVersion = v
	rootCmd.Version = v
}

var (
	flagNoColor bool
	flagJSON    bool
	flagVerbose bool
	flagConfig  string
)

var rootCmd = &cobra.Command{
	Use:   "cmdchronicle",
	Short: "Analyze your shell command history and discover patterns",
	Long: `cmdchronicle ingests your shell command history, mines it for repeated
commands and sequences, scores automation candidates, and clusters activity
into time-bounded workflows.

Typical flow: collect -> analyze -> insights.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if flagNoColor || !isatty.IsTerminal(os.Stdout.Fd()) {
			output.SetNoColor(true)
		}
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		fmt.Println("cmdchronicle", appVersion)
		fmt.Println()
		fmt.Println("Use a subcommand:")
		fmt.Println("  collect        Gather commands from shell history and active sessions")
		fmt.Println("  analyze        Mine patterns and automation opportunities")
		fmt.Println("  insights       Generate AI-powered workflow insights")
		fmt.Println("  full-analysis  Run collect, analyze, and insights in one go")
		fmt.Println("  status         Show collected data files")
		fmt.Println("  track          Snapshot and compare analysis runs over time")
		fmt.Println("  export         Export collected commands as CSV")
		return nil
	},
}

// configureOutput applies the configured output preferences. The --no-color
// flag and TTY detection take precedence and may already have disabled
// color.
func configureOutput(cfg *config.Config) {
	if !cfg.Output.Color {
		output.SetNoColor(true)
	}
	output.SetWidth(cfg.Output.Width)
}

// Execute is the entry point called from main.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Config file path (default: ~/.config/cmdchronicle/config.yaml)")
	rootCmd.PersistentFlags().BoolVar(&flagNoColor, "no-color", false, "Disable colored output")
	rootCmd.PersistentFlags().BoolVar(&flagJSON, "json", false, "Output as JSON")
	rootCmd.PersistentFlags().BoolVar(&flagVerbose, "verbose", false, "Enable verbose output")
}
