// Package history collects, parses, and merges shell command records from
// history files and active shell processes.
package history

// Shell identifiers for record provenance.
const (
	ShellBash    = "bash"
	ShellZsh     = "zsh"
	ShellFish    = "fish"
	ShellUnknown = "unknown"
)

// Record sources.
const (
	SourceHistoryFile   = "history_file"
	SourceActiveProcess = "active_process"
)

// Record is one captured command invocation. Records are created by the
// collectors and consumed read-only by the analyzer.
type Record struct {
	// Command is the full command line. Never empty.
	Command string `json:"command"`

	// Timestamp is epoch seconds; 0 means the source had no timestamp.
	Timestamp int64 `json:"timestamp"`

	// Shell is bash, zsh, fish, or unknown.
	Shell string `json:"shell"`

	// Source is history_file or active_process.
	Source string `json:"source"`

	// PID identifies the originating process for active_process records.
	PID int `json:"pid,omitempty"`
}
