package history

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"
)

// defaultHistoryFiles maps each shell to its conventional history file,
// relative to the user's home directory.
var defaultHistoryFiles = map[string]string{
	ShellBash: ".bash_history",
	ShellZsh:  ".zsh_history",
	ShellFish: ".local/share/fish/fish_history",
}

// shellProcessNames maps each shell to the process names its sessions run as.
var shellProcessNames = map[string][]string{
	ShellBash: {"bash"},
	ShellZsh:  {"zsh"},
	ShellFish: {"fish"},
}

// Collector gathers command records from history files and active shell
// processes.
type Collector struct {
	// Shell is bash, zsh, or fish. Use DetectShell for auto-detection.
	Shell string

	// Limit caps the merged result; 0 means DefaultLimit.
	Limit int

	// HistoryFile overrides the shell's default history file path.
	HistoryFile string

	// ProcDir overrides /proc, for tests.
	ProcDir string

	// now overrides the clock, for tests.
	now func() time.Time
}

// DetectShell infers the user's shell from $SHELL, defaulting to bash.
func DetectShell() string {
	shell := strings.ToLower(os.Getenv("SHELL"))
	switch {
	case strings.Contains(shell, "zsh"):
		return ShellZsh
	case strings.Contains(shell, "fish"):
		return ShellFish
	default:
		return ShellBash
	}
}

// Collect gathers records from the shell's history file and from active
// shell processes concurrently, then merges and deduplicates them. A source
// that is missing or unreadable contributes nothing rather than failing the
// collection.
func (c *Collector) Collect(ctx context.Context) ([]Record, error) {
	limit := c.Limit
	if limit <= 0 {
		limit = DefaultLimit
	}

	var mu sync.Mutex
	var fromHistory, fromProcesses []Record

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		records, err := c.collectFromHistoryFile(limit)
		if err != nil {
			// Missing or unreadable history is not fatal.
			return nil
		}
		mu.Lock()
		fromHistory = records
		mu.Unlock()
		return nil
	})
	g.Go(func() error {
		records := c.collectFromProcesses(limit / 2)
		mu.Lock()
		fromProcesses = records
		mu.Unlock()
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	return Merge(limit, fromHistory, fromProcesses), nil
}

// collectFromHistoryFile reads and parses the shell's history file.
func (c *Collector) collectFromHistoryFile(limit int) ([]Record, error) {
	path := c.HistoryFile
	if path == "" {
		rel, ok := defaultHistoryFiles[c.Shell]
		if !ok {
			return nil, nil
		}
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, err
		}
		path = filepath.Join(home, rel)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	switch c.Shell {
	case ShellZsh:
		return ParseZshHistory(f, limit)
	case ShellFish:
		return ParseFishHistory(f, c.clock(), limit)
	default:
		return ParseBashHistory(f, c.clock(), limit)
	}
}

// collectFromProcesses scans /proc for running shell sessions and captures
// the command line each one was started with. Processes that disappear or
// deny access mid-scan are skipped.
func (c *Collector) collectFromProcesses(limit int) []Record {
	procDir := c.ProcDir
	if procDir == "" {
		procDir = "/proc"
	}
	names := shellProcessNames[c.Shell]
	if len(names) == 0 {
		return nil
	}

	entries, err := os.ReadDir(procDir)
	if err != nil {
		return nil
	}

	var records []Record
	for _, entry := range entries {
		if limit > 0 && len(records) >= limit {
			break
		}
		pid, ok := parsePID(entry.Name())
		if !ok {
			continue
		}

		comm, err := os.ReadFile(filepath.Join(procDir, entry.Name(), "comm"))
		if err != nil || !containsName(names, strings.TrimSpace(string(comm))) {
			continue
		}

		cmdline, err := os.ReadFile(filepath.Join(procDir, entry.Name(), "cmdline"))
		if err != nil {
			continue
		}
		args := splitCmdline(cmdline)
		if len(args) < 2 {
			continue
		}
		command := strings.Join(args[1:], " ")
		if Ignored(command) {
			continue
		}

		// Process start time approximated by the /proc entry's mtime.
		timestamp := int64(0)
		if info, err := os.Stat(filepath.Join(procDir, entry.Name())); err == nil {
			timestamp = info.ModTime().Unix()
		}

		records = append(records, Record{
			Command:   command,
			Timestamp: timestamp,
			Shell:     c.Shell,
			Source:    SourceActiveProcess,
			PID:       pid,
		})
	}
	return records
}

func (c *Collector) clock() time.Time {
	if c.now != nil {
		return c.now()
	}
	return time.Now()
}

func parsePID(name string) (int, bool) {
	pid := 0
	for _, r := range name {
		if r < '0' || r > '9' {
			return 0, false
		}
		pid = pid*10 + int(r-'0')
	}
	return pid, name != ""
}

func containsName(names []string, name string) bool {
	for _, n := range names {
		if n == name {
			return true
		}
	}
	return false
}

// splitCmdline splits a /proc cmdline buffer on NUL separators.
func splitCmdline(data []byte) []string {
	parts := strings.Split(strings.TrimRight(string(data), "\x00"), "\x00")
	args := parts[:0]
	for _, p := range parts {
		if p != "" {
			args = append(args, p)
		}
	}
	return args
}
