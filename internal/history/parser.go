package history

import (
	"bufio"
	"fmt"
	"io"
	"regexp"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// zshExtendedLine matches zsh extended history: ": <timestamp>:<duration>;<command>".
var zshExtendedLine = regexp.MustCompile(`^:\s*(\d+):(\d+);(.*)$`)

// ParseZshHistory parses a zsh history stream. Lines in extended format
// carry their own timestamp; plain lines produce records without one.
// Only the trailing limit entries are kept (0 means no limit).
func ParseZshHistory(r io.Reader, limit int) ([]Record, error) {
	var records []Record

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		var command string
		var timestamp int64
		if m := zshExtendedLine.FindStringSubmatch(line); m != nil {
			ts, err := strconv.ParseInt(m[1], 10, 64)
			if err == nil {
				timestamp = ts
			}
			command = strings.TrimSpace(m[3])
		} else if !strings.HasPrefix(line, "#") {
			command = line
		}

		if command == "" || Ignored(command) {
			continue
		}
		records = append(records, Record{
			Command:   command,
			Timestamp: timestamp,
			Shell:     ShellZsh,
			Source:    SourceHistoryFile,
		})
	}
	if err := scanner.Err(); err != nil {
		return records, fmt.Errorf("reading zsh history: %w", err)
	}
	return tail(records, limit), nil
}

// ParseBashHistory parses a bash history stream. Bash history carries no
// timestamps by default, so entries are estimated to be one minute apart,
// with the newest (last) line anchored at now.
func ParseBashHistory(r io.Reader, now time.Time, limit int) ([]Record, error) {
	var records []Record

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") || Ignored(line) {
			continue
		}
		records = append(records, Record{
			Command: line,
			Shell:   ShellBash,
			Source:  SourceHistoryFile,
		})
	}
	if err := scanner.Err(); err != nil {
		return records, fmt.Errorf("reading bash history: %w", err)
	}

	records = tail(records, limit)
	for i := range records {
		minutesBack := time.Duration(len(records)-1-i) * time.Minute
		records[i].Timestamp = now.Add(-minutesBack).Unix()
	}
	return records, nil
}

// fishEntry is one entry of fish's YAML-formatted history file.
type fishEntry struct {
	Cmd  string `yaml:"cmd"`
	When int64  `yaml:"when"`
}

// ParseFishHistory parses fish's history file, which is a YAML sequence of
// cmd/when entries. Entries without a "when" field fall back to now.
func ParseFishHistory(r io.Reader, now time.Time, limit int) ([]Record, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("reading fish history: %w", err)
	}

	var entries []fishEntry
	if err := yaml.Unmarshal(data, &entries); err != nil {
		return nil, fmt.Errorf("parsing fish history: %w", err)
	}

	var records []Record
	for _, e := range entries {
		command := strings.TrimSpace(e.Cmd)
		if command == "" || Ignored(command) {
			continue
		}
		timestamp := e.When
		if timestamp == 0 {
			timestamp = now.Unix()
		}
		records = append(records, Record{
			Command:   command,
			Timestamp: timestamp,
			Shell:     ShellFish,
			Source:    SourceHistoryFile,
		})
	}
	return tail(records, limit), nil
}

// tail keeps the trailing limit records; limit <= 0 keeps everything.
func tail(records []Record, limit int) []Record {
	if limit > 0 && len(records) > limit {
		return records[len(records)-limit:]
	}
	return records
}
