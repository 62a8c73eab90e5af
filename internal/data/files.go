// Package data persists collected records, reports, and insights as JSON
// files with a metadata envelope.
package data

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"time"

	"github.com/cmdchronicle/cmdchronicle/internal/analyzer"
	"github.com/cmdchronicle/cmdchronicle/internal/history"
)

// Version stamps saved files so later readers can detect format drift.
const Version = "1.0.0"

// Metadata describes a saved data file.
type Metadata struct {
	GeneratedAt    time.Time `json:"generated_at"`
	TotalCommands  int       `json:"total_commands"`
	UniqueCommands int       `json:"unique_commands"`
	Version        string    `json:"version"`
}

// recordsFile is the on-disk envelope for collected commands.
type recordsFile struct {
	Metadata Metadata         `json:"metadata"`
	Commands []history.Record `json:"commands"`
}

// reportFile is the on-disk envelope for an analysis report.
type reportFile struct {
	Metadata Metadata        `json:"metadata"`
	Patterns analyzer.Report `json:"patterns"`
}

// SaveRecords writes collected records to path, creating parent directories
// as needed.
func SaveRecords(records []history.Record, path string) error {
	unique := make(map[string]struct{}, len(records))
	for _, rec := range records {
		unique[rec.Command] = struct{}{}
	}

	envelope := recordsFile{
		Metadata: Metadata{
			GeneratedAt:    time.Now(),
			TotalCommands:  len(records),
			UniqueCommands: len(unique),
			Version:        Version,
		},
		Commands: records,
	}
	return writeJSON(path, envelope)
}

// LoadRecords reads collected records from path. Files written without the
// metadata envelope (a bare record array) are also accepted.
func LoadRecords(path string) ([]history.Record, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading commands file: %w", err)
	}

	var envelope recordsFile
	if err := json.Unmarshal(raw, &envelope); err == nil && envelope.Commands != nil {
		return envelope.Commands, nil
	}

	var records []history.Record
	if err := json.Unmarshal(raw, &records); err != nil {
		return nil, fmt.Errorf("parsing commands file: %w", err)
	}
	return records, nil
}

// SaveReport writes an analysis report to path.
func SaveReport(report analyzer.Report, path string) error {
	envelope := reportFile{
		Metadata: Metadata{
			GeneratedAt:    time.Now(),
			TotalCommands:  report.Summary.TotalCommands,
			UniqueCommands: report.Summary.UniqueCommands,
			Version:        Version,
		},
		Patterns: report,
	}
	return writeJSON(path, envelope)
}

// LoadReport reads an analysis report from path.
func LoadReport(path string) (analyzer.Report, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return analyzer.Report{}, fmt.Errorf("reading patterns file: %w", err)
	}

	var envelope reportFile
	if err := json.Unmarshal(raw, &envelope); err != nil {
		return analyzer.Report{}, fmt.Errorf("parsing patterns file: %w", err)
	}
	return envelope.Patterns, nil
}

// SaveJSON writes any value to path with the standard indentation. Used for
// insights and other ad-hoc artifacts.
func SaveJSON(v any, path string) error {
	return writeJSON(path, v)
}

func writeJSON(path string, v any) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("creating data directory: %w", err)
	}

	raw, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding %s: %w", filepath.Base(path), err)
	}
	if err := os.WriteFile(path, append(raw, '\n'), 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", filepath.Base(path), err)
	}
	return nil
}

// FileInfo describes one file in the data directory.
type FileInfo struct {
	Name     string    `json:"name"`
	Type     string    `json:"type"`
	SizeKB   float64   `json:"size_kb"`
	Modified time.Time `json:"modified"`
}

// Summarize lists the JSON data files under dir, newest first.
func Summarize(dir string) ([]FileInfo, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}

	var files []FileInfo
	for _, entry := range entries {
		if entry.IsDir() || filepath.Ext(entry.Name()) != ".json" {
			continue
		}
		info, err := entry.Info()
		if err != nil {
			continue
		}
		files = append(files, FileInfo{
			Name:     entry.Name(),
			Type:     fileType(entry.Name()),
			SizeKB:   float64(info.Size()) / 1024,
			Modified: info.ModTime(),
		})
	}
	sort.Slice(files, func(i, j int) bool {
		return files[i].Modified.After(files[j].Modified)
	})
	return files, nil
}

// Cleanup deletes JSON data files under dir whose modification time is
// older than maxAge, returning how many were removed. Files that cannot be
// inspected or deleted are skipped.
func Cleanup(dir string, maxAge time.Duration) (int, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return 0, nil
		}
		return 0, err
	}

	cutoff := time.Now().Add(-maxAge)
	deleted := 0
	for _, entry := range entries {
		if entry.IsDir() || filepath.Ext(entry.Name()) != ".json" {
			continue
		}
		info, err := entry.Info()
		if err != nil || !info.ModTime().Before(cutoff) {
			continue
		}
		if err := os.Remove(filepath.Join(dir, entry.Name())); err == nil {
			deleted++
		}
	}
	return deleted, nil
}

// ExportCSV writes collected records to path as a CSV file with one row per
// record.
func ExportCSV(records []history.Record, path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("creating export directory: %w", err)
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", filepath.Base(path), err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write([]string{"command", "timestamp", "shell", "source", "pid"}); err != nil {
		return fmt.Errorf("writing CSV header: %w", err)
	}
	for _, rec := range records {
		row := []string{
			rec.Command,
			strconv.FormatInt(rec.Timestamp, 10),
			rec.Shell,
			rec.Source,
			strconv.Itoa(rec.PID),
		}
		if err := w.Write(row); err != nil {
			return fmt.Errorf("writing CSV row: %w", err)
		}
	}
	w.Flush()
	return w.Error()
}

// fileType classifies a data file by its name.
func fileType(name string) string {
	switch {
	case name == "commands.json":
		return "commands"
	case name == "patterns.json":
		return "patterns"
	case name == "insights.json":
		return "insights"
	default:
		return "data"
	}
}
