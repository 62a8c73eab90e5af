package data

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/cmdchronicle/cmdchronicle/internal/analyzer"
	"github.com/cmdchronicle/cmdchronicle/internal/history"
)

func TestSaveAndLoadRecords(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "commands.json")
	records := []history.Record{
		{Command: "git status", Timestamp: 1700000000, Shell: history.ShellZsh, Source: history.SourceHistoryFile},
		{Command: "git status", Timestamp: 1700003600, Shell: history.ShellZsh, Source: history.SourceHistoryFile},
		{Command: "docker ps", Timestamp: 1700007200, Shell: history.ShellBash, Source: history.SourceActiveProcess, PID: 42},
	}

	if err := SaveRecords(records, path); err != nil {
		t.Fatalf("save failed: %v", err)
	}

	loaded, err := LoadRecords(path)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if len(loaded) != 3 {
		t.Fatalf("expected 3 records, got %d", len(loaded))
	}
	if loaded[2].PID != 42 {
		t.Errorf("expected PID 42, got %d", loaded[2].PID)
	}
}

func TestLoadRecords_BareArray(t *testing.T) {
	path := filepath.Join(t.TempDir(), "commands.json")
	raw := `[{"command": "git status", "timestamp": 1700000000, "shell": "zsh", "source": "history_file"}]`
	if err := os.WriteFile(path, []byte(raw), 0o644); err != nil {
		t.Fatal(err)
	}

	records, err := LoadRecords(path)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if len(records) != 1 || records[0].Command != "git status" {
		t.Errorf("unexpected records: %+v", records)
	}
}

func TestSaveAndLoadReport(t *testing.T) {
	path := filepath.Join(t.TempDir(), "patterns.json")
	report := analyzer.Analyze([]history.Record{
		{Command: "git status", Timestamp: 1700000000},
		{Command: "git add .", Timestamp: 1700000030},
	})

	if err := SaveReport(report, path); err != nil {
		t.Fatalf("save failed: %v", err)
	}

	loaded, err := LoadReport(path)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if loaded.Summary.TotalCommands != 2 {
		t.Errorf("expected 2 total commands, got %d", loaded.Summary.TotalCommands)
	}
	if loaded.Summary.MostUsedTool != report.Summary.MostUsedTool {
		t.Errorf("report round trip lost the most used tool: %q vs %q",
			loaded.Summary.MostUsedTool, report.Summary.MostUsedTool)
	}
}

func TestSummarize(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"commands.json", "patterns.json", "insights.json", "extra.json", "notes.txt"} {
		if err := os.WriteFile(filepath.Join(dir, name), []byte("{}"), 0o644); err != nil {
			t.Fatal(err)
		}
	}

	files, err := Summarize(dir)
	if err != nil {
		t.Fatalf("summarize failed: %v", err)
	}
	if len(files) != 4 {
		t.Fatalf("expected 4 JSON files, got %d", len(files))
	}

	types := make(map[string]string)
	for _, f := range files {
		types[f.Name] = f.Type
	}
	want := map[string]string{
		"commands.json": "commands",
		"patterns.json": "patterns",
		"insights.json": "insights",
		"extra.json":    "data",
	}
	for name, wantType := range want {
		if types[name] != wantType {
			t.Errorf("%s: expected type %q, got %q", name, wantType, types[name])
		}
	}
}

func TestCleanup(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"commands.json", "patterns.json", "notes.txt"} {
		if err := os.WriteFile(filepath.Join(dir, name), []byte("{}"), 0o644); err != nil {
			t.Fatal(err)
		}
	}
	old := time.Now().Add(-72 * time.Hour)
	if err := os.Chtimes(filepath.Join(dir, "patterns.json"), old, old); err != nil {
		t.Fatal(err)
	}
	if err := os.Chtimes(filepath.Join(dir, "notes.txt"), old, old); err != nil {
		t.Fatal(err)
	}

	deleted, err := Cleanup(dir, 24*time.Hour)
	if err != nil {
		t.Fatalf("cleanup failed: %v", err)
	}
	if deleted != 1 {
		t.Fatalf("expected 1 deleted file, got %d", deleted)
	}
	if _, err := os.Stat(filepath.Join(dir, "patterns.json")); !os.IsNotExist(err) {
		t.Error("stale patterns.json should have been removed")
	}
	if _, err := os.Stat(filepath.Join(dir, "commands.json")); err != nil {
		t.Error("fresh commands.json should survive cleanup")
	}
	if _, err := os.Stat(filepath.Join(dir, "notes.txt")); err != nil {
		t.Error("non-JSON files should never be touched")
	}
}

func TestCleanup_MissingDir(t *testing.T) {
	deleted, err := Cleanup(filepath.Join(t.TempDir(), "nope"), time.Hour)
	if err != nil {
		t.Fatalf("missing directory should not error: %v", err)
	}
	if deleted != 0 {
		t.Errorf("expected 0 deletions, got %d", deleted)
	}
}

func TestExportCSV(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out", "commands.csv")
	records := []history.Record{
		{Command: "git status", Timestamp: 1700000000, Shell: history.ShellZsh, Source: history.SourceHistoryFile},
		{Command: "docker ps", Timestamp: 1700003600, Shell: history.ShellBash, Source: history.SourceActiveProcess, PID: 42},
	}

	if err := ExportCSV(records, path); err != nil {
		t.Fatalf("export failed: %v", err)
	}

	f, err := os.Open(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()

	rows, err := csv.NewReader(f).ReadAll()
	if err != nil {
		t.Fatalf("reading exported CSV: %v", err)
	}
	if len(rows) != 3 {
		t.Fatalf("expected header plus 2 rows, got %d", len(rows))
	}
	wantHeader := []string{"command", "timestamp", "shell", "source", "pid"}
	for i, col := range wantHeader {
		if rows[0][i] != col {
			t.Errorf("header column %d: expected %q, got %q", i, col, rows[0][i])
		}
	}
	if rows[1][0] != "git status" || rows[1][1] != "1700000000" {
		t.Errorf("unexpected first row: %v", rows[1])
	}
	if rows[2][4] != "42" {
		t.Errorf("expected PID column 42, got %q", rows[2][4])
	}
}

func TestSummarize_MissingDir(t *testing.T) {
	files, err := Summarize(filepath.Join(t.TempDir(), "nope"))
	if err != nil {
		t.Fatalf("missing directory should not error: %v", err)
	}
	if len(files) != 0 {
		t.Errorf("expected no files, got %d", len(files))
	}
}
