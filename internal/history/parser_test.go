package history

import (
	"strings"
	"testing"
	"time"
)

func TestParseZshHistory_ExtendedAndPlain(t *testing.T) {
	input := strings.Join([]string{
		": 1700000000:0;git status",
		"ls -la",
		"# a comment line",
		": 1700000100:5;docker ps",
		"clear",
	}, "\n")

	records, err := ParseZshHistory(strings.NewReader(input), 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(records) != 3 {
		t.Fatalf("expected 3 records, got %d", len(records))
	}
	if records[0].Command != "git status" || records[0].Timestamp != 1700000000 {
		t.Errorf("unexpected first record: %+v", records[0])
	}
	if records[1].Command != "ls -la" || records[1].Timestamp != 0 {
		t.Errorf("plain line should have no timestamp: %+v", records[1])
	}
	if records[2].Command != "docker ps" || records[2].Timestamp != 1700000100 {
		t.Errorf("unexpected third record: %+v", records[2])
	}
	for _, r := range records {
		if r.Shell != ShellZsh || r.Source != SourceHistoryFile {
			t.Errorf("unexpected provenance: %+v", r)
		}
	}
}

func TestParseZshHistory_KeepsTrailingLimit(t *testing.T) {
	input := "echo one 1\necho two 2\necho three 3\n"

	records, err := ParseZshHistory(strings.NewReader(input), 2)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(records) != 2 {
		t.Fatalf("expected 2 records, got %d", len(records))
	}
	if records[0].Command != "echo two 2" || records[1].Command != "echo three 3" {
		t.Errorf("limit should keep the newest entries, got %+v", records)
	}
}

func TestParseBashHistory_EstimatesTimestamps(t *testing.T) {
	now := time.Date(2026, 8, 26, 12, 0, 0, 0, time.UTC)
	input := "git status\nls -la\ndocker ps\n"

	records, err := ParseBashHistory(strings.NewReader(input), now, 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(records) != 3 {
		t.Fatalf("expected 3 records, got %d", len(records))
	}
	if records[2].Timestamp != now.Unix() {
		t.Errorf("newest entry should be anchored at now, got %d", records[2].Timestamp)
	}
	if records[1].Timestamp != now.Add(-time.Minute).Unix() {
		t.Errorf("expected one minute back, got %d", records[1].Timestamp)
	}
	if records[0].Timestamp != now.Add(-2*time.Minute).Unix() {
		t.Errorf("expected two minutes back, got %d", records[0].Timestamp)
	}
}

func TestParseBashHistory_SkipsIgnored(t *testing.T) {
	input := "clear\n# comment\n\ngit status\nexit\n"

	records, err := ParseBashHistory(strings.NewReader(input), time.Now(), 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(records) != 1 || records[0].Command != "git status" {
		t.Errorf("expected only 'git status', got %+v", records)
	}
}

func TestParseFishHistory_YAMLEntries(t *testing.T) {
	now := time.Date(2026, 8, 26, 12, 0, 0, 0, time.UTC)
	input := `- cmd: git status
  when: 1700000000
- cmd: docker ps
- cmd: clear
  when: 1700000200
`

	records, err := ParseFishHistory(strings.NewReader(input), now, 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(records) != 2 {
		t.Fatalf("expected 2 records, got %d", len(records))
	}
	if records[0].Command != "git status" || records[0].Timestamp != 1700000000 {
		t.Errorf("unexpected first record: %+v", records[0])
	}
	if records[1].Command != "docker ps" || records[1].Timestamp != now.Unix() {
		t.Errorf("entry without 'when' should fall back to now: %+v", records[1])
	}
	if records[0].Shell != ShellFish {
		t.Errorf("expected fish shell, got %q", records[0].Shell)
	}
}

func TestParseFishHistory_BadYAML(t *testing.T) {
	_, err := ParseFishHistory(strings.NewReader("{not: [valid"), time.Now(), 0)
	if err == nil {
		t.Error("expected error for malformed history")
	}
}
