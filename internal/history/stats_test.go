package history

import "testing"

func TestComputeStats(t *testing.T) {
	records := []Record{
		{Command: "git status", Timestamp: 1700000000, Shell: ShellZsh},
		{Command: "git status", Timestamp: 1700003600, Shell: ShellZsh},
		{Command: "docker ps", Timestamp: 1700007200, Shell: ShellBash},
		{Command: "make build", Shell: ""},
	}

	stats := ComputeStats(records)

	if stats.TotalCommands != 4 {
		t.Errorf("expected 4 total, got %d", stats.TotalCommands)
	}
	if stats.UniqueCommands != 3 {
		t.Errorf("expected 3 unique, got %d", stats.UniqueCommands)
	}
	if stats.ShellCounts[ShellZsh] != 2 || stats.ShellCounts[ShellBash] != 1 {
		t.Errorf("unexpected shell counts: %v", stats.ShellCounts)
	}
	if stats.ShellCounts[ShellUnknown] != 1 {
		t.Errorf("blank shell should count as unknown: %v", stats.ShellCounts)
	}

	if len(stats.MostCommon) == 0 || stats.MostCommon[0].Command != "git status" || stats.MostCommon[0].Count != 2 {
		t.Errorf("unexpected most common: %+v", stats.MostCommon)
	}

	if stats.TimeRange == nil {
		t.Fatal("expected a time range")
	}
	if stats.TimeRange.Earliest != 1700000000 || stats.TimeRange.Latest != 1700007200 {
		t.Errorf("unexpected time range: %+v", stats.TimeRange)
	}
	if stats.TimeRange.SpanHours != 2.0 {
		t.Errorf("expected 2 hour span, got %v", stats.TimeRange.SpanHours)
	}
}

func TestComputeStats_Empty(t *testing.T) {
	stats := ComputeStats(nil)
	if stats.TotalCommands != 0 || stats.TimeRange != nil {
		t.Errorf("unexpected stats for empty input: %+v", stats)
	}
}
