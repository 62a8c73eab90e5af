package history

import "sort"

// Stats summarizes a collected record batch before analysis.
type Stats struct {
	TotalCommands  int            `json:"total_commands"`
	UniqueCommands int            `json:"unique_commands"`
	ShellCounts    map[string]int `json:"shell_distribution"`
	MostCommon     []CommandCount `json:"most_common_commands"`
	TimeRange      *TimeRange     `json:"time_range,omitempty"`
}

// CommandCount pairs a command text with its occurrence count.
type CommandCount struct {
	Command string `json:"command"`
	Count   int    `json:"count"`
}

// TimeRange spans the earliest to latest timestamped record.
type TimeRange struct {
	Earliest  int64   `json:"earliest"`
	Latest    int64   `json:"latest"`
	SpanHours float64 `json:"span_hours"`
}

// ComputeStats derives collection statistics from a record batch.
func ComputeStats(records []Record) Stats {
	stats := Stats{ShellCounts: make(map[string]int)}
	if len(records) == 0 {
		return stats
	}

	stats.TotalCommands = len(records)

	counts := make(map[string]int)
	var order []string
	for _, rec := range records {
		shell := rec.Shell
		if shell == "" {
			shell = ShellUnknown
		}
		stats.ShellCounts[shell]++

		if _, seen := counts[rec.Command]; !seen {
			order = append(order, rec.Command)
		}
		counts[rec.Command]++
	}
	stats.UniqueCommands = len(counts)

	most := make([]CommandCount, 0, len(order))
	for _, cmd := range order {
		most = append(most, CommandCount{Command: cmd, Count: counts[cmd]})
	}
	sort.SliceStable(most, func(i, j int) bool {
		return most[i].Count > most[j].Count
	})
	if len(most) > 10 {
		most = most[:10]
	}
	stats.MostCommon = most

	var earliest, latest int64
	for _, rec := range records {
		if rec.Timestamp == 0 {
			continue
		}
		if earliest == 0 || rec.Timestamp < earliest {
			earliest = rec.Timestamp
		}
		if rec.Timestamp > latest {
			latest = rec.Timestamp
		}
	}
	if earliest != 0 {
		stats.TimeRange = &TimeRange{
			Earliest:  earliest,
			Latest:    latest,
			SpanHours: float64(latest-earliest) / 3600,
		}
	}
	return stats
}
