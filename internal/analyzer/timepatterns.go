package analyzer

import (
	"time"

	"github.com/cmdchronicle/cmdchronicle/internal/history"
)

// AnalyzeTimePatterns accumulates hour-of-day and day-of-week histograms
// from record timestamps, interpreted in local time. Records without a
// timestamp are skipped.
func AnalyzeTimePatterns(records []history.Record) TimePatterns {
	patterns := TimePatterns{
		HourlyDistribution: make(map[int]int),
		DailyDistribution:  make(map[string]int),
	}

	for _, rec := range records {
		if rec.Timestamp == 0 {
			continue
		}
		t := time.Unix(rec.Timestamp, 0)
		patterns.HourlyDistribution[t.Hour()]++
		patterns.DailyDistribution[t.Weekday().String()]++
	}
	return patterns
}
