package analyzer

import (
	"math"
	"strings"
)

// maxFrequentCommands caps the frequency ranking.
const maxFrequentCommands = 20

// AnalyzeFrequency ranks distinct command texts by occurrence count
// descending, capped at 20. Ties keep first-seen order. Percentages are
// relative to the full input length and rounded to two decimals.
func AnalyzeFrequency(commands []string) []FrequentCommand {
	if len(commands) == 0 {
		return []FrequentCommand{}
	}

	counter := newOrderedCounter()
	for _, cmd := range commands {
		counter.add(cmd)
	}

	total := float64(len(commands))
	ranked := counter.ranked(0, maxFrequentCommands)

	frequent := make([]FrequentCommand, 0, len(ranked))
	for _, entry := range ranked {
		pct := float64(entry.Count) / total * 100
		frequent = append(frequent, FrequentCommand{
			Command:             entry.Value,
			Count:               entry.Count,
			Percentage:          math.Round(pct*100) / 100,
			AutomationPotential: AutomationScore(entry.Value),
		})
	}
	return frequent
}

// CountCommandTypes buckets each command into exactly one tool category by
// testing its first whitespace-delimited token against the taxonomy keyword
// sets (substring containment, first match wins). Unmatched commands count
// as "other", so the values always sum to the input length.
func CountCommandTypes(commands []string) map[string]int {
	types := make(map[string]int)

	for _, cmd := range commands {
		fields := strings.Fields(cmd)
		if len(fields) == 0 {
			continue
		}
		base := strings.ToLower(fields[0])

		category := otherCategory
		for _, tc := range toolCategories {
			if matchesAnyKeyword(base, tc.keywords) {
				category = tc.name
				break
			}
		}
		types[category]++
	}
	return types
}

// matchesAnyKeyword reports whether text contains any of the keywords.
func matchesAnyKeyword(text string, keywords []string) bool {
	for _, kw := range keywords {
		if strings.Contains(text, kw) {
			return true
		}
	}
	return false
}
