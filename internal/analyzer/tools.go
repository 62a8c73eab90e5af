package analyzer

import "strings"

// maxPrimaryCommands caps the per-category list of representative commands.
const maxPrimaryCommands = 5

// AnalyzeToolUsage measures how much activity belongs to each tool category.
// Unlike CountCommandTypes, matching here is a case-insensitive substring
// test against the whole command text, so one command can count toward
// several categories. Only categories with at least one match are emitted.
func AnalyzeToolUsage(commands []string) map[string]ToolStats {
	usage := make(map[string]ToolStats)
	if len(commands) == 0 {
		return usage
	}

	total := float64(len(commands))
	for _, tc := range toolCategories {
		count := 0
		for _, cmd := range commands {
			if matchesAnyKeyword(strings.ToLower(cmd), tc.keywords) {
				count++
			}
		}
		if count == 0 {
			continue
		}
		usage[tc.name] = ToolStats{
			Count:           count,
			Percentage:      float64(count) / total * 100,
			PrimaryCommands: primaryCommands(commands, tc.keywords),
		}
	}
	return usage
}

// primaryCommands collects the first token of each matching command,
// deduplicated in first-seen order, capped at 5.
func primaryCommands(commands []string, keywords []string) []string {
	seen := make(map[string]bool)
	primary := []string{}

	for _, cmd := range commands {
		if !matchesAnyKeyword(strings.ToLower(cmd), keywords) {
			continue
		}
		fields := strings.Fields(cmd)
		if len(fields) == 0 {
			continue
		}
		base := fields[0]
		if seen[base] {
			continue
		}
		seen[base] = true
		primary = append(primary, base)
		if len(primary) == maxPrimaryCommands {
			break
		}
	}
	return primary
}
