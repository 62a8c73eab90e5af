package analyzer

import (
	"fmt"
	"regexp"
	"sort"
	"strings"
)

const (
	// CandidateThreshold is the minimum automation score for a command to
	// be reported as an automation candidate.
	CandidateThreshold = 0.3

	// maxCandidates caps the candidate ranking.
	maxCandidates = 20
)

// pathArgPatterns are command shapes that take a path-like argument; each
// matching pattern adds 0.3 to the automation score.
var pathArgPatterns = []*regexp.Regexp{
	regexp.MustCompile(`cd\s+\S+`),
	regexp.MustCompile(`ls\s+\S+`),
	regexp.MustCompile(`find\s+\S+`),
	regexp.MustCompile(`grep\s+\S+`),
	regexp.MustCompile(`cat\s+\S+`),
	regexp.MustCompile(`cp\s+\S+`),
	regexp.MustCompile(`mv\s+\S+`),
	regexp.MustCompile(`rm\s+\S+`),
	regexp.MustCompile(`chmod\s+\S+`),
	regexp.MustCompile(`chown\s+\S+`),
}

// textProcessingKeywords mark commands that pipe or transform text; their
// presence adds 0.2.
var textProcessingKeywords = []string{"find", "grep", "sed", "awk", "xargs"}

// fileOperationKeywords mark file manipulation commands; their presence
// adds 0.1.
var fileOperationKeywords = []string{"cp", "mv", "rm", "mkdir", "touch"}

// AutomationScore computes the heuristic automation potential of a command.
// The score is additive (path-arg shapes 0.3 each, >3 words 0.2, text
// processing 0.2, file operations 0.1) and clamped to [0, 1].
func AutomationScore(command string) float64 {
	score := 0.0

	for _, pat := range pathArgPatterns {
		if pat.MatchString(command) {
			score += 0.3
		}
	}

	if len(strings.Fields(command)) > 3 {
		score += 0.2
	}

	lower := strings.ToLower(command)
	if matchesAnyKeyword(lower, textProcessingKeywords) {
		score += 0.2
	}
	if matchesAnyKeyword(lower, fileOperationKeywords) {
		score += 0.1
	}

	if score > 1.0 {
		return 1.0
	}
	return score
}

// FindAutomationCandidates scores every distinct command (first occurrence
// wins) and returns those strictly above the threshold, annotated with a
// suggested automation type, alias, and script. Ranked by score descending
// with first-seen tie-break, capped at 20. A threshold of zero or less uses
// CandidateThreshold.
func FindAutomationCandidates(commands []string, threshold float64) []AutomationCandidate {
	if threshold <= 0 {
		threshold = CandidateThreshold
	}
	seen := make(map[string]bool, len(commands))
	candidates := []AutomationCandidate{}

	for _, cmd := range commands {
		if seen[cmd] {
			continue
		}
		seen[cmd] = true

		score := AutomationScore(cmd)
		if score <= threshold {
			continue
		}
		candidates = append(candidates, AutomationCandidate{
			Command:         cmd,
			AutomationScore: score,
			AutomationType:  suggestAutomationType(cmd),
			SuggestedAlias:  suggestAlias(cmd),
			SuggestedScript: suggestScript(cmd),
		})
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].AutomationScore > candidates[j].AutomationScore
	})
	if len(candidates) > maxCandidates {
		candidates = candidates[:maxCandidates]
	}
	return candidates
}

// suggestAutomationType picks alias, function, or script for a command.
func suggestAutomationType(command string) string {
	switch {
	case strings.HasPrefix(command, "cd"):
		return "alias"
	case strings.Contains(command, "find") || strings.Contains(command, "grep"):
		return "function"
	case len(strings.Fields(command)) > 5:
		return "script"
	default:
		return "alias"
	}
}

// suggestAlias renders a templated alias definition for the command.
func suggestAlias(command string) string {
	parts := strings.Fields(command)
	if len(parts) == 0 {
		return ""
	}

	base := parts[0]
	switch base {
	case "cd":
		path := ""
		if len(parts) > 1 {
			path = strings.ReplaceAll(parts[1], "/", "_")
		}
		return fmt.Sprintf("alias cd%s='%s'", path, command)
	case "ls":
		return fmt.Sprintf("alias ll='%s'", command)
	case "find":
		arg := ""
		if len(parts) > 1 {
			arg = parts[1]
		}
		return fmt.Sprintf("alias find%s='%s'", arg, command)
	default:
		return fmt.Sprintf("alias %s_custom='%s'", base, command)
	}
}

// suggestScript generates a wrapper script that re-runs the command line.
func suggestScript(command string) Script {
	parts := strings.Fields(command)
	if len(parts) == 0 {
		return Script{}
	}

	content := fmt.Sprintf(`#!/bin/bash
# Automated script for: %s

%s

echo "Command completed successfully!"
`, command, command)

	return Script{
		Name:    parts[0] + "_script.sh",
		Content: content,
	}
}
