package analyzer

import (
	"regexp"
	"sort"
	"strings"
)

const (
	// sequenceDelimiter joins the commands of a window into a sequence key.
	sequenceDelimiter = " | "

	// maxPatternEntries caps each pattern ranking.
	maxPatternEntries = 10
)

// flagPattern matches flag-like tokens such as -l or --name.
var flagPattern = regexp.MustCompile(`--?\w+`)

// AnalyzePatterns computes all structural pattern rankings over the given
// ordered command texts.
func AnalyzePatterns(commands []string) Patterns {
	return Patterns{
		RepeatedSequences: FindRepeatedSequences(commands),
		CommonPrefixes:    findCommonPrefixes(commands),
		CommonSuffixes:    findCommonSuffixes(commands),
		ParameterPatterns: findParameterPatterns(commands),
	}
}

// FindRepeatedSequences finds contiguous command runs of window lengths 2
// through 4 that occur more than once. Counts for all window lengths are
// pooled into one ranking.
func FindRepeatedSequences(commands []string) []ValueCount {
	counter := newOrderedCounter()

	for seqLen := 2; seqLen <= 4; seqLen++ {
		for i := 0; i+seqLen <= len(commands); i++ {
			counter.add(strings.Join(commands[i:i+seqLen], sequenceDelimiter))
		}
	}
	return counter.ranked(1, maxPatternEntries)
}

// findCommonPrefixes counts the space-joined leading words of each command
// for prefix lengths 1 to min(3, word count) and keeps prefixes seen more
// than twice.
func findCommonPrefixes(commands []string) []ValueCount {
	counter := newOrderedCounter()

	for _, cmd := range commands {
		words := strings.Fields(cmd)
		limit := 3
		if len(words) < limit {
			limit = len(words)
		}
		for i := 1; i <= limit; i++ {
			counter.add(strings.Join(words[:i], " "))
		}
	}
	return counter.ranked(2, maxPatternEntries)
}

// findCommonSuffixes counts everything after the first token of each
// multi-word command and keeps suffixes seen more than twice.
func findCommonSuffixes(commands []string) []ValueCount {
	counter := newOrderedCounter()

	for _, cmd := range commands {
		words := strings.Fields(cmd)
		if len(words) > 1 {
			counter.add(strings.Join(words[1:], " "))
		}
	}
	return counter.ranked(2, maxPatternEntries)
}

// findParameterPatterns extracts all flag-like tokens from each command,
// sorts them lexicographically, and counts the joined combination. Commands
// with no flags contribute nothing; combinations seen more than once are kept.
func findParameterPatterns(commands []string) []ValueCount {
	counter := newOrderedCounter()

	for _, cmd := range commands {
		flags := flagPattern.FindAllString(cmd, -1)
		if len(flags) == 0 {
			continue
		}
		sort.Strings(flags)
		counter.add(strings.Join(flags, " "))
	}
	return counter.ranked(1, maxPatternEntries)
}
