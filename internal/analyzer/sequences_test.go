package analyzer

import "testing"

func findEntry(entries []ValueCount, value string) (ValueCount, bool) {
	for _, e := range entries {
		if e.Value == value {
			return e, true
		}
	}
	return ValueCount{}, false
}

func TestFindRepeatedSequences_GitFlow(t *testing.T) {
	commands := []string{
		"git status",
		"git add .",
		"git commit -m x",
		"git status",
		"git add .",
		"git commit -m x",
	}

	sequences := FindRepeatedSequences(commands)

	for _, want := range []string{
		"git status | git add .",
		"git add . | git commit -m x",
		"git status | git add . | git commit -m x",
	} {
		entry, ok := findEntry(sequences, want)
		if !ok {
			t.Fatalf("expected sequence %q in results", want)
		}
		if entry.Count != 2 {
			t.Errorf("sequence %q: expected count 2, got %d", want, entry.Count)
		}
	}

	// A window seen only once must not appear.
	if _, ok := findEntry(sequences, "git commit -m x | git status"); ok {
		t.Error("single-occurrence sequence should be excluded")
	}
}

func TestFindRepeatedSequences_CapsAtTen(t *testing.T) {
	var commands []string
	// Repeat a long block so many distinct windows recur.
	block := []string{"a 1", "b 2", "c 3", "d 4", "e 5", "f 6", "g 7", "h 8"}
	for i := 0; i < 3; i++ {
		commands = append(commands, block...)
	}

	sequences := FindRepeatedSequences(commands)
	if len(sequences) > 10 {
		t.Errorf("expected at most 10 sequences, got %d", len(sequences))
	}
}

func TestAnalyzePatterns_PrefixesAndSuffixes(t *testing.T) {
	commands := []string{
		"git status",
		"git status",
		"git status",
		"git add .",
	}

	patterns := AnalyzePatterns(commands)

	if entry, ok := findEntry(patterns.CommonPrefixes, "git"); !ok || entry.Count != 4 {
		t.Errorf("expected prefix 'git' x4, got %v (found=%v)", entry, ok)
	}
	if entry, ok := findEntry(patterns.CommonPrefixes, "git status"); !ok || entry.Count != 3 {
		t.Errorf("expected prefix 'git status' x3, got %v (found=%v)", entry, ok)
	}
	// Seen twice only: prefixes require more than two occurrences.
	if _, ok := findEntry(patterns.CommonPrefixes, "git add"); ok {
		t.Error("prefix 'git add' seen once should be excluded")
	}

	if entry, ok := findEntry(patterns.CommonSuffixes, "status"); !ok || entry.Count != 3 {
		t.Errorf("expected suffix 'status' x3, got %v (found=%v)", entry, ok)
	}
}

func TestAnalyzePatterns_ParameterCombinations(t *testing.T) {
	commands := []string{
		"ls -la --color",
		"ls --color -la",
		"git status",
	}

	patterns := AnalyzePatterns(commands)

	// Flags are sorted before joining, so both spellings collapse.
	entry, ok := findEntry(patterns.ParameterPatterns, "--color -la")
	if !ok {
		t.Fatalf("expected flag combination '--color -la', got %v", patterns.ParameterPatterns)
	}
	if entry.Count != 2 {
		t.Errorf("expected count 2, got %d", entry.Count)
	}
}
