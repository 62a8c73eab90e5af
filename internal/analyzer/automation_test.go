package analyzer

import (
	"math"
	"strings"
	"testing"
)

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestAutomationScore_StaysInRange(t *testing.T) {
	commands := []string{
		"",
		"ls",
		"git status",
		"find . -name '*.go' | xargs grep -l TODO | head -20",
		"cp a b && mv b c && rm c && mkdir d && touch e",
		"cd /var/log && grep error syslog | sed 's/foo/bar/' | awk '{print $1}'",
	}
	for _, cmd := range commands {
		score := AutomationScore(cmd)
		if score < 0 || score > 1 {
			t.Errorf("score for %q out of range: %v", cmd, score)
		}
	}
}

func TestAutomationScore_Components(t *testing.T) {
	tests := []struct {
		command string
		want    float64
	}{
		// No path args, two words, no keywords.
		{"git status", 0},
		// One path-arg shape.
		{"ls -la", 0.3},
		// Path-arg shape plus file operation keyword.
		{"rm -rf build", 0.4},
		// grep path-arg, >3 words, text processing keyword.
		{"grep -r TODO src/", 0.7},
	}

	for _, tt := range tests {
		got := AutomationScore(tt.command)
		if !almostEqual(got, tt.want) {
			t.Errorf("AutomationScore(%q) = %v, want %v", tt.command, got, tt.want)
		}
	}
}

func TestAutomationScore_ClampsAtOne(t *testing.T) {
	// find + grep path shapes, >3 words, text processing: raw sum exceeds 1.
	got := AutomationScore("find . -name '*.py' | xargs grep TODO")
	if got != 1.0 {
		t.Errorf("expected clamp at 1.0, got %v", got)
	}
}

func TestFindAutomationCandidates_GrepBecomesFunction(t *testing.T) {
	commands := []string{
		"grep -r TODO src/",
		"grep -r TODO src/",
		"git status",
	}

	candidates := FindAutomationCandidates(commands, CandidateThreshold)

	if len(candidates) != 1 {
		t.Fatalf("expected 1 candidate, got %d", len(candidates))
	}
	c := candidates[0]
	if c.Command != "grep -r TODO src/" {
		t.Errorf("unexpected candidate %q", c.Command)
	}
	if c.AutomationScore <= CandidateThreshold {
		t.Errorf("candidate score %v should exceed threshold %v", c.AutomationScore, CandidateThreshold)
	}
	if c.AutomationType != "function" {
		t.Errorf("expected type 'function', got %q", c.AutomationType)
	}
	if c.SuggestedScript.Name != "grep_script.sh" {
		t.Errorf("expected script name 'grep_script.sh', got %q", c.SuggestedScript.Name)
	}
	if !strings.HasPrefix(c.SuggestedScript.Content, "#!/bin/bash") {
		t.Errorf("script should start with a bash shebang:\n%s", c.SuggestedScript.Content)
	}
	if !strings.Contains(c.SuggestedScript.Content, c.Command) {
		t.Errorf("script should contain the command:\n%s", c.SuggestedScript.Content)
	}
}

func TestFindAutomationCandidates_CdBecomesAlias(t *testing.T) {
	commands := []string{"cd /var/log && ls -la"}

	candidates := FindAutomationCandidates(commands, CandidateThreshold)

	if len(candidates) != 1 {
		t.Fatalf("expected 1 candidate, got %d", len(candidates))
	}
	c := candidates[0]
	if c.AutomationType != "alias" {
		t.Errorf("expected type 'alias', got %q", c.AutomationType)
	}
	want := "alias cd_var_log='cd /var/log && ls -la'"
	if c.SuggestedAlias != want {
		t.Errorf("expected alias %q, got %q", want, c.SuggestedAlias)
	}
}

func TestFindAutomationCandidates_DedupAndOrder(t *testing.T) {
	commands := []string{
		"rm -rf build",           // 0.4
		"grep -r TODO src/",      // 0.7
		"rm -rf build",           // duplicate
		"cat config.yaml | less", // 0.5
	}

	candidates := FindAutomationCandidates(commands, CandidateThreshold)

	if len(candidates) != 3 {
		t.Fatalf("expected 3 distinct candidates, got %d", len(candidates))
	}
	for i := 1; i < len(candidates); i++ {
		if candidates[i].AutomationScore > candidates[i-1].AutomationScore {
			t.Errorf("candidates not sorted by score descending at index %d", i)
		}
	}
	if candidates[0].Command != "grep -r TODO src/" {
		t.Errorf("expected highest scorer first, got %q", candidates[0].Command)
	}
}

func TestFindAutomationCandidates_ConfiguredThreshold(t *testing.T) {
	commands := []string{
		"rm -rf build",      // 0.4
		"grep -r TODO src/", // 0.7
	}

	strict := FindAutomationCandidates(commands, 0.5)
	if len(strict) != 1 {
		t.Fatalf("expected 1 candidate above 0.5, got %d", len(strict))
	}
	if strict[0].Command != "grep -r TODO src/" {
		t.Errorf("unexpected candidate %q", strict[0].Command)
	}

	// A zero threshold falls back to the default.
	relaxed := FindAutomationCandidates(commands, 0)
	if len(relaxed) != 2 {
		t.Errorf("expected 2 candidates with the default threshold, got %d", len(relaxed))
	}
}

func TestFindAutomationCandidates_ThresholdIsExclusive(t *testing.T) {
	// "cd /tmp" scores exactly 0.3, which must not qualify.
	candidates := FindAutomationCandidates([]string{"cd /tmp"}, 0)
	if len(candidates) != 0 {
		t.Errorf("expected no candidates at the threshold boundary, got %d", len(candidates))
	}
}
