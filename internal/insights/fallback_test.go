package insights

import (
	"reflect"
	"testing"

	"github.com/cmdchronicle/cmdchronicle/internal/analyzer"
	"github.com/cmdchronicle/cmdchronicle/internal/history"
)

func devopsRecords() []history.Record {
	base := int64(1700000000)
	return []history.Record{
		{Command: "docker build -t app .", Timestamp: base, Shell: history.ShellZsh},
		{Command: "docker push app", Timestamp: base + 60, Shell: history.ShellZsh},
		{Command: "kubectl get pods", Timestamp: base + 120, Shell: history.ShellZsh},
		{Command: "kubectl apply -f deploy.yaml", Timestamp: base + 180, Shell: history.ShellBash},
	}
}

func TestFallback_ClassifiesDevops(t *testing.T) {
	records := devopsRecords()
	report := analyzer.Analyze(records)

	insights := Fallback(report, records)

	if insights.WorkflowType != "devops_engineer" {
		t.Errorf("expected devops_engineer, got %q", insights.WorkflowType)
	}
	if insights.FunTitle != "The Infrastructure Maestro" {
		t.Errorf("unexpected fun title %q", insights.FunTitle)
	}
	if insights.ModelUsed != "fallback_analysis" {
		t.Errorf("expected fallback_analysis, got %q", insights.ModelUsed)
	}
	if insights.CommandDiversityScore != report.Summary.CommandDiversity {
		t.Errorf("diversity score should mirror the report, got %v", insights.CommandDiversityScore)
	}
}

func TestFallback_DataSummary(t *testing.T) {
	records := devopsRecords()
	report := analyzer.Analyze(records)

	insights := Fallback(report, records)

	ds := insights.DataSummary
	if ds.TotalCommands != 4 || ds.UniqueCommands != 4 {
		t.Errorf("unexpected counts: %+v", ds)
	}
	if ds.ShellDistribution[history.ShellZsh] != 3 || ds.ShellDistribution[history.ShellBash] != 1 {
		t.Errorf("unexpected shell distribution: %v", ds.ShellDistribution)
	}
	if ds.TimeRange != "0.1 hours" {
		t.Errorf("expected '0.1 hours', got %q", ds.TimeRange)
	}
	if len(ds.TopTools) == 0 || len(ds.TopTools) > 3 {
		t.Errorf("expected 1-3 top tools, got %v", ds.TopTools)
	}
}

func TestFallback_EmptyReport(t *testing.T) {
	report := analyzer.Analyze(nil)

	insights := Fallback(report, nil)

	if insights.WorkflowType != "general_development" {
		t.Errorf("expected general_development, got %q", insights.WorkflowType)
	}
	if insights.FunTitle != "The Command Line Explorer" {
		t.Errorf("unexpected fun title %q", insights.FunTitle)
	}
	if insights.SkillLevel != "beginner" {
		t.Errorf("expected beginner, got %q", insights.SkillLevel)
	}
	if insights.DataSummary.TimeRange != "Unknown" {
		t.Errorf("expected unknown time range, got %q", insights.DataSummary.TimeRange)
	}
}

func TestFallback_Deterministic(t *testing.T) {
	records := devopsRecords()
	report := analyzer.Analyze(records)

	first := Fallback(report, records)
	second := Fallback(report, records)

	if !reflect.DeepEqual(first, second) {
		t.Error("fallback insights should be deterministic for the same report")
	}
}
