package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestLoad_Defaults(t *testing.T) {
	// Point at a config file that does not exist; defaults must apply.
	cfg, err := Load(filepath.Join(t.TempDir(), "config.yaml"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.Collection.Shell != "auto" {
		t.Errorf("expected shell 'auto', got %q", cfg.Collection.Shell)
	}
	if cfg.Collection.Limit != 1000 {
		t.Errorf("expected limit 1000, got %d", cfg.Collection.Limit)
	}
	if cfg.Analysis.WorkflowWindowSeconds != 300 {
		t.Errorf("expected workflow window 300, got %d", cfg.Analysis.WorkflowWindowSeconds)
	}
	if cfg.Analysis.AutomationThreshold != 0.3 {
		t.Errorf("expected threshold 0.3, got %v", cfg.Analysis.AutomationThreshold)
	}
	if cfg.Ollama.BaseURL != "http://localhost:11434" {
		t.Errorf("unexpected ollama URL %q", cfg.Ollama.BaseURL)
	}
	if strings.HasPrefix(cfg.DataDir, "~") {
		t.Errorf("data dir should be expanded, got %q", cfg.DataDir)
	}
}

func TestLoad_FileOverrides(t *testing.T) {
	dir := t.TempDir()
	cfgPath := filepath.Join(dir, "config.yaml")
	content := `data_dir: /tmp/chronicle-test
collection:
  shell: fish
  limit: 250
ollama:
  model: mistral
`
	if err := os.WriteFile(cfgPath, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(cfgPath)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.DataDir != "/tmp/chronicle-test" {
		t.Errorf("expected overridden data dir, got %q", cfg.DataDir)
	}
	if cfg.Collection.Shell != "fish" {
		t.Errorf("expected shell 'fish', got %q", cfg.Collection.Shell)
	}
	if cfg.Collection.Limit != 250 {
		t.Errorf("expected limit 250, got %d", cfg.Collection.Limit)
	}
	if cfg.Ollama.Model != "mistral" {
		t.Errorf("expected model 'mistral', got %q", cfg.Ollama.Model)
	}
	// Untouched settings keep their defaults.
	if cfg.Analysis.WorkflowWindowSeconds != 300 {
		t.Errorf("expected default workflow window, got %d", cfg.Analysis.WorkflowWindowSeconds)
	}
}

func TestExpandPath(t *testing.T) {
	home, err := os.UserHomeDir()
	if err != nil {
		t.Skip("no home directory")
	}

	if got := expandPath("~/data"); got != filepath.Join(home, "data") {
		t.Errorf("expected home expansion, got %q", got)
	}
	if got := expandPath("/absolute/path"); got != "/absolute/path" {
		t.Errorf("absolute path should pass through, got %q", got)
	}
	if got := expandPath(""); got != "" {
		t.Errorf("empty path should pass through, got %q", got)
	}
}
