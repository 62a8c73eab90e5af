// Package config provides configuration loading and defaults for cmdchronicle.
package config

// DefaultConfigDir is the default location for cmdchronicle configuration.
const DefaultConfigDir = "~/.config/cmdchronicle"

// DefaultDBName is the filename for the SQLite snapshot database.
const DefaultDBName = "cmdchronicle.db"

// DefaultDataDir is the default location for collected data files.
const DefaultDataDir = "~/.local/share/cmdchronicle"

// DefaultCollection holds the default collection settings.
var DefaultCollection = Collection{
	Shell: "auto",
	Limit: 1000,
}

// DefaultAnalysis holds the default engine thresholds.
var DefaultAnalysis = Analysis{
	WorkflowWindowSeconds: 300,
	AutomationThreshold:   0.3,
}

// DefaultOllama holds the default insight service settings.
var DefaultOllama = Ollama{
	BaseURL:        "http://localhost:11434",
	Model:          "llama3.2",
	TimeoutSeconds: 30,
}

// DefaultOutput holds the default output preferences.
var DefaultOutput = Output{
	Color: true,
	Width: 80,
}
