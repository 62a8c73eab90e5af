package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// Config is the top-level cmdchronicle configuration.
type Config struct {
	DataDir    string     `mapstructure:"data_dir"`
	Collection Collection `mapstructure:"collection"`
	Analysis   Analysis   `mapstructure:"analysis"`
	Ollama     Ollama     `mapstructure:"ollama"`
	Output     Output     `mapstructure:"output"`
}

// Collection configures record gathering.
type Collection struct {
	// Shell is bash, zsh, fish, or auto.
	Shell string `mapstructure:"shell"`

	// Limit caps the number of collected records.
	Limit int `mapstructure:"limit"`

	// HistoryFile overrides the shell's default history file location.
	HistoryFile string `mapstructure:"history_file"`
}

// Analysis configures engine thresholds.
type Analysis struct {
	WorkflowWindowSeconds int     `mapstructure:"workflow_window_seconds"`
	AutomationThreshold   float64 `mapstructure:"automation_threshold"`
}

// Ollama configures the insight generation service.
type Ollama struct {
	BaseURL        string `mapstructure:"base_url"`
	Model          string `mapstructure:"model"`
	TimeoutSeconds int    `mapstructure:"timeout_seconds"`
}

// Output defines output preferences.
type Output struct {
	Color bool `mapstructure:"color"`
	Width int  `mapstructure:"width"`
}

// expandPath replaces a leading ~ with the user's home directory.
func expandPath(path string) string {
	if strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return path
		}
		return filepath.Join(home, path[2:])
	}
	return path
}

// Load reads configuration from the given path (or the default location)
// and returns a Config with all defaults applied. A missing config file is
// not an error.
func Load(cfgFile string) (*Config, error) {
	v := viper.New()

	v.SetDefault("data_dir", DefaultDataDir)
	v.SetDefault("collection.shell", DefaultCollection.Shell)
	v.SetDefault("collection.limit", DefaultCollection.Limit)
	v.SetDefault("collection.history_file", "")
	v.SetDefault("analysis.workflow_window_seconds", DefaultAnalysis.WorkflowWindowSeconds)
	v.SetDefault("analysis.automation_threshold", DefaultAnalysis.AutomationThreshold)
	v.SetDefault("ollama.base_url", DefaultOllama.BaseURL)
	v.SetDefault("ollama.model", DefaultOllama.Model)
	v.SetDefault("ollama.timeout_seconds", DefaultOllama.TimeoutSeconds)
	v.SetDefault("output.color", DefaultOutput.Color)
	v.SetDefault("output.width", DefaultOutput.Width)

	if cfgFile != "" {
		v.SetConfigFile(expandPath(cfgFile))
	} else {
		v.AddConfigPath(expandPath(DefaultConfigDir))
		v.SetConfigName("config")
		v.SetConfigType("yaml")
	}

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			if !os.IsNotExist(err) {
				return nil, err
			}
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, err
	}

	cfg.DataDir = expandPath(cfg.DataDir)
	cfg.Collection.HistoryFile = expandPath(cfg.Collection.HistoryFile)

	return &cfg, nil
}

// DBPath returns the full path to the SQLite snapshot database.
func DBPath() string {
	return filepath.Join(expandPath(DefaultConfigDir), DefaultDBName)
}
