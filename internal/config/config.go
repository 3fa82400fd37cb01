package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// Config represents the tool configuration from config.toml
type Config struct {
	Corpus struct {
		Path string `toml:"path"` // Collection file to review
	} `toml:"corpus"`
	Export struct {
		Path string `toml:"path"` // Where Export All writes the annotation snapshot
	} `toml:"export"`
	UI struct {
		Theme string `toml:"theme"` // Theme name, see internal/ui themes
	} `toml:"ui"`
}

// LoadConfig loads configuration from the standard XDG config path with
// sensible defaults. Environment variables TWEETSCOPE_CORPUS,
// TWEETSCOPE_EXPORT and TWEETSCOPE_THEME override the file.
func LoadConfig() (*Config, error) {
	// Get config directory using XDG_CONFIG_HOME or fallback
	configDir := os.Getenv("XDG_CONFIG_HOME")
	if configDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("failed to get home directory: %w", err)
		}
		configDir = filepath.Join(home, ".config")
	}

	configPath := filepath.Join(configDir, "tweetscope", "config.toml")

	config := &Config{}
	config.Corpus.Path = "tweets.json"
	config.Export.Path = "annotations_export.json"
	config.UI.Theme = "dusk"

	// Read config file if it exists
	if _, err := os.Stat(configPath); err == nil {
		configData, err := os.ReadFile(configPath)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}

		// Parse TOML config, merging with defaults
		if err := toml.Unmarshal(configData, config); err != nil {
			return nil, fmt.Errorf("failed to parse config: %w", err)
		}
	}

	if v := os.Getenv("TWEETSCOPE_CORPUS"); v != "" {
		config.Corpus.Path = v
	}
	if v := os.Getenv("TWEETSCOPE_EXPORT"); v != "" {
		config.Export.Path = v
	}
	if v := os.Getenv("TWEETSCOPE_THEME"); v != "" {
		config.UI.Theme = v
	}

	return config, nil
}
