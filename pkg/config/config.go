package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v2"
)

// Config represents the main configuration
type Config struct {
	Render  RenderConfig  `yaml:"render"`
	Display DisplayConfig `yaml:"display"`
	Logging LoggingConfig `yaml:"logging"`
}

// RenderConfig contains renderer configuration
type RenderConfig struct {
	Width        int  `yaml:"width"`
	Height       int  `yaml:"height"`
	NumThreads   int  `yaml:"num_threads"`
	ShowWarnings bool `yaml:"show_warnings"`
	ShadeAtHit   bool `yaml:"shade_at_hit"`
}

// DisplayConfig contains the on-screen viewer configuration
type DisplayConfig struct {
	Enabled bool   `yaml:"enabled"`
	Scale   int    `yaml:"scale"`
	Title   string `yaml:"title"`
}

// LoggingConfig contains logging configuration
type LoggingConfig struct {
	Level string `yaml:"level"`
	File  string `yaml:"file"`
}

// DefaultConfig creates a default configuration
func DefaultConfig() *Config {
	return &Config{
		Render: RenderConfig{
			Width:        256,
			Height:       256,
			NumThreads:   4,
			ShowWarnings: false,
			ShadeAtHit:   false,
		},
		Display: DisplayConfig{
			Enabled: false,
			Scale:   2,
			Title:   "lumen",
		},
		Logging: LoggingConfig{
			Level: "info",
		},
	}
}

// LoadConfig loads the configuration from a file
func LoadConfig(filePath string) (*Config, error) {
	config := DefaultConfig()

	data, err := os.ReadFile(filePath)
	if err != nil {
		return config, fmt.Errorf("config file not found, using defaults: %v", err)
	}

	err = yaml.Unmarshal(data, config)
	if err != nil {
		return config, fmt.Errorf("error parsing config: %v", err)
	}

	return config, nil
}

// SaveConfig saves the configuration to a file
func SaveConfig(config *Config, filePath string) error {
	data, err := yaml.Marshal(config)
	if err != nil {
		return fmt.Errorf("error serializing config: %v", err)
	}

	err = os.WriteFile(filePath, data, 0644)
	if err != nil {
		return fmt.Errorf("error writing config file: %v", err)
	}

	return nil
}
