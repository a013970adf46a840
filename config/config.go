// Package config loads application configuration from an optional YAML file
// with environment variable overrides. Precedence, lowest to highest:
// defaults, config file, environment.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/campusbook/campusbook/pkg/logging"
)

// Config holds all application configuration.
type Config struct {
	App     AppConfig      `yaml:"app"`
	Logging logging.Config `yaml:"logging"`
	UI      UIConfig       `yaml:"ui"`
}

// AppConfig holds general application settings.
type AppConfig struct {
	Name string `yaml:"name"`

	// DataFile is where the roster snapshot lives.
	DataFile string `yaml:"data_file"`
}

// UIConfig holds terminal interface settings.
type UIConfig struct {
	// ShowWelcome controls the greeting line on startup.
	ShowWelcome bool `yaml:"show_welcome"`
}

// Environment variable overrides.
const (
	EnvDataFile = "CAMPUSBOOK_DATA_FILE"
	EnvLogLevel = "CAMPUSBOOK_LOG_LEVEL"
	EnvLogFile  = "CAMPUSBOOK_LOG_FILE"
)

// Default returns the built-in configuration. The data file lives under the
// user config directory when resolvable, next to the binary otherwise.
func Default() *Config {
	dataFile := "campusbook.json"
	if dir, err := os.UserConfigDir(); err == nil {
		dataFile = filepath.Join(dir, "campusbook", "campusbook.json")
	}
	return &Config{
		App: AppConfig{
			Name:     "CampusBook",
			DataFile: dataFile,
		},
		Logging: logging.DefaultConfig(),
		UI:      UIConfig{ShowWelcome: true},
	}
}

// Load builds the configuration. A missing config file is fine; a present
// but unreadable or malformed one is an error.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil && !os.IsNotExist(err) {
			return nil, fmt.Errorf("read config file %s: %w", path, err)
		}
		if err == nil {
			if err := yaml.Unmarshal(data, cfg); err != nil {
				return nil, fmt.Errorf("parse config file %s: %w", path, err)
			}
		}
	}

	cfg.App.DataFile = getEnv(EnvDataFile, cfg.App.DataFile)
	cfg.Logging.Level = getEnv(EnvLogLevel, cfg.Logging.Level)
	cfg.Logging.File = getEnv(EnvLogFile, cfg.Logging.File)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks that the configuration is usable.
func (c *Config) Validate() error {
	if c.App.DataFile == "" {
		return fmt.Errorf("data file path cannot be empty")
	}
	if _, err := logging.ParseLevel(c.Logging.Level); err != nil {
		return err
	}
	return nil
}

func getEnv(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}
