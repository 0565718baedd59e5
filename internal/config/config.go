// Package config handles loading application configuration.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
	"gopkg.in/yaml.v3"

	"github.com/hy4ri/trackerbot/internal/storage"
)

const appDir = "trackerbot"

// Config represents the application configuration.
type Config struct {
	Storage StorageConfig `yaml:"storage"`
	UI      UIConfig      `yaml:"ui"`

	// Debug writes a debug.log next to the config file.
	Debug bool `yaml:"debug" env:"TRACKERBOT_DEBUG"`
}

// StorageConfig holds save file settings.
type StorageConfig struct {
	// DataFile overrides the default save file location.
	DataFile string `yaml:"data_file,omitempty" env:"TRACKERBOT_DATA_FILE"`

	// Autosave writes the save file after every command that changes the list.
	Autosave bool `yaml:"autosave" env:"TRACKERBOT_AUTOSAVE"`
}

// UIConfig holds UI-related settings.
type UIConfig struct {
	Plain         bool          `yaml:"plain" env:"TRACKERBOT_PLAIN"`
	AltScreen     bool          `yaml:"alt_screen"`
	Notifications bool          `yaml:"notifications" env:"TRACKERBOT_NOTIFICATIONS"`
	RemindWithin  time.Duration `yaml:"remind_within" env:"TRACKERBOT_REMIND_WITHIN"`
}

// DefaultConfig returns a new Config with default values.
func DefaultConfig() *Config {
	return &Config{
		UI: UIConfig{
			AltScreen:    true,
			RemindWithin: time.Hour,
		},
	}
}

// ConfigDir returns the path to the configuration directory.
// Creates the directory if it doesn't exist.
func ConfigDir() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}

	configDir := filepath.Join(homeDir, ".config", appDir)
	if err := os.MkdirAll(configDir, 0700); err != nil {
		return "", fmt.Errorf("failed to create config directory: %w", err)
	}

	return configDir, nil
}

// ConfigPath returns the full path to the configuration file.
func ConfigPath() (string, error) {
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.yaml"), nil
}

// LogPath returns the debug log location.
func LogPath() (string, error) {
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "debug.log"), nil
}

// DataDir returns the directory holding the save file.
// Uses XDG_DATA_HOME or defaults to ~/.local/share/trackerbot/.
// The directory is created on first save, not here.
func DataDir() (string, error) {
	dataHome := os.Getenv("XDG_DATA_HOME")
	if dataHome == "" {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("failed to get home directory: %w", err)
		}
		dataHome = filepath.Join(homeDir, ".local", "share")
	}
	return filepath.Join(dataHome, appDir), nil
}

// DataFile returns the save file path: the configured one, with a leading
// "~/" expanded, or data.txt in DataDir.
func (c *Config) DataFile() (string, error) {
	path := c.Storage.DataFile
	if path == "" {
		dir, err := DataDir()
		if err != nil {
			return "", err
		}
		return filepath.Join(dir, storage.FileName), nil
	}

	if rest, ok := strings.CutPrefix(path, "~/"); ok {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("failed to get home directory: %w", err)
		}
		path = filepath.Join(homeDir, rest)
	}
	return path, nil
}

// Load reads the configuration from the config file, then applies
// TRACKERBOT_* environment overrides.
// If the file doesn't exist, the defaults are used.
func Load() (*Config, error) {
	path, err := ConfigPath()
	if err != nil {
		return nil, err
	}

	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config file: %w", err)
		}
	case os.IsNotExist(err):
		// defaults
	default:
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	if err := cleanenv.ReadEnv(cfg); err != nil {
		return nil, fmt.Errorf("failed to read environment: %w", err)
	}

	return cfg, nil
}

// Template is the commented config file written by --init.
const Template = `# TrackerBot Configuration
# Location: ~/.config/trackerbot/config.yaml
# Every setting below can also be set with the TRACKERBOT_* variable named next to it.

storage:
  # Save file location (default: ~/.local/share/trackerbot/data.txt)   TRACKERBOT_DATA_FILE
  data_file: ""

  # Save after every command that changes the list, not only on "bye"   TRACKERBOT_AUTOSAVE
  autosave: false

ui:
  # Plain line console instead of the full-screen UI                    TRACKERBOT_PLAIN
  plain: false

  # Use the terminal's alternate screen for the full-screen UI
  alt_screen: true

  # Desktop reminders for upcoming deadlines and events                 TRACKERBOT_NOTIFICATIONS
  notifications: false

  # How far ahead reminders look                                        TRACKERBOT_REMIND_WITHIN
  remind_within: 1h

# Write debug.log next to this file                                     TRACKERBOT_DEBUG
debug: false
`
