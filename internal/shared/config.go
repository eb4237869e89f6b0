package shared

import (
	_ "embed"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/BurntSushi/toml"
)

//go:embed config.example.toml
var exampleConf []byte

// Config represents the application configuration loaded from a TOML file.
type Config struct {
	Session SessionConfig `toml:"session"`
	Store   StoreConfig   `toml:"store"`
	Player  PlayerConfig  `toml:"player"`
	Log     LogConfig     `toml:"log"`
}

// SessionConfig contains session persistence settings.
type SessionConfig struct {
	Path string `toml:"path"`
}

// StoreConfig contains mock catalog settings.
type StoreConfig struct {
	LoginDelayMS int `toml:"login_delay_ms"`
}

// PlayerConfig contains playback defaults.
type PlayerConfig struct {
	DefaultVolume float64 `toml:"default_volume"`
}

// LogConfig contains file logger settings used while the TUI is running.
type LogConfig struct {
	Path string `toml:"path"`
}

// LoginDelay converts the configured millisecond latency to a [time.Duration].
func (c StoreConfig) LoginDelay() time.Duration {
	if c.LoginDelayMS < 0 {
		return 0
	}
	return time.Duration(c.LoginDelayMS) * time.Millisecond
}

// ResolvePath returns the configured session file path, falling back to
// <user config dir>/chorus/session.json when unset.
func (c SessionConfig) ResolvePath() (string, error) {
	if c.Path != "" {
		return c.Path, nil
	}

	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("failed to resolve config directory: %w", err)
	}

	return filepath.Join(dir, "chorus", "session.json"), nil
}

// LoadConfig reads and parses a TOML configuration file from the specified path.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var config Config
	if err := toml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	return &config, nil
}

// DefaultConfig returns a Config with sensible defaults loaded from the embedded example config.
func DefaultConfig() *Config {
	var config Config
	if err := toml.Unmarshal(exampleConf, &config); err != nil {
		panic(fmt.Sprintf("failed to parse embedded default config: %v", err))
	}
	return &config
}

// CreateConfigFile creates a config.toml file at the specified path using the embedded example config.
func CreateConfigFile(path string) error {
	// Check if file already exists
	if _, err := os.Stat(path); err == nil {
		return fmt.Errorf("config file already exists at %s: %w", path, err)
	}

	// Write the embedded example config to the file
	if err := os.WriteFile(path, exampleConf, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}
