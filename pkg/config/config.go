package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/dreedsanders/EggyCommutes-sub000/pkg/engine"
)

// DefaultRefreshSeconds is how often the watch loop rebuilds the board.
const DefaultRefreshSeconds = 300

// AppConfig holds all user-defined persistent settings.
type AppConfig struct {
	HomeAddress    string              `json:"home_address,omitempty"`
	CanonicalZone  string              `json:"canonical_zone,omitempty"` // defaults to America/Chicago
	RefreshSeconds int                 `json:"refresh_seconds,omitempty"`
	AccentColor    string              `json:"accent_color,omitempty"`
	Stops          []engine.StopConfig `json:"stops,omitempty"`
}

// RefreshSecondsOrDefault returns the configured refresh interval, falling
// back to the 300 s default.
func (c *AppConfig) RefreshSecondsOrDefault() int {
	if c.RefreshSeconds > 0 {
		return c.RefreshSeconds
	}
	return DefaultRefreshSeconds
}

// StopByName finds a configured stop by its display name.
func (c *AppConfig) StopByName(name string) (*engine.StopConfig, bool) {
	for i := range c.Stops {
		if c.Stops[i].Name == name {
			return &c.Stops[i], true
		}
	}
	return nil, false
}

// getConfigPath returns the absolute path to ~/.eggycommutes.json
func getConfigPath() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("could not find user home directory: %w", err)
	}
	return filepath.Join(homeDir, ".eggycommutes.json"), nil
}

// Load reads the application configuration from disk.
// Returns the default stop set if the file does not exist.
func Load() (*AppConfig, error) {
	path, err := getConfigPath()
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		// First run: seed the reference commute so the board isn't empty
		if os.IsNotExist(err) {
			return Default(), nil
		}
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg AppConfig
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config JSON: %w", err)
	}

	return &cfg, nil
}

// Save writes the application configuration back to disk.
func Save(cfg *AppConfig) error {
	path, err := getConfigPath()
	if err != nil {
		return err
	}

	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to serialize config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}
