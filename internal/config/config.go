// Package config handles configuration file loading and parsing.
package config

import (
	"errors"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"

	"github.com/jmylchreest/popkit/internal/keyevent"
)

// Default configuration values.
const (
	DefaultOpenKey   = keyevent.KeyEnter
	DefaultCloseKey  = keyevent.KeyEscape
	DefaultUpKey     = keyevent.KeyArrowUp
	DefaultDownKey   = keyevent.KeyArrowDown
	DefaultQuitKey   = "q"
	DefaultHelpKey   = "?"
	DefaultPopupCols = 28
	DefaultPopupRows = 7
)

// Config represents the popkit configuration.
type Config struct {
	Keys  KeysConfig  `toml:"keys"`
	Popup PopupConfig `toml:"popup"`
	TUI   TUIConfig   `toml:"tui"`
}

// KeysConfig maps demo actions to key identities. Identities use the
// canonical names from the keyevent package (Enter, Space, Escape,
// ArrowUp/Down/Left/Right) or a single printable rune.
type KeysConfig struct {
	Open  string `toml:"open"`  // Open the context popup
	Close string `toml:"close"` // Close the context popup
	Up    string `toml:"up"`    // Move selection up
	Down  string `toml:"down"`  // Move selection down
	Quit  string `toml:"quit"`  // Quit the demo
	Help  string `toml:"help"`  // Toggle the help view
}

// PopupConfig sizes the demo popup.
type PopupConfig struct {
	Cols int `toml:"cols"` // Popup width in cells
	Rows int `toml:"rows"` // Popup height in cells
}

// TUIConfig holds TUI-specific settings.
type TUIConfig struct {
	ShowKeybindBar bool `toml:"show_keybind_bar"`
}

// DefaultConfig returns a Config with default values.
func DefaultConfig() *Config {
	return &Config{
		Keys: KeysConfig{
			Open:  DefaultOpenKey,
			Close: DefaultCloseKey,
			Up:    DefaultUpKey,
			Down:  DefaultDownKey,
			Quit:  DefaultQuitKey,
			Help:  DefaultHelpKey,
		},
		Popup: PopupConfig{
			Cols: DefaultPopupCols,
			Rows: DefaultPopupRows,
		},
		TUI: TUIConfig{
			ShowKeybindBar: true,
		},
	}
}

// ConfigPath returns the path to the config file.
// Uses XDG_CONFIG_HOME if set, otherwise ~/.config.
func ConfigPath() string {
	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return ""
		}
		configHome = filepath.Join(home, ".config")
	}
	return filepath.Join(configHome, "popkit", "config.toml")
}

// LoadConfig loads configuration from the specified path.
// If path is empty, uses the default config path.
// Returns default config if file doesn't exist.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		path = ConfigPath()
	}

	// Start with defaults so a partial file only overrides what it names
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return nil, err
	}

	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Save writes the configuration to the specified path.
// Creates parent directories if needed.
func (c *Config) Save(path string) error {
	if path == "" {
		path = ConfigPath()
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	data, err := toml.Marshal(c)
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0644)
}
