// Package config provides configuration management for JSON Formatter.
// Preferences are optional: when no file exists the built-in defaults are
// used and nothing is written to disk.
package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/yllada/json-formatter/common"
)

// Config represents the application preferences.
type Config struct {
	// Hotkey is the global chord that brings the window forward,
	// e.g. "ctrl+shift+j".
	Hotkey string `yaml:"hotkey"`
	// ShowNotifications enables the startup and close-to-tray notices.
	ShowNotifications bool `yaml:"show_notifications"`
	// WindowWidth and WindowHeight set the initial window size.
	WindowWidth  int `yaml:"window_width"`
	WindowHeight int `yaml:"window_height"`
	// QuitGracePeriod is how long Quit waits for the main loop before the
	// process kills itself.
	QuitGracePeriod time.Duration `yaml:"quit_grace_period"`
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		Hotkey:            common.DefaultHotkey,
		ShowNotifications: true,
		WindowWidth:       common.DefaultWindowWidth,
		WindowHeight:      common.DefaultWindowHeight,
		QuitGracePeriod:   common.QuitGracePeriod,
	}
}

// Path returns the preferences file location.
func Path() (string, error) {
	if custom := os.Getenv("JSON_FORMATTER_CONFIG"); custom != "" {
		return custom, nil
	}
	base, err := common.ConfigHome()
	if err != nil {
		return "", err
	}
	return filepath.Join(base, common.ConfigDirName, common.ConfigFileName), nil
}

// Load reads the preferences file. A missing file yields DefaultConfig.
func Load() (*Config, error) {
	configPath, err := Path()
	if err != nil {
		return nil, err
	}
	return LoadFile(configPath)
}

// LoadFile reads preferences from path. Fields absent from the file keep
// their default values.
func LoadFile(path string) (*Config, error) {
	cfg := DefaultConfig()

	file, err := os.Open(path)
	if errors.Is(err, os.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %v", common.ErrConfigLoad, err)
	}
	defer file.Close()

	decoder := yaml.NewDecoder(file)
	decoder.KnownFields(true)

	if err := decoder.Decode(cfg); err != nil {
		// an empty file decodes to io.EOF
		if errors.Is(err, io.EOF) {
			return cfg, nil
		}
		return nil, fmt.Errorf("%w: parsing %s: %v", common.ErrConfigLoad, path, err)
	}

	cfg.validate()
	return cfg, nil
}

// validate replaces out-of-range values with defaults.
func (c *Config) validate() {
	defaults := DefaultConfig()

	if c.Hotkey == "" {
		c.Hotkey = defaults.Hotkey
	}
	if c.WindowWidth < common.MinWindowWidth {
		c.WindowWidth = defaults.WindowWidth
	}
	if c.WindowHeight < common.MinWindowHeight {
		c.WindowHeight = defaults.WindowHeight
	}
	if c.QuitGracePeriod <= 0 {
		c.QuitGracePeriod = defaults.QuitGracePeriod
	}
	if c.QuitGracePeriod > common.MaxQuitGracePeriod {
		c.QuitGracePeriod = common.MaxQuitGracePeriod
	}
}

// Save writes the configuration to the preferences file.
func (c *Config) Save() error {
	configPath, err := Path()
	if err != nil {
		return err
	}
	return c.SaveFile(configPath)
}

// SaveFile writes the configuration to path atomically.
func (c *Config) SaveFile(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return fmt.Errorf("%w: creating config directory: %v", common.ErrConfigSave, err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("%w: serializing: %v", common.ErrConfigSave, err)
	}

	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, 0600); err != nil {
		return fmt.Errorf("%w: %v", common.ErrConfigSave, err)
	}
	if err := os.Rename(tmp, path); err != nil {
		return fmt.Errorf("%w: %v", common.ErrConfigSave, err)
	}
	return nil
}
