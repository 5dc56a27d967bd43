// Package common provides shared constants, types, and utilities
// used across the JSON Formatter application.
package common

import (
	"os"
	"path/filepath"
)

// configHome resolves $XDG_CONFIG_HOME, falling back to ~/.config.
func configHome() (string, error) {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" && filepath.IsAbs(xdg) {
		return xdg, nil
	}
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", WrapError(err, "failed to get home directory")
	}
	return filepath.Join(homeDir, ".config"), nil
}

// ConfigHome returns the base directory for per-user configuration.
func ConfigHome() (string, error) {
	return configHome()
}

// GetConfigDir returns the path to the application configuration directory.
// It creates the directory if it doesn't exist.
func GetConfigDir() (string, error) {
	base, err := configHome()
	if err != nil {
		return "", err
	}

	configDir := filepath.Join(base, ConfigDirName)
	if err := os.MkdirAll(configDir, 0700); err != nil {
		return "", WrapError(err, "failed to create config directory")
	}

	return configDir, nil
}

// GetDataDir returns the path to the application data directory.
func GetDataDir() (string, error) {
	base := os.Getenv("XDG_DATA_HOME")
	if base == "" || !filepath.IsAbs(base) {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return "", WrapError(err, "failed to get home directory")
		}
		base = filepath.Join(homeDir, ".local", "share")
	}

	dataDir := filepath.Join(base, ConfigDirName)
	if err := os.MkdirAll(dataDir, 0700); err != nil {
		return "", WrapError(err, "failed to create data directory")
	}

	return dataDir, nil
}

// ExecutablePath returns the absolute, symlink-resolved path of the running
// binary. Autostart entries point at this path.
func ExecutablePath() (string, error) {
	exe, err := os.Executable()
	if err != nil {
		return "", WrapError(err, "failed to resolve executable")
	}
	if resolved, err := filepath.EvalSymlinks(exe); err == nil {
		exe = resolved
	}
	return exe, nil
}

// FileExists checks if a file exists at the given path.
func FileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
