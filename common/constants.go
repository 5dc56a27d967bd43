// Package common provides shared constants, types, and utilities
// used across the JSON Formatter application.
package common

import "time"

// Application metadata.
const (
	// AppID is the unique identifier for the application.
	AppID = "com.jsonformatter.app"
	// AppName is the display name of the application. It is also the
	// autostart entry name.
	AppName = "JSON Formatter"
	// ConfigDirName is the name of the configuration directory.
	ConfigDirName = "json-formatter"
)

// File names used by the application.
const (
	ConfigFileName   = "config.yaml"
	LogFileName      = "json-formatter.log"
	IconFileName     = "icon.png"
	IconICOFileName  = "icon.ico"
	DesktopEntryName = "json-formatter.desktop"
)

// Default timeouts and intervals.
const (
	// NotificationTimeout is how long tray notifications stay on screen.
	NotificationTimeout = 2 * time.Second
	// DoubleClickInterval is the maximum gap between two tray taps that
	// still counts as a double-click.
	DoubleClickInterval = 400 * time.Millisecond
	// QuitGracePeriod is how long the teardown waits for the GTK main loop
	// to unwind before the process kills itself.
	QuitGracePeriod = 2 * time.Second
	// MaxQuitGracePeriod caps the configurable grace period.
	MaxQuitGracePeriod = 10 * time.Second
)

// UI constants.
const (
	// DefaultWindowWidth is the default main window width.
	DefaultWindowWidth = 500
	// DefaultWindowHeight is the default main window height.
	DefaultWindowHeight = 400
	// MinWindowWidth is the minimum window width.
	MinWindowWidth = 320
	// MinWindowHeight is the minimum window height.
	MinWindowHeight = 240
	// FormatButtonWidth is the fixed width of the Format button.
	FormatButtonWidth = 200
	// TrayIconSize is the edge length of the generated tray icon.
	TrayIconSize = 64
)

// DefaultHotkey is the global chord that brings the window forward.
const DefaultHotkey = "ctrl+shift+j"

// IndentUnit is the indentation used for formatted output.
const IndentUnit = "    "
