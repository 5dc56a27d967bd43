// Package main provides the entry point for JSON Formatter.
// JSON Formatter is a tray-resident GTK4 window that validates and
// pretty-prints JSON, brought up from anywhere with a global hotkey.
//
// Features:
//   - Four-space pretty-printing that keeps key order and non-ASCII text
//   - Global hotkey (Ctrl+Shift+J by default) to show the window
//   - Close to tray, quit from the tray menu
//   - Optional start at login
//   - Command-line and terminal formatters for scripting
//
// Usage:
//
//	json-formatter [command] [options]
package main

import (
	"os"

	"github.com/yllada/json-formatter/cli"
)

// Build-time variables injected via ldflags (-X main.appVersion=x.y.z)
// Default values are used for local development builds
var (
	appVersion = "dev"
	buildTime  = "unknown"
	commitSHA  = "unknown"
)

func main() {
	os.Exit(cli.Execute(cli.BuildInfo{
		Version:   appVersion,
		BuildTime: buildTime,
		Commit:    commitSHA,
	}))
}
