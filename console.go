package main

import (
	"os"
	"strings"
)

// shouldShowConsole reports whether the console window should stay open:
// for any subcommand, for help and version output, and with --verbose.
func shouldShowConsole(args []string) bool {
	if os.Getenv("JSON_FORMATTER_SHOW_CONSOLE") != "" {
		return true
	}

	for _, raw := range args {
		arg := strings.TrimSpace(raw)
		if arg == "" {
			continue
		}
		if !strings.HasPrefix(arg, "-") {
			// subcommand
			return true
		}
		switch strings.TrimLeft(arg, "-") {
		case "v", "verbose", "verbose=true", "h", "help", "version":
			return true
		}
	}
	return false
}
