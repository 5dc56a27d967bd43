// Package common provides shared constants, types, utilities, and interfaces
// used throughout the JSON Formatter application.
//
// This package holds the cross-cutting concerns:
//
//   - Constants: application name, file names, timeouts and window sizes
//   - Errors: sentinel errors checked with errors.Is across packages
//   - Interfaces: notification and logging abstractions
//   - Logger: leveled logging to stdout and a rotated log file
//   - Utils: config/data directory resolution and file helpers
//
// # Usage
//
//	common.LogInfo("Formatted %d bytes", n)
//
//	if errors.Is(err, common.ErrAutostartUnsupported) {
//	    // disable the menu entry
//	}
package common
