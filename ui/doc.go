// Package ui provides the graphical user interface for JSON Formatter.
//
// This package implements the GTK4-based user interface including:
//
//   - Main window with input pane, output pane and Format button
//   - System tray indicator that keeps the app reachable while hidden
//   - Preferences and About dialogs
//
// # Architecture
//
// The UI is built on GTK4 using the gotk4 bindings. Key components:
//
//   - Application: GTK application lifecycle and wiring of the hotkey
//     listener, tray, state machine and teardown sequence
//   - MainWindow: formatter window; implements lifecycle.Window
//   - TrayIndicator: system tray icon and menu; implements
//     lifecycle.TrayStatus
//
// # Thread Safety
//
// GTK operations must execute on the main thread. The hotkey listener and
// the tray menu run on their own goroutines and only send lifecycle events
// to a lifecycle.Dispatcher, which hands them to the state machine through
// glib.IdleAdd().
//
// # File Organization
//
//   - app.go: Application lifecycle and wiring
//   - main_window.go: Main window layout, actions and formatting
//   - tray.go: System tray indicator
//   - styles.go: CSS styling
//   - preferences.go: Settings dialog
package ui
