// Package lifecycle owns the visibility of the main window and the shutdown
// sequence. All window state changes go through Machine, which runs on the
// GUI thread; other goroutines only send Events through a Dispatcher.
package lifecycle

// State is the visibility state of the main window.
type State int

const (
	// Hidden means the window is not shown; the app lives in the tray.
	Hidden State = iota
	// Visible means the window is shown.
	Visible
	// Terminating is terminal: teardown has started and events are ignored.
	Terminating
)

// String returns the string representation of the state.
func (s State) String() string {
	switch s {
	case Hidden:
		return "Hidden"
	case Visible:
		return "Visible"
	case Terminating:
		return "Terminating"
	default:
		return "Unknown"
	}
}

// Event is a request to change window visibility or quit.
type Event int

const (
	// HotkeyPressed is sent by the global hotkey listener.
	HotkeyPressed Event = iota
	// TrayDoubleClick is sent when the tray icon is double-clicked.
	TrayDoubleClick
	// ShowRequested is sent by the "Show Window" tray menu entry.
	ShowRequested
	// CloseRequested is sent when the user closes the window.
	CloseRequested
	// QuitRequested is sent by the "Quit" tray menu entry or Ctrl+Q.
	QuitRequested
)

// String returns the string representation of the event.
func (e Event) String() string {
	switch e {
	case HotkeyPressed:
		return "HotkeyPressed"
	case TrayDoubleClick:
		return "TrayDoubleClick"
	case ShowRequested:
		return "ShowRequested"
	case CloseRequested:
		return "CloseRequested"
	case QuitRequested:
		return "QuitRequested"
	default:
		return "Unknown"
	}
}
