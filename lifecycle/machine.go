package lifecycle

import (
	"fmt"

	"github.com/yllada/json-formatter/common"
)

// Window is the part of the main window the state machine drives.
type Window interface {
	// Present un-minimizes, shows and focuses the window.
	Present()
	// Hide hides the window without destroying it.
	Hide()
}

// TrayStatus reports whether a tray icon is currently on screen.
type TrayStatus interface {
	Available() bool
}

// MachineConfig holds the collaborators of a Machine.
type MachineConfig struct {
	Window   Window
	Tray     TrayStatus
	Notifier common.Notifier
	// Quit runs the teardown sequence. It is called at most once.
	Quit func()
	// HotkeyLabel is shown in the startup notification, e.g. "Ctrl+Shift+J".
	HotkeyLabel string
	// Notifications enables the startup and close-to-tray notices.
	Notifications bool
	// OnTransition, if set, is called after every state change.
	OnTransition func(from, to State)
}

// Machine is the window lifecycle state machine. It is the only code that
// shows or hides the window and must only be used from the GUI thread.
type Machine struct {
	cfg              MachineConfig
	state            State
	closeNoticeShown bool
}

// NewMachine creates a Machine in the Visible state. Call Start once the
// window exists.
func NewMachine(cfg MachineConfig) *Machine {
	return &Machine{
		cfg:   cfg,
		state: Visible,
	}
}

// State returns the current state.
func (m *Machine) State() State {
	return m.state
}

// SetNotifications turns the startup and close-to-tray notices on or off.
func (m *Machine) SetNotifications(enabled bool) {
	m.cfg.Notifications = enabled
}

// Start presents the window and announces that the app is running.
func (m *Machine) Start() {
	m.cfg.Window.Present()
	m.notify(fmt.Sprintf("%s is running. Press %s to open the window.", common.AppName, m.cfg.HotkeyLabel))
}

// Handle applies ev and returns the resulting state.
func (m *Machine) Handle(ev Event) State {
	if m.state == Terminating {
		common.LogDebug("Ignoring %s while terminating", ev)
		return m.state
	}

	switch ev {
	case QuitRequested:
		m.terminate()

	case HotkeyPressed, ShowRequested:
		// Visible windows are raised again without a transition.
		m.cfg.Window.Present()
		m.setState(Visible)

	case TrayDoubleClick:
		if m.state == Visible {
			m.cfg.Window.Hide()
			m.setState(Hidden)
		} else {
			m.cfg.Window.Present()
			m.setState(Visible)
		}

	case CloseRequested:
		if !m.trayAvailable() {
			// Nothing would bring a hidden window back.
			common.LogInfo("Tray unavailable, treating close as quit")
			m.terminate()
			return m.state
		}
		if m.state == Visible {
			m.cfg.Window.Hide()
			m.setState(Hidden)
			if !m.closeNoticeShown {
				m.closeNoticeShown = true
				m.notify(fmt.Sprintf("%s is still running in the tray. Use Quit from the tray menu to exit.", common.AppName))
			}
		}

	default:
		common.LogWarn("Unknown lifecycle event %d", int(ev))
	}

	return m.state
}

func (m *Machine) terminate() {
	m.setState(Terminating)
	if m.cfg.Quit != nil {
		m.cfg.Quit()
	}
}

func (m *Machine) setState(next State) {
	if next == m.state {
		return
	}
	prev := m.state
	m.state = next
	common.LogDebug("Window state %s -> %s", prev, next)
	if m.cfg.OnTransition != nil {
		m.cfg.OnTransition(prev, next)
	}
}

func (m *Machine) trayAvailable() bool {
	return m.cfg.Tray != nil && m.cfg.Tray.Available()
}

func (m *Machine) notify(message string) {
	if !m.cfg.Notifications || m.cfg.Notifier == nil {
		return
	}
	if err := m.cfg.Notifier.Notify(common.AppName, message); err != nil {
		common.LogDebug("Notification failed: %v", err)
	}
}
