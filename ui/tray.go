package ui

import (
	"sync/atomic"

	"fyne.io/systray"
	"github.com/yllada/json-formatter/autostart"
	"github.com/yllada/json-formatter/common"
	"github.com/yllada/json-formatter/lifecycle"
	"github.com/yllada/json-formatter/trayhost"
)

const (
	startAtLoginTooltip     = "Start " + common.AppName + " when you log in"
	startAtLoginUnsupported = "Start at login is not supported on this system"
)

// TrayIndicator manages the system tray icon and menu. It never touches the
// window; every action is sent to the GUI thread as a lifecycle event.
type TrayIndicator struct {
	app        *Application
	classifier *lifecycle.ClickClassifier
	showItem   *systray.MenuItem
	startItem  *systray.MenuItem
	quitItem   *systray.MenuItem
	host       atomic.Pointer[trayhost.Host]
	ready      atomic.Bool
	hidden     atomic.Bool
}

// NewTrayIndicator creates a new system tray indicator.
func NewTrayIndicator(app *Application) *TrayIndicator {
	return &TrayIndicator{
		app:        app,
		classifier: lifecycle.NewClickClassifier(common.DoubleClickInterval),
	}
}

// Run starts the system tray indicator.
// This should be called from a goroutine as it blocks.
func (t *TrayIndicator) Run() {
	systray.Run(t.onReady, t.onExit)
}

// Available reports whether the tray icon is on screen: the menu is built
// and a tray host exists to show it.
func (t *TrayIndicator) Available() bool {
	host := t.host.Load()
	return t.ready.Load() && !t.hidden.Load() && host != nil && host.Present()
}

// Hide removes the tray icon. It is safe to call more than once.
func (t *TrayIndicator) Hide() {
	if t.hidden.Swap(true) {
		return
	}
	if host := t.host.Load(); host != nil {
		host.Close()
	}
	systray.Quit()
}

// SetWindowState updates the tooltip to say where the window went.
func (t *TrayIndicator) SetWindowState(state lifecycle.State) {
	if !t.ready.Load() || t.hidden.Load() {
		return
	}
	systray.SetTooltip(trayTooltip(state, t.app.chord().Label()))
}

// onReady is called when the systray is ready.
func (t *TrayIndicator) onReady() {
	if t.app.icons != nil {
		systray.SetIcon(t.app.icons.TrayBytes())
	}
	systray.SetTitle(common.AppName)
	systray.SetTooltip(common.AppName)
	systray.SetOnTapped(t.onTapped)

	t.showItem = systray.AddMenuItem("Show Window", "Show the formatter window")
	go func() {
		for range t.showItem.ClickedCh {
			t.app.Send(lifecycle.ShowRequested)
		}
	}()

	systray.AddSeparator()

	t.startItem = systray.AddMenuItemCheckbox("Start at Login", startAtLoginTooltip, autostart.Enabled(t.app.registrar))
	if !autostart.Supported(t.app.registrar) {
		t.startItem.SetTooltip(startAtLoginUnsupported)
		t.startItem.Disable()
	}
	go func() {
		for range t.startItem.ClickedCh {
			t.toggleAutostart()
		}
	}()

	systray.AddSeparator()

	t.quitItem = systray.AddMenuItem("Quit", "Quit "+common.AppName)
	go func() {
		for range t.quitItem.ClickedCh {
			t.app.Send(lifecycle.QuitRequested)
		}
	}()

	host, err := trayhost.Watch(func(present bool) {
		if !present {
			common.LogWarn("Tray host went away; closing the window will quit")
		}
	})
	if err != nil {
		common.LogWarn("Cannot detect a tray host, assuming none: %v", err)
	}
	t.host.Store(host)
	t.ready.Store(true)

	if host.Present() {
		common.LogInfo("Tray indicator ready")
	} else {
		common.LogWarn("No tray host found; closing the window will quit")
	}
}

// onExit is called when the systray is about to exit.
func (t *TrayIndicator) onExit() {
	t.ready.Store(false)
	common.LogInfo("Tray indicator cleanup completed")
}

// onTapped routes a primary click on the tray icon. Only a double click
// has an effect.
func (t *TrayIndicator) onTapped() {
	if t.classifier.Classify() == lifecycle.DoubleClick {
		t.app.Send(lifecycle.TrayDoubleClick)
	}
}

// toggleAutostart flips the persisted flag and re-syncs the checkbox with
// whatever the system reports afterwards.
func (t *TrayIndicator) toggleAutostart() {
	enabled, err := toggleAutostart(t.app.registrar, t.startItem.Checked())
	if err != nil {
		common.LogError("Changing autostart failed: %v", err)
	}
	t.setChecked(enabled)
}

// syncAutostart re-reads the persisted flag into the checkbox.
func (t *TrayIndicator) syncAutostart() {
	if t.startItem != nil {
		t.setChecked(autostart.Enabled(t.app.registrar))
	}
}

func (t *TrayIndicator) setChecked(enabled bool) {
	if enabled {
		t.startItem.Check()
	} else {
		t.startItem.Uncheck()
	}
}

// toggleAutostart requests the opposite of checked and returns the state the
// registrar reports afterwards.
func toggleAutostart(r autostart.Registrar, checked bool) (bool, error) {
	err := autostart.Set(r, !checked)
	return autostart.Enabled(r), err
}

// trayTooltip describes the window state for the tray icon tooltip.
func trayTooltip(state lifecycle.State, hotkeyLabel string) string {
	if state == lifecycle.Hidden {
		return common.AppName + " (hidden, press " + hotkeyLabel + ")"
	}
	return common.AppName
}
