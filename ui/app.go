package ui

import (
	"context"
	"os"

	"github.com/diamondburned/gotk4/pkg/gdk/v4"
	"github.com/diamondburned/gotk4/pkg/gio/v2"
	"github.com/diamondburned/gotk4/pkg/glib/v2"
	"github.com/diamondburned/gotk4/pkg/gtk/v4"
	"github.com/yllada/json-formatter/autostart"
	"github.com/yllada/json-formatter/common"
	"github.com/yllada/json-formatter/config"
	"github.com/yllada/json-formatter/hotkey"
	"github.com/yllada/json-formatter/icon"
	"github.com/yllada/json-formatter/lifecycle"
	"github.com/yllada/json-formatter/notify"
	"github.com/yllada/json-formatter/process"
)

// Application represents the main application
type Application struct {
	app        *gtk.Application
	window     *MainWindow
	tray       *TrayIndicator
	config     *config.Config
	version    string
	machine    *lifecycle.Machine
	router     *lifecycle.Router
	dispatcher *lifecycle.Dispatcher
	listener   *hotkey.Listener
	teardown   *lifecycle.Teardown
	notifier   *notify.Async
	registrar  autostart.Registrar
	icons      *icon.Provisioner
}

// NewApplication creates a new application
func NewApplication(appID, version string) *Application {
	app := gtk.NewApplication(appID, gio.ApplicationFlagsNone)

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		common.LogWarn("Using default configuration: %v", err)
		cfg = config.DefaultConfig()
	}

	registrar, err := autostart.New()
	if err != nil {
		common.LogWarn("Autostart unavailable: %v", err)
		registrar = autostart.Unsupported()
	}

	application := &Application{
		app:       app,
		config:    cfg,
		version:   version,
		notifier:  notify.NewAsync(notify.New(common.AppName)),
		registrar: registrar,
	}

	application.teardown = &lifecycle.Teardown{
		HideTray:     application.hideTray,
		StopHotkey:   application.stopHotkey,
		KillChildren: application.killChildren,
		QuitLoop:     application.quitLoop,
		SelfKill:     process.SelfKill,
		Exit:         os.Exit,
		Grace:        cfg.QuitGracePeriod,
	}

	// The dispatcher exists before the main loop so that quit requests from
	// signal handlers are never lost. Events are handled on the GUI thread.
	application.router = lifecycle.NewRouter(func() { application.teardown.Run() })
	application.dispatcher = lifecycle.NewDispatcher(
		func(f func()) { glib.IdleAdd(f) },
		application.router.Handle,
		lifecycle.DefaultQueueSize,
	)
	application.dispatcher.Start()

	app.ConnectActivate(application.onActivate)

	return application
}

// Run runs the application
func (a *Application) Run(args []string) int {
	code := a.app.Run(args)

	a.dispatcher.Stop()
	a.notifier.Wait(common.NotificationTimeout)
	return code
}

// onActivate is called when the application is activated. A second launch
// activates the running instance, which only brings its window forward.
func (a *Application) onActivate() {
	if a.window != nil {
		a.dispatcher.Send(lifecycle.ShowRequested)
		return
	}
	if a.router.Quitting() {
		return
	}

	// Hidden windows must not let the application exit.
	a.app.Hold()

	a.setupAppIcon()
	LoadStyles()

	a.window = NewMainWindow(a)
	a.tray = NewTrayIndicator(a)

	a.machine = lifecycle.NewMachine(lifecycle.MachineConfig{
		Window:        a.window,
		Tray:          a.tray,
		Notifier:      a.notifier,
		Quit:          func() { a.teardown.Run() },
		HotkeyLabel:   a.chord().Label(),
		Notifications: a.config.ShowNotifications,
		OnTransition: func(_, to lifecycle.State) {
			a.tray.SetWindowState(to)
		},
	})
	a.router.SetMachine(a.machine)

	go a.tray.Run()
	a.startHotkey()

	a.machine.Start()
}

// setupAppIcon makes the provisioned icon the default window icon.
func (a *Application) setupAppIcon() {
	dataDir, err := common.GetDataDir()
	if err != nil {
		common.LogWarn("No data directory for the icon: %v", err)
		a.icons = icon.NewProvisioner(os.TempDir())
		return
	}
	a.icons = icon.NewProvisioner(dataDir)
	if err := a.icons.Ensure(); err != nil {
		common.LogWarn("Could not create tray icon: %v", err)
	}

	display := gdk.DisplayGetDefault()
	if display == nil {
		return
	}
	iconTheme := gtk.IconThemeGetForDisplay(display)
	if iconTheme == nil {
		return
	}
	// Unthemed icons are looked up directly in the search path.
	iconTheme.AddSearchPath(dataDir)
	gtk.WindowSetDefaultIconName("icon")
}

func (a *Application) chord() hotkey.Chord {
	chord, err := hotkey.ParseChord(a.config.Hotkey)
	if err != nil {
		common.LogWarn("Invalid hotkey %q, using %s: %v", a.config.Hotkey, common.DefaultHotkey, err)
		return hotkey.MustParseChord(common.DefaultHotkey)
	}
	return chord
}

// startHotkey registers the global chord. The application keeps running
// without it.
func (a *Application) startHotkey() {
	a.listener = hotkey.NewListener(a.chord(), func() {
		a.dispatcher.Send(lifecycle.HotkeyPressed)
	})
	if err := a.listener.Start(); err != nil {
		common.LogWarn("Global hotkey disabled: %v", err)
	}
}

// Send queues a lifecycle event for the GUI thread.
func (a *Application) Send(ev lifecycle.Event) {
	if !a.dispatcher.Send(ev) {
		common.LogDebug("Dropped %s", ev)
	}
}

// RequestQuit queues a quit request and reports whether it was accepted.
// It is safe to call from any goroutine, before or after activation.
func (a *Application) RequestQuit() bool {
	return a.dispatcher.Send(lifecycle.QuitRequested)
}

func (a *Application) hideTray() error {
	if a.tray != nil {
		a.tray.Hide()
	}
	return nil
}

func (a *Application) stopHotkey() error {
	if a.listener == nil {
		return nil
	}
	return a.listener.Stop()
}

func (a *Application) killChildren() error {
	ctx, cancel := context.WithTimeout(context.Background(), a.teardown.Grace)
	defer cancel()
	return process.KillChildren(ctx)
}

func (a *Application) quitLoop() error {
	a.app.Quit()
	return nil
}
