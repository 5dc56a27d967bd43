package ui

import (
	"fmt"

	"github.com/diamondburned/gotk4/pkg/gio/v2"
	"github.com/diamondburned/gotk4/pkg/glib/v2"
	"github.com/diamondburned/gotk4/pkg/gtk/v4"
	"github.com/yllada/json-formatter/common"
	"github.com/yllada/json-formatter/formatter"
	"github.com/yllada/json-formatter/lifecycle"
)

// MainWindow represents the main application window.
type MainWindow struct {
	app          *Application
	window       *gtk.ApplicationWindow
	headerBar    *gtk.HeaderBar
	input        *gtk.TextView
	output       *gtk.TextView
	formatButton *gtk.Button
	statusBar    *gtk.Box
	statusLabel  *gtk.Label
}

// NewMainWindow creates a new main window.
func NewMainWindow(app *Application) *MainWindow {
	mw := &MainWindow{
		app: app,
	}

	mw.window = gtk.NewApplicationWindow(app.app)
	mw.window.SetTitle(common.AppName)
	mw.window.SetDefaultSize(app.config.WindowWidth, app.config.WindowHeight)
	mw.window.SetSizeRequest(common.MinWindowWidth, common.MinWindowHeight)

	// Closing is decided by the state machine: hide to tray or quit.
	mw.window.ConnectCloseRequest(func() bool {
		app.machine.Handle(lifecycle.CloseRequested)
		return true
	})

	mw.createLayout()

	return mw
}

// createLayout creates the window layout.
func (mw *MainWindow) createLayout() {
	mw.headerBar = gtk.NewHeaderBar()

	menuButton := gtk.NewMenuButton()
	menuButton.SetIconName("open-menu-symbolic")
	menuButton.SetTooltipText("Menu")
	menuButton.SetMenuModel(mw.createMenu())
	mw.headerBar.PackEnd(menuButton)

	mw.window.SetTitlebar(mw.headerBar)

	mainBox := gtk.NewBox(gtk.OrientationVertical, 8)
	mainBox.SetMarginTop(8)
	mainBox.SetMarginStart(8)
	mainBox.SetMarginEnd(8)

	mw.input = gtk.NewTextView()
	mw.input.SetWrapMode(gtk.WrapWordChar)
	mw.input.SetMonospace(true)
	mw.input.SetTooltipText("Paste JSON here")
	mw.input.AddCSSClass("json-input")
	mainBox.Append(mw.scrolled(mw.input))

	mw.output = gtk.NewTextView()
	mw.output.SetEditable(false)
	mw.output.SetCursorVisible(false)
	mw.output.SetMonospace(true)
	mw.output.AddCSSClass("json-output")
	mainBox.Append(mw.scrolled(mw.output))

	mw.formatButton = gtk.NewButtonWithLabel("Format")
	mw.formatButton.AddCSSClass("format-button")
	mw.formatButton.SetSizeRequest(common.FormatButtonWidth, -1)
	mw.formatButton.SetHAlign(gtk.AlignCenter)
	mw.formatButton.SetTooltipText("Format (Ctrl+Enter)")
	mw.formatButton.ConnectClicked(mw.onFormat)
	mainBox.Append(mw.formatButton)

	mw.createStatusBar()
	mainBox.Append(mw.statusBar)

	mw.window.SetChild(mainBox)
	mw.input.GrabFocus()
}

func (mw *MainWindow) scrolled(child gtk.Widgetter) *gtk.ScrolledWindow {
	scrolled := gtk.NewScrolledWindow()
	scrolled.SetVExpand(true)
	scrolled.SetHExpand(true)
	scrolled.AddCSSClass("json-pane")
	scrolled.SetChild(child)
	return scrolled
}

// createMenu creates the window menu.
func (mw *MainWindow) createMenu() *gio.Menu {
	menu := gio.NewMenu()

	settingsSection := gio.NewMenu()
	settingsSection.Append("Preferences", "app.preferences")
	menu.AppendSection("", &settingsSection.MenuModel)

	appSection := gio.NewMenu()
	appSection.Append("About", "app.about")
	appSection.Append("Quit", "app.quit")
	menu.AppendSection("", &appSection.MenuModel)

	mw.setupActions()

	return menu
}

// setupActions configures menu actions and accelerators.
func (mw *MainWindow) setupActions() {
	// Format action (Ctrl+Enter)
	formatAction := gio.NewSimpleAction("format", nil)
	formatAction.ConnectActivate(func(_ *glib.Variant) {
		mw.onFormat()
	})
	mw.app.app.AddAction(formatAction)
	mw.app.app.SetAccelsForAction("app.format", []string{"<Control>Return", "<Control>KP_Enter"})

	// Preferences action (Ctrl+,)
	preferencesAction := gio.NewSimpleAction("preferences", nil)
	preferencesAction.ConnectActivate(func(_ *glib.Variant) {
		mw.onPreferences()
	})
	mw.app.app.AddAction(preferencesAction)
	mw.app.app.SetAccelsForAction("app.preferences", []string{"<Control>comma"})

	aboutAction := gio.NewSimpleAction("about", nil)
	aboutAction.ConnectActivate(func(_ *glib.Variant) {
		mw.onAbout()
	})
	mw.app.app.AddAction(aboutAction)

	// Quit action (Ctrl+Q), routed through the state machine
	quitAction := gio.NewSimpleAction("quit", nil)
	quitAction.ConnectActivate(func(_ *glib.Variant) {
		mw.app.machine.Handle(lifecycle.QuitRequested)
	})
	mw.app.app.AddAction(quitAction)
	mw.app.app.SetAccelsForAction("app.quit", []string{"<Control>q"})
}

// createStatusBar creates the status bar.
func (mw *MainWindow) createStatusBar() {
	mw.statusBar = gtk.NewBox(gtk.OrientationHorizontal, 12)
	mw.statusBar.AddCSSClass("status-bar")

	mw.statusLabel = gtk.NewLabel("Ready")
	mw.statusLabel.SetXAlign(0)
	mw.statusLabel.SetHExpand(true)
	mw.statusLabel.SetEllipsize(3) // PANGO_ELLIPSIZE_END
	mw.statusBar.Append(mw.statusLabel)
}

// Present un-minimizes, shows and focuses the window.
func (mw *MainWindow) Present() {
	mw.window.SetVisible(true)
	mw.window.Unminimize()
	mw.window.Present()
}

// Hide hides the window without destroying it.
func (mw *MainWindow) Hide() {
	mw.window.SetVisible(false)
}

// SetStatus updates the status text.
func (mw *MainWindow) SetStatus(text string) {
	if mw.statusLabel != nil {
		mw.statusLabel.SetText(text)
	}
}

// Event handlers

func (mw *MainWindow) onFormat() {
	buffer := mw.input.Buffer()
	start, end := buffer.Bounds()
	result := formatter.Format(buffer.Text(start, end, false))

	mw.output.Buffer().SetText(result.Output)
	mw.SetStatus(statusText(result))

	if result.OK() {
		mw.output.RemoveCSSClass("error")
	} else {
		mw.output.AddCSSClass("error")
		common.LogDebug("Format failed: %v", result.Err)
	}
}

// statusText summarizes a format result for the status bar.
func statusText(result formatter.Result) string {
	if !result.OK() {
		return result.Output
	}
	if result.Lines == 1 {
		return "Formatted 1 line"
	}
	return fmt.Sprintf("Formatted %d lines", result.Lines)
}

func (mw *MainWindow) onPreferences() {
	NewPreferencesDialog(mw).Show()
}

func (mw *MainWindow) onAbout() {
	about := gtk.NewAboutDialog()
	about.SetTransientFor(&mw.window.Window)
	about.SetModal(true)

	about.SetProgramName(common.AppName)
	about.SetLogoIconName("icon")
	about.SetVersion(mw.app.version)
	about.SetComments("Validate and pretty-print JSON from the system tray.\n" +
		"Press " + mw.app.chord().Label() + " to bring the window back.")
	about.SetWebsite("https://github.com/yllada/json-formatter")
	about.SetWebsiteLabel("GitHub Repository")
	about.SetLicenseType(gtk.LicenseMITX11)

	about.Show()
}

// showError displays a small modal error window.
func (mw *MainWindow) showError(title, message string) {
	window := gtk.NewWindow()
	window.SetTitle(title)
	window.SetTransientFor(&mw.window.Window)
	window.SetModal(true)
	window.SetDefaultSize(350, 150)
	window.SetResizable(false)

	mainBox := gtk.NewBox(gtk.OrientationVertical, 12)
	mainBox.SetMarginTop(24)
	mainBox.SetMarginBottom(24)
	mainBox.SetMarginStart(24)
	mainBox.SetMarginEnd(24)

	label := gtk.NewLabel(message)
	label.SetWrap(true)
	mainBox.Append(label)

	okBtn := gtk.NewButtonWithLabel("OK")
	okBtn.SetHAlign(gtk.AlignEnd)
	okBtn.ConnectClicked(func() {
		window.Close()
	})
	mainBox.Append(okBtn)

	window.SetChild(mainBox)
	window.Show()
}
