// Package ui provides the graphical user interface for JSON Formatter.
// This file contains the PreferencesDialog component for application settings.
package ui

import (
	"github.com/diamondburned/gotk4/pkg/gtk/v4"
	"github.com/yllada/json-formatter/autostart"
	"github.com/yllada/json-formatter/config"
	"github.com/yllada/json-formatter/hotkey"
)

// PreferencesDialog represents the preferences dialog.
type PreferencesDialog struct {
	window          *gtk.Window
	mainWindow      *MainWindow
	config          *config.Config
	autoStartSwitch *gtk.Switch
	notifySwitch    *gtk.Switch
	hotkeyEntry     *gtk.Entry
}

// NewPreferencesDialog creates a new preferences dialog.
func NewPreferencesDialog(mainWindow *MainWindow) *PreferencesDialog {
	pd := &PreferencesDialog{
		mainWindow: mainWindow,
		config:     mainWindow.app.config,
	}

	pd.build()
	return pd
}

// build constructs the dialog UI.
func (pd *PreferencesDialog) build() {
	pd.window = gtk.NewWindow()
	pd.window.SetTitle("Preferences")
	pd.window.SetTransientFor(&pd.mainWindow.window.Window)
	pd.window.SetModal(true)
	pd.window.SetDefaultSize(420, 360)
	pd.window.SetResizable(false)

	rootBox := gtk.NewBox(gtk.OrientationVertical, 0)

	mainBox := gtk.NewBox(gtk.OrientationVertical, 20)
	mainBox.SetMarginTop(24)
	mainBox.SetMarginBottom(16)
	mainBox.SetMarginStart(24)
	mainBox.SetMarginEnd(24)

	// Startup
	startupSection := pd.createSection("Startup", "system-run-symbolic")
	startupCard := pd.createCard()

	registrar := pd.mainWindow.app.registrar
	pd.autoStartSwitch = gtk.NewSwitch()
	pd.autoStartSwitch.SetActive(autostart.Enabled(registrar))
	pd.autoStartSwitch.SetSensitive(autostart.Supported(registrar))
	pd.autoStartSwitch.SetVAlign(gtk.AlignCenter)
	startupCard.Append(pd.createSettingRow(
		"Start at Login",
		"Launch JSON Formatter in the tray when you log in",
		pd.autoStartSwitch,
	))

	startupSection.Append(startupCard)
	mainBox.Append(startupSection)

	// Notifications
	notifySection := pd.createSection("Notifications", "preferences-system-notifications-symbolic")
	notifyCard := pd.createCard()

	pd.notifySwitch = gtk.NewSwitch()
	pd.notifySwitch.SetActive(pd.config.ShowNotifications)
	pd.notifySwitch.SetVAlign(gtk.AlignCenter)
	notifyCard.Append(pd.createSettingRow(
		"Tray Notices",
		"Announce startup and hiding to the tray",
		pd.notifySwitch,
	))

	notifySection.Append(notifyCard)
	mainBox.Append(notifySection)

	// Keyboard
	keyboardSection := pd.createSection("Keyboard", "input-keyboard-symbolic")
	keyboardCard := pd.createCard()

	pd.hotkeyEntry = gtk.NewEntry()
	pd.hotkeyEntry.SetText(pd.config.Hotkey)
	pd.hotkeyEntry.SetWidthChars(14)
	pd.hotkeyEntry.SetVAlign(gtk.AlignCenter)
	pd.hotkeyEntry.AddCSSClass("hotkey-label")
	keyboardCard.Append(pd.createSettingRow(
		"Show Window",
		"Global shortcut, e.g. ctrl+shift+j. Applies after restart.",
		pd.hotkeyEntry,
	))

	keyboardSection.Append(keyboardCard)
	mainBox.Append(keyboardSection)

	rootBox.Append(mainBox)

	// Action buttons
	buttonBar := gtk.NewBox(gtk.OrientationHorizontal, 12)
	buttonBar.SetHAlign(gtk.AlignEnd)
	buttonBar.SetMarginTop(16)
	buttonBar.SetMarginBottom(20)
	buttonBar.SetMarginStart(24)
	buttonBar.SetMarginEnd(24)

	cancelBtn := gtk.NewButtonWithLabel("Cancel")
	cancelBtn.ConnectClicked(func() {
		pd.window.Close()
	})
	buttonBar.Append(cancelBtn)

	saveBtn := gtk.NewButtonWithLabel("Save")
	saveBtn.AddCSSClass("suggested-action")
	saveBtn.ConnectClicked(func() {
		if pd.savePreferences() {
			pd.window.Close()
		}
	})
	buttonBar.Append(saveBtn)

	rootBox.Append(buttonBar)

	pd.window.SetChild(rootBox)
}

// createSection creates a section with icon and title.
func (pd *PreferencesDialog) createSection(title string, iconName string) *gtk.Box {
	section := gtk.NewBox(gtk.OrientationVertical, 8)

	headerBox := gtk.NewBox(gtk.OrientationHorizontal, 8)

	icon := gtk.NewImage()
	icon.SetFromIconName(iconName)
	icon.SetPixelSize(18)
	icon.AddCSSClass("dim-label")
	headerBox.Append(icon)

	label := gtk.NewLabel(title)
	label.SetXAlign(0)
	label.AddCSSClass("heading")
	label.AddCSSClass("dim-label")
	headerBox.Append(label)

	section.Append(headerBox)

	return section
}

// createCard creates a styled card container for settings.
func (pd *PreferencesDialog) createCard() *gtk.Box {
	card := gtk.NewBox(gtk.OrientationVertical, 0)
	card.AddCSSClass("card")
	card.AddCSSClass("preferences-card")
	return card
}

// createSettingRow creates a row with title, description, and widget.
func (pd *PreferencesDialog) createSettingRow(title string, description string, widget gtk.Widgetter) *gtk.Box {
	row := gtk.NewBox(gtk.OrientationHorizontal, 12)
	row.SetMarginTop(14)
	row.SetMarginBottom(14)
	row.SetMarginStart(16)
	row.SetMarginEnd(16)

	textBox := gtk.NewBox(gtk.OrientationVertical, 4)
	textBox.SetHExpand(true)

	titleLabel := gtk.NewLabel(title)
	titleLabel.SetXAlign(0)
	textBox.Append(titleLabel)

	descLabel := gtk.NewLabel(description)
	descLabel.SetXAlign(0)
	descLabel.AddCSSClass("dim-label")
	descLabel.AddCSSClass("caption")
	descLabel.SetWrap(true)
	descLabel.SetWrapMode(2) // PANGO_WRAP_WORD_CHAR
	textBox.Append(descLabel)

	row.Append(textBox)
	row.Append(widget)

	return row
}

// savePreferences applies the autostart switch and writes the config file.
// It reports whether the dialog may close.
func (pd *PreferencesDialog) savePreferences() bool {
	chord, err := hotkey.ParseChord(pd.hotkeyEntry.Text())
	if err != nil {
		pd.mainWindow.showError("Invalid Shortcut", err.Error())
		return false
	}

	registrar := pd.mainWindow.app.registrar
	if want := pd.autoStartSwitch.Active(); want != autostart.Enabled(registrar) {
		if err := autostart.Set(registrar, want); err != nil {
			pd.mainWindow.showError("Error", "Could not change start at login: "+err.Error())
			return false
		}
		pd.mainWindow.app.tray.syncAutostart()
	}

	pd.config.Hotkey = chord.String()
	pd.config.ShowNotifications = pd.notifySwitch.Active()
	pd.mainWindow.app.machine.SetNotifications(pd.config.ShowNotifications)

	if err := pd.config.Save(); err != nil {
		pd.mainWindow.showError("Error", "Could not save preferences: "+err.Error())
		return false
	}

	pd.mainWindow.SetStatus("Settings saved")
	return true
}

// Show displays the preferences dialog.
func (pd *PreferencesDialog) Show() {
	pd.window.Show()
}
