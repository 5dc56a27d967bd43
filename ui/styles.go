// Package ui provides the graphical user interface for JSON Formatter.
// This file contains the CSS styles for the formatter window.
package ui

import (
	"github.com/diamondburned/gotk4/pkg/gdk/v4"
	"github.com/diamondburned/gotk4/pkg/gtk/v4"
)

// Theme-aware styles; only the Format button carries a fixed color.
const appCSS = `
/* Text panes */
.json-pane {
    border: 1px solid alpha(currentColor, 0.15);
    border-radius: 6px;
}

textview.json-input,
textview.json-output {
    font-family: monospace;
    padding: 6px;
}

textview.json-output.error {
    color: #e01b24;
}

/* Format button */
button.format-button {
    background-color: #2196F3;
    background-image: none;
    color: white;
    border: none;
    padding: 8px 16px;
    font-size: 14px;
    font-weight: bold;
    border-radius: 4px;
    min-height: 35px;
}

button.format-button:hover {
    background-color: #1976D2;
}

button.format-button:active {
    background-color: #0D47A1;
}

/* Status Bar */
.status-bar {
    border-top: 1px solid alpha(currentColor, 0.15);
    padding: 6px 12px;
    opacity: 0.8;
}

/* Preferences */
.preferences-card {
    border-radius: 12px;
    border: 1px solid alpha(currentColor, 0.15);
}

.hotkey-label {
    font-family: monospace;
    font-weight: 600;
}
`

// LoadStyles loads the custom CSS styles for the application.
// Should be called during application startup.
func LoadStyles() {
	display := gdk.DisplayGetDefault()
	if display == nil {
		return
	}

	provider := gtk.NewCSSProvider()
	provider.LoadFromString(appCSS)

	gtk.StyleContextAddProviderForDisplay(
		display,
		provider,
		gtk.STYLE_PROVIDER_PRIORITY_APPLICATION,
	)
}
