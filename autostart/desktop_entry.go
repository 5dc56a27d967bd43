package autostart

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/yllada/json-formatter/common"
)

// DesktopEntryRegistrar manages an XDG autostart entry.
type DesktopEntryRegistrar struct {
	// Dir is the autostart directory, usually $XDG_CONFIG_HOME/autostart.
	Dir string
	// FileName is the entry file name, e.g. json-formatter.desktop.
	FileName string
	// Name is the display name written to the entry.
	Name string
	// Exec is the absolute path of the program to start.
	Exec string
}

// Path returns the location of the desktop entry.
func (r *DesktopEntryRegistrar) Path() string {
	return filepath.Join(r.Dir, r.FileName)
}

// State reports the entry as registered when it exists and is not hidden.
func (r *DesktopEntryRegistrar) State() (RegistrationState, error) {
	state := RegistrationState{Supported: true}
	if err := r.check(); err != nil {
		return state, err
	}

	data, err := os.ReadFile(r.Path())
	if errors.Is(err, os.ErrNotExist) {
		return state, nil
	}
	if err != nil {
		return state, fmt.Errorf("reading autostart entry: %w", err)
	}

	for _, line := range strings.Split(string(data), "\n") {
		if strings.EqualFold(strings.TrimSpace(line), "Hidden=true") {
			return state, nil
		}
	}
	state.Registered = true
	return state, nil
}

// Register writes the desktop entry.
func (r *DesktopEntryRegistrar) Register() error {
	if err := r.check(); err != nil {
		return err
	}
	if err := os.MkdirAll(r.Dir, 0700); err != nil {
		return fmt.Errorf("creating autostart directory: %w", err)
	}

	tmp := r.Path() + ".tmp"
	if err := os.WriteFile(tmp, []byte(r.entry()), 0644); err != nil {
		return fmt.Errorf("writing autostart entry: %w", err)
	}
	if err := os.Rename(tmp, r.Path()); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("writing autostart entry: %w", err)
	}

	common.LogInfo("Autostart enabled: %s", r.Path())
	return nil
}

// Deregister removes the desktop entry.
func (r *DesktopEntryRegistrar) Deregister() error {
	if err := r.check(); err != nil {
		return err
	}
	err := os.Remove(r.Path())
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("removing autostart entry: %w", err)
	}
	common.LogInfo("Autostart disabled")
	return nil
}

func (r *DesktopEntryRegistrar) check() error {
	if r.Dir == "" {
		return errors.New("autostart directory unknown")
	}
	return nil
}

func (r *DesktopEntryRegistrar) entry() string {
	var b strings.Builder
	b.WriteString("[Desktop Entry]\n")
	b.WriteString("Type=Application\n")
	b.WriteString("Name=" + r.Name + "\n")
	b.WriteString("Comment=Format JSON from the system tray\n")
	b.WriteString("Exec=" + quoteExec(r.Exec) + "\n")
	b.WriteString("Terminal=false\n")
	b.WriteString("X-GNOME-Autostart-enabled=true\n")
	return b.String()
}

// quoteExec quotes a path for the Exec key of a desktop entry. A literal %
// becomes %% so it is not read as a field code, and every backslash left by
// the argument quoting is doubled again because Exec is a string value.
func quoteExec(path string) string {
	path = strings.ReplaceAll(path, "%", "%%")
	if !strings.ContainsAny(path, " \t\"'`$\\;&|<>()*?#~=%") {
		return path
	}
	var b strings.Builder
	b.WriteByte('"')
	for _, r := range path {
		switch r {
		case '"', '`', '$', '\\':
			b.WriteByte('\\')
		}
		b.WriteRune(r)
	}
	b.WriteByte('"')
	return strings.ReplaceAll(b.String(), `\`, `\\`)
}
