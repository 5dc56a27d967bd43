package autostart

import (
	"fmt"
	"strings"

	"github.com/yllada/json-formatter/common"
)

// RunKey is the subset of a registry key used for the Run entry.
// golang.org/x/sys/windows/registry.Key implements it.
type RunKey interface {
	GetStringValue(name string) (string, uint32, error)
	SetStringValue(name, value string) error
	DeleteValue(name string) error
	Close() error
}

// RunKeyRegistrar stores the flag as a value in a Run registry key.
type RunKeyRegistrar struct {
	// Name is the value name, the application display name.
	Name string
	// Exec is the executable path stored as the value data.
	Exec string
	// Open opens the Run key, for writing when write is true.
	Open func(write bool) (RunKey, error)
	// IsNotExist reports whether err means the value is absent.
	IsNotExist func(err error) bool
}

// State reports the flag as registered when the value exists.
func (r *RunKeyRegistrar) State() (RegistrationState, error) {
	state := RegistrationState{Supported: true}

	key, err := r.Open(false)
	if err != nil {
		return state, fmt.Errorf("opening run key: %w", err)
	}
	defer key.Close()

	if _, _, err := key.GetStringValue(r.Name); err != nil {
		if r.isNotExist(err) {
			return state, nil
		}
		return state, fmt.Errorf("reading run value: %w", err)
	}
	state.Registered = true
	return state, nil
}

// Register writes the Run value.
func (r *RunKeyRegistrar) Register() error {
	key, err := r.Open(true)
	if err != nil {
		return fmt.Errorf("opening run key: %w", err)
	}
	defer key.Close()

	if err := key.SetStringValue(r.Name, quoteWindowsPath(r.Exec)); err != nil {
		return fmt.Errorf("writing run value: %w", err)
	}
	common.LogInfo("Autostart enabled for %s", r.Exec)
	return nil
}

// Deregister deletes the Run value.
func (r *RunKeyRegistrar) Deregister() error {
	key, err := r.Open(true)
	if err != nil {
		return fmt.Errorf("opening run key: %w", err)
	}
	defer key.Close()

	if err := key.DeleteValue(r.Name); err != nil && !r.isNotExist(err) {
		return fmt.Errorf("deleting run value: %w", err)
	}
	common.LogInfo("Autostart disabled")
	return nil
}

func (r *RunKeyRegistrar) isNotExist(err error) bool {
	return r.IsNotExist != nil && r.IsNotExist(err)
}

// quoteWindowsPath wraps paths containing spaces in double quotes so the
// shell does not split them.
func quoteWindowsPath(path string) string {
	if strings.ContainsAny(path, " \t") && !strings.HasPrefix(path, `"`) {
		return `"` + path + `"`
	}
	return path
}
