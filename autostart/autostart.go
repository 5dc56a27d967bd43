// Package autostart registers JSON Formatter to start at user login.
//
// Each platform stores a single flag keyed by the application display name:
//
//   - Windows: a value under HKCU\Software\Microsoft\Windows\CurrentVersion\Run
//   - Linux and the BSDs: an XDG autostart desktop entry
//   - Other platforms: unsupported; the tray shows the entry disabled
package autostart

import "github.com/yllada/json-formatter/common"

// RegistrationState describes the current login registration.
type RegistrationState struct {
	Supported  bool
	Registered bool
}

// Registrar reads and writes the "start at login" flag.
type Registrar interface {
	// State fetches the current registration.
	State() (RegistrationState, error)
	// Register makes the app start at login.
	Register() error
	// Deregister removes the login registration. Removing an absent
	// registration is not an error.
	Deregister() error
}

// New returns the registrar for the running platform, pointing at the
// current executable.
func New() (Registrar, error) {
	exe, err := common.ExecutablePath()
	if err != nil {
		return nil, err
	}
	return newPlatformRegistrar(common.AppName, exe), nil
}

// Enabled reports whether the app is registered. Errors reading the flag
// count as disabled.
func Enabled(r Registrar) bool {
	state, err := r.State()
	if err != nil {
		common.LogDebug("Reading autostart state: %v", err)
		return false
	}
	return state.Supported && state.Registered
}

// Supported reports whether r can register the app at all.
func Supported(r Registrar) bool {
	state, err := r.State()
	if err != nil {
		// readable or not, the mechanism exists
		return true
	}
	return state.Supported
}

// Set registers or deregisters the app.
func Set(r Registrar, enabled bool) error {
	if enabled {
		return r.Register()
	}
	return r.Deregister()
}

// Unsupported returns a registrar for systems without a login mechanism.
func Unsupported() Registrar {
	return unsupportedRegistrar{}
}

// unsupportedRegistrar is used where no login mechanism is implemented.
type unsupportedRegistrar struct{}

func (unsupportedRegistrar) State() (RegistrationState, error) {
	return RegistrationState{}, nil
}

func (unsupportedRegistrar) Register() error {
	return common.ErrAutostartUnsupported
}

func (unsupportedRegistrar) Deregister() error {
	return nil
}
