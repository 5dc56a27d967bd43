package ui

import (
	"errors"
	"strings"
	"testing"

	"github.com/yllada/json-formatter/autostart"
	"github.com/yllada/json-formatter/common"
	"github.com/yllada/json-formatter/formatter"
	"github.com/yllada/json-formatter/lifecycle"
)

func TestStatusText(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"scalar", `1`, "Formatted 1 line"},
		{"object", `{"a":1,"b":2}`, "Formatted 4 lines"},
		{"invalid", `{"a":}`, formatter.ErrorPrefix},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := statusText(formatter.Format(tt.input))
			if !strings.HasPrefix(got, tt.want) {
				t.Errorf("statusText() = %q, want prefix %q", got, tt.want)
			}
		})
	}
}

type fakeRegistrar struct {
	state    autostart.RegistrationState
	stateErr error
	setErr   error
}

func (r *fakeRegistrar) State() (autostart.RegistrationState, error) {
	return r.state, r.stateErr
}

func (r *fakeRegistrar) Register() error {
	if r.setErr != nil {
		return r.setErr
	}
	r.state.Registered = true
	return nil
}

func (r *fakeRegistrar) Deregister() error {
	if r.setErr != nil {
		return r.setErr
	}
	r.state.Registered = false
	return nil
}

func TestToggleAutostart(t *testing.T) {
	r := &fakeRegistrar{state: autostart.RegistrationState{Supported: true}}

	enabled, err := toggleAutostart(r, false)
	if err != nil || !enabled {
		t.Fatalf("toggle on = %v, %v; want true, nil", enabled, err)
	}
	enabled, err = toggleAutostart(r, true)
	if err != nil || enabled {
		t.Fatalf("toggle off = %v, %v; want false, nil", enabled, err)
	}
	if r.state.Registered {
		t.Error("flag should be absent after toggling on then off")
	}
}

func TestToggleAutostart_FailureKeepsReportedState(t *testing.T) {
	r := &fakeRegistrar{
		state:  autostart.RegistrationState{Supported: true, Registered: true},
		setErr: errors.New("permission denied"),
	}

	enabled, err := toggleAutostart(r, true)
	if err == nil {
		t.Fatal("expected error")
	}
	if !enabled {
		t.Error("checkbox should follow the persisted flag, which is still set")
	}
}

func TestToggleAutostart_Unsupported(t *testing.T) {
	enabled, err := toggleAutostart(autostart.Unsupported(), false)
	if !errors.Is(err, common.ErrAutostartUnsupported) {
		t.Errorf("err = %v, want ErrAutostartUnsupported", err)
	}
	if enabled {
		t.Error("unsupported registrar can never be enabled")
	}
}

func TestTrayTooltip(t *testing.T) {
	tests := []struct {
		state lifecycle.State
		want  string
	}{
		{lifecycle.Visible, "JSON Formatter"},
		{lifecycle.Hidden, "JSON Formatter (hidden, press Ctrl+Shift+J)"},
		{lifecycle.Terminating, "JSON Formatter"},
	}
	for _, tt := range tests {
		if got := trayTooltip(tt.state, "Ctrl+Shift+J"); got != tt.want {
			t.Errorf("trayTooltip(%v) = %q, want %q", tt.state, got, tt.want)
		}
	}
}
