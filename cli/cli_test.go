package cli

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/yllada/json-formatter/autostart"
	"github.com/yllada/json-formatter/common"
)

func TestRunFormat(t *testing.T) {
	var out, errOut bytes.Buffer
	err := runFormat(strings.NewReader(`{"名前":"太郎","b":1,"a":2}`), &out, &errOut, false)
	if err != nil {
		t.Fatalf("runFormat() error = %v", err)
	}

	want := "{\n    \"名前\": \"太郎\",\n    \"b\": 1,\n    \"a\": 2\n}\n"
	if out.String() != want {
		t.Errorf("output = %q, want %q", out.String(), want)
	}
	if errOut.Len() != 0 {
		t.Errorf("unexpected stderr %q", errOut.String())
	}
}

func TestRunFormat_InvalidInput(t *testing.T) {
	var out, errOut bytes.Buffer
	err := runFormat(strings.NewReader(`{"a":}`), &out, &errOut, false)

	var exitErr *ExitError
	if !errors.As(err, &exitErr) || exitErr.Code != 1 {
		t.Fatalf("runFormat() error = %v, want exit status 1", err)
	}
	if out.Len() != 0 {
		t.Errorf("stdout should be empty, got %q", out.String())
	}
	if !strings.Contains(errOut.String(), "line 1 column 6") {
		t.Errorf("stderr = %q, want position", errOut.String())
	}
}

func TestFormatCommand_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "doc.json")
	if err := os.WriteFile(path, []byte(`[1,2]`), 0644); err != nil {
		t.Fatal(err)
	}

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs([]string{"format", path})
	defer rootCmd.SetArgs(nil)

	if err := rootCmd.Execute(); err != nil {
		t.Fatalf("format error = %v", err)
	}
	if out.String() != "[\n    1,\n    2\n]\n" {
		t.Errorf("output = %q", out.String())
	}
}

type stubRegistrar struct {
	state autostart.RegistrationState
	err   error
}

func (r *stubRegistrar) State() (autostart.RegistrationState, error) { return r.state, r.err }
func (r *stubRegistrar) Register() error                             { return nil }
func (r *stubRegistrar) Deregister() error                           { return nil }

func TestAutostartStatus(t *testing.T) {
	tests := []struct {
		name string
		r    autostart.Registrar
		want string
	}{
		{"unsupported", autostart.Unsupported(), "unsupported"},
		{"enabled", &stubRegistrar{state: autostart.RegistrationState{Supported: true, Registered: true}}, "enabled"},
		{"disabled", &stubRegistrar{state: autostart.RegistrationState{Supported: true}}, "disabled"},
		{"unreadable", &stubRegistrar{err: errors.New("access denied")}, "disabled"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := autostartStatus(tt.r); got != tt.want {
				t.Errorf("autostartStatus() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestAutostartCommands_ToggleLeavesNoEntry(t *testing.T) {
	r := &autostart.DesktopEntryRegistrar{
		Dir:      filepath.Join(t.TempDir(), "autostart"),
		FileName: common.DesktopEntryName,
		Name:     common.AppName,
		Exec:     "/usr/bin/json-formatter",
	}
	newRegistrar = func() (autostart.Registrar, error) { return r, nil }
	defer func() { newRegistrar = autostart.New }()
	defer rootCmd.SetArgs(nil)

	run := func(args ...string) string {
		t.Helper()
		var out bytes.Buffer
		rootCmd.SetOut(&out)
		rootCmd.SetArgs(args)
		if err := rootCmd.Execute(); err != nil {
			t.Fatalf("%v: %v", args, err)
		}
		return strings.TrimSpace(out.String())
	}

	if got := run("autostart", "enable"); got != "enabled" {
		t.Errorf("enable printed %q", got)
	}
	if !common.FileExists(r.Path()) {
		t.Fatal("enable should write the desktop entry")
	}
	if got := run("autostart", "disable"); got != "disabled" {
		t.Errorf("disable printed %q", got)
	}
	if common.FileExists(r.Path()) {
		t.Error("disable should remove the desktop entry")
	}
	if got := run("autostart", "status"); got != "disabled" {
		t.Errorf("status printed %q", got)
	}
}

func TestVersionText(t *testing.T) {
	if got := versionText(BuildInfo{Version: "1.2.3", BuildTime: "unknown"}); got != "JSON Formatter v1.2.3\n" {
		t.Errorf("versionText() = %q", got)
	}
	got := versionText(BuildInfo{Version: "1.2.3", BuildTime: "2026-01-01", Commit: "abc123"})
	if !strings.Contains(got, "Commit: abc123") {
		t.Errorf("versionText() = %q, want commit line", got)
	}
}

func TestResolveLogLevel(t *testing.T) {
	tests := []struct {
		name    string
		gui     bool
		verbose bool
		flag    string
		want    common.LogLevel
	}{
		{"gui default", true, false, "", common.LevelInfo},
		{"terminal default", false, false, "", common.LevelWarn},
		{"flag", false, false, "error", common.LevelError},
		{"flag case", true, false, " DEBUG ", common.LevelDebug},
		{"unknown flag", false, false, "loud", common.LevelInfo},
		{"verbose wins", false, true, "error", common.LevelDebug},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := resolveLogLevel(tt.gui, tt.verbose, tt.flag); got != tt.want {
				t.Errorf("resolveLogLevel() = %v, want %v", got, tt.want)
			}
		})
	}
}
