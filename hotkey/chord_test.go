package hotkey

import (
	"errors"
	"testing"

	"github.com/yllada/json-formatter/common"
)

func TestParseChord(t *testing.T) {
	tests := []struct {
		in        string
		wantStr   string
		wantLabel string
	}{
		{"ctrl+shift+j", "ctrl+shift+j", "Ctrl+Shift+J"},
		{"Shift+Control+J", "ctrl+shift+j", "Ctrl+Shift+J"},
		{" ctrl + alt + 3 ", "ctrl+alt+3", "Ctrl+Alt+3"},
		{"cmd+shift+space", "shift+super+space", "Shift+Super+Space"},
		{"win+f12", "super+f12", "Super+F12"},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			chord, err := ParseChord(tt.in)
			if err != nil {
				t.Fatalf("ParseChord(%q) error = %v", tt.in, err)
			}
			if got := chord.String(); got != tt.wantStr {
				t.Errorf("String() = %q, want %q", got, tt.wantStr)
			}
			if got := chord.Label(); got != tt.wantLabel {
				t.Errorf("Label() = %q, want %q", got, tt.wantLabel)
			}
		})
	}
}

func TestParseChord_Invalid(t *testing.T) {
	inputs := []string{
		"",
		"j",
		"ctrl+shift",
		"ctrl++j",
		"ctrl+ctrl+j",
		"ctrl+j+k",
		"ctrl+shift+é",
		"hyper+j",
	}

	for _, in := range inputs {
		t.Run(in, func(t *testing.T) {
			if _, err := ParseChord(in); !errors.Is(err, common.ErrInvalidHotkey) {
				t.Errorf("ParseChord(%q) error = %v, want ErrInvalidHotkey", in, err)
			}
		})
	}
}

func TestMustParseChordPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("MustParseChord should panic on an invalid chord")
		}
	}()
	MustParseChord("nope")
}
