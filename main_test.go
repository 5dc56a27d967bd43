package main

import "testing"

func TestShouldShowConsole(t *testing.T) {
	t.Setenv("JSON_FORMATTER_SHOW_CONSOLE", "")

	tests := []struct {
		args []string
		want bool
	}{
		{nil, false},
		{[]string{""}, false},
		{[]string{"format", "doc.json"}, true},
		{[]string{"tui"}, true},
		{[]string{"--verbose"}, true},
		{[]string{"-v"}, true},
		{[]string{"--version"}, true},
		{[]string{"--help"}, true},
		{[]string{"--verbose=false"}, false},
	}
	for _, tt := range tests {
		if got := shouldShowConsole(tt.args); got != tt.want {
			t.Errorf("shouldShowConsole(%q) = %v, want %v", tt.args, got, tt.want)
		}
	}
}

func TestShouldShowConsole_Env(t *testing.T) {
	t.Setenv("JSON_FORMATTER_SHOW_CONSOLE", "1")
	if !shouldShowConsole(nil) {
		t.Error("environment override should keep the console")
	}
}
