// Package hotkey registers the global chord that brings the JSON Formatter
// window forward from anywhere on the desktop.
package hotkey

import (
	"fmt"
	"strings"

	"github.com/yllada/json-formatter/common"
)

// Modifier names accepted in a chord, in display order.
var modifierOrder = []string{"ctrl", "alt", "shift", "super"}

var modifierAliases = map[string]string{
	"ctrl":    "ctrl",
	"control": "ctrl",
	"alt":     "alt",
	"option":  "alt",
	"shift":   "shift",
	"super":   "super",
	"win":     "super",
	"cmd":     "super",
	"meta":    "super",
}

// Chord is a parsed key combination such as ctrl+shift+j.
type Chord struct {
	// Modifiers holds canonical modifier names in display order.
	Modifiers []string
	// Key is the lower-case name of the non-modifier key.
	Key string
}

// ParseChord parses a "+"-separated chord. It needs at least one modifier
// and exactly one key from the supported key set.
func ParseChord(s string) (Chord, error) {
	parts := strings.Split(strings.ToLower(strings.TrimSpace(s)), "+")

	seen := make(map[string]bool)
	var key string
	for _, raw := range parts {
		part := strings.TrimSpace(raw)
		if part == "" {
			return Chord{}, fmt.Errorf("%w: %q has an empty part", common.ErrInvalidHotkey, s)
		}
		if mod, ok := modifierAliases[part]; ok {
			if seen[mod] {
				return Chord{}, fmt.Errorf("%w: %q repeats %s", common.ErrInvalidHotkey, s, mod)
			}
			seen[mod] = true
			continue
		}
		if !isSupportedKey(part) {
			return Chord{}, fmt.Errorf("%w: unknown key %q", common.ErrInvalidHotkey, part)
		}
		if key != "" {
			return Chord{}, fmt.Errorf("%w: %q has more than one key", common.ErrInvalidHotkey, s)
		}
		key = part
	}

	if key == "" {
		return Chord{}, fmt.Errorf("%w: %q has no key", common.ErrInvalidHotkey, s)
	}
	if len(seen) == 0 {
		return Chord{}, fmt.Errorf("%w: %q needs a modifier", common.ErrInvalidHotkey, s)
	}

	chord := Chord{Key: key}
	for _, mod := range modifierOrder {
		if seen[mod] {
			chord.Modifiers = append(chord.Modifiers, mod)
		}
	}
	return chord, nil
}

// MustParseChord is like ParseChord but panics on error. It is meant for
// compile-time constants.
func MustParseChord(s string) Chord {
	chord, err := ParseChord(s)
	if err != nil {
		panic(err)
	}
	return chord
}

// String returns the chord in configuration syntax, e.g. "ctrl+shift+j".
func (c Chord) String() string {
	return strings.Join(append(append([]string(nil), c.Modifiers...), c.Key), "+")
}

// Label returns the chord for display, e.g. "Ctrl+Shift+J".
func (c Chord) Label() string {
	parts := make([]string, 0, len(c.Modifiers)+1)
	for _, mod := range c.Modifiers {
		parts = append(parts, strings.ToUpper(mod[:1])+mod[1:])
	}
	parts = append(parts, strings.ToUpper(c.Key[:1])+c.Key[1:])
	return strings.Join(parts, "+")
}
