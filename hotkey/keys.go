package hotkey

import "slices"

// keyNames lists the non-modifier keys a chord may use. Every grab backend
// maps all of them.
var keyNames = []string{
	"a", "b", "c", "d", "e", "f", "g", "h", "i", "j", "k", "l", "m",
	"n", "o", "p", "q", "r", "s", "t", "u", "v", "w", "x", "y", "z",
	"0", "1", "2", "3", "4", "5", "6", "7", "8", "9",
	"f1", "f2", "f3", "f4", "f5", "f6", "f7", "f8", "f9", "f10", "f11", "f12",
	"space",
}

func isSupportedKey(name string) bool {
	return slices.Contains(keyNames, name)
}
