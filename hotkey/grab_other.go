//go:build !(linux || freebsd || openbsd || netbsd || windows || darwin)

package hotkey

import (
	"fmt"
	"runtime"
)

func newSystemGrab(Chord) (Grab, error) {
	return nil, fmt.Errorf("global hotkeys are not supported on %s", runtime.GOOS)
}
