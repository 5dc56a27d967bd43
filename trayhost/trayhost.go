// Package trayhost reports whether a system tray host is present. The tray
// library shows its menu callbacks as soon as it starts, even when no host
// will ever display the icon; closing the window to the tray is only safe
// when a host exists.
package trayhost

import "sync/atomic"

// Host tracks tray host presence. Present is safe for concurrent use.
type Host struct {
	present  atomic.Bool
	onChange func(present bool)
	stop     func()
}

// Present reports whether a tray host is currently known to exist.
func (h *Host) Present() bool {
	return h.present.Load()
}

// Close stops watching. It is safe to call more than once.
func (h *Host) Close() {
	if h.stop != nil {
		h.stop()
	}
}

func (h *Host) set(present bool) {
	if h.present.Swap(present) == present {
		return
	}
	if h.onChange != nil {
		h.onChange(present)
	}
}
