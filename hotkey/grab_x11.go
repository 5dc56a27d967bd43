//go:build linux || freebsd || openbsd || netbsd

package hotkey

import (
	"fmt"
	"strconv"
	"strings"
	"sync"

	"github.com/jezek/xgb"
	"github.com/jezek/xgb/xproto"

	"github.com/yllada/json-formatter/common"
)

// X11 maps Alt to Mod1 and Super to Mod4 on common keyboard layouts.
var modifierMasks = map[string]uint16{
	"ctrl":  xproto.ModMaskControl,
	"shift": xproto.ModMaskShift,
	"alt":   xproto.ModMask1,
	"super": xproto.ModMask4,
}

// Caps Lock and Num Lock (Mod2) change the event state, so the chord is
// grabbed once for every combination of them.
var lockMasks = []uint16{
	0,
	xproto.ModMaskLock,
	xproto.ModMask2,
	xproto.ModMaskLock | xproto.ModMask2,
}

const (
	keysymSpace = 0x0020
	keysymF1    = 0xffbe
)

// keysymFor returns the X11 keysym of a chord key. Letters use their
// lower-case keysym, which is what keyboard mappings list first.
func keysymFor(name string) (xproto.Keysym, bool) {
	switch {
	case len(name) == 1 && (name[0] >= 'a' && name[0] <= 'z' || name[0] >= '0' && name[0] <= '9'):
		return xproto.Keysym(name[0]), true
	case name == "space":
		return keysymSpace, true
	case strings.HasPrefix(name, "f"):
		n, err := strconv.Atoi(name[1:])
		if err == nil && n >= 1 && n <= 12 {
			return xproto.Keysym(keysymF1 + n - 1), true
		}
	}
	return 0, false
}

// resolveX11 maps a chord onto a modifier mask and keysym.
func resolveX11(c Chord) (uint16, xproto.Keysym, error) {
	keysym, ok := keysymFor(c.Key)
	if !ok {
		return 0, 0, fmt.Errorf("%w: unknown key %q", common.ErrInvalidHotkey, c.Key)
	}

	var mask uint16
	for _, name := range c.Modifiers {
		mod, ok := modifierMasks[name]
		if !ok {
			return 0, 0, fmt.Errorf("%w: modifier %q", common.ErrInvalidHotkey, name)
		}
		mask |= mod
	}
	return mask, keysym, nil
}

// findKeycode searches a keyboard mapping, as returned by
// GetKeyboardMapping starting at first, for the keycode producing want.
func findKeycode(first xproto.Keycode, perKeycode int, syms []xproto.Keysym, want xproto.Keysym) (xproto.Keycode, bool) {
	if perKeycode <= 0 {
		return 0, false
	}
	for i := 0; i*perKeycode < len(syms); i++ {
		for j := 0; j < perKeycode && i*perKeycode+j < len(syms); j++ {
			if syms[i*perKeycode+j] == want {
				return first + xproto.Keycode(i), true
			}
		}
	}
	return 0, false
}

// x11Grab grabs one key combination on the root window of the default
// screen over its own X connection.
type x11Grab struct {
	conn     *xgb.Conn
	root     xproto.Window
	mask     uint16
	keycode  xproto.Keycode
	keydown  chan struct{}
	quit     chan struct{}
	quitOnce sync.Once
}

// newSystemGrab connects to the X server named by $DISPLAY. Without a
// display, or on a Wayland session without XWayland, it returns an error.
func newSystemGrab(c Chord) (Grab, error) {
	mask, keysym, err := resolveX11(c)
	if err != nil {
		return nil, err
	}

	conn, err := xgb.NewConn()
	if err != nil {
		return nil, fmt.Errorf("connecting to the X server: %w", err)
	}

	setup := xproto.Setup(conn)
	count := int(setup.MaxKeycode) - int(setup.MinKeycode) + 1
	mapping, err := xproto.GetKeyboardMapping(conn, setup.MinKeycode, byte(count)).Reply()
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("reading keyboard mapping: %w", err)
	}

	keycode, ok := findKeycode(setup.MinKeycode, int(mapping.KeysymsPerKeycode), mapping.Keysyms, keysym)
	if !ok {
		conn.Close()
		return nil, fmt.Errorf("no key on this keyboard produces %q", c.Key)
	}

	return &x11Grab{
		conn:    conn,
		root:    setup.DefaultScreen(conn).Root,
		mask:    mask,
		keycode: keycode,
		keydown: make(chan struct{}),
		quit:    make(chan struct{}),
	}, nil
}

func (g *x11Grab) Register() error {
	for i, lock := range lockMasks {
		err := xproto.GrabKeyChecked(g.conn, true, g.root, g.mask|lock, g.keycode,
			xproto.GrabModeAsync, xproto.GrabModeAsync).Check()
		if err != nil {
			g.ungrab(lockMasks[:i])
			g.conn.Close()
			return err
		}
	}
	go g.readEvents()
	return nil
}

func (g *x11Grab) Unregister() error {
	g.quitOnce.Do(func() { close(g.quit) })
	err := g.ungrab(lockMasks)
	g.conn.Close()
	return err
}

func (g *x11Grab) Keydown() <-chan struct{} {
	return g.keydown
}

func (g *x11Grab) ungrab(locks []uint16) error {
	var firstErr error
	for _, lock := range locks {
		err := xproto.UngrabKeyChecked(g.conn, g.keycode, g.root, g.mask|lock).Check()
		if err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}

func (g *x11Grab) readEvents() {
	for {
		ev, xerr := g.conn.WaitForEvent()
		if ev == nil && xerr == nil {
			// connection closed
			close(g.keydown)
			return
		}
		if xerr != nil {
			common.LogDebug("X11 error while listening for hotkey: %v", xerr)
			continue
		}

		press, ok := ev.(xproto.KeyPressEvent)
		if !ok || press.Detail != g.keycode {
			continue
		}
		select {
		case g.keydown <- struct{}{}:
		case <-g.quit:
			return
		}
	}
}
