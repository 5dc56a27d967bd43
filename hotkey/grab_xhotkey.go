//go:build windows || darwin

package hotkey

import (
	"fmt"
	"sync"

	xhotkey "golang.design/x/hotkey"

	"github.com/yllada/json-formatter/common"
)

var keyTable = map[string]xhotkey.Key{
	"a": xhotkey.KeyA, "b": xhotkey.KeyB, "c": xhotkey.KeyC, "d": xhotkey.KeyD,
	"e": xhotkey.KeyE, "f": xhotkey.KeyF, "g": xhotkey.KeyG, "h": xhotkey.KeyH,
	"i": xhotkey.KeyI, "j": xhotkey.KeyJ, "k": xhotkey.KeyK, "l": xhotkey.KeyL,
	"m": xhotkey.KeyM, "n": xhotkey.KeyN, "o": xhotkey.KeyO, "p": xhotkey.KeyP,
	"q": xhotkey.KeyQ, "r": xhotkey.KeyR, "s": xhotkey.KeyS, "t": xhotkey.KeyT,
	"u": xhotkey.KeyU, "v": xhotkey.KeyV, "w": xhotkey.KeyW, "x": xhotkey.KeyX,
	"y": xhotkey.KeyY, "z": xhotkey.KeyZ,

	"0": xhotkey.Key0, "1": xhotkey.Key1, "2": xhotkey.Key2, "3": xhotkey.Key3,
	"4": xhotkey.Key4, "5": xhotkey.Key5, "6": xhotkey.Key6, "7": xhotkey.Key7,
	"8": xhotkey.Key8, "9": xhotkey.Key9,

	"f1": xhotkey.KeyF1, "f2": xhotkey.KeyF2, "f3": xhotkey.KeyF3, "f4": xhotkey.KeyF4,
	"f5": xhotkey.KeyF5, "f6": xhotkey.KeyF6, "f7": xhotkey.KeyF7, "f8": xhotkey.KeyF8,
	"f9": xhotkey.KeyF9, "f10": xhotkey.KeyF10, "f11": xhotkey.KeyF11, "f12": xhotkey.KeyF12,

	"space": xhotkey.KeySpace,
}

// resolve maps a chord onto the hotkey library's key codes.
func resolve(c Chord) ([]xhotkey.Modifier, xhotkey.Key, error) {
	key, ok := keyTable[c.Key]
	if !ok {
		return nil, 0, fmt.Errorf("%w: unknown key %q", common.ErrInvalidHotkey, c.Key)
	}

	mods := make([]xhotkey.Modifier, 0, len(c.Modifiers))
	for _, name := range c.Modifiers {
		mod, ok := modifierTable[name]
		if !ok {
			return nil, 0, fmt.Errorf("%w: modifier %q", common.ErrInvalidHotkey, name)
		}
		mods = append(mods, mod)
	}
	return mods, key, nil
}

// xhotkeyGrab adapts *xhotkey.Hotkey to Grab.
type xhotkeyGrab struct {
	hk       *xhotkey.Hotkey
	keydown  chan struct{}
	quit     chan struct{}
	quitOnce sync.Once
}

func newSystemGrab(c Chord) (Grab, error) {
	mods, key, err := resolve(c)
	if err != nil {
		return nil, err
	}
	return &xhotkeyGrab{
		hk:      xhotkey.New(mods, key),
		keydown: make(chan struct{}),
		quit:    make(chan struct{}),
	}, nil
}

func (g *xhotkeyGrab) Register() error {
	if err := g.hk.Register(); err != nil {
		return err
	}
	go g.forward()
	return nil
}

func (g *xhotkeyGrab) Unregister() error {
	g.quitOnce.Do(func() { close(g.quit) })
	return g.hk.Unregister()
}

func (g *xhotkeyGrab) Keydown() <-chan struct{} {
	return g.keydown
}

func (g *xhotkeyGrab) forward() {
	events := g.hk.Keydown()
	for {
		select {
		case <-g.quit:
			return
		case _, ok := <-events:
			if !ok {
				close(g.keydown)
				return
			}
			select {
			case g.keydown <- struct{}{}:
			case <-g.quit:
				return
			}
		}
	}
}
