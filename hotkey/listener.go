package hotkey

import (
	"fmt"
	"sync"

	"github.com/yllada/json-formatter/common"
)

// Grab is an OS-level registration of one chord. Keydown delivers one value
// per press and is closed if the grab dies.
type Grab interface {
	Register() error
	Unregister() error
	Keydown() <-chan struct{}
}

// Listener watches one global chord and calls onPress for every press.
// onPress runs on the listener goroutine and must not touch GUI state.
type Listener struct {
	mu       sync.Mutex
	chord    Chord
	onPress  func()
	newGrab  func(Chord) (Grab, error)
	grab     Grab
	running  bool
	stopped  bool
	stopChan chan struct{}
	done     chan struct{}
}

// NewListener creates a listener for chord. Nothing is registered until
// Start is called.
func NewListener(chord Chord, onPress func()) *Listener {
	return &Listener{
		chord:   chord,
		onPress: onPress,
		newGrab: newSystemGrab,
	}
}

// Chord returns the chord the listener watches.
func (l *Listener) Chord() Chord {
	return l.chord
}

// Start registers the chord and starts the listener goroutine. Calling it
// again while running, or after Stop, does nothing.
func (l *Listener) Start() error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.running || l.stopped {
		return nil
	}

	grab, err := l.newGrab(l.chord)
	if err != nil {
		return fmt.Errorf("%w: %v", common.ErrHotkeyUnavailable, err)
	}
	if err := grab.Register(); err != nil {
		return fmt.Errorf("%w: registering %s: %v", common.ErrHotkeyUnavailable, l.chord, err)
	}

	l.grab = grab
	l.running = true
	l.stopChan = make(chan struct{})
	l.done = make(chan struct{})

	go l.runLoop(grab.Keydown(), l.stopChan, l.done)

	common.LogInfo("Global hotkey %s registered", l.chord.Label())
	return nil
}

// Stop unregisters the chord and waits for the listener goroutine to exit.
// It is idempotent and safe to call when Start failed or never ran.
func (l *Listener) Stop() error {
	l.mu.Lock()
	if l.stopped {
		l.mu.Unlock()
		return nil
	}
	l.stopped = true
	if !l.running {
		l.mu.Unlock()
		return nil
	}
	l.running = false
	close(l.stopChan)
	grab, done := l.grab, l.done
	l.mu.Unlock()

	<-done
	if err := grab.Unregister(); err != nil {
		return fmt.Errorf("unregistering %s: %w", l.chord, err)
	}

	common.LogInfo("Global hotkey %s unregistered", l.chord.Label())
	return nil
}

func (l *Listener) runLoop(keydown <-chan struct{}, stop, done chan struct{}) {
	defer close(done)
	for {
		select {
		case <-stop:
			return
		case _, ok := <-keydown:
			if !ok {
				return
			}
			common.LogDebug("Hotkey %s pressed", l.chord.Label())
			if l.onPress != nil {
				l.onPress()
			}
		}
	}
}
