package lifecycle

import "sync"

// DefaultQueueSize is the event buffer used when NewDispatcher gets 0.
const DefaultQueueSize = 16

// Dispatcher carries events from background goroutines (hotkey listener,
// tray menu) to the GUI thread.
type Dispatcher struct {
	events chan Event
	post   func(func())
	handle func(Event)

	startOnce sync.Once
	stopOnce  sync.Once
	quit      chan struct{}
	done      chan struct{}
}

// NewDispatcher creates a Dispatcher. post schedules a function on the GUI
// thread (glib.IdleAdd in the application) and handle consumes an event
// there.
func NewDispatcher(post func(func()), handle func(Event), queueSize int) *Dispatcher {
	if queueSize <= 0 {
		queueSize = DefaultQueueSize
	}
	return &Dispatcher{
		events: make(chan Event, queueSize),
		post:   post,
		handle: handle,
		quit:   make(chan struct{}),
		done:   make(chan struct{}),
	}
}

// Start launches the pump goroutine. Later calls are no-ops.
func (d *Dispatcher) Start() {
	d.startOnce.Do(func() {
		go d.pump()
	})
}

// Send queues ev for the GUI thread. It is safe for concurrent use and
// returns false once the dispatcher has been stopped.
func (d *Dispatcher) Send(ev Event) bool {
	select {
	case <-d.quit:
		return false
	default:
	}

	select {
	case d.events <- ev:
		return true
	case <-d.quit:
		return false
	}
}

// Stop stops the pump after forwarding any queued events and waits for it
// to exit. It is idempotent.
func (d *Dispatcher) Stop() {
	d.stopOnce.Do(func() {
		close(d.quit)
	})
	d.Start()
	<-d.done
}

func (d *Dispatcher) pump() {
	defer close(d.done)
	for {
		select {
		case ev := <-d.events:
			d.forward(ev)
		case <-d.quit:
			for {
				select {
				case ev := <-d.events:
					d.forward(ev)
				default:
					return
				}
			}
		}
	}
}

func (d *Dispatcher) forward(ev Event) {
	d.post(func() {
		d.handle(ev)
	})
}
