package lifecycle

import "github.com/yllada/json-formatter/common"

// Router hands dispatched events to the Machine once the GUI has built it.
// Until then a QuitRequested runs the fallback quit directly and every
// other event is dropped. It must only be used from the GUI thread.
type Router struct {
	machine *Machine
	quit    func()
	quitted bool
}

// NewRouter creates a Router. quit is used for quit requests that arrive
// before SetMachine.
func NewRouter(quit func()) *Router {
	return &Router{quit: quit}
}

// SetMachine makes m the target of all later events.
func (r *Router) SetMachine(m *Machine) {
	r.machine = m
}

// Quitting reports whether an early quit request already ran the fallback.
func (r *Router) Quitting() bool {
	return r.quitted
}

// Handle routes one event.
func (r *Router) Handle(ev Event) {
	if r.machine != nil {
		r.machine.Handle(ev)
		return
	}
	if ev != QuitRequested {
		common.LogDebug("Dropped %s before the window exists", ev)
		return
	}
	if r.quitted || r.quit == nil {
		return
	}
	r.quitted = true
	r.quit()
}
