package lifecycle

import (
	"os"

	"github.com/yllada/json-formatter/common"
)

// WatchSignals turns the first signal received on signals into a quit
// request. If requestQuit cannot queue it, or another signal follows, exit
// is called with status 1. The returned func stops watching.
func WatchSignals(signals <-chan os.Signal, requestQuit func() bool, exit func(code int)) (stop func()) {
	done := make(chan struct{})
	finished := make(chan struct{})

	go func() {
		defer close(finished)
		requested := false
		for {
			select {
			case <-done:
				return
			case sig := <-signals:
				if requested {
					common.LogWarn("Received %v again, exiting now", sig)
					exit(1)
					continue
				}
				requested = true
				common.LogInfo("Received signal %v, quitting", sig)
				if !requestQuit() {
					common.LogWarn("Quit request could not be queued, exiting now")
					exit(1)
				}
			}
		}
	}()

	return func() {
		close(done)
		<-finished
	}
}
