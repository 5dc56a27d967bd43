package lifecycle

import (
	"fmt"
	"sync"
	"time"

	"github.com/yllada/json-formatter/common"
)

// Teardown step names, in execution order.
const (
	StepHideTray     = "hide tray"
	StepStopHotkey   = "unregister hotkey"
	StepKillChildren = "kill child processes"
	StepQuitLoop     = "quit main loop"
	StepArmBackstop  = "arm backstop"
)

// StepResult is the outcome of one teardown step.
type StepResult struct {
	Name string
	Err  error
}

// Teardown is the ordered shutdown sequence. Every step runs even when an
// earlier one fails; a failure anywhere ends in an immediate hard exit.
type Teardown struct {
	HideTray     func() error
	StopHotkey   func() error
	KillChildren func() error
	// QuitLoop asks the GUI main loop to return.
	QuitLoop func() error
	// SelfKill terminates the process with a kill signal.
	SelfKill func() error
	// Exit ends the process immediately (os.Exit in the application).
	Exit func(code int)
	// Grace is how long the main loop may take to unwind before SelfKill.
	Grace time.Duration
	// AfterFunc schedules the backstop; defaults to time.AfterFunc.
	AfterFunc func(d time.Duration, f func())

	once sync.Once
}

// Run executes the sequence once and returns the step results. Later calls
// return nil.
func (t *Teardown) Run() []StepResult {
	var results []StepResult
	t.once.Do(func() {
		results = t.run()
	})
	return results
}

func (t *Teardown) run() []StepResult {
	common.LogInfo("Shutting down")

	results := []StepResult{
		runStep(StepHideTray, t.HideTray),
		runStep(StepStopHotkey, t.StopHotkey),
		runStep(StepKillChildren, t.KillChildren),
		runStep(StepQuitLoop, t.QuitLoop),
		runStep(StepArmBackstop, t.armBackstop),
	}

	failed := false
	for _, res := range results {
		if res.Err != nil {
			failed = true
			common.LogError("Teardown: %v", res.Err)
		}
	}

	if failed {
		common.LogWarn("Teardown incomplete, exiting immediately")
		t.exit(1)
	}
	return results
}

func (t *Teardown) armBackstop() error {
	grace := t.Grace
	if grace <= 0 {
		grace = common.QuitGracePeriod
	}
	after := t.AfterFunc
	if after == nil {
		after = func(d time.Duration, f func()) { time.AfterFunc(d, f) }
	}

	after(grace, func() {
		common.LogWarn("Main loop still running after %v, killing process", grace)
		if t.SelfKill != nil {
			err := t.SelfKill()
			if err == nil {
				return
			}
			common.LogError("Self-kill failed: %v", err)
		}
		t.exit(1)
	})
	return nil
}

func (t *Teardown) exit(code int) {
	if t.Exit != nil {
		t.Exit(code)
	}
}

// runStep runs fn, converting errors and panics into a StepResult.
func runStep(name string, fn func() error) (res StepResult) {
	res.Name = name
	if fn == nil {
		return res
	}

	defer func() {
		if r := recover(); r != nil {
			res.Err = fmt.Errorf("%w: %s: panic: %v", common.ErrTeardownStep, name, r)
		}
	}()

	if err := fn(); err != nil {
		res.Err = fmt.Errorf("%w: %s: %v", common.ErrTeardownStep, name, err)
	}
	return res
}
