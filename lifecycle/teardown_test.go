package lifecycle

import (
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/yllada/json-formatter/common"
)

type teardownRecorder struct {
	mu       sync.Mutex
	calls    []string
	exits    []int
	backstop func()
	delay    time.Duration
}

func (r *teardownRecorder) record(name string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.calls = append(r.calls, name)
}

func (r *teardownRecorder) step(name string, err error) func() error {
	return func() error {
		r.record(name)
		return err
	}
}

func (r *teardownRecorder) snapshot() ([]string, []int) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]string(nil), r.calls...), append([]int(nil), r.exits...)
}

func newRecordedTeardown(r *teardownRecorder) *Teardown {
	return &Teardown{
		HideTray:     r.step("tray", nil),
		StopHotkey:   r.step("hotkey", nil),
		KillChildren: r.step("children", nil),
		QuitLoop:     r.step("quit", nil),
		SelfKill:     r.step("selfkill", nil),
		Exit: func(code int) {
			r.mu.Lock()
			defer r.mu.Unlock()
			r.exits = append(r.exits, code)
		},
		Grace: 2 * time.Second,
		AfterFunc: func(d time.Duration, f func()) {
			r.delay = d
			r.backstop = f
		},
	}
}

func indexOf(calls []string, name string) int {
	for i, c := range calls {
		if c == name {
			return i
		}
	}
	return -1
}

func TestTeardown_OrderAndBackstop(t *testing.T) {
	r := &teardownRecorder{}
	td := newRecordedTeardown(r)

	results := td.Run()

	calls, exits := r.snapshot()
	want := []string{"tray", "hotkey", "children", "quit"}
	if len(calls) != len(want) {
		t.Fatalf("calls = %v, want %v", calls, want)
	}
	for i := range want {
		if calls[i] != want[i] {
			t.Errorf("call %d = %s, want %s", i, calls[i], want[i])
		}
	}
	if len(exits) != 0 {
		t.Errorf("exits = %v, want none on a clean teardown", exits)
	}

	names := []string{StepHideTray, StepStopHotkey, StepKillChildren, StepQuitLoop, StepArmBackstop}
	if len(results) != len(names) {
		t.Fatalf("results = %+v", results)
	}
	for i, res := range results {
		if res.Name != names[i] || res.Err != nil {
			t.Errorf("result %d = %+v, want %s without error", i, res, names[i])
		}
	}

	if r.backstop == nil {
		t.Fatal("backstop was not armed")
	}
	if r.delay != 2*time.Second {
		t.Errorf("grace = %v, want 2s", r.delay)
	}

	r.backstop()
	calls, exits = r.snapshot()
	if indexOf(calls, "selfkill") <= indexOf(calls, "hotkey") || indexOf(calls, "selfkill") <= indexOf(calls, "children") {
		t.Errorf("self-kill must follow hotkey unhook and child kill, calls = %v", calls)
	}
	if len(exits) != 0 {
		t.Errorf("exits = %v, want none when self-kill succeeds", exits)
	}
}

func TestTeardown_FailureStillRunsAllStepsAndExits(t *testing.T) {
	r := &teardownRecorder{}
	td := newRecordedTeardown(r)
	td.KillChildren = func() error {
		r.record("children")
		return errors.New("process table unreadable")
	}

	results := td.Run()

	calls, exits := r.snapshot()
	for _, name := range []string{"tray", "hotkey", "children", "quit"} {
		if indexOf(calls, name) < 0 {
			t.Errorf("step %s was skipped, calls = %v", name, calls)
		}
	}
	if len(exits) != 1 || exits[0] != 1 {
		t.Errorf("exits = %v, want an immediate exit(1)", exits)
	}
	if !errors.Is(results[2].Err, common.ErrTeardownStep) {
		t.Errorf("kill children result = %v, want ErrTeardownStep", results[2].Err)
	}
}

func TestTeardown_PanicIsRecovered(t *testing.T) {
	r := &teardownRecorder{}
	td := newRecordedTeardown(r)
	td.StopHotkey = func() error { panic("grab lost") }

	results := td.Run()

	if results[1].Err == nil {
		t.Fatal("panicking step should report an error")
	}
	calls, exits := r.snapshot()
	if indexOf(calls, "children") < 0 || indexOf(calls, "quit") < 0 {
		t.Errorf("steps after the panic were skipped, calls = %v", calls)
	}
	if len(exits) != 1 {
		t.Errorf("exits = %v, want one", exits)
	}
}

func TestTeardown_SelfKillFailureFallsBackToExit(t *testing.T) {
	r := &teardownRecorder{}
	td := newRecordedTeardown(r)
	td.SelfKill = func() error { return errors.New("signal refused") }

	td.Run()
	r.backstop()

	_, exits := r.snapshot()
	if len(exits) != 1 || exits[0] != 1 {
		t.Errorf("exits = %v, want exit(1) from the backstop", exits)
	}
}

func TestTeardown_RunsOnce(t *testing.T) {
	r := &teardownRecorder{}
	td := newRecordedTeardown(r)

	td.Run()
	if second := td.Run(); second != nil {
		t.Errorf("second Run() = %+v, want nil", second)
	}
	calls, _ := r.snapshot()
	if len(calls) != 4 {
		t.Errorf("calls = %v, want a single pass", calls)
	}
}

func TestTeardown_BoundedWithRealTimer(t *testing.T) {
	killed := make(chan struct{})
	td := &Teardown{
		KillChildren: func() error { return nil },
		QuitLoop:     func() error { return nil },
		SelfKill: func() error {
			close(killed)
			return nil
		},
		Exit:  func(int) { t.Error("unexpected exit") },
		Grace: 20 * time.Millisecond,
	}

	td.Run()

	select {
	case <-killed:
	case <-time.After(2 * time.Second):
		t.Fatal("backstop did not fire within the grace period")
	}
}

func TestMachine_QuitDrivesTeardown(t *testing.T) {
	r := &teardownRecorder{}
	td := newRecordedTeardown(r)
	td.KillChildren = func() error {
		r.record("children")
		return errors.New("enumeration failed")
	}

	f := newFixture(Hidden, true)
	f.machine.cfg.Quit = func() { td.Run() }

	f.machine.Handle(QuitRequested)
	f.machine.Handle(QuitRequested)

	if f.machine.State() != Terminating {
		t.Errorf("state = %v, want Terminating", f.machine.State())
	}
	_, exits := r.snapshot()
	if len(exits) != 1 {
		t.Errorf("exits = %v, want exactly one immediate exit", exits)
	}
}
