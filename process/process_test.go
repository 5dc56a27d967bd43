package process

import (
	"context"
	"errors"
	"os"
	"os/exec"
	"runtime"
	"strings"
	"testing"
	"time"

	psprocess "github.com/shirou/gopsutil/v4/process"
)

type fakeProc struct {
	pid      int32
	children []*fakeProc
	listErr  error
	killErr  error
	killed   *[]int32
}

func (p *fakeProc) PID() int32 { return p.pid }

func (p *fakeProc) Children(context.Context) ([]Proc, error) {
	if p.listErr != nil {
		return nil, p.listErr
	}
	procs := make([]Proc, len(p.children))
	for i, c := range p.children {
		procs[i] = c
	}
	return procs, nil
}

func (p *fakeProc) Kill(context.Context) error {
	if p.killErr != nil {
		return p.killErr
	}
	*p.killed = append(*p.killed, p.pid)
	return nil
}

func tree(killed *[]int32) *fakeProc {
	leaf := func(pid int32) *fakeProc { return &fakeProc{pid: pid, killed: killed} }
	return &fakeProc{pid: 1, killed: killed, children: []*fakeProc{
		{pid: 2, killed: killed, children: []*fakeProc{leaf(4), leaf(5)}},
		leaf(3),
	}}
}

func TestKillTree_LeavesFirst(t *testing.T) {
	var killed []int32
	if err := KillTree(context.Background(), tree(&killed)); err != nil {
		t.Fatalf("KillTree() error = %v", err)
	}

	want := []int32{4, 5, 2, 3}
	if len(killed) != len(want) {
		t.Fatalf("killed = %v, want %v", killed, want)
	}
	for i := range want {
		if killed[i] != want[i] {
			t.Fatalf("killed = %v, want %v", killed, want)
		}
	}
}

func TestKillTree_VanishedProcessesAreIgnored(t *testing.T) {
	var killed []int32
	root := tree(&killed)
	root.children[0].children[0].killErr = psprocess.ErrorProcessNotRunning
	root.children[1].listErr = os.ErrProcessDone

	if err := KillTree(context.Background(), root); err != nil {
		t.Errorf("KillTree() error = %v", err)
	}
	if len(killed) != 3 {
		t.Errorf("killed = %v, want 3 processes", killed)
	}
}

func TestKillTree_ContinuesPastFailures(t *testing.T) {
	var killed []int32
	root := tree(&killed)
	root.children[0].killErr = errors.New("operation not permitted")

	err := KillTree(context.Background(), root)
	if err == nil || !strings.Contains(err.Error(), "killing 2") {
		t.Errorf("KillTree() error = %v, want failure for pid 2", err)
	}
	if len(killed) != 3 {
		t.Errorf("killed = %v, remaining processes should still be killed", killed)
	}
}

func TestKillTree_NoChildren(t *testing.T) {
	var killed []int32
	if err := KillTree(context.Background(), &fakeProc{pid: 1, killed: &killed}); err != nil {
		t.Errorf("KillTree() error = %v", err)
	}
	if len(killed) != 0 {
		t.Errorf("killed = %v", killed)
	}
}

func TestKillChildren_RealChild(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("uses sleep(1)")
	}
	path, err := exec.LookPath("sleep")
	if err != nil {
		t.Skip("sleep not available")
	}

	cmd := exec.Command(path, "30")
	if err := cmd.Start(); err != nil {
		t.Fatal(err)
	}
	done := make(chan error, 1)
	go func() { done <- cmd.Wait() }()

	if err := KillChildren(context.Background()); err != nil {
		t.Fatalf("KillChildren() error = %v", err)
	}

	select {
	case <-done:
	case <-time.After(5 * time.Second):
		cmd.Process.Kill()
		t.Fatal("child process survived")
	}
}
