// Package process cleans up child processes during shutdown and provides a
// last-resort self kill.
package process

import (
	"context"
	"errors"
	"fmt"
	"os"
	"syscall"

	psprocess "github.com/shirou/gopsutil/v4/process"

	"github.com/yllada/json-formatter/common"
)

// Proc is a node in a process tree.
type Proc interface {
	PID() int32
	Children(ctx context.Context) ([]Proc, error)
	Kill(ctx context.Context) error
}

// KillTree kills every descendant of root, leaves first. root itself is
// left running. Processes that exit during the walk are not errors.
func KillTree(ctx context.Context, root Proc) error {
	children, err := root.Children(ctx)
	if err != nil {
		if isGone(err) {
			return nil
		}
		return fmt.Errorf("listing children of %d: %w", root.PID(), err)
	}

	var errs []error
	for _, child := range children {
		if err := KillTree(ctx, child); err != nil {
			errs = append(errs, err)
		}
		if err := child.Kill(ctx); err != nil && !isGone(err) {
			errs = append(errs, fmt.Errorf("killing %d: %w", child.PID(), err))
			continue
		}
		common.LogDebug("Killed child process %d", child.PID())
	}
	return errors.Join(errs...)
}

// KillChildren kills every descendant of the running process.
func KillChildren(ctx context.Context) error {
	self, err := psprocess.NewProcessWithContext(ctx, int32(os.Getpid()))
	if err != nil {
		return fmt.Errorf("inspecting own process: %w", err)
	}
	return KillTree(ctx, psProc{self})
}

func isGone(err error) bool {
	return errors.Is(err, psprocess.ErrorProcessNotRunning) ||
		errors.Is(err, os.ErrProcessDone) ||
		errors.Is(err, syscall.ESRCH)
}

// psProc adapts a gopsutil process.
type psProc struct {
	p *psprocess.Process
}

func (p psProc) PID() int32 { return p.p.Pid }

func (p psProc) Children(ctx context.Context) ([]Proc, error) {
	children, err := p.p.ChildrenWithContext(ctx)
	if err != nil {
		return nil, err
	}
	procs := make([]Proc, len(children))
	for i, c := range children {
		procs[i] = psProc{c}
	}
	return procs, nil
}

func (p psProc) Kill(ctx context.Context) error {
	return p.p.KillWithContext(ctx)
}
