//go:build !windows

package process

import (
	"os"

	"golang.org/x/sys/unix"
)

// SelfKill sends SIGKILL to the running process. It only returns on failure.
func SelfKill() error {
	return unix.Kill(os.Getpid(), unix.SIGKILL)
}
