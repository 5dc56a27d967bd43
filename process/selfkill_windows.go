//go:build windows

package process

import "golang.org/x/sys/windows"

// SelfKill terminates the running process. It only returns on failure.
func SelfKill() error {
	return windows.TerminateProcess(windows.CurrentProcess(), 1)
}
