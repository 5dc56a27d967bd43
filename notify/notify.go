// Package notify sends desktop notifications. On Linux it talks to the
// org.freedesktop.Notifications service over the session bus and falls back
// to beeep when no service answers. Other platforms use beeep directly.
package notify

import (
	"sync"
	"time"

	"github.com/gen2brain/beeep"

	"github.com/yllada/json-formatter/common"
)

// New returns the notifier for the current platform.
func New(appName string) common.Notifier {
	beeep.AppName = appName
	return newPlatformNotifier(appName, common.NotificationTimeout)
}

// beeepNotifier delivers notifications through beeep.
type beeepNotifier struct{}

func (beeepNotifier) Notify(title, message string) error {
	return beeep.Notify(title, message, "")
}

func (beeepNotifier) NotifyWithIcon(title, message, icon string) error {
	return beeep.Notify(title, message, icon)
}

// Async delivers notifications on a background goroutine so a slow
// notification service never blocks the caller. Errors are logged.
type Async struct {
	next common.Notifier
	wg   sync.WaitGroup
}

// NewAsync wraps next.
func NewAsync(next common.Notifier) *Async {
	return &Async{next: next}
}

// Notify queues a notification and returns nil.
func (a *Async) Notify(title, message string) error {
	a.wg.Add(1)
	go func() {
		defer a.wg.Done()
		if err := a.next.Notify(title, message); err != nil {
			common.LogWarn("Notification failed: %v", err)
		}
	}()
	return nil
}

// NotifyWithIcon queues a notification with an icon and returns nil.
func (a *Async) NotifyWithIcon(title, message, icon string) error {
	a.wg.Add(1)
	go func() {
		defer a.wg.Done()
		if err := a.next.NotifyWithIcon(title, message, icon); err != nil {
			common.LogWarn("Notification failed: %v", err)
		}
	}()
	return nil
}

// Wait blocks until queued notifications finish or timeout elapses.
func (a *Async) Wait(timeout time.Duration) bool {
	done := make(chan struct{})
	go func() {
		a.wg.Wait()
		close(done)
	}()
	select {
	case <-done:
		return true
	case <-time.After(timeout):
		return false
	}
}
