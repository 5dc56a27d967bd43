//go:build linux || freebsd || openbsd || netbsd

package trayhost

import (
	"fmt"
	"sync"

	"github.com/godbus/dbus/v5"

	"github.com/yllada/json-formatter/common"
)

const (
	// WatcherName is the bus name owned by StatusNotifierItem hosts.
	WatcherName = "org.kde.StatusNotifierWatcher"

	nameOwnerChanged = "org.freedesktop.DBus.NameOwnerChanged"
)

// Watch checks the session bus for a StatusNotifierWatcher and follows its
// ownership. onChange, if set, runs on a background goroutine whenever
// presence changes. Without a session bus the host is reported absent and
// the error says why.
func Watch(onChange func(present bool)) (*Host, error) {
	h := &Host{onChange: onChange}

	conn, err := dbus.ConnectSessionBus()
	if err != nil {
		return h, fmt.Errorf("connecting to the session bus: %w", err)
	}

	err = conn.AddMatchSignal(
		dbus.WithMatchInterface("org.freedesktop.DBus"),
		dbus.WithMatchMember("NameOwnerChanged"),
		dbus.WithMatchArg(0, WatcherName),
	)
	if err != nil {
		conn.Close()
		return h, fmt.Errorf("watching %s: %w", WatcherName, err)
	}
	signals := make(chan *dbus.Signal, 8)
	conn.Signal(signals)

	var owned bool
	err = conn.BusObject().Call("org.freedesktop.DBus.NameHasOwner", 0, WatcherName).Store(&owned)
	if err != nil {
		conn.Close()
		return h, fmt.Errorf("querying %s: %w", WatcherName, err)
	}
	h.present.Store(owned)

	done := make(chan struct{})
	go func() {
		defer close(done)
		for sig := range signals {
			if present, ok := ownerChange(sig); ok {
				common.LogInfo("Tray host %s", presenceText(present))
				h.set(present)
			}
		}
	}()

	var once sync.Once
	h.stop = func() {
		once.Do(func() {
			conn.Close()
			<-done
		})
	}
	return h, nil
}

// ownerChange decodes a NameOwnerChanged signal for WatcherName and reports
// whether the name now has an owner.
func ownerChange(sig *dbus.Signal) (present bool, ok bool) {
	if sig == nil || sig.Name != nameOwnerChanged || len(sig.Body) != 3 {
		return false, false
	}
	name, _ := sig.Body[0].(string)
	newOwner, isString := sig.Body[2].(string)
	if name != WatcherName || !isString {
		return false, false
	}
	return newOwner != "", true
}

func presenceText(present bool) string {
	if present {
		return "appeared"
	}
	return "disappeared"
}
