package notify

import (
	"fmt"
	"sync"
	"time"

	"github.com/godbus/dbus/v5"

	"github.com/yllada/json-formatter/common"
)

const (
	notificationsService = "org.freedesktop.Notifications"
	notificationsPath    = "/org/freedesktop/Notifications"
	notifyMethod         = notificationsService + ".Notify"
)

// dbusNotifier sends notifications over the session bus.
type dbusNotifier struct {
	appName  string
	timeout  time.Duration
	fallback common.Notifier

	mu   sync.Mutex
	conn *dbus.Conn
}

func newPlatformNotifier(appName string, timeout time.Duration) common.Notifier {
	return &dbusNotifier{
		appName:  appName,
		timeout:  timeout,
		fallback: beeepNotifier{},
	}
}

func (n *dbusNotifier) Notify(title, message string) error {
	return n.NotifyWithIcon(title, message, "")
}

func (n *dbusNotifier) NotifyWithIcon(title, message, icon string) error {
	err := n.send(title, message, icon)
	if err == nil {
		return nil
	}
	common.LogDebug("D-Bus notification failed, using fallback: %v", err)
	return n.fallback.NotifyWithIcon(title, message, icon)
}

func (n *dbusNotifier) send(title, message, icon string) error {
	conn, err := n.connect()
	if err != nil {
		return err
	}

	obj := conn.Object(notificationsService, notificationsPath)
	call := obj.Call(notifyMethod, 0,
		n.appName,
		uint32(0), // replaces_id
		icon,
		title,
		message,
		[]string{},
		map[string]dbus.Variant{"urgency": dbus.MakeVariant(byte(0))},
		int32(n.timeout/time.Millisecond),
	)
	if call.Err != nil {
		return fmt.Errorf("calling %s: %w", notifyMethod, call.Err)
	}
	return nil
}

// connect opens a private session bus connection on first use.
func (n *dbusNotifier) connect() (*dbus.Conn, error) {
	n.mu.Lock()
	defer n.mu.Unlock()

	if n.conn != nil && n.conn.Connected() {
		return n.conn, nil
	}
	conn, err := dbus.ConnectSessionBus()
	if err != nil {
		return nil, fmt.Errorf("connecting to session bus: %w", err)
	}
	n.conn = conn
	return conn, nil
}
