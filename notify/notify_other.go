//go:build !linux

package notify

import (
	"time"

	"github.com/yllada/json-formatter/common"
)

func newPlatformNotifier(string, time.Duration) common.Notifier {
	return beeepNotifier{}
}
