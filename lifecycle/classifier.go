package lifecycle

import (
	"sync"
	"time"
)

// Activation is the reason a tray icon was activated.
type Activation int

const (
	// Trigger is a single tap on the tray icon.
	Trigger Activation = iota
	// DoubleClick is a second tap within the double-click interval.
	DoubleClick
)

// String returns the string representation of the activation.
func (a Activation) String() string {
	switch a {
	case Trigger:
		return "Trigger"
	case DoubleClick:
		return "DoubleClick"
	default:
		return "Unknown"
	}
}

// ClickClassifier turns the single taps reported by the tray host into
// activation reasons. A tap that completes a double-click resets the
// sequence, so three quick taps are DoubleClick then Trigger.
type ClickClassifier struct {
	mu       sync.Mutex
	interval time.Duration
	last     time.Time
	now      func() time.Time
}

// NewClickClassifier creates a classifier with the given double-click window.
func NewClickClassifier(interval time.Duration) *ClickClassifier {
	return &ClickClassifier{
		interval: interval,
		now:      time.Now,
	}
}

// Classify records a tap and returns its activation reason.
func (c *ClickClassifier) Classify() Activation {
	c.mu.Lock()
	defer c.mu.Unlock()

	now := c.now()
	if !c.last.IsZero() && now.Sub(c.last) <= c.interval {
		c.last = time.Time{}
		return DoubleClick
	}
	c.last = now
	return Trigger
}
