package lifecycle

import (
	"testing"
	"time"
)

type fakeClock struct{ now time.Time }

func (c *fakeClock) Now() time.Time          { return c.now }
func (c *fakeClock) Advance(d time.Duration) { c.now = c.now.Add(d) }

func TestClickClassifier(t *testing.T) {
	tests := []struct {
		name string
		gaps []time.Duration
		want []Activation
	}{
		{"single tap", []time.Duration{0}, []Activation{Trigger}},
		{"double tap", []time.Duration{0, 200 * time.Millisecond}, []Activation{Trigger, DoubleClick}},
		{"at the threshold", []time.Duration{0, 400 * time.Millisecond}, []Activation{Trigger, DoubleClick}},
		{"slow taps", []time.Duration{0, 401 * time.Millisecond}, []Activation{Trigger, Trigger}},
		{
			"triple tap starts a new sequence",
			[]time.Duration{0, 100 * time.Millisecond, 100 * time.Millisecond},
			[]Activation{Trigger, DoubleClick, Trigger},
		},
		{
			"two double-clicks",
			[]time.Duration{0, 100 * time.Millisecond, time.Second, 100 * time.Millisecond},
			[]Activation{Trigger, DoubleClick, Trigger, DoubleClick},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clock := &fakeClock{now: time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)}
			c := NewClickClassifier(400 * time.Millisecond)
			c.now = clock.Now

			for i, gap := range tt.gaps {
				clock.Advance(gap)
				if got := c.Classify(); got != tt.want[i] {
					t.Errorf("tap %d = %v, want %v", i, got, tt.want[i])
				}
			}
		})
	}
}

func TestActivation_String(t *testing.T) {
	if Trigger.String() != "Trigger" || DoubleClick.String() != "DoubleClick" || Activation(9).String() != "Unknown" {
		t.Error("unexpected Activation strings")
	}
}
