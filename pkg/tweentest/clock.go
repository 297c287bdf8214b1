package tweentest

import (
	"sync/atomic"
	"time"
)

// epoch is the fake time at which every FakeClock starts.
var epoch = time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

// FakeClock is a tween.Clock that only moves when told to. It is safe for
// concurrent use.
type FakeClock struct {
	elapsed atomic.Int64
}

// NewFakeClock returns a FakeClock at its epoch.
func NewFakeClock() *FakeClock {
	return &FakeClock{}
}

// Now returns the epoch plus everything advanced so far.
func (c *FakeClock) Now() time.Time {
	return epoch.Add(c.Elapsed())
}

// Advance moves the clock forward by d. Negative durations are ignored.
func (c *FakeClock) Advance(d time.Duration) {
	if d > 0 {
		c.elapsed.Add(int64(d))
	}
}

// Elapsed returns the total time advanced since the clock was created.
func (c *FakeClock) Elapsed() time.Duration {
	return time.Duration(c.elapsed.Load())
}
