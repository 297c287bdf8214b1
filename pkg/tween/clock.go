package tween

import "time"

// Clock tells a Ticker what time it is.
type Clock interface {
	Now() time.Time
}

// ClockFunc adapts a function to Clock.
type ClockFunc func() time.Time

// Now calls f.
func (f ClockFunc) Now() time.Time { return f() }

var clock Clock = ClockFunc(time.Now)

// SetClock installs the time source of every Ticker and returns the one it
// replaces. A nil c restores the system clock.
func SetClock(c Clock) Clock {
	if c == nil {
		c = ClockFunc(time.Now)
	}
	prev := clock
	clock = c
	return prev
}

// Now returns the time of the installed clock.
func Now() time.Time { return clock.Now() }
