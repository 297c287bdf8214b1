package tweentest

import (
	"errors"
	"testing"
	"time"

	"github.com/go-drift/tween/pkg/tween"
)

// DefaultFrame is the frame length used by Pump, a 60 Hz display.
const DefaultFrame = time.Second / 60

// ErrSettleTimeout is returned when PumpAndSettle exceeds its timeout.
var ErrSettleTimeout = errors.New("PumpAndSettle timed out: tweens still playing")

// Tester owns a registry and steps it from a fake clock through the same
// tween.Ticker a host would use.
type Tester struct {
	registry  *tween.Registry
	ticker    *tween.Ticker
	clock     *FakeClock
	prevClock tween.Clock
	frame     time.Duration

	watched []watched
	trace   Trace
}

type watched struct {
	name   string
	entity tween.Entity
}

// NewTester installs a fake clock and returns a tester with an empty
// registry. Call Cleanup when done, or use NewTesterWithT instead.
func NewTester() *Tester {
	clk := NewFakeClock()
	t := &Tester{
		registry: tween.NewRegistry(),
		clock:    clk,
		frame:    DefaultFrame,
	}
	t.prevClock = tween.SetClock(clk)
	t.ticker = tween.NewTicker(t.registry)
	t.ticker.MaxStep = 0
	t.ticker.Start()
	return t
}

// NewTesterWithT creates a tester that cleans up via t.Cleanup.
func NewTesterWithT(t *testing.T) *Tester {
	tester := NewTester()
	t.Cleanup(tester.Cleanup)
	return tester
}

// Cleanup restores the previous package clock.
func (t *Tester) Cleanup() {
	t.ticker.Stop()
	tween.SetClock(t.prevClock)
}

// Registry returns the registry driven by the tester.
func (t *Tester) Registry() *tween.Registry { return t.registry }

// Clock returns the fake clock.
func (t *Tester) Clock() *FakeClock { return t.clock }

// SetFrame changes the frame length used by Pump.
func (t *Tester) SetFrame(d time.Duration) { t.frame = d }

// Watch records the values of e under name after every frame.
func (t *Tester) Watch(name string, e tween.Entity) {
	t.watched = append(t.watched, watched{name: name, entity: e})
}

// Pump advances the clock by one frame and steps the registry.
func (t *Tester) Pump() {
	t.PumpFrame(t.frame)
}

// PumpFrame advances the clock by d and steps the registry once.
func (t *Tester) PumpFrame(d time.Duration) {
	t.clock.Advance(d)
	dt := t.ticker.Tick()
	t.record(dt)
}

// PumpFor runs frames until at least d has elapsed.
func (t *Tester) PumpFor(d time.Duration) {
	for elapsed := time.Duration(0); elapsed < d; elapsed += t.frame {
		t.Pump()
	}
}

// PumpAndSettle runs frames until no tween is playing or the timeout is
// reached.
func (t *Tester) PumpAndSettle(timeout time.Duration) error {
	var elapsed time.Duration
	for elapsed < timeout {
		if t.registry.Playing() == 0 {
			return nil
		}
		t.Pump()
		elapsed += t.frame
	}
	if t.registry.Playing() == 0 {
		return nil
	}
	return ErrSettleTimeout
}

// Trace returns the frames recorded for watched entities.
func (t *Tester) Trace() *Trace { return &t.trace }

func (t *Tester) record(dt float64) {
	if len(t.watched) == 0 {
		return
	}
	f := Frame{Index: len(t.trace.Frames), Step: dt}
	for _, w := range t.watched {
		f.Entities = append(f.Entities, Capture(w.name, w.entity))
	}
	t.trace.Frames = append(t.trace.Frames, f)
}
