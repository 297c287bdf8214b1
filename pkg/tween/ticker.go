package tween

import "time"

// DefaultMaxStep caps a single frame so a stalled host does not skip whole
// tweens in one step.
const DefaultMaxStep = 250 * time.Millisecond

// Ticker turns wall-clock frames into registry steps. Call Tick once per
// frame from the host loop; the first call after Start steps by zero.
type Ticker struct {
	registry *Registry
	// MaxStep bounds the dt of a single frame. Zero disables the cap.
	MaxStep time.Duration
	// Scale multiplies every step; 1 is real time.
	Scale float64

	isActive bool
	last     time.Time
}

// NewTicker creates a stopped ticker driving r.
func NewTicker(r *Registry) *Ticker {
	return &Ticker{registry: r, MaxStep: DefaultMaxStep, Scale: 1}
}

// Start activates the ticker.
func (t *Ticker) Start() {
	if t.isActive {
		return
	}
	t.isActive = true
	t.last = Now()
}

// Stop deactivates the ticker. Tweens keep their state.
func (t *Ticker) Stop() {
	t.isActive = false
}

// IsActive returns whether the ticker is running.
func (t *Ticker) IsActive() bool {
	return t.isActive
}

// Tick measures the time since the previous tick and steps the registry.
// It returns the step applied, in seconds.
func (t *Ticker) Tick() float64 {
	if !t.isActive {
		return 0
	}
	now := Now()
	elapsed := now.Sub(t.last)
	t.last = now
	if elapsed < 0 {
		elapsed = 0
	}
	if t.MaxStep > 0 && elapsed > t.MaxStep {
		elapsed = t.MaxStep
	}
	dt := elapsed.Seconds() * t.Scale
	t.registry.Step(dt)
	return dt
}
