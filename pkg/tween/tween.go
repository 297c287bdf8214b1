// Package tween animates entity properties over time.
//
// # Core Components
//
//   - [Tween]: one playable animation attached to an entity. It owns the
//     From/To ranges for position, rotation, scale, color, alpha and a generic
//     scalar, the timeline settings (duration or speed, delay, loop, easing)
//     and the run state machine.
//
//   - [Registry]: the arena that owns tweens, keyed by entity id and tween id.
//     Attach is get-or-create.
//
//   - [Ticker]: measures frame time from the package [Clock] and steps a
//     registry once per frame.
//
// Tweens never discover their targets: the host passes an [Entity] adapter
// whose [Transform] and [Surface] values receive the computed properties.
//
// # Basic Usage
//
//	reg := tween.NewRegistry()
//	tw, _ := reg.Attach(node, 0)
//	tw.SetPosition(tween.Vec3{0, 0, 0}, tween.Vec3{10, 0, 0}).
//	    SetDuration(0.5).
//	    SetEquation(easing.OutBack).
//	    OnFinish(func(tween.Entity) { log.Println("done") })
//	tw.Play()
//
//	// once per frame
//	reg.Step(dt)
//
// Everything in this package is single-threaded: Step, Play, Reverse and
// Stop must be called from the same goroutine.
package tween

import (
	"fmt"

	"github.com/go-drift/tween/pkg/easing"
	"github.com/go-drift/tween/pkg/errors"
)

// Status is the externally visible state of a tween.
//
//	         Play()/Reverse()
//	Idle ─────────────────────► Delaying ──► Running ──► Completed ──► Idle
//	  ▲                                         │  ▲           │
//	  └──────────────── Stop() ─────────────────┘  └── loop ───┘
//
// Completed is transient: it is only observed by status listeners and
// completion callbacks.
type Status int

const (
	// StatusIdle means the tween is not playing.
	StatusIdle Status = iota
	// StatusDelaying means the tween is waiting for its delay to elapse.
	StatusDelaying
	// StatusRunning means properties are being interpolated.
	StatusRunning
	// StatusCompleted means the current run just finished.
	StatusCompleted
)

// String returns a human-readable representation of the status.
func (s Status) String() string {
	switch s {
	case StatusIdle:
		return "idle"
	case StatusDelaying:
		return "delaying"
	case StatusRunning:
		return "running"
	case StatusCompleted:
		return "completed"
	default:
		return fmt.Sprintf("Status(%d)", int(s))
	}
}

// Result reports what a Play or Reverse call did.
type Result int

const (
	// Accepted means a new run started.
	Accepted Result = iota
	// AlreadyPlaying means a run was in progress; only the completion
	// callback was replaced and the tween was unpaused.
	AlreadyPlaying
	// Inactive means the entity is deactivated and nothing happened.
	Inactive
	// NotFound means no tween carries the requested tag.
	NotFound
)

func (r Result) String() string {
	switch r {
	case Accepted:
		return "accepted"
	case AlreadyPlaying:
		return "already playing"
	case Inactive:
		return "inactive"
	case NotFound:
		return "not found"
	default:
		return fmt.Sprintf("Result(%d)", int(r))
	}
}

// DefaultDuration is the duration of a freshly attached tween, in seconds.
const DefaultDuration = 1.0

// Tween is one independently playable animation attached to an entity.
//
// Configuration fields may be set directly or through the fluent setters.
// They are read when a run starts; changing them mid-run takes effect on the
// next Play, Reverse or loop restart. Times are in seconds.
type Tween struct {
	// Tag names the tween among its siblings for the *WithTag calls.
	Tag string
	// PlayOnStart plays the tween on the first registry step after attach.
	PlayOnStart bool
	// PlayOnEnable plays (or reverses, matching the current orientation)
	// the tween when the registry enables its entity.
	PlayOnEnable bool

	Duration float64
	// Speed, when positive, derives Duration from the largest property
	// change divided by Speed.
	Speed float64
	Delay float64

	Loop LoopType
	// LoopCount limits the number of runs when looping; 0 loops forever.
	LoopCount int

	Easing easing.Selector
	// FlipCurveOnReverse mirrors the easing curve whenever direction flips.
	FlipCurveOnReverse bool

	Position SpatialRange
	Rotation SpatialRange
	Scale    SpatialRange
	Color    ColorRange
	Alpha    ScalarRange
	Scalar   ScalarRange

	id       int
	entity   Entity
	registry *Registry
	started  bool

	ease   easing.Easer
	factor float64

	bind      binding
	callbacks callbacks
	// completion is the one-shot callback passed to PlayWith/ReverseWith.
	completion func()

	// captured at attach for relative ranges, indexed [local][property]
	base [2][3]Vec3

	state runState
}

type runState struct {
	elapsedDelay float64
	elapsedTime  float64
	playing      bool
	reversing    bool
	paused       bool
	completed    bool
	loops        int
	// reversed is the persistent orientation flag; it survives Stop.
	reversed bool
	status   Status
	// generation changes on every run entry and every Stop, so completion
	// can tell whether a callback took over the tween.
	generation int
}

func newTween(r *Registry, e Entity, id int) *Tween {
	t := &Tween{id: id, entity: e, registry: r}
	t.capture()
	t.initialize()
	return t
}

// capture records the live spatial values used as relative offsets.
func (t *Tween) capture() {
	tr := t.transform()
	if tr == nil {
		return
	}
	for local := range 2 {
		for p := PropertyPosition; p <= PropertyScale; p++ {
			t.base[local][p] = tr.Value(p, local == 1)
		}
	}
}

// initialize collapses every range onto the live value and restores the
// default timeline.
func (t *Tween) initialize() {
	t.bind.rebind(t.entity)
	if tr := t.transform(); tr != nil {
		t.Position = SpatialRange{From: tr.Value(PropertyPosition, false), To: tr.Value(PropertyPosition, false)}
		t.Rotation = SpatialRange{From: tr.Value(PropertyRotation, false), To: tr.Value(PropertyRotation, false)}
		t.Scale = SpatialRange{From: tr.Value(PropertyScale, true), To: tr.Value(PropertyScale, true)}
	}
	c := t.bind.firstColor()
	t.Color = ColorRange{From: c, To: c}
	t.Alpha = ScalarRange{From: c[3], To: c[3]}
	t.Scalar = ScalarRange{}

	t.Duration = DefaultDuration
	t.Speed = 0
	t.Delay = 0
	t.Loop = LoopNone
	t.LoopCount = 0
	t.Easing = easing.Selector{
		Reference: easing.ReferenceEquation,
		Equation:  easing.Linear,
		Curve:     easing.LinearCurve(0, 0, 1, 1),
	}
	t.FlipCurveOnReverse = true
	t.ease = t.Easing.Compile()

	t.callbacks.clear()
	t.completion = nil
	t.state.reversed = false
	t.state.loops = 0
}

// ID returns the tween id within its entity.
func (t *Tween) ID() int { return t.id }

// Entity returns the animated entity.
func (t *Tween) Entity() Entity { return t.entity }

// Status returns the current state.
func (t *Tween) Status() Status { return t.state.status }

// IsPlaying reports whether a run is in progress (including its delay).
func (t *Tween) IsPlaying() bool { return t.state.playing }

// IsReversing reports whether the current run was started by Reverse.
func (t *Tween) IsReversing() bool { return t.state.reversing }

// IsPaused reports whether the tween is paused.
func (t *Tween) IsPaused() bool { return t.state.paused }

// HasCompleted reports whether the latest run reached its end.
func (t *Tween) HasCompleted() bool { return t.state.completed }

// HasReversed reports whether the ranges are currently swapped relative to
// how they were configured.
func (t *Tween) HasReversed() bool { return t.state.reversed }

// LoopIteration returns the number of completed runs since the last Play or
// Reverse.
func (t *Tween) LoopIteration() int { return t.state.loops }

// ElapsedDelay returns the delay time consumed by the current run.
func (t *Tween) ElapsedDelay() float64 { return t.state.elapsedDelay }

// ElapsedTime returns the animated time of the current run.
func (t *Tween) ElapsedTime() float64 { return t.state.elapsedTime }

// Factor returns the easing factor last applied.
func (t *Tween) Factor() float64 { return t.factor }

// Play starts a forward run.
func (t *Tween) Play() Result { return t.play(nil, false) }

// PlayWith starts a forward run and calls done once when it completes.
func (t *Tween) PlayWith(done func()) Result { return t.play(done, false) }

// Reverse starts a run with From and To swapped.
func (t *Tween) Reverse() Result { return t.play(nil, true) }

// ReverseWith starts a reverse run and calls done once when it completes.
func (t *Tween) ReverseWith(done func()) Result { return t.play(done, true) }

func (t *Tween) play(done func(), reverse bool) Result {
	if t.entity != nil && !t.entity.Active() {
		t.report("tween.Play", errors.KindInactive, errors.ErrInactiveTarget)
		return Inactive
	}

	t.completion = done
	t.state.paused = false
	if t.state.playing {
		return AlreadyPlaying
	}

	t.state.playing = true
	t.state.reversing = reverse
	t.configure()
	if t.state.reversed != reverse {
		t.reverseDirection()
	}
	t.state.loops = 0
	t.start(false)
	return Accepted
}

// configure resolves the easing selector and duration once per run entry.
func (t *Tween) configure() {
	sel, err := t.Easing.Normalize()
	if err != nil {
		t.report("tween.configure", errors.KindConfig, err)
		t.Easing = sel
	}
	t.ease = t.Easing.Compile()
}

// start enters a run. Loop restarts skip the delay, which applies only
// before the first iteration.
func (t *Tween) start(restart bool) {
	t.state.elapsedTime = 0
	t.state.elapsedDelay = 0
	if restart {
		t.state.elapsedDelay = t.Delay
	}

	t.resolveDuration()

	t.bind.rebind(t.entity)
	if t.animatesColor() {
		t.bind.instantiate()
	}

	t.state.playing = true
	t.state.completed = false
	t.state.generation++

	t.callbacks.fireStart()
	// The factor at elapsed 0 does not depend on the duration. A unit
	// duration keeps zero-length runs at their start until the first tick.
	t.UpdateAll(t.ease(0, 1))

	if t.state.elapsedDelay < t.Delay {
		t.setStatus(StatusDelaying)
	} else {
		t.setStatus(StatusRunning)
	}
}

// Tick advances the tween by dt seconds. It does nothing unless the tween
// is playing and not paused.
func (t *Tween) Tick(dt float64) {
	if !t.state.playing || t.state.paused {
		return
	}
	if dt < 0 {
		dt = 0
	}

	if t.state.elapsedDelay < t.Delay {
		t.state.elapsedDelay += dt
		return
	}
	t.setStatus(StatusRunning)

	if t.state.elapsedTime < t.Duration {
		prev := t.state.elapsedTime
		t.state.elapsedTime += dt
		if t.state.elapsedTime > t.Duration {
			t.state.elapsedTime = t.Duration
		}
		t.UpdateAll(t.ease(t.state.elapsedTime, t.Duration))
		t.callbacks.fireUpdate()
		t.callbacks.fireTimed(prev, t.state.elapsedTime)
		return
	}

	t.complete()
}

func (t *Tween) complete() {
	if t.state.completed || !t.state.playing {
		return
	}
	t.state.completed = true

	t.state.elapsedTime = t.Duration
	t.UpdateAll(1)
	t.state.playing = false
	generation := t.state.generation

	t.setStatus(StatusCompleted)
	if done := t.completion; done != nil {
		t.completion = nil
		done()
	}
	t.callbacks.fireFinish(t.entity)

	t.bind.release()

	// A callback stopped or restarted the tween.
	if t.state.generation != generation {
		return
	}

	if t.Loop != LoopNone {
		t.state.loops++
		if t.LoopCount <= 0 || t.state.loops < t.LoopCount {
			if t.Loop == LoopPingPong {
				t.reverseDirection()
			}
			t.state.playing = true
			t.start(true)
			return
		}
	}
	t.setStatus(StatusIdle)
}

// Pause freezes the tween; Tick becomes a no-op until Resume or Play.
func (t *Tween) Pause() { t.state.paused = true }

// Resume clears the pause flag.
func (t *Tween) Resume() { t.state.paused = false }

// Stop ends the current run without reverting applied values and without
// firing completion callbacks.
func (t *Tween) Stop() {
	t.state.generation++
	t.state.playing = false
	t.state.reversing = false
	t.state.elapsedDelay = 0
	t.state.elapsedTime = 0
	t.setStatus(StatusIdle)
}

// Reset stops the tween and applies the start of the range.
func (t *Tween) Reset() {
	t.Stop()
	t.UpdateAll(0)
}

// ForceFinish stops the tween and applies the end of the range without
// firing completion callbacks.
func (t *Tween) ForceFinish() {
	t.Stop()
	t.UpdateAll(1)
}

// Clear stops the tween and restores the configuration it had at attach,
// with ranges collapsed onto the current live values.
func (t *Tween) Clear() {
	t.Stop()
	t.initialize()
}

// PlayWithTag plays the sibling tagged tag, or t itself when it carries tag.
func (t *Tween) PlayWithTag(tag string) Result {
	if s := t.withTag("tween.PlayWithTag", tag); s != nil {
		return s.Play()
	}
	return NotFound
}

// ReverseWithTag reverses the sibling tagged tag.
func (t *Tween) ReverseWithTag(tag string) Result {
	if s := t.withTag("tween.ReverseWithTag", tag); s != nil {
		return s.Reverse()
	}
	return NotFound
}

// PauseWithTag pauses the sibling tagged tag.
func (t *Tween) PauseWithTag(tag string) {
	if s := t.withTag("tween.PauseWithTag", tag); s != nil {
		s.Pause()
	}
}

// StopWithTag stops the sibling tagged tag.
func (t *Tween) StopWithTag(tag string) {
	if s := t.withTag("tween.StopWithTag", tag); s != nil {
		s.Stop()
	}
}

func (t *Tween) withTag(op, tag string) *Tween {
	if t.Tag == tag {
		return t
	}
	if t.registry != nil && t.entity != nil {
		if s, ok := t.registry.FindByTag(t.entity.ID(), tag); ok {
			return s
		}
	}
	t.reportTag(op, tag)
	return nil
}

func (t *Tween) setStatus(s Status) {
	if t.state.status == s {
		return
	}
	t.state.status = s
	t.callbacks.fireStatus(s)
}

func (t *Tween) transform() Transform {
	if t.entity == nil {
		return nil
	}
	return t.entity.Transform()
}

func (t *Tween) entityID() uint64 {
	if t.entity == nil {
		return 0
	}
	return uint64(t.entity.ID())
}

func (t *Tween) report(op string, kind errors.ErrorKind, err error) {
	errors.Report(&errors.TweenError{
		Op:     op,
		Kind:   kind,
		Tag:    t.Tag,
		Entity: t.entityID(),
		Err:    err,
	})
}

func (t *Tween) reportTag(op, tag string) {
	errors.Report(&errors.TweenError{
		Op:     op,
		Kind:   errors.KindLookup,
		Tag:    tag,
		Entity: t.entityID(),
		Err:    errors.ErrTagNotFound,
	})
}
