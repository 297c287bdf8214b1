package tween

import "github.com/go-drift/tween/pkg/easing"

// SetPosition animates the position from from to to on every axis.
func (t *Tween) SetPosition(from, to Vec3) *Tween {
	t.Position.From, t.Position.To = from, to
	t.Position.Ignore = AxisMask{}
	return t
}

// SetPositionAxis animates a single position axis. The first single-axis
// call on a range leaves the other axes at their live values.
func (t *Tween) SetPositionAxis(axis Axis, from, to float64) *Tween {
	setAxis(&t.Position, axis, from, to)
	return t
}

// SetRotation animates the Euler rotation, in degrees, on every axis.
func (t *Tween) SetRotation(from, to Vec3) *Tween {
	t.Rotation.From, t.Rotation.To = from, to
	t.Rotation.Ignore = AxisMask{}
	return t
}

// SetRotationAxis animates a single rotation axis.
func (t *Tween) SetRotationAxis(axis Axis, from, to float64) *Tween {
	setAxis(&t.Rotation, axis, from, to)
	return t
}

// SetScale animates the local scale on every axis.
func (t *Tween) SetScale(from, to Vec3) *Tween {
	t.Scale.From, t.Scale.To = from, to
	t.Scale.Ignore = AxisMask{}
	return t
}

// SetScaleAxis animates a single scale axis.
func (t *Tween) SetScaleAxis(axis Axis, from, to float64) *Tween {
	setAxis(&t.Scale, axis, from, to)
	return t
}

func setAxis(r *SpatialRange, axis Axis, from, to float64) {
	r.From[axis] = from
	r.To[axis] = to
	r.Ignore.Touch(axis)
}

// SetColor animates the color of every surface of the entity.
func (t *Tween) SetColor(from, to Color) *Tween {
	t.bind.rebind(t.entity)
	t.Color.From, t.Color.To = from, to
	return t
}

// ColorFrom animates from c to the current color of the entity.
func (t *Tween) ColorFrom(c Color) *Tween {
	t.bind.rebind(t.entity)
	return t.SetColor(c, t.bind.firstColor())
}

// ColorTo animates from the current color of the entity to c.
func (t *Tween) ColorTo(c Color) *Tween {
	t.bind.rebind(t.entity)
	return t.SetColor(t.bind.firstColor(), c)
}

// SetAlpha animates the alpha of every surface. Values are clamped to [0, 1]
// when applied.
func (t *Tween) SetAlpha(from, to float64) *Tween {
	t.bind.rebind(t.entity)
	t.Alpha.From, t.Alpha.To = from, to
	return t
}

// AlphaFrom animates from a to the current alpha of the entity.
func (t *Tween) AlphaFrom(a float64) *Tween {
	t.bind.rebind(t.entity)
	return t.SetAlpha(a, t.bind.firstColor()[3])
}

// AlphaTo animates from the current alpha of the entity to a.
func (t *Tween) AlphaTo(a float64) *Tween {
	t.bind.rebind(t.entity)
	return t.SetAlpha(t.bind.firstColor()[3], a)
}

// SetScalar animates a free number, read back through Scalar.Value.
func (t *Tween) SetScalar(from, to float64) *Tween {
	t.Scalar.From, t.Scalar.To = from, to
	return t
}

// SetDuration sets the run length in seconds and clears any speed.
func (t *Tween) SetDuration(d float64) *Tween {
	t.Duration = d
	t.Speed = 0
	return t
}

// SetSpeed derives the duration from the largest property change, in units
// per second. The duration is resolved again whenever a run starts.
func (t *Tween) SetSpeed(speed float64) *Tween {
	t.Speed = speed
	t.resolveDuration()
	return t
}

// SetDelay sets the wait before the first iteration, in seconds.
func (t *Tween) SetDelay(d float64) *Tween {
	t.Delay = d
	return t
}

// SetLoop sets the loop mode. count limits the number of runs; 0 loops
// forever.
func (t *Tween) SetLoop(loop LoopType, count int) *Tween {
	t.Loop = loop
	t.LoopCount = max(count, 0)
	return t
}

// SetEquation eases with a Penner equation.
func (t *Tween) SetEquation(eq easing.Equation) *Tween {
	t.Easing.Reference = easing.ReferenceEquation
	t.Easing.Equation = eq
	t.ease = t.Easing.Compile()
	return t
}

// SetCurve eases with a keyframe curve.
func (t *Tween) SetCurve(c *easing.Curve) *Tween {
	t.Easing.Reference = easing.ReferenceCurve
	t.Easing.Curve = c
	t.ease = t.Easing.Compile()
	return t
}

// OnStart sets the callback fired each time a run starts, before the first
// values are applied.
func (t *Tween) OnStart(fn func()) *Tween {
	t.callbacks.start = fn
	return t
}

// OnUpdate sets the callback fired after each tick applies new values.
func (t *Tween) OnUpdate(fn func()) *Tween {
	t.callbacks.update = fn
	return t
}

// OnFinish appends a finish callback.
func (t *Tween) OnFinish(fn FinishFunc) *Tween {
	t.AddFinishCallback(fn)
	return t
}

// AtTime adds a callback fired when the elapsed time crosses at.
func (t *Tween) AtTime(at float64, fn func()) *Tween {
	t.AddTimedCallback(at, fn)
	return t
}

// AddFinishCallback appends fn to the callbacks fired, in order, each time
// a run completes. The returned function removes it.
func (t *Tween) AddFinishCallback(fn FinishFunc) func() {
	return t.callbacks.addFinish(fn)
}

// ClearFinishCallbacks removes every finish callback.
func (t *Tween) ClearFinishCallbacks() {
	t.callbacks.finish = nil
}

// AddTimedCallback registers fn to fire once per run on the tick whose
// elapsed time first reaches at. The returned function removes it.
func (t *Tween) AddTimedCallback(at float64, fn func()) func() {
	return t.callbacks.addTimed(fn, at)
}

// ClearTimedCallbacks removes every timed callback.
func (t *Tween) ClearTimedCallbacks() {
	t.callbacks.timed = nil
}

// AddStatusListener registers fn to be called on every status change. The
// returned function unsubscribes it.
func (t *Tween) AddStatusListener(fn func(Status)) func() {
	return t.callbacks.addStatusListener(fn)
}
