package preset

import (
	"github.com/go-drift/tween/pkg/easing"
	"github.com/go-drift/tween/pkg/errors"
	"github.com/go-drift/tween/pkg/tween"
)

// Apply attaches (or reuses) tween id on e and copies the preset onto it.
// Sections the preset leaves out keep their current values.
func (p *Preset) Apply(reg *tween.Registry, e tween.Entity, id int) (*tween.Tween, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	tw, err := reg.Attach(e, id)
	if err != nil {
		return nil, err
	}
	p.applyTo(tw)
	return tw, nil
}

func (p *Preset) applyTo(tw *tween.Tween) {
	tw.Tag = p.Tag
	tw.PlayOnStart = p.PlayOnStart
	tw.PlayOnEnable = p.PlayOnEnable

	if p.Duration != nil {
		tw.SetDuration(*p.Duration)
	}
	tw.SetDelay(p.Delay)
	loop, _ := tween.ParseLoopType(p.Loop)
	tw.SetLoop(loop, p.Loops)

	if sel, set, err := p.selector(); set {
		if err != nil {
			errors.Report(&errors.TweenError{
				Op:     "preset.Apply",
				Kind:   errors.KindConfig,
				Tag:    p.Name,
				Entity: uint64(tw.Entity().ID()),
				Err:    err,
			})
		}
		if sel.Reference == easing.ReferenceCurve {
			tw.SetCurve(sel.Curve)
		} else {
			tw.SetEquation(sel.Equation)
		}
	}
	if p.FlipCurveOnReverse != nil {
		tw.FlipCurveOnReverse = *p.FlipCurveOnReverse
	}

	applySpatial(p.Position, &tw.Position, tw.SetPosition)
	applySpatial(p.Rotation, &tw.Rotation, tw.SetRotation)
	applySpatial(p.Scale, &tw.Scale, tw.SetScale)
	if p.Color != nil {
		tw.SetColor(tween.Color(p.Color.From), tween.Color(p.Color.To))
	}
	if p.Alpha != nil {
		tw.SetAlpha(p.Alpha.From, p.Alpha.To)
	}
	if p.Scalar != nil {
		tw.SetScalar(p.Scalar.From, p.Scalar.To)
	}

	// Speed derives the duration from the ranges, so it goes last.
	if p.Speed > 0 {
		tw.SetSpeed(p.Speed)
	}
}

func applySpatial(s *Spatial, r *tween.SpatialRange, set func(from, to tween.Vec3) *tween.Tween) {
	if s == nil {
		return
	}
	set(s.vectors())
	r.Local = s.Local
	r.Relative = s.Relative
	r.Ignore, _ = s.mask()
}

// FromTween captures the configuration of tw. Ranges whose From equals To
// are left out so that applying the preset keeps live values.
func FromTween(name string, tw *tween.Tween) *Preset {
	p := &Preset{
		Schema:       SchemaVersion,
		Name:         name,
		Tag:          tw.Tag,
		PlayOnStart:  tw.PlayOnStart,
		PlayOnEnable: tw.PlayOnEnable,
		Speed:        tw.Speed,
		Delay:        tw.Delay,
		Loops:        tw.LoopCount,
	}
	if tw.Speed <= 0 {
		d := tw.Duration
		p.Duration = &d
	}
	if tw.Loop != tween.LoopNone {
		p.Loop = tw.Loop.String()
	}
	if tw.Easing.Reference == easing.ReferenceCurve && tw.Easing.Curve.Valid() {
		p.Easing = CurveEasing
		p.Curve = tw.Easing.Curve.Clone().Keys
	} else {
		p.Easing = tw.Easing.Equation.String()
	}
	if !tw.FlipCurveOnReverse {
		flip := false
		p.FlipCurveOnReverse = &flip
	}

	p.Position = spatialSection(tw.Position)
	p.Rotation = spatialSection(tw.Rotation)
	p.Scale = spatialSection(tw.Scale)
	if tw.Color.From != tw.Color.To {
		p.Color = &Colors{From: ColorValue(tw.Color.From), To: ColorValue(tw.Color.To)}
	}
	if tw.Alpha.From != tw.Alpha.To {
		p.Alpha = &Range{From: tw.Alpha.From, To: tw.Alpha.To}
	}
	if tw.Scalar.From != tw.Scalar.To {
		p.Scalar = &Range{From: tw.Scalar.From, To: tw.Scalar.To}
	}
	return p
}

func spatialSection(r tween.SpatialRange) *Spatial {
	if r.From == r.To {
		return nil
	}
	s := &Spatial{
		From:     r.From[:],
		To:       r.To[:],
		Local:    r.Local,
		Relative: r.Relative,
	}
	if !r.Ignore.None() {
		for axis := tween.AxisX; axis <= tween.AxisZ; axis++ {
			if !r.Ignore.Ignored(axis) {
				s.Animate = append(s.Animate, axis.String())
			}
		}
	}
	return s
}
