// Package easing maps elapsed time to interpolation progress.
//
// A [Selector] picks either a closed-form [Equation] (Linear and the In, Out,
// InOut and OutIn forms of the Expo, Circ, Sine, Elastic, Bounce and Back
// families) or a keyframed [Curve]. [Evaluate] is stateless:
//
//	f := easing.Evaluate(0.25, 1, easing.OutBack.Selector())
//
// Selectors are checked once at configuration time with [Selector.Normalize]
// and turned into a resolved [Easer] with [Selector.Compile], so per-frame
// evaluation never looks anything up.
package easing

import (
	"fmt"

	"github.com/go-drift/tween/pkg/errors"
)

// Reference says which half of a Selector is in use.
type Reference int

const (
	// ReferenceEquation evaluates Selector.Equation.
	ReferenceEquation Reference = iota
	// ReferenceCurve evaluates Selector.Curve at elapsed/duration.
	ReferenceCurve
)

func (r Reference) String() string {
	switch r {
	case ReferenceEquation:
		return "equation"
	case ReferenceCurve:
		return "curve"
	default:
		return fmt.Sprintf("Reference(%d)", int(r))
	}
}

// Selector chooses the easing applied to a timeline.
type Selector struct {
	Reference Reference
	Equation  Equation
	Curve     *Curve
}

// Selector returns a selector referencing e.
func (e Equation) Selector() Selector {
	return Selector{Reference: ReferenceEquation, Equation: e}
}

// CurveSelector returns a selector referencing c.
func CurveSelector(c *Curve) Selector {
	return Selector{Reference: ReferenceCurve, Curve: c}
}

// Normalize returns a selector that can always be evaluated. A curve
// reference with fewer than two keys, or an unknown equation, falls back to
// Linear; the returned error describes the fallback and is nil when s was
// already valid. The original curve is kept so later reversals still see it.
func (s Selector) Normalize() (Selector, error) {
	switch s.Reference {
	case ReferenceCurve:
		if s.Curve.Valid() {
			return s, nil
		}
		s.Reference = ReferenceEquation
		s.Equation = Linear
		return s, errors.ErrCurveTooShort
	case ReferenceEquation:
		if s.Equation.Valid() {
			return s, nil
		}
		bad := s.Equation
		s.Equation = Linear
		return s, fmt.Errorf("%w: %d", errors.ErrUnknownEquation, int(bad))
	default:
		return Linear.Selector(), fmt.Errorf("unknown easing reference %d", int(s.Reference))
	}
}

// Easer is a resolved easing: it maps (elapsed, duration) to a factor.
type Easer func(elapsed, duration float64) float64

// Compile resolves s into an Easer. s should already be normalized; an
// invalid selector compiles to Linear.
func (s Selector) Compile() Easer {
	s, _ = s.Normalize()
	if s.Reference == ReferenceCurve {
		curve := s.Curve
		return func(elapsed, duration float64) float64 {
			if duration <= 0 {
				return curve.Evaluate(1)
			}
			return curve.Evaluate(clamp(elapsed, duration) / duration)
		}
	}
	eq := s.Equation
	return func(elapsed, duration float64) float64 {
		return eq.Ease(clamp(elapsed, duration), duration)
	}
}

// Evaluate returns the easing factor for elapsed time within duration.
// Elapsed is clamped to duration first; a non-positive duration is treated
// as already finished.
func Evaluate(elapsed, duration float64, s Selector) float64 {
	return s.Compile()(elapsed, duration)
}

func clamp(elapsed, duration float64) float64 {
	if elapsed > duration {
		return duration
	}
	return elapsed
}
