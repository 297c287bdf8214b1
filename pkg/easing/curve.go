package easing

import (
	"math"
	"slices"
)

// Keyframe is one sample of a [Curve]. Tangents are slopes (value per unit
// time) on the incoming and outgoing side of the key.
type Keyframe struct {
	Time       float64 `yaml:"time"`
	Value      float64 `yaml:"value"`
	InTangent  float64 `yaml:"in,omitempty"`
	OutTangent float64 `yaml:"out,omitempty"`
}

// Curve is a sampled easing curve. Values between keys are produced by cubic
// Hermite interpolation; times outside the key range clamp to the first or
// last value.
type Curve struct {
	Keys []Keyframe
}

// NewCurve returns a curve over a time-sorted copy of keys.
func NewCurve(keys ...Keyframe) *Curve {
	c := &Curve{Keys: slices.Clone(keys)}
	c.sort()
	return c
}

// LinearCurve returns the straight line through (t0, v0) and (t1, v1).
func LinearCurve(t0, v0, t1, v1 float64) *Curve {
	slope := 0.0
	if t1 != t0 {
		slope = (v1 - v0) / (t1 - t0)
	}
	return NewCurve(
		Keyframe{Time: t0, Value: v0, InTangent: slope, OutTangent: slope},
		Keyframe{Time: t1, Value: v1, InTangent: slope, OutTangent: slope},
	)
}

// Valid reports whether the curve has enough keys to be evaluated.
func (c *Curve) Valid() bool {
	return c != nil && len(c.Keys) >= 2
}

// Span returns the times of the first and last keys.
func (c *Curve) Span() (start, end float64) {
	if c == nil || len(c.Keys) == 0 {
		return 0, 0
	}
	return c.Keys[0].Time, c.Keys[len(c.Keys)-1].Time
}

// Evaluate samples the curve at time t.
func (c *Curve) Evaluate(t float64) float64 {
	if c == nil || len(c.Keys) == 0 {
		return 0
	}
	keys := c.Keys
	if len(keys) == 1 || t <= keys[0].Time {
		return keys[0].Value
	}
	last := keys[len(keys)-1]
	if t >= last.Time {
		return last.Value
	}

	// First key strictly after t; guaranteed in [1, len-1] by the clamps above.
	i, _ := slices.BinarySearchFunc(keys, t, func(k Keyframe, t float64) int {
		if k.Time <= t {
			return -1
		}
		return 1
	})
	return hermite(keys[i-1], keys[i], t)
}

func hermite(k0, k1 Keyframe, t float64) float64 {
	dt := k1.Time - k0.Time
	if dt <= 0 {
		return k1.Value
	}
	if math.IsInf(k0.OutTangent, 0) || math.IsInf(k1.InTangent, 0) {
		return k0.Value
	}
	s := (t - k0.Time) / dt
	s2 := s * s
	s3 := s2 * s
	m0 := k0.OutTangent * dt
	m1 := k1.InTangent * dt
	h00 := 2*s3 - 3*s2 + 1
	h10 := s3 - 2*s2 + s
	h01 := -2*s3 + 3*s2
	h11 := s3 - s2
	return h00*k0.Value + h10*m0 + h01*k1.Value + h11*m1
}

// Reversed returns the curve mirrored in time and value across its span:
// each key (t, v) becomes (start+end-t, 1-v). Slopes are unchanged by the
// double mirror, but the incoming and outgoing sides trade places.
func (c *Curve) Reversed() *Curve {
	if c == nil {
		return nil
	}
	start, end := c.Span()
	keys := make([]Keyframe, len(c.Keys))
	for i, k := range c.Keys {
		keys[len(keys)-1-i] = Keyframe{
			Time:       start + end - k.Time,
			Value:      1 - k.Value,
			InTangent:  k.OutTangent,
			OutTangent: k.InTangent,
		}
	}
	r := &Curve{Keys: keys}
	r.sort()
	return r
}

// Clone returns a deep copy of the curve.
func (c *Curve) Clone() *Curve {
	if c == nil {
		return nil
	}
	return &Curve{Keys: slices.Clone(c.Keys)}
}

func (c *Curve) sort() {
	slices.SortStableFunc(c.Keys, func(a, b Keyframe) int {
		switch {
		case a.Time < b.Time:
			return -1
		case a.Time > b.Time:
			return 1
		default:
			return 0
		}
	})
}
