package easing

import "math"

// CubicBezier returns a cubic-bezier easing function matching CSS cubic-bezier().
// The parameters define the two control points (x1,y1) and (x2,y2) of the curve.
// The curve starts at (0,0) and ends at (1,1).
func CubicBezier(x1, y1, x2, y2 float64) func(float64) float64 {
	return func(t float64) float64 {
		if t <= 0 {
			return 0
		}
		if t >= 1 {
			return 1
		}

		u := t
		// Newton-Raphson converges quickly for most values.
		for range 8 {
			x := sampleBezier(x1, x2, u) - t
			if math.Abs(x) < 1e-7 {
				return sampleBezier(y1, y2, clampUnit(u))
			}
			dx := sampleBezierDerivative(x1, x2, u)
			if math.Abs(dx) < 1e-7 {
				break
			}
			u -= x / dx
		}

		// Fallback to bisection to guarantee a stable solution in [0,1].
		lo, hi := 0.0, 1.0
		u = clampUnit(u)
		for range 12 {
			x := sampleBezier(x1, x2, u) - t
			if math.Abs(x) < 1e-7 {
				break
			}
			if x > 0 {
				hi = u
			} else {
				lo = u
			}
			u = (lo + hi) * 0.5
		}

		return sampleBezier(y1, y2, u)
	}
}

// CubicBezierCurve samples a CSS cubic-bezier into a keyframed [Curve] over
// [0, 1] so it can be reversed and stored like any other curve. Tangents are
// estimated by central differences. samples below 2 are raised to 2.
func CubicBezierCurve(x1, y1, x2, y2 float64, samples int) *Curve {
	if samples < 2 {
		samples = 2
	}
	f := CubicBezier(x1, y1, x2, y2)
	const h = 1e-4
	keys := make([]Keyframe, samples)
	for i := range keys {
		t := float64(i) / float64(samples-1)
		lo, hi := math.Max(0, t-h), math.Min(1, t+h)
		slope := (f(hi) - f(lo)) / (hi - lo)
		keys[i] = Keyframe{Time: t, Value: f(t), InTangent: slope, OutTangent: slope}
	}
	return &Curve{Keys: keys}
}

func sampleBezier(a, b, t float64) float64 {
	inv := 1 - t
	return 3*inv*inv*t*a + 3*inv*t*t*b + t*t*t
}

func sampleBezierDerivative(a, b, t float64) float64 {
	inv := 1 - t
	return 3*inv*inv*a + 6*inv*t*(b-a) + 3*t*t*(1-b)
}

func clampUnit(value float64) float64 {
	if value < 0 {
		return 0
	}
	if value > 1 {
		return 1
	}
	return value
}
