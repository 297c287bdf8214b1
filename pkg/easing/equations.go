package easing

import (
	"fmt"
	"math"
	"strings"

	"github.com/go-drift/tween/pkg/errors"
)

// Func is a closed-form easing equation in the classic form
// f(time, start, change, duration).
type Func func(t, b, c, d float64) float64

// Equation names a closed-form easing equation.
type Equation int

const (
	Linear Equation = iota
	OutExpo
	InExpo
	InOutExpo
	OutInExpo
	OutCirc
	InCirc
	InOutCirc
	OutInCirc
	OutSine
	InSine
	InOutSine
	OutInSine
	OutElastic
	InElastic
	InOutElastic
	OutInElastic
	OutBounce
	InBounce
	InOutBounce
	OutInBounce
	OutBack
	InBack
	InOutBack
	OutInBack

	equationCount
)

var equationNames = [equationCount]string{
	Linear:       "Linear",
	OutExpo:      "OutExpo",
	InExpo:       "InExpo",
	InOutExpo:    "InOutExpo",
	OutInExpo:    "OutInExpo",
	OutCirc:      "OutCirc",
	InCirc:       "InCirc",
	InOutCirc:    "InOutCirc",
	OutInCirc:    "OutInCirc",
	OutSine:      "OutSine",
	InSine:       "InSine",
	InOutSine:    "InOutSine",
	OutInSine:    "OutInSine",
	OutElastic:   "OutElastic",
	InElastic:    "InElastic",
	InOutElastic: "InOutElastic",
	OutInElastic: "OutInElastic",
	OutBounce:    "OutBounce",
	InBounce:     "InBounce",
	InOutBounce:  "InOutBounce",
	OutInBounce:  "OutInBounce",
	OutBack:      "OutBack",
	InBack:       "InBack",
	InOutBack:    "InOutBack",
	OutInBack:    "OutInBack",
}

var equationFuncs = [equationCount]Func{
	Linear:       linear,
	OutExpo:      outExpo,
	InExpo:       inExpo,
	InOutExpo:    inOutExpo,
	OutInExpo:    outIn(outExpo, inExpo),
	OutCirc:      outCirc,
	InCirc:       inCirc,
	InOutCirc:    inOutCirc,
	OutInCirc:    outIn(outCirc, inCirc),
	OutSine:      outSine,
	InSine:       inSine,
	InOutSine:    inOutSine,
	OutInSine:    outIn(outSine, inSine),
	OutElastic:   outElastic,
	InElastic:    inElastic,
	InOutElastic: inOutElastic,
	OutInElastic: outIn(outElastic, inElastic),
	OutBounce:    outBounce,
	InBounce:     inBounce,
	InOutBounce:  inOutBounce,
	OutInBounce:  outIn(outBounce, inBounce),
	OutBack:      outBack,
	InBack:       inBack,
	InOutBack:    inOutBack,
	OutInBack:    outIn(outBack, inBack),
}

// Equations returns every equation in declaration order.
func Equations() []Equation {
	eqs := make([]Equation, equationCount)
	for i := range eqs {
		eqs[i] = Equation(i)
	}
	return eqs
}

// String returns the equation name.
func (e Equation) String() string {
	if e.Valid() {
		return equationNames[e]
	}
	return fmt.Sprintf("Equation(%d)", int(e))
}

// Valid reports whether e names a known equation.
func (e Equation) Valid() bool {
	return e >= 0 && e < equationCount
}

// Func returns the closed-form function for e. Unknown values map to Linear.
func (e Equation) Func() Func {
	if !e.Valid() {
		return linear
	}
	return equationFuncs[e]
}

// Ease evaluates e as a 0-to-1 progress factor.
//
// The endpoints are exact: 0 at t <= 0 and 1 at t >= d, independent of
// rounding inside the closed form.
func (e Equation) Ease(t, d float64) float64 {
	if d <= 0 || t >= d {
		return 1
	}
	if t <= 0 {
		return 0
	}
	return e.Func()(t, 0, 1, d)
}

// MarshalText implements encoding.TextMarshaler.
func (e Equation) MarshalText() ([]byte, error) {
	if !e.Valid() {
		return nil, fmt.Errorf("%w: %d", errors.ErrUnknownEquation, int(e))
	}
	return []byte(e.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (e *Equation) UnmarshalText(text []byte) error {
	eq, err := ParseEquation(string(text))
	if err != nil {
		return err
	}
	*e = eq
	return nil
}

// ParseEquation looks up an equation by name. Matching ignores case,
// dashes, underscores and spaces, so "in-out-sine" finds InOutSine.
func ParseEquation(name string) (Equation, error) {
	key := normalizeName(name)
	for i, n := range equationNames {
		if normalizeName(n) == key {
			return Equation(i), nil
		}
	}
	return Linear, fmt.Errorf("%w: %q", errors.ErrUnknownEquation, name)
}

func normalizeName(name string) string {
	return strings.Map(func(r rune) rune {
		switch r {
		case '-', '_', ' ':
			return -1
		}
		return r
	}, strings.ToLower(strings.TrimSpace(name)))
}

func linear(t, b, c, d float64) float64 {
	return c*t/d + b
}

func outExpo(t, b, c, d float64) float64 {
	if t == d {
		return b + c
	}
	return c*(-math.Pow(2, -10*t/d)+1) + b
}

func inExpo(t, b, c, d float64) float64 {
	if t == 0 {
		return b
	}
	return c*math.Pow(2, 10*(t/d-1)) + b
}

func inOutExpo(t, b, c, d float64) float64 {
	if t == 0 {
		return b
	}
	if t == d {
		return b + c
	}
	t /= d / 2
	if t < 1 {
		return c/2*math.Pow(2, 10*(t-1)) + b
	}
	t--
	return c/2*(-math.Pow(2, -10*t)+2) + b
}

func outCirc(t, b, c, d float64) float64 {
	t = t/d - 1
	return c*math.Sqrt(1-t*t) + b
}

func inCirc(t, b, c, d float64) float64 {
	t /= d
	return -c*(math.Sqrt(1-t*t)-1) + b
}

func inOutCirc(t, b, c, d float64) float64 {
	t /= d / 2
	if t < 1 {
		return -c/2*(math.Sqrt(1-t*t)-1) + b
	}
	t -= 2
	return c/2*(math.Sqrt(1-t*t)+1) + b
}

func outSine(t, b, c, d float64) float64 {
	return c*math.Sin(t/d*(math.Pi/2)) + b
}

func inSine(t, b, c, d float64) float64 {
	return -c*math.Cos(t/d*(math.Pi/2)) + c + b
}

func inOutSine(t, b, c, d float64) float64 {
	t /= d / 2
	if t < 1 {
		return c/2*math.Sin(math.Pi*t/2) + b
	}
	t--
	return -c/2*(math.Cos(math.Pi*t/2)-2) + b
}

func outElastic(t, b, c, d float64) float64 {
	t /= d
	if t == 1 {
		return b + c
	}
	p := d * 0.3
	s := p / 4
	return c*math.Pow(2, -10*t)*math.Sin((t*d-s)*(2*math.Pi)/p) + c + b
}

func inElastic(t, b, c, d float64) float64 {
	t /= d
	if t == 1 {
		return b + c
	}
	p := d * 0.3
	s := p / 4
	t--
	return -(c * math.Pow(2, 10*t) * math.Sin((t*d-s)*(2*math.Pi)/p)) + b
}

func inOutElastic(t, b, c, d float64) float64 {
	t /= d / 2
	if t == 2 {
		return b + c
	}
	p := d * (0.3 * 1.5)
	s := p / 4
	if t < 1 {
		t--
		return -0.5*(c*math.Pow(2, 10*t)*math.Sin((t*d-s)*(2*math.Pi)/p)) + b
	}
	t--
	return c*math.Pow(2, -10*t)*math.Sin((t*d-s)*(2*math.Pi)/p)*0.5 + c + b
}

func outBounce(t, b, c, d float64) float64 {
	t /= d
	switch {
	case t < 1/2.75:
		return c*(7.5625*t*t) + b
	case t < 2/2.75:
		t -= 1.5 / 2.75
		return c*(7.5625*t*t+0.75) + b
	case t < 2.5/2.75:
		t -= 2.25 / 2.75
		return c*(7.5625*t*t+0.9375) + b
	default:
		t -= 2.625 / 2.75
		return c*(7.5625*t*t+0.984375) + b
	}
}

func inBounce(t, b, c, d float64) float64 {
	return c - outBounce(d-t, 0, c, d) + b
}

func inOutBounce(t, b, c, d float64) float64 {
	if t < d/2 {
		return inBounce(t*2, 0, c, d)*0.5 + b
	}
	return outBounce(t*2-d, 0, c, d)*0.5 + c*0.5 + b
}

const backOvershoot = 1.70158

func outBack(t, b, c, d float64) float64 {
	t = t/d - 1
	return c*(t*t*((backOvershoot+1)*t+backOvershoot)+1) + b
}

func inBack(t, b, c, d float64) float64 {
	t /= d
	return c*t*t*((backOvershoot+1)*t-backOvershoot) + b
}

func inOutBack(t, b, c, d float64) float64 {
	s := backOvershoot * 1.525
	t /= d / 2
	if t < 1 {
		return c/2*(t*t*((s+1)*t-s)) + b
	}
	t -= 2
	return c/2*(t*t*((s+1)*t+s)+2) + b
}

// outIn runs out over the first half and in over the second half.
func outIn(out, in Func) Func {
	return func(t, b, c, d float64) float64 {
		if t < d/2 {
			return out(t*2, b, c/2, d)
		}
		return in(t*2-d, b+c/2, c/2, d)
	}
}
