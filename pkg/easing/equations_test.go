package easing

import (
	"math"
	"testing"

	"github.com/go-drift/tween/pkg/errors"
)

func TestEvaluateBoundaries(t *testing.T) {
	durations := []float64{1, 0.3, 2.5, 17}
	for _, eq := range Equations() {
		for _, d := range durations {
			sel := eq.Selector()
			if got := Evaluate(0, d, sel); got != 0 {
				t.Errorf("%s: Evaluate(0, %v) = %v, want 0", eq, d, got)
			}
			if got := Evaluate(d, d, sel); got != 1 {
				t.Errorf("%s: Evaluate(%v, %v) = %v, want 1", eq, d, d, got)
			}
			if got := Evaluate(d*3, d, sel); got != 1 {
				t.Errorf("%s: Evaluate past duration = %v, want 1", eq, got)
			}
		}
	}
}

func TestClosedFormGuards(t *testing.T) {
	if got := inExpo(0, 3, 5, 1); got != 3 {
		t.Errorf("inExpo(0) = %v, want start exactly", got)
	}
	if got := outExpo(2, 3, 5, 2); got != 8 {
		t.Errorf("outExpo(d) = %v, want start+end exactly", got)
	}
	if got := inOutExpo(0, 3, 5, 2); got != 3 {
		t.Errorf("inOutExpo(0) = %v, want 3", got)
	}
	if got := inOutExpo(2, 3, 5, 2); got != 8 {
		t.Errorf("inOutExpo(d) = %v, want 8", got)
	}
	if got := outElastic(1, 3, 5, 1); got != 8 {
		t.Errorf("outElastic(d) = %v, want 8", got)
	}
	if got := inOutElastic(1, 3, 5, 1); got != 8 {
		t.Errorf("inOutElastic(d) = %v, want 8", got)
	}
}

func TestClosedFormStartOffset(t *testing.T) {
	// Non-overshooting forms honour arbitrary start/change values at the ends.
	for _, eq := range []Equation{Linear, OutExpo, InExpo, OutCirc, InCirc, InOutCirc, OutSine, OutBounce, InBounce, OutBack, InBack} {
		f := eq.Func()
		if got := f(0, 2, 6, 4); math.Abs(got-2) > 1e-9 {
			t.Errorf("%s(0) = %v, want 2", eq, got)
		}
		if got := f(4, 2, 6, 4); math.Abs(got-8) > 1e-9 {
			t.Errorf("%s(d) = %v, want 8", eq, got)
		}
	}
}

func TestInOutMidpoints(t *testing.T) {
	for _, eq := range []Equation{Linear, InOutExpo, InOutCirc, InOutSine, InOutElastic, InOutBounce, InOutBack, OutInExpo, OutInCirc, OutInSine, OutInBounce, OutInBack} {
		if got := Evaluate(0.5, 1, eq.Selector()); math.Abs(got-0.5) > 1e-9 {
			t.Errorf("%s midpoint = %v, want 0.5", eq, got)
		}
	}
}

func TestOvershootingFamilies(t *testing.T) {
	above := func(eq Equation) bool {
		for i := 1; i < 100; i++ {
			if Evaluate(float64(i)/100, 1, eq.Selector()) > 1 {
				return true
			}
		}
		return false
	}
	below := func(eq Equation) bool {
		for i := 1; i < 100; i++ {
			if Evaluate(float64(i)/100, 1, eq.Selector()) < 0 {
				return true
			}
		}
		return false
	}
	if !above(OutBack) {
		t.Error("OutBack should overshoot above 1")
	}
	if !below(InBack) {
		t.Error("InBack should dip below 0")
	}
	if !above(OutElastic) {
		t.Error("OutElastic should overshoot above 1")
	}
}

func TestMonotonicFamilies(t *testing.T) {
	for _, eq := range []Equation{Linear, InExpo, OutExpo, InOutExpo, InCirc, OutCirc, InOutCirc, InSine, OutSine, InOutSine} {
		prev := 0.0
		for i := 1; i <= 50; i++ {
			v := Evaluate(float64(i)/50, 1, eq.Selector())
			if v < prev-1e-12 {
				t.Errorf("%s decreases at step %d: %v < %v", eq, i, v, prev)
				break
			}
			prev = v
		}
	}
}

func TestParseEquation(t *testing.T) {
	tests := []struct {
		input string
		want  Equation
	}{
		{"Linear", Linear},
		{"linear", Linear},
		{"InOutSine", InOutSine},
		{"in-out-sine", InOutSine},
		{"out_in_bounce", OutInBounce},
		{" OutBack ", OutBack},
	}
	for _, tt := range tests {
		got, err := ParseEquation(tt.input)
		if err != nil {
			t.Errorf("ParseEquation(%q) error = %v", tt.input, err)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseEquation(%q) = %s, want %s", tt.input, got, tt.want)
		}
	}

	eq, err := ParseEquation("wobble")
	if !errors.Is(err, errors.ErrUnknownEquation) {
		t.Errorf("ParseEquation(wobble) error = %v, want ErrUnknownEquation", err)
	}
	if eq != Linear {
		t.Errorf("ParseEquation(wobble) = %s, want Linear fallback", eq)
	}
}

func TestEquationText(t *testing.T) {
	for _, eq := range Equations() {
		text, err := eq.MarshalText()
		if err != nil {
			t.Fatalf("%s: MarshalText error = %v", eq, err)
		}
		var back Equation
		if err := back.UnmarshalText(text); err != nil || back != eq {
			t.Errorf("%s: UnmarshalText(%q) = %s, %v", eq, text, back, err)
		}
	}
	if _, err := Equation(99).MarshalText(); err == nil {
		t.Error("expected error for unknown equation")
	}
	if got := Equation(99).String(); got != "Equation(99)" {
		t.Errorf("String() = %q", got)
	}
}

func TestUnknownEquationFuncIsLinear(t *testing.T) {
	if got := Equation(-1).Func()(0.25, 0, 1, 1); got != 0.25 {
		t.Errorf("unknown Func(0.25) = %v, want linear 0.25", got)
	}
}

func TestEquationsCount(t *testing.T) {
	if got := len(Equations()); got != 25 {
		t.Errorf("len(Equations()) = %d, want 25", got)
	}
}
