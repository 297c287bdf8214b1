package tween

import "testing"

func TestAxisMaskZeroValueAnimatesAll(t *testing.T) {
	var m AxisMask
	if !m.None() || m.All() {
		t.Error("zero mask should ignore nothing")
	}
	if x, y, z := m.Bools(); x || y || z {
		t.Errorf("Bools() = %v %v %v", x, y, z)
	}
	if !m.Untouched() {
		t.Error("zero mask should be untouched")
	}
}

func TestAxisMaskTouch(t *testing.T) {
	var m AxisMask
	m.Touch(AxisY)
	if m != (AxisMask{AxisIgnored, AxisEnabled, AxisIgnored}) {
		t.Fatalf("after first Touch: %v", m)
	}
	m.Touch(AxisZ)
	if m != (AxisMask{AxisIgnored, AxisEnabled, AxisEnabled}) {
		t.Errorf("after second Touch: %v", m)
	}
}

func TestAxisMaskTouchAgain(t *testing.T) {
	var m AxisMask
	for _, axis := range []Axis{AxisX, AxisY, AxisZ, AxisX} {
		m.Touch(axis)
	}
	if m != (AxisMask{AxisEnabled, AxisEnabled, AxisEnabled}) {
		t.Errorf("re-touching X reset the mask: %v", m)
	}
	if m.Untouched() {
		t.Error("touched mask reports Untouched")
	}
}

func TestAxisMaskTouchAfterExplicitMask(t *testing.T) {
	m := MaskOf(false, true, false)
	m.Touch(AxisY)
	if !m.None() {
		t.Errorf("Touch on a partially ignored mask should only enable the axis: %v", m)
	}
}

func TestIgnoreAll(t *testing.T) {
	m := IgnoreAll()
	if !m.All() || m.None() {
		t.Error("IgnoreAll should ignore every axis")
	}
	m.Touch(AxisX)
	if m.Ignored(AxisX) || !m.Ignored(AxisY) {
		t.Errorf("Touch on IgnoreAll: %v", m)
	}
}

func TestParseAxis(t *testing.T) {
	tests := []struct {
		in   string
		want Axis
		name string
	}{
		{"x", AxisX, "x"},
		{"Y", AxisY, "y"},
		{"z", AxisZ, "z"},
	}
	for _, tt := range tests {
		got, err := ParseAxis(tt.in)
		if err != nil || got != tt.want {
			t.Errorf("ParseAxis(%q) = %v, %v", tt.in, got, err)
		}
		if got.String() != tt.name {
			t.Errorf("%v.String() = %q, want %q", got, got.String(), tt.name)
		}
	}
	if _, err := ParseAxis("w"); err == nil {
		t.Error("ParseAxis(w) should fail")
	}
}

func TestParseLoopType(t *testing.T) {
	tests := []struct {
		in   string
		want LoopType
	}{
		{"", LoopNone},
		{"none", LoopNone},
		{"loop", LoopRepeat},
		{"Repeat", LoopRepeat},
		{"pingpong", LoopPingPong},
		{"ping-pong", LoopPingPong},
	}
	for _, tt := range tests {
		got, err := ParseLoopType(tt.in)
		if err != nil || got != tt.want {
			t.Errorf("ParseLoopType(%q) = %v, %v; want %v", tt.in, got, err, tt.want)
		}
	}
	if _, err := ParseLoopType("bounce"); err == nil {
		t.Error("ParseLoopType(bounce) should fail")
	}
	for _, l := range []LoopType{LoopNone, LoopRepeat, LoopPingPong} {
		if got, _ := ParseLoopType(l.String()); got != l {
			t.Errorf("round trip of %v gave %v", l, got)
		}
	}
}

func TestColorConversions(t *testing.T) {
	c := Color{1, 0.5, 0, 0.25}
	n := NRGBA(c)
	if n.R != 255 || n.G != 128 || n.B != 0 || n.A != 64 {
		t.Errorf("NRGBA() = %+v", n)
	}
	back := ColorOf(n)
	if back[0] != 1 || back[2] != 0 {
		t.Errorf("ColorOf() = %v", back)
	}
	if over := NRGBA(Color{2, -1, 0, 1}); over.R != 255 || over.G != 0 {
		t.Errorf("NRGBA should clamp, got %+v", over)
	}
}
