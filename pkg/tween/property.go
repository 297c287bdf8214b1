package tween

import (
	"fmt"
	"strings"
)

// Property identifies an animatable property.
type Property int

const (
	PropertyPosition Property = iota
	PropertyRotation
	PropertyScale
	PropertyColor
	PropertyAlpha
	PropertyScalar
)

func (p Property) String() string {
	switch p {
	case PropertyPosition:
		return "position"
	case PropertyRotation:
		return "rotation"
	case PropertyScale:
		return "scale"
	case PropertyColor:
		return "color"
	case PropertyAlpha:
		return "alpha"
	case PropertyScalar:
		return "scalar"
	default:
		return fmt.Sprintf("Property(%d)", int(p))
	}
}

// SpatialRange animates a Vec3 property.
type SpatialRange struct {
	From, To Vec3
	// Local interpolates in the parent's space. Ignored for scale, which is
	// always local.
	Local bool
	// Relative adds the value captured at attach to the interpolated value.
	Relative bool
	Ignore   AxisMask
}

// ColorRange animates the color of every bound surface.
type ColorRange struct {
	From, To Color
}

// ScalarRange animates a single number. For the generic scalar property the
// last computed value is kept in Value.
type ScalarRange struct {
	From, To float64
	Value    float64
}

func (r *SpatialRange) swap() { r.From, r.To = r.To, r.From }
func (r *ColorRange) swap()   { r.From, r.To = r.To, r.From }
func (r *ScalarRange) swap()  { r.From, r.To = r.To, r.From }

// LoopType selects what happens when a run completes.
type LoopType int

const (
	// LoopNone stops after one run.
	LoopNone LoopType = iota
	// LoopRepeat restarts from From.
	LoopRepeat
	// LoopPingPong reverses direction at each boundary.
	LoopPingPong
)

func (l LoopType) String() string {
	switch l {
	case LoopNone:
		return "none"
	case LoopRepeat:
		return "loop"
	case LoopPingPong:
		return "pingpong"
	default:
		return fmt.Sprintf("LoopType(%d)", int(l))
	}
}

// ParseLoopType accepts "none", "loop" (or "repeat") and "pingpong"
// (or "ping-pong").
func ParseLoopType(s string) (LoopType, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "none":
		return LoopNone, nil
	case "loop", "repeat":
		return LoopRepeat, nil
	case "pingpong", "ping-pong", "ping_pong":
		return LoopPingPong, nil
	}
	return LoopNone, fmt.Errorf("unknown loop type %q", s)
}
