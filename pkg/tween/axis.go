package tween

import "fmt"

// Axis selects one component of a Vec3.
type Axis int

const (
	AxisX Axis = iota
	AxisY
	AxisZ
)

func (a Axis) String() string {
	switch a {
	case AxisX:
		return "x"
	case AxisY:
		return "y"
	case AxisZ:
		return "z"
	default:
		return fmt.Sprintf("Axis(%d)", int(a))
	}
}

// ParseAxis accepts "x", "y" or "z" in either case.
func ParseAxis(s string) (Axis, error) {
	switch s {
	case "x", "X":
		return AxisX, nil
	case "y", "Y":
		return AxisY, nil
	case "z", "Z":
		return AxisZ, nil
	}
	return 0, fmt.Errorf("unknown axis %q", s)
}

// AxisState is the tri-state of one axis in an AxisMask.
type AxisState uint8

const (
	// AxisUntouched has never been configured and is animated.
	AxisUntouched AxisState = iota
	// AxisEnabled was explicitly configured to animate.
	AxisEnabled
	// AxisIgnored keeps the live value of the axis.
	AxisIgnored
)

// AxisMask opts individual axes out of interpolation. The zero value
// animates every axis.
type AxisMask [3]AxisState

// IgnoreAll returns a mask ignoring every axis.
func IgnoreAll() AxisMask {
	return AxisMask{AxisIgnored, AxisIgnored, AxisIgnored}
}

// MaskOf builds a mask from explicit per-axis ignore flags.
func MaskOf(ignoreX, ignoreY, ignoreZ bool) AxisMask {
	state := func(ignore bool) AxisState {
		if ignore {
			return AxisIgnored
		}
		return AxisEnabled
	}
	return AxisMask{state(ignoreX), state(ignoreY), state(ignoreZ)}
}

// Ignored reports whether axis keeps its live value.
func (m AxisMask) Ignored(axis Axis) bool {
	return m[axis] == AxisIgnored
}

// None reports whether no axis is ignored.
func (m AxisMask) None() bool {
	return !m.Ignored(AxisX) && !m.Ignored(AxisY) && !m.Ignored(AxisZ)
}

// Untouched reports whether no axis has been configured yet.
func (m AxisMask) Untouched() bool {
	return m == AxisMask{}
}

// All reports whether every axis is ignored.
func (m AxisMask) All() bool {
	return m.Ignored(AxisX) && m.Ignored(AxisY) && m.Ignored(AxisZ)
}

// Touch enables a single axis for animation. On an untouched mask every
// other axis becomes ignored first, so the first single-axis setter
// animates only that axis and later ones add to it.
func (m *AxisMask) Touch(axis Axis) {
	if m.Untouched() {
		*m = IgnoreAll()
	}
	m[axis] = AxisEnabled
}

// Bools resolves the mask to ignore flags.
func (m AxisMask) Bools() (x, y, z bool) {
	return m.Ignored(AxisX), m.Ignored(AxisY), m.Ignored(AxisZ)
}
