package tween

// reverseDirection swaps From and To on every range and, when
// FlipCurveOnReverse is set, mirrors the easing curve. Applying it twice
// restores the original configuration.
func (t *Tween) reverseDirection() {
	t.Position.swap()
	t.Rotation.swap()
	t.Scale.swap()
	t.Color.swap()
	t.Alpha.swap()
	t.Scalar.swap()

	if t.FlipCurveOnReverse && t.Easing.Curve != nil {
		t.Easing.Curve = t.Easing.Curve.Reversed()
		t.ease = t.Easing.Compile()
	}

	t.state.reversed = !t.state.reversed
}
