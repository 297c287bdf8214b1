package tween

import (
	"math"
	"testing"

	"github.com/go-drift/tween/pkg/easing"
)

func configured(t *testing.T) *Tween {
	t.Helper()
	tw, _ := attach(t)
	tw.SetPosition(Vec3{1, 2, 3}, Vec3{4, 5, 6}).
		SetRotation(Vec3{0, 0, 0}, Vec3{0, 180, 0}).
		SetScale(Vec3{1, 1, 1}, Vec3{2, 3, 4}).
		SetColor(Color{1, 0, 0, 1}, Color{0, 0, 1, 0.5}).
		SetAlpha(0.1, 0.9).
		SetScalar(-3, 3).
		SetCurve(easing.NewCurve(
			easing.Keyframe{Time: 0.2, Value: 0, OutTangent: 3},
			easing.Keyframe{Time: 0.5, Value: 0.8, InTangent: 1, OutTangent: 0.5},
			easing.Keyframe{Time: 1.4, Value: 1, InTangent: 0},
		))
	return tw
}

func TestReverseTwiceRestores(t *testing.T) {
	tw := configured(t)
	pos, rot, scale := tw.Position, tw.Rotation, tw.Scale
	color, alpha, scalar := tw.Color, tw.Alpha, tw.Scalar
	curve := tw.Easing.Curve.Clone()

	tw.reverseDirection()
	if !tw.HasReversed() || tw.Position.From != pos.To || tw.Alpha.From != alpha.To {
		t.Fatal("single reversal should swap ranges")
	}
	tw.reverseDirection()

	if tw.HasReversed() {
		t.Error("orientation flag should toggle back")
	}
	if tw.Position != pos || tw.Rotation != rot || tw.Scale != scale {
		t.Error("spatial ranges not restored")
	}
	if tw.Color != color || tw.Alpha != alpha || tw.Scalar != scalar {
		t.Error("color, alpha or scalar range not restored")
	}
	for i := 0; i <= 20; i++ {
		x := 0.1 + 1.4*float64(i)/20
		if got, want := tw.Easing.Curve.Evaluate(x), curve.Evaluate(x); math.Abs(got-want) > 1e-12 {
			t.Errorf("curve(%v) = %v after double reversal, want %v", x, got, want)
		}
	}
}

func TestReverseMirrorsCurve(t *testing.T) {
	tw, _ := attach(t)
	curve := easing.NewCurve(
		easing.Keyframe{Time: 0, Value: 0, OutTangent: 0},
		easing.Keyframe{Time: 1, Value: 1, InTangent: 2},
	)
	tw.SetCurve(curve)
	tw.reverseDirection()

	for _, x := range []float64{0, 0.25, 0.5, 0.75, 1} {
		got := tw.Easing.Curve.Evaluate(x)
		want := 1 - curve.Evaluate(1-x)
		if math.Abs(got-want) > 1e-12 {
			t.Errorf("reversed(%v) = %v, want %v", x, got, want)
		}
	}
}

func TestReverseWithoutCurveFlip(t *testing.T) {
	tw := configured(t)
	tw.FlipCurveOnReverse = false
	curve := tw.Easing.Curve

	tw.reverseDirection()
	if tw.Easing.Curve != curve {
		t.Error("curve replaced although FlipCurveOnReverse is false")
	}
}

func TestReverseSurvivesStop(t *testing.T) {
	tw := configured(t)
	tw.Reverse()
	tw.Stop()
	if !tw.HasReversed() {
		t.Error("Stop should keep the orientation")
	}
	if tw.IsReversing() {
		t.Error("Stop should clear reversing")
	}
}
