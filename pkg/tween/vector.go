package tween

import (
	"image/color"
	"math"

	"golang.org/x/image/math/f64"
)

// Vec3 is a position, Euler rotation in degrees, or scale.
type Vec3 = f64.Vec3

// Color is an RGBA color with components in [0, 1], not premultiplied.
type Color = f64.Vec4

// White is the color used when an entity exposes no surfaces.
var White = Color{1, 1, 1, 1}

// approxEpsilon matches the tolerance game engines use for vector equality.
const approxEpsilon = 1e-10

func lerp(from, to, f float64) float64 {
	return from + f*(to-from)
}

func vecEqual(a, b Vec3) bool {
	dx, dy, dz := a[0]-b[0], a[1]-b[1], a[2]-b[2]
	return dx*dx+dy*dy+dz*dz < approxEpsilon
}

func colorEqual(a, b Color) bool {
	dr, dg, db, da := a[0]-b[0], a[1]-b[1], a[2]-b[2], a[3]-b[3]
	return dr*dr+dg*dg+db*db+da*da < approxEpsilon
}

func distance3(a, b Vec3) float64 {
	dx, dy, dz := a[0]-b[0], a[1]-b[1], a[2]-b[2]
	return math.Sqrt(dx*dx + dy*dy + dz*dz)
}

func distance4(a, b Color) float64 {
	dr, dg, db, da := a[0]-b[0], a[1]-b[1], a[2]-b[2], a[3]-b[3]
	return math.Sqrt(dr*dr + dg*dg + db*db + da*da)
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// ColorOf converts any image/color value to a Color.
func ColorOf(c color.Color) Color {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	return Color{
		float64(n.R) / 255,
		float64(n.G) / 255,
		float64(n.B) / 255,
		float64(n.A) / 255,
	}
}

// NRGBA converts c to an 8-bit non-premultiplied color, clamping components.
func NRGBA(c Color) color.NRGBA {
	to8 := func(v float64) uint8 {
		return uint8(math.Round(clamp01(v) * 255))
	}
	return color.NRGBA{R: to8(c[0]), G: to8(c[1]), B: to8(c[2]), A: to8(c[3])}
}
