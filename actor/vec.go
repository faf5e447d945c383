package actor

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

const epsilon = 1e-4

// AxisX is the canonical fallback direction for degenerate vectors
var AxisX = mgl64.Vec4{1, 0, 0, 0}

// NormalizeOr returns v normalized, or fallback when v is (nearly) zero length
func NormalizeOr(v mgl64.Vec4, fallback mgl64.Vec4) (mgl64.Vec4, float64) {
	length := v.Len()
	if length <= epsilon {
		return fallback, length
	}
	return v.Mul(1.0 / length), length
}

func MinVec4(a, b mgl64.Vec4) mgl64.Vec4 {
	return mgl64.Vec4{math.Min(a[0], b[0]), math.Min(a[1], b[1]), math.Min(a[2], b[2]), math.Min(a[3], b[3])}
}

func MaxVec4(a, b mgl64.Vec4) mgl64.Vec4 {
	return mgl64.Vec4{math.Max(a[0], b[0]), math.Max(a[1], b[1]), math.Max(a[2], b[2]), math.Max(a[3], b[3])}
}

// ClampVec4 clamps every component of v into [min, max]
func ClampVec4(v, min, max mgl64.Vec4) mgl64.Vec4 {
	return MaxVec4(min, MinVec4(v, max))
}
