package common

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Epsilon is the threshold below which a velocity or input axis counts as zero.
const Epsilon = 1e-5

var (
	WorldForward = mgl64.Vec3{0, 0, 1}
	WorldRight   = mgl64.Vec3{1, 0, 0}
	WorldUp      = mgl64.Vec3{0, 1, 0}
)

// NormalizeOrZero returns v scaled to unit length, or the zero vector when v
// is too short to carry a direction.
func NormalizeOrZero(v mgl64.Vec3) mgl64.Vec3 {
	l := v.Len()
	if l <= Epsilon {
		return mgl64.Vec3{}
	}
	return v.Mul(1 / l)
}

// Flatten projects v onto the horizontal plane and normalizes it.
func Flatten(v mgl64.Vec3) mgl64.Vec3 {
	v[1] = 0
	return NormalizeOrZero(v)
}

// NearlyZero2 reports whether both axes of v are within Epsilon of zero.
func NearlyZero2(v mgl64.Vec2) bool {
	return math.Abs(v.X()) <= Epsilon && math.Abs(v.Y()) <= Epsilon
}

func IsZero3(v mgl64.Vec3) bool {
	return v[0] == 0 && v[1] == 0 && v[2] == 0
}
