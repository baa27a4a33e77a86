package vmath

import (
	"math"
	"strconv"
)

// Vec3F is a float64 3D vector in world units
// Y is up, the arena floor is the X/Z plane
type Vec3F struct {
	X, Y, Z float64
}

// Unit axes
var (
	Zero = Vec3F{}
	PosX = Vec3F{X: 1}
	NegX = Vec3F{X: -1}
	PosZ = Vec3F{Z: 1}
	NegZ = Vec3F{Z: -1}
)

func V3FAdd(a, b Vec3F) Vec3F {
	return Vec3F{a.X + b.X, a.Y + b.Y, a.Z + b.Z}
}

func V3FScale(v Vec3F, s float64) Vec3F {
	return Vec3F{v.X * s, v.Y * s, v.Z * s}
}

// V3FIsZero reports exact zero, used for resting bodies and "no direction" checks
func V3FIsZero(v Vec3F) bool {
	return v.X == 0 && v.Y == 0 && v.Z == 0
}

// V3FApproxEqual compares component-wise within eps
func V3FApproxEqual(a, b Vec3F, eps float64) bool {
	return math.Abs(a.X-b.X) <= eps && math.Abs(a.Y-b.Y) <= eps && math.Abs(a.Z-b.Z) <= eps
}

// String formats with two decimals for status lines and logs
func (v Vec3F) String() string {
	return "(" + ftoa(v.X) + ", " + ftoa(v.Y) + ", " + ftoa(v.Z) + ")"
}

func ftoa(f float64) string {
	// Avoid printing "-0.00"
	if math.Abs(f) < 0.005 {
		f = 0
	}
	return strconv.FormatFloat(f, 'f', 2, 64)
}
