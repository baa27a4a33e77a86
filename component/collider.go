package component

import (
	"github.com/lixenwraith/rollaball/vmath"
)

// ShapeKind discriminates collider shapes
type ShapeKind uint8

const (
	ShapeBall ShapeKind = iota
	ShapeCuboid
)

// ColliderComponent describes the collision shape attached to an entity
// Radius is used by balls, HalfExtents by cuboids
type ColliderComponent struct {
	Shape       ShapeKind
	Radius      float64
	HalfExtents vmath.Vec3F
	Density     float64
}
