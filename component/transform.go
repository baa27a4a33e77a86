package component

import (
	"github.com/lixenwraith/rollaball/vmath"
)

// TransformComponent places static scene entities
// Dynamic bodies read their position from BodyComponent instead
type TransformComponent struct {
	Translation vmath.Vec3F
	// RotationY is the yaw in radians
	RotationY float64
}

// WallComponent marks a fixed arena wall and the side it closes
type WallComponent struct {
	Normal vmath.Vec3F // Points into the arena
}

// MarkerKind identifies non-physical scene entities
type MarkerKind uint8

const (
	MarkerGround MarkerKind = iota
	MarkerCamera
	MarkerLight
)

// MarkerComponent records scene entities the renderer labels but never simulates
type MarkerComponent struct {
	Kind      MarkerKind
	LookAt    vmath.Vec3F
	Intensity float64
}
