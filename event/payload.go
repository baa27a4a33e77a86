package event

import (
	"github.com/lixenwraith/rollaball/core"
	"github.com/lixenwraith/rollaball/vmath"
)

// WallHitPayload carries the wall normal and approach speed of a bounce
type WallHitPayload struct {
	Entity core.Entity
	Normal vmath.Vec3F
	Speed  float64
}

// PlayerSpawnedPayload identifies the spawned player entity and its body
type PlayerSpawnedPayload struct {
	Entity   core.Entity
	Position vmath.Vec3F
	Mass     float64
}

// DirectionPayload carries the old and new commanded direction
type DirectionPayload struct {
	Entity core.Entity
	From   vmath.Vec3F
	To     vmath.Vec3F
}
