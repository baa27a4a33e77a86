package component

import (
	"github.com/lixenwraith/rollaball/physics"
)

// BodyType mirrors the host physics body kinds
type BodyType uint8

const (
	BodyDynamic BodyType = iota
	BodyFixed
)

// BodyComponent is the rigid body state integrated by the physics step
type BodyComponent struct {
	physics.Body
	Type BodyType
}
