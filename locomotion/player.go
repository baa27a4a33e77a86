package locomotion

import (
	"github.com/lixenwraith/rollaball/vmath"
)

// DefaultSpeed is the player's movement speed in world units per second
const DefaultSpeed = 5.0

// PlayerState is the logic companion to the player's rigid body
// Direction is always zero or one of ±X, ±Z
type PlayerState struct {
	Direction vmath.Vec3F
	Speed     float64
}

// NewPlayerState returns a state with no direction and the default speed
func NewPlayerState() PlayerState {
	return PlayerState{Speed: DefaultSpeed}
}

// NewPlayerStateWithSpeed returns a state with no direction and the given speed
func NewPlayerStateWithSpeed(speed float64) PlayerState {
	return PlayerState{Speed: speed}
}

// VelocityTarget is the additive velocity handle on the externally owned body
type VelocityTarget interface {
	AddVelocity(delta vmath.Vec3F)
}
