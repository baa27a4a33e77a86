package locomotion

import (
	"github.com/lixenwraith/rollaball/vmath"
)

// VelocityDelta computes direction*speed*dt, negative dt counts as zero
func VelocityDelta(p PlayerState, dt float64) vmath.Vec3F {
	if dt <= 0 {
		return vmath.Zero
	}
	return vmath.V3FScale(p.Direction, p.Speed*dt)
}

// IntegrateVelocity adds the tick's velocity delta to target
// Returns false when there is no body to apply it to, the tick is skipped
func IntegrateVelocity(p PlayerState, dt float64, target VelocityTarget) bool {
	if target == nil {
		return false
	}
	target.AddVelocity(VelocityDelta(p, dt))
	return true
}
