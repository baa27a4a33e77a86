package physics

import (
	"github.com/lixenwraith/rollaball/vmath"
)

// Body is the rigid body state owned by the host physics step
type Body struct {
	Position    vmath.Vec3F
	Velocity    vmath.Vec3F
	Mass        float64
	Restitution float64
}

// AddVelocity adds a velocity delta (momentum transfer)
// Satisfies locomotion.VelocityTarget
func (b *Body) AddVelocity(delta vmath.Vec3F) {
	b.Velocity = vmath.V3FAdd(b.Velocity, delta)
}

// Translate moves the body directly, bypassing velocity
func Translate(b *Body, delta vmath.Vec3F) {
	b.Position = vmath.V3FAdd(b.Position, delta)
}

// Integrate performs explicit Euler position integration: p = p + v*dt
func Integrate(b *Body, dt float64) {
	if dt <= 0 {
		return
	}
	b.Position = vmath.V3FAdd(b.Position, vmath.V3FScale(b.Velocity, dt))
}
