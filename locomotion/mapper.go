package locomotion

import (
	"github.com/lixenwraith/rollaball/input"
	"github.com/lixenwraith/rollaball/vmath"
)

// keyRule pairs a key with the direction it commands
type keyRule struct {
	key       input.Key
	direction vmath.Vec3F
}

// Evaluation order matters: later rules overwrite earlier ones in the same tick
var keyRules = [...]keyRule{
	{input.KeyA, vmath.NegX},
	{input.KeyD, vmath.PosX},
	{input.KeyS, vmath.PosZ},
	{input.KeyW, vmath.NegZ},
}

// MapInput updates p.Direction from the held keys
// With no key held the previous direction is kept
func MapInput(keys input.KeyState, p *PlayerState) {
	if keys == nil || p == nil {
		return
	}
	for _, rule := range keyRules {
		if keys.IsPressed(rule.key) {
			p.Direction = rule.direction
		}
	}
}

// Translate returns the position delta of the direct-translation control scheme
// Each held key contributes its axis, so opposing keys cancel and nothing moves on release
func Translate(keys input.KeyState, dt, speed float64) vmath.Vec3F {
	if keys == nil || dt <= 0 {
		return vmath.Zero
	}
	var delta vmath.Vec3F
	for _, rule := range keyRules {
		if keys.IsPressed(rule.key) {
			delta = vmath.V3FAdd(delta, rule.direction)
		}
	}
	return vmath.V3FScale(delta, speed*dt)
}
