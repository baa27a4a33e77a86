package system

import (
	"github.com/lixenwraith/rollaball/engine"
	"github.com/lixenwraith/rollaball/locomotion"
	"github.com/lixenwraith/rollaball/parameter"
)

// VelocitySystem runs the velocity integrator on every player with a body
// A player whose body is not spawned yet is skipped for the tick
type VelocitySystem struct {
	engine.SystemBase
}

func NewVelocitySystem(world *engine.World) engine.System {
	return &VelocitySystem{SystemBase: engine.NewSystemBase(world)}
}

func (s *VelocitySystem) Priority() int {
	return parameter.PriorityMovement
}

func (s *VelocitySystem) Update() {
	if s.Resource.Config.Mode != locomotion.ControlVelocity {
		return
	}

	dt := s.Resource.Time.Seconds()
	for _, e := range s.Component.Player.All() {
		player, ok := s.Component.Player.Get(e)
		if !ok {
			continue
		}
		body, ok := s.Component.Body.Get(e)
		if !ok {
			continue
		}
		locomotion.IntegrateVelocity(player.PlayerState, dt, &body.Body)
		s.Component.Body.Set(e, body)
	}
}
