package system

import (
	"github.com/lixenwraith/rollaball/component"
	"github.com/lixenwraith/rollaball/engine"
	"github.com/lixenwraith/rollaball/event"
	"github.com/lixenwraith/rollaball/parameter"
	"github.com/lixenwraith/rollaball/physics"
	"github.com/lixenwraith/rollaball/vmath"
)

// PhysicsSystem is the host's stand-in physics step
// Integrates dynamic bodies and bounces balls off the arena walls
type PhysicsSystem struct {
	engine.SystemBase
}

func NewPhysicsSystem(world *engine.World) engine.System {
	return &PhysicsSystem{SystemBase: engine.NewSystemBase(world)}
}

func (s *PhysicsSystem) Priority() int {
	return parameter.PriorityPhysics
}

func (s *PhysicsSystem) Update() {
	dt := s.Resource.Time.Seconds()
	arena := s.Resource.Config.Arena

	for _, e := range s.Component.Body.All() {
		body, ok := s.Component.Body.Get(e)
		if !ok || body.Type != component.BodyDynamic {
			continue
		}

		if !vmath.V3FIsZero(body.Velocity) {
			physics.Integrate(&body.Body, dt)
		}

		if col, ok := s.Component.Collider.Get(e); ok && col.Shape == component.ShapeBall {
			for _, c := range physics.ReflectArena(&body.Body, col.Radius, arena) {
				s.Resource.Event.Queue.Push(event.GameEvent{
					Type:    event.EventWallHit,
					Payload: &event.WallHitPayload{Entity: e, Normal: c.Normal, Speed: c.Speed},
					Tick:    s.Resource.Time.Tick,
				})
			}
		}

		s.Component.Body.Set(e, body)
	}
}
