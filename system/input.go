package system

import (
	"github.com/lixenwraith/rollaball/engine"
	"github.com/lixenwraith/rollaball/event"
	"github.com/lixenwraith/rollaball/locomotion"
	"github.com/lixenwraith/rollaball/parameter"
)

// InputSystem runs the input mapper on every player
// Runs before movement so the integrator sees this tick's direction
type InputSystem struct {
	engine.SystemBase
}

func NewInputSystem(world *engine.World) engine.System {
	return &InputSystem{SystemBase: engine.NewSystemBase(world)}
}

func (s *InputSystem) Priority() int {
	return parameter.PriorityInput
}

func (s *InputSystem) Update() {
	// Translate mode reads keys directly and never persists a direction
	if s.Resource.Config.Mode != locomotion.ControlVelocity {
		return
	}

	keys := s.Resource.Input.Keys
	for _, e := range s.Component.Player.All() {
		player, ok := s.Component.Player.Get(e)
		if !ok {
			continue
		}

		prev := player.Direction
		locomotion.MapInput(keys, &player.PlayerState)
		if player.Direction == prev {
			continue
		}
		s.Component.Player.Set(e, player)

		s.Resource.Event.Queue.Push(event.GameEvent{
			Type:    event.EventDirectionChanged,
			Payload: &event.DirectionPayload{Entity: e, From: prev, To: player.Direction},
			Tick:    s.Resource.Time.Tick,
		})
	}
}

