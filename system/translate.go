package system

import (
	"github.com/lixenwraith/rollaball/engine"
	"github.com/lixenwraith/rollaball/locomotion"
	"github.com/lixenwraith/rollaball/parameter"
	"github.com/lixenwraith/rollaball/physics"
)

// TranslateSystem moves players directly from held keys, stopping on release
type TranslateSystem struct {
	engine.SystemBase
}

func NewTranslateSystem(world *engine.World) engine.System {
	return &TranslateSystem{SystemBase: engine.NewSystemBase(world)}
}

func (s *TranslateSystem) Priority() int {
	return parameter.PriorityMovement
}

func (s *TranslateSystem) Update() {
	if s.Resource.Config.Mode != locomotion.ControlTranslate {
		return
	}

	delta := locomotion.Translate(s.Resource.Input.Keys, s.Resource.Time.Seconds(), s.Resource.Config.TranslateSpeed)
	for _, e := range s.Component.Player.All() {
		body, ok := s.Component.Body.Get(e)
		if !ok {
			continue
		}
		physics.Translate(&body.Body, delta)
		s.Component.Body.Set(e, body)
	}
}
