package system

import (
	"log/slog"

	"github.com/lixenwraith/rollaball/engine"
	"github.com/lixenwraith/rollaball/event"
	"github.com/lixenwraith/rollaball/logger"
	"github.com/lixenwraith/rollaball/parameter"
)

// AudioSystem drains the tick's events, plays wall bumps and logs the rest
type AudioSystem struct {
	engine.SystemBase
	player engine.AudioPlayer
	log    *slog.Logger
}

// NewAudioSystem wires the player from AudioResource when present, silent otherwise
func NewAudioSystem(world *engine.World, log *slog.Logger) engine.System {
	if log == nil {
		log = logger.L()
	}
	s := &AudioSystem{SystemBase: engine.NewSystemBase(world), log: log}
	if res, ok := engine.GetResource[*engine.AudioResource](world.Resources); ok && res.Player != nil {
		s.player = res.Player
	}
	return s
}

func (s *AudioSystem) Priority() int {
	return parameter.PriorityAudio
}

func (s *AudioSystem) Update() {
	for _, ev := range s.Resource.Event.Queue.Consume() {
		switch p := ev.Payload.(type) {
		case *event.WallHitPayload:
			if s.player != nil {
				s.player.Bump(p.Speed)
			}
			s.log.Debug("wall hit", "tick", ev.Tick, "normal", p.Normal.String(), "speed", p.Speed)
		case *event.DirectionPayload:
			s.log.Debug("direction changed", "tick", ev.Tick, "from", p.From.String(), "to", p.To.String())
		case *event.PlayerSpawnedPayload:
			s.log.Info("player spawned", "entity", uint64(p.Entity), "position", p.Position.String(), "mass", p.Mass)
		}
	}
}
