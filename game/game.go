// Package game assembles the world, systems and scheduler for one session.
package game

import (
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/lixenwraith/rollaball/config"
	"github.com/lixenwraith/rollaball/core"
	"github.com/lixenwraith/rollaball/engine"
	"github.com/lixenwraith/rollaball/input"
	"github.com/lixenwraith/rollaball/physics"
	"github.com/lixenwraith/rollaball/scene"
	"github.com/lixenwraith/rollaball/system"
)

// Options carries collaborators that are not part of the config file
type Options struct {
	Clock  engine.TimeProvider
	Audio  engine.AudioPlayer
	Logger *slog.Logger
}

// Game is one simulation session
type Game struct {
	RunID     string
	Config    *config.Config
	World     *engine.World
	Scheduler *engine.ClockScheduler
	Player    core.Entity
	Arena     physics.Arena

	// UpdateDone signals completed ticks to the frame loop
	UpdateDone <-chan struct{}

	log *slog.Logger
}

// New builds a session: resources, systems in tick order, arena and player
func New(cfg *config.Config, opts Options) (*Game, error) {
	if cfg == nil {
		cfg = config.Default()
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("game config: %w", err)
	}
	if opts.Clock == nil {
		opts.Clock = engine.NewMonotonicTimeProvider()
	}
	if opts.Logger == nil {
		opts.Logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	runID := uuid.NewString()
	log := opts.Logger.With("run", runID)

	arena := physics.NewArena(cfg.Arena.Size, cfg.Arena.WallThickness, cfg.Arena.Restitution)

	w := engine.NewWorld()
	engine.InstallCoreResources(w, &engine.ConfigResource{
		Mode:           cfg.Sim.Mode,
		Arena:          arena,
		TranslateSpeed: cfg.Player.TranslateSpeed,
	})
	if opts.Audio != nil {
		engine.AddResource(w.Resources, &engine.AudioResource{Player: opts.Audio})
	}

	w.AddSystem(system.NewInputSystem(w))
	w.AddSystem(system.NewVelocitySystem(w))
	w.AddSystem(system.NewTranslateSystem(w))
	w.AddSystem(system.NewPhysicsSystem(w))
	w.AddSystem(system.NewAudioSystem(w, log))

	scene.SpawnArena(w, arena)
	player := scene.SpawnPlayer(w, scene.PlayerSpec{
		Speed:       cfg.Player.Speed,
		Radius:      cfg.Player.Radius,
		Restitution: cfg.Arena.Restitution,
	})

	scheduler, done := engine.NewClockScheduler(w, opts.Clock, cfg.Sim.Tick)

	log.Info("session created",
		"mode", cfg.Sim.Mode.String(),
		"tick", cfg.Sim.Tick,
		"speed", cfg.Player.Speed,
		"arena", cfg.Arena.Size,
	)

	return &Game{
		RunID:      runID,
		Config:     cfg,
		World:      w,
		Scheduler:  scheduler,
		Player:     player,
		Arena:      arena,
		UpdateDone: done,
		log:        log,
	}, nil
}

// Snapshot is the player's observable state after a tick
type Snapshot struct {
	Tick   uint64
	Keys   input.KeySet
	Player PlayerView
}

// PlayerView copies the player's locomotion and body state
type PlayerView struct {
	Direction string
	Position  string
	Velocity  string
}

// Step runs one tick with the given keys at the configured step
func (g *Game) Step(keys input.KeySet) Snapshot {
	g.Scheduler.Step(keys, g.Config.Sim.Tick)
	return g.snapshot(keys)
}

// RunScript steps once per scripted tick, calling fn after each
func (g *Game) RunScript(ticks []input.KeySet, fn func(Snapshot)) {
	for _, keys := range ticks {
		s := g.Step(keys)
		if fn != nil {
			fn(s)
		}
	}
	g.log.Info("script finished", "ticks", len(ticks))
}

// State returns the player's current state and body, ok is false once the player is gone
func (g *Game) State() (PlayerView, bool) {
	player, ok := g.World.Components.Player.Get(g.Player)
	if !ok {
		return PlayerView{}, false
	}
	body, ok := g.World.Components.Body.Get(g.Player)
	if !ok {
		return PlayerView{Direction: player.Direction.String()}, true
	}
	return PlayerView{
		Direction: player.Direction.String(),
		Position:  body.Position.String(),
		Velocity:  body.Velocity.String(),
	}, true
}

func (g *Game) snapshot(keys input.KeySet) Snapshot {
	view, _ := g.State()
	return Snapshot{
		Tick:   g.Scheduler.TickCount(),
		Keys:   keys,
		Player: view,
	}
}

// Close logs session end
func (g *Game) Close() {
	g.Scheduler.Stop()
	g.log.Info("session closed", "ticks", g.Scheduler.TickCount(), "at", time.Now().Format(time.TimeOnly))
}
