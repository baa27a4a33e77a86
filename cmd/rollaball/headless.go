package main

import (
	"fmt"
	"io"

	"github.com/lixenwraith/rollaball/config"
	"github.com/lixenwraith/rollaball/game"
	"github.com/lixenwraith/rollaball/input"
	"github.com/lixenwraith/rollaball/locomotion"
	"github.com/lixenwraith/rollaball/physics"
)

// runHeadless steps the full host deterministically and prints one line per tick
func runHeadless(w io.Writer, g *game.Game, ticks []input.KeySet) {
	fmt.Fprintf(w, "# run %s mode %s tick %v\n", g.RunID, g.Config.Sim.Mode, g.Scheduler.TickInterval())
	g.RunScript(ticks, func(s game.Snapshot) {
		fmt.Fprintf(w, "%4d %-4s dir %s pos %s vel %s\n",
			s.Tick, s.Keys, s.Player.Direction, s.Player.Position, s.Player.Velocity)
	})
}

// runBare drives the locomotion pipeline against a lone body with no walls or ECS
// Velocity accumulates without being integrated into position
func runBare(w io.Writer, cfg *config.Config, ticks []input.KeySet) {
	ctx := locomotion.NewContext(locomotion.NewPlayerStateWithSpeed(cfg.Player.Speed))
	defer ctx.Close()

	body := &physics.Body{}
	ctx.Attach(body)

	var driver locomotion.Driver
	for _, keys := range ticks {
		driver.Step(ctx, keys, cfg.Sim.Tick)
		fmt.Fprintf(w, "%4d %-4s dir %s vel %s\n", ctx.Ticks(), keys, ctx.Player.Direction, body.Velocity)
	}
}
