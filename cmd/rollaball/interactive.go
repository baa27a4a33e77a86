package main

import (
	"context"
	"fmt"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/rollaball/core"
	"github.com/lixenwraith/rollaball/game"
	"github.com/lixenwraith/rollaball/input"
	"github.com/lixenwraith/rollaball/logger"
	"github.com/lixenwraith/rollaball/parameter"
	"github.com/lixenwraith/rollaball/render"
)

// runInteractive owns the terminal: input poller, tick scheduler and frame loop
func runInteractive(g *game.Game) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("init screen: %w", err)
	}
	core.SetCrashReset(screen.Fini)
	screen.EnableFocus()
	defer screen.Fini()

	// Panic Recovery: restore terminal even if the main loop crashes
	defer func() {
		if r := recover(); r != nil {
			core.HandleCrash(r)
		}
	}()

	latch := input.NewLatch(g.Config.Input.Hold)
	g.Scheduler.SetInputSource(latch.Snapshot)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	events := make(chan tcell.Event, 64)
	core.Go(func() {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				// Screen finalized
				return
			}
			select {
			case events <- ev:
			case <-ctx.Done():
				return
			}
		}
	})

	g.Scheduler.Start(ctx)
	defer g.Scheduler.Stop()

	frameTicker := time.NewTicker(parameter.FrameUpdateInterval)
	defer frameTicker.Stop()

	log := logger.L()
	var lastKeys input.KeySet

	for {
		select {
		case ev := <-events:
			if handleEvent(screen, latch, ev) {
				log.Info("quit requested")
				return nil
			}

		case <-g.UpdateDone:
			lastKeys = latch.Snapshot(time.Now())

		case <-frameTicker.C:
			g.World.RunSafe(func() {
				render.Draw(screen, g.World, g.Arena, render.Status{
					RunID: g.RunID[:8],
					Mode:  g.Config.Sim.Mode.String(),
					Tick:  g.Scheduler.TickCount(),
					Keys:  lastKeys.String(),
				})
			})
		}
	}
}

// handleEvent feeds one terminal event into the latch, reports a quit request
func handleEvent(screen tcell.Screen, latch *input.Latch, ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		if input.IsQuit(ev) {
			return true
		}
		if k, ok := input.KeyFromEvent(ev); ok {
			latch.Press(k, ev.When())
		}
	case *tcell.EventResize:
		// Presses during a resize arrive out of order, drop held keys
		latch.Reset()
		screen.Sync()
	case *tcell.EventFocus:
		// Releases while unfocused are never seen
		if !ev.Focused {
			latch.Reset()
		}
	}
	return false
}
