package main

import (
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/rollaball/input"
)

func TestHandleEvent(t *testing.T) {
	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		t.Fatal(err)
	}
	defer screen.Fini()

	latch := input.NewLatch(time.Hour)
	held := func() input.KeySet { return latch.Snapshot(time.Now()) }

	if handleEvent(screen, latch, tcell.NewEventKey(tcell.KeyRune, 'w', tcell.ModNone)) {
		t.Fatal("Expected w not to quit")
	}
	handleEvent(screen, latch, tcell.NewEventKey(tcell.KeyLeft, 0, tcell.ModNone))
	if got := held(); got != input.Keys(input.KeyW, input.KeyA) {
		t.Fatalf("Expected AW held, got %s", got)
	}

	// Regaining focus keeps held keys
	handleEvent(screen, latch, tcell.NewEventFocus(true))
	if held().Empty() {
		t.Error("Expected keys kept on focus gain")
	}

	handleEvent(screen, latch, tcell.NewEventFocus(false))
	if got := held(); !got.Empty() {
		t.Errorf("Expected keys released on focus loss, got %s", got)
	}

	handleEvent(screen, latch, tcell.NewEventKey(tcell.KeyRune, 'd', tcell.ModNone))
	handleEvent(screen, latch, tcell.NewEventResize(80, 24))
	if got := held(); !got.Empty() {
		t.Errorf("Expected keys released on resize, got %s", got)
	}

	if !handleEvent(screen, latch, tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone)) {
		t.Error("Expected Esc to quit")
	}
}
