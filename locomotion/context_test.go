package locomotion

import (
	"testing"
	"time"

	"github.com/lixenwraith/rollaball/input"
	"github.com/lixenwraith/rollaball/vmath"
)

func TestDriver_InputBeforeIntegration(t *testing.T) {
	ctx := NewContext(NewPlayerState())
	body := &recordingTarget{}
	ctx.Attach(body)

	var d Driver
	if !d.Step(ctx, input.Keys(input.KeyW), 100*time.Millisecond) {
		t.Fatal("Expected step to reach the body")
	}

	// Same-tick direction must be used, not the stale zero direction
	if !vmath.V3FApproxEqual(body.velocity, vmath.Vec3F{Z: -0.5}, eps) {
		t.Errorf("Expected velocity (0,0,-0.5), got %v", body.velocity)
	}
	if ctx.Ticks() != 1 {
		t.Errorf("Expected 1 tick, got %d", ctx.Ticks())
	}
}

func TestDriver_SkipsUntilAttached(t *testing.T) {
	ctx := NewContext(NewPlayerState())
	var d Driver

	if d.Step(ctx, input.Keys(input.KeyA), time.Second) {
		t.Error("Expected skip before a body is attached")
	}
	if ctx.Player.Direction != vmath.NegX {
		t.Errorf("Expected mapper to still run, got %v", ctx.Player.Direction)
	}

	body := &recordingTarget{}
	ctx.Attach(body)
	d.Step(ctx, input.KeySet(0), time.Second)

	if !vmath.V3FApproxEqual(body.velocity, vmath.Vec3F{X: -5}, eps) {
		t.Errorf("Expected velocity (-5,0,0), got %v", body.velocity)
	}
	if ctx.Ticks() != 2 {
		t.Errorf("Expected 2 ticks, got %d", ctx.Ticks())
	}
}

func TestDriver_ClosedContext(t *testing.T) {
	ctx := NewContext(NewPlayerState())
	body := &recordingTarget{}
	ctx.Attach(body)
	ctx.Close()

	var d Driver
	if d.Step(ctx, input.Keys(input.KeyW), time.Second) {
		t.Error("Expected closed context to ignore steps")
	}
	if !ctx.Closed() || ctx.Body != nil {
		t.Error("Expected context torn down")
	}
	if len(body.deltas) != 0 {
		t.Errorf("Expected no deltas after close, got %d", len(body.deltas))
	}
	if d.Step(nil, input.KeySet(0), time.Second) {
		t.Error("Expected nil context to be ignored")
	}
}
