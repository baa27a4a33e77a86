package locomotion

import (
	"time"

	"github.com/lixenwraith/rollaball/input"
)

// Context owns the player state and the handle to its body for one simulation
// Body stays nil until the host has spawned the rigid body
type Context struct {
	Player PlayerState
	Body   VelocityTarget

	ticks  uint64
	closed bool
}

// NewContext creates a context at simulation start
func NewContext(player PlayerState) *Context {
	return &Context{Player: player}
}

// Attach binds the spawned body, later ticks integrate into it
func (c *Context) Attach(body VelocityTarget) {
	c.Body = body
}

// Ticks returns the number of completed steps
func (c *Context) Ticks() uint64 {
	return c.ticks
}

// Close tears the context down, further steps are ignored
func (c *Context) Close() {
	c.Body = nil
	c.closed = true
}

// Closed reports whether Close was called
func (c *Context) Closed() bool {
	return c.closed
}

// Driver runs the two-stage pipeline: input mapper, then velocity integrator
type Driver struct{}

// Step advances ctx by one tick of dt
// Reports whether the velocity stage reached a body
func (Driver) Step(ctx *Context, keys input.KeyState, dt time.Duration) bool {
	if ctx == nil || ctx.closed {
		return false
	}
	MapInput(keys, &ctx.Player)
	applied := IntegrateVelocity(ctx.Player, dt.Seconds(), ctx.Body)
	ctx.ticks++
	return applied
}
