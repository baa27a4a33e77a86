package parameter

import "time"

const (
	// FrameUpdateInterval is the rendering frame rate interval (~60 FPS)
	FrameUpdateInterval = 16 * time.Millisecond

	// GameUpdateInterval is the simulation tick (fixed step)
	GameUpdateInterval = 16 * time.Millisecond

	// MinGameUpdateInterval bounds configured tick rates
	MinGameUpdateInterval = time.Millisecond

	// MaxGameUpdateInterval bounds configured tick rates
	MaxGameUpdateInterval = time.Second

	// EventQueueSize is the per-tick event capacity, older events are dropped past it
	EventQueueSize = 256

	// InputHoldWindow is how long a key press counts as held without a repeat
	// Covers the terminal's initial auto-repeat delay
	InputHoldWindow = 550 * time.Millisecond
)
