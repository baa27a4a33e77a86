package parameter

// System Execution Priorities (lower runs first)
// Input must run before movement within the same tick
const (
	PriorityInput    = 10
	PriorityMovement = 20 // Velocity integrator or direct translation
	PriorityPhysics  = 30
	PriorityAudio    = 40
)
