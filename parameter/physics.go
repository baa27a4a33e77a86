package parameter

const (
	// ArenaSize is the side length of the square ground plane
	ArenaSize = 10.0

	// WallThickness is the rendered wall depth, colliders use half of it per side
	WallThickness = 0.5

	// WallHeight is the wall extent on Y
	WallHeight = 1.0

	// Restitution is the bounce coefficient of walls and player
	Restitution = 0.7

	// GroundThickness is the collider half-height of the ground plane
	GroundThickness = 0.1
)

// Scene markers
const (
	CameraX, CameraY, CameraZ = 0.0, 4.0, 12.0
	LightX, LightY, LightZ    = 4.0, 8.0, 4.0
	LightIntensity            = 1500.0
)
