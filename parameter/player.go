package parameter

const (
	// PlayerSpeed is the movement speed in world units per second
	PlayerSpeed = 5.0

	// TranslateSpeed is the direct-translation speed, one unit per second per key
	TranslateSpeed = 1.0

	// PlayerRadius is the collider radius of the player sphere
	PlayerRadius = 0.25

	// PlayerRadiusMin and PlayerRadiusMax bound configured radii
	PlayerRadiusMin = 0.25
	PlayerRadiusMax = 0.5

	// PlayerSpawnY lifts the sphere to rest on the ground plane
	PlayerSpawnY = 0.25

	// PlayerDensity feeds the collider mass
	PlayerDensity = 2.0
)
