package event

// EventType represents the type of game event
type EventType int

const (
	EventNone EventType = iota

	// EventWallHit reports the player sphere bouncing off an arena wall
	// Trigger: PhysicsSystem | Consumer: AudioSystem | Payload: *WallHitPayload
	EventWallHit

	// EventPlayerSpawned reports the player body becoming available
	// Trigger: scene.SpawnPlayer | Consumer: logging | Payload: *PlayerSpawnedPayload
	EventPlayerSpawned

	// EventDirectionChanged reports a new commanded direction
	// Trigger: InputSystem | Consumer: logging | Payload: *DirectionPayload
	EventDirectionChanged
)

var typeNames = map[EventType]string{
	EventNone:             "none",
	EventWallHit:          "wall_hit",
	EventPlayerSpawned:    "player_spawned",
	EventDirectionChanged: "direction_changed",
}

func (t EventType) String() string {
	if name, ok := typeNames[t]; ok {
		return name
	}
	return "unknown"
}

// GameEvent is one queued event stamped with the tick that produced it
type GameEvent struct {
	Type    EventType
	Payload any
	Tick    uint64
}
