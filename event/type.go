package event

// EventType represents the type of game event
type EventType int

const (
	// EventSessionReset marks a fresh session after Reset
	// Trigger: Session.Reset | Payload: nil
	EventSessionReset EventType = iota

	// EventAsteroidSpawned reports a new asteroid
	// Trigger: SpawnSystem | Payload: *SpawnPayload
	EventAsteroidSpawned

	// EventLaserFired reports a cannon shot
	// Trigger: SpawnSystem | Payload: *SpawnPayload
	EventLaserFired

	// EventAsteroidDestroyed reports a scored asteroid-laser hit
	// Trigger: CollisionSystem | Payload: *AsteroidDestroyedPayload
	EventAsteroidDestroyed

	// EventPlayerDefeated reports the Playing -> EndGame transition
	// Trigger: CollisionSystem contact or Session.Defeat | Payload: *DefeatPayload
	EventPlayerDefeated
)

func (t EventType) String() string {
	switch t {
	case EventSessionReset:
		return "session_reset"
	case EventAsteroidSpawned:
		return "asteroid_spawned"
	case EventLaserFired:
		return "laser_fired"
	case EventAsteroidDestroyed:
		return "asteroid_destroyed"
	case EventPlayerDefeated:
		return "player_defeated"
	default:
		return "unknown"
	}
}

// GameEvent is a single frame notification for collaborators (audio, HUD, logs)
type GameEvent struct {
	Type    EventType
	Payload any
	Frame   int64
}
