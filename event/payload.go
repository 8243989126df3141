package event

import (
	"github.com/go-gl/mathgl/mgl32"

	"github.com/lixenwraith/spacegame/core"
)

// SpawnPayload describes a freshly created entity
type SpawnPayload struct {
	Entity   core.Entity
	Kind     core.Kind
	Position mgl32.Vec3
}

// AsteroidDestroyedPayload describes a resolved asteroid-laser hit
type AsteroidDestroyedPayload struct {
	Asteroid core.Entity
	Laser    core.Entity
	Kind     core.Kind
	Position mgl32.Vec3
	Points   int
}

// DefeatCause distinguishes how the session ended
type DefeatCause uint8

const (
	DefeatCollision DefeatCause = iota // asteroid touched the player
	DefeatSignal                       // explicit signal from the frontend
)

// DefeatPayload describes the end of a session
type DefeatPayload struct {
	Cause    DefeatCause
	Asteroid core.Entity // NoEntity for DefeatSignal
	Score    int
}
