package parameter

import "time"

// Game Loop & Engine Timing
const (
	// FrameUpdateInterval is the frontend frame interval (~60 FPS)
	FrameUpdateInterval = 16 * time.Millisecond

	// MaxFrameDelta caps the delta the frontend hands to the simulation after a stall
	// The simulation itself applies whatever delta it is given
	MaxFrameDelta = 250 * time.Millisecond

	// KeyHoldWindow is how long a terminal key counts as held after its last press or repeat
	// Terminals report no key-up, so holds are inferred from auto-repeat
	KeyHoldWindow = 180 * time.Millisecond

	// KeyRepeatDelay covers the gap between the first press and the first auto-repeat
	KeyRepeatDelay = 550 * time.Millisecond
)

// ECS & Event Limits
const (
	// EventQueueCapacity is the initial capacity of the per-frame event buffer
	EventQueueCapacity = 64

	// EntityPoolCapacity is the initial capacity of the entity pool and component stores
	EntityPoolCapacity = 256
)
