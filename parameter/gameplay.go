package parameter

import "github.com/go-gl/mathgl/mgl32"

// Asteroid Spawning
const (
	// AsteroidSpawnInterval is the fixed asteroid cadence in seconds
	// AsteroidsAppearanceFrequency is loaded but not applied, cadence stays one per second
	AsteroidSpawnInterval = 1.0

	// AsteroidSpawnSpreadX is the half-width of the lateral spawn window around the player
	AsteroidSpawnSpreadX = 20.0

	// AsteroidSpawnNearZ and AsteroidSpawnFarZ bound the spawn depth ahead of the player
	AsteroidSpawnNearZ = 40.0
	AsteroidSpawnFarZ  = 70.0

	// AsteroidSpinMin and AsteroidSpinMax bound the angular velocity in degrees per second
	AsteroidSpinMin = 10.05
	AsteroidSpinMax = 30.5
)

// Player
var (
	// PlayerOrigin is the canonical spawn point on reset
	PlayerOrigin = mgl32.Vec3{0, 0, 0}

	// CameraForward is the chase camera direction the player flies along
	CameraForward = mgl32.Vec3{0, 0, 1}

	// StrafeLeft is the world direction of the Left key; the chase camera sees world -X as screen right
	StrafeLeft = mgl32.Vec3{1, 0, 0}

	// LaserAxis is the spin axis given to every laser beam
	LaserAxis = mgl32.Vec3{0, 0, 1}
)

// DefaultSeed drives the spawner RNG when no seed is supplied
const DefaultSeed uint64 = 0x5eed
