package parameter

import (
	"github.com/lixenwraith/spacegame/core"
)

// Settings is the process-wide tuning record
// Loaded once before the first frame, may be mutated between frames by a debug surface
type Settings struct {
	CannonShootingFrequency       float32 // shots per second
	CannonShootingVelocity        float32 // laser speed along +Z
	SpaceshipForwardVelocity      float32 // player speed along the camera forward axis
	AsteroidsAngularVelocityRange float32 // informational, spin range is fixed by AsteroidSpinMin/Max
	EngineThrust                  float32
	SpaceshipMass                 float32
	AsteroidsAppearanceFrequency  float32 // asteroids per second, not applied by the spawner
	AsteroidsAppearanceIncrease   float32 // ramp factor, not applied by the spawner
}

// CannonPeriod is the minimum time between shots while Shoot is held
func (s *Settings) CannonPeriod() float64 {
	return 1 / float64(s.CannonShootingFrequency)
}

// StrafeSpeed is the lateral displacement rate while Left or Right is held
func (s *Settings) StrafeSpeed() float32 {
	return s.EngineThrust / s.SpaceshipMass
}

// KindTable holds per-kind lookups indexed by core.Kind
type KindTable struct {
	Scale           [core.KindCount]float32
	CollisionRadius [core.KindCount]float32
	Points          [core.KindCount]int // meaningful for asteroid kinds only
}

// Config is the fully populated output of the settings loader
type Config struct {
	Settings Settings
	Kinds    KindTable
}
