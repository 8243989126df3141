package parameter

import "time"

// Audio Hardware Settings
const (
	AudioSampleRate = 44100

	// AudioBufferDuration determines speaker latency
	AudioBufferDuration = 50 * time.Millisecond

	// MinSoundGap between two plays of the same effect; rapid fire collapses into one voice per gap
	MinSoundGap = 40 * time.Millisecond
)

// Laser Sound
const (
	LaserSoundDuration = 90 * time.Millisecond
	LaserSoundAttack   = 2 * time.Millisecond
	LaserSoundRelease  = 60 * time.Millisecond
	LaserSoundStartHz  = 1400.0
	LaserSoundEndHz    = 500.0
)

// Explosion Sound
const (
	ExplosionSoundDuration = 350 * time.Millisecond
	ExplosionSoundAttack   = 3 * time.Millisecond
	ExplosionSoundRelease  = 280 * time.Millisecond
	ExplosionRumbleHz      = 70.0
)

// Defeat Sound
const (
	DefeatSoundNoteDuration = 220 * time.Millisecond
	DefeatSoundAttack       = 5 * time.Millisecond
	DefeatSoundRelease      = 120 * time.Millisecond
)
