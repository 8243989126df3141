package audio

// SoundType identifies a synthesized effect
type SoundType int

const (
	SoundLaser SoundType = iota
	SoundExplosion
	SoundDefeat

	soundTypeCount
)

func (s SoundType) String() string {
	switch s {
	case SoundLaser:
		return "laser"
	case SoundExplosion:
		return "explosion"
	case SoundDefeat:
		return "defeat"
	default:
		return "unknown"
	}
}
