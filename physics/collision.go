package physics

import (
	"github.com/lixenwraith/spacegame/component"
	"github.com/lixenwraith/spacegame/core"
	"github.com/lixenwraith/spacegame/parameter"
)

// PairClass is the outcome of classifying two overlapping kinds
type PairClass uint8

const (
	PairIgnore    PairClass = iota // no gameplay effect
	PairCandidate                  // asteroid hit by a laser, resolved after the pass
	PairDefeat                     // asteroid touched the player
)

func (c PairClass) String() string {
	switch c {
	case PairIgnore:
		return "ignore"
	case PairCandidate:
		return "candidate"
	case PairDefeat:
		return "defeat"
	default:
		return "unknown"
	}
}

// Classify maps an unordered kind pair to its collision outcome
// Classify(a, b) == Classify(b, a) for every pair
func Classify(a, b core.Kind) PairClass {
	switch {
	case a.IsAsteroid() && b == core.KindLaserBeam, b.IsAsteroid() && a == core.KindLaserBeam:
		return PairCandidate
	case a.IsAsteroid() && b == core.KindPlayer, b.IsAsteroid() && a == core.KindPlayer:
		return PairDefeat
	default:
		return PairIgnore
	}
}

// HasCollision reports whether the bounding spheres of a and b touch or overlap
// Radii come from the kind table; touching spheres count as colliding
func HasCollision(a, b *component.KinematicComponent, kinds *parameter.KindTable) bool {
	if !a.Kind.Valid() || !b.Kind.Valid() {
		return false
	}
	reach := kinds.CollisionRadius[a.Kind] + kinds.CollisionRadius[b.Kind]
	d := a.Position.Sub(b.Position)
	return d.Dot(d) <= reach*reach
}
