package engine

import (
	"github.com/lixenwraith/spacegame/core"
	"github.com/lixenwraith/spacegame/event"
	"github.com/lixenwraith/spacegame/parameter"
	"github.com/lixenwraith/spacegame/status"
)

// Resources holds the per-session singletons systems share through the world
type Resources struct {
	Config  *parameter.Config
	Metrics *status.Registry

	Player PlayerResource
	Score  int

	// Defeat is set by whichever system or signal ends the session; the session applies it at frame end
	Defeat *event.DefeatPayload
}

// PlayerResource tracks the controlled ship
type PlayerResource struct {
	Entity core.Entity
}

// AddScore credits points and returns the new total
func (r *Resources) AddScore(points int) int {
	if points > 0 {
		r.Score += points
	}
	return r.Score
}

// RequestDefeat records the first defeat of the frame; later requests are ignored
func (r *Resources) RequestDefeat(p *event.DefeatPayload) {
	if r.Defeat == nil {
		r.Defeat = p
	}
}

// ResetSession zeroes the mutable session fields, keeping config and metrics
func (r *Resources) ResetSession() {
	r.Player = PlayerResource{}
	r.Score = 0
	r.Defeat = nil
}
