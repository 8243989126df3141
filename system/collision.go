package system

import (
	"go.uber.org/zap"

	"github.com/lixenwraith/spacegame/core"
	"github.com/lixenwraith/spacegame/engine"
	"github.com/lixenwraith/spacegame/event"
	"github.com/lixenwraith/spacegame/parameter"
	"github.com/lixenwraith/spacegame/physics"
	"github.com/lixenwraith/spacegame/status"
)

// hitPair is an asteroid-laser contact awaiting resolution
type hitPair struct {
	asteroid core.Entity
	laser    core.Entity
}

// CollisionSystem tests every body pair and resolves scoring hits after the pass
// Destruction is deferred so the pass never mutates the set it walks
type CollisionSystem struct {
	world  *engine.World
	logger *zap.Logger

	// Reused across frames
	entities []core.Entity
	hits     []hitPair

	statHits *int64
}

func NewCollisionSystem(world *engine.World, logger *zap.Logger) *CollisionSystem {
	if logger == nil {
		logger = zap.NewNop()
	}
	s := &CollisionSystem{
		world:  world,
		logger: logger.Named("collision"),
	}
	if m := world.Resources.Metrics; m != nil {
		s.statHits = m.Ints.Get(status.MetricHits)
	}
	return s
}

func (s *CollisionSystem) Init() {
	s.entities = s.entities[:0]
	s.hits = s.hits[:0]
}

func (s *CollisionSystem) Name() string { return "collision" }

func (s *CollisionSystem) Priority() int { return parameter.PriorityCollision }

func (s *CollisionSystem) Update(dt float64) error {
	kinds := &s.world.Resources.Config.Kinds

	s.entities = s.entities[:0]
	for e := range s.world.Query().With(s.world.Kinematics).Each() {
		s.entities = append(s.entities, e)
	}
	s.hits = s.hits[:0]

	for i := 0; i < len(s.entities); i++ {
		a, ok := s.world.Kinematics.Get(s.entities[i])
		if !ok {
			continue
		}
		for j := i + 1; j < len(s.entities); j++ {
			b, ok := s.world.Kinematics.Get(s.entities[j])
			if !ok {
				continue
			}

			class := physics.Classify(a.Kind, b.Kind)
			if class == physics.PairIgnore || !physics.HasCollision(&a, &b, kinds) {
				continue
			}

			asteroid, other := s.entities[i], s.entities[j]
			if !a.Kind.IsAsteroid() {
				asteroid, other = other, asteroid
			}

			switch class {
			case physics.PairCandidate:
				s.hits = append(s.hits, hitPair{asteroid: asteroid, laser: other})
			case physics.PairDefeat:
				s.world.Resources.RequestDefeat(&event.DefeatPayload{
					Cause:    event.DefeatCollision,
					Asteroid: asteroid,
				})
			}
		}
	}

	s.resolve(kinds)
	return nil
}

// resolve applies candidate hits newest first
// An asteroid already destroyed by an earlier pair leaves the laser alive and scores nothing
func (s *CollisionSystem) resolve(kinds *parameter.KindTable) {
	for i := len(s.hits) - 1; i >= 0; i-- {
		hit := s.hits[i]

		kc, ok := s.world.Kinematics.Get(hit.asteroid)
		if !ok || !s.world.DestroyEntity(hit.asteroid) {
			continue
		}
		s.world.DestroyEntity(hit.laser)

		points := kinds.Points[kc.Kind]
		score := s.world.Resources.AddScore(points)
		if s.statHits != nil {
			*s.statHits++
		}

		s.world.PushEvent(event.EventAsteroidDestroyed, &event.AsteroidDestroyedPayload{
			Asteroid: hit.asteroid,
			Laser:    hit.laser,
			Kind:     kc.Kind,
			Position: kc.Position,
			Points:   points,
		})
		s.logger.Debug("asteroid destroyed",
			zap.Uint64("entity", uint64(hit.asteroid)),
			zap.Stringer("kind", kc.Kind),
			zap.Int("points", points),
			zap.Int("score", score),
		)
	}
}
