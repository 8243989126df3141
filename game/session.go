package game

import (
	"fmt"
	"iter"
	"math"

	"go.uber.org/zap"

	"github.com/lixenwraith/spacegame/component"
	"github.com/lixenwraith/spacegame/core"
	"github.com/lixenwraith/spacegame/engine"
	"github.com/lixenwraith/spacegame/event"
	"github.com/lixenwraith/spacegame/parameter"
	"github.com/lixenwraith/spacegame/physics"
	"github.com/lixenwraith/spacegame/status"
	"github.com/lixenwraith/spacegame/system"
	"github.com/lixenwraith/spacegame/vmath"
)

// Session is one play-through: the world, its systems and the Playing/EndGame state machine
// Not safe for concurrent use; the frontend drives it from a single goroutine
type Session struct {
	world  *engine.World
	queue  *event.EventQueue
	spawn  *system.SpawnSystem
	logger *zap.Logger

	frame int64
	state State

	metrics      *status.Registry
	statFrame    *int64
	statEntities *int64
	statRocks    *int64
	statLasers   *int64
	statFrameMs  *float64
}

// NewSession builds a session from a fully populated config and starts it in Playing
func NewSession(cfg *parameter.Config, opts ...Option) (*Session, error) {
	if cfg == nil {
		return nil, fmt.Errorf("new session: %w", parameter.ErrConfigMissing)
	}

	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	s := &Session{
		world:   engine.NewWorld(),
		queue:   event.NewEventQueue(),
		logger:  o.logger,
		metrics: status.NewRegistry(),
	}
	s.statFrame = s.metrics.Ints.Get(status.MetricFrame)
	s.statEntities = s.metrics.Ints.Get(status.MetricEntities)
	s.statRocks = s.metrics.Ints.Get(status.MetricAsteroids)
	s.statLasers = s.metrics.Ints.Get(status.MetricLasers)
	s.statFrameMs = s.metrics.Floats.Get(status.MetricFrameTimeMillis)

	s.world.Resources.Config = cfg
	s.world.Resources.Metrics = s.metrics
	s.world.SetEventMetadata(s.queue, &s.frame)
	for k := core.Kind(0); k < core.KindCount; k++ {
		s.world.SetAppearance(k, o.appearance[k])
	}

	s.spawn = system.NewSpawnSystem(s.world, o.input, vmath.NewFastRand(o.seed), o.logger)
	s.world.AddSystem(s.spawn)
	s.world.AddSystem(system.NewPhysicsSystem(s.world, o.input))
	s.world.AddSystem(system.NewCollisionSystem(s.world, o.logger))

	s.logger.Info("session created", zap.Uint64("seed", o.seed))
	s.Reset()
	return s, nil
}

// Reset clears the world and starts a fresh round with the player at the origin and one asteroid ahead
// Calling it twice in a row leaves the same observable state as calling it once
func (s *Session) Reset() {
	s.world.Clear()
	s.queue.Clear()
	s.world.Resources.ResetSession()
	s.world.InitSystems()
	s.frame = 0

	player := s.world.Spawn(core.KindPlayer)
	if kc, err := s.world.Kinematic(player); err == nil {
		kc.Position = parameter.PlayerOrigin
	}
	s.world.Resources.Player.Entity = player
	s.world.PushEvent(event.EventSessionReset, nil)

	if _, err := s.spawn.SpawnAsteroid(); err != nil {
		s.logger.Error("reset spawn failed", zap.Error(err))
	}

	s.refreshTransforms()
	s.state = StatePlaying
	s.updateMetrics(0)
	s.logger.Info("session reset", zap.Uint64("player", uint64(player)))
}

// FrameStep advances the simulation by dt seconds
// While in EndGame the world is frozen and the call is a no-op
func (s *Session) FrameStep(dt float64) error {
	if dt < 0 || math.IsNaN(dt) || math.IsInf(dt, 0) {
		return fmt.Errorf("frame step %v: %w", dt, ErrDegenerateInput)
	}
	if s.state == StateEndGame {
		return nil
	}

	s.frame++
	if err := s.world.Update(dt); err != nil {
		return fmt.Errorf("frame %d: %w", s.frame, err)
	}

	if d := s.world.Resources.Defeat; d != nil {
		s.end(d)
	}
	s.updateMetrics(dt)
	return nil
}

// Defeat ends the round on an external signal such as the quit key
func (s *Session) Defeat() {
	if s.state != StatePlaying {
		return
	}
	s.world.Resources.RequestDefeat(&event.DefeatPayload{Cause: event.DefeatSignal})
	s.end(s.world.Resources.Defeat)
}

func (s *Session) end(d *event.DefeatPayload) {
	d.Score = s.world.Resources.Score
	s.state = StateEndGame
	s.world.PushEvent(event.EventPlayerDefeated, d)
	s.logger.Info("session ended",
		zap.Int64("frame", s.frame),
		zap.Int("score", d.Score),
		zap.Uint8("cause", uint8(d.Cause)),
		zap.Uint64("asteroid", uint64(d.Asteroid)),
	)
}

// Entities yields a copy of every live entity's kinematic state
func (s *Session) Entities() iter.Seq2[core.Entity, component.KinematicComponent] {
	return func(yield func(core.Entity, component.KinematicComponent) bool) {
		for e := range s.world.Query().With(s.world.Kinematics).Each() {
			kc, ok := s.world.Kinematics.Get(e)
			if !ok {
				continue
			}
			if !yield(e, kc) {
				return
			}
		}
	}
}

// Appearance returns the asset handles of e
func (s *Session) Appearance(e core.Entity) (component.AppearanceComponent, bool) {
	return s.world.Appearances.Get(e)
}

// Events drains the events emitted since the previous call
func (s *Session) Events() []event.GameEvent {
	return s.queue.Consume()
}

func (s *Session) Score() int { return s.world.Resources.Score }

func (s *Session) State() State { return s.state }

func (s *Session) Player() core.Entity { return s.world.Resources.Player.Entity }

func (s *Session) Frame() int64 { return s.frame }

func (s *Session) Metrics() *status.Registry { return s.metrics }

// refreshTransforms derives World and Bounds for entities that have not been through a physics pass yet
func (s *Session) refreshTransforms() {
	kinds := &s.world.Resources.Config.Kinds
	for e := range s.world.Query().With(s.world.Kinematics).Each() {
		if kc, ok := s.world.Kinematics.Ptr(e); ok {
			physics.UpdateTransforms(kc, kinds)
		}
	}
}

func (s *Session) updateMetrics(dt float64) {
	var rocks, lasers int64
	for _, kc := range s.Entities() {
		switch {
		case kc.Kind.IsAsteroid():
			rocks++
		case kc.Kind == core.KindLaserBeam:
			lasers++
		}
	}
	*s.statFrame = s.frame
	*s.statEntities = int64(s.world.Count())
	*s.statRocks = rocks
	*s.statLasers = lasers
	*s.statFrameMs = dt * 1000
}
