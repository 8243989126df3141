package system

import (
	"github.com/go-gl/mathgl/mgl32"
	"go.uber.org/zap"

	"github.com/lixenwraith/spacegame/component"
	"github.com/lixenwraith/spacegame/core"
	"github.com/lixenwraith/spacegame/engine"
	"github.com/lixenwraith/spacegame/event"
	"github.com/lixenwraith/spacegame/input"
	"github.com/lixenwraith/spacegame/parameter"
	"github.com/lixenwraith/spacegame/status"
	"github.com/lixenwraith/spacegame/vmath"
)

// SpawnSystem owns the asteroid timer and the laser cannon
// Asteroids appear at a fixed cadence ahead of the player; lasers fire while Shoot is held
type SpawnSystem struct {
	world  *engine.World
	input  Input
	rng    *vmath.FastRand
	logger *zap.Logger

	asteroidTimer float64
	laserCooldown float64

	statSpawned *int64
	statFired   *int64
}

func NewSpawnSystem(world *engine.World, in Input, rng *vmath.FastRand, logger *zap.Logger) *SpawnSystem {
	if in == nil {
		in = NoInput{}
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	s := &SpawnSystem{
		world:  world,
		input:  in,
		rng:    rng,
		logger: logger.Named("spawn"),
	}
	if m := world.Resources.Metrics; m != nil {
		s.statSpawned = m.Ints.Get(status.MetricAsteroidsSpawn)
		s.statFired = m.Ints.Get(status.MetricLasersFired)
	}

	settings := &world.Resources.Config.Settings
	s.logger.Info("asteroid appearance ramp inactive, spawning at fixed cadence",
		zap.Float32("appearance_frequency", settings.AsteroidsAppearanceFrequency),
		zap.Float32("appearance_increase", settings.AsteroidsAppearanceIncrease),
		zap.Float64("interval_sec", parameter.AsteroidSpawnInterval),
	)

	s.Init()
	return s
}

func (s *SpawnSystem) Init() {
	s.asteroidTimer = 0
	s.laserCooldown = 0
}

func (s *SpawnSystem) Name() string { return "spawn" }

func (s *SpawnSystem) Priority() int { return parameter.PrioritySpawn }

// Timers exposes the asteroid timer and the remaining cannon cooldown
func (s *SpawnSystem) Timers() (asteroid, cooldown float64) {
	return s.asteroidTimer, s.laserCooldown
}

func (s *SpawnSystem) Update(dt float64) error {
	s.asteroidTimer += dt
	if s.asteroidTimer >= parameter.AsteroidSpawnInterval {
		if _, err := s.SpawnAsteroid(); err != nil {
			return err
		}
		s.asteroidTimer = 0
	}

	if !s.input.IsKeyDown(input.KeyShoot) {
		s.laserCooldown = 0
		return nil
	}

	if s.laserCooldown <= 0 {
		if _, err := s.FireLaser(); err != nil {
			return err
		}
		s.laserCooldown = max(s.laserCooldown, 0) + s.world.Resources.Config.Settings.CannonPeriod()
	}
	s.laserCooldown -= dt
	return nil
}

// SpawnAsteroid places one asteroid of a random class ahead of the player
func (s *SpawnSystem) SpawnAsteroid() (core.Entity, error) {
	player, err := s.world.Kinematic(s.world.Resources.Player.Entity)
	if err != nil {
		return core.NoEntity, err
	}
	origin := player.Position

	kind := core.AsteroidKinds[s.rng.Intn(len(core.AsteroidKinds))]
	pos := mgl32.Vec3{
		origin.X() + s.rng.Range(-parameter.AsteroidSpawnSpreadX, parameter.AsteroidSpawnSpreadX),
		0,
		origin.Z() + s.rng.Range(parameter.AsteroidSpawnNearZ, parameter.AsteroidSpawnFarZ),
	}
	axis := s.rng.Vec3(-1, 1)
	spin := s.rng.Range(parameter.AsteroidSpinMin, parameter.AsteroidSpinMax)

	e := s.world.Spawn(kind)
	kc, err := s.world.Kinematic(e)
	if err != nil {
		return core.NoEntity, err
	}
	*kc = component.KinematicComponent{
		Position:         pos,
		RotationAxis:     axis,
		RotationVelocity: spin,
		Kind:             kind,
	}

	if s.statSpawned != nil {
		*s.statSpawned++
	}
	s.world.PushEvent(event.EventAsteroidSpawned, &event.SpawnPayload{Entity: e, Kind: kind, Position: pos})
	s.logger.Debug("asteroid spawned",
		zap.Uint64("entity", uint64(e)),
		zap.Stringer("kind", kind),
		zap.Float32("x", pos.X()),
		zap.Float32("z", pos.Z()),
	)
	return e, nil
}

// FireLaser spawns one laser at the player position travelling along +Z
func (s *SpawnSystem) FireLaser() (core.Entity, error) {
	player, err := s.world.Kinematic(s.world.Resources.Player.Entity)
	if err != nil {
		return core.NoEntity, err
	}
	pos := player.Position

	e := s.world.Spawn(core.KindLaserBeam)
	kc, err := s.world.Kinematic(e)
	if err != nil {
		return core.NoEntity, err
	}
	kc.Position = pos
	kc.Velocity = parameter.LaserAxis.Mul(s.world.Resources.Config.Settings.CannonShootingVelocity)
	kc.RotationAxis = parameter.LaserAxis

	if s.statFired != nil {
		*s.statFired++
	}
	s.world.PushEvent(event.EventLaserFired, &event.SpawnPayload{Entity: e, Kind: core.KindLaserBeam, Position: pos})
	return e, nil
}
