package system

import (
	"github.com/lixenwraith/spacegame/core"
	"github.com/lixenwraith/spacegame/engine"
	"github.com/lixenwraith/spacegame/parameter"
	"github.com/lixenwraith/spacegame/physics"
)

// PhysicsSystem integrates every body and refreshes its derived transforms
// The player is driven directly by forward speed and strafe input; all other kinds integrate freely
type PhysicsSystem struct {
	world *engine.World
	input Input
}

func NewPhysicsSystem(world *engine.World, in Input) *PhysicsSystem {
	if in == nil {
		in = NoInput{}
	}
	return &PhysicsSystem{world: world, input: in}
}

func (s *PhysicsSystem) Init() {}

func (s *PhysicsSystem) Name() string { return "physics" }

func (s *PhysicsSystem) Priority() int { return parameter.PriorityPhysics }

func (s *PhysicsSystem) Update(dt float64) error {
	cfg := s.world.Resources.Config
	step := float32(dt)
	strafe := strafeAxis(s.input)

	for e := range s.world.Query().With(s.world.Kinematics).Each() {
		kc, err := s.world.Kinematic(e)
		if err != nil {
			return err
		}

		if kc.Kind == core.KindPlayer {
			physics.AdvancePlayer(kc, &cfg.Settings, strafe, step)
		} else {
			physics.Integrate(kc, step)
		}
		physics.UpdateTransforms(kc, &cfg.Kinds)
	}
	return nil
}
