package physics

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"

	"github.com/lixenwraith/spacegame/component"
	"github.com/lixenwraith/spacegame/core"
	"github.com/lixenwraith/spacegame/parameter"
)

func TestIntegrateSemiImplicit(t *testing.T) {
	kc := component.KinematicComponent{
		Position:     mgl32.Vec3{1, 0, 0},
		Velocity:     mgl32.Vec3{0, 0, 2},
		Acceleration: mgl32.Vec3{0, 0, 10},
		Kind:         core.KindLaserBeam,
	}
	Integrate(&kc, 0.5)

	assert.InDelta(t, 7.0, kc.Velocity[2], 1e-5)
	assert.InDelta(t, 3.5, kc.Position[2], 1e-5)
	assert.InDelta(t, 1.0, kc.Position[0], 1e-5)
}

func TestRotationWrapMatchesFmod(t *testing.T) {
	kc := component.KinematicComponent{
		RotationAngle:    350,
		RotationVelocity: 30.5,
		Kind:             core.KindAsteroidBig,
	}
	Integrate(&kc, 1)
	assert.InDelta(t, math.Mod(350+30.5, 360), float64(kc.RotationAngle), 1e-3)

	// Many small steps accumulate without leaving the range
	expected := float64(kc.RotationAngle)
	for i := 0; i < 600; i++ {
		Integrate(&kc, 1.0/60)
		expected = math.Mod(expected+30.5/60, 360)
		assert.GreaterOrEqual(t, kc.RotationAngle, float32(0))
		assert.Less(t, kc.RotationAngle, float32(360))
	}
	assert.InDelta(t, expected, float64(kc.RotationAngle), 0.05)
}

func TestNegativeSpinWrapsUp(t *testing.T) {
	kc := component.KinematicComponent{RotationAngle: 5, RotationVelocity: -20}
	Integrate(&kc, 1)
	assert.InDelta(t, 345.0, kc.RotationAngle, 1e-4)
}

func TestAdvancePlayer(t *testing.T) {
	s := parameter.Reference().Settings
	kc := component.KinematicComponent{Kind: core.KindPlayer, RotationAngle: 0}

	AdvancePlayer(&kc, &s, 0, 0.5)
	assert.InDelta(t, s.SpaceshipForwardVelocity*0.5, kc.Position[2], 1e-5)
	assert.Zero(t, kc.Position[0])

	AdvancePlayer(&kc, &s, 1, 0.5)
	assert.InDelta(t, s.StrafeSpeed()*0.5, kc.Position[0], 1e-5)

	AdvancePlayer(&kc, &s, -1, 1)
	assert.InDelta(t, -s.StrafeSpeed()*0.5, kc.Position[0], 1e-4)
	assert.Zero(t, kc.RotationAngle)
}

func TestUpdateTransforms(t *testing.T) {
	kinds := parameter.Reference().Kinds
	kc := component.KinematicComponent{
		Position:      mgl32.Vec3{3, 4, 5},
		RotationAxis:  mgl32.Vec3{0, 0, 5},
		RotationAngle: 90,
		Kind:          core.KindAsteroidBig,
	}
	UpdateTransforms(&kc, &kinds)

	scale := kinds.Scale[core.KindAsteroidBig]
	// Translation lives in the last column
	assert.True(t, kc.World.Col(3).ApproxEqualThreshold(mgl32.Vec4{3, 4, 5, 1}, 1e-5))
	// Rotating +X by 90 degrees about +Z lands on +Y, then scaled
	x := kc.World.Mul4x1(mgl32.Vec4{1, 0, 0, 0})
	assert.InDelta(t, 0, x[0], 1e-4)
	assert.InDelta(t, scale, x[1], 1e-4)

	radius := kinds.CollisionRadius[core.KindAsteroidBig]
	assert.InDelta(t, radius, kc.Bounds.At(0, 0), 1e-6)
	assert.True(t, kc.Bounds.Col(3).ApproxEqualThreshold(mgl32.Vec4{3, 4, 5, 1}, 1e-5))
}

func TestUpdateTransformsZeroAxis(t *testing.T) {
	kinds := parameter.Reference().Kinds
	kc := component.KinematicComponent{RotationAngle: 45, Kind: core.KindLaserBeam}
	UpdateTransforms(&kc, &kinds)

	s := kinds.Scale[core.KindLaserBeam]
	assert.True(t, kc.World.ApproxEqualThreshold(mgl32.Scale3D(s, s, s), 1e-5))
}

func TestClassifySymmetricAndComplete(t *testing.T) {
	for a := core.Kind(0); a < core.KindCount; a++ {
		for b := core.Kind(0); b < core.KindCount; b++ {
			got := Classify(a, b)
			assert.Equal(t, got, Classify(b, a), "%s/%s", a, b)

			var want PairClass
			switch {
			case a.IsAsteroid() && b == core.KindLaserBeam, b.IsAsteroid() && a == core.KindLaserBeam:
				want = PairCandidate
			case a.IsAsteroid() && b == core.KindPlayer, b.IsAsteroid() && a == core.KindPlayer:
				want = PairDefeat
			}
			assert.Equal(t, want, got, "%s/%s", a, b)
		}
	}
	assert.Equal(t, PairIgnore, Classify(core.KindPlayer, core.KindLaserBeam))
	assert.Equal(t, PairIgnore, Classify(core.KindLaserBeam, core.KindLaserBeam))
	assert.Equal(t, PairIgnore, Classify(core.KindAsteroidBig, core.KindAsteroidSmall))
}

func TestHasCollisionSymmetric(t *testing.T) {
	kinds := parameter.Reference().Kinds
	big := component.KinematicComponent{Kind: core.KindAsteroidBig}
	laser := component.KinematicComponent{Kind: core.KindLaserBeam}

	reach := kinds.CollisionRadius[core.KindAsteroidBig] + kinds.CollisionRadius[core.KindLaserBeam]

	laser.Position = mgl32.Vec3{0, 0, reach}
	assert.True(t, HasCollision(&big, &laser, &kinds), "touching counts")
	assert.True(t, HasCollision(&laser, &big, &kinds))

	laser.Position = mgl32.Vec3{0, 0, reach + 0.01}
	assert.False(t, HasCollision(&big, &laser, &kinds))
	assert.False(t, HasCollision(&laser, &big, &kinds))
}
