package physics

import (
	"github.com/go-gl/mathgl/mgl32"

	"github.com/lixenwraith/spacegame/component"
	"github.com/lixenwraith/spacegame/parameter"
	"github.com/lixenwraith/spacegame/vmath"
)

// Integrate advances a non-player body by dt seconds using semi-implicit Euler
// Velocity is updated before position; the angle is wrapped into [0, 360)
func Integrate(kc *component.KinematicComponent, dt float32) {
	kc.Velocity = kc.Velocity.Add(kc.Acceleration.Mul(dt))
	kc.Position = kc.Position.Add(kc.Velocity.Mul(dt))
	kc.RotationAngle = vmath.WrapDegrees(kc.RotationAngle + kc.RotationVelocity*dt)
}

// AdvancePlayer moves the ship forward at a constant speed plus a lateral strafe
// strafe is -1 (right), 0 or +1 (left); the ship never rotates
func AdvancePlayer(kc *component.KinematicComponent, s *parameter.Settings, strafe float32, dt float32) {
	step := parameter.CameraForward.Mul(s.SpaceshipForwardVelocity * dt)
	if strafe != 0 {
		step = step.Add(parameter.StrafeLeft.Mul(strafe * s.StrafeSpeed() * dt))
	}
	kc.Position = kc.Position.Add(step)
}

// UpdateTransforms recomputes the derived World and Bounds matrices from the body state and kind tables
func UpdateTransforms(kc *component.KinematicComponent, kinds *parameter.KindTable) {
	if !kc.Kind.Valid() {
		kc.World = mgl32.Translate3D(kc.Position[0], kc.Position[1], kc.Position[2])
		kc.Bounds = kc.World
		return
	}
	kc.World = vmath.ComposeTRS(kc.Position, kc.RotationAngle, kc.RotationAxis, kinds.Scale[kc.Kind])
	kc.Bounds = vmath.ComposeTS(kc.Position, kinds.CollisionRadius[kc.Kind])
}
