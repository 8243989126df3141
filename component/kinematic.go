package component

import (
	"github.com/go-gl/mathgl/mgl32"

	"github.com/lixenwraith/spacegame/core"
)

// KinematicComponent is the per-entity physical state
// World and Bounds are derived each physics pass from the other fields and the kind tables, never authoritative
type KinematicComponent struct {
	Position     mgl32.Vec3
	Velocity     mgl32.Vec3 // units per second
	Acceleration mgl32.Vec3 // units per second squared
	RotationAxis mgl32.Vec3 // unnormalized; normalized at compose time

	RotationAngle    float32 // degrees, kept in [0, 360)
	RotationVelocity float32 // degrees per second

	Kind core.Kind

	World  mgl32.Mat4 // translate * rotate * scale(scale[kind])
	Bounds mgl32.Mat4 // translate * scale(collisionRadius[kind]), debug sphere
}
