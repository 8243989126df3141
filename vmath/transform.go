package vmath

import "github.com/go-gl/mathgl/mgl32"

// axisEpsilon is the squared length below which a rotation axis is treated as absent
const axisEpsilon = 1e-12

// ComposeTRS builds translate(pos) * rotate(angleDeg, axis) * scale(s)
// The axis is normalized here; a zero axis drops the rotation term
func ComposeTRS(pos mgl32.Vec3, angleDeg float32, axis mgl32.Vec3, s float32) mgl32.Mat4 {
	m := mgl32.Translate3D(pos[0], pos[1], pos[2])
	if axis.Dot(axis) > axisEpsilon && angleDeg != 0 {
		m = m.Mul4(mgl32.HomogRotate3D(mgl32.DegToRad(angleDeg), axis.Normalize()))
	}
	return m.Mul4(mgl32.Scale3D(s, s, s))
}

// ComposeTS builds translate(pos) * scale(s), used for debug bounds
func ComposeTS(pos mgl32.Vec3, s float32) mgl32.Mat4 {
	return mgl32.Translate3D(pos[0], pos[1], pos[2]).Mul4(mgl32.Scale3D(s, s, s))
}
