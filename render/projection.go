package render

import "github.com/go-gl/mathgl/mgl32"

// Projection maps the arena onto a top-down terminal grid following the player
// World -X is screen right, matching the chase camera; depth ahead of the player runs up the screen
type Projection struct {
	HalfWidth float32 // world units visible either side of the player
	Behind    float32 // world units visible behind the player
	Ahead     float32 // world units visible ahead of the player
}

// DefaultProjection covers the full asteroid spawn window
func DefaultProjection() Projection {
	return Projection{HalfWidth: 25, Behind: 5, Ahead: 75}
}

// Project returns the cell for pos relative to the player anchor inside a w x h viewport
func (p Projection) Project(pos, anchor mgl32.Vec3, w, h int) (x, y int, ok bool) {
	if w <= 0 || h <= 0 {
		return 0, 0, false
	}
	dx := anchor.X() - pos.X()
	dz := pos.Z() - anchor.Z()
	if dx < -p.HalfWidth || dx > p.HalfWidth || dz < -p.Behind || dz > p.Ahead {
		return 0, 0, false
	}

	u := (dx + p.HalfWidth) / (2 * p.HalfWidth)
	v := (dz + p.Behind) / (p.Behind + p.Ahead)
	x = min(int(u*float32(w)), w-1)
	y = h - 1 - min(int(v*float32(h)), h-1)
	return x, y, true
}

// Depth returns 0 at the far edge and 1 at the player
func (p Projection) Depth(pos, anchor mgl32.Vec3) float32 {
	dz := pos.Z() - anchor.Z()
	return 1 - max(0, min(1, dz/p.Ahead))
}
