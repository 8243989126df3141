package render

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/spacegame/core"
)

var (
	RgbBackground = tcell.NewRGBColor(26, 27, 38)    // Tokyo Night background
	RgbStatusBar  = tcell.NewRGBColor(255, 255, 255) // White
	RgbStatusDim  = tcell.NewRGBColor(180, 180, 180) // Brighter gray
	RgbStarfield  = tcell.NewRGBColor(60, 62, 80)    // Faint depth markers
	RgbGameOverBg = tcell.NewRGBColor(180, 50, 50)   // Dark Red

	RgbPlayer     = tcell.NewRGBColor(100, 150, 255) // Normal Blue
	RgbLaser      = tcell.NewRGBColor(50, 255, 50)   // Bright Green
	RgbRockFar    = tcell.NewRGBColor(110, 100, 90)  // Dim rock
	RgbRockNear   = tcell.NewRGBColor(230, 190, 140) // Lit rock
	RgbRockDanger = tcell.NewRGBColor(255, 80, 80)   // Normal Red, on the player's lane
)

// kindGlyph is the rune drawn for each kind, larger asteroids get heavier glyphs
var kindGlyph = [core.KindCount]rune{
	core.KindAsteroidFragment: '.',
	core.KindAsteroidSmall:    'o',
	core.KindAsteroidMedium:   'O',
	core.KindAsteroidBig:      '@',
	core.KindLaserBeam:        '|',
	core.KindPlayer:           'A',
}

// lerpColor blends two colors, t in [0, 1]
func lerpColor(a, b tcell.Color, t float32) tcell.Color {
	if t <= 0 {
		return a
	}
	if t >= 1 {
		return b
	}
	ar, ag, ab := a.RGB()
	br, bg, bb := b.RGB()
	mix := func(x, y int32) int32 { return x + int32(float32(y-x)*t) }
	return tcell.NewRGBColor(mix(ar, br), mix(ag, bg), mix(ab, bb))
}
