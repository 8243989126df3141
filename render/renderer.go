package render

import (
	"fmt"
	"iter"

	"github.com/gdamore/tcell/v2"
	"github.com/go-gl/mathgl/mgl32"

	"github.com/lixenwraith/spacegame/component"
	"github.com/lixenwraith/spacegame/core"
	"github.com/lixenwraith/spacegame/game"
	"github.com/lixenwraith/spacegame/status"
)

// Canvas is the cell surface the renderer draws on; tcell.Screen satisfies it
type Canvas interface {
	SetContent(x, y int, primary rune, combining []rune, style tcell.Style)
	Size() (width, height int)
}

// Scene is the read-only session view a frame is drawn from
type Scene interface {
	Entities() iter.Seq2[core.Entity, component.KinematicComponent]
	Player() core.Entity
	Score() int
	State() game.State
	Metrics() *status.Registry
}

// hudRows is the number of rows reserved for the status bar at the bottom
const hudRows = 1

// TerminalRenderer draws a scene into a terminal grid
type TerminalRenderer struct {
	canvas Canvas
	proj   Projection
	muted  bool
}

// NewTerminalRenderer creates a renderer over canvas
func NewTerminalRenderer(canvas Canvas, proj Projection) *TerminalRenderer {
	return &TerminalRenderer{canvas: canvas, proj: proj}
}

// SetMuted toggles the mute marker in the status bar
func (r *TerminalRenderer) SetMuted(muted bool) {
	r.muted = muted
}

// RenderFrame draws the arena, the status bar and the end-game banner when applicable
func (r *TerminalRenderer) RenderFrame(scene Scene) {
	width, height := r.canvas.Size()
	defaultStyle := tcell.StyleDefault.Background(RgbBackground)
	r.clear(width, height, defaultStyle)

	arenaH := height - hudRows
	if arenaH <= 0 {
		return
	}

	anchor, hasPlayer := r.anchor(scene)
	r.drawStarfield(anchor, width, arenaH, defaultStyle)

	var player *component.KinematicComponent
	for e, kc := range scene.Entities() {
		if e == scene.Player() {
			player = &kc
			continue
		}
		r.drawEntity(&kc, anchor, width, arenaH, defaultStyle)
	}
	// Player drawn last so it stays visible under overlapping bodies
	if hasPlayer && player != nil {
		r.drawEntity(player, anchor, width, arenaH, defaultStyle)
	}

	r.drawStatusBar(scene, width, height-1, defaultStyle)
	if scene.State() == game.StateEndGame {
		r.drawGameOver(scene.Score(), width, arenaH, defaultStyle)
	}
}

func (r *TerminalRenderer) anchor(scene Scene) (mgl32.Vec3, bool) {
	for e, kc := range scene.Entities() {
		if e == scene.Player() {
			return kc.Position, true
		}
	}
	return mgl32.Vec3{}, false
}

func (r *TerminalRenderer) clear(width, height int, style tcell.Style) {
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			r.canvas.SetContent(x, y, ' ', nil, style)
		}
	}
}

// drawStarfield scrolls faint markers every 10 world units of depth to convey forward motion
func (r *TerminalRenderer) drawStarfield(anchor mgl32.Vec3, width, height int, style tcell.Style) {
	starStyle := style.Foreground(RgbStarfield)
	start := float32(int(anchor.Z()/10)) * 10
	for z := start; z <= anchor.Z()+r.proj.Ahead; z += 10 {
		for _, x := range []float32{-r.proj.HalfWidth + 1, r.proj.HalfWidth - 1} {
			if sx, sy, ok := r.proj.Project(mgl32.Vec3{anchor.X() + x, 0, z}, anchor, width, height); ok {
				r.canvas.SetContent(sx, sy, ':', nil, starStyle)
			}
		}
	}
}

func (r *TerminalRenderer) drawEntity(kc *component.KinematicComponent, anchor mgl32.Vec3, width, height int, style tcell.Style) {
	if !kc.Kind.Valid() {
		return
	}
	x, y, ok := r.proj.Project(kc.Position, anchor, width, height)
	if !ok {
		return
	}

	var fg tcell.Color
	switch {
	case kc.Kind == core.KindPlayer:
		fg = RgbPlayer
	case kc.Kind == core.KindLaserBeam:
		fg = RgbLaser
	default:
		fg = lerpColor(RgbRockFar, RgbRockNear, r.proj.Depth(kc.Position, anchor))
		if lane := anchor.X() - kc.Position.X(); lane > -2 && lane < 2 {
			fg = RgbRockDanger
		}
	}
	r.canvas.SetContent(x, y, kindGlyph[kc.Kind], nil, style.Foreground(fg))
}

func (r *TerminalRenderer) drawStatusBar(scene Scene, width, y int, style tcell.Style) {
	m := scene.Metrics()
	text := fmt.Sprintf(" SCORE %d  ROCKS %d  LASERS %d  FRAME %d ",
		scene.Score(),
		m.Ints.Value(status.MetricAsteroids),
		m.Ints.Value(status.MetricLasers),
		m.Ints.Value(status.MetricFrame),
	)
	if r.muted {
		text += " MUTED "
	}
	r.drawText(0, y, width, text, style.Foreground(RgbStatusBar))

	hint := " <-/-> strafe  space fire  q quit "
	if len(text)+len(hint) <= width {
		r.drawText(width-len(hint), y, width, hint, style.Foreground(RgbStatusDim))
	}
}

func (r *TerminalRenderer) drawGameOver(score, width, height int, style tcell.Style) {
	lines := []string{
		" GAME OVER ",
		fmt.Sprintf(" FINAL SCORE %d ", score),
		" r restart   q quit ",
	}
	banner := style.Foreground(RgbStatusBar).Background(RgbGameOverBg)
	top := height/2 - len(lines)/2
	for i, line := range lines {
		x := (width - len(line)) / 2
		r.drawText(max(x, 0), top+i, width, line, banner)
	}
}

func (r *TerminalRenderer) drawText(x, y, width int, text string, style tcell.Style) {
	for i, ch := range []rune(text) {
		if x+i >= width {
			return
		}
		r.canvas.SetContent(x+i, y, ch, nil, style)
	}
}
