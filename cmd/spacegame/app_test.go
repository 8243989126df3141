package main

import (
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/lixenwraith/spacegame/audio"
	"github.com/lixenwraith/spacegame/game"
	"github.com/lixenwraith/spacegame/input"
	"github.com/lixenwraith/spacegame/parameter"
)

func newTestApp(t *testing.T) *app {
	t.Helper()

	screen := tcell.NewSimulationScreen("UTF-8")
	require.NoError(t, screen.Init())
	screen.SetSize(80, 24)
	t.Cleanup(screen.Fini)

	hold := input.NewHoldTracker()
	session, err := game.NewSession(parameter.Reference(), game.WithSeed(7), game.WithInput(hold))
	require.NoError(t, err)

	// Never initialized, so effects are dropped
	sound := audio.NewSoundManager(audio.DefaultAudioConfig(), zap.NewNop())

	a := newApp(screen, session, hold, sound, zap.NewNop())
	a.lastFrame = time.Now()
	return a
}

func key(k tcell.Key) *tcell.EventKey { return tcell.NewEventKey(k, 0, tcell.ModNone) }

func runeKey(r rune) *tcell.EventKey { return tcell.NewEventKey(tcell.KeyRune, r, tcell.ModNone) }

func TestApp_QuitEndsRoundThenExits(t *testing.T) {
	a := newTestApp(t)

	assert.False(t, a.handleEvent(runeKey('q')))
	assert.Equal(t, game.StateEndGame, a.session.State())

	assert.True(t, a.handleEvent(key(tcell.KeyEscape)))
}

func TestApp_RestartResetsSessionAndHolds(t *testing.T) {
	a := newTestApp(t)

	a.handleEvent(key(tcell.KeyLeft))
	a.handleEvent(runeKey('q'))
	require.Equal(t, game.StateEndGame, a.session.State())

	assert.False(t, a.handleEvent(runeKey('R')))
	assert.Equal(t, game.StatePlaying, a.session.State())
	assert.Equal(t, 0, a.session.Score())
	assert.False(t, a.hold.IsKeyDown(input.KeyLeft))
}

func TestApp_HeldKeysReachTracker(t *testing.T) {
	a := newTestApp(t)

	a.handleEvent(key(tcell.KeyRight))
	a.handleEvent(runeKey(' '))

	assert.True(t, a.hold.IsKeyDown(input.KeyRight))
	assert.True(t, a.hold.IsKeyDown(input.KeyShoot))
	assert.False(t, a.hold.IsKeyDown(input.KeyLeft))
}

func TestApp_MuteToggles(t *testing.T) {
	a := newTestApp(t)

	a.handleEvent(runeKey('m'))
	assert.True(t, a.sound.IsMuted())
	a.handleEvent(runeKey('m'))
	assert.False(t, a.sound.IsMuted())
}

func TestApp_UnmappedKeyIgnored(t *testing.T) {
	a := newTestApp(t)
	assert.False(t, a.handleEvent(runeKey('z')))
	assert.Equal(t, game.StatePlaying, a.session.State())
}

func TestApp_StepAdvancesSessionWithCappedDelta(t *testing.T) {
	a := newTestApp(t)
	start := a.lastFrame

	require.NoError(t, a.step(start.Add(parameter.FrameUpdateInterval)))
	assert.Equal(t, int64(1), a.session.Frame())

	// A long stall still advances exactly one frame
	require.NoError(t, a.step(start.Add(10*time.Second)))
	assert.Equal(t, int64(2), a.session.Frame())
	assert.Equal(t, game.StatePlaying, a.session.State())
}

func TestApp_DrawShowsHUD(t *testing.T) {
	a := newTestApp(t)
	a.draw()

	screen := a.screen.(tcell.SimulationScreen)
	cells, width, height := screen.GetContents()
	require.Equal(t, 80*24, len(cells))

	var row []rune
	for x := 0; x < width; x++ {
		if r := cells[(height-1)*width+x].Runes; len(r) > 0 {
			row = append(row, r[0])
		}
	}
	assert.Contains(t, string(row), "SCORE 0")
}
