package input

import (
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"

	"github.com/lixenwraith/spacegame/parameter"
)

func TestHoldTrackerFirstPressUsesRepeatDelay(t *testing.T) {
	h := NewHoldTracker()
	t0 := time.Unix(100, 0)

	h.Press(KeyShoot, t0)
	assert.True(t, h.IsKeyDown(KeyShoot))

	// Inside the initial auto-repeat gap the key still reads as held
	h.Advance(t0.Add(parameter.KeyRepeatDelay - time.Millisecond))
	assert.True(t, h.IsKeyDown(KeyShoot))

	h.Advance(t0.Add(parameter.KeyRepeatDelay + time.Millisecond))
	assert.False(t, h.IsKeyDown(KeyShoot))
}

func TestHoldTrackerRepeatsUseShortWindow(t *testing.T) {
	h := NewHoldTracker()
	t0 := time.Unix(100, 0)

	h.Press(KeyLeft, t0)
	h.Press(KeyLeft, t0.Add(400*time.Millisecond))
	h.Press(KeyLeft, t0.Add(430*time.Millisecond))
	assert.True(t, h.IsKeyDown(KeyLeft))

	h.Advance(t0.Add(430*time.Millisecond + parameter.KeyHoldWindow + time.Millisecond))
	assert.False(t, h.IsKeyDown(KeyLeft))

	// A fresh press after expiry starts a new hold
	h.Press(KeyLeft, t0.Add(2*time.Second))
	h.Advance(t0.Add(2*time.Second + parameter.KeyHoldWindow + time.Millisecond))
	assert.True(t, h.IsKeyDown(KeyLeft))
}

func TestHoldTrackerRelease(t *testing.T) {
	h := NewHoldTracker()
	h.Press(KeyRight, time.Unix(1, 0))
	h.Release(KeyRight)
	assert.False(t, h.IsKeyDown(KeyRight))
	assert.False(t, h.IsKeyDown(KeyCount))

	h.Press(KeyShoot, time.Unix(1, 0))
	h.Reset()
	assert.False(t, h.IsKeyDown(KeyShoot))
}

func TestKeyTableLookup(t *testing.T) {
	kt := DefaultKeyTable()

	k, ok := kt.Lookup(tcell.NewEventKey(tcell.KeyLeft, 0, tcell.ModNone))
	assert.True(t, ok)
	assert.Equal(t, KeyLeft, k)

	k, ok = kt.Lookup(tcell.NewEventKey(tcell.KeyRune, 'D', tcell.ModShift))
	assert.True(t, ok)
	assert.Equal(t, KeyRight, k)

	k, ok = kt.Lookup(tcell.NewEventKey(tcell.KeyRune, ' ', tcell.ModNone))
	assert.True(t, ok)
	assert.Equal(t, KeyShoot, k)

	_, ok = kt.Lookup(tcell.NewEventKey(tcell.KeyRune, 'z', tcell.ModNone))
	assert.False(t, ok)
}

func TestKeyNames(t *testing.T) {
	assert.Equal(t, "shoot", KeyShoot.String())
	assert.Equal(t, "unknown", KeyCount.String())
	assert.True(t, KeyQuit.Momentary())
	assert.False(t, KeyShoot.Momentary())
}
