package input

import (
	"time"

	"github.com/lixenwraith/spacegame/parameter"
)

// HoldTracker infers held keys from a terminal's press and auto-repeat stream
// A key counts as down while its last press is within the hold window; the first press of a hold
// gets the longer repeat-delay window so the gap before auto-repeat does not read as a release
type HoldTracker struct {
	window      time.Duration
	repeatDelay time.Duration

	now     time.Time
	last    [KeyCount]time.Time
	repeats [KeyCount]int
	down    [KeyCount]bool
}

// NewHoldTracker creates a tracker with the default windows
func NewHoldTracker() *HoldTracker {
	return &HoldTracker{
		window:      parameter.KeyHoldWindow,
		repeatDelay: parameter.KeyRepeatDelay,
	}
}

// Press records a press or auto-repeat of k at the given instant
func (h *HoldTracker) Press(k Key, at time.Time) {
	if k >= KeyCount {
		return
	}
	if h.down[k] && h.active(k, at) {
		h.repeats[k]++
	} else {
		h.repeats[k] = 0
	}
	h.down[k] = true
	h.last[k] = at
	if at.After(h.now) {
		h.now = at
	}
}

// Release forces k up, for backends that report key release
func (h *HoldTracker) Release(k Key) {
	if k < KeyCount {
		h.down[k] = false
		h.repeats[k] = 0
	}
}

// Advance moves the tracker clock, expiring stale holds
func (h *HoldTracker) Advance(now time.Time) {
	h.now = now
	for k := Key(0); k < KeyCount; k++ {
		if h.down[k] && !h.active(k, now) {
			h.Release(k)
		}
	}
}

// IsKeyDown reports whether k is held at the tracker's current time
func (h *HoldTracker) IsKeyDown(k Key) bool {
	if k >= KeyCount {
		return false
	}
	return h.down[k] && h.active(k, h.now)
}

// Reset releases every key
func (h *HoldTracker) Reset() {
	for k := Key(0); k < KeyCount; k++ {
		h.Release(k)
	}
}

func (h *HoldTracker) active(k Key, now time.Time) bool {
	window := h.window
	if h.repeats[k] == 0 {
		window = h.repeatDelay
	}
	return now.Sub(h.last[k]) <= window
}
