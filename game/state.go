package game

import "errors"

// ErrDegenerateInput rejects a frame delta that is negative, NaN or infinite
var ErrDegenerateInput = errors.New("degenerate frame delta")

// State is the session phase
type State uint8

const (
	StatePlaying State = iota
	StateEndGame
)

func (s State) String() string {
	switch s {
	case StatePlaying:
		return "playing"
	case StateEndGame:
		return "end_game"
	default:
		return "unknown"
	}
}
