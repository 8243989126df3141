package system

import "github.com/lixenwraith/spacegame/input"

// Input is the polled control state the simulation consumes each frame
type Input interface {
	IsKeyDown(k input.Key) bool
}

// NoInput reports every key as released
type NoInput struct{}

func (NoInput) IsKeyDown(input.Key) bool { return false }

// strafeAxis converts the Left/Right pair into -1, 0 or +1
func strafeAxis(in Input) float32 {
	var axis float32
	if in.IsKeyDown(input.KeyLeft) {
		axis++
	}
	if in.IsKeyDown(input.KeyRight) {
		axis--
	}
	return axis
}
