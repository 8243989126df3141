package system

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/spacegame/core"
	"github.com/lixenwraith/spacegame/engine"
	"github.com/lixenwraith/spacegame/event"
	"github.com/lixenwraith/spacegame/input"
	"github.com/lixenwraith/spacegame/parameter"
	"github.com/lixenwraith/spacegame/status"
)

// fakeInput holds keys down until released
type fakeInput struct {
	down [input.KeyCount]bool
}

func (f *fakeInput) IsKeyDown(k input.Key) bool { return k < input.KeyCount && f.down[k] }

func (f *fakeInput) set(k input.Key, held bool) { f.down[k] = held }

type fixture struct {
	world  *engine.World
	queue  *event.EventQueue
	frame  int64
	player core.Entity
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	f := &fixture{
		world: engine.NewWorld(),
		queue: event.NewEventQueue(),
	}
	f.world.Resources.Config = parameter.Reference()
	f.world.Resources.Metrics = status.NewRegistry()
	f.world.SetEventMetadata(f.queue, &f.frame)

	f.player = f.world.Spawn(core.KindPlayer)
	f.world.Resources.Player.Entity = f.player
	require.False(t, f.player.IsZero())
	return f
}

func (f *fixture) countKind(kind core.Kind) int {
	n := 0
	for e := range f.world.Query().With(f.world.Kinematics).Each() {
		if kc, ok := f.world.Kinematics.Get(e); ok && kc.Kind == kind {
			n++
		}
	}
	return n
}

func (f *fixture) eventsOf(t event.EventType) []event.GameEvent {
	var out []event.GameEvent
	for _, ev := range f.queue.Consume() {
		if ev.Type == t {
			out = append(out, ev)
		}
	}
	return out
}
