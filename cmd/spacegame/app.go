package main

import (
	"context"
	"time"

	"github.com/gdamore/tcell/v2"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/lixenwraith/spacegame/audio"
	"github.com/lixenwraith/spacegame/event"
	"github.com/lixenwraith/spacegame/game"
	"github.com/lixenwraith/spacegame/input"
	"github.com/lixenwraith/spacegame/parameter"
	"github.com/lixenwraith/spacegame/render"
)

// app couples the terminal frontend to one session
// Only the frame loop goroutine touches the session; the pump goroutine only forwards terminal events
type app struct {
	screen   tcell.Screen
	session  *game.Session
	hold     *input.HoldTracker
	keys     *input.KeyTable
	renderer *render.TerminalRenderer
	sound    *audio.SoundManager
	logger   *zap.Logger
	guard    *terminalGuard

	lastFrame time.Time
}

func newApp(screen tcell.Screen, session *game.Session, hold *input.HoldTracker, sound *audio.SoundManager, logger *zap.Logger) *app {
	return &app{
		screen:   screen,
		session:  session,
		hold:     hold,
		keys:     input.DefaultKeyTable(),
		renderer: render.NewTerminalRenderer(screen, render.DefaultProjection()),
		sound:    sound,
		logger:   logger,
		guard:    &terminalGuard{screen: screen},
	}
}

// run drives the event pump and the frame loop until quit, cancellation or a simulation error
func (a *app) run(ctx context.Context) error {
	g, ctx := errgroup.WithContext(ctx)
	events := make(chan tcell.Event, 256)

	g.Go(a.guard.guard(func() error {
		for {
			ev := a.screen.PollEvent()
			if ev == nil {
				return nil
			}
			select {
			case events <- ev:
			case <-ctx.Done():
				return nil
			}
		}
	}))

	g.Go(a.guard.guard(func() error {
		// PollEvent only returns after Fini
		defer a.guard.restore()
		return a.loop(ctx, events)
	}))

	return g.Wait()
}

func (a *app) loop(ctx context.Context, events <-chan tcell.Event) error {
	ticker := time.NewTicker(parameter.FrameUpdateInterval)
	defer ticker.Stop()

	a.lastFrame = time.Now()
	a.draw()

	for {
		select {
		case <-ctx.Done():
			return nil

		case ev := <-events:
			if quit := a.handleEvent(ev); quit {
				return nil
			}

		case now := <-ticker.C:
			if err := a.step(now); err != nil {
				return err
			}
			a.draw()
		}
	}
}

// step advances the session by the wall time since the previous frame, capped after stalls
func (a *app) step(now time.Time) error {
	dt := min(now.Sub(a.lastFrame), parameter.MaxFrameDelta)
	a.lastFrame = now
	if dt < 0 {
		dt = 0
	}

	a.hold.Advance(now)
	if err := a.session.FrameStep(dt.Seconds()); err != nil {
		a.logger.Error("frame step failed", zap.Error(err))
		return err
	}
	a.dispatch(a.session.Events())
	return nil
}

func (a *app) dispatch(events []event.GameEvent) {
	if len(events) == 0 {
		return
	}
	for _, ev := range events {
		if ev.Type == event.EventPlayerDefeated {
			a.logger.Info("game over", zap.Int("score", a.session.Score()), zap.Int64("frame", ev.Frame))
		} else {
			a.logger.Debug("event", zap.Stringer("type", ev.Type), zap.Int64("frame", ev.Frame))
		}
	}
	a.sound.HandleEvents(events)
}

// handleEvent applies one terminal event and reports whether the app should exit
func (a *app) handleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventResize:
		a.screen.Sync()
		a.draw()

	case *tcell.EventKey:
		k, ok := a.keys.Lookup(ev)
		if !ok {
			return false
		}
		if !k.Momentary() {
			a.hold.Press(k, ev.When())
			return false
		}

		switch k {
		case input.KeyQuit:
			// First quit ends the round, a second one leaves
			if a.session.State() == game.StateEndGame {
				return true
			}
			a.session.Defeat()
			a.dispatch(a.session.Events())
		case input.KeyRestart:
			a.session.Reset()
			a.hold.Reset()
			a.dispatch(a.session.Events())
		case input.KeyMute:
			a.renderer.SetMuted(a.sound.ToggleMute())
		}
		a.draw()
	}
	return false
}

func (a *app) draw() {
	a.renderer.RenderFrame(a.session)
	a.screen.Show()
}
