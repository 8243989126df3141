package audio

import (
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
	"go.uber.org/zap"

	"github.com/lixenwraith/spacegame/core"
	"github.com/lixenwraith/spacegame/event"
	"github.com/lixenwraith/spacegame/parameter"
)

// SoundManager plays effects for simulation events through a single speaker mixer
// Every method is safe to call before Initialize or after a failed init; playback is simply skipped
type SoundManager struct {
	mu          sync.Mutex
	cfg         *AudioConfig
	mixer       *beep.Mixer
	logger      *zap.Logger
	initialized bool
	muted       bool

	lastPlayed [soundTypeCount]time.Time
	now        func() time.Time

	// play hands a finished streamer to the output, swapped in tests
	play func(beep.Streamer)
}

// NewSoundManager creates a new sound manager
func NewSoundManager(cfg *AudioConfig, logger *zap.Logger) *SoundManager {
	if cfg == nil {
		cfg = DefaultAudioConfig()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	sm := &SoundManager{
		cfg:    cfg,
		mixer:  &beep.Mixer{},
		logger: logger.Named("audio"),
		now:    time.Now,
	}
	sm.play = sm.playMixer
	return sm
}

// Initialize sets up the speaker; a second call is a no-op
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized || !sm.cfg.Enabled {
		return nil
	}

	rate := beep.SampleRate(sm.cfg.SampleRate)
	if err := speaker.Init(rate, rate.N(parameter.AudioBufferDuration)); err != nil {
		return err
	}

	speaker.Play(sm.mixer)
	sm.initialized = true
	sm.logger.Info("audio initialized", zap.Int("sample_rate", sm.cfg.SampleRate))
	return nil
}

// Cleanup stops all sounds and closes the speaker
func (sm *SoundManager) Cleanup() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}

	speaker.Lock()
	sm.mixer.Clear()
	speaker.Unlock()
	speaker.Close()
	sm.initialized = false
}

// ToggleMute flips the mute flag and returns the new state
func (sm *SoundManager) ToggleMute() bool {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	sm.muted = !sm.muted
	if sm.muted && sm.initialized {
		speaker.Lock()
		sm.mixer.Clear()
		speaker.Unlock()
	}
	return sm.muted
}

// IsMuted reports the mute flag
func (sm *SoundManager) IsMuted() bool {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	return sm.muted
}

// HandleEvents plays the effect for each event in order
func (sm *SoundManager) HandleEvents(events []event.GameEvent) {
	for _, ev := range events {
		switch ev.Type {
		case event.EventLaserFired:
			sm.Play(SoundLaser, core.KindLaserBeam)
		case event.EventAsteroidDestroyed:
			kind := core.KindAsteroidSmall
			if p, ok := ev.Payload.(*event.AsteroidDestroyedPayload); ok {
				kind = p.Kind
			}
			sm.Play(SoundExplosion, kind)
		case event.EventPlayerDefeated:
			sm.Play(SoundDefeat, core.KindPlayer)
		}
	}
}

// Play synthesizes and queues one effect; repeats inside MinSoundGap are dropped
func (sm *SoundManager) Play(st SoundType, kind core.Kind) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.muted || st < 0 || st >= soundTypeCount {
		return
	}

	now := sm.now()
	if now.Sub(sm.lastPlayed[st]) < parameter.MinSoundGap {
		return
	}
	sm.lastPlayed[st] = now

	if s := GetSoundEffect(st, kind, sm.cfg); s != nil {
		sm.play(s)
	}
}

func (sm *SoundManager) playMixer(s beep.Streamer) {
	if !sm.initialized {
		return
	}
	speaker.Lock()
	sm.mixer.Add(s)
	speaker.Unlock()
}

// GetSoundEffect returns the streamer for the given effect
func GetSoundEffect(st SoundType, kind core.Kind, cfg *AudioConfig) beep.Streamer {
	switch st {
	case SoundLaser:
		return CreateLaserSound(cfg)
	case SoundExplosion:
		return CreateExplosionSound(cfg, kind)
	case SoundDefeat:
		return CreateDefeatSound(cfg)
	default:
		return nil
	}
}
