package audio

import (
	"testing"
	"time"

	"github.com/gopxl/beep"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/spacegame/core"
	"github.com/lixenwraith/spacegame/event"
	"github.com/lixenwraith/spacegame/parameter"
)

// drain streams s to exhaustion and returns every left-channel sample
func drain(t *testing.T, s beep.Streamer) []float64 {
	t.Helper()
	var out []float64
	buf := make([][2]float64, 512)
	for i := 0; i < 10000; i++ {
		n, ok := s.Stream(buf)
		for j := 0; j < n; j++ {
			out = append(out, buf[j][0])
		}
		if !ok {
			return out
		}
	}
	t.Fatal("streamer never finished")
	return nil
}

func TestOscillatorRanges(t *testing.T) {
	rate := beep.SampleRate(44100)
	for _, wave := range []WaveType{WaveSine, WaveSquare, WaveSaw, WaveNoise} {
		samples := drain(t, NewOscillator(440, 50*time.Millisecond, wave, rate))
		assert.Len(t, samples, rate.N(50*time.Millisecond), "wave %d", wave)
		for _, v := range samples {
			assert.GreaterOrEqual(t, v, -1.0)
			assert.LessOrEqual(t, v, 1.0)
		}
	}
}

func TestSweepFinishes(t *testing.T) {
	rate := beep.SampleRate(8000)
	samples := drain(t, NewSweep(1000, 200, 100*time.Millisecond, WaveSine, rate))
	assert.Len(t, samples, rate.N(100*time.Millisecond))
}

func TestEnvelopeShapesEdges(t *testing.T) {
	rate := beep.SampleRate(1000)
	osc := NewOscillator(0, 100*time.Millisecond, WaveSquare, rate) // phase stays 0, constant +1
	samples := drain(t, NewEnvelope(osc, 100*time.Millisecond, 10*time.Millisecond, 20*time.Millisecond, rate))

	require.Len(t, samples, 100)
	assert.InDelta(t, 0, samples[0], 1e-9)
	assert.InDelta(t, 1, samples[50], 1e-9)
	assert.Less(t, samples[99], 0.1)
	for _, v := range samples {
		assert.GreaterOrEqual(t, v, 0.0)
		assert.LessOrEqual(t, v, 1.0)
	}
}

func TestEffectsAreFinite(t *testing.T) {
	cfg := DefaultAudioConfig()
	cfg.SampleRate = 8000

	laser := drain(t, CreateLaserSound(cfg))
	assert.NotEmpty(t, laser)

	small := drain(t, CreateExplosionSound(cfg, core.KindAsteroidFragment))
	big := drain(t, CreateExplosionSound(cfg, core.KindAsteroidBig))
	assert.Greater(t, len(big), len(small))

	defeat := drain(t, CreateDefeatSound(cfg))
	assert.Len(t, defeat, 3*beep.SampleRate(8000).N(parameter.DefeatSoundNoteDuration))
}

func TestSoundManagerWithoutSpeaker(t *testing.T) {
	sm := NewSoundManager(nil, nil)
	assert.NotPanics(t, func() {
		sm.Play(SoundLaser, core.KindLaserBeam)
		sm.HandleEvents([]event.GameEvent{{Type: event.EventPlayerDefeated}})
		sm.Cleanup()
	})
}

func TestSoundManagerEventRouting(t *testing.T) {
	sm := NewSoundManager(nil, nil)
	var played int
	sm.play = func(beep.Streamer) { played++ }

	clock := time.Unix(0, 0)
	sm.now = func() time.Time { return clock }

	sm.HandleEvents([]event.GameEvent{
		{Type: event.EventLaserFired},
		{Type: event.EventAsteroidDestroyed, Payload: &event.AsteroidDestroyedPayload{Kind: core.KindAsteroidBig}},
		{Type: event.EventAsteroidSpawned},
	})
	assert.Equal(t, 2, played)

	// Same effect inside the gap is dropped
	sm.Play(SoundLaser, core.KindLaserBeam)
	assert.Equal(t, 2, played)

	clock = clock.Add(parameter.MinSoundGap)
	sm.Play(SoundLaser, core.KindLaserBeam)
	assert.Equal(t, 3, played)

	assert.True(t, sm.ToggleMute())
	assert.True(t, sm.IsMuted())
	clock = clock.Add(time.Second)
	sm.Play(SoundDefeat, core.KindPlayer)
	assert.Equal(t, 3, played)
}

func TestLoadAudioConfigFromEnv(t *testing.T) {
	t.Setenv("SPACEGAME_AUDIO_ENABLED", "false")
	t.Setenv("SPACEGAME_MASTER_VOLUME", "150")
	t.Setenv("SPACEGAME_SFX_VOLUMES", `{"laser": 0.1, "bogus": 3}`)
	t.Setenv("SPACEGAME_SAMPLE_RATE", "22050")

	cfg := LoadAudioConfig()
	assert.False(t, cfg.Enabled)
	assert.Equal(t, 1.0, cfg.MasterVolume)
	assert.Equal(t, 0.1, cfg.EffectVolumes[SoundLaser])
	assert.Equal(t, 22050, cfg.SampleRate)
}
