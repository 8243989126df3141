package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"

	"github.com/lixenwraith/spacegame/core"
	"github.com/lixenwraith/spacegame/parameter"
	"github.com/lixenwraith/spacegame/vmath"
)

// WaveType defines oscillator wave shapes
type WaveType int

const (
	WaveSine WaveType = iota
	WaveSquare
	WaveSaw
	WaveNoise
)

// oscillator generates raw audio waves, optionally sweeping linearly from freq to endFreq
type oscillator struct {
	freq     float64
	endFreq  float64
	phase    float64
	duration int
	position int
	wave     WaveType
	rate     beep.SampleRate
	rng      *vmath.FastRand
}

// NewOscillator creates a fixed-pitch oscillator
func NewOscillator(freq float64, duration time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	return NewSweep(freq, freq, duration, wave, rate)
}

// NewSweep creates an oscillator gliding from start to end Hz over duration
func NewSweep(start, end float64, duration time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	return &oscillator{
		freq:     start,
		endFreq:  end,
		duration: rate.N(duration),
		wave:     wave,
		rate:     rate,
		rng:      vmath.NewFastRand(uint64(start*1000) + 1),
	}
}

func (o *oscillator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if o.position >= o.duration {
			return i, i > 0
		}

		var val float64
		switch o.wave {
		case WaveSine:
			val = math.Sin(2 * math.Pi * o.phase)
		case WaveSquare:
			if o.phase < 0.5 {
				val = 1.0
			} else {
				val = -1.0
			}
		case WaveSaw:
			val = 2.0 * (o.phase - 0.5)
		case WaveNoise:
			val = o.rng.Float64()*2 - 1
		}

		samples[i][0] = val
		samples[i][1] = val

		progress := float64(o.position) / float64(o.duration)
		freq := o.freq + (o.endFreq-o.freq)*progress
		o.phase += freq / float64(o.rate)
		o.phase -= math.Floor(o.phase)
		o.position++
	}
	return len(samples), true
}

func (o *oscillator) Err() error { return nil }

// envelope applies attack/release shaping to a stream
type envelope struct {
	streamer       beep.Streamer
	position       int
	attackSamples  int
	releaseSamples int
	sustainSamples int
	totalSamples   int
}

// NewEnvelope creates an attack/sustain/release envelope
func NewEnvelope(s beep.Streamer, duration, attack, release time.Duration, rate beep.SampleRate) beep.Streamer {
	total := rate.N(duration)
	att := rate.N(attack)
	rel := rate.N(release)

	return &envelope{
		streamer:       s,
		attackSamples:  att,
		releaseSamples: rel,
		sustainSamples: max(total-att-rel, 0),
		totalSamples:   total,
	}
}

func (e *envelope) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = e.streamer.Stream(samples)

	for i := 0; i < n; i++ {
		if e.position >= e.totalSamples {
			return i, i > 0
		}

		vol := 1.0
		if e.position < e.attackSamples && e.attackSamples > 0 {
			vol = float64(e.position) / float64(e.attackSamples)
		}
		releaseStart := e.attackSamples + e.sustainSamples
		if e.position >= releaseStart && e.releaseSamples > 0 {
			vol = max(float64(e.totalSamples-e.position)/float64(e.releaseSamples), 0)
		}

		samples[i][0] *= vol
		samples[i][1] *= vol
		e.position++
	}

	return n, ok
}

func (e *envelope) Err() error { return e.streamer.Err() }

// newVolume scales a stream linearly; zero or negative volume is silent since Log2(0) is -Inf
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol), Silent: false}
}

// CreateLaserSound generates a falling square-wave zap
func CreateLaserSound(cfg *AudioConfig) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)

	osc := NewSweep(parameter.LaserSoundStartHz, parameter.LaserSoundEndHz, parameter.LaserSoundDuration, WaveSquare, rate)
	shaped := NewEnvelope(osc, parameter.LaserSoundDuration, parameter.LaserSoundAttack, parameter.LaserSoundRelease, rate)

	return newVolume(shaped, cfg.EffectVolumes[SoundLaser]*cfg.MasterVolume)
}

// CreateExplosionSound generates a noise burst over a low rumble, deeper and longer for larger asteroids
func CreateExplosionSound(cfg *AudioConfig, kind core.Kind) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)

	size := 1.0
	if kind.IsAsteroid() {
		size = 1 + 0.25*float64(kind)
	}
	duration := time.Duration(float64(parameter.ExplosionSoundDuration) * size)
	release := time.Duration(float64(parameter.ExplosionSoundRelease) * size)

	noise := NewOscillator(0, duration, WaveNoise, rate)
	rumble := NewOscillator(parameter.ExplosionRumbleHz/size, duration, WaveSine, rate)
	mixed := beep.Mix(newVolume(noise, 0.6), newVolume(rumble, 0.4))
	shaped := NewEnvelope(mixed, duration, parameter.ExplosionSoundAttack, release, rate)

	return newVolume(shaped, cfg.EffectVolumes[SoundExplosion]*cfg.MasterVolume)
}

// CreateDefeatSound generates a three-note descending saw phrase
func CreateDefeatSound(cfg *AudioConfig) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)

	notes := []float64{392.00, 311.13, 196.00} // G4, Eb4, G3
	parts := make([]beep.Streamer, 0, len(notes))
	for _, hz := range notes {
		osc := NewOscillator(hz, parameter.DefeatSoundNoteDuration, WaveSaw, rate)
		parts = append(parts, NewEnvelope(osc, parameter.DefeatSoundNoteDuration, parameter.DefeatSoundAttack, parameter.DefeatSoundRelease, rate))
	}

	return newVolume(beep.Seq(parts...), cfg.EffectVolumes[SoundDefeat]*cfg.MasterVolume)
}
