package audio

import (
	"math"
	"math/rand"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"

	"github.com/lixenwraith/galangua/core"
	"github.com/lixenwraith/galangua/parameter"
)

// WaveType selects a voice's waveform
type WaveType int

const (
	WaveSine WaveType = iota
	WaveSquare
	WaveSaw
	WaveNoise
)

// waveform maps a phase in [0, 1) to a sample in [-1, 1]
type waveform func(phase float64) float64

var waveforms = [...]waveform{
	WaveSine: func(ph float64) float64 { return math.Sin(2 * math.Pi * ph) },
	WaveSquare: func(ph float64) float64 {
		if ph < 0.5 {
			return 1
		}
		return -1
	},
	WaveSaw:   func(ph float64) float64 { return 2*ph - 1 },
	WaveNoise: func(float64) float64 { return rand.Float64()*2 - 1 },
}

// voice is a mono tone generator whose pitch glides linearly across its lifetime
type voice struct {
	wave  waveform
	from  float64 // Hz at the first sample
	glide float64 // Hz added per sample
	rate  float64
	phase float64
	left  int
	n     int
}

// NewOscillator creates a fixed pitch voice
func NewOscillator(freq float64, duration time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	return NewSweep(freq, freq, duration, wave, rate)
}

// NewSweep creates a voice gliding from freq to endFreq over duration
func NewSweep(freq, endFreq float64, duration time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	total := rate.N(duration)
	v := &voice{wave: waveforms[WaveSine], from: freq, rate: float64(rate), left: total}
	if wave >= 0 && int(wave) < len(waveforms) {
		v.wave = waveforms[wave]
	}
	if total > 0 {
		v.glide = (endFreq - freq) / float64(total)
	}
	return v
}

func (v *voice) Stream(samples [][2]float64) (int, bool) {
	if v.left == 0 {
		return 0, false
	}
	count := min(len(samples), v.left)
	for i := range samples[:count] {
		x := v.wave(v.phase)
		samples[i] = [2]float64{x, x}
		_, v.phase = math.Modf(v.phase + (v.from+v.glide*float64(v.n))/v.rate)
		v.n++
	}
	v.left -= count
	return count, true
}

func (v *voice) Err() error { return nil }

// envelope shapes a stream with a linear fade in, a flat hold and a linear fade out
type envelope struct {
	src     beep.Streamer
	at      int
	total   int
	fadeIn  int
	fadeOut int
}

// NewEnvelope cuts s to duration and fades its edges by attack and release
func NewEnvelope(s beep.Streamer, duration, attack, release time.Duration, rate beep.SampleRate) beep.Streamer {
	return &envelope{
		src:     s,
		total:   rate.N(duration),
		fadeIn:  rate.N(attack),
		fadeOut: rate.N(release),
	}
}

// gain is the level of sample i, the fade out wins where the fades overlap
func (e *envelope) gain(i int) float64 {
	if rest := e.total - i; e.fadeOut > 0 && rest <= e.fadeOut {
		return float64(rest) / float64(e.fadeOut)
	}
	if e.fadeIn > 0 && i < e.fadeIn {
		return float64(i) / float64(e.fadeIn)
	}
	return 1
}

func (e *envelope) Stream(samples [][2]float64) (int, bool) {
	remaining := e.total - e.at
	if remaining <= 0 {
		return 0, false
	}
	n, ok := e.src.Stream(samples[:min(len(samples), remaining)])
	for i := range samples[:n] {
		g := e.gain(e.at)
		samples[i][0] *= g
		samples[i][1] *= g
		e.at++
	}
	return n, ok || n > 0
}

func (e *envelope) Err() error { return e.src.Err() }

// newVolume wraps s in a linear volume, math.Log2(0) is -Inf so zero is silent
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol), Silent: false}
}

func shaped(s beep.Streamer, d time.Duration, rate beep.SampleRate) beep.Streamer {
	return NewEnvelope(s, d, parameter.CueAttack, parameter.CueRelease, rate)
}

// createAttackSound is a falling square sweep played when an enemy dives
func createAttackSound(rate beep.SampleRate) beep.Streamer {
	d := parameter.AttackCueDuration
	return shaped(NewSweep(1200, 300, d, WaveSquare, rate), d, rate)
}

// createBeamSound is a warbling sine drone for the deployed tractor beam
func createBeamSound(rate beep.SampleRate) beep.Streamer {
	step := parameter.BeamCueDuration / 6
	notes := make([]beep.Streamer, 0, 6)
	for i := 0; i < 6; i++ {
		freq := 440.0
		if i&1 == 1 {
			freq = 523.25
		}
		notes = append(notes, shaped(NewOscillator(freq, step, WaveSine, rate), step, rate))
	}
	return beep.Seq(notes...)
}

// createBeamCaptureSound is a rising saw sweep while the fighter is pulled in
func createBeamCaptureSound(rate beep.SampleRate) beep.Streamer {
	d := parameter.BeamCueDuration
	return shaped(NewSweep(200, 900, d, WaveSaw, rate), d, rate)
}

// createExplosionSound is a burst of shaped noise
func createExplosionSound(rate beep.SampleRate) beep.Streamer {
	d := parameter.ExplosionCueDuration
	return NewEnvelope(NewOscillator(0, d, WaveNoise, rate), d, parameter.CueAttack, d/2, rate)
}

// createDamageSound is a short high blip for a non-fatal Owl hit
func createDamageSound(rate beep.SampleRate) beep.Streamer {
	d := parameter.DamageCueDuration
	return shaped(NewOscillator(1760, d, WaveSquare, rate), d, rate)
}

// createCapturedSound is a descending three-note phrase
func createCapturedSound(rate beep.SampleRate) beep.Streamer {
	step := parameter.CaptureCueDuration / 3
	return beep.Seq(
		shaped(NewOscillator(659.25, step, WaveSquare, rate), step, rate),
		shaped(NewOscillator(523.25, step, WaveSquare, rate), step, rate),
		shaped(NewOscillator(392.00, step, WaveSquare, rate), step, rate),
	)
}

// GetCueEffect returns the streamer for cue at the configured volume, nil for unknown cues
func GetCueEffect(cue core.SoundCue, cfg *AudioConfig) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)

	var s beep.Streamer
	switch cue {
	case core.CueAttackStart:
		s = createAttackSound(rate)
	case core.CueTractorBeam:
		s = createBeamSound(rate)
	case core.CueTractorBeam2:
		s = createBeamCaptureSound(rate)
	case core.CueExplosion:
		s = createExplosionSound(rate)
	case core.CueOwlDamage:
		s = createDamageSound(rate)
	case core.CueCaptured:
		s = createCapturedSound(rate)
	default:
		return nil
	}
	return newVolume(s, cfg.CueVolumes[cue]*cfg.MasterVolume)
}
