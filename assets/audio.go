package assets

import (
	"bytes"
	"encoding/binary"
	"math"

	cfg "github.com/automoto/shatterbox/config"
	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/pkg/errors"
)

// AudioLoader synthesizes and caches the game's sound effects. Every effect
// is a short generated tone or noise burst, so there are no audio files to
// ship; the cache holds raw 16-bit LE stereo PCM ready for players.
type AudioLoader struct {
	sfxCache map[cfg.SoundID][]byte
	context  *audio.Context
}

// NewAudioLoader creates a new audio loader with the given context
func NewAudioLoader(ctx *audio.Context) *AudioLoader {
	return &AudioLoader{
		sfxCache: make(map[cfg.SoundID][]byte),
		context:  ctx,
	}
}

// PreloadAll synthesizes every configured effect up front to avoid first-play lag.
func (l *AudioLoader) PreloadAll() {
	for id, spec := range cfg.Sound.Tones {
		if _, ok := l.sfxCache[id]; ok {
			continue
		}
		l.sfxCache[id] = synthesize(spec, l.context.SampleRate())
	}
}

// SFXPlayer returns a fresh player for the effect. Players are cheap; each
// call gets its own so overlapping plays work.
func (l *AudioLoader) SFXPlayer(id cfg.SoundID) (*audio.Player, error) {
	pcm, ok := l.sfxCache[id]
	if !ok {
		spec, found := cfg.Sound.Tones[id]
		if !found {
			return nil, errors.Errorf("no tone configured for sound %d", id)
		}
		pcm = synthesize(spec, l.context.SampleRate())
		l.sfxCache[id] = pcm
	}
	return l.context.NewPlayer(bytes.NewReader(pcm))
}

// synthesize renders one effect as 16-bit LE stereo PCM. Tones are sine
// sweeps from Freq to EndFreq; Noise specs run white noise through a
// one-pole lowpass whose cutoff follows the same sweep. A short attack ramp
// and an exponential decay keep every effect click-free and percussive.
func synthesize(spec cfg.ToneSpec, sampleRate int) []byte {
	n := int(spec.Duration * float64(sampleRate))
	if n <= 0 {
		return nil
	}
	buf := make([]byte, 0, n*4)

	attack := float64(sampleRate) * 0.005
	phase := 0.0
	lp := 0.0
	seed := uint32(0x9e3779b9)

	for i := 0; i < n; i++ {
		t := float64(i) / float64(n)
		freq := spec.Freq + (spec.EndFreq-spec.Freq)*t

		var s float64
		if spec.Noise {
			seed = seed*1664525 + 1013904223
			white := float64(seed>>8)/float64(1<<23) - 1.0
			alpha := 1 - math.Exp(-2*math.Pi*freq/float64(sampleRate))
			lp += alpha * (white - lp)
			s = lp
		} else {
			phase += 2 * math.Pi * freq / float64(sampleRate)
			s = math.Sin(phase)
		}

		env := math.Exp(-4.5 * t)
		if a := float64(i) / attack; a < 1 {
			env *= a
		}

		v := int16(s * env * spec.Volume * 32000)
		var frame [4]byte
		binary.LittleEndian.PutUint16(frame[0:], uint16(v))
		binary.LittleEndian.PutUint16(frame[2:], uint16(v))
		buf = append(buf, frame[:]...)
	}

	return buf
}
