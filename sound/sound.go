package sound

import (
	"bytes"
	"fmt"
	"io"
	"log"

	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/hajimehoshi/ebiten/v2/audio/wav"
)

const SampleRate = 44100

// Effect names a one-shot sound.
type Effect int

const (
	EffectArrow Effect = iota
	EffectPop
	EffectDeath
)

func (e Effect) String() string {
	switch e {
	case EffectArrow:
		return "arrow"
	case EffectPop:
		return "pop"
	case EffectDeath:
		return "death"
	default:
		return fmt.Sprintf("Effect(%d)", int(e))
	}
}

// Files maps every effect to its clip under the assets directory.
var Files = map[Effect]string{
	EffectArrow: "sfx/arrow.wav",
	EffectPop:   "sfx/pop.wav",
	EffectDeath: "sfx/death.wav",
}

// Effects triggers sounds. Play must not block.
type Effects interface {
	Play(e Effect)
}

// Nop discards every effect.
type Nop struct{}

func (Nop) Play(Effect) {}

// Player plays decoded clips on an ebiten audio context. Each Play starts a
// new voice so overlapping effects mix.
type Player struct {
	ctx    *audio.Context
	clips  map[Effect][]byte
	volume float64
}

// NewPlayer decodes every clip in Files, reading them through load.
func NewPlayer(ctx *audio.Context, load func(path string) ([]byte, error)) (*Player, error) {
	p := &Player{ctx: ctx, clips: make(map[Effect][]byte, len(Files)), volume: 1}
	for e, path := range Files {
		data, err := load(path)
		if err != nil {
			return nil, fmt.Errorf("sound: load %s: %w", e, err)
		}
		pcm, err := DecodeWAV(data, ctx.SampleRate())
		if err != nil {
			return nil, fmt.Errorf("sound: decode %s: %w", e, err)
		}
		p.clips[e] = pcm
	}
	log.Printf("sound: loaded %d effects at %d Hz", len(p.clips), ctx.SampleRate())
	return p, nil
}

// SetVolume sets the volume of effects started afterwards, 0 to 1.
func (p *Player) SetVolume(v float64) {
	p.volume = min(max(v, 0), 1)
}

func (p *Player) Play(e Effect) {
	pcm, ok := p.clips[e]
	if !ok {
		return
	}
	voice := p.ctx.NewPlayerFromBytes(pcm)
	voice.SetVolume(p.volume)
	voice.Play()
}

// DecodeWAV converts a WAV file to the context's native stereo 16-bit PCM.
func DecodeWAV(data []byte, sampleRate int) ([]byte, error) {
	stream, err := wav.DecodeWithSampleRate(sampleRate, bytes.NewReader(data))
	if err != nil {
		return nil, err
	}
	return io.ReadAll(stream)
}
