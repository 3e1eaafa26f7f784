package sound

import (
	"testing"

	"github.com/milk9111/archer/assets"
)

type recorder []Effect

func (r *recorder) Play(e Effect) { *r = append(*r, e) }

func TestDecodeBundledEffects(t *testing.T) {
	// Mono 16-bit frames at the output rate.
	frames := map[Effect]int{
		EffectArrow: 6615,
		EffectPop:   3528,
		EffectDeath: 22050,
	}
	for e, path := range Files {
		t.Run(e.String(), func(t *testing.T) {
			data, err := assets.LoadFile(path)
			if err != nil {
				t.Fatalf("load %s: %v", path, err)
			}
			pcm, err := DecodeWAV(data, SampleRate)
			if err != nil {
				t.Fatalf("decode %s: %v", path, err)
			}
			// Decoded output is always stereo 16-bit.
			if want := frames[e] * 4; len(pcm) != want {
				t.Fatalf("len(pcm) = %d, want %d", len(pcm), want)
			}
		})
	}
}

func TestDecodeRejectsGarbage(t *testing.T) {
	if _, err := DecodeWAV([]byte("not a wav file"), SampleRate); err == nil {
		t.Fatal("expected error")
	}
}

func TestEffectString(t *testing.T) {
	if EffectPop.String() != "pop" || Effect(9).String() != "Effect(9)" {
		t.Fatalf("unexpected names %q %q", EffectPop, Effect(9))
	}
}

func TestEffectsInterface(t *testing.T) {
	var rec recorder
	for _, fx := range []Effects{Nop{}, &rec} {
		fx.Play(EffectArrow)
	}
	if len(rec) != 1 || rec[0] != EffectArrow {
		t.Fatalf("recorded %v", rec)
	}
}
