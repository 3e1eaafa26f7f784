package content

import (
	"fmt"
	"log"

	"github.com/d5/tengo/v2"
	"github.com/d5/tengo/v2/stdlib"
	"github.com/jakecoffman/cp"

	"github.com/milk9111/archer/common"
	"github.com/milk9111/archer/entity"
	"github.com/milk9111/archer/gfx"
	"github.com/milk9111/archer/sound"
)

// Balloon floats in place, bobbing on its script, until an arrow pops it.
type Balloon struct {
	kit      *Kit
	pos      cp.Vector
	buoyancy float64
	popped   bool

	script *tengo.Compiled
	broken bool
}

func NewBalloon(k *Kit, x, y int) *Balloon {
	b := &Balloon{
		kit: k,
		pos: cp.Vector{X: float64(x), Y: float64(y)},
	}
	if k.bob != nil {
		b.script = k.bob.Clone()
	}
	return b
}

func (b *Balloon) Update(f *entity.Frame) {
	if b.script == nil || b.broken {
		return
	}
	dy, err := b.bob(f.DT)
	if err != nil {
		log.Printf("content: balloon at %.0f,%.0f stopped: %v", b.pos.X, b.pos.Y, err)
		b.broken = true
		return
	}
	b.pos.Y += dy
}

func (b *Balloon) bob(dt float64) (float64, error) {
	if err := b.script.Set("dt", dt); err != nil {
		return 0, err
	}
	if err := b.script.Set("buoyancy", b.buoyancy); err != nil {
		return 0, err
	}
	if err := b.script.Run(); err != nil {
		return 0, err
	}
	b.buoyancy = b.script.Get("buoyancy").Float()
	return b.script.Get("dy").Float(), nil
}

func (b *Balloon) Draw(p gfx.Placer) {
	p.Place(int(b.pos.X), int(b.pos.Y), b.kit.Sprites.Balloon, 0, false)
}

func (b *Balloon) IsLive() bool                 { return !b.popped }
func (b *Balloon) CollisionClass() entity.Class { return ClassObject }
func (b *Balloon) CollisionMask() entity.Class  { return ClassMissile }

func (b *Balloon) BoundingBox() common.Rect {
	w, h := b.kit.Balloon.Width, b.kit.Balloon.Height
	return common.NewRect(int(b.pos.X)-w/2, int(b.pos.Y)-h/2, w, h)
}

func (b *Balloon) Collide(entity.View) {
	if b.popped {
		return
	}
	b.popped = true
	b.kit.Sound.Play(sound.EffectPop)
}

// compileBob compiles the balloon script once; every balloon runs a clone.
// The script reads dt and bob, carries buoyancy and writes dy.
func compileBob(src []byte, bob float64) (*tengo.Compiled, error) {
	script := tengo.NewScript(src)
	_ = script.Add("dt", 0.0)
	_ = script.Add("bob", bob)
	_ = script.Add("buoyancy", 0.0)
	_ = script.Add("dy", 0.0)
	script.SetImports(stdlib.GetModuleMap("math"))

	compiled, err := script.Compile()
	if err != nil {
		return nil, fmt.Errorf("content: compile balloon script: %w", err)
	}
	return compiled, nil
}
