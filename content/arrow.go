package content

import (
	"math"

	"github.com/jakecoffman/cp"

	"github.com/milk9111/archer/common"
	"github.com/milk9111/archer/entity"
	"github.com/milk9111/archer/gfx"
)

// Arrow is a ballistic missile. It dies on the first tick that starts inside
// a solid tile or on any collision.
type Arrow struct {
	kit    *Kit
	pos    cp.Vector
	vel    cp.Vector
	angle  float64
	wobble float64
	dead   bool
}

// NewArrow launches an arrow from pos at angle (radians, 0 is right, positive
// is down) with the given speed in pixels per second.
func NewArrow(k *Kit, pos cp.Vector, angle, speed float64) *Arrow {
	return &Arrow{
		kit:   k,
		pos:   pos,
		vel:   cp.ForAngle(angle).Mult(speed),
		angle: angle,
	}
}

func (a *Arrow) Update(f *entity.Frame) {
	spec := a.kit.Arrow
	if f.Tiles.IsSolid(int(a.pos.X), int(a.pos.Y)) {
		a.dead = true
	}
	a.pos = a.pos.Add(a.vel.Mult(f.DT))
	a.angle = a.vel.ToAngle()
	if a.vel.Y < spec.MaxFallSpeed {
		a.vel.Y += spec.Gravity * f.DT
	}
	a.wobble += f.DT * spec.WobbleRate
}

func (a *Arrow) Draw(p gfx.Placer) {
	rot := a.angle + math.Sin(a.wobble)*a.kit.Arrow.WobbleAmount
	p.Place(int(a.pos.X), int(a.pos.Y), a.kit.Sprites.Arrow, rot, false)
}

func (a *Arrow) IsLive() bool                 { return !a.dead }
func (a *Arrow) CollisionClass() entity.Class { return ClassMissile }
func (a *Arrow) CollisionMask() entity.Class  { return ^ClassMissile }

// BoundingBox covers only the tip so the shaft passes over things.
func (a *Arrow) BoundingBox() common.Rect {
	tip := a.pos.Add(cp.ForAngle(a.angle).Mult(a.kit.Arrow.TipDistance))
	size := a.kit.Arrow.TipSize
	return common.NewRect(int(tip.X), int(tip.Y), size, size)
}

func (a *Arrow) Collide(entity.View) {
	a.dead = true
}
