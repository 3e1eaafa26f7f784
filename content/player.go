package content

import (
	"math"

	"github.com/jakecoffman/cp"

	"github.com/milk9111/archer/common"
	"github.com/milk9111/archer/entity"
	"github.com/milk9111/archer/gfx"
	"github.com/milk9111/archer/sound"
)

// Player is the archer. Its position is the shoulder pivot; the feet sit
// groundOffset pixels below it.
type Player struct {
	kit          *Kit
	pos          cp.Vector
	yvel         float64
	groundOffset int

	angle      float64
	bowDrawn   bool
	drawTime   float64
	facingLeft bool

	running   bool
	runFrame  int
	frameTime float64

	onGround    bool
	jumpCounter int
	lastJump    bool

	climbing bool
	killed   bool
}

// NewPlayer stands the archer on the tile whose top-left corner is x, y.
func NewPlayer(k *Kit, x, y int) *Player {
	body := k.Sprites.BodyIdle
	groundOffset := body.Height - body.OriginY
	return &Player{
		kit:          k,
		pos:          cp.Vector{X: float64(x), Y: float64(y + common.TileSize - groundOffset)},
		groundOffset: groundOffset,
		angle:        k.Player.StartAngle,
		jumpCounter:  k.Player.JumpHoldFrames,
	}
}

func (p *Player) x() int { return int(p.pos.X) }
func (p *Player) y() int { return int(p.pos.Y) }

// Killed reports whether the player has been hit.
func (p *Player) Killed() bool { return p.killed }

func (p *Player) Update(f *entity.Frame) {
	if p.killed {
		return
	}
	spec := p.kit.Player
	dt := f.DT
	tiles := f.Tiles
	btn := f.Buttons

	onLadder := tiles.IsLadder(p.x(), p.y()) || tiles.IsLadder(p.x(), p.y()+p.groundOffset)
	if p.climbing {
		p.climb(f, onLadder)
		return
	}
	if onLadder && (btn.Has(entity.ControlUp) || btn.Has(entity.ControlDown)) {
		p.climbing = true
		p.bowDrawn = false
		return
	}

	p.aim(f)

	p.onGround = tiles.IsSolid(p.x()-12, p.y()+p.groundOffset) ||
		tiles.IsSolid(p.x()+12, p.y()+p.groundOffset)
	jump := btn.Has(entity.ControlJump)
	switch {
	case p.onGround:
		if jump && !p.lastJump {
			p.yvel = -spec.JumpSpeed
			p.jumpCounter = 0
		} else {
			p.yvel = 0
			const tile = float64(common.TileSize)
			p.pos.Y = math.Floor(p.pos.Y/tile)*tile + tile - float64(p.groundOffset)
		}
	case p.jumpCounter < spec.JumpHoldFrames:
		if jump {
			p.yvel -= spec.JumpBoost * dt
			p.jumpCounter++
		} else {
			p.jumpCounter = spec.JumpHoldFrames
		}
	default:
		p.running = false
		if p.yvel < spec.MaxFallSpeed {
			p.yvel += spec.Gravity * dt
		}
	}
	if p.yvel < 0 && tiles.IsSolid(p.x(), p.y()-20) {
		p.yvel = 0
	}
	p.lastJump = jump
	p.pos.Y += p.yvel * dt

	p.walk(f)
}

func (p *Player) climb(f *entity.Frame, onLadder bool) {
	if !onLadder {
		p.climbing = false
	}
	step := p.kit.Player.ClimbSpeed * f.DT
	switch {
	case f.Buttons.Has(entity.ControlUp) && !f.Tiles.IsSolid(p.x(), p.y()):
		p.pos.Y -= step
	case f.Buttons.Has(entity.ControlDown) && !f.Tiles.IsSolid(p.x(), p.y()+p.groundOffset):
		p.pos.Y += step
	}
	switch {
	case f.Buttons.Has(entity.ControlLeft):
		p.pos.X -= step
	case f.Buttons.Has(entity.ControlRight):
		p.pos.X += step
	}
}

// aim draws, holds and releases the bow. Releasing launches an arrow whose
// speed grows with how long the bow was held.
func (p *Player) aim(f *entity.Frame) {
	spec := p.kit.Player
	if !f.Buttons.Has(entity.ControlFire) {
		if p.bowDrawn {
			p.release(f)
		}
		return
	}
	if p.bowDrawn {
		p.drawTime += f.DT
	} else {
		p.bowDrawn = true
		p.drawTime = 0
	}
	if f.Buttons.Has(entity.ControlUp) && p.angle > -math.Pi/2 {
		p.angle -= f.DT * spec.AimSpeed
	}
	if f.Buttons.Has(entity.ControlDown) && p.angle < math.Pi/2 {
		p.angle += f.DT * spec.AimSpeed
	}
}

func (p *Player) release(f *entity.Frame) {
	bow := p.kit.Player.Bow
	speed := cp.Clamp(p.drawTime, bow.MinDraw, bow.MaxDraw) * bow.Power
	angle := p.angle
	if p.facingLeft {
		angle = math.Pi - angle
	}
	f.Spawn.Push(NewArrow(p.kit, p.pos, angle, speed))
	p.kit.Sound.Play(sound.EffectArrow)
	p.bowDrawn = false
}

func (p *Player) walk(f *entity.Frame) {
	spec := p.kit.Player
	switch {
	case f.Buttons.Has(entity.ControlLeft) && p.clear(f.Tiles, -16):
		p.pos.X -= spec.RunSpeed * f.DT
		p.facingLeft = true
		p.running = p.onGround
	case f.Buttons.Has(entity.ControlRight) && p.clear(f.Tiles, 16):
		p.pos.X += spec.RunSpeed * f.DT
		p.facingLeft = false
		p.running = p.onGround
	default:
		p.running = false
		p.runFrame = 0
		p.frameTime = 0
	}

	if p.running {
		p.frameTime += f.DT
		if p.frameTime > spec.RunFrameDuration {
			p.frameTime -= spec.RunFrameDuration
			p.runFrame = (p.runFrame + 1) % len(p.kit.Sprites.BodyRun)
		}
	}
}

// clear reports whether both the knee and head probes dx pixels to the side
// are free.
func (p *Player) clear(tiles entity.TileQuery, dx int) bool {
	x := p.x() + dx
	return !tiles.IsSolid(x, p.y()+p.groundOffset-3) && !tiles.IsSolid(x, p.y()-15)
}

func (p *Player) Draw(pl gfx.Placer) {
	sp := p.kit.Sprites
	x, y := p.x(), p.y()
	if p.killed {
		pl.Place(x, y, sp.Dead, 0, false)
		return
	}
	if p.climbing {
		frame := sp.Climb[1]
		if int(p.pos.Y+p.pos.X)%common.TileSize > common.TileSize/2 {
			frame = sp.Climb[0]
		}
		pl.Place(x, y, frame, 0, false)
		return
	}

	if !p.bowDrawn {
		pl.Place(x, y, sp.BowOnBack, 0, p.facingLeft)
	}

	body := sp.BodyIdle
	switch {
	case !p.onGround:
		body = sp.BodyJump
	case p.running:
		body = sp.BodyRun[p.runFrame]
	}
	pl.Place(x, y, body, 0, p.facingLeft)

	if p.bowDrawn {
		angle := p.angle
		if p.facingLeft {
			angle = -angle
		}
		pl.Place(x, y, sp.BowDrawn, angle, p.facingLeft)
		return
	}
	arms := sp.ArmsIdle
	if p.running {
		arms = sp.ArmsRun[p.runFrame]
	}
	pl.Place(x, y, arms, 0, p.facingLeft)
}

// IsLive is always true: a killed player stays on the map as a corpse.
func (p *Player) IsLive() bool                 { return true }
func (p *Player) CollisionClass() entity.Class { return ClassPlayer }
func (p *Player) CollisionMask() entity.Class  { return ClassMissile }

func (p *Player) BoundingBox() common.Rect {
	if p.killed {
		return common.NewRect(p.x()-32, p.y()+40, 64, 14)
	}
	return common.NewRect(p.x()-5, p.y()-5, 10, 15)
}

func (p *Player) Collide(entity.View) {
	if p.killed {
		return
	}
	p.killed = true
	p.kit.Sound.Play(sound.EffectDeath)
}
