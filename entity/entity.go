package entity

import (
	"github.com/milk9111/archer/common"
	"github.com/milk9111/archer/gfx"
)

// Buttons is the per-frame control bitmask.
type Buttons uint32

const (
	ControlUp Buttons = 1 << iota
	ControlDown
	ControlLeft
	ControlRight
	ControlFire
	ControlJump
	ControlMenu
)

// Has reports whether every bit of flag is set.
func (b Buttons) Has(flag Buttons) bool {
	return b&flag == flag && flag != 0
}

// Class is a collision class bitmask. An entity has a class (what it is) and a
// mask (which classes it accepts collisions from).
type Class uint32

// TileQuery is the read-only world geometry entities see during update.
// *tilemap.TileMap satisfies it.
type TileQuery interface {
	IsSolid(x, y int) bool
	IsLadder(x, y int) bool
}

// View is the part of an entity other entities may inspect.
type View interface {
	IsLive() bool
	CollisionClass() Class
	CollisionMask() Class
	BoundingBox() common.Rect
}

// Frame carries the inputs of one update call.
type Frame struct {
	DT      float64
	Spawn   *SpawnQueue
	Buttons Buttons
	Tiles   TileQuery
	// Tracked is the bounding box of the entity the camera follows.
	Tracked common.Rect
}

// Entity is implemented by every simulated object. Entities never reference
// each other: they react to others only through Collide and create new
// entities only by pushing them to the frame's spawn queue.
type Entity interface {
	View
	Update(f *Frame)
	Draw(p gfx.Placer)
	Collide(other View)
}
