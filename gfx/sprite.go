package gfx

import "github.com/milk9111/archer/common"

// Sprite locates one image inside the atlas. Left/Top/Right/Bottom are
// normalized texture coordinates, Width/Height the on-screen size in pixels and
// OriginX/OriginY the pivot, measured from the image's top-left corner, that
// placements position and rotate around.
type Sprite struct {
	Left, Top, Right, Bottom float32
	Width, Height            int
	OriginX, OriginY         int
}

// TileSprite returns the sprite for a map tile: TileSize square, origin at the
// top-left corner.
func TileSprite(left, top, right, bottom float32) Sprite {
	return Sprite{
		Left:   left,
		Top:    top,
		Right:  right,
		Bottom: bottom,
		Width:  common.TileSize,
		Height: common.TileSize,
	}
}

// Placer accepts sprite placements in world coordinates.
type Placer interface {
	Place(x, y int, s Sprite, rotation float64, flipH bool)
}
