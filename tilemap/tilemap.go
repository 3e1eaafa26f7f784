package tilemap

import (
	"errors"
	"fmt"

	"github.com/milk9111/archer/common"
	"github.com/milk9111/archer/gfx"
)

const (
	FlagSolid  uint8 = 1 << 0
	FlagLadder uint8 = 1 << 1
)

var (
	ErrBadMagic      = errors.New("tilemap: bad magic")
	ErrTruncated     = errors.New("tilemap: truncated data")
	ErrBadDimensions = errors.New("tilemap: bad dimensions")
	ErrBadTileIndex  = errors.New("tilemap: tile index has no tile type")
	ErrBadObjectName = errors.New("tilemap: bad object name")
)

// OutOfBounds selects how queries outside the grid are answered.
type OutOfBounds int

const (
	// OutOfBoundsEmpty treats everything outside the map as open air.
	OutOfBoundsEmpty OutOfBounds = iota
	// OutOfBoundsSolid treats everything outside the map as solid wall.
	OutOfBoundsSolid
)

func (o OutOfBounds) String() string {
	switch o {
	case OutOfBoundsEmpty:
		return "empty"
	case OutOfBoundsSolid:
		return "solid"
	default:
		return fmt.Sprintf("OutOfBounds(%d)", int(o))
	}
}

// ParseOutOfBounds accepts "empty" or "solid".
func ParseOutOfBounds(s string) (OutOfBounds, error) {
	switch s {
	case "", "empty":
		return OutOfBoundsEmpty, nil
	case "solid":
		return OutOfBoundsSolid, nil
	}
	return OutOfBoundsEmpty, fmt.Errorf("tilemap: unknown out-of-bounds policy %q", s)
}

// TileType is the metadata shared by every cell holding the same tile index.
type TileType struct {
	Flags uint8
	// Atlas rectangle, normalized.
	Left, Top, Right, Bottom float32
}

// Object is a spawn marker placed in the map.
type Object struct {
	Name string
	X, Y int32
}

// TileMap is a fixed grid of tile indices. It is read-only once built.
type TileMap struct {
	Width        int
	Height       int
	PlayerStartX int32
	PlayerStartY int32
	Objects      []Object

	tiles   []uint8
	types   []TileType
	sprites []gfx.Sprite
	oob     OutOfBounds
}

// Option configures a TileMap at construction.
type Option func(*TileMap)

// WithOutOfBounds sets the out-of-bounds policy. The default is OutOfBoundsEmpty.
func WithOutOfBounds(policy OutOfBounds) Option {
	return func(m *TileMap) {
		m.oob = policy
	}
}

// New builds a map from a row-major tile grid. Every non-zero index in tiles
// must refer to an entry of types, and the grid may hold at most maxCells
// cells, the same limit Decode enforces.
func New(width, height int, tiles []uint8, types []TileType, opts ...Option) (*TileMap, error) {
	if width < 0 || height < 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrBadDimensions, width, height)
	}
	if int64(width)*int64(height) > maxCells {
		return nil, fmt.Errorf("%w: %dx%d exceeds %d cells", ErrBadDimensions, width, height, maxCells)
	}
	if len(tiles) != width*height {
		return nil, fmt.Errorf("%w: %dx%d grid with %d cells", ErrBadDimensions, width, height, len(tiles))
	}
	for i, t := range tiles {
		if int(t) > len(types) {
			return nil, fmt.Errorf("%w: cell %d,%d uses %d, %d types", ErrBadTileIndex, i%width, i/width, t, len(types))
		}
	}

	m := &TileMap{
		Width:  width,
		Height: height,
		tiles:  append([]uint8(nil), tiles...),
		types:  append([]TileType(nil), types...),
	}
	m.sprites = make([]gfx.Sprite, len(types))
	for i, tt := range types {
		m.sprites[i] = gfx.TileSprite(tt.Left, tt.Top, tt.Right, tt.Bottom)
	}
	for _, opt := range opts {
		opt(m)
	}
	return m, nil
}

// OutOfBoundsPolicy returns the policy the map was built with.
func (m *TileMap) OutOfBoundsPolicy() OutOfBounds {
	return m.oob
}

// PixelSize returns the map extent in world units.
func (m *TileMap) PixelSize() (int, int) {
	return m.Width * common.TileSize, m.Height * common.TileSize
}

// Tile returns the tile index at grid cell (col, row), 0 outside the grid.
func (m *TileMap) Tile(col, row int) uint8 {
	if col < 0 || row < 0 || col >= m.Width || row >= m.Height {
		return 0
	}
	return m.tiles[row*m.Width+col]
}

// TileTypes returns a copy of the tile type table.
func (m *TileMap) TileTypes() []TileType {
	return append([]TileType(nil), m.types...)
}

// Tiles returns a copy of the grid.
func (m *TileMap) Tiles() []uint8 {
	return append([]uint8(nil), m.tiles...)
}

// Flags returns the tile-type flags at world point (x, y).
func (m *TileMap) Flags(x, y int) uint8 {
	if x < 0 || y < 0 || x >= m.Width*common.TileSize || y >= m.Height*common.TileSize {
		if m.oob == OutOfBoundsSolid {
			return FlagSolid
		}
		return 0
	}

	tile := m.Tile(x/common.TileSize, y/common.TileSize)
	if tile == 0 {
		return 0
	}
	return m.types[tile-1].Flags
}

func (m *TileMap) IsSolid(x, y int) bool {
	return m.Flags(x, y)&FlagSolid != 0
}

func (m *TileMap) IsLadder(x, y int) bool {
	return m.Flags(x, y)&FlagLadder != 0
}

// Draw places every non-empty tile that overlaps visible, row by row. Tiles
// outside visible are never submitted.
func (m *TileMap) Draw(p gfx.Placer, visible common.Rect) {
	left := common.ClampInt(common.FloorDiv(visible.Left, common.TileSize), 0, m.Width)
	right := common.ClampInt(common.CeilDiv(visible.Right(), common.TileSize), 0, m.Width)
	top := common.ClampInt(common.FloorDiv(visible.Top, common.TileSize), 0, m.Height)
	bottom := common.ClampInt(common.CeilDiv(visible.Bottom(), common.TileSize), 0, m.Height)

	for row := top; row < bottom; row++ {
		for col := left; col < right; col++ {
			tile := m.tiles[row*m.Width+col]
			if tile == 0 {
				continue
			}
			p.Place(col*common.TileSize, row*common.TileSize, m.sprites[tile-1], 0, false)
		}
	}
}
