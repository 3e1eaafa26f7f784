package levels

import (
	"errors"
	"fmt"
	"unicode/utf8"

	"github.com/milk9111/archer/common"
	"github.com/milk9111/archer/gfx"
	"github.com/milk9111/archer/tilemap"
)

// PlayerObject is the object type that sets the player start instead of
// becoming a marker.
const PlayerObject = "Player"

var (
	ErrNoPlayer   = errors.New("levels: no Player object")
	ErrOutsideMap = errors.New("levels: object outside a walled map")
)

// Compile builds a tile map from src, resolving tile sprites in sheet.
func Compile(src *Source, sheet *gfx.Sheet, opts ...tilemap.Option) (*tilemap.TileMap, error) {
	if len(src.Tileset) > 255 {
		return nil, fmt.Errorf("levels: %d tile types, at most 255", len(src.Tileset))
	}
	types := make([]tilemap.TileType, len(src.Tileset))
	for i, ts := range src.Tileset {
		sp, err := sheet.Sprite(ts.Sprite)
		if err != nil {
			return nil, fmt.Errorf("levels: tile type %d: %w", i+1, err)
		}
		var flags uint8
		if ts.Solid {
			flags |= tilemap.FlagSolid
		}
		if ts.Ladder {
			flags |= tilemap.FlagLadder
		}
		types[i] = tilemap.TileType{Flags: flags, Left: sp.Left, Top: sp.Top, Right: sp.Right, Bottom: sp.Bottom}
	}

	legend := make(map[rune]uint8, len(src.Legend))
	for key, idx := range src.Legend {
		r, size := utf8.DecodeRuneInString(key)
		if size != len(key) || key == "" {
			return nil, fmt.Errorf("levels: legend key %q must be one character", key)
		}
		if r == '.' || r == ' ' {
			return nil, fmt.Errorf("levels: legend key %q is reserved for empty cells", key)
		}
		if idx < 1 || idx > len(types) {
			return nil, fmt.Errorf("levels: legend %q -> %d, have %d tile types", key, idx, len(types))
		}
		legend[r] = uint8(idx)
	}

	height := len(src.Rows)
	width := 0
	if height > 0 {
		width = utf8.RuneCountInString(src.Rows[0])
	}
	tiles := make([]uint8, 0, width*height)
	for row, line := range src.Rows {
		if n := utf8.RuneCountInString(line); n != width {
			return nil, fmt.Errorf("levels: row %d is %d cells wide, want %d", row, n, width)
		}
		col := 0
		for _, r := range line {
			switch r {
			case '.', ' ':
				tiles = append(tiles, 0)
			default:
				idx, ok := legend[r]
				if !ok {
					return nil, fmt.Errorf("levels: unknown tile %q at %d,%d", r, col, row)
				}
				tiles = append(tiles, idx)
			}
			col++
		}
	}

	m, err := tilemap.New(width, height, tiles, types, opts...)
	if err != nil {
		return nil, fmt.Errorf("levels: %w", err)
	}

	havePlayer := false
	for _, obj := range src.Objects {
		if obj.Type == PlayerObject {
			if havePlayer {
				return nil, fmt.Errorf("levels: more than one %s object", PlayerObject)
			}
			havePlayer = true
			m.PlayerStartX = int32(snap(obj.X))
			m.PlayerStartY = int32(snap(obj.Y))
			continue
		}
		if obj.Type == "" || len(obj.Type) >= tilemap.ObjectNameSize {
			return nil, fmt.Errorf("levels: object type %q must be 1 to %d bytes", obj.Type, tilemap.ObjectNameSize-1)
		}
		m.Objects = append(m.Objects, tilemap.Object{Name: obj.Type, X: int32(obj.X), Y: int32(obj.Y)})
	}
	if !havePlayer {
		return nil, ErrNoPlayer
	}
	if m.OutOfBoundsPolicy() == tilemap.OutOfBoundsSolid {
		if err := checkInside(m); err != nil {
			return nil, err
		}
	}
	return m, nil
}

// checkInside rejects a player start or marker beyond the map edge. Under the
// solid policy everything out there is wall, so nothing placed there could
// move.
func checkInside(m *tilemap.TileMap) error {
	w, h := m.PixelSize()
	inside := func(x, y int32) bool {
		return x >= 0 && y >= 0 && int(x) < w && int(y) < h
	}
	if !inside(m.PlayerStartX, m.PlayerStartY) {
		return fmt.Errorf("%w: %s at %d,%d, map is %dx%d", ErrOutsideMap, PlayerObject, m.PlayerStartX, m.PlayerStartY, w, h)
	}
	for _, obj := range m.Objects {
		if !inside(obj.X, obj.Y) {
			return fmt.Errorf("%w: %s at %d,%d, map is %dx%d", ErrOutsideMap, obj.Name, obj.X, obj.Y, w, h)
		}
	}
	return nil
}

// snap rounds a pixel coordinate to the nearest tile corner.
func snap(v int) int {
	return common.FloorDiv(v+common.TileSize/2, common.TileSize) * common.TileSize
}
