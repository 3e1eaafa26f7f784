package gfx

import (
	"errors"
	"fmt"
	"sort"

	"gopkg.in/yaml.v3"
)

var ErrUnknownSprite = errors.New("gfx: unknown sprite")

// SheetEntry is one manifest record, in atlas pixels.
type SheetEntry struct {
	X       int `yaml:"x"`
	Y       int `yaml:"y"`
	W       int `yaml:"w"`
	H       int `yaml:"h"`
	OriginX int `yaml:"origin_x"`
	OriginY int `yaml:"origin_y"`
}

// Sheet maps sprite names to their atlas placement.
type Sheet struct {
	atlasW, atlasH int
	sprites        map[string]Sprite
}

// ParseSheet reads a YAML manifest of name -> SheetEntry and converts every
// entry to normalized coordinates for an atlasW x atlasH atlas.
func ParseSheet(data []byte, atlasW, atlasH int) (*Sheet, error) {
	if atlasW <= 0 || atlasH <= 0 {
		return nil, fmt.Errorf("gfx: invalid atlas size %dx%d", atlasW, atlasH)
	}

	var entries map[string]SheetEntry
	if err := yaml.Unmarshal(data, &entries); err != nil {
		return nil, fmt.Errorf("gfx: unmarshal sheet: %w", err)
	}

	s := &Sheet{atlasW: atlasW, atlasH: atlasH, sprites: make(map[string]Sprite, len(entries))}
	for name, e := range entries {
		if e.W <= 0 || e.H <= 0 || e.X < 0 || e.Y < 0 || e.X+e.W > atlasW || e.Y+e.H > atlasH {
			return nil, fmt.Errorf("gfx: sprite %q at %d,%d %dx%d outside %dx%d atlas", name, e.X, e.Y, e.W, e.H, atlasW, atlasH)
		}
		s.sprites[name] = Sprite{
			Left:    float32(e.X) / float32(atlasW),
			Top:     float32(e.Y) / float32(atlasH),
			Right:   float32(e.X+e.W) / float32(atlasW),
			Bottom:  float32(e.Y+e.H) / float32(atlasH),
			Width:   e.W,
			Height:  e.H,
			OriginX: e.OriginX,
			OriginY: e.OriginY,
		}
	}
	return s, nil
}

// Sprite looks up a sprite by name.
func (s *Sheet) Sprite(name string) (Sprite, error) {
	if s == nil {
		return Sprite{}, fmt.Errorf("%w: %q (nil sheet)", ErrUnknownSprite, name)
	}
	sp, ok := s.sprites[name]
	if !ok {
		return Sprite{}, fmt.Errorf("%w: %q", ErrUnknownSprite, name)
	}
	return sp, nil
}

// Lookup resolves several names at once, failing on the first missing one.
func (s *Sheet) Lookup(names ...string) ([]Sprite, error) {
	out := make([]Sprite, 0, len(names))
	for _, n := range names {
		sp, err := s.Sprite(n)
		if err != nil {
			return nil, err
		}
		out = append(out, sp)
	}
	return out, nil
}

// AtlasSize returns the atlas dimensions the sheet was normalized against.
func (s *Sheet) AtlasSize() (int, int) {
	return s.atlasW, s.atlasH
}

// Names returns all sprite names in sorted order.
func (s *Sheet) Names() []string {
	names := make([]string, 0, len(s.sprites))
	for n := range s.sprites {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}
