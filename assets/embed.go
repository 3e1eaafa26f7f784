package assets

import (
	"bytes"
	"embed"
	"fmt"
	"image"
	_ "image/png"
	"path/filepath"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/milk9111/archer/gfx"
	"github.com/milk9111/archer/tilemap"
)

const (
	AtlasFile = "atlas.png"
	SheetFile = "sprites.yaml"
	MapFile   = "map.bin"
)

//go:embed atlas.png sprites.yaml map.bin sfx/*.wav
var assetsFS embed.FS

// LoadFile loads an embedded asset by assets-relative path.
func LoadFile(path string) ([]byte, error) {
	clean := cleanAssetPath(path)
	return assetsFS.ReadFile(clean)
}

// AtlasImage decodes the sprite atlas.
func AtlasImage() (image.Image, error) {
	b, err := LoadFile(AtlasFile)
	if err != nil {
		return nil, err
	}
	img, _, err := image.Decode(bytes.NewReader(b))
	if err != nil {
		return nil, fmt.Errorf("assets: decode %s: %w", AtlasFile, err)
	}
	return img, nil
}

// Atlas uploads the sprite atlas. It must be called once, after the graphics
// driver is available.
func Atlas() (*ebiten.Image, error) {
	img, err := AtlasImage()
	if err != nil {
		return nil, err
	}
	return ebiten.NewImageFromImage(img), nil
}

// AtlasSize reads the atlas dimensions without decoding its pixels.
func AtlasSize() (int, int, error) {
	b, err := LoadFile(AtlasFile)
	if err != nil {
		return 0, 0, err
	}
	cfg, _, err := image.DecodeConfig(bytes.NewReader(b))
	if err != nil {
		return 0, 0, fmt.Errorf("assets: decode %s: %w", AtlasFile, err)
	}
	return cfg.Width, cfg.Height, nil
}

// Sheet parses the sprite manifest against the atlas size.
func Sheet() (*gfx.Sheet, error) {
	w, h, err := AtlasSize()
	if err != nil {
		return nil, err
	}
	data, err := LoadFile(SheetFile)
	if err != nil {
		return nil, err
	}
	return gfx.ParseSheet(data, w, h)
}

// Map decodes the compiled default level.
func Map(opts ...tilemap.Option) (*tilemap.TileMap, error) {
	return tilemap.LoadFS(assetsFS, MapFile, opts...)
}

func cleanAssetPath(path string) string {
	if path == "" {
		return ""
	}
	if filepath.IsAbs(path) {
		s := filepath.ToSlash(path)
		if idx := strings.LastIndex(s, "/assets/"); idx >= 0 {
			return s[idx+len("/assets/"):]
		}
		return filepath.Base(path)
	}
	s := filepath.ToSlash(path)
	if after, ok := strings.CutPrefix(s, "assets/"); ok {
		return after
	}
	return s
}
