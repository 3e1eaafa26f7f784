package main

import (
	"fmt"
	"log"

	"github.com/hajimehoshi/ebiten/v2/audio"

	"github.com/milk9111/archer/assets"
	"github.com/milk9111/archer/common"
	"github.com/milk9111/archer/config"
	"github.com/milk9111/archer/content"
	"github.com/milk9111/archer/engine"
	"github.com/milk9111/archer/entity"
	"github.com/milk9111/archer/gfx"
	"github.com/milk9111/archer/sound"
	"github.com/milk9111/archer/tilemap"
)

// NewGame loads the level and every asset it needs and wires them into an
// engine ready for ebiten.RunGame.
func NewGame(cfg config.Config) (*engine.Engine, error) {
	policy, err := tilemap.ParseOutOfBounds(cfg.OutOfBounds)
	if err != nil {
		return nil, err
	}
	m, err := loadMap(cfg.Level, policy)
	if err != nil {
		return nil, err
	}

	sheet, err := assets.Sheet()
	if err != nil {
		return nil, err
	}
	atlas, err := assets.Atlas()
	if err != nil {
		return nil, err
	}

	fx, err := newEffects(cfg.Mute)
	if err != nil {
		return nil, err
	}
	kit, err := content.LoadKit(sheet, fx)
	if err != nil {
		return nil, err
	}

	registry := entity.NewRegistry()
	if err := content.Register(registry, kit); err != nil {
		return nil, err
	}
	world := entity.NewWorld()
	player, err := registry.Populate(world, m)
	if err != nil {
		return nil, err
	}
	log.Printf("game: spawned %d entities", world.Len())

	bindings, err := engine.ParseBindings(cfg.Keys)
	if err != nil {
		return nil, err
	}

	renderer := gfx.NewRenderer(atlas, common.BaseWidth, common.BaseHeight)
	return engine.New(world, m, renderer, engine.NewKeyboardInput(bindings), player, engine.Options{
		TPS:   cfg.TPS,
		Debug: cfg.Debug,
		Near:  cfg.Camera.Near,
		Far:   cfg.Camera.Far,
	}), nil
}

// loadMap reads the level at path, or the embedded map when path is empty.
func loadMap(path string, policy tilemap.OutOfBounds) (*tilemap.TileMap, error) {
	if path == "" {
		return assets.Map(tilemap.WithOutOfBounds(policy))
	}
	m, err := tilemap.Load(path, tilemap.WithOutOfBounds(policy))
	if err != nil {
		return nil, fmt.Errorf("level %s: %w", path, err)
	}
	return m, nil
}

func newEffects(mute bool) (sound.Effects, error) {
	if mute {
		return sound.Nop{}, nil
	}
	p, err := sound.NewPlayer(audio.NewContext(sound.SampleRate), assets.LoadFile)
	if err != nil {
		return nil, err
	}
	return p, nil
}
