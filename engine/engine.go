package engine

import (
	"image/color"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"golang.org/x/image/colornames"

	"github.com/milk9111/archer/common"
	"github.com/milk9111/archer/entity"
	"github.com/milk9111/archer/gfx"
	"github.com/milk9111/archer/tilemap"
)

const DefaultTPS = 60

// Options configures an Engine.
type Options struct {
	TPS        int
	Debug      bool
	Background color.Color
	// Near and Far are the camera dead zone as fractions of the view. Zero
	// values select DefaultNear and DefaultFar.
	Near, Far float64
}

// Engine runs the fixed step game loop. It implements ebiten.Game.
type Engine struct {
	world    *entity.World
	tiles    *tilemap.TileMap
	renderer *gfx.Renderer
	camera   *Camera
	input    InputSource
	hud      *HUD

	tracked    entity.Handle
	trackedBox common.Rect

	tps        int
	background color.Color
	debug      bool

	stopped     bool
	paused      bool
	lastButtons entity.Buttons
	frames      uint64
}

// New creates an engine that simulates world over tiles and draws through
// renderer. tracked is the entity the camera follows, usually the player
// handle returned by entity.Registry.Populate.
func New(world *entity.World, tiles *tilemap.TileMap, renderer *gfx.Renderer, input InputSource, tracked entity.Handle, opts Options) *Engine {
	if opts.TPS <= 0 {
		opts.TPS = DefaultTPS
	}
	if opts.Background == nil {
		opts.Background = colornames.Skyblue
	}

	viewW, viewH := renderer.ViewSize()
	cam := NewCamera(viewW, viewH)
	if opts.Near != 0 || opts.Far != 0 {
		cam.SetDeadZone(opts.Near, opts.Far)
	}

	e := &Engine{
		world:      world,
		tiles:      tiles,
		renderer:   renderer,
		camera:     cam,
		input:      input,
		tracked:    tracked,
		tps:        opts.TPS,
		background: opts.Background,
		debug:      opts.Debug,
		hud:        NewHUD(),
	}

	if t, ok := world.Get(tracked); ok {
		e.trackedBox = t.BoundingBox()
		mapW, mapH := tiles.PixelSize()
		cam.CenterOn(e.trackedBox, mapW, mapH)
		renderer.SetOffset(cam.X, cam.Y)
	}
	return e
}

func (e *Engine) Camera() *Camera {
	return e.camera
}

func (e *Engine) Paused() bool {
	return e.paused
}

// Frames returns the number of simulated frames.
func (e *Engine) Frames() uint64 {
	return e.frames
}

// Stop ends the game at the start of the next Update.
func (e *Engine) Stop() {
	e.stopped = true
}

// Update is called by ebiten at the configured TPS.
func (e *Engine) Update() error {
	if e.stopped {
		return ebiten.Termination
	}

	var buttons entity.Buttons
	if e.input != nil {
		var quit bool
		buttons, quit = e.input.Poll()
		if quit {
			log.Printf("engine: quit requested after %d frames", e.frames)
			e.Stop()
			return ebiten.Termination
		}
	}

	pressed := buttons &^ e.lastButtons
	e.lastButtons = buttons
	if pressed.Has(entity.ControlMenu) {
		e.paused = !e.paused
	}
	if e.paused {
		return nil
	}

	e.Step(buttons &^ entity.ControlMenu)
	return nil
}

// Step simulates one frame of 1/TPS seconds with the given controls.
func (e *Engine) Step(buttons entity.Buttons) {
	if t, ok := e.world.Get(e.tracked); ok {
		e.trackedBox = t.BoundingBox()
		mapW, mapH := e.tiles.PixelSize()
		e.camera.Follow(e.trackedBox, mapW, mapH)
	}
	e.renderer.SetOffset(e.camera.X, e.camera.Y)

	e.world.Step(1/float64(e.tps), buttons, e.tiles, e.trackedBox)
	e.frames++
}

// Draw is called by ebiten once per rendered frame.
func (e *Engine) Draw(screen *ebiten.Image) {
	screen.Fill(e.background)
	e.drawFrame(screen)

	if e.debug {
		e.hud.Draw(screen, e.stats())
	}
	if e.paused {
		e.hud.PausedBanner(screen)
	}
}

// drawFrame places the visible tiles and every entity, then submits them as
// one batch.
func (e *Engine) drawFrame(t gfx.Target) {
	e.tiles.Draw(e.renderer, e.camera.Visible())
	e.world.Draw(e.renderer)
	e.renderer.Flush(t)
}

func (e *Engine) stats() Stats {
	flushes, vertices := e.renderer.Stats()
	return Stats{
		TPS:         ebiten.ActualTPS(),
		FPS:         ebiten.ActualFPS(),
		Frame:       e.frames,
		Entities:    e.world.Len(),
		Comparisons: e.world.Comparisons(),
		Flushes:     flushes,
		Vertices:    vertices,
		ScrollX:     e.camera.X,
		ScrollY:     e.camera.Y,
		Paused:      e.paused,
	}
}

func (e *Engine) Layout(outsideWidth, outsideHeight int) (int, int) {
	return e.renderer.ViewSize()
}
