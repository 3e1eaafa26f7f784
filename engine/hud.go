package engine

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	ebtext "github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/colornames"
	"golang.org/x/image/font/basicfont"
)

// Stats is the per-frame information shown by the debug HUD.
type Stats struct {
	TPS         float64
	FPS         float64
	Frame       uint64
	Entities    int
	Comparisons int
	Flushes     int
	Vertices    int
	ScrollX     int
	ScrollY     int
	Paused      bool
}

// Lines formats s one value per line.
func (s Stats) Lines() []string {
	lines := []string{
		fmt.Sprintf("tps %.1f fps %.1f frame %d", s.TPS, s.FPS, s.Frame),
		fmt.Sprintf("entities %d pairs %d", s.Entities, s.Comparisons),
		fmt.Sprintf("flushes %d vertices %d", s.Flushes, s.Vertices),
		fmt.Sprintf("scroll %d,%d", s.ScrollX, s.ScrollY),
	}
	if s.Paused {
		lines = append(lines, "PAUSED")
	}
	return lines
}

// HUD draws debug text over the frame. It is drawn after the sprite batch
// flush and adds its own draw calls.
type HUD struct {
	face       ebtext.Face
	lineHeight float64
	bg         color.Color
	fg         color.Color
}

func NewHUD() *HUD {
	face := ebtext.NewGoXFace(basicfont.Face7x13)
	return &HUD{
		face:       face,
		lineHeight: 14,
		bg:         color.RGBA{0, 0, 0, 160},
		fg:         colornames.Yellow,
	}
}

func (h *HUD) Draw(screen *ebiten.Image, s Stats) {
	lines := s.Lines()

	width := 0.0
	for _, l := range lines {
		w, _ := ebtext.Measure(l, h.face, h.lineHeight)
		width = max(width, w)
	}
	vector.DrawFilledRect(screen, 4, 4, float32(width)+8, float32(h.lineHeight*float64(len(lines)))+8, h.bg, false)

	for i, l := range lines {
		op := &ebtext.DrawOptions{}
		op.GeoM.Translate(8, 8+float64(i)*h.lineHeight)
		op.ColorScale.ScaleWithColor(h.fg)
		ebtext.Draw(screen, l, h.face, op)
	}
}

// PausedBanner draws the centered pause label.
func (h *HUD) PausedBanner(screen *ebiten.Image) {
	const label = "PAUSED"
	w, _ := ebtext.Measure(label, h.face, h.lineHeight)
	b := screen.Bounds()

	op := &ebtext.DrawOptions{}
	op.GeoM.Translate((float64(b.Dx())-w)/2, float64(b.Dy())/2-h.lineHeight/2)
	op.ColorScale.ScaleWithColor(colornames.White)
	ebtext.Draw(screen, label, h.face, op)
}
