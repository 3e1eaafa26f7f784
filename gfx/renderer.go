package gfx

import (
	"image"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
)

// VerticesPerSprite is the number of batch vertices appended by one placement:
// two triangles sharing the top-right/bottom-left diagonal.
const VerticesPerSprite = 6

// Vertex is one batch entry. X/Y are clip space coordinates in [-1, 1] (y up),
// U/V normalized atlas coordinates.
type Vertex struct {
	X, Y float32
	U, V float32
}

// Target receives the flushed batch. *ebiten.Image satisfies it.
type Target interface {
	DrawTriangles32(vertices []ebiten.Vertex, indices []uint32, img *ebiten.Image, options *ebiten.DrawTrianglesOptions)
}

// Renderer accumulates sprite placements for a frame and submits them as a
// single textured triangle list. All sprites come from one atlas image that is
// supplied at construction and never modified.
type Renderer struct {
	atlas  *ebiten.Image
	atlasW float32
	atlasH float32
	viewW  float32
	viewH  float32

	offX, offY int

	batch   []Vertex
	verts   []ebiten.Vertex
	indices []uint32
	opts    ebiten.DrawTrianglesOptions

	flushes   int
	lastCount int
}

// NewRenderer creates a renderer drawing from atlas into a viewW x viewH view.
func NewRenderer(atlas *ebiten.Image, viewW, viewH int) *Renderer {
	var b image.Rectangle
	if atlas != nil {
		b = atlas.Bounds()
	}
	return NewRendererWithSize(atlas, b.Dx(), b.Dy(), viewW, viewH)
}

// NewRendererWithSize is NewRenderer with explicit atlas dimensions, for
// callers that have no GPU image (tools, tests).
func NewRendererWithSize(atlas *ebiten.Image, atlasW, atlasH, viewW, viewH int) *Renderer {
	return &Renderer{
		atlas:  atlas,
		atlasW: float32(atlasW),
		atlasH: float32(atlasH),
		viewW:  float32(viewW),
		viewH:  float32(viewH),
		opts:   ebiten.DrawTrianglesOptions{Filter: ebiten.FilterLinear},
	}
}

// SetOffset sets the scroll position subtracted from every placement.
func (r *Renderer) SetOffset(x, y int) {
	r.offX = x
	r.offY = y
}

// Offset returns the current scroll position.
func (r *Renderer) Offset() (int, int) {
	return r.offX, r.offY
}

// ViewSize returns the viewport size in pixels.
func (r *Renderer) ViewSize() (int, int) {
	return int(r.viewW), int(r.viewH)
}

// Place appends one sprite to the batch. (x, y) is the world position of the
// sprite origin, rotation is in radians (clockwise on screen) and flipH mirrors
// the image horizontally by swapping its U coordinates. The atlas rectangle is
// not validated.
func (r *Renderer) Place(x, y int, s Sprite, rotation float64, flipH bool) {
	left, right := s.Left, s.Right
	if flipH {
		left, right = right, left
	}

	// Corner order:
	// 0      1
	// +------+
	// |    / |
	// |  /   |
	// +------+
	// 2      3
	dl := float32(-s.OriginX)
	dt := float32(-s.OriginY)
	dr := dl + float32(s.Width)
	db := dt + float32(s.Height)
	corners := [4][2]float32{{dl, dt}, {dr, dt}, {dl, db}, {dr, db}}

	if rotation != 0 {
		sin, cos := math.Sincos(rotation)
		m := rotation2{float32(cos), float32(-sin), float32(sin), float32(cos)}
		for i := range corners {
			corners[i] = m.apply(corners[i])
		}
	}

	px := float32(x - r.offX)
	py := float32(y - r.offY)
	for i := range corners {
		corners[i] = r.toClip(corners[i][0]+px, corners[i][1]+py)
	}

	p0, p1, p2, p3 := corners[0], corners[1], corners[2], corners[3]
	r.batch = append(r.batch,
		Vertex{p0[0], p0[1], left, s.Top},
		Vertex{p1[0], p1[1], right, s.Top},
		Vertex{p2[0], p2[1], left, s.Bottom},
		Vertex{p1[0], p1[1], right, s.Top},
		Vertex{p3[0], p3[1], right, s.Bottom},
		Vertex{p2[0], p2[1], left, s.Bottom},
	)
}

// Batch returns the vertices accumulated since the last flush. The slice is
// only valid until the next Place or Flush.
func (r *Renderer) Batch() []Vertex {
	return r.batch
}

// Flush submits the whole batch to t in one draw call and clears it. An empty
// batch issues no draw call.
func (r *Renderer) Flush(t Target) {
	r.flushes++
	r.lastCount = len(r.batch)
	defer func() { r.batch = r.batch[:0] }()

	if len(r.batch) == 0 || t == nil {
		return
	}

	r.verts = r.verts[:0]
	r.indices = r.indices[:0]
	for i, v := range r.batch {
		r.verts = append(r.verts, ebiten.Vertex{
			DstX:   (v.X + 1) / 2 * r.viewW,
			DstY:   (1 - v.Y) / 2 * r.viewH,
			SrcX:   v.U * r.atlasW,
			SrcY:   v.V * r.atlasH,
			ColorR: 1,
			ColorG: 1,
			ColorB: 1,
			ColorA: 1,
		})
		r.indices = append(r.indices, uint32(i))
	}
	t.DrawTriangles32(r.verts, r.indices, r.atlas, &r.opts)
}

// Stats reports the number of flushes so far and the vertex count of the last
// one.
func (r *Renderer) Stats() (flushes, lastVertices int) {
	return r.flushes, r.lastCount
}

func (r *Renderer) toClip(px, py float32) [2]float32 {
	return [2]float32{
		(px/r.viewW)*2 - 1,
		1 - (py/r.viewH)*2,
	}
}

type rotation2 [4]float32

func (m rotation2) apply(p [2]float32) [2]float32 {
	return [2]float32{
		m[0]*p[0] + m[1]*p[1],
		m[2]*p[0] + m[3]*p[1],
	}
}
