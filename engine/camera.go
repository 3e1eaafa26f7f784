package engine

import (
	"math"

	"github.com/milk9111/archer/common"
)

const (
	DefaultNear = 1.0 / 3
	DefaultFar  = 2.0 / 3
)

// Camera scrolls a fixed size view over the map so the tracked box stays
// between the near and far dead zone boundaries on each axis.
type Camera struct {
	X, Y int

	viewW, viewH int
	near, far    float64
}

// NewCamera creates a camera at the map origin with the default dead zone.
func NewCamera(viewW, viewH int) *Camera {
	return &Camera{viewW: viewW, viewH: viewH, near: DefaultNear, far: DefaultFar}
}

// SetDeadZone sets the boundaries as fractions of the view. Values outside
// 0 <= near <= far <= 1 are ignored.
func (c *Camera) SetDeadZone(near, far float64) {
	if near < 0 || far > 1 || near > far {
		return
	}
	c.near = near
	c.far = far
}

// DeadZone returns the near and far boundaries as fractions of the view.
func (c *Camera) DeadZone() (float64, float64) {
	return c.near, c.far
}

// Follow moves the scroll so box is inside the dead zone. mapW and mapH are
// the map extent in pixels; the result is always within [0, map - view].
func (c *Camera) Follow(box common.Rect, mapW, mapH int) {
	c.X = followAxis(c.X, box.Left, box.Right(), c.viewW, mapW, c.near, c.far)
	c.Y = followAxis(c.Y, box.Top, box.Bottom(), c.viewH, mapH, c.near, c.far)
}

// CenterOn places box in the middle of the view, clamped to the map.
func (c *Camera) CenterOn(box common.Rect, mapW, mapH int) {
	c.X = common.ClampInt(box.Left+box.Width/2-c.viewW/2, 0, max(0, mapW-c.viewW))
	c.Y = common.ClampInt(box.Top+box.Height/2-c.viewH/2, 0, max(0, mapH-c.viewH))
}

// Visible returns the world rectangle currently on screen.
func (c *Camera) Visible() common.Rect {
	return common.NewRect(c.X, c.Y, c.viewW, c.viewH)
}

func followAxis(scroll, lo, hi, view, extent int, near, far float64) int {
	maxScroll := max(0, extent-view)
	nearEdge := int(math.Round(float64(view) * near))
	farEdge := int(math.Round(float64(view) * far))

	if hi > scroll+farEdge {
		scroll = min(hi-farEdge, maxScroll)
	} else if lo < scroll+nearEdge {
		scroll = common.ClampInt(lo-nearEdge, 0, maxScroll)
	}
	return common.ClampInt(scroll, 0, maxScroll)
}
