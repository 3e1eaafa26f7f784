package common

import "fmt"

// Rect is an axis aligned box in world units. Left/Top is the minimum corner.
type Rect struct {
	Left, Top     int
	Width, Height int
}

func NewRect(left, top, width, height int) Rect {
	return Rect{Left: left, Top: top, Width: width, Height: height}
}

func (r Rect) Right() int {
	return r.Left + r.Width
}

func (r Rect) Bottom() int {
	return r.Top + r.Height
}

// Overlaps reports whether the interiors of r and o intersect. Boxes that only
// share an edge do not overlap.
func (r Rect) Overlaps(o Rect) bool {
	return r.Left < o.Right() &&
		o.Left < r.Right() &&
		r.Top < o.Bottom() &&
		o.Top < r.Bottom()
}

func (r Rect) String() string {
	return fmt.Sprintf("Rect{%d,%d %dx%d}", r.Left, r.Top, r.Width, r.Height)
}
