package engine

import (
	"testing"

	"github.com/milk9111/archer/common"
)

func TestCameraStaysInsideMap(t *testing.T) {
	const viewW, viewH = 300, 150
	const mapW, mapH = 1000, 600
	maxX, maxY := mapW-viewW, mapH-viewH

	cases := []struct {
		name string
		box  common.Rect
	}{
		{"far_right", common.NewRect(5000, 100, 10, 15)},
		{"far_below", common.NewRect(100, 9000, 10, 15)},
		{"far_left_above", common.NewRect(-4000, -4000, 10, 15)},
		{"inside", common.NewRect(500, 300, 10, 15)},
		{"past_both_far_edges", common.NewRect(mapW+1, mapH+1, 10, 15)},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			c := NewCamera(viewW, viewH)
			// Approach the target in steps, as a walking entity would, and
			// then jump there directly.
			for i := 0; i <= 50; i++ {
				b := tc.box
				b.Left = tc.box.Left * i / 50
				b.Top = tc.box.Top * i / 50
				c.Follow(b, mapW, mapH)
				if c.X < 0 || c.X > maxX || c.Y < 0 || c.Y > maxY {
					t.Fatalf("step %d: scroll %d,%d outside [0,%d]x[0,%d]", i, c.X, c.Y, maxX, maxY)
				}
			}
			c.Follow(tc.box, mapW, mapH)
			if c.X < 0 || c.X > maxX || c.Y < 0 || c.Y > maxY {
				t.Fatalf("scroll %d,%d outside [0,%d]x[0,%d]", c.X, c.Y, maxX, maxY)
			}
		})
	}
}

func TestCameraDeadZone(t *testing.T) {
	// 300x300 view: near boundary at 100, far at 200.
	cases := []struct {
		name         string
		startX       int
		box          common.Rect
		wantX, wantY int
	}{
		{"inside_dead_zone", 0, common.NewRect(120, 120, 10, 10), 0, 0},
		{"leading_edge_past_far", 0, common.NewRect(250, 120, 10, 10), 60, 0},
		{"leading_edge_clamped", 0, common.NewRect(1990, 120, 10, 10), 700, 0},
		{"trailing_edge_before_near", 500, common.NewRect(550, 120, 10, 10), 450, 0},
		{"trailing_edge_clamped_to_zero", 60, common.NewRect(50, 120, 10, 10), 0, 0},
		{"vertical_far", 0, common.NewRect(120, 280, 10, 30), 0, 110},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			c := NewCamera(300, 300)
			c.X = tc.startX
			c.Follow(tc.box, 1000, 1000)
			if c.X != tc.wantX || c.Y != tc.wantY {
				t.Fatalf("scroll = %d,%d, want %d,%d", c.X, c.Y, tc.wantX, tc.wantY)
			}
		})
	}
}

func TestCameraSmallMap(t *testing.T) {
	c := NewCamera(800, 450)
	c.Follow(common.NewRect(700, 400, 10, 10), 256, 128)
	if c.X != 0 || c.Y != 0 {
		t.Fatalf("scroll = %d,%d on a map smaller than the view", c.X, c.Y)
	}
	c.CenterOn(common.NewRect(700, 400, 10, 10), 256, 128)
	if c.X != 0 || c.Y != 0 {
		t.Fatalf("CenterOn scroll = %d,%d on a map smaller than the view", c.X, c.Y)
	}
}

func TestCameraSetDeadZone(t *testing.T) {
	c := NewCamera(400, 400)
	c.SetDeadZone(0.25, 0.75)
	if n, f := c.DeadZone(); n != 0.25 || f != 0.75 {
		t.Fatalf("dead zone = %v,%v", n, f)
	}
	c.SetDeadZone(0.8, 0.2)
	if n, f := c.DeadZone(); n != 0.25 || f != 0.75 {
		t.Fatalf("inverted dead zone accepted: %v,%v", n, f)
	}

	c.Follow(common.NewRect(310, 0, 10, 10), 2000, 2000)
	if c.X != 20 {
		t.Fatalf("scroll = %d, want 20 with far boundary at 300", c.X)
	}
	if v := c.Visible(); v != common.NewRect(20, 0, 400, 400) {
		t.Fatalf("Visible = %v", v)
	}
}
