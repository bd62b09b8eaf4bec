package level

import (
	"math"

	"bytecrawl/internal/anim"
	"bytecrawl/internal/geom"
)

const (
	// CellWidth is the number of terminal columns one tile occupies.
	CellWidth = 2

	borderThreshold = 2
	centerSpeed     = 2
)

// Camera is the tile-space viewport onto the level.
type Camera struct {
	Offset geom.Pos  // top-left tile
	View   geom.Size // in tiles

	centering bool
	target    geom.Pos
}

// NewCamera creates a camera showing view tiles.
func NewCamera(view geom.Size) *Camera {
	return &Camera{View: view}
}

// Resize changes the viewport size keeping the middle tile in place.
func (c *Camera) Resize(view geom.Size) {
	mid := c.Middle()
	c.View = view
	c.Center(mid)
}

// Rect is the area of the map currently in view.
func (c *Camera) Rect() geom.Rect { return geom.Rect{Pos: c.Offset, Size: c.View} }

// Middle is the tile in the centre of the viewport.
func (c *Camera) Middle() geom.Pos { return c.Rect().Middle() }

// Center snaps the viewport so p is in the middle.
func (c *Camera) Center(p geom.Pos) {
	c.Offset = p.Add(-c.View.W/2, -c.View.H/2)
}

// Centering reports whether a centering animation is running.
func (c *Camera) Centering() bool { return c.centering }

// StopCentering aborts a running centering animation.
func (c *Camera) StopCentering() { c.centering = false }

// CenterOn scrolls toward p by a couple of tiles per tick. A request made
// while already centering is ignored.
func (c *Camera) CenterOn(p geom.Pos, sched *anim.Scheduler) {
	if c.centering {
		return
	}
	c.centering = true
	c.target = p
	sched.Add(anim.Func(c.centerStep))
}

func (c *Camera) centerStep() bool {
	if !c.centering {
		return false
	}
	d := c.target.Minus(c.Middle())
	if abs(d.X) <= 1 && abs(d.Y) <= 1 {
		c.centering = false
		return false
	}
	l := math.Hypot(float64(d.X), float64(d.Y))
	sx := int(math.Round(float64(d.X) / l * centerSpeed))
	sy := int(math.Round(float64(d.Y) / l * centerSpeed))
	c.Offset = c.Offset.Add(clampTo(sx, d.X), clampTo(sy, d.Y))
	return true
}

// NearBorder reports whether p is within a couple of tiles of the viewport
// edge, or outside it.
func (c *Camera) NearBorder(p geom.Pos) bool {
	inner := geom.R(
		c.Offset.X+borderThreshold,
		c.Offset.Y+borderThreshold,
		c.View.W-2*borderThreshold,
		c.View.H-2*borderThreshold,
	)
	return !inner.Contains(p)
}

// WorldToScreen converts a tile to the terminal cell of its left column.
// visible is false when the tile is outside the viewport.
func (c *Camera) WorldToScreen(p geom.Pos) (sx, sy int, visible bool) {
	sx = (p.X - c.Offset.X) * CellWidth
	sy = p.Y - c.Offset.Y
	visible = c.Rect().Contains(p)
	return
}

// ScreenToWorld converts a terminal cell to the tile under it.
func (c *Camera) ScreenToWorld(sx, sy int) geom.Pos {
	return geom.P(sx/CellWidth+c.Offset.X, sy+c.Offset.Y)
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

// clampTo limits step to the magnitude of d so a step never overshoots.
func clampTo(step, d int) int {
	if abs(step) > abs(d) {
		return d
	}
	return step
}
