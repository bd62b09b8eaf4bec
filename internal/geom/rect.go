package geom

// Size is a width and height in cells.
type Size struct {
	W, H int
}

// Rect is an axis-aligned rectangle anchored at its top-left cell.
type Rect struct {
	Pos  Pos
	Size Size
}

// R builds a Rect from its top-left corner and dimensions.
func R(x, y, w, h int) Rect {
	return Rect{Pos: Pos{x, y}, Size: Size{w, h}}
}

// Empty reports whether the rectangle covers no cells.
func (r Rect) Empty() bool { return r.Size.W <= 0 || r.Size.H <= 0 }

// Contains reports whether p lies inside r, border included.
func (r Rect) Contains(p Pos) bool {
	return p.X >= r.Pos.X && p.Y >= r.Pos.Y &&
		p.X < r.Pos.X+r.Size.W && p.Y < r.Pos.Y+r.Size.H
}

// StrictlyContains reports whether p lies inside r and off its border ring.
func (r Rect) StrictlyContains(p Pos) bool {
	return p.X > r.Pos.X && p.Y > r.Pos.Y &&
		p.X < r.Pos.X+r.Size.W-1 && p.Y < r.Pos.Y+r.Size.H-1
}

// Middle returns the cell at pos + size/2.
func (r Rect) Middle() Pos {
	return Pos{r.Pos.X + r.Size.W/2, r.Pos.Y + r.Size.H/2}
}

// BottomRight returns the first position past the rectangle on both axes.
func (r Rect) BottomRight() Pos {
	return Pos{r.Pos.X + r.Size.W, r.Pos.Y + r.Size.H}
}

// Corners returns the four corner cells: top-left, top-right,
// bottom-left, bottom-right.
func (r Rect) Corners() [4]Pos {
	x2, y2 := r.Pos.X+r.Size.W-1, r.Pos.Y+r.Size.H-1
	return [4]Pos{r.Pos, {x2, r.Pos.Y}, {r.Pos.X, y2}, {x2, y2}}
}

// SideMiddle returns the border cell in the middle of the side facing d.
func (r Rect) SideMiddle(d Dir) Pos {
	switch d {
	case Top:
		return Pos{r.Pos.X + r.Size.W/2, r.Pos.Y}
	case Bottom:
		return Pos{r.Pos.X + r.Size.W/2, r.Pos.Y + r.Size.H - 1}
	case Left:
		return Pos{r.Pos.X, r.Pos.Y + r.Size.H/2}
	default:
		return Pos{r.Pos.X + r.Size.W - 1, r.Pos.Y + r.Size.H/2}
	}
}

// Extend grows r so that it covers p. An empty rectangle becomes the 1x1
// rectangle at p.
func (r Rect) Extend(p Pos) Rect {
	if r.Empty() {
		return Rect{Pos: p, Size: Size{1, 1}}
	}
	x1, y1 := min(r.Pos.X, p.X), min(r.Pos.Y, p.Y)
	x2, y2 := max(r.Pos.X+r.Size.W, p.X+1), max(r.Pos.Y+r.Size.H, p.Y+1)
	return Rect{Pos: Pos{x1, y1}, Size: Size{x2 - x1, y2 - y1}}
}

// Points returns every cell of r in row-major order.
func (r Rect) Points() []Pos {
	if r.Empty() {
		return nil
	}
	pts := make([]Pos, 0, r.Size.W*r.Size.H)
	for y := r.Pos.Y; y < r.Pos.Y+r.Size.H; y++ {
		for x := r.Pos.X; x < r.Pos.X+r.Size.W; x++ {
			pts = append(pts, Pos{x, y})
		}
	}
	return pts
}
