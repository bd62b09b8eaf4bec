// Package geom holds the integer grid primitives shared by the map, the
// generator and the level controller.
package geom

// Pos is an integer grid position.
type Pos struct {
	X, Y int
}

// P is shorthand for Pos{X: x, Y: y}.
func P(x, y int) Pos { return Pos{X: x, Y: y} }

// Add returns p offset by (dx, dy).
func (p Pos) Add(dx, dy int) Pos { return Pos{p.X + dx, p.Y + dy} }

// Plus returns the component-wise sum of p and o.
func (p Pos) Plus(o Pos) Pos { return Pos{p.X + o.X, p.Y + o.Y} }

// Minus returns the component-wise difference p - o.
func (p Pos) Minus(o Pos) Pos { return Pos{p.X - o.X, p.Y - o.Y} }

// Mul scales both coordinates by k.
func (p Pos) Mul(k int) Pos { return Pos{p.X * k, p.Y * k} }

// Step returns the neighbour of p in direction d.
func (p Pos) Step(d Dir) Pos {
	dx, dy := d.Delta()
	return Pos{p.X + dx, p.Y + dy}
}

// StepN moves n cells in direction d.
func (p Pos) StepN(d Dir, n int) Pos {
	dx, dy := d.Delta()
	return Pos{p.X + dx*n, p.Y + dy*n}
}

// Manhattan returns the 4-connected distance between p and o.
func (p Pos) Manhattan(o Pos) int {
	return abs(p.X-o.X) + abs(p.Y-o.Y)
}

// RectAround returns the box spanning dist cells before p on both axes and
// 2*dist cells wide. The box is half-open, so p+dist itself is excluded.
func (p Pos) RectAround(dist int) Rect {
	return Rect{Pos: Pos{p.X - dist, p.Y - dist}, Size: Size{W: dist * 2, H: dist * 2}}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
