package geom

// Dir is one of the four cardinal directions.
type Dir uint8

const (
	Top Dir = iota
	Bottom
	Left
	Right
)

// AllDirs lists the directions in index order.
var AllDirs = [4]Dir{Top, Bottom, Left, Right}

var (
	dirX = [4]int{0, 0, -1, 1}
	dirY = [4]int{-1, 1, 0, 0}
)

// Delta returns the (dx, dy) unit offset of d.
func (d Dir) Delta() (dx, dy int) {
	return dirX[d&3], dirY[d&3]
}

// Opposite returns the direction pointing the other way.
func (d Dir) Opposite() Dir {
	switch d {
	case Top:
		return Bottom
	case Bottom:
		return Top
	case Left:
		return Right
	default:
		return Left
	}
}

// Horizontal reports whether d runs along the x axis.
func (d Dir) Horizontal() bool { return d == Left || d == Right }

func (d Dir) String() string {
	switch d {
	case Top:
		return "t"
	case Bottom:
		return "b"
	case Left:
		return "l"
	case Right:
		return "r"
	default:
		return "?"
	}
}

// DirTo returns the direction of travel from src toward dst. Same column
// resolves vertically, anything else horizontally.
func DirTo(src, dst Pos) Dir {
	if src.X == dst.X {
		if src.Y < dst.Y {
			return Bottom
		}
		return Top
	}
	if src.X < dst.X {
		return Right
	}
	return Left
}
