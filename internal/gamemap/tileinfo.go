package gamemap

import "bytecrawl/internal/geom"

// Occupant is anything that can stand on a map cell.
type Occupant interface {
	Position() geom.Pos
	SetPosition(p geom.Pos)
	Blocking() bool
}

// TileInfo is the state of one generated map cell.
type TileInfo struct {
	Pos  geom.Pos
	Kind TileKind

	// Passable is copied from Kind when the cell is created and never
	// re-derived; swapping Kind afterwards keeps it.
	Passable bool
	// Visible only ever goes from false to true.
	Visible   bool
	RoomIdx   int
	AlwaysVis bool

	// Conn marks wall-like neighbours and only drives sprite selection.
	Conn [4]bool
	// Traversable gates the flood propagator, one flag per direction.
	Traversable [4]bool

	FloodSeq   int
	FloodValue int

	// OnPath is set while the cell is part of the previewed route.
	OnPath bool

	occupants []Occupant
}

func newTileInfo(p geom.Pos, kind TileKind) *TileInfo {
	return &TileInfo{Pos: p, Kind: kind, Passable: kind.Passable()}
}

// SpriteKey is the render key of the cell's terrain.
func (ti *TileInfo) SpriteKey() string { return ti.Kind.SpriteKey(ti.Conn) }

// Occupants returns the entities on the cell in arrival order. The slice
// must not be modified.
func (ti *TileInfo) Occupants() []Occupant { return ti.occupants }

// AddOccupant appends o and moves it onto this cell.
func (ti *TileInfo) AddOccupant(o Occupant) {
	ti.occupants = append(ti.occupants, o)
	o.SetPosition(ti.Pos)
}

// RemoveOccupant drops o from the cell. Missing occupants are ignored.
func (ti *TileInfo) RemoveOccupant(o Occupant) {
	for i, e := range ti.occupants {
		if e == o {
			ti.occupants = append(ti.occupants[:i], ti.occupants[i+1:]...)
			return
		}
	}
}

// HasOccupants reports whether anything stands on the cell.
func (ti *TileInfo) HasOccupants() bool { return len(ti.occupants) > 0 }

// HasBlocking reports whether any occupant blocks movement.
func (ti *TileInfo) HasBlocking() bool { return ti.BlockingOccupant() != nil }

// BlockingOccupant returns the first blocking occupant, or nil.
func (ti *TileInfo) BlockingOccupant() Occupant {
	for _, e := range ti.occupants {
		if e.Blocking() {
			return e
		}
	}
	return nil
}

// Walkable reports whether a mover may enter the cell right now.
func (ti *TileInfo) Walkable() bool {
	return ti.Passable && !ti.HasBlocking()
}
