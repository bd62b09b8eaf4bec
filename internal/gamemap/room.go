package gamemap

import "bytecrawl/internal/geom"

// DoorType distinguishes plain doors from locked ones.
type DoorType uint8

const (
	DoorNormal DoorType = iota
	DoorLocked
)

// DoorInfo describes one opening in a room's wall.
type DoorInfo struct {
	Dir  geom.Dir
	Type DoorType
	// Dest is the index of the room on the other side.
	Dest int
	// Corridor is the room index owning the connecting corridor cells.
	Corridor int
}

// Room is a generated room. Anchor is in room-grid units, Rect in tiles.
type Room struct {
	Anchor   geom.Pos
	Rect     geom.Rect
	Explored bool
	Doors    []DoorInfo
}

// NextToExplored reports whether a door of r leads into an explored room.
func (r *Room) NextToExplored(rooms []*Room) bool {
	for _, d := range r.Doors {
		if d.Dest >= 0 && d.Dest < len(rooms) && rooms[d.Dest].Explored {
			return true
		}
	}
	return false
}
