// Package gamemap is the sparse tile store of one dungeon level together
// with the flood and path searches that run over it.
package gamemap

import "bytecrawl/internal/geom"

// Map holds every generated cell of a level keyed by position. Cells that
// were never set do not exist and count as impassable.
type Map struct {
	tiles    map[geom.Pos]*TileInfo
	bounds   geom.Rect
	rooms    []*Room
	entrance geom.Pos
	floodSeq int
}

// New creates an empty Map.
func New() *Map {
	return &Map{tiles: make(map[geom.Pos]*TileInfo)}
}

// Set creates or replaces the cell at p with a fresh TileInfo of the given
// kind and grows the bounds to include p.
func (m *Map) Set(p geom.Pos, kind TileKind) *TileInfo {
	ti := newTileInfo(p, kind)
	m.tiles[p] = ti
	m.bounds = m.bounds.Extend(p)
	return ti
}

// At returns the cell at p, or nil when nothing was generated there.
func (m *Map) At(p geom.Pos) *TileInfo { return m.tiles[p] }

// Get is At for bare coordinates.
func (m *Map) Get(x, y int) *TileInfo { return m.tiles[geom.Pos{X: x, Y: y}] }

// Clear removes the cell at p. The bounds are left untouched.
func (m *Map) Clear(p geom.Pos) { delete(m.tiles, p) }

// Len returns the number of generated cells.
func (m *Map) Len() int { return len(m.tiles) }

// Bounds is the smallest rectangle covering every cell ever set.
func (m *Map) Bounds() geom.Rect { return m.bounds }

// AddEntity places o on the cell at p. It reports false when p is not a
// generated cell.
func (m *Map) AddEntity(p geom.Pos, o Occupant) bool {
	ti := m.tiles[p]
	if ti == nil {
		return false
	}
	ti.AddOccupant(o)
	return true
}

// Each calls fn for every cell inside the bounds in row-major order.
func (m *Map) Each(fn func(ti *TileInfo)) {
	for _, p := range m.bounds.Points() {
		if ti := m.tiles[p]; ti != nil {
			fn(ti)
		}
	}
}

// Rooms returns the generated room list.
func (m *Map) Rooms() []*Room { return m.rooms }

// SetRooms stores the generated room list.
func (m *Map) SetRooms(rooms []*Room) { m.rooms = rooms }

// Room returns the room with index idx, or nil for corridor indices.
func (m *Map) Room(idx int) *Room {
	if idx < 0 || idx >= len(m.rooms) {
		return nil
	}
	return m.rooms[idx]
}

// Entrance is where the player enters the level.
func (m *Map) Entrance() geom.Pos { return m.entrance }

// SetEntrance records the player's entry cell.
func (m *Map) SetEntrance(p geom.Pos) { m.entrance = p }
