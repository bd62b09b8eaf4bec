package generate

import (
	"bytecrawl/internal/entity"
	"bytecrawl/internal/gamemap"
	"bytecrawl/internal/geom"
)

const (
	candidateWeight = 100
	weightDecay     = 25
)

// Generator fills an empty map with a level.
type Generator interface {
	Generate(m *gamemap.Map)
}

// candidate is a grid slot next to an existing room that may become a room.
type candidate struct {
	from   int
	pos    geom.Pos
	dir    geom.Dir
	weight int
}

// RoomsGenerator lays square rooms on a grid and joins neighbours with
// straight corridors.
type RoomsGenerator struct {
	cfg        *Config
	m          *gamemap.Map
	rooms      []*gamemap.Room
	candidates []candidate
	corridors  int
}

// NewRoomsGenerator creates a generator for cfg.
func NewRoomsGenerator(cfg *Config) *RoomsGenerator {
	return &RoomsGenerator{cfg: cfg}
}

// Generate builds the room graph, stamps rooms and corridors into m,
// places stairs and enemies and stores the rooms and entrance on m.
func (g *RoomsGenerator) Generate(m *gamemap.Map) {
	g.m = m
	g.rooms = nil
	g.candidates = nil

	g.buildGraph()
	for i, r := range g.rooms {
		g.stampRoom(i, r)
	}
	g.corridors = len(g.rooms)
	for i := range g.rooms {
		g.carveCorridors(i)
	}
	g.placeStairs()
	g.placeEnemies()
	g.fixWallConn()

	entrance := geom.P(g.cfg.RoomSize/2, g.cfg.RoomSize/2)
	m.SetRooms(g.rooms)
	m.SetEntrance(entrance)
	m.AddEntity(entrance, entity.NewConnectionPiece(geom.Bottom, 0, "my"))

	g.cfg.logger().Debug("level generated",
		"depth", g.cfg.Depth,
		"rooms", len(g.rooms),
		"corridors", g.corridors-len(g.rooms),
		"tiles", m.Len())
}

func (g *RoomsGenerator) gridUnit() int { return g.cfg.RoomSize + g.cfg.GapSize }

func (g *RoomsGenerator) buildGraph() {
	want := g.cfg.RoomCount()
	g.addRoom(geom.P(0, 0))
	for len(g.rooms) < want && len(g.candidates) > 0 {
		i := weightedPick(g.cfg.Rand, g.candidates, func(c candidate) int { return c.weight })
		c := g.candidates[i]
		g.candidates = append(g.candidates[:i], g.candidates[i+1:]...)

		for j := range g.candidates {
			other := &g.candidates[j]
			if other.from == c.from && other.weight > 0 {
				other.weight -= weightDecay
				if other.weight < 0 {
					other.weight = 0
				}
			}
		}

		idx := g.addRoom(c.pos)
		from := g.rooms[c.from]
		from.Doors = append(from.Doors, gamemap.DoorInfo{Dir: c.dir, Type: gamemap.DoorNormal, Dest: idx})
		to := g.rooms[idx]
		to.Doors = append(to.Doors, gamemap.DoorInfo{Dir: c.dir.Opposite(), Type: gamemap.DoorNormal, Dest: c.from})
	}
}

// addRoom creates a room at grid position anchor and queues its free
// neighbours as candidates.
func (g *RoomsGenerator) addRoom(anchor geom.Pos) int {
	unit := g.gridUnit()
	idx := len(g.rooms)
	g.rooms = append(g.rooms, &gamemap.Room{
		Anchor: anchor,
		Rect:   geom.R(anchor.X*unit, anchor.Y*unit, g.cfg.RoomSize, g.cfg.RoomSize),
	})
	g.cfg.logger().Debug("room added", "idx", idx, "anchor", anchor)

	for _, d := range geom.AllDirs {
		next := anchor.Step(d)
		if g.taken(next) {
			continue
		}
		g.candidates = append(g.candidates, candidate{from: idx, pos: next, dir: d, weight: candidateWeight})
	}
	return idx
}

func (g *RoomsGenerator) taken(anchor geom.Pos) bool {
	for _, r := range g.rooms {
		if r.Anchor == anchor {
			return true
		}
	}
	for _, c := range g.candidates {
		if c.pos == anchor {
			return true
		}
	}
	return false
}

func (g *RoomsGenerator) stampRoom(idx int, r *gamemap.Room) {
	for _, p := range r.Rect.Points() {
		kind := gamemap.TileWall
		if r.Rect.StrictlyContains(p) {
			kind = gamemap.TileFloor
		}
		g.m.Set(p, kind).RoomIdx = idx
	}
}

// carveCorridors digs one corridor per door of room idx unless the room on
// the other side already dug it.
func (g *RoomsGenerator) carveCorridors(idx int) {
	r := g.rooms[idx]
	for i := range r.Doors {
		door := &r.Doors[i]
		start := r.Rect.SideMiddle(door.Dir)
		if ti := g.m.At(start.StepN(door.Dir, 2)); ti != nil {
			door.Corridor = ti.RoomIdx
			continue
		}

		corridor := g.corridors
		g.corridors++
		door.Corridor = corridor

		side := geom.P(-1, 0)
		if door.Dir.Horizontal() {
			side = geom.P(0, -1)
		}
		length := g.cfg.GapSize + 2
		pos := start
		for step := 0; step < length; step++ {
			endCap := step == 0 || step == length-1

			ti := g.m.Set(pos, gamemap.TileFloor)
			ti.RoomIdx = corridor
			ti.AlwaysVis = endCap
			if endCap {
				g.m.AddEntity(pos, entity.NewDoor(door.Dir.Horizontal(), door.Type == gamemap.DoorLocked))
			}
			for _, wall := range []geom.Pos{pos.Plus(side), pos.Minus(side)} {
				wt := g.m.Set(wall, gamemap.TileWall)
				wt.RoomIdx = corridor
				wt.AlwaysVis = endCap
			}
			pos = pos.Step(door.Dir)
		}
	}
}

func (g *RoomsGenerator) placeStairs() {
	if ti := g.m.At(g.cfg.StairsPos); ti != nil {
		ti.Kind = gamemap.TileStairsDown
	}
}

func (g *RoomsGenerator) placeEnemies() {
	for _, r := range g.rooms[1:] {
		for x := 1; x <= 2; x++ {
			for y := 1; y <= 2; y++ {
				p := r.Rect.Pos.Add(r.Rect.Size.W*x/3, r.Rect.Size.H*y/3)
				g.m.AddEntity(p, entity.NewMuncher())
			}
		}
	}
}

func wallLike(ti *gamemap.TileInfo) bool {
	return ti != nil && (ti.Kind == gamemap.TileWall || ti.AlwaysVis)
}

// fixWallConn links walls to their wall neighbours for rendering and sets
// flood traversal.
func (g *RoomsGenerator) fixWallConn() {
	g.m.Each(func(ti *gamemap.TileInfo) {
		if wallLike(ti) {
			for _, d := range geom.AllDirs {
				ti.Conn[d] = wallLike(g.m.At(ti.Pos.Step(d)))
			}
		}
		for _, d := range geom.AllDirs {
			if g.cfg.OpenFlood {
				n := g.m.At(ti.Pos.Step(d))
				ti.Traversable[d] = ti.Passable && n != nil && n.Passable
			} else {
				ti.Traversable[d] = ti.Conn[d]
			}
		}
	})
}
