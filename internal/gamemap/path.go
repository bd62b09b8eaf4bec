package gamemap

import (
	"bytecrawl/internal/geom"

	"github.com/zyedidia/generic/heap"
)

type pathNode struct {
	pos   geom.Pos
	g, f  int
	order int
}

// Traversable is the pathfinder's passability test. The route's own source
// is always enterable so a blocking mover can path away from itself.
func (m *Map) Traversable(p, src geom.Pos) bool {
	if p == src {
		return true
	}
	ti := m.tiles[p]
	return ti != nil && ti.Walkable()
}

// FindPath runs a 4-connected A* and returns the route from `from` to `to`,
// both included. The search grows out of `to`, which is therefore never
// tested for passability; this lets a chaser path onto its target's cell.
// It returns nil when no route exists and [from] when from == to.
func (m *Map) FindPath(from, to geom.Pos) []geom.Pos {
	if from == to {
		return []geom.Pos{from}
	}
	open := heap.New(func(a, b pathNode) bool {
		if a.f != b.f {
			return a.f < b.f
		}
		return a.order < b.order
	})
	cost := map[geom.Pos]int{to: 0}
	parent := make(map[geom.Pos]geom.Pos)
	order := 0
	open.Push(pathNode{pos: to, f: to.Manhattan(from)})

	for open.Size() > 0 {
		n, _ := open.Pop()
		if n.g > cost[n.pos] {
			continue
		}
		if n.pos == from {
			return unwind(parent, from, to)
		}
		for _, d := range geom.AllDirs {
			np := n.pos.Step(d)
			if !m.Traversable(np, from) {
				continue
			}
			g := n.g + 1
			if old, ok := cost[np]; ok && old <= g {
				continue
			}
			cost[np] = g
			parent[np] = n.pos
			order++
			open.Push(pathNode{pos: np, g: g, f: g + np.Manhattan(from), order: order})
		}
	}
	return nil
}

func unwind(parent map[geom.Pos]geom.Pos, from, to geom.Pos) []geom.Pos {
	path := []geom.Pos{from}
	for p := from; p != to; {
		p = parent[p]
		path = append(path, p)
	}
	return path
}
