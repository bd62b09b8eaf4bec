package gamemap

import (
	"bytecrawl/internal/geom"

	"github.com/zyedidia/generic/mapset"
)

// FloodSeq is the generation of the most recent Flood. A cell's FloodValue
// is only meaningful while its FloodSeq equals this.
func (m *Map) FloodSeq() int { return m.floodSeq }

// Flood labels cells with their breadth-first distance from the seeds.
// A step from one cell to a neighbour needs the source cell's Traversable
// flag toward it and a passable neighbour. Layers past maxDist are not
// labelled; a negative maxDist floods until the frontier runs out.
func (m *Map) Flood(seeds []geom.Pos, maxDist int) {
	m.floodSeq++
	seq := m.floodSeq
	queued := mapset.New[geom.Pos]()
	frontier := make([]geom.Pos, 0, len(seeds))
	for _, p := range seeds {
		if m.tiles[p] == nil || queued.Has(p) {
			continue
		}
		queued.Put(p)
		frontier = append(frontier, p)
	}

	for dist := 0; len(frontier) > 0; dist++ {
		if maxDist >= 0 && dist > maxDist {
			return
		}
		var next []geom.Pos
		for _, p := range frontier {
			src := m.tiles[p]
			src.FloodSeq = seq
			src.FloodValue = dist
			for _, d := range geom.AllDirs {
				if !src.Traversable[d] {
					continue
				}
				np := p.Step(d)
				ti := m.tiles[np]
				if ti == nil || !ti.Passable || ti.FloodSeq == seq || queued.Has(np) {
					continue
				}
				queued.Put(np)
				next = append(next, np)
			}
		}
		frontier = next
	}
}

// FloodValueAt returns the current-generation distance at p.
func (m *Map) FloodValueAt(p geom.Pos) (int, bool) {
	ti := m.tiles[p]
	if ti == nil || ti.FloodSeq != m.floodSeq || m.floodSeq == 0 {
		return 0, false
	}
	return ti.FloodValue, true
}
