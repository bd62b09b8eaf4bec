package level

import (
	"bytecrawl/internal/anim"
	"bytecrawl/internal/gamemap"
	"bytecrawl/internal/geom"

	"github.com/zyedidia/generic/mapset"
)

// visibility reveals a room one ring of cells per tick, starting from the
// cell the player stepped on. A cell spreads the reveal to neighbours of
// the same room and to always-visible cells such as door caps.
type visibility struct {
	m        *gamemap.Map
	sched    *anim.Scheduler
	frontier []geom.Pos
	room     int
	running  bool
}

func newVisibility(m *gamemap.Map, sched *anim.Scheduler) *visibility {
	return &visibility{m: m, sched: sched}
}

// Start seeds the reveal at p and marks p's room explored.
func (v *visibility) Start(p geom.Pos) {
	v.frontier = append(v.frontier, p)
	if ti := v.m.At(p); ti != nil {
		v.room = ti.RoomIdx
		if r := v.m.Room(ti.RoomIdx); r != nil {
			r.Explored = true
		}
	}
	if !v.running {
		v.running = true
		v.sched.Add(v)
	}
}

// Running reports whether the frontier still has cells.
func (v *visibility) Running() bool { return v.running }

// NextFrame implements anim.Animation.
func (v *visibility) NextFrame() bool {
	if len(v.frontier) == 0 {
		v.running = false
		return false
	}
	processed := mapset.New[geom.Pos]()
	var next []geom.Pos
	for _, p := range v.frontier {
		ti := v.m.At(p)
		if ti == nil || ti.Visible {
			continue
		}
		ti.Visible = true
		for _, d := range geom.AllDirs {
			np := p.Step(d)
			if processed.Has(np) {
				continue
			}
			processed.Put(np)
			n := v.m.At(np)
			if n != nil && !n.Visible && (n.RoomIdx == v.room || n.AlwaysVis) {
				next = append(next, np)
			}
		}
	}
	v.frontier = next
	if len(next) == 0 {
		v.running = false
		return false
	}
	return true
}
