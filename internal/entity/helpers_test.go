package entity

import (
	"bytecrawl/internal/anim"
	"bytecrawl/internal/gamemap"
	"bytecrawl/internal/geom"
)

// testLevel is a minimal MapAccessor over a real gamemap.Map.
type testLevel struct {
	*gamemap.Map
	player *Player
	sched  *anim.Scheduler
}

func (l *testLevel) Player() *Player           { return l.player }
func (l *testLevel) Schedule(a anim.Animation) { l.sched.Add(a) }

// openLevel creates a w×h floor level with the player at pp.
func openLevel(w, h int, pp geom.Pos, class Class) *testLevel {
	m := gamemap.New()
	for _, p := range geom.R(0, 0, w, h).Points() {
		m.Set(p, gamemap.TileFloor)
	}
	l := &testLevel{Map: m, sched: anim.NewScheduler()}
	l.player = NewPlayer(class)
	l.place(pp, l.player)
	return l
}

// place attaches e to the level and puts it on p.
func (l *testLevel) place(p geom.Pos, e Entity) {
	e.Core().Attach(l)
	l.AddEntity(p, e)
}
