package level

import (
	"math/rand"

	"bytecrawl/internal/anim"
	"bytecrawl/internal/entity"
	"bytecrawl/internal/gamemap"
	"bytecrawl/internal/generate"
	"bytecrawl/internal/geom"
)

var testView = geom.Size{W: 40, H: 20}

// roomMap builds a single walled w×h room with the entrance in its middle.
func roomMap(w, h int) *gamemap.Map {
	m := gamemap.New()
	r := geom.R(0, 0, w, h)
	for _, p := range r.Points() {
		kind := gamemap.TileWall
		if r.StrictlyContains(p) {
			kind = gamemap.TileFloor
		}
		m.Set(p, kind)
	}
	m.SetRooms([]*gamemap.Room{{Rect: r}})
	m.SetEntrance(r.Middle())
	return m
}

// openRoom returns a level over roomMap(w, h) and its scheduler.
func openRoom(w, h int, class entity.Class) (*Level, *anim.Scheduler) {
	sched := anim.NewScheduler()
	l := New(roomMap(w, h), entity.NewPlayer(class), sched, testView, nil)
	return l, sched
}

// twoRooms generates a small two-room level joined by one corridor.
func twoRooms(seed int64) (*Level, *anim.Scheduler) {
	cfg := generate.DefaultConfig(1, rand.New(rand.NewSource(seed)))
	cfg.RoomSize = 7
	cfg.GapSize = 2
	cfg.RoomCounts = []int{2}
	m := gamemap.New()
	generate.NewRoomsGenerator(cfg).Generate(m)
	sched := anim.NewScheduler()
	return New(m, entity.NewPlayer(entity.ClassIdle), sched, testView, nil), sched
}

// wakeRoom activates room idx as if the player had just walked in, so
// enemies placed after New join the turn order.
func wakeRoom(l *Level, idx int) {
	l.Room(idx).Explored = false
	l.exploreRoom(idx)
}

func enemyOn(ti *gamemap.TileInfo) *entity.Enemy {
	for _, o := range ti.Occupants() {
		if e, ok := o.(*entity.Enemy); ok {
			return e
		}
	}
	return nil
}
