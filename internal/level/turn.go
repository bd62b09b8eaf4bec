package level

import (
	"bytecrawl/internal/entity"
	"bytecrawl/internal/gamemap"
	"bytecrawl/internal/geom"

	"github.com/leonelquinteros/gotext"
)

// Move is a manual step in direction d. It ends run mode and drops the
// path preview first. It reports whether the turn was used.
func (l *Level) Move(d geom.Dir) bool {
	l.Cancel()
	return l.step(d)
}

// PassTurn waits one turn.
func (l *Level) PassTurn() {
	if l.finished || l.gameOver {
		return
	}
	l.player.OnPassTurn()
	l.resolveTurn()
}

func (l *Level) step(d geom.Dir) bool {
	if l.finished || l.gameOver {
		return false
	}
	dst := l.player.Position().Step(d)
	ti := l.At(dst)
	if ti == nil || !ti.Passable {
		return false
	}
	if o := ti.BlockingOccupant(); o != nil {
		l.stopRun()
		if e, ok := o.(entity.Entity); ok && l.interactWith(e) {
			l.resolveTurn()
			return true
		}
	}
	if !l.player.Move(d) {
		return false
	}
	if !ti.Visible {
		l.exploreRoom(ti.RoomIdx)
	}
	if l.Camera.NearBorder(dst) {
		l.CenterPlayer()
	}
	if ti.Kind == gamemap.TileStairsDown {
		l.stopRun()
		l.finished = true
		l.log.Info("stairs reached", "turns", l.turns)
		return true
	}
	l.resolveTurn()
	return true
}

// interactWith handles the player bumping into e and reports whether the
// turn was used.
func (l *Level) interactWith(e entity.Entity) bool {
	en, ok := e.(*entity.Enemy)
	if !ok {
		used := e.Interact()
		if !used {
			l.AddMessage(e.Description())
		}
		return used
	}
	l.player.OnAttack()
	en.ReceiveDamage(l.player.Damage(), l.player)
	en.Stun(l.player.StunStrength())
	if !en.Alive() {
		l.removeDead(en)
	}
	return true
}

func (l *Level) removeDead(e entity.Entity) {
	if ti := l.At(e.Position()); ti != nil {
		ti.RemoveOccupant(e)
	}
	l.AddMessage(gotext.Get("%s destroyed", e.Description()))
}

// resolveTurn gives every active enemy its turn, drops the dead and
// releases the doors once the encounter is over.
func (l *Level) resolveTurn() {
	l.turns++
	alive := l.active[:0]
	for _, e := range l.active {
		if e.Alive() {
			e.OnTurn()
		}
		if !e.Alive() {
			if ti := l.At(e.Position()); ti != nil {
				ti.RemoveOccupant(e)
			}
			continue
		}
		alive = append(alive, e)
	}
	clear(l.active[len(alive):])
	l.active = alive

	if len(l.active) == 0 && len(l.blockedDoors) > 0 {
		for _, d := range l.blockedDoors {
			d.Unblock()
		}
		l.blockedDoors = nil
		l.log.Debug("encounter cleared", "turns", l.turns)
	}

	if !l.player.Alive() {
		l.stopRun()
		l.gameOver = true
		l.AddMessage(gotext.Get("Game Over"))
		l.log.Info("player died", "turns", l.turns)
	}
}

// exploreRoom reveals the area around the player and, the first time a
// real room is entered, wakes its enemies and shuts its doors while any of
// them is active.
func (l *Level) exploreRoom(idx int) {
	r := l.Room(idx)
	entered := r != nil && !r.Explored
	l.vis.Start(l.player.Position())
	if !entered {
		return
	}
	l.Camera.CenterOn(r.Rect.Middle(), l.sched)

	var doors []*entity.Door
	woken := 0
	for _, p := range r.Rect.Points() {
		ti := l.At(p)
		if ti == nil {
			continue
		}
		for _, o := range ti.Occupants() {
			switch e := o.(type) {
			case *entity.Enemy:
				if e.Alive() {
					e.Attach(l)
					l.active = append(l.active, e)
					woken++
				}
			case *entity.Door:
				doors = append(doors, e)
			}
		}
	}
	if len(l.active) > 0 {
		for _, d := range doors {
			d.Block()
		}
		l.blockedDoors = append(l.blockedDoors, doors...)
	}
	l.log.Debug("room activated", "room", idx, "enemies", woken, "doors", len(doors))
}
