package entity

import "bytecrawl/internal/geom"

// AI decides an enemy's action for one turn.
type AI interface {
	Think(self *Enemy)
}

// AggressiveMelee hits the player when adjacent and otherwise walks the
// first step of the shortest path toward them.
type AggressiveMelee struct{}

// Think implements AI.
func (AggressiveMelee) Think(self *Enemy) {
	m := self.Map()
	p := m.Player()
	if p == nil {
		return
	}
	if self.pos.Manhattan(p.pos) == 1 {
		p.ReceiveDamage(self.Damage(), self)
		return
	}
	path := m.FindPath(self.pos, p.pos)
	if len(path) > 1 {
		self.Move(geom.DirTo(self.pos, path[1]))
	}
}

// Fleeing floods distances out from every occupied cell within Radius so
// movement can be biased away from danger.
type Fleeing struct {
	Radius int
}

// Think implements AI.
func (f Fleeing) Think(self *Enemy) {
	m := self.Map()
	var danger []geom.Pos
	for _, p := range self.pos.RectAround(f.Radius).Points() {
		if ti := m.At(p); ti != nil && ti.HasOccupants() {
			danger = append(danger, p)
		}
	}
	if len(danger) > 0 {
		m.Flood(danger, f.Radius)
	}
}
