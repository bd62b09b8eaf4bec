package level

import (
	"bytecrawl/internal/entity"
	"bytecrawl/internal/geom"
)

// ShowAbilities opens the ability list.
func (l *Level) ShowAbilities() {
	if l.finished || l.gameOver {
		return
	}
	l.abilitiesOpen = true
}

// AbilitiesOpen reports whether the ability list is showing.
func (l *Level) AbilitiesOpen() bool { return l.abilitiesOpen }

// CloseAbilities hides the ability list.
func (l *Level) CloseAbilities() { l.abilitiesOpen = false }

// Pending returns the ability waiting for a direction, or nil.
func (l *Level) Pending() entity.Ability { return l.pending }

// Activate fires a. Abilities without a target resolve at once; directed
// ones wait for ChooseDirection. The player must be able to afford a.
func (l *Level) Activate(a entity.Ability) {
	l.abilitiesOpen = false
	switch a.TargetType() {
	case entity.TargetNone:
		l.fire(a, entity.Target{})
	case entity.TargetDirection:
		l.pending = a
	}
}

// ChooseDirection fires the pending ability toward d.
func (l *Level) ChooseDirection(d geom.Dir) {
	a := l.pending
	if a == nil {
		return
	}
	l.pending = nil
	l.fire(a, entity.Target{Dir: d})
}

// CancelPending drops the ability waiting for a direction.
func (l *Level) CancelPending() { l.pending = nil }

func (l *Level) fire(a entity.Ability, t entity.Target) {
	l.Cancel()
	a.Activate(l.player, t)
	l.player.Spend(a)
	l.log.Debug("ability used", "ability", a.Name(), "dir", t.Dir)
	if ti := l.At(l.player.Position()); ti != nil && !ti.Visible {
		l.exploreRoom(ti.RoomIdx)
	}
	l.resolveTurn()
}
