package level

import (
	"testing"

	"bytecrawl/internal/entity"
	"bytecrawl/internal/geom"
)

func TestUntargetedAbilityResolvesAtOnce(t *testing.T) {
	l, _ := openRoom(9, 9, entity.ClassIdle)
	p := l.Player()
	p.Resource(entity.ResIdle).Value = 2
	p.Resource(entity.ResShield).Value = 0
	l.ShowAbilities()

	l.Activate(entity.ShieldRecharge{})
	if got := p.Resource(entity.ResShield).Value; got != 20 {
		t.Errorf("shield = %d, want 20", got)
	}
	if got := p.Resource(entity.ResIdle).Value; got != 0 {
		t.Errorf("idle charge = %d, want 0", got)
	}
	if l.Turns() != 1 {
		t.Errorf("turns = %d, want 1", l.Turns())
	}
	if l.AbilitiesOpen() {
		t.Error("ability list left open")
	}
}

func TestDirectedAbilityWaitsForDirection(t *testing.T) {
	l, _ := openRoom(9, 9, entity.ClassImpact)
	p := l.Player()
	p.Resource(entity.ResImpact).Value = 3
	m := entity.NewMuncher()
	l.AddEntity(geom.P(5, 4), m)

	l.Activate(entity.StunningSmash{})
	if l.Pending() == nil {
		t.Fatal("no pending ability")
	}
	if p.Resource(entity.ResImpact).Value != 3 || l.Turns() != 0 {
		t.Fatal("ability fired before a direction was chosen")
	}

	l.ChooseDirection(geom.Right)
	if m.HP != 50 || m.StunTurns != 4 {
		t.Errorf("muncher hp=%d stun=%d, want 50 and 4", m.HP, m.StunTurns)
	}
	if got := p.Resource(entity.ResImpact).Value; got != 0 {
		t.Errorf("impact charge = %d, want 0", got)
	}
	if l.Pending() != nil {
		t.Error("pending ability kept")
	}
	if l.Turns() != 1 {
		t.Errorf("turns = %d, want 1", l.Turns())
	}
}

func TestCancelPending(t *testing.T) {
	l, _ := openRoom(9, 9, entity.ClassImpulse)
	l.Player().Resource(entity.ResImpulse).Value = 3
	l.Activate(entity.JumpKick{})
	l.CancelPending()
	l.ChooseDirection(geom.Right)
	if got := l.Player().Position(); got != geom.P(4, 4) {
		t.Errorf("cancelled kick moved the player to %v", got)
	}
	if l.Player().Resource(entity.ResImpulse).Value != 3 {
		t.Error("cancelled ability was paid for")
	}
}

func TestJumpKickLandsAndHits(t *testing.T) {
	l, _ := openRoom(12, 9, entity.ClassImpulse)
	l.Player().Resource(entity.ResImpulse).Value = 3
	m := entity.NewMuncher()
	l.AddEntity(geom.P(9, 4), m)

	l.Activate(entity.JumpKick{})
	l.ChooseDirection(geom.Right)
	if got := l.Player().Position(); got != geom.P(8, 4) {
		t.Errorf("player landed on %v, want (8,4)", got)
	}
	if m.HP != 50 {
		t.Errorf("muncher hp = %d, want 50", m.HP)
	}
	if got := m.Position(); got != geom.P(10, 4) {
		t.Errorf("muncher pushed to %v, want (10,4)", got)
	}
}

func TestUnaffordableAbilityPanics(t *testing.T) {
	l, _ := openRoom(9, 9, entity.ClassIdle)
	defer func() {
		if recover() == nil {
			t.Error("spending without charge did not panic")
		}
	}()
	l.Activate(entity.ShieldRecharge{})
}
