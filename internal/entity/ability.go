package entity

import (
	"strconv"

	"bytecrawl/internal/anim"
	"bytecrawl/internal/geom"

	"github.com/leonelquinteros/gotext"
)

// TargetType says what an ability needs before it can fire.
type TargetType uint8

const (
	TargetNone TargetType = iota
	TargetDirection
)

// Target carries the chosen target of an ability.
type Target struct {
	Dir geom.Dir
}

// Cost is one resource requirement of an ability.
type Cost struct {
	Res    ResKind
	Amount int
}

// Ability is a class skill invoked from the ability list.
type Ability interface {
	Name() string
	TargetType() TargetType
	Cost() []Cost
	Activate(p *Player, t Target)
}

const (
	shieldRechargeAmount = 20
	kickRange            = 5
	kickDamage           = 50
	smashDamage          = 50
)

// ShieldRecharge restores shield from Idle charge.
type ShieldRecharge struct{}

func (ShieldRecharge) Name() string           { return gotext.Get("Shield Charge") }
func (ShieldRecharge) TargetType() TargetType { return TargetNone }
func (ShieldRecharge) Cost() []Cost           { return []Cost{{Res: ResIdle, Amount: 2}} }

func (ShieldRecharge) Activate(p *Player, _ Target) {
	p.Resource(ResShield).Add(shieldRechargeAmount)
	p.FloatText(strconv.Itoa(shieldRechargeAmount), anim.ToneShield, p.pos.Add(0, 1))
}

// JumpKick leaps up to five cells and kicks whatever stopped the leap.
type JumpKick struct{}

func (JumpKick) Name() string           { return gotext.Get("Jump kick") }
func (JumpKick) TargetType() TargetType { return TargetDirection }
func (JumpKick) Cost() []Cost           { return []Cost{{Res: ResImpulse, Amount: 3}} }

func (JumpKick) Activate(p *Player, t Target) {
	m := p.Map()
	land := p.pos
	next := land.Step(t.Dir)
	for range kickRange {
		ti := m.At(next)
		if ti == nil || !ti.Passable || ti.HasBlocking() {
			break
		}
		land = next
		next = next.Step(t.Dir)
	}
	if land != p.pos {
		p.MoveTo(land)
	}
	e := enemyAt(m, next)
	if e == nil {
		return
	}
	e.ReceiveDamage(kickDamage, p)
	if e.Alive() {
		e.Move(geom.DirTo(land, e.pos))
	}
	e.Stun(1)
}

// StunningSmash hits the adjacent enemy hard and stuns it.
type StunningSmash struct{}

func (StunningSmash) Name() string           { return gotext.Get("Stunning smash") }
func (StunningSmash) TargetType() TargetType { return TargetDirection }
func (StunningSmash) Cost() []Cost           { return []Cost{{Res: ResImpact, Amount: 3}} }

func (StunningSmash) Activate(p *Player, t Target) {
	e := enemyAt(p.Map(), p.pos.Step(t.Dir))
	if e == nil {
		return
	}
	e.ReceiveDamage(smashDamage, p)
	e.Stun(4)
}

// enemyAt returns the first enemy on a cell holding a blocking occupant.
func enemyAt(m MapAccessor, pos geom.Pos) *Enemy {
	ti := m.At(pos)
	if ti == nil || !ti.HasBlocking() {
		return nil
	}
	for _, o := range ti.Occupants() {
		if e, ok := o.(*Enemy); ok {
			return e
		}
	}
	return nil
}
