package entity

import (
	"strconv"

	"bytecrawl/internal/anim"
	"bytecrawl/internal/geom"

	"github.com/leonelquinteros/gotext"
)

// Class selects the player's starting kit.
type Class uint8

const (
	ClassIdle Class = iota + 1
	ClassImpulse
	ClassImpact
)

const (
	playerDamage  = 25
	shieldRegen   = 5
	chargeMax     = 3
	regenCooldown = 2
)

// Player is the entity steered by input.
type Player struct {
	Base
	Class          Class
	resources      [ResCount]Resource
	abilities      []Ability
	damageReceived int
	stunStrength   int
}

// NewPlayer creates a player of the given class with full health.
func NewPlayer(class Class) *Player {
	p := &Player{Base: newBase("player-"+strconv.Itoa(int(class)), true), Class: class}
	p.bind(p)
	p.resources[ResHealth].SetMax(100)
	if class == ClassIdle {
		p.resources[ResShield].SetMax(30)
	}
	p.resources[ResIdle].Max = chargeMax
	p.resources[ResImpulse].Max = chargeMax
	p.resources[ResImpact].Max = chargeMax

	switch class {
	case ClassIdle:
		p.abilities = append(p.abilities, ShieldRecharge{})
	case ClassImpulse:
		p.abilities = append(p.abilities, JumpKick{})
	case ClassImpact:
		p.stunStrength = 2
		p.abilities = append(p.abilities, StunningSmash{})
	}
	return p
}

// Resource returns the counter of the given kind.
func (p *Player) Resource(k ResKind) *Resource { return &p.resources[k] }

// Abilities lists the class abilities.
func (p *Player) Abilities() []Ability { return p.abilities }

// Description implements Entity.
func (p *Player) Description() string { return gotext.Get("Player") }

// Damage implements Entity.
func (p *Player) Damage() int { return playerDamage }

// StunStrength is the stun applied by the player's melee hits.
func (p *Player) StunStrength() int { return p.stunStrength }

// ReceiveDamage drains the shield first and the remainder from health.
func (p *Player) ReceiveDamage(val int, src Entity) {
	from := p.pos.Add(-1, 1)
	if src != nil {
		from = src.Position()
	}
	shield := &p.resources[ResShield]
	if shield.Value > 0 {
		rest := shield.Sub(val)
		p.FloatText(strconv.Itoa(val-rest), anim.ToneShield, from)
		val = rest
	}
	if val > 0 {
		p.FloatText(strconv.Itoa(val), anim.ToneHealth, from)
	}
	health := &p.resources[ResHealth]
	health.Value -= val
	if health.Value <= 0 {
		p.die()
	}
	p.damageReceived = regenCooldown
}

// ShieldRegen refills the shield unless damage was taken recently.
func (p *Player) ShieldRegen() {
	if p.damageReceived > 0 {
		p.damageReceived--
		return
	}
	p.resources[ResShield].Add(shieldRegen)
}

// Move steps the player and shifts the charges toward Impulse.
func (p *Player) Move(d geom.Dir) bool {
	if !p.Base.Move(d) {
		return false
	}
	p.OnMove()
	return true
}

// OnMove is the charge bookkeeping of a successful step.
func (p *Player) OnMove() {
	p.resources[ResIdle].Sub(1)
	p.resources[ResImpulse].Add(1)
	p.resources[ResImpact].Sub(1)
	p.ShieldRegen()
}

// OnAttack is the charge bookkeeping of a melee hit.
func (p *Player) OnAttack() {
	p.resources[ResIdle].Sub(1)
	p.resources[ResImpulse].Sub(1)
	p.resources[ResImpact].Add(1)
}

// OnPassTurn is the charge bookkeeping of waiting.
func (p *Player) OnPassTurn() {
	p.resources[ResIdle].Add(1)
	p.resources[ResImpulse].Sub(1)
	p.resources[ResImpact].Sub(1)
	p.ShieldRegen()
}

// CanAfford reports whether every cost of a is covered.
func (p *Player) CanAfford(a Ability) bool {
	for _, c := range a.Cost() {
		if p.resources[c.Res].Value < c.Amount {
			return false
		}
	}
	return true
}

// Spend pays the costs of a. Callers must check CanAfford first.
func (p *Player) Spend(a Ability) {
	if !p.CanAfford(a) {
		panic("entity: spending unaffordable ability " + a.Name())
	}
	for _, c := range a.Cost() {
		p.resources[c.Res].Sub(c.Amount)
	}
}
