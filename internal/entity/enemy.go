package entity

import (
	"strconv"

	"bytecrawl/internal/anim"

	"github.com/leonelquinteros/gotext"
)

// EnemyKind identifies the enemy variant.
type EnemyKind uint8

const (
	KindMuncher EnemyKind = iota
	KindSpyware
)

const (
	enemyHP       = 100
	muncherDamage = 10
	enemyFrames   = 4
)

// Enemy is a hostile entity driven by an AI strategy once per turn while
// it is on the level's active list.
type Enemy struct {
	Base
	Kind      EnemyKind
	AI        AI
	HP        int
	StunTurns int
	damage    int
}

func newEnemy(kind EnemyKind, sprite string, ai AI, damage int) *Enemy {
	e := &Enemy{Base: newBase(sprite, true), Kind: kind, AI: ai, HP: enemyHP, damage: damage}
	e.bind(e)
	return e
}

// NewMuncher creates a melee chaser.
func NewMuncher() *Enemy {
	return newEnemy(KindMuncher, "muncher", AggressiveMelee{}, muncherDamage)
}

// NewSpyware creates an enemy that watches for danger and keeps away.
func NewSpyware() *Enemy {
	return newEnemy(KindSpyware, "spyware", Fleeing{Radius: 10}, 0)
}

// Description implements Entity.
func (e *Enemy) Description() string {
	switch e.Kind {
	case KindSpyware:
		return gotext.Get("Spyware")
	default:
		return gotext.Get("Muncher")
	}
}

// Damage implements Entity.
func (e *Enemy) Damage() int { return e.damage }

// Animate loops the idle sprite frames while the enemy lives.
func (e *Enemy) Animate() {
	if e.m == nil {
		return
	}
	e.m.Schedule(anim.NewFwdAndBack(e.onFrame, enemyFrames-1, 0))
}

// OnTurn burns one stun turn or lets the AI act.
func (e *Enemy) OnTurn() {
	if e.StunTurns > 0 {
		e.StunTurns--
		if e.StunTurns == 0 {
			e.CancelEffect(EffectStun)
		}
		return
	}
	if e.AI != nil {
		e.AI.Think(e)
	}
}

// ReceiveDamage lowers hit points; the enemy dies at zero.
func (e *Enemy) ReceiveDamage(val int, src Entity) {
	if val > 0 {
		from := e.pos.Add(-1, 1)
		if src != nil {
			from = src.Position()
		}
		e.FloatText(strconv.Itoa(val), anim.ToneDamage, from)
	}
	e.HP -= val
	if e.HP <= 0 {
		e.die()
	}
}

// Stun keeps the longer of the current and the new stun and shows the
// stun marker.
func (e *Enemy) Stun(turns int) {
	e.StunTurns = max(e.StunTurns, turns)
	if e.StunTurns > 0 {
		e.AddEffect(Effect{ID: EffectStun, Sprite: "stun-effect"})
	}
}
