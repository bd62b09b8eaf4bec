// Package entity defines everything that stands on a map cell: the player,
// enemies and their AI, doors and decorations.
package entity

import (
	"bytecrawl/internal/anim"
	"bytecrawl/internal/gamemap"
	"bytecrawl/internal/geom"
)

// MapAccessor is the part of a level that entities, abilities and AI may
// touch.
//
//go:generate go tool mockgen -destination=./mocks/map_accessor_mock.go -package=mocks . MapAccessor
type MapAccessor interface {
	At(p geom.Pos) *gamemap.TileInfo
	AddEntity(p geom.Pos, o gamemap.Occupant) bool
	FindPath(from, to geom.Pos) []geom.Pos
	Flood(seeds []geom.Pos, maxDist int)
	Player() *Player
	Rooms() []*gamemap.Room
	Entrance() geom.Pos
	Schedule(a anim.Animation)
}

// Entity is implemented by every concrete occupant type.
type Entity interface {
	gamemap.Occupant
	Core() *Base
	Description() string
	OnTurn()
	ReceiveDamage(val int, src Entity)
	// Interact handles the player bumping into the entity and reports
	// whether that used up the player's turn.
	Interact() bool
	Damage() int
	Stun(turns int)
}

// Animator is implemented by entities that loop sprite frames while on a
// live level.
type Animator interface {
	Animate()
}

// Base carries the state shared by all entities.
type Base struct {
	pos      geom.Pos
	Sprite   string
	Frame    int
	alive    bool
	blocking bool
	effects  []Effect
	m        MapAccessor
	self     gamemap.Occupant
}

func newBase(sprite string, blocking bool) Base {
	return Base{Sprite: sprite, alive: true, blocking: blocking}
}

// bind records the concrete entity embedding b; cells store that value.
func (b *Base) bind(self gamemap.Occupant) { b.self = self }

// Core returns the shared state of the entity.
func (b *Base) Core() *Base { return b }

// Position implements gamemap.Occupant.
func (b *Base) Position() geom.Pos { return b.pos }

// SetPosition implements gamemap.Occupant.
func (b *Base) SetPosition(p geom.Pos) { b.pos = p }

// Blocking implements gamemap.Occupant.
func (b *Base) Blocking() bool { return b.blocking }

// SetBlocking changes whether the entity blocks its cell.
func (b *Base) SetBlocking(v bool) { b.blocking = v }

// Alive reports whether the entity has not died.
func (b *Base) Alive() bool { return b.alive }

func (b *Base) die() { b.alive = false }

// Map returns the level the entity is attached to, if any.
func (b *Base) Map() MapAccessor { return b.m }

// Attach binds the entity to a level.
func (b *Base) Attach(m MapAccessor) { b.m = m }

// OnTurn does nothing by default.
func (b *Base) OnTurn() {}

// Interact lets the bump through by default.
func (b *Base) Interact() bool { return true }

// Damage is zero for harmless entities.
func (b *Base) Damage() int { return 0 }

// Stun is ignored by entities without a turn.
func (b *Base) Stun(int) {}

// onFrame stores the sprite frame and keeps the animation alive while the
// entity lives.
func (b *Base) onFrame(frame int) bool {
	b.Frame = frame
	return b.alive
}

// MoveTo transfers the entity to p. It fails when p is not a generated cell
// or holds a blocking occupant.
func (b *Base) MoveTo(p geom.Pos) bool {
	if b.m == nil || b.self == nil {
		return false
	}
	dst := b.m.At(p)
	if dst == nil || dst.HasBlocking() {
		return false
	}
	src := b.m.At(b.pos)
	if src != nil {
		src.RemoveOccupant(b.self)
	}
	dst.AddOccupant(b.self)
	return true
}

// Move steps one cell in direction d.
func (b *Base) Move(d geom.Dir) bool {
	return b.MoveTo(b.pos.Step(d))
}

// FloatText spawns a label on the entity drifting away from src.
func (b *Base) FloatText(text string, tone anim.Tone, src geom.Pos) {
	if b.m == nil {
		return
	}
	b.m.Schedule(anim.NewFloatingText(text, tone, b.pos, geom.DirTo(src, b.pos), 10))
}

// IsEnemy reports whether e is hostile to the player.
func IsEnemy(e gamemap.Occupant) bool {
	_, ok := e.(*Enemy)
	return ok
}
