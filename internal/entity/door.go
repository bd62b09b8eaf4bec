package entity

import (
	"bytecrawl/internal/anim"

	"github.com/leonelquinteros/gotext"
)

const doorFrames = 4

// Door sits on a corridor end cap. While Blocked it cannot be opened at
// all; a Locked door takes one interaction to unlock and another to open.
type Door struct {
	Base
	Vertical  bool
	Locked    bool
	Blocked   bool
	wasClosed bool
}

// NewDoor creates a closed door.
func NewDoor(vertical, locked bool) *Door {
	d := &Door{Base: newBase("", true), Vertical: vertical, Locked: locked}
	d.bind(d)
	d.updateSprite()
	return d
}

// Description implements Entity.
func (d *Door) Description() string {
	switch {
	case d.Blocked:
		return gotext.Get("Blocked door")
	case d.Locked:
		return gotext.Get("Locked Door")
	default:
		return gotext.Get("Door")
	}
}

// ReceiveDamage is ignored; doors cannot be destroyed.
func (d *Door) ReceiveDamage(int, Entity) {}

func (d *Door) updateSprite() {
	s := "door-h"
	if d.Vertical {
		s = "door-v"
	}
	switch {
	case d.Blocked:
		s += "-blocked"
	case d.Locked:
		s += "-locked"
	}
	d.Sprite = s
}

// Block seals the door for an encounter, remembering whether it was closed.
func (d *Door) Block() {
	if d.Blocked {
		return
	}
	d.wasClosed = d.blocking
	d.Blocked = true
	d.blocking = true
	d.updateSprite()
}

// Unblock lifts the seal and restores the previous open state.
func (d *Door) Unblock() {
	d.blocking = d.wasClosed
	d.Blocked = false
	d.updateSprite()
}

// Interact unlocks or opens the door.
func (d *Door) Interact() bool {
	if d.Blocked {
		return false
	}
	if d.Locked {
		d.Locked = false
		d.updateSprite()
		return true
	}
	d.blocking = false
	if d.m != nil {
		d.m.Schedule(anim.NewOneTime(d.onFrame, doorFrames, 0))
	}
	return true
}
