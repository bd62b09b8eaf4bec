package entity

import (
	"strings"

	"bytecrawl/internal/anim"
	"bytecrawl/internal/geom"

	"github.com/leonelquinteros/gotext"
)

const connectionFrames = 25

// ConnectionPiece is a walk-over decoration marking a live link.
type ConnectionPiece struct {
	Base
	Conn   [4]bool
	Prefix string
	start  int
}

// NewConnectionPiece creates a piece linked toward src.
func NewConnectionPiece(src geom.Dir, startFrame int, prefix string) *ConnectionPiece {
	c := &ConnectionPiece{Base: newBase("", false), Prefix: prefix, start: startFrame}
	c.bind(c)
	c.Conn[src] = true
	c.Update()
	return c
}

// Update recomputes the sprite from the connected directions.
func (c *ConnectionPiece) Update() {
	var b strings.Builder
	for _, d := range geom.AllDirs {
		if c.Conn[d] {
			b.WriteString(d.String())
		}
	}
	c.Sprite = c.Prefix + "-connection-piece-" + b.String()
}

// Description implements Entity.
func (c *ConnectionPiece) Description() string { return gotext.Get("Active Connection") }

// ReceiveDamage is ignored.
func (c *ConnectionPiece) ReceiveDamage(int, Entity) {}

// Animate cycles the link glow.
func (c *ConnectionPiece) Animate() {
	if c.m == nil {
		return
	}
	c.m.Schedule(anim.NewCyclic(c.onFrame, connectionFrames, 0, c.start))
}
