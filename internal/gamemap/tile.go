package gamemap

import (
	"strings"

	"bytecrawl/internal/geom"

	"github.com/leonelquinteros/gotext"
)

// TileKind identifies the terrain of a map cell.
type TileKind uint8

const (
	TileWall TileKind = iota
	TileFloor
	TileStairsDown
)

// Passable reports whether the terrain itself lets entities through.
// A TileInfo copies this once, when it is created.
func (k TileKind) Passable() bool {
	switch k {
	case TileFloor:
		return true
	default:
		return false
	}
}

// Description returns the player-facing name of the terrain.
func (k TileKind) Description() string {
	switch k {
	case TileWall:
		return gotext.Get("Wall")
	case TileFloor:
		return gotext.Get("Floor")
	case TileStairsDown:
		return gotext.Get("Staircase down")
	}
	return gotext.Get("Unknown")
}

// SpriteKey names the sprite used to draw the kind. Walls append the letter
// of every connected direction so renderers can pick a joined piece.
func (k TileKind) SpriteKey(conn [4]bool) string {
	switch k {
	case TileWall:
		var b strings.Builder
		b.WriteString("wall-")
		for _, d := range geom.AllDirs {
			if conn[d] {
				b.WriteString(d.String())
			}
		}
		return b.String()
	case TileStairsDown:
		return "stairs-down"
	default:
		return "floor"
	}
}
