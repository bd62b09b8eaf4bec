package generate

import (
	"io"
	"log/slog"
	"math/rand"

	"bytecrawl/internal/geom"
)

// DefaultRoomCounts is the number of rooms generated for depths 1..5.
// Deeper levels reuse the last entry.
var DefaultRoomCounts = []int{7, 9, 12, 15, 18}

// Config drives generation of one level.
type Config struct {
	Depth      int
	RoomSize   int // side of a square room in tiles, border included
	GapSize    int // tiles between two neighbouring rooms
	RoomCounts []int
	StairsPos  geom.Pos
	// OpenFlood lets the flood propagator cross every passable cell instead
	// of following wall connectivity.
	OpenFlood bool
	Rand      *rand.Rand
	Logger    *slog.Logger
}

// DefaultConfig returns the standard layout for depth.
func DefaultConfig(depth int, rng *rand.Rand) *Config {
	return &Config{
		Depth:      depth,
		RoomSize:   31,
		GapSize:    4,
		RoomCounts: DefaultRoomCounts,
		StairsPos:  geom.P(5, 5),
		Rand:       rng,
	}
}

// RoomCount returns how many rooms the configured depth gets.
func (c *Config) RoomCount() int {
	counts := c.RoomCounts
	if len(counts) == 0 {
		counts = DefaultRoomCounts
	}
	i := c.Depth - 1
	if i < 0 {
		i = 0
	}
	if i >= len(counts) {
		i = len(counts) - 1
	}
	return counts[i]
}

func (c *Config) logger() *slog.Logger {
	if c.Logger == nil {
		return slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return c.Logger
}
