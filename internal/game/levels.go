package game

import (
	"log/slog"
	"math/rand"

	"bytecrawl/internal/generate"
)

// levelConfig builds a generate.Config for the given depth.
func levelConfig(depth int, rng *rand.Rand, logger *slog.Logger) *generate.Config {
	cfg := generate.DefaultConfig(depth, rng)
	cfg.Logger = logger.With("depth", depth)
	return cfg
}
