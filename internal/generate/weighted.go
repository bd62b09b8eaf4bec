package generate

import "math/rand"

// weightedPick returns the index of an item drawn with probability
// proportional to its weight. Items with weight 0 are never drawn unless
// every weight is 0, in which case the draw is uniform. Returns -1 for an
// empty slice.
func weightedPick[T any](rng *rand.Rand, items []T, weight func(T) int) int {
	if len(items) == 0 {
		return -1
	}
	total := 0
	for _, it := range items {
		total += weight(it)
	}
	if total <= 0 {
		return rng.Intn(len(items))
	}
	n := rng.Intn(total)
	for i, it := range items {
		w := weight(it)
		if w <= 0 {
			continue
		}
		if n < w {
			return i
		}
		n -= w
	}
	return len(items) - 1
}
