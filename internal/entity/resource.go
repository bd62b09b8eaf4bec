package entity

import "github.com/leonelquinteros/gotext"

// ResKind indexes the player's resource counters.
type ResKind uint8

const (
	ResHealth ResKind = iota
	ResShield
	ResIdle
	ResImpulse
	ResImpact
	ResCount
)

func (r ResKind) String() string {
	switch r {
	case ResHealth:
		return gotext.Get("Health")
	case ResShield:
		return gotext.Get("Shield")
	case ResIdle:
		return gotext.Get("Idle")
	case ResImpulse:
		return gotext.Get("Impulse")
	case ResImpact:
		return gotext.Get("Impact")
	}
	return "?"
}

// Resource is a capped counter.
type Resource struct {
	Value int
	Max   int
}

// SetMax sets the cap and fills the counter to it.
func (r *Resource) SetMax(v int) {
	r.Max = v
	r.Value = v
}

// AtMax reports whether the counter is full.
func (r *Resource) AtMax() bool { return r.Value >= r.Max }

// Add raises the value, capped at Max, and returns the new value.
func (r *Resource) Add(v int) int {
	r.Value = min(r.Value+v, r.Max)
	return r.Value
}

// Sub takes up to v from the counter and returns the part it could not
// cover.
func (r *Resource) Sub(v int) int {
	take := min(r.Value, v)
	r.Value -= take
	return v - take
}
