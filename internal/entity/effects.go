package entity

// EffectStun marks a stunned entity.
const EffectStun = "stun"

// Effect is a visual status marker drawn over an entity.
type Effect struct {
	ID     string
	Sprite string
	Frame  int
}

// Effects returns the active effects.
func (b *Base) Effects() []Effect { return b.effects }

// HasEffect reports whether an effect with the given id is active.
func (b *Base) HasEffect(id string) bool {
	for _, e := range b.effects {
		if e.ID == id {
			return true
		}
	}
	return false
}

// AddEffect attaches eff unless an effect with the same id is present.
func (b *Base) AddEffect(eff Effect) {
	if b.HasEffect(eff.ID) {
		return
	}
	b.effects = append(b.effects, eff)
}

// CancelEffect removes every effect with the given id.
func (b *Base) CancelEffect(id string) {
	kept := b.effects[:0]
	for _, e := range b.effects {
		if e.ID != id {
			kept = append(kept, e)
		}
	}
	b.effects = kept
}

// TickEffects advances the frame counter of every effect.
func (b *Base) TickEffects() {
	for i := range b.effects {
		b.effects[i].Frame++
	}
}
