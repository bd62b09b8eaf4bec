package assets

import "bytecrawl/internal/entity"

// ClassDef describes a selectable player class.
type ClassDef struct {
	Class   entity.Class
	Name    string
	Emoji   string
	Lore    string // one-liner shown on the class selection screen
	Ability string // what the class ability does
	Passive string
}

// Classes is the ordered list of selectable player classes.
var Classes = []ClassDef{
	{
		Class:   entity.ClassIdle,
		Name:    "Idle",
		Emoji:   GlyphIdle,
		Lore:    "A background process that learned patience. Waiting is a weapon",
		Ability: "Shield Charge: 2 Idle, restores 20 shield",
		Passive: "Starts with a 30 point shield that regenerates",
	},
	{
		Class:   entity.ClassImpulse,
		Name:    "Impulse",
		Emoji:   GlyphImpulse,
		Lore:    "An interrupt handler with nowhere to be and no time to get there",
		Ability: "Jump kick: 3 Impulse, leap up to 5 cells and kick for 50",
		Passive: "Moving builds Impulse charge",
	},
	{
		Class:   entity.ClassImpact,
		Name:    "Impact",
		Emoji:   GlyphImpact,
		Lore:    "A hardware fault given a body and a grudge",
		Ability: "Stunning smash: 3 Impact, hit for 50 and stun for 4 turns",
		Passive: "Melee hits stun for 2 turns",
	},
}

// ClassByID returns the definition of class c.
func ClassByID(c entity.Class) ClassDef {
	for _, def := range Classes {
		if def.Class == c {
			return def
		}
	}
	return Classes[0]
}
