package anim

import "bytecrawl/internal/geom"

// Tone tells the renderer which palette entry to use for a floating text.
type Tone uint8

const (
	ToneDamage Tone = iota
	ToneHealth
	ToneShield
)

// FloatingText is a short-lived label drifting away from the cell it was
// spawned on, one quarter cell per frame.
type FloatingText struct {
	Text  string
	Tone  Tone
	At    geom.Pos
	Dir   geom.Dir
	Drift int
	steps int
}

// NewFloatingText creates a label lasting steps frames.
func NewFloatingText(text string, tone Tone, at geom.Pos, dir geom.Dir, steps int) *FloatingText {
	return &FloatingText{Text: text, Tone: tone, At: at, Dir: dir, steps: steps}
}

// NextFrame implements Animation.
func (f *FloatingText) NextFrame() bool {
	f.steps--
	if f.steps <= 0 {
		return false
	}
	f.Drift++
	return true
}

// Offset is the drift in whole cells, for renderers without sub-cell
// positioning.
func (f *FloatingText) Offset() geom.Pos {
	return geom.Pos{}.StepN(f.Dir, f.Drift/4)
}
