package render

import (
	"bytecrawl/internal/anim"
	"bytecrawl/internal/entity"

	"github.com/gdamore/tcell/v2"
)

// DepthTheme holds the terrain colors used to draw one depth.
type DepthTheme struct {
	Wall  tcell.Color
	Floor tcell.Color
	Dot   rune // floor glyph
}

// Themes maps depth (1-indexed) to its terrain theme. Index 0 is used for
// depths past the end of the table.
var Themes = []DepthTheme{
	{Wall: tcell.NewRGBColor(200, 60, 60), Floor: tcell.NewRGBColor(90, 40, 40), Dot: '∙'},
	{Wall: tcell.NewRGBColor(80, 160, 255), Floor: tcell.NewRGBColor(40, 70, 110), Dot: '·'},
	{Wall: tcell.NewRGBColor(80, 220, 140), Floor: tcell.NewRGBColor(40, 100, 70), Dot: '·'},
	{Wall: tcell.NewRGBColor(220, 180, 60), Floor: tcell.NewRGBColor(100, 85, 40), Dot: '∙'},
	{Wall: tcell.NewRGBColor(190, 100, 255), Floor: tcell.NewRGBColor(80, 50, 110), Dot: '·'},
	{Wall: tcell.NewRGBColor(240, 240, 240), Floor: tcell.NewRGBColor(90, 90, 90), Dot: '∙'},
}

func themeFor(depth int) DepthTheme {
	if depth < 1 || depth >= len(Themes) {
		return Themes[0]
	}
	return Themes[depth]
}

var (
	colorPath    = tcell.NewRGBColor(0, 90, 110)
	colorHover   = tcell.NewRGBColor(70, 70, 70)
	colorStun    = tcell.NewRGBColor(120, 100, 0)
	colorHidden  = tcell.NewRGBColor(60, 60, 60)
	colorPanel   = tcell.NewRGBColor(150, 150, 150)
	colorTitle   = tcell.NewRGBColor(180, 100, 255)
	colorExplore = tcell.NewRGBColor(80, 200, 120)
)

// toneColors colors floating combat text.
var toneColors = map[anim.Tone]tcell.Color{
	anim.ToneDamage: tcell.ColorRed,
	anim.ToneHealth: tcell.ColorOrangeRed,
	anim.ToneShield: tcell.ColorDeepSkyBlue,
}

// resourceColors colors the HUD bars.
var resourceColors = [entity.ResCount]tcell.Color{
	entity.ResHealth:  tcell.ColorRed,
	entity.ResShield:  tcell.ColorDeepSkyBlue,
	entity.ResIdle:    tcell.NewRGBColor(120, 200, 255),
	entity.ResImpulse: tcell.NewRGBColor(255, 200, 50),
	entity.ResImpact:  tcell.NewRGBColor(255, 110, 60),
}
