// Package render draws a level onto a tcell screen. It only reads game
// state.
package render

import (
	"fmt"

	"bytecrawl/assets"
	"bytecrawl/internal/anim"
	"bytecrawl/internal/entity"
	"bytecrawl/internal/gamemap"
	"bytecrawl/internal/geom"
	"bytecrawl/internal/level"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"
)

const (
	// HUDWidth is the number of columns reserved for the side panel.
	HUDWidth = 28
	// LogRows is the number of message rows under the map.
	LogRows = 3
)

// Renderer draws the game world onto a tcell screen.
type Renderer struct {
	screen tcell.Screen
	depth  int
	// ShowAll draws hidden cells too.
	ShowAll bool
}

// NewRenderer creates a Renderer for the given screen.
func NewRenderer(screen tcell.Screen) *Renderer {
	return &Renderer{screen: screen, depth: 1}
}

// SetDepth selects the terrain theme.
func (r *Renderer) SetDepth(depth int) { r.depth = depth }

// Screen returns the screen being drawn on.
func (r *Renderer) Screen() tcell.Screen { return r.screen }

// ViewSize is the map viewport in tiles for the current screen size.
func (r *Renderer) ViewSize() geom.Size {
	w, h := r.screen.Size()
	return geom.Size{
		W: max(1, (w-HUDWidth)/level.CellWidth),
		H: max(1, h-LogRows),
	}
}

// MapCell converts a screen cell to the map tile under it. ok is false for
// cells outside the map viewport.
func (r *Renderer) MapCell(l *level.Level, sx, sy int) (p geom.Pos, ok bool) {
	view := r.ViewSize()
	if sx < 0 || sy < 0 || sx >= view.W*level.CellWidth || sy >= view.H {
		return geom.Pos{}, false
	}
	return l.Camera.ScreenToWorld(sx, sy), true
}

// Draw renders the whole play screen: map, overlays, HUD and message log.
func (r *Renderer) Draw(l *level.Level, sched *anim.Scheduler, class assets.ClassDef) {
	r.screen.Clear()
	r.drawMap(l)
	r.drawFloatingText(l, sched)
	if l.Pending() != nil {
		r.drawDirPrompt(l, sched.Ticks())
	}
	r.drawHUD(l, class)
	r.drawLog(l.Messages())
	if l.AbilitiesOpen() {
		r.drawAbilityList(l.Player())
	}
	r.screen.Show()
}

func (r *Renderer) drawMap(l *level.Level) {
	theme := themeFor(r.depth)
	cam := l.Camera
	hover, hovered := l.Hover()

	for _, p := range cam.Rect().Points() {
		ti := l.At(p)
		if ti == nil || (!ti.Visible && !r.ShowAll) {
			continue
		}
		sx, sy, _ := cam.WorldToScreen(p)

		bg := tcell.ColorBlack
		switch {
		case hovered && p == hover:
			bg = colorHover
		case ti.OnPath:
			bg = colorPath
		}
		r.drawTile(sx, sy, ti, theme, bg)
		r.drawOccupants(sx, sy, ti, bg)
		if l.ShowFlood {
			if v, ok := l.FloodValueAt(p); ok {
				r.drawText(sx, sy, fmt.Sprintf("%2d", v%100), tcell.StyleDefault.Foreground(tcell.ColorWhite).Background(bg))
			}
		}
	}
}

func (r *Renderer) drawTile(sx, sy int, ti *gamemap.TileInfo, theme DepthTheme, bg tcell.Color) {
	style := tcell.StyleDefault.Background(bg)
	if !ti.Visible {
		style = style.Foreground(colorHidden)
	}
	switch ti.Kind {
	case gamemap.TileWall:
		if ti.Visible {
			style = style.Foreground(theme.Wall)
		}
		left, right := wallRunes(ti.Conn)
		r.screen.SetContent(sx, sy, left, nil, style)
		r.screen.SetContent(sx+1, sy, right, nil, style)
	case gamemap.TileStairsDown:
		r.putGlyph(sx, sy, assets.Sprite(ti.SpriteKey(), 0), style)
	default:
		if ti.Visible {
			style = style.Foreground(theme.Floor)
		}
		r.screen.SetContent(sx, sy, theme.Dot, nil, style)
		r.screen.SetContent(sx+1, sy, ' ', nil, style)
	}
}

func (r *Renderer) drawOccupants(sx, sy int, ti *gamemap.TileInfo, bg tcell.Color) {
	for _, o := range ti.Occupants() {
		e, ok := o.(entity.Entity)
		if !ok {
			continue
		}
		b := e.Core()
		style := tcell.StyleDefault.Background(bg)
		if b.HasEffect(entity.EffectStun) {
			style = style.Background(colorStun)
		}
		r.putGlyph(sx, sy, assets.Sprite(b.Sprite, b.Frame), style)
	}
}

func (r *Renderer) drawFloatingText(l *level.Level, sched *anim.Scheduler) {
	for _, ft := range sched.Overlays() {
		if ti := l.At(ft.At); ti == nil || !ti.Visible {
			continue
		}
		sx, sy, ok := l.Camera.WorldToScreen(ft.At.Plus(ft.Offset()))
		if !ok {
			continue
		}
		style := tcell.StyleDefault.Foreground(toneColors[ft.Tone]).Bold(true)
		r.drawText(sx, sy, ft.Text, style)
	}
}

var dirArrows = [4]rune{geom.Top: '↑', geom.Bottom: '↓', geom.Left: '←', geom.Right: '→'}

func (r *Renderer) drawDirPrompt(l *level.Level, tick uint64) {
	style := tcell.StyleDefault.Foreground(tcell.ColorYellow)
	if tick%10 < 5 {
		style = style.Bold(true)
	}
	for _, d := range geom.AllDirs {
		sx, sy, ok := l.Camera.WorldToScreen(l.Player().Position().Step(d))
		if !ok {
			continue
		}
		r.screen.SetContent(sx, sy, dirArrows[d], nil, style)
		r.screen.SetContent(sx+1, sy, ' ', nil, style)
	}
}

// wallRunes picks box-drawing runes for a wall linked toward conn. The
// right column continues the line when the wall links right.
func wallRunes(conn [4]bool) (left, right rune) {
	t, b, l, rt := conn[geom.Top], conn[geom.Bottom], conn[geom.Left], conn[geom.Right]
	switch {
	case t && b && l && rt:
		left = '┼'
	case t && b && rt:
		left = '├'
	case t && b && l:
		left = '┤'
	case b && l && rt:
		left = '┬'
	case t && l && rt:
		left = '┴'
	case b && rt:
		left = '┌'
	case b && l:
		left = '┐'
	case t && rt:
		left = '└'
	case t && l:
		left = '┘'
	case t || b:
		left = '│'
	case l || rt:
		left = '─'
	default:
		left = '■'
	}
	right = ' '
	if rt {
		right = '─'
	}
	return left, right
}

// putGlyph draws a single glyph (ASCII or multi-rune emoji) at screen position (x, y).
func (r *Renderer) putGlyph(x, y int, glyph string, style tcell.Style) {
	runes := []rune(glyph)
	if len(runes) == 0 {
		return
	}
	mainc := runes[0]
	var combc []rune
	if len(runes) > 1 {
		combc = runes[1:]
	}
	r.screen.SetContent(x, y, mainc, combc, style)
	if runewidth.StringWidth(glyph) < 2 {
		r.screen.SetContent(x+1, y, ' ', nil, style)
	}
}

// drawText writes text starting at (x, y) and returns the column after it.
func (r *Renderer) drawText(x, y int, text string, style tcell.Style) int {
	for _, ch := range text {
		r.screen.SetContent(x, y, ch, nil, style)
		x += max(1, runewidth.RuneWidth(ch))
	}
	return x
}
