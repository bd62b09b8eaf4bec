package render

import (
	"fmt"
	"strings"

	"bytecrawl/assets"
	"bytecrawl/internal/entity"
	"bytecrawl/internal/gamemap"
	"bytecrawl/internal/level"

	"github.com/gdamore/tcell/v2"
	"github.com/leonelquinteros/gotext"
)

const barWidth = 12

// drawHUD renders the side panel: depth, class, resource bars, the hovered
// cell and the minimap.
func (r *Renderer) drawHUD(l *level.Level, class assets.ClassDef) {
	w, h := r.screen.Size()
	x := w - HUDWidth
	r.drawVLine(x, h, colorPanel)
	x += 2

	title := tcell.StyleDefault.Foreground(colorTitle).Bold(true)
	text := tcell.StyleDefault.Foreground(tcell.ColorWhite)
	dim := tcell.StyleDefault.Foreground(colorPanel)

	y := 0
	r.drawText(x, y, fmt.Sprintf("%s %d", gotext.Get("Depth"), r.depth), title)
	y++
	r.drawText(x, y, assets.DepthName(r.depth), dim)
	y += 2
	r.drawText(x, y, class.Emoji+" "+class.Name, text)
	y += 2

	p := l.Player()
	for k := entity.ResHealth; k < entity.ResCount; k++ {
		res := p.Resource(k)
		if res.Max == 0 {
			continue
		}
		r.drawBar(x, y, k, res)
		y++
	}
	y++
	r.drawText(x, y, fmt.Sprintf("%s: %d", gotext.Get("Turns"), l.Turns()), dim)
	y += 2

	if desc := describeHover(l); desc != "" {
		r.drawText(x, y, truncate(desc, HUDWidth-3), text)
	}
	y += 2

	r.drawMinimap(x, y, l)

	hints := []string{
		"[C] " + gotext.Get("abilities"),
		"[Space] " + gotext.Get("wait"),
		"[Shift+dir] " + gotext.Get("run"),
	}
	for i, hint := range hints {
		r.drawText(x, h-len(hints)+i, hint, dim)
	}
}

func (r *Renderer) drawBar(x, y int, k entity.ResKind, res *entity.Resource) {
	label := fmt.Sprintf("%-8s", k.String())
	x = r.drawText(x, y, label, tcell.StyleDefault.Foreground(colorPanel))
	filled := 0
	if res.Max > 0 {
		filled = max(0, res.Value) * barWidth / res.Max
	}
	bar := strings.Repeat("█", filled) + strings.Repeat("░", barWidth-filled)
	x = r.drawText(x, y, bar, tcell.StyleDefault.Foreground(resourceColors[k]))
	r.drawText(x+1, y, fmt.Sprintf("%d", res.Value), tcell.StyleDefault.Foreground(tcell.ColorWhite))
}

// describeHover names what is under the hovered cell: the top entity, or
// the terrain when nothing stands there.
func describeHover(l *level.Level) string {
	p, ok := l.Hover()
	if !ok {
		return ""
	}
	ti := l.At(p)
	if ti == nil || !ti.Visible {
		return ""
	}
	occ := ti.Occupants()
	for i := len(occ) - 1; i >= 0; i-- {
		if e, ok := occ[i].(entity.Entity); ok {
			return e.Description()
		}
	}
	return ti.Kind.Description()
}

// drawMinimap draws one cell per room: explored rooms solid, rooms next to
// them hollow and the player's room highlighted.
func (r *Renderer) drawMinimap(x, y int, l *level.Level) {
	rooms := l.Rooms()
	if len(rooms) == 0 {
		return
	}
	origin := rooms[0].Anchor
	for _, room := range rooms {
		origin.X = min(origin.X, room.Anchor.X)
		origin.Y = min(origin.Y, room.Anchor.Y)
	}
	current := -1
	if ti := l.At(l.Player().Position()); ti != nil {
		current = ti.RoomIdx
	}

	for i, room := range rooms {
		ch, style := minimapCell(room, rooms, i == current)
		if ch == 0 {
			continue
		}
		a := room.Anchor.Minus(origin)
		r.screen.SetContent(x+a.X*2, y+a.Y, ch, nil, style)
	}
}

func minimapCell(room *gamemap.Room, rooms []*gamemap.Room, current bool) (rune, tcell.Style) {
	switch {
	case current:
		return '■', tcell.StyleDefault.Foreground(tcell.ColorYellow)
	case room.Explored:
		return '■', tcell.StyleDefault.Foreground(colorExplore)
	case room.NextToExplored(rooms):
		return '□', tcell.StyleDefault.Foreground(colorPanel)
	}
	return 0, tcell.StyleDefault
}

// drawLog prints the newest messages under the map.
func (r *Renderer) drawLog(messages []string) {
	w, h := r.screen.Size()
	start := max(0, len(messages)-LogRows)
	style := tcell.StyleDefault.Foreground(tcell.ColorLightYellow)
	for i, msg := range messages[start:] {
		r.drawText(0, h-LogRows+i, truncate(msg, w-HUDWidth-1), style)
	}
}

func (r *Renderer) drawVLine(x, h int, color tcell.Color) {
	style := tcell.StyleDefault.Foreground(color)
	for y := 0; y < h; y++ {
		r.screen.SetContent(x, y, '│', nil, style)
	}
}

func truncate(s string, n int) string {
	runes := []rune(s)
	if n <= 0 {
		return ""
	}
	if len(runes) > n {
		return string(runes[:n-1]) + "…"
	}
	return s
}
