package render

import (
	"fmt"
	"strings"

	"bytecrawl/internal/entity"

	"github.com/gdamore/tcell/v2"
	"github.com/leonelquinteros/gotext"
	"github.com/mattn/go-runewidth"
)

// drawAbilityList shows the player's abilities, numbered from 1. Entries
// the player cannot afford are greyed out.
func (r *Renderer) drawAbilityList(p *entity.Player) {
	lines := []string{}
	for i, a := range p.Abilities() {
		lines = append(lines, fmt.Sprintf("[%d] %s  %s", i+1, a.Name(), costText(a)))
	}
	lines = append(lines, "", "[Esc] "+gotext.Get("close"))

	box := r.drawDialog(gotext.Get("Abilities"), lines, colorTitle)
	for i, a := range p.Abilities() {
		if !p.CanAfford(a) {
			r.drawText(box.x+2, box.y+2+i, lines[i], tcell.StyleDefault.Foreground(colorHidden))
		}
	}
}

func costText(a entity.Ability) string {
	parts := make([]string, 0, len(a.Cost()))
	for _, c := range a.Cost() {
		parts = append(parts, fmt.Sprintf("%d %s", c.Amount, c.Res))
	}
	return strings.Join(parts, ", ")
}

// MessageBox draws a centred box with text and shows the screen.
func (r *Renderer) MessageBox(text string, color tcell.Color) {
	r.drawDialog(text, []string{"", "[Enter] " + gotext.Get("continue")}, color)
	r.screen.Show()
}

type dialogBox struct{ x, y, w, h int }

// drawDialog draws a framed box centred on the screen with a title row
// followed by lines.
func (r *Renderer) drawDialog(title string, lines []string, color tcell.Color) dialogBox {
	sw, sh := r.screen.Size()
	width := runewidth.StringWidth(title)
	for _, l := range lines {
		width = max(width, runewidth.StringWidth(l))
	}
	b := dialogBox{w: width + 4, h: len(lines) + 3}
	b.x = max(0, (sw-b.w)/2)
	b.y = max(0, (sh-b.h)/2)

	frame := tcell.StyleDefault.Foreground(color)
	fill := tcell.StyleDefault
	for y := b.y; y < b.y+b.h; y++ {
		for x := b.x; x < b.x+b.w; x++ {
			ch := ' '
			style := fill
			switch {
			case (y == b.y || y == b.y+b.h-1) && (x == b.x || x == b.x+b.w-1):
				ch, style = cornerRune(x == b.x, y == b.y), frame
			case y == b.y || y == b.y+b.h-1:
				ch, style = '─', frame
			case x == b.x || x == b.x+b.w-1:
				ch, style = '│', frame
			}
			r.screen.SetContent(x, y, ch, nil, style)
		}
	}
	r.drawText(b.x+2, b.y+1, title, frame.Bold(true))
	for i, l := range lines {
		r.drawText(b.x+2, b.y+2+i, l, tcell.StyleDefault.Foreground(tcell.ColorWhite))
	}
	return b
}

func cornerRune(left, top bool) rune {
	switch {
	case left && top:
		return '┌'
	case top:
		return '┐'
	case left:
		return '└'
	default:
		return '┘'
	}
}

// Confirm draws a yes/no question and shows the screen.
func (r *Renderer) Confirm(question string) {
	r.drawDialog(question, []string{"", "[y/n]"}, tcell.ColorYellow)
	r.screen.Show()
}
