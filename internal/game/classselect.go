package game

import (
	"fmt"

	"bytecrawl/assets"

	"github.com/gdamore/tcell/v2"
	"github.com/leonelquinteros/gotext"
	"github.com/mattn/go-runewidth"
)

// runClassSelect shows the class selection screen and blocks until the player
// picks a class. Returns false if the player quits without selecting.
func (g *Game) runClassSelect() bool {
	selected := 0
	for {
		g.drawClassSelect(selected)
		ev, ok := <-g.events
		if !ok {
			return false
		}
		switch ev := ev.(type) {
		case *tcell.EventResize:
			g.screen.Sync()
		case *tcell.EventKey:
			switch ev.Key() {
			case tcell.KeyUp:
				selected = (selected - 1 + len(assets.Classes)) % len(assets.Classes)
			case tcell.KeyDown:
				selected = (selected + 1) % len(assets.Classes)
			case tcell.KeyEnter:
				g.class = assets.Classes[selected]
				return true
			case tcell.KeyEscape, tcell.KeyCtrlC:
				if g.confirmQuit() {
					return false
				}
			case tcell.KeyRune:
				switch r := ev.Rune(); r {
				case 'w', 'W':
					selected = (selected - 1 + len(assets.Classes)) % len(assets.Classes)
				case 's', 'S':
					selected = (selected + 1) % len(assets.Classes)
				case 'q', 'Q':
					if g.confirmQuit() {
						return false
					}
				default:
					idx := int(r - '1')
					if idx >= 0 && idx < len(assets.Classes) {
						g.class = assets.Classes[idx]
						return true
					}
				}
			}
		}
	}
}

// drawClassSelect renders the full class selection UI to the screen.
func (g *Game) drawClassSelect(selected int) {
	g.screen.Clear()
	w, _ := g.screen.Size()

	titleStyle := tcell.StyleDefault.Foreground(tcell.NewRGBColor(180, 100, 255)).Bold(true)
	normalStyle := tcell.StyleDefault.Foreground(tcell.ColorWhite)
	dimStyle := tcell.StyleDefault.Foreground(tcell.ColorGray)
	highlightStyle := tcell.StyleDefault.Foreground(tcell.ColorBlack).Background(tcell.NewRGBColor(180, 100, 255))
	abilityStyle := tcell.StyleDefault.Foreground(tcell.NewRGBColor(150, 220, 255))
	passiveStyle := tcell.StyleDefault.Foreground(tcell.NewRGBColor(255, 200, 50))

	centerText := func(y int, text string, style tcell.Style) {
		x := max(0, (w-runewidth.StringWidth(text))/2)
		drawScreenText(g.screen, x, y, text, style)
	}

	centerText(1, "BYTECRAWL", titleStyle)
	centerText(2, gotext.Get("Choose your process class"), dimStyle)

	// Each class occupies 4 lines + 1 blank = 5 rows. Start at row 4.
	startY := 4
	for i, class := range assets.Classes {
		y := startY + i*5
		prefix := "  "
		lineStyle := normalStyle
		if i == selected {
			prefix = "► "
			lineStyle = highlightStyle
		}

		nameLine := fmt.Sprintf("%s[%d] %s %s", prefix, i+1, class.Emoji, class.Name)
		drawScreenText(g.screen, 2, y, nameLine, lineStyle)
		drawScreenText(g.screen, 2, y+1, fmt.Sprintf("      \"%s\"", class.Lore), dimStyle)
		drawScreenText(g.screen, 2, y+2, "      "+class.Ability, abilityStyle)
		drawScreenText(g.screen, 2, y+3, "      "+gotext.Get("Passive")+": "+class.Passive, passiveStyle)
	}

	hintsY := startY + len(assets.Classes)*5 + 1
	centerText(hintsY, gotext.Get("[w/s or ↑/↓] Navigate   [1-3] Quick-select   [Enter] Confirm   [q] Quit"), dimStyle)

	g.screen.Show()
}

// drawScreenText writes a string to the screen at (x, y) with the given style.
func drawScreenText(screen tcell.Screen, x, y int, text string, style tcell.Style) {
	col := x
	for _, ch := range text {
		screen.SetContent(col, y, ch, nil, style)
		col += max(1, runewidth.RuneWidth(ch))
	}
}
