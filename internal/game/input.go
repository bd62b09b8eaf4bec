package game

import (
	"bytecrawl/internal/geom"

	"github.com/gdamore/tcell/v2"
)

// Action represents a player-requested game action.
type Action uint8

const (
	ActionNone Action = iota
	ActionMoveUp
	ActionMoveDown
	ActionMoveLeft
	ActionMoveRight
	ActionRunUp
	ActionRunDown
	ActionRunLeft
	ActionRunRight
	ActionWait
	ActionAbilities
	ActionFlood
	ActionShowAll
	ActionCenter
	ActionCancel
	ActionQuit
)

var actionDirs = map[Action]geom.Dir{
	ActionMoveUp:    geom.Top,
	ActionMoveDown:  geom.Bottom,
	ActionMoveLeft:  geom.Left,
	ActionMoveRight: geom.Right,
	ActionRunUp:     geom.Top,
	ActionRunDown:   geom.Bottom,
	ActionRunLeft:   geom.Left,
	ActionRunRight:  geom.Right,
}

// Dir returns the direction of a move or run action. run is true for the
// run variants.
func (a Action) Dir() (d geom.Dir, run bool, ok bool) {
	d, ok = actionDirs[a]
	return d, a >= ActionRunUp && a <= ActionRunRight, ok
}

// keyToAction maps a tcell key event to a game action.
func keyToAction(ev *tcell.EventKey) Action {
	shift := ev.Modifiers()&tcell.ModShift != 0

	// Named keys.
	switch ev.Key() {
	case tcell.KeyUp:
		return pick(shift, ActionRunUp, ActionMoveUp)
	case tcell.KeyDown:
		return pick(shift, ActionRunDown, ActionMoveDown)
	case tcell.KeyRight:
		return pick(shift, ActionRunRight, ActionMoveRight)
	case tcell.KeyLeft:
		return pick(shift, ActionRunLeft, ActionMoveLeft)
	case tcell.KeyEscape:
		return ActionCancel
	case tcell.KeyCtrlC:
		return ActionQuit
	}
	if ev.Key() != tcell.KeyRune {
		return ActionNone
	}

	// Rune keys. Upper case is the shifted binding.
	switch ev.Rune() {
	case 'w':
		return ActionMoveUp
	case 's':
		return ActionMoveDown
	case 'a':
		return ActionMoveLeft
	case 'd':
		return ActionMoveRight
	case 'W':
		return ActionRunUp
	case 'S':
		return ActionRunDown
	case 'A':
		return ActionRunLeft
	case 'D':
		return ActionRunRight
	case ' ':
		return ActionWait
	case 'c':
		return ActionAbilities
	case 'C':
		return ActionCenter
	case 'f', 'F':
		return ActionFlood
	case 'q', 'Q':
		return ActionShowAll
	}
	return ActionNone
}

func pick(cond bool, yes, no Action) Action {
	if cond {
		return yes
	}
	return no
}
