// Package game is the terminal frontend: class selection, the main loop and
// depth progression.
package game

import (
	"fmt"
	"io"
	"log/slog"
	"math/rand"
	"strings"
	"time"

	"bytecrawl/assets"
	"bytecrawl/internal/anim"
	"bytecrawl/internal/entity"
	"bytecrawl/internal/gamemap"
	"bytecrawl/internal/generate"
	"bytecrawl/internal/level"
	"bytecrawl/internal/render"

	"github.com/gdamore/tcell/v2"
	"github.com/leonelquinteros/gotext"
)

// Game is the top-level orchestrator. All game state is owned by the
// goroutine running Run.
type Game struct {
	screen   tcell.Screen
	renderer *render.Renderer
	sched    *anim.Scheduler
	rng      *rand.Rand
	log      *slog.Logger
	// events receives all tcell events from the polling goroutine.
	events chan tcell.Event
	// done is closed when Run returns so the poller stops sending.
	done chan struct{}

	class   assets.ClassDef
	player  *entity.Player
	depth   int
	level   *level.Level
	buttons tcell.ButtonMask
}

// New creates a Game on the local terminal.
func New(seed int64, logger *slog.Logger) (*Game, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return nil, fmt.Errorf("init screen: %w", err)
	}
	return NewWithScreen(screen, seed, logger), nil
}

// NewWithScreen creates a Game on an already initialised screen. A nil
// logger discards.
func NewWithScreen(screen tcell.Screen, seed int64, logger *slog.Logger) *Game {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	screen.EnableMouse()
	return &Game{
		screen:   screen,
		renderer: render.NewRenderer(screen),
		sched:    anim.NewScheduler(),
		rng:      rand.New(rand.NewSource(seed)),
		log:      logger,
		events:   make(chan tcell.Event, 32),
		done:     make(chan struct{}),
	}
}

// Run is the main game loop. Supports consecutive runs: a game over
// returns to class selection. Calls screen.Fini before returning.
func (g *Game) Run() {
	defer g.screen.Fini()
	defer close(g.done)
	go g.pollEvents()

	for {
		if !g.runClassSelect() {
			return
		}
		g.startRun()
		if !g.play() {
			return
		}
	}
}

func (g *Game) pollEvents() {
	for {
		ev := g.screen.PollEvent()
		if ev == nil {
			close(g.events)
			return
		}
		select {
		case g.events <- ev:
		case <-g.done:
			return
		}
	}
}

// startRun creates a fresh player of the selected class on depth 1.
func (g *Game) startRun() {
	g.player = entity.NewPlayer(g.class.Class)
	g.depth = 0
	g.descend()
	for _, line := range strings.Split(assets.LoreOpening, "\n") {
		g.level.AddMessage(line)
	}
	g.log.Info("run started", "class", g.class.Name)
}

// descend generates the next depth and moves the player onto its entrance.
// The player keeps its resources.
func (g *Game) descend() {
	g.depth++
	g.sched = anim.NewScheduler()

	m := gamemap.New()
	generate.NewRoomsGenerator(levelConfig(g.depth, g.rng, g.log)).Generate(m)

	g.level = level.New(m, g.player, g.sched, g.renderer.ViewSize(), g.log.With("depth", g.depth))
	g.renderer.SetDepth(g.depth)

	g.level.AddMessage(gotext.Get("Depth %d: %s", g.depth, assets.DepthName(g.depth)))
	if lore := assets.DepthLore[min(g.depth, len(assets.DepthLore)-1)]; len(lore) > 0 {
		g.level.AddMessage(lore[g.rng.Intn(len(lore))])
	}
	g.log.Info("depth entered", "depth", g.depth, "rooms", len(m.Rooms()))
}

// play runs one life. It returns false when the player quits.
func (g *Game) play() bool {
	ticker := time.NewTicker(anim.Tick)
	defer ticker.Stop()

	g.draw()
	for {
		select {
		case ev, ok := <-g.events:
			if !ok {
				return false // screen closed / disconnected
			}
			if !g.handleEvent(ev) {
				return false
			}
		case <-ticker.C:
			g.tick()
		}

		if g.level.GameOver() {
			return g.gameOver()
		}
		if g.level.Finished() {
			g.descend()
		}
	}
}

// tick advances animations and run mode, then redraws.
func (g *Game) tick() {
	g.sched.Step()
	g.level.Tick()
	g.draw()
}

func (g *Game) draw() {
	g.renderer.Draw(g.level, g.sched, g.class)
}

// gameOver shows the game over box until the player dismisses it. It
// returns false when the player quits instead.
func (g *Game) gameOver() bool {
	g.log.Info("game over", "depth", g.depth, "turns", g.level.Turns())
	for {
		g.draw()
		g.renderer.MessageBox(gotext.Get("Game Over"), tcell.ColorRed)
		ev, ok := <-g.events
		if !ok {
			return false
		}
		switch ev := ev.(type) {
		case *tcell.EventResize:
			g.screen.Sync()
		case *tcell.EventKey:
			switch ev.Key() {
			case tcell.KeyEnter, tcell.KeyEscape:
				return true
			case tcell.KeyCtrlC:
				return false
			}
		}
	}
}

// handleEvent applies one input event. It returns false when the player
// quits.
func (g *Game) handleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventResize:
		g.screen.Sync()
		g.level.Camera.Resize(g.renderer.ViewSize())
	case *tcell.EventKey:
		return g.handleKey(ev)
	case *tcell.EventMouse:
		g.handleMouse(ev)
	}
	return true
}

func (g *Game) handleKey(ev *tcell.EventKey) bool {
	l := g.level
	action := keyToAction(ev)
	switch {
	case action == ActionQuit:
		return !g.confirmQuit()
	case l.AbilitiesOpen():
		g.abilityKey(ev, action)
	case l.Pending() != nil:
		if d, _, ok := action.Dir(); ok {
			l.ChooseDirection(d)
		} else if action == ActionCancel {
			l.CancelPending()
		}
	default:
		g.apply(action)
	}
	return true
}

// abilityKey handles a key while the ability list is open. Digits pick an
// ability by its number.
func (g *Game) abilityKey(ev *tcell.EventKey, action Action) {
	l := g.level
	if action == ActionCancel || action == ActionAbilities {
		l.CloseAbilities()
		return
	}
	if ev.Key() != tcell.KeyRune {
		return
	}
	abilities := l.Player().Abilities()
	idx := int(ev.Rune() - '1')
	if idx < 0 || idx >= len(abilities) {
		return
	}
	a := abilities[idx]
	if !l.Player().CanAfford(a) {
		l.AddMessage(gotext.Get("Not enough charge for %s.", a.Name()))
		return
	}
	l.Activate(a)
}

func (g *Game) apply(action Action) {
	l := g.level
	if d, run, ok := action.Dir(); ok {
		if run {
			l.RunInDir(d)
		} else {
			l.Move(d)
		}
		return
	}
	switch action {
	case ActionWait:
		l.Cancel()
		l.PassTurn()
	case ActionAbilities:
		l.ShowAbilities()
	case ActionFlood:
		l.ToggleFlood()
	case ActionShowAll:
		g.renderer.ShowAll = !g.renderer.ShowAll
	case ActionCenter:
		l.CenterPlayer()
	case ActionCancel:
		l.Cancel()
	}
}

// handleMouse previews the path under the pointer. A press of the left
// button steps, the right button runs.
func (g *Game) handleMouse(ev *tcell.EventMouse) {
	pressed := ev.Buttons() &^ g.buttons
	g.buttons = ev.Buttons()

	l := g.level
	if l.AbilitiesOpen() || l.Pending() != nil {
		return
	}
	x, y := ev.Position()
	p, ok := g.renderer.MapCell(l, x, y)
	if !ok {
		return
	}
	switch {
	case pressed&tcell.Button1 != 0:
		l.ClickAt(p, false)
	case pressed&tcell.Button2 != 0:
		l.ClickAt(p, true)
	default:
		l.HoverAt(p)
	}
}

// confirmQuit shows a "Really quit? (y/n)" prompt. Returns true if confirmed.
func (g *Game) confirmQuit() bool {
	for {
		g.renderer.Confirm(gotext.Get("Really quit?"))
		ev, ok := <-g.events
		if !ok {
			return true // disconnected
		}
		switch ev := ev.(type) {
		case *tcell.EventResize:
			g.screen.Sync()
		case *tcell.EventKey:
			switch ev.Rune() {
			case 'y', 'Y':
				return true
			default:
				return false
			}
		}
	}
}
