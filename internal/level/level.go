// Package level runs one dungeon floor: the player's turn, enemy turns,
// room activation, run mode, path preview and ability targeting.
package level

import (
	"io"
	"log/slog"

	"bytecrawl/internal/anim"
	"bytecrawl/internal/entity"
	"bytecrawl/internal/gamemap"
	"bytecrawl/internal/geom"
)

// RunMode is the auto-walk state.
type RunMode uint8

const (
	RunOff RunMode = iota
	RunDir
	RunPath
)

const maxMessages = 50

// Level owns the map of the current floor and implements
// entity.MapAccessor for everything standing on it.
type Level struct {
	*gamemap.Map
	Camera *Camera
	// ShowFlood asks the renderer to print flood distances.
	ShowFlood bool

	player *entity.Player
	sched  *anim.Scheduler
	log    *slog.Logger
	vis    *visibility

	active       []*entity.Enemy
	blockedDoors []*entity.Door

	run    RunMode
	runDir geom.Dir
	runIdx int

	path    []geom.Pos
	pathSrc geom.Pos
	pathDst geom.Pos
	hovered bool

	pending       entity.Ability
	abilitiesOpen bool

	turns    int
	finished bool
	gameOver bool
	messages []string
}

// New wraps a generated map, wakes up its occupants and puts the player
// on the entrance. view is the viewport size in tiles.
func New(m *gamemap.Map, player *entity.Player, sched *anim.Scheduler, view geom.Size, logger *slog.Logger) *Level {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	l := &Level{
		Map:    m,
		Camera: NewCamera(view),
		player: player,
		sched:  sched,
		log:    logger,
		vis:    newVisibility(m, sched),
	}
	m.Each(func(ti *gamemap.TileInfo) {
		for _, o := range ti.Occupants() {
			l.adopt(o)
		}
	})
	l.AddEntity(m.Entrance(), player)
	l.Camera.Center(player.Position())
	l.vis.Start(player.Position())
	return l
}

func (l *Level) adopt(o gamemap.Occupant) {
	if e, ok := o.(entity.Entity); ok {
		e.Core().Attach(l)
	}
	if a, ok := o.(entity.Animator); ok {
		a.Animate()
	}
}

// AddEntity places o on p and attaches it to the level.
func (l *Level) AddEntity(p geom.Pos, o gamemap.Occupant) bool {
	if !l.Map.AddEntity(p, o) {
		return false
	}
	if e, ok := o.(entity.Entity); ok {
		e.Core().Attach(l)
	}
	return true
}

// Player implements entity.MapAccessor.
func (l *Level) Player() *entity.Player { return l.player }

// Schedule implements entity.MapAccessor.
func (l *Level) Schedule(a anim.Animation) { l.sched.Add(a) }

// Finished reports whether the player took the stairs.
func (l *Level) Finished() bool { return l.finished }

// GameOver reports whether the player died.
func (l *Level) GameOver() bool { return l.gameOver }

// Turns returns the number of resolved turns.
func (l *Level) Turns() int { return l.turns }

// ActiveEnemies returns the enemies taking turns.
func (l *Level) ActiveEnemies() []*entity.Enemy { return l.active }

// Path returns the previewed route, player cell first.
func (l *Level) Path() []geom.Pos { return l.path }

// RunMode returns the auto-walk state.
func (l *Level) RunMode() RunMode { return l.run }

// Messages returns the message log, oldest first.
func (l *Level) Messages() []string { return l.messages }

// Revealing reports whether a room reveal is still spreading.
func (l *Level) Revealing() bool { return l.vis.Running() }

// ToggleFlood flips the flood distance overlay.
func (l *Level) ToggleFlood() { l.ShowFlood = !l.ShowFlood }

// CenterPlayer scrolls the viewport to the player.
func (l *Level) CenterPlayer() { l.Camera.CenterOn(l.player.Position(), l.sched) }

// AddMessage appends msg to the log, keeping the newest entries.
func (l *Level) AddMessage(msg string) {
	l.messages = append(l.messages, msg)
	if len(l.messages) > maxMessages {
		l.messages = l.messages[len(l.messages)-maxMessages:]
	}
}
