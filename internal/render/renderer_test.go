package render

import (
	"strings"
	"testing"

	"bytecrawl/assets"
	"bytecrawl/internal/anim"
	"bytecrawl/internal/entity"
	"bytecrawl/internal/gamemap"
	"bytecrawl/internal/geom"
	"bytecrawl/internal/level"

	"github.com/gdamore/tcell/v2"
)

func newTestScreen(t *testing.T) tcell.SimulationScreen {
	t.Helper()
	ss := tcell.NewSimulationScreen("UTF-8")
	if err := ss.Init(); err != nil {
		t.Fatalf("SimulationScreen.Init: %v", err)
	}
	ss.SetSize(80, 24)
	t.Cleanup(ss.Fini)
	return ss
}

// newTestLevel builds a walled 9×9 room plus one stray floor cell at
// (7,12) that belongs to no room and stays hidden.
func newTestLevel(r *Renderer, class entity.Class) (*level.Level, *anim.Scheduler) {
	m := gamemap.New()
	room := geom.R(0, 0, 9, 9)
	for _, p := range room.Points() {
		kind := gamemap.TileWall
		if room.StrictlyContains(p) {
			kind = gamemap.TileFloor
		}
		m.Set(p, kind)
	}
	m.Set(geom.P(7, 12), gamemap.TileFloor).RoomIdx = 3
	m.SetRooms([]*gamemap.Room{{Rect: room}})
	m.SetEntrance(room.Middle())

	sched := anim.NewScheduler()
	l := level.New(m, entity.NewPlayer(class), sched, r.ViewSize(), nil)
	sched.Drain(50)
	return l, sched
}

func rowText(ss tcell.SimulationScreen, y int) string {
	w, _ := ss.Size()
	var b strings.Builder
	for x := 0; x < w; x++ {
		ch, _, _, _ := ss.GetContent(x, y)
		b.WriteRune(ch)
	}
	return b.String()
}

func screenContains(ss tcell.SimulationScreen, s string) bool {
	_, h := ss.Size()
	for y := 0; y < h; y++ {
		if strings.Contains(rowText(ss, y), s) {
			return true
		}
	}
	return false
}

func TestViewSizeLeavesRoomForHUD(t *testing.T) {
	r := NewRenderer(newTestScreen(t))
	got := r.ViewSize()
	want := geom.Size{W: (80 - HUDWidth) / level.CellWidth, H: 24 - LogRows}
	if got != want {
		t.Errorf("ViewSize = %v, want %v", got, want)
	}
}

func TestDrawShowsPlayerAndHidesUnrevealed(t *testing.T) {
	ss := newTestScreen(t)
	r := NewRenderer(ss)
	l, sched := newTestLevel(r, entity.ClassIdle)
	r.Draw(l, sched, assets.ClassByID(entity.ClassIdle))

	sx, sy, ok := l.Camera.WorldToScreen(l.Player().Position())
	if !ok {
		t.Fatal("player outside the viewport")
	}
	ch, _, _, _ := ss.GetContent(sx, sy)
	if want := []rune(assets.GlyphIdle)[0]; ch != want {
		t.Errorf("player cell shows %q, want %q", ch, want)
	}

	hx, hy, _ := l.Camera.WorldToScreen(geom.P(7, 12))
	if ch, _, _, _ := ss.GetContent(hx, hy); ch != ' ' {
		t.Errorf("hidden cell drawn as %q", ch)
	}

	r.ShowAll = true
	r.Draw(l, sched, assets.ClassByID(entity.ClassIdle))
	if ch, _, _, _ := ss.GetContent(hx, hy); ch != themeFor(1).Dot {
		t.Errorf("show-all cell drawn as %q", ch)
	}
}

func TestDrawCornerWall(t *testing.T) {
	ss := newTestScreen(t)
	r := NewRenderer(ss)
	l, sched := newTestLevel(r, entity.ClassIdle)
	// The builder above never links walls, so link the corner by hand.
	corner := l.At(geom.P(0, 0))
	corner.Conn[geom.Right] = true
	corner.Conn[geom.Bottom] = true
	r.Draw(l, sched, assets.ClassByID(entity.ClassIdle))

	sx, sy, _ := l.Camera.WorldToScreen(corner.Pos)
	left, _, _, _ := ss.GetContent(sx, sy)
	right, _, _, _ := ss.GetContent(sx+1, sy)
	if left != '┌' || right != '─' {
		t.Errorf("corner drawn as %q%q", left, right)
	}
}

func TestDrawPathAndHover(t *testing.T) {
	ss := newTestScreen(t)
	r := NewRenderer(ss)
	l, sched := newTestLevel(r, entity.ClassIdle)
	l.HoverAt(geom.P(7, 4))
	r.Draw(l, sched, assets.ClassByID(entity.ClassIdle))

	sx, sy, _ := l.Camera.WorldToScreen(geom.P(6, 4))
	_, _, style, _ := ss.GetContent(sx, sy)
	if _, bg, _ := style.Decompose(); bg != colorPath {
		t.Errorf("path cell background = %v, want %v", bg, colorPath)
	}
	hx, hy, _ := l.Camera.WorldToScreen(geom.P(7, 4))
	_, _, style, _ = ss.GetContent(hx, hy)
	if _, bg, _ := style.Decompose(); bg != colorHover {
		t.Errorf("hover cell background = %v, want %v", bg, colorHover)
	}
	if !screenContains(ss, gamemap.TileFloor.Description()) {
		t.Error("hovered terrain not described in the HUD")
	}
}

func TestDrawAbilityList(t *testing.T) {
	ss := newTestScreen(t)
	r := NewRenderer(ss)
	l, sched := newTestLevel(r, entity.ClassImpact)
	l.ShowAbilities()
	r.Draw(l, sched, assets.ClassByID(entity.ClassImpact))
	if !screenContains(ss, "[1] Stunning smash") {
		t.Error("ability entry not drawn")
	}
}

func TestDrawDirectionPrompt(t *testing.T) {
	ss := newTestScreen(t)
	r := NewRenderer(ss)
	l, sched := newTestLevel(r, entity.ClassImpact)
	l.Player().Resource(entity.ResImpact).Value = 3
	l.Activate(entity.StunningSmash{})
	r.Draw(l, sched, assets.ClassByID(entity.ClassImpact))

	sx, sy, _ := l.Camera.WorldToScreen(l.Player().Position().Step(geom.Left))
	if ch, _, _, _ := ss.GetContent(sx, sy); ch != '←' {
		t.Errorf("left prompt drawn as %q", ch)
	}
}

func TestMessageBox(t *testing.T) {
	ss := newTestScreen(t)
	r := NewRenderer(ss)
	r.MessageBox("Game Over", tcell.ColorRed)
	if !screenContains(ss, "Game Over") {
		t.Error("message box text missing")
	}
}

func TestWallRunes(t *testing.T) {
	tests := []struct {
		conn        [4]bool
		left, right rune
	}{
		{[4]bool{}, '■', ' '},
		{[4]bool{geom.Top: true, geom.Bottom: true}, '│', ' '},
		{[4]bool{geom.Left: true, geom.Right: true}, '─', '─'},
		{[4]bool{geom.Bottom: true, geom.Left: true}, '┐', ' '},
		{[4]bool{geom.Top: true, geom.Right: true}, '└', '─'},
		{[4]bool{true, true, true, true}, '┼', '─'},
		{[4]bool{geom.Top: true, geom.Bottom: true, geom.Left: true}, '┤', ' '},
	}
	for _, tt := range tests {
		l, r := wallRunes(tt.conn)
		if l != tt.left || r != tt.right {
			t.Errorf("wallRunes(%v) = %q%q, want %q%q", tt.conn, l, r, tt.left, tt.right)
		}
	}
}

func TestMinimapCell(t *testing.T) {
	rooms := []*gamemap.Room{
		{Explored: true, Doors: []gamemap.DoorInfo{{Dest: 1}}},
		{Doors: []gamemap.DoorInfo{{Dest: 0}, {Dest: 2}}},
		{Doors: []gamemap.DoorInfo{{Dest: 1}}},
	}
	if ch, _ := minimapCell(rooms[0], rooms, false); ch != '■' {
		t.Errorf("explored room = %q", ch)
	}
	if ch, _ := minimapCell(rooms[1], rooms, false); ch != '□' {
		t.Errorf("neighbour room = %q", ch)
	}
	if ch, _ := minimapCell(rooms[2], rooms, false); ch != 0 {
		t.Errorf("unknown room = %q", ch)
	}
}

func TestTruncate(t *testing.T) {
	if got := truncate("Staircase down", 6); got != "Stair…" {
		t.Errorf("truncate = %q", got)
	}
	if got := truncate("Door", 6); got != "Door" {
		t.Errorf("truncate = %q", got)
	}
}
