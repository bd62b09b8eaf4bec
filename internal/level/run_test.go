package level

import (
	"testing"

	"bytecrawl/internal/entity"
	"bytecrawl/internal/geom"
)

func runUntilStopped(t *testing.T, l *Level) {
	t.Helper()
	for i := 0; i < 50 && l.RunMode() != RunOff; i++ {
		l.Tick()
	}
	if l.RunMode() != RunOff {
		t.Fatal("run mode never stopped")
	}
}

func TestRunInDirStopsAtWall(t *testing.T) {
	l, _ := openRoom(9, 9, entity.ClassIdle)
	l.RunInDir(geom.Right)
	if got := l.Player().Position(); got != geom.P(5, 4) {
		t.Fatalf("first run step to %v, want (5,4)", got)
	}
	runUntilStopped(t, l)
	if got := l.Player().Position(); got != geom.P(7, 4) {
		t.Errorf("run ended at %v, want (7,4)", got)
	}
	if l.Turns() != 3 {
		t.Errorf("turns = %d, want 3", l.Turns())
	}
}

func TestRunInDirStopsAtBlocker(t *testing.T) {
	l, _ := openRoom(9, 9, entity.ClassIdle)
	m := entity.NewMuncher()
	l.AddEntity(geom.P(7, 4), m)
	l.RunInDir(geom.Right)
	runUntilStopped(t, l)
	if got := l.Player().Position(); got != geom.P(6, 4) {
		t.Errorf("run ended at %v, want (6,4)", got)
	}
	if m.HP != 100 {
		t.Error("running attacked the blocker")
	}
}

func TestManualMoveCancelsRun(t *testing.T) {
	l, _ := openRoom(9, 9, entity.ClassIdle)
	l.RunInDir(geom.Right)
	l.Move(geom.Bottom)
	if l.RunMode() != RunOff {
		t.Fatal("manual move kept run mode")
	}
	if got := l.Player().Position(); got != geom.P(5, 5) {
		t.Errorf("player at %v, want (5,5)", got)
	}
}

func TestCancelEndsRunAndClearsPath(t *testing.T) {
	l, _ := openRoom(9, 9, entity.ClassIdle)
	l.ClickAt(geom.P(7, 7), true)
	if l.RunMode() != RunPath {
		t.Fatal("secondary click did not start running")
	}
	l.Cancel()
	if l.RunMode() != RunOff || l.Path() != nil {
		t.Fatal("cancel left run state behind")
	}
	if l.At(geom.P(7, 7)).OnPath {
		t.Error("path tint left on the map")
	}
}

func TestHoverPreviewsPath(t *testing.T) {
	l, _ := openRoom(9, 9, entity.ClassIdle)
	l.HoverAt(geom.P(7, 7))
	path := l.Path()
	if len(path) != 7 {
		t.Fatalf("path length = %d, want 7", len(path))
	}
	if path[0] != geom.P(4, 4) || path[len(path)-1] != geom.P(7, 7) {
		t.Errorf("path runs %v..%v", path[0], path[len(path)-1])
	}
	for _, p := range path {
		if !l.At(p).OnPath {
			t.Errorf("path cell %v not tinted", p)
		}
	}

	l.HoverAt(geom.P(1, 1))
	if l.At(geom.P(7, 7)).OnPath {
		t.Error("old path tint kept after hover moved")
	}
	if got := l.Path()[len(l.Path())-1]; got != geom.P(1, 1) {
		t.Errorf("new path ends at %v", got)
	}
}

func TestHoverOutsideMapKeepsPath(t *testing.T) {
	l, _ := openRoom(9, 9, entity.ClassIdle)
	l.HoverAt(geom.P(6, 4))
	l.HoverAt(geom.P(50, 50))
	if len(l.Path()) != 3 {
		t.Errorf("path length = %d, want 3", len(l.Path()))
	}
}

func TestClickStepsAlongPath(t *testing.T) {
	l, _ := openRoom(9, 9, entity.ClassIdle)
	l.ClickAt(geom.P(7, 4), false)
	if got := l.Player().Position(); got != geom.P(5, 4) {
		t.Fatalf("player at %v, want (5,4)", got)
	}
	path := l.Path()
	if len(path) != 3 || path[0] != geom.P(5, 4) {
		t.Errorf("path not restarted from the player: %v", path)
	}
	if l.RunMode() != RunOff {
		t.Error("primary click started running")
	}
}

func TestRunPathArrives(t *testing.T) {
	l, _ := openRoom(9, 9, entity.ClassIdle)
	l.ClickAt(geom.P(7, 7), true)
	runUntilStopped(t, l)
	if got := l.Player().Position(); got != geom.P(7, 7) {
		t.Errorf("run ended at %v, want (7,7)", got)
	}
	if l.Path() != nil {
		t.Error("path kept after arrival")
	}
	if l.Turns() != 6 {
		t.Errorf("turns = %d, want 6", l.Turns())
	}
}

func TestSecondaryClickOnPlayerOpensAbilities(t *testing.T) {
	l, _ := openRoom(9, 9, entity.ClassIdle)
	l.ClickAt(geom.P(4, 4), true)
	if !l.AbilitiesOpen() {
		t.Error("ability list not opened")
	}
	if l.RunMode() != RunOff {
		t.Error("clicking the player started running")
	}
}
