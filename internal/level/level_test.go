package level

import (
	"math/rand"
	"testing"

	"bytecrawl/internal/anim"
	"bytecrawl/internal/entity"
	"bytecrawl/internal/gamemap"
	"bytecrawl/internal/generate"
	"bytecrawl/internal/geom"
)

func TestPlayerStartsOnEntrance(t *testing.T) {
	l, _ := openRoom(9, 9, entity.ClassIdle)
	if got := l.Player().Position(); got != geom.P(4, 4) {
		t.Fatalf("player at %v, want (4,4)", got)
	}
	if l.At(geom.P(4, 4)).BlockingOccupant() != l.Player() {
		t.Error("entrance cell does not hold the player")
	}
	if l.Player().Map() == nil {
		t.Error("player not attached to the level")
	}
}

func TestMoveIntoWallIsRejected(t *testing.T) {
	l, _ := openRoom(3, 3, entity.ClassIdle)
	for _, d := range geom.AllDirs {
		if l.Move(d) {
			t.Errorf("move %v into a wall accepted", d)
		}
	}
	if l.Turns() != 0 {
		t.Errorf("rejected moves used %d turns", l.Turns())
	}
	if got := l.Player().Position(); got != geom.P(1, 1) {
		t.Errorf("player moved to %v", got)
	}
}

func TestMoveOffMapIsRejected(t *testing.T) {
	l, _ := openRoom(9, 9, entity.ClassIdle)
	l.Map.Clear(geom.P(5, 4))
	if l.Move(geom.Right) {
		t.Error("move onto a missing cell accepted")
	}
}

func TestRevealStaysInsideRoom(t *testing.T) {
	cfg := generate.DefaultConfig(1, rand.New(rand.NewSource(5)))
	m := gamemap.New()
	generate.NewRoomsGenerator(cfg).Generate(m)
	sched := anim.NewScheduler()
	l := New(m, entity.NewPlayer(entity.ClassIdle), sched, testView, nil)
	sched.Drain(100)

	if !l.Rooms()[0].Explored {
		t.Error("origin room not marked explored")
	}
	visible := map[geom.Pos]bool{}
	l.Each(func(ti *gamemap.TileInfo) {
		if ti.RoomIdx == 0 && !ti.Visible {
			t.Errorf("room cell %v still hidden", ti.Pos)
		}
		if ti.Visible {
			visible[ti.Pos] = true
			if ti.RoomIdx != 0 && !ti.AlwaysVis {
				t.Errorf("cell %v of area %d revealed", ti.Pos, ti.RoomIdx)
			}
		}
	})
	if l.Revealing() {
		t.Error("reveal still running after drain")
	}

	// Revealed cells never hide again.
	l.Move(geom.Left)
	l.Move(geom.Top)
	sched.Drain(100)
	for p := range visible {
		if !l.At(p).Visible {
			t.Errorf("cell %v lost visibility", p)
		}
	}
}

func TestEncounterBlocksDoorsUntilCleared(t *testing.T) {
	l, _ := twoRooms(1)
	rooms := l.Rooms()
	if len(rooms) != 2 {
		t.Fatalf("rooms = %d, want 2", len(rooms))
	}
	d := rooms[0].Doors[0].Dir
	far := rooms[1]
	for i := 0; i < 20 && !far.Rect.StrictlyContains(l.Player().Position()); i++ {
		if !l.Move(d) {
			t.Fatalf("move %d toward %v rejected at %v", i, d, l.Player().Position())
		}
	}
	if !far.Rect.StrictlyContains(l.Player().Position()) {
		t.Fatalf("player never entered the far room, at %v", l.Player().Position())
	}
	if got := len(l.ActiveEnemies()); got != 4 {
		t.Fatalf("active enemies = %d, want 4", got)
	}

	door := doorOn(l.At(far.Rect.SideMiddle(d.Opposite())))
	if door == nil {
		t.Fatal("no door on the far room's entry")
	}
	if !door.Blocked || !door.Blocking() {
		t.Error("entry door should be blocked during the encounter")
	}
	if l.Move(d.Opposite()) {
		t.Error("bumping the blocked entry door used a turn")
	}

	for _, e := range append([]*entity.Enemy(nil), l.ActiveEnemies()...) {
		e.ReceiveDamage(1000, nil)
	}
	l.PassTurn()
	if len(l.ActiveEnemies()) != 0 {
		t.Fatalf("dead enemies still active: %d", len(l.ActiveEnemies()))
	}
	if door.Blocked || door.Blocking() {
		t.Error("entry door still blocked after the encounter")
	}
	for _, p := range far.Rect.Points() {
		if e := enemyOn(l.At(p)); e != nil {
			t.Errorf("dead enemy left on %v", p)
		}
	}
}

func TestRoomActivatesOnce(t *testing.T) {
	l, _ := twoRooms(1)
	d := l.Rooms()[0].Doors[0].Dir
	far := l.Rooms()[1]
	for i := 0; i < 20 && !far.Rect.StrictlyContains(l.Player().Position()); i++ {
		l.Move(d)
	}
	if !far.Rect.StrictlyContains(l.Player().Position()) {
		t.Fatalf("player never entered the far room, at %v", l.Player().Position())
	}
	entry := doorOn(l.At(far.Rect.SideMiddle(d.Opposite())))

	// The reveal has not advanced, so this step lands on a hidden cell.
	l.Move(d)
	seen := map[*entity.Enemy]bool{}
	for _, e := range l.ActiveEnemies() {
		if seen[e] {
			t.Errorf("enemy at %v active twice", e.Position())
		}
		seen[e] = true
	}
	if got := len(l.ActiveEnemies()); got != 4 {
		t.Errorf("active enemies = %d, want 4", got)
	}

	for _, e := range append([]*entity.Enemy(nil), l.ActiveEnemies()...) {
		e.ReceiveDamage(1000, nil)
	}
	l.PassTurn()
	if entry == nil || entry.Blocked || entry.Blocking() {
		t.Error("entry door should reopen once the encounter is cleared")
	}
}

func doorOn(ti *gamemap.TileInfo) *entity.Door {
	if ti == nil {
		return nil
	}
	for _, o := range ti.Occupants() {
		if d, ok := o.(*entity.Door); ok {
			return d
		}
	}
	return nil
}

func TestFourHitsKillMuncher(t *testing.T) {
	l, _ := openRoom(9, 9, entity.ClassIdle)
	m := entity.NewMuncher()
	l.AddEntity(geom.P(5, 4), m)

	for i := 1; i <= 3; i++ {
		if !l.Move(geom.Right) {
			t.Fatalf("attack %d not accepted", i)
		}
		if !m.Alive() || enemyOn(l.At(geom.P(5, 4))) != m {
			t.Fatalf("muncher gone after %d hits", i)
		}
	}
	l.Move(geom.Right)
	if m.Alive() {
		t.Fatalf("muncher alive with %d hp after 4 hits", m.HP)
	}
	if enemyOn(l.At(geom.P(5, 4))) != nil {
		t.Error("dead muncher still on its cell")
	}
	if got := l.Player().Position(); got != geom.P(4, 4) {
		t.Errorf("attacking moved the player to %v", got)
	}
	if l.Turns() != 4 {
		t.Errorf("turns = %d, want 4", l.Turns())
	}
}

func TestStunSkipsEnemyTurns(t *testing.T) {
	l, _ := openRoom(9, 9, entity.ClassImpact)
	m := entity.NewMuncher()
	l.AddEntity(geom.P(5, 4), m)
	wakeRoom(l, 0)
	health := l.Player().Resource(entity.ResHealth)

	l.Move(geom.Right)
	if m.StunTurns != 1 || !m.HasEffect(entity.EffectStun) {
		t.Fatalf("stun turns = %d after the hit's turn, want 1", m.StunTurns)
	}
	l.PassTurn()
	if health.Value != 100 {
		t.Fatalf("stunned muncher attacked, health %d", health.Value)
	}
	if m.HasEffect(entity.EffectStun) {
		t.Error("stun marker kept after stun ran out")
	}
	l.PassTurn()
	if health.Value != 90 {
		t.Errorf("health = %d, want 90", health.Value)
	}
}

func TestPlayerDeathEndsGame(t *testing.T) {
	l, _ := openRoom(9, 9, entity.ClassImpulse)
	l.AddEntity(geom.P(5, 4), entity.NewMuncher())
	wakeRoom(l, 0)
	l.HoverAt(geom.P(7, 7))
	l.Player().Resource(entity.ResHealth).Value = 5

	l.PassTurn()
	if !l.GameOver() {
		t.Fatal("game should be over")
	}
	if l.RunMode() != RunOff || l.Path() != nil {
		t.Error("run state not cleared on death")
	}
	if l.Move(geom.Left) {
		t.Error("dead player moved")
	}
}

func TestStairsFinishLevel(t *testing.T) {
	l, _ := openRoom(9, 9, entity.ClassIdle)
	l.At(geom.P(5, 4)).Kind = gamemap.TileStairsDown
	if !l.Move(geom.Right) {
		t.Fatal("stepping on stairs rejected")
	}
	if !l.Finished() {
		t.Error("level not finished")
	}
	if l.Turns() != 0 {
		t.Errorf("stairs resolved %d enemy turns", l.Turns())
	}
	if l.Move(geom.Right) {
		t.Error("moved after the level finished")
	}
}

func TestLockedDoorTakesTwoBumps(t *testing.T) {
	l, _ := openRoom(9, 9, entity.ClassIdle)
	door := entity.NewDoor(true, true)
	l.AddEntity(geom.P(5, 4), door)

	l.Move(geom.Right)
	if door.Locked || !door.Blocking() {
		t.Fatal("first bump should unlock only")
	}
	l.Move(geom.Right)
	if door.Blocking() {
		t.Fatal("second bump should open the door")
	}
	l.Move(geom.Right)
	if got := l.Player().Position(); got != geom.P(5, 4) {
		t.Errorf("player at %v, want on the open door", got)
	}
	if l.Turns() != 3 {
		t.Errorf("turns = %d, want 3", l.Turns())
	}
}

func TestBlockedDoorBumpIsFree(t *testing.T) {
	l, _ := openRoom(9, 9, entity.ClassIdle)
	door := entity.NewDoor(false, false)
	l.AddEntity(geom.P(5, 4), door)
	door.Block()
	if l.Move(geom.Right) {
		t.Error("bumping a blocked door used a turn")
	}
	if len(l.Messages()) == 0 {
		t.Error("no message for the blocked door")
	}
}
