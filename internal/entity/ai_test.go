package entity_test

import (
	"testing"

	"bytecrawl/internal/entity"
	"bytecrawl/internal/entity/mocks"
	"bytecrawl/internal/gamemap"
	"bytecrawl/internal/geom"

	"go.uber.org/mock/gomock"
)

func TestMuncherFollowsPath(t *testing.T) {
	ctrl := gomock.NewController(t)
	m := mocks.NewMockMapAccessor(ctrl)

	player := entity.NewPlayer(entity.ClassIdle)
	player.SetPosition(geom.P(5, 0))
	e := entity.NewMuncher()
	e.SetPosition(geom.P(0, 0))
	e.Attach(m)

	src := &gamemap.TileInfo{Pos: geom.P(0, 0), Passable: true}
	src.AddOccupant(e)
	dst := &gamemap.TileInfo{Pos: geom.P(1, 0), Passable: true}

	m.EXPECT().Player().Return(player)
	m.EXPECT().FindPath(geom.P(0, 0), geom.P(5, 0)).
		Return([]geom.Pos{geom.P(0, 0), geom.P(1, 0), geom.P(2, 0)})
	m.EXPECT().At(geom.P(1, 0)).Return(dst)
	m.EXPECT().At(geom.P(0, 0)).Return(src)

	e.OnTurn()

	if e.Position() != geom.P(1, 0) {
		t.Errorf("muncher at %v, want (1,0)", e.Position())
	}
	if src.HasOccupants() {
		t.Error("source cell should be empty")
	}
}

func TestMuncherWaitsWithoutPath(t *testing.T) {
	ctrl := gomock.NewController(t)
	m := mocks.NewMockMapAccessor(ctrl)

	player := entity.NewPlayer(entity.ClassIdle)
	player.SetPosition(geom.P(9, 9))
	e := entity.NewMuncher()
	e.Attach(m)

	m.EXPECT().Player().Return(player)
	m.EXPECT().FindPath(gomock.Any(), gomock.Any()).Return(nil)

	e.OnTurn()
	if e.Position() != (geom.Pos{}) {
		t.Errorf("muncher moved without a path to %v", e.Position())
	}
}

func TestSpywareFloodsFromOccupiedCells(t *testing.T) {
	ctrl := gomock.NewController(t)
	m := mocks.NewMockMapAccessor(ctrl)

	e := entity.NewSpyware()
	e.SetPosition(geom.P(10, 10))
	e.Attach(m)

	occupied := &gamemap.TileInfo{Pos: geom.P(12, 10), Passable: true}
	occupied.AddOccupant(entity.NewMuncher())

	m.EXPECT().At(gomock.Any()).DoAndReturn(func(p geom.Pos) *gamemap.TileInfo {
		if p == geom.P(12, 10) {
			return occupied
		}
		return nil
	}).Times(400)
	m.EXPECT().Flood([]geom.Pos{geom.P(12, 10)}, 10)

	e.OnTurn()
}

func TestSpywareIdleWithoutDanger(t *testing.T) {
	ctrl := gomock.NewController(t)
	m := mocks.NewMockMapAccessor(ctrl)

	e := entity.NewSpyware()
	e.Attach(m)
	m.EXPECT().At(gomock.Any()).Return(nil).AnyTimes()

	e.OnTurn()
}
