package systems

import (
	"testing"

	"github.com/automoto/durhamtour/components"
	cfg "github.com/automoto/durhamtour/config"
)

func TestPlayerStartsCentredOnceSurfaceIsSized(t *testing.T) {
	tr := newTour(t, testConfig())
	tr.tick()

	scene := GetScene(tr.ecs)
	if !scene.SurfaceSized || scene.Width != 1000 || scene.Height != 800 {
		t.Fatalf("surface = %vx%v sized=%v, want 1000x800", scene.Width, scene.Height, scene.SurfaceSized)
	}
	if p := tr.player(); p.Position.X != 500 || p.Position.Y != 400 {
		t.Errorf("player at %v, want (500, 400)", p.Position)
	}
}

func TestPlayerDoesNotMoveBeforeSurfaceIsSized(t *testing.T) {
	tr := newTourWithBackground(t, testConfig(), ready("bg", 1000, 800))
	tr.moveTo(100, 100)
	GetInput(tr.ecs).Current[cfg.ActionMoveRight] = true
	UpdatePlayer(tr.ecs)
	if p := tr.player(); p.Position.X != 100 || p.Position.Y != 100 {
		t.Errorf("player moved to %v before the surface was sized", p.Position)
	}
}

func TestPlayerStaysWithinSurface(t *testing.T) {
	tr := newTour(t, testConfig())
	tr.tick()
	half := tr.player().Size / 2

	sequences := [][]cfg.ActionID{
		{cfg.ActionMoveLeft},
		{cfg.ActionMoveUp},
		{cfg.ActionMoveRight, cfg.ActionMoveDown},
		{cfg.ActionMoveLeft, cfg.ActionMoveDown},
	}
	for _, held := range sequences {
		for i := 0; i < 500; i++ {
			tr.tick(held...)
			p := tr.player()
			if p.Position.X < half || p.Position.X > 1000-half || p.Position.Y < half || p.Position.Y > 800-half {
				t.Fatalf("holding %v: player escaped to %v", held, p.Position)
			}
		}
	}

	p := tr.player()
	if p.Position.X != half || p.Position.Y != 800-half {
		t.Errorf("after holding left+down player at %v, want (%v, %v)", p.Position, half, 800-half)
	}
}

func TestPlayerMovesBySpeedWithoutDiagonalNormalisation(t *testing.T) {
	tr := newTour(t, testConfig())
	tr.tick()

	tr.tick(cfg.ActionMoveRight, cfg.ActionMoveDown)
	p := tr.player()
	if p.Position.X != 503 || p.Position.Y != 403 {
		t.Errorf("player at %v, want (503, 403)", p.Position)
	}
}

func TestLastProcessedDirectionWinsFacing(t *testing.T) {
	tr := newTour(t, testConfig())
	tr.tick()

	tr.tick(cfg.ActionMoveRight, cfg.ActionMoveUp)
	if f := tr.player().Facing; f != cfg.DirectionRight {
		t.Errorf("up+right facing = %s, want right", f)
	}
	tr.tick(cfg.ActionMoveLeft, cfg.ActionMoveDown)
	if f := tr.player().Facing; f != cfg.DirectionLeft {
		t.Errorf("down+left facing = %s, want left", f)
	}
}

func TestTrailIsCappedAndClearedOnStop(t *testing.T) {
	tr := newTour(t, testConfig())
	tr.tick()

	for i := 0; i < 100; i++ {
		tr.tick(cfg.ActionMoveUp)
		if n := len(tr.trail().Points); n > 20 {
			t.Fatalf("trail length %d after %d ticks", n, i+1)
		}
	}
	if n := len(tr.trail().Points); n != 20 {
		t.Errorf("trail length = %d, want 20", n)
	}
	if head := tr.trail().Points[0]; head != tr.player().Position {
		t.Errorf("trail head = %v, want newest position %v", head, tr.player().Position)
	}

	tr.tick()
	if n := len(tr.trail().Points); n != 0 {
		t.Errorf("trail length after stopping = %d, want 0", n)
	}
	if tr.player().Moving {
		t.Error("player still moving with no keys held")
	}
}

func TestTrailGrowsEveryOtherTick(t *testing.T) {
	tr := newTour(t, testConfig())
	tr.tick()

	tr.ticks(7, cfg.ActionMoveLeft)
	if n := len(tr.trail().Points); n != 3 {
		t.Errorf("trail length after 7 moving ticks = %d, want 3", n)
	}
}

func TestWalkFrameCyclesWhileMovingAndResetsWhenIdle(t *testing.T) {
	tr := newTour(t, testConfig())
	tr.tick()
	entry, _ := components.Player.First(tr.ecs.World)
	anim := components.Animation.Get(entry).CurrentAnimation

	if anim.Frame() != cfg.IdleFrame {
		t.Fatalf("idle frame = %d, want %d", anim.Frame(), cfg.IdleFrame)
	}

	var seen []int
	for i := 1; i <= 32; i++ {
		tr.tick(cfg.ActionMoveRight)
		if i%8 == 0 {
			seen = append(seen, anim.Frame())
		}
	}
	want := []int{2, 3, 4, 2}
	for i := range want {
		if seen[i] != want[i] {
			t.Fatalf("walk frames = %v, want %v", seen, want)
		}
	}

	tr.tick()
	if anim.Frame() != cfg.IdleFrame || anim.Counter() != 0 {
		t.Errorf("after stopping frame=%d counter=%d, want idle frame and 0", anim.Frame(), anim.Counter())
	}
}
