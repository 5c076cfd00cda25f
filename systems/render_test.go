package systems

import (
	"image/color"
	"math"
	"strings"
	"testing"

	"github.com/automoto/durhamtour/components"
	cfg "github.com/automoto/durhamtour/config"
	"github.com/automoto/durhamtour/graphics"
	"github.com/automoto/durhamtour/scenedata"
	dmath "github.com/yohamta/donburi/features/math"
)

func TestLocationsDrawnByDepthWithTopmostLast(t *testing.T) {
	tr := newTour(t, testConfig())
	tr.location("a", scenedata.Pct(50), scenedata.Pct(60))
	tr.location("lambda-youth", scenedata.Pct(50), scenedata.Pct(10))
	tr.location("b", scenedata.Pct(50), scenedata.Pct(30))
	tr.tick()

	c := &recordingCanvas{w: 1000, h: 800}
	drawLocations(tr.ecs, c)

	var order []string
	for _, call := range c.ops("image") {
		if !strings.HasSuffix(call.key, "_title.png") {
			order = append(order, strings.TrimSuffix(call.key, ".png"))
		}
	}
	want := []string{"b", "a", "lambda-youth"}
	if strings.Join(order, ",") != strings.Join(want, ",") {
		t.Errorf("draw order = %v, want %v", order, want)
	}
}

func TestSortedLocationsIsStableForEqualDepth(t *testing.T) {
	tr := newTour(t, testConfig())
	tr.location("first", scenedata.Pct(20), scenedata.Pct(50))
	tr.location("second", scenedata.Pct(80), scenedata.Pct(50))
	tr.tick()

	locs := SortedLocations(tr.ecs, "")
	if len(locs) != 2 || locs[0].Def.ID != "first" || locs[1].Def.ID != "second" {
		t.Errorf("equal-depth order changed: %v", locs)
	}
}

func TestLocationCrossFade(t *testing.T) {
	tr := newTour(t, testConfig())
	entry := tr.location("hayti", scenedata.Pct(50), scenedata.Pct(50))
	tr.tick()
	loc := locationData(entry)
	loc.HoverTransition = 0.4

	c := &recordingCanvas{w: 1000, h: 800}
	drawLocations(tr.ecs, c)
	images := c.ops("image")
	if len(images) != 2 {
		t.Fatalf("drew %d images, want normal and hover", len(images))
	}
	normal, hover := images[0], images[1]
	if math.Abs(normal.alpha-0.6) > 1e-9 || math.Abs(hover.alpha-0.4) > 1e-9 {
		t.Errorf("alphas = %v/%v, want 0.6/0.4", normal.alpha, hover.alpha)
	}
	wantW := 60 * 1.02
	if math.Abs(normal.w-wantW) > 1e-9 {
		t.Errorf("width = %v, want %v", normal.w, wantW)
	}
	if cx := normal.x + normal.w/2; math.Abs(cx-500) > 1e-9 {
		t.Errorf("scaled image centre x = %v, want 500", cx)
	}
}

func TestPinsDrawnAboveLocations(t *testing.T) {
	tr := newTourWithLibrary(t, testConfig(), spriteLibrary())
	tr.location("hayti", scenedata.Pct(50), scenedata.Pct(50))
	tr.tick()

	c := &recordingCanvas{w: 1000, h: 800}
	drawLocations(tr.ecs, c)
	images := c.ops("image")
	if len(images) != 3 {
		t.Fatalf("drew %d images, want location, hover and pin", len(images))
	}
	pin := images[2]
	if !strings.HasPrefix(pin.key, "pin-") {
		t.Fatalf("last image = %q, want a pin", pin.key)
	}
	if pin.w != 15 || pin.h != 30 {
		t.Errorf("pin size = %vx%v, want 15x30", pin.w, pin.h)
	}
	if pin.x != 492.5 {
		t.Errorf("pin x = %v, want 492.5", pin.x)
	}
	base := 380 + testConfig().PinOffset - 30
	if math.Abs(pin.y-base) > cfg.Pin.BounceHeight+1e-9 {
		t.Errorf("pin y = %v, want within %v of %v", pin.y, cfg.Pin.BounceHeight, base)
	}
}

func TestPinVariantAndBounceStayInRange(t *testing.T) {
	for seed := 0; seed < 19; seed++ {
		phase := cfg.PinPhase(seed)
		for clock := 0.0; clock < 500; clock += 0.37 {
			if v := PinVariant(clock, phase, 3); v < 0 || v >= 3 {
				t.Fatalf("seed %d clock %v: variant %d out of range", seed, clock, v)
			}
			if b := PinBounce(clock, phase); math.Abs(b) > cfg.Pin.BounceHeight {
				t.Fatalf("seed %d clock %v: bounce %v out of range", seed, clock, b)
			}
		}
	}
	if PinVariant(1, 1, 0) != 0 {
		t.Error("no variants should select 0")
	}
}

func TestPinPhasesDiffer(t *testing.T) {
	seen := make(map[float64]bool)
	for seed := 0; seed < 19; seed++ {
		p := cfg.PinPhase(seed)
		if seen[p] {
			t.Fatalf("seed %d repeats phase %v", seed, p)
		}
		seen[p] = true
	}
}

func TestPlaceholderBackground(t *testing.T) {
	tr := newTour(t, testConfig())

	c := &recordingCanvas{w: 800, h: 600}
	drawBackground(tr.ecs, c)
	if len(c.calls) == 0 || c.calls[0].op != "rect" || c.calls[0].clr != cfg.Background.Fill {
		t.Fatalf("first call = %+v, want the fill", c.calls)
	}
	if n := len(c.ops("line")); n != 20+15 {
		t.Errorf("grid lines = %d, want 35", n)
	}

	tr.tick()
	c = &recordingCanvas{w: 800, h: 600}
	drawBackground(tr.ecs, c)
	images := c.ops("image")
	if len(images) != 1 || images[0].key != "bg" || images[0].w != 1000 || images[0].h != 800 {
		t.Errorf("background draw = %+v, want bg at 1000x800", images)
	}
}

func TestTrailFadesTowardsOldest(t *testing.T) {
	tr := newTour(t, testConfig())
	trail := tr.trail()
	for i := 0; i < 4; i++ {
		trail.Push(dmath.Vec2{X: float64(i), Y: 0})
	}

	c := &recordingCanvas{w: 1000, h: 800}
	drawTrail(tr.ecs, c)
	circles := c.ops("circle")
	if len(circles) != 4 {
		t.Fatalf("circles = %d, want 4", len(circles))
	}
	oldest, newest := circles[0], circles[3]
	if oldest.x != 0 || oldest.w != 2 {
		t.Errorf("oldest = %+v, want x 0 radius 2", oldest)
	}
	if newest.x != 3 || newest.w != cfg.Trail.MaxRadius {
		t.Errorf("newest = %+v, want x 3 radius %v", newest, cfg.Trail.MaxRadius)
	}
	if a := newest.clr.(color.NRGBA).A; a != uint8(255*cfg.Trail.MaxAlpha) {
		t.Errorf("newest alpha = %d", a)
	}
	if newest.clr.(color.NRGBA).R != cfg.Trail.Palette[0].R {
		t.Error("newest particle does not use the first palette colour")
	}
}

func TestPlayerPlaceholderWithoutSprites(t *testing.T) {
	tr := newTour(t, testConfig())
	tr.tick()

	c := &recordingCanvas{w: 1000, h: 800}
	drawPlayer(tr.ecs, c)
	rects := c.ops("rect")
	if len(rects) != 1 || rects[0].clr != cfg.PlayerPink {
		t.Fatalf("draws = %+v, want one pink square", c.calls)
	}
	if r := rects[0]; r.x != 480 || r.y != 380 || r.w != 40 {
		t.Errorf("square = %+v, want (480, 380) 40 wide", r)
	}
}

func TestPlayerSpriteFollowsFacingAndAcquisition(t *testing.T) {
	tr := newTourWithLibrary(t, testConfig(), spriteLibrary())
	tr.object("pride-button", scenedata.Pct(50), scenedata.Pct(50))
	tr.tick()

	draw := func() *recordingCanvas {
		c := &recordingCanvas{w: 1000, h: 800}
		drawPlayer(tr.ecs, c)
		return c
	}

	if images := draw().ops("image"); len(images) != 1 || images[0].key != "walk-down-1" {
		t.Fatalf("idle sprite = %+v, want walk-down-1", images)
	}

	tr.tick(cfg.ActionInteract)
	tr.ticks(32)
	if acq := GetAcquisition(tr.ecs); acq == nil || acq.Step != components.StepPose {
		t.Fatal("not posing after the spin")
	}
	if images := draw().ops("image"); len(images) != 1 || images[0].key != "acquire" {
		t.Errorf("pose sprite = %+v, want acquire", images)
	}

	tr.ticks(20)
	c := draw()
	if n := len(c.ops("line")); n != cfg.Acquisition.LineCount {
		t.Errorf("float lines = %d, want %d", n, cfg.Acquisition.LineCount)
	}
	images := c.ops("image")
	if len(images) != 2 || images[1].key != "pride-button_1.png" {
		t.Errorf("float images = %+v, want the sprite then the item", images)
	}
}

func TestNearbyObjectBobs(t *testing.T) {
	tr := newTour(t, testConfig())
	tr.object("far", scenedata.Pct(10), scenedata.Pct(10))
	tr.object("near", scenedata.Pct(50), scenedata.Pct(50))
	tr.ticks(3)

	c := &recordingCanvas{w: 1000, h: 800}
	drawCollectibles(tr.ecs, c)
	images := c.ops("image")
	if len(images) != 2 {
		t.Fatalf("objects drawn = %d, want 2", len(images))
	}
	for _, img := range images {
		moved := img.w != 40
		near := strings.HasPrefix(img.key, "near")
		if moved != near {
			t.Errorf("%s: scaled=%v, want %v", img.key, moved, near)
		}
	}
}

var _ graphics.Canvas = (*recordingCanvas)(nil)
