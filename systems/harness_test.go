package systems

import (
	"fmt"
	"image"
	"image/color"
	"testing"

	"github.com/automoto/durhamtour/assets"
	"github.com/automoto/durhamtour/components"
	cfg "github.com/automoto/durhamtour/config"
	"github.com/automoto/durhamtour/dialogue"
	"github.com/automoto/durhamtour/scenedata"
	"github.com/automoto/durhamtour/systems/factory"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// sizedImage reports a size without allocating pixels.
type sizedImage struct{ w, h int }

func (s sizedImage) ColorModel() color.Model { return color.RGBAModel }
func (s sizedImage) Bounds() image.Rectangle { return image.Rect(0, 0, s.w, s.h) }
func (s sizedImage) At(int, int) color.Color { return color.Transparent }

func ready(key string, w, h int) *assets.Handle {
	return assets.Preloaded(key, sizedImage{w, h})
}

// tour is a headless session on a 1000x800 map with a recording presenter.
type tour struct {
	t   *testing.T
	ecs *ecs.ECS
	rec *dialogue.Recorder
}

func testConfig() cfg.GameConfig {
	game := cfg.DefaultGame()
	game.BackgroundScale = 1
	return game
}

func newTour(t *testing.T, game cfg.GameConfig) *tour {
	t.Helper()
	return newTourWithBackground(t, game, ready("bg", 1000, 800))
}

func newTourWithBackground(t *testing.T, game cfg.GameConfig, bg *assets.Handle) *tour {
	t.Helper()
	return newTourWithLibrary(t, game, &assets.Library{Background: bg})
}

func newTourWithLibrary(t *testing.T, game cfg.GameConfig, lib *assets.Library) *tour {
	t.Helper()
	e := ecs.NewECS(donburi.NewWorld())
	rec := &dialogue.Recorder{}
	entry := factory.CreateSession(e, components.SessionData{
		Config:    game,
		Presenter: rec,
		Library:   lib,
	})
	factory.CreateScene(e, components.Session.Get(entry))
	factory.CreatePlayer(e, game, 0, 0)
	return &tour{t: t, ecs: e, rec: rec}
}

// location spawns a 60x40 location (300x200 images at 0.2 scale).
func (tr *tour) location(id string, x, y scenedata.Coord) *donburi.Entry {
	def := scenedata.LocationDef{
		ID:          id,
		Name:        "Location " + id,
		Image:       id + ".png",
		ImageHover:  id + "_title.png",
		X:           x,
		Y:           y,
		Description: "About " + id,
		Link:        "https://example.org/" + id,
	}
	return factory.CreateLocationWithImages(tr.ecs, def, len(tr.locations()), ready(def.Image, 300, 200), ready(def.ImageHover, 300, 200))
}

// object spawns a 40x40 collectible (400x400 frames at 0.1 scale).
func (tr *tour) object(id string, x, y scenedata.Coord) *donburi.Entry {
	def := scenedata.ObjectDef{
		ID:             id,
		Name:           "Object " + id,
		Frame1:         id + "_1.png",
		Frame2:         id + "_2.png",
		X:              x,
		Y:              y,
		Dialogue:       "Something glints: " + id,
		AcquireMessage: "I found " + id,
		ButtonText:     "Pick it up",
	}
	return factory.CreateCollectibleWithImages(tr.ecs, def, 0, ready(def.Frame1, 400, 400), ready(def.Frame2, 400, 400))
}

func (tr *tour) locations() []*donburi.Entry {
	var out []*donburi.Entry
	components.Location.Each(tr.ecs.World, func(e *donburi.Entry) { out = append(out, e) })
	return out
}

// tick runs one update with the given actions held. Actions held on
// consecutive ticks are not pressed again.
func (tr *tour) tick(held ...cfg.ActionID) {
	tr.step(false, held...)
}

// tap runs one update with a touch starting this tick.
func (tr *tour) tap() {
	tr.step(true)
}

func (tr *tour) step(tapped bool, held ...cfg.ActionID) {
	in := GetInput(tr.ecs)
	in.Previous = in.Current
	in.Current = [cfg.ActionCount]bool{}
	for _, a := range held {
		in.Current[a] = true
	}
	in.Tapped = tapped
	in.Consumed = false

	UpdateRegistry(tr.ecs)
	UpdateAcquisition(tr.ecs)
	UpdatePlayer(tr.ecs)
	UpdateProximity(tr.ecs)
	UpdateInteraction(tr.ecs)
	UpdateCollectibles(tr.ecs)
}

func (tr *tour) ticks(n int, held ...cfg.ActionID) {
	for i := 0; i < n; i++ {
		tr.tick(held...)
	}
}

func (tr *tour) player() *components.PlayerData {
	entry, ok := components.Player.First(tr.ecs.World)
	if !ok {
		tr.t.Fatal("no player")
	}
	return components.Player.Get(entry)
}

func (tr *tour) trail() *components.TrailData {
	entry, _ := components.Player.First(tr.ecs.World)
	return components.Trail.Get(entry)
}

func (tr *tour) moveTo(x, y float64) {
	p := tr.player()
	p.Position.X, p.Position.Y = x, y
}

func locationData(entry *donburi.Entry) *components.LocationData {
	return components.Location.Get(entry)
}

func collectibleData(entry *donburi.Entry) *components.CollectibleData {
	return components.Collectible.Get(entry)
}

func (tr *tour) acquisitions() int {
	n := 0
	components.Acquisition.Each(tr.ecs.World, func(*donburi.Entry) { n++ })
	return n
}

// spriteLibrary returns a library whose walk sheets, pose and pins are all ready.
func spriteLibrary() *assets.Library {
	lib := &assets.Library{
		Background: ready("bg", 1000, 800),
		Walk:       make(map[cfg.Direction][]*assets.Handle),
		Acquire:    ready("acquire", 64, 64),
	}
	for _, dir := range cfg.SpinOrder {
		frames := make([]*assets.Handle, cfg.WalkAnimation.Last+1)
		for frame := cfg.IdleFrame; frame <= cfg.WalkAnimation.Last; frame++ {
			frames[frame] = ready(fmt.Sprintf("walk-%s-%d", dir, frame), 64, 64)
		}
		lib.Walk[dir] = frames
	}
	for i := 1; i <= 3; i++ {
		lib.Pins = append(lib.Pins, ready(fmt.Sprintf("pin-%d", i), 100, 200))
	}
	return lib
}

type drawCall struct {
	op         string
	key        string
	x, y, w, h float64
	alpha      float64
	clr        color.Color
}

// recordingCanvas keeps every draw call in order.
type recordingCanvas struct {
	w, h  float64
	calls []drawCall
}

func (c *recordingCanvas) Size() (float64, float64) { return c.w, c.h }

func (c *recordingCanvas) DrawImage(img *assets.Handle, x, y, w, h, alpha float64) {
	if !img.Ready() {
		return
	}
	c.calls = append(c.calls, drawCall{op: "image", key: img.Key(), x: x, y: y, w: w, h: h, alpha: alpha})
}

func (c *recordingCanvas) FillRect(x, y, w, h float64, clr color.Color) {
	c.calls = append(c.calls, drawCall{op: "rect", x: x, y: y, w: w, h: h, clr: clr})
}

func (c *recordingCanvas) FillCircle(cx, cy, r float64, clr color.Color) {
	c.calls = append(c.calls, drawCall{op: "circle", x: cx, y: cy, w: r, clr: clr})
}

func (c *recordingCanvas) StrokeLine(x0, y0, x1, y1 float64, width float32, clr color.Color) {
	c.calls = append(c.calls, drawCall{op: "line", x: x0, y: y0, w: x1, h: y1, clr: clr})
}

func (c *recordingCanvas) ops(op string) []drawCall {
	var out []drawCall
	for _, call := range c.calls {
		if call.op == op {
			out = append(out, call)
		}
	}
	return out
}
