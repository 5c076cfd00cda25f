package scenes

import (
	"image/color"
	"sync"

	"github.com/automoto/durhamtour/assets"
	"github.com/automoto/durhamtour/components"
	cfg "github.com/automoto/durhamtour/config"
	"github.com/automoto/durhamtour/scenedata"
	"github.com/automoto/durhamtour/systems"
	"github.com/automoto/durhamtour/systems/factory"
	"github.com/automoto/durhamtour/ui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// SceneChanger allows scenes to trigger transitions
type SceneChanger interface {
	ChangeScene(scene interface{})
}

// TourOptions are the collaborators a tour session is built from.
type TourOptions struct {
	Config   cfg.GameConfig
	Provider *assets.Provider
	Library  *assets.Library
	Table    scenedata.Table
	Saved    *systems.SavedSettings
}

// TourScene runs the exploration loop and the dialogue overlay.
type TourScene struct {
	ecs     *ecs.ECS
	ui      *ui.DialogueUI
	opts    TourOptions
	resized bool
	once    sync.Once
}

func NewTourScene(opts TourOptions) *TourScene {
	return &TourScene{opts: opts}
}

func (ts *TourScene) Update() {
	ts.once.Do(ts.configure)

	// The overlay runs first so its events reach this tick's interaction routing.
	ts.ui.Update()
	ts.ecs.Update()

	// The window follows the surface when it is redefined from the background.
	if scene := systems.GetScene(ts.ecs); scene.SurfaceSized && !ts.resized {
		ebiten.SetWindowSize(int(scene.Width), int(scene.Height))
		ts.resized = true
	}
}

func (ts *TourScene) Draw(screen *ebiten.Image) {
	// Always clear screen to prevent white flashes from OS window background
	screen.Fill(color.Black)

	if ts.ecs == nil {
		return
	}
	ts.ecs.Draw(screen)
	ts.ui.Draw(screen)
}

// Size returns the current surface size.
func (ts *TourScene) Size() (int, int) {
	if ts.ecs == nil {
		return ts.opts.Config.CanvasWidth, ts.opts.Config.CanvasHeight
	}
	scene := systems.GetScene(ts.ecs)
	return int(scene.Width), int(scene.Height)
}

func (ts *TourScene) configure() {
	ecs := ecs.NewECS(donburi.NewWorld())

	var bust *assets.Handle
	if ts.opts.Library != nil {
		bust = ts.opts.Library.Bust
	}
	ts.ui = ui.NewDialogueUI(ts.opts.Provider, bust, ts.opts.Config.BustWidth)

	// Systems, in tick order
	ecs.AddSystem(systems.UpdateInput)
	ecs.AddSystem(systems.UpdateRegistry)
	ecs.AddSystem(systems.UpdateAcquisition)
	ecs.AddSystem(systems.UpdatePlayer)
	ecs.AddSystem(systems.UpdateProximity)
	ecs.AddSystem(systems.UpdateInteraction)
	ecs.AddSystem(systems.UpdateCollectibles)
	ecs.AddSystem(systems.UpdateSettings)

	// Renderers, back to front
	ecs.AddRenderer(cfg.Default, systems.DrawBackground)
	ecs.AddRenderer(cfg.Default, systems.DrawLocations)
	ecs.AddRenderer(cfg.Default, systems.DrawCollectibles)
	ecs.AddRenderer(cfg.Default, systems.DrawTrail)
	ecs.AddRenderer(cfg.Default, systems.DrawPlayer)
	ecs.AddRenderer(cfg.Default, systems.DrawDebug)

	ts.ecs = ecs
	populate(ecs, ts.opts, ts.ui)
	systems.ApplySavedSettings(ecs, ts.opts.Saved)
}

// populate creates the session singletons and spawns every entity in the table.
func populate(ecs *ecs.ECS, opts TourOptions, presenter *ui.DialogueUI) {
	sessionEntry := factory.CreateSession(ecs, components.SessionData{
		Config:    opts.Config,
		Presenter: presenter,
		Provider:  opts.Provider,
		Library:   opts.Library,
		Table:     opts.Table,
	})
	session := components.Session.Get(sessionEntry)
	factory.CreateScene(ecs, session)

	factory.CreatePlayer(ecs, opts.Config,
		float64(opts.Config.CanvasWidth)/2,
		float64(opts.Config.CanvasHeight)/2,
	)

	for i, def := range opts.Table.Locations {
		factory.CreateLocation(ecs, opts.Provider, def, i)
	}
	for i, def := range opts.Table.Objects {
		factory.CreateCollectible(ecs, opts.Provider, def, i)
	}
}
