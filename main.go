package main

import (
	"context"
	"flag"
	"log"
	"os"

	"github.com/automoto/durhamtour/assets"
	"github.com/automoto/durhamtour/config"
	"github.com/automoto/durhamtour/fonts"
	"github.com/automoto/durhamtour/scenedata"
	"github.com/automoto/durhamtour/scenes"
	"github.com/automoto/durhamtour/systems"
	"github.com/hajimehoshi/ebiten/v2"
)

type Scene interface {
	Update()
	Draw(screen *ebiten.Image)
	Size() (int, int)
}

type Game struct {
	scene Scene
}

// ChangeScene switches to a new scene
func (g *Game) ChangeScene(scene interface{}) {
	g.scene = scene.(Scene)
}

func NewGame(opts scenes.TourOptions) *Game {
	fonts.LoadDefaults()

	g := &Game{}
	g.scene = scenes.NewLoadingScene(g, opts)
	return g
}

func (g *Game) Update() error {
	g.scene.Update()
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
}

func (g *Game) Layout(width, height int) (int, int) {
	return g.scene.Size()
}

func main() {
	base := flag.String("assets", "", "asset directory or base URL (default $"+config.Settings.BaseEnv+" or ./"+config.Settings.DefaultBaseDir+")")
	flag.Parse()

	source, err := assets.NewSource(assetBase(*base))
	if err != nil {
		log.Fatalf("Failed to open assets: %v", err)
	}

	table, err := scenedata.Load(assets.SceneFS(), config.AssetPaths.Scene)
	if err != nil {
		log.Fatalf("Failed to load scene: %v", err)
	}
	game := table.Tuning.Apply(config.DefaultGame())

	provider := assets.NewProvider(context.Background(), source)
	library := assets.LoadLibrary(provider)

	ebiten.SetWindowSize(game.CanvasWidth, game.CanvasHeight)
	ebiten.SetWindowTitle(config.Settings.WindowTitle)
	ebiten.SetTPS(config.Settings.TPS)

	// Initialize persistence and load saved settings
	if err := systems.InitPersistence(); err != nil {
		log.Printf("Warning: Could not initialize persistence: %v", err)
	}
	saved, err := systems.LoadSettings()
	if err == nil && saved != nil {
		systems.ApplySavedSettingsGlobal(saved)
	}

	opts := scenes.TourOptions{
		Config:   game,
		Provider: provider,
		Library:  library,
		Table:    table,
		Saved:    saved,
	}
	if err := ebiten.RunGame(NewGame(opts)); err != nil {
		log.Fatal(err)
	}
}

func assetBase(flagValue string) string {
	if flagValue != "" {
		return flagValue
	}
	if env := os.Getenv(config.Settings.BaseEnv); env != "" {
		return env
	}
	return config.Settings.DefaultBaseDir
}
