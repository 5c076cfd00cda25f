package scenes

import (
	"image/color"

	"github.com/automoto/durhamtour/assets"
	"github.com/automoto/durhamtour/systems"
	"github.com/hajimehoshi/ebiten/v2"
)

// LoadingScene shows shared asset progress until the map background
// settles, then hands over to the tour. Failed assets do not block.
type LoadingScene struct {
	sceneChanger SceneChanger
	opts         TourOptions
	group        *assets.Group
}

func NewLoadingScene(sc SceneChanger, opts TourOptions) *LoadingScene {
	return &LoadingScene{
		sceneChanger: sc,
		opts:         opts,
		group:        opts.Library.Group(),
	}
}

func (ls *LoadingScene) Update() {
	if ls.opts.Library.Background.Settled() {
		ls.sceneChanger.ChangeScene(NewTourScene(ls.opts))
	}
}

func (ls *LoadingScene) Draw(screen *ebiten.Image) {
	// Always clear screen to prevent white flashes from OS window background
	screen.Fill(color.Black)
	systems.DrawLoadingProgress(screen, ls.group)
}

func (ls *LoadingScene) Size() (int, int) {
	return ls.opts.Config.CanvasWidth, ls.opts.Config.CanvasHeight
}
