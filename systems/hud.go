package systems

import (
	"fmt"

	"github.com/automoto/durhamtour/assets"
	cfg "github.com/automoto/durhamtour/config"
	"github.com/automoto/durhamtour/fonts"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

const (
	hudBarWidth  = 240
	hudBarHeight = 12
	hudMargin    = 10
)

var hudTextOp = &text.DrawOptions{}

// DrawLoadingProgress renders a centred progress bar for a loading group.
func DrawLoadingProgress(screen *ebiten.Image, group *assets.Group) {
	done, total := group.Progress()
	ratio := float32(1)
	if total > 0 {
		ratio = float32(done) / float32(total)
	}

	w, h := screen.Bounds().Dx(), screen.Bounds().Dy()
	x := float32(w-hudBarWidth) / 2
	y := float32(h) / 2

	// Track and fill
	vector.FillRect(screen, x, y, hudBarWidth, hudBarHeight, cfg.BlackOverlay, false)
	vector.FillRect(screen, x, y, hudBarWidth*ratio, hudBarHeight, cfg.Gold, false)

	label := fmt.Sprintf("%s %d/%d", cfg.Text.Loading, done, total)
	face := fonts.Bold.Face()
	tw, _ := text.Measure(label, face, 0)

	hudTextOp.GeoM.Reset()
	hudTextOp.GeoM.Translate(float64(w)/2-tw/2, float64(y)-hudMargin-face.Metrics().HAscent)
	hudTextOp.ColorScale.Reset()
	hudTextOp.ColorScale.ScaleWithColor(cfg.White)
	text.Draw(screen, label, face, hudTextOp)
}
