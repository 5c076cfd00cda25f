package systems

import (
	"fmt"
	"image/color"

	"github.com/automoto/durhamtour/components"
	cfg "github.com/automoto/durhamtour/config"
	"github.com/automoto/durhamtour/fonts"
	"github.com/automoto/durhamtour/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
)

var debugTextOp = &text.DrawOptions{}

// DrawDebug outlines every registered bound, the player's interaction and
// hover radii, and prints the proximity and acquisition state.
func DrawDebug(ecs *ecs.ECS, screen *ebiten.Image) {
	settings := GetOrCreateSettings(ecs)
	if !settings.Debug {
		return
	}

	if spaceEntry, ok := components.Space.First(ecs.World); ok {
		space := components.Space.Get(spaceEntry)
		for _, obj := range space.Objects() {
			c := cfg.DebugCyan
			if obj.HasTags(tags.ResolvActiveArea) {
				c = cfg.DebugYellow
			} else if obj.HasTags(tags.ResolvCollectible) {
				c = cfg.DebugMagenta
			}
			strokeBounds(screen, obj.X, obj.Y, obj.W, obj.H, c)
		}
	}

	playerEntry, ok := components.Player.First(ecs.World)
	if !ok {
		return
	}
	player := components.Player.Get(playerEntry)
	game := GetSession(ecs).Config
	px, py := float32(player.Position.X), float32(player.Position.Y)
	vector.StrokeCircle(screen, px, py, float32(game.InteractionRadius), 1, cfg.DebugCyan, true)
	if game.HoverRadius != game.InteractionRadius {
		vector.StrokeCircle(screen, px, py, float32(game.HoverRadius), 1, cfg.DebugYellow, true)
	}

	drawDebugText(screen, debugSummary(ecs, player), 8, 8)
}

func debugSummary(ecs *ecs.ECS, player *components.PlayerData) string {
	prox := getOrCreateProximity(ecs)
	s := fmt.Sprintf("pos %.0f,%.0f facing %s", player.Position.X, player.Position.Y, player.Facing)
	if prox.NearbyObject != nil {
		s += "\nnear object " + components.Collectible.Get(prox.NearbyObject).Def.ID
	}
	if prox.NearbyLocation != nil {
		s += "\nnear location " + components.Location.Get(prox.NearbyLocation).Def.ID
	}
	if acq := GetAcquisition(ecs); acq != nil {
		s += fmt.Sprintf("\nacquisition %s %d (%d ticks)", acq.Step, acq.Counter, acq.Elapsed)
	}
	return s
}

func strokeBounds(screen *ebiten.Image, x, y, w, h float64, c color.Color) {
	vector.FillRect(screen, float32(x), float32(y), float32(w), 1, c, false)     // Top
	vector.FillRect(screen, float32(x), float32(y+h-1), float32(w), 1, c, false) // Bottom
	vector.FillRect(screen, float32(x), float32(y), 1, float32(h), c, false)     // Left
	vector.FillRect(screen, float32(x+w-1), float32(y), 1, float32(h), c, false) // Right
}

func drawDebugText(screen *ebiten.Image, s string, x, y float64) {
	face := fonts.Small.Face()
	debugTextOp.GeoM.Reset()
	debugTextOp.GeoM.Translate(x, y)
	debugTextOp.ColorScale.Reset()
	debugTextOp.ColorScale.ScaleWithColor(cfg.White)
	debugTextOp.LineSpacing = face.Metrics().HAscent + face.Metrics().HDescent + 2
	text.Draw(screen, s, face, debugTextOp)
}
