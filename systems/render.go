package systems

import (
	"math"
	"sort"

	"github.com/automoto/durhamtour/assets"
	"github.com/automoto/durhamtour/components"
	cfg "github.com/automoto/durhamtour/config"
	"github.com/automoto/durhamtour/graphics"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var (
	screenCanvas = &graphics.EbitenCanvas{}
)

func canvasFor(screen *ebiten.Image) graphics.Canvas {
	screenCanvas.Screen = screen
	return screenCanvas
}

// DrawBackground renders the map image, or a placeholder grid while it is unavailable.
func DrawBackground(ecs *ecs.ECS, screen *ebiten.Image) {
	drawBackground(ecs, canvasFor(screen))
}

func drawBackground(ecs *ecs.ECS, c graphics.Canvas) {
	scene := GetScene(ecs)
	if scene.Background.Ready() && scene.SurfaceSized {
		c.DrawImage(scene.Background, 0, 0, scene.MapWidth, scene.MapHeight, 1)
		return
	}

	w, h := c.Size()
	c.FillRect(0, 0, w, h, cfg.Background.Fill)
	grid := cfg.Background.GridSize
	for x := 0.0; x < w; x += grid {
		c.StrokeLine(x, 0, x, h, 1, cfg.Background.Grid)
	}
	for y := 0.0; y < h; y += grid {
		c.StrokeLine(0, y, w, y, 1, cfg.Background.Grid)
	}
}

// DrawLocations renders every loaded location back to front with its pin.
func DrawLocations(ecs *ecs.ECS, screen *ebiten.Image) {
	drawLocations(ecs, canvasFor(screen))
}

func drawLocations(ecs *ecs.ECS, c graphics.Canvas) {
	session := GetSession(ecs)
	scene := GetScene(ecs)

	var pins []*assets.Handle
	if session.Library != nil && session.Library.PinsReady() {
		pins = session.Library.Pins
	}

	for _, loc := range SortedLocations(ecs, session.Config.TopmostLocation) {
		drawLocation(c, loc, session.Config, pins, scene.PinClock)
	}
}

// SortedLocations returns interactive locations ordered by resolved y, with
// the topmost location always last.
func SortedLocations(ecs *ecs.ECS, topmost string) []*components.LocationData {
	var locs []*components.LocationData
	components.Location.Each(ecs.World, func(entry *donburi.Entry) {
		if loc := components.Location.Get(entry); loc.Interactive() {
			locs = append(locs, loc)
		}
	})
	sort.SliceStable(locs, func(i, j int) bool {
		a, b := locs[i], locs[j]
		if (a.Def.ID == topmost) != (b.Def.ID == topmost) {
			return b.Def.ID == topmost
		}
		return a.Resolved.Y < b.Resolved.Y
	})
	return locs
}

func drawLocation(c graphics.Canvas, loc *components.LocationData, game cfg.GameConfig, pins []*assets.Handle, clock float64) {
	t := loc.HoverTransition
	scale := 1 + t*0.05
	w, h := loc.Width*scale, loc.Height*scale
	x := loc.Resolved.X - (w-loc.Width)/2
	y := loc.Resolved.Y - (h-loc.Height)/2

	c.DrawImage(loc.Normal, x, y, w, h, 1-t)
	c.DrawImage(loc.Hover, x, y, w, h, t)

	if len(pins) == 0 {
		return
	}
	phase := cfg.PinPhase(loc.Seed)
	pin := pins[PinVariant(clock, phase, len(pins))]
	pw, ph := pin.Size()
	pinW, pinH := float64(pw)*game.PinScale, float64(ph)*game.PinScale

	pinX := loc.Resolved.X + loc.Width/2
	pinY := loc.Resolved.Y + loc.Def.PinOffsetOr(game.PinOffset) + PinBounce(clock, phase)
	c.DrawImage(pin, pinX-pinW/2, pinY-pinH, pinW, pinH, 1)
}

// PinBounce returns the vertical pin offset for a clock value and phase.
func PinBounce(clock, phase float64) float64 {
	return math.Sin(clock+phase) * cfg.Pin.BounceHeight
}

// PinVariant returns which of n pin images to show. Each phase cycles at its
// own speed so neighbouring pins change image at different times.
func PinVariant(clock, phase float64, n int) int {
	if n <= 0 {
		return 0
	}
	_, frac := math.Modf(phase)
	speed := cfg.Pin.VariantSpeed + frac*cfg.Pin.VariantSpread
	v := int(math.Floor((clock*speed+phase*10)/2)) % n
	if v < 0 {
		v += n
	}
	return v
}

// DrawCollectibles renders objects still waiting on the map.
func DrawCollectibles(ecs *ecs.ECS, screen *ebiten.Image) {
	drawCollectibles(ecs, canvasFor(screen))
}

func drawCollectibles(ecs *ecs.ECS, c graphics.Canvas) {
	scene := GetScene(ecs)
	prox := getOrCreateProximity(ecs)

	components.Collectible.Each(ecs.World, func(entry *donburi.Entry) {
		obj := components.Collectible.Get(entry)
		if !obj.Available() {
			return
		}
		img := components.Animation.Get(entry).FrameImage(cfg.DirectionDown)
		if img == nil {
			return
		}

		offset, scale := 0.0, 1.0
		if sameEntry(entry, prox.NearbyObject) {
			wave := math.Sin(scene.PinClock * cfg.Collectible.ClockFactor)
			offset = wave * cfg.Collectible.BobHeight
			scale = 1 + wave*cfg.Collectible.PulseScale
		}
		w, h := obj.Width*scale, obj.Height*scale
		x := obj.Resolved.X - (w-obj.Width)/2
		y := obj.Resolved.Y - (h-obj.Height)/2 + offset
		c.DrawImage(img, x, y, w, h, 1)
	})
}

// DrawTrail renders the particle trail behind the player.
func DrawTrail(ecs *ecs.ECS, screen *ebiten.Image) {
	drawTrail(ecs, canvasFor(screen))
}

func drawTrail(ecs *ecs.ECS, c graphics.Canvas) {
	entry, ok := components.Player.First(ecs.World)
	if !ok {
		return
	}
	points := components.Trail.Get(entry).Points
	n := float64(len(points))
	palette := cfg.Trail.Palette

	// Oldest first, so the newest particle ends up on top.
	for i := len(points) - 1; i >= 0; i-- {
		fade := 1 - float64(i)/n
		clr := graphics.WithAlpha(palette[i%len(palette)], fade*cfg.Trail.MaxAlpha)
		c.FillCircle(points[i].X, points[i].Y, cfg.Trail.MaxRadius*fade, clr)
	}
}

// DrawPlayer renders the player sprite and, during an acquisition, the pose
// or the floating item overlay.
func DrawPlayer(ecs *ecs.ECS, screen *ebiten.Image) {
	drawPlayer(ecs, canvasFor(screen))
}

func drawPlayer(ecs *ecs.ECS, c graphics.Canvas) {
	entry, ok := components.Player.First(ecs.World)
	if !ok {
		return
	}
	player := components.Player.Get(entry)
	session := GetSession(ecs)
	lib := session.Library

	half := player.Size / 2
	x, y := player.Position.X-half, player.Position.Y-half

	if lib == nil || !lib.SpritesReady() {
		c.FillRect(x, y, player.Size, player.Size, cfg.PlayerPink)
		return
	}

	acq := GetAcquisition(ecs)
	if acq != nil && acq.Step == components.StepPose {
		c.DrawImage(lib.Acquire, x, y, player.Size, player.Size, 1)
		return
	}

	anim := components.Animation.Get(entry)
	c.DrawImage(anim.FrameImage(player.Facing), x, y, player.Size, player.Size, 1)

	if acq != nil && acq.Step >= components.StepFloat {
		drawFloatingItem(c, player, acq, GetScene(ecs).PinClock)
	}
}

func drawFloatingItem(c graphics.Canvas, player *components.PlayerData, acq *components.AcquisitionData, clock float64) {
	if acq.LinesOpacity > 0 {
		cx := player.Position.X
		cy := player.Position.Y - acq.FloatY - 20
		length := cfg.Acquisition.LineBaseLength + math.Sin(clock)*cfg.Acquisition.LinePulse
		clr := graphics.WithAlpha(cfg.Gold, acq.LinesOpacity)
		for i := 0; i < cfg.Acquisition.LineCount; i++ {
			angle := float64(i) / float64(cfg.Acquisition.LineCount) * 2 * math.Pi
			c.StrokeLine(cx, cy, cx+math.Cos(angle)*length, cy+math.Sin(angle)*length, cfg.Acquisition.LineWidth, clr)
		}
	}

	if acq.Target == nil || !acq.Target.Valid() {
		return
	}
	obj := components.Collectible.Get(acq.Target)
	c.DrawImage(obj.Frames[0],
		player.Position.X-obj.Width/2,
		player.Position.Y-acq.FloatY-obj.Height-10,
		obj.Width, obj.Height, 1)
}
