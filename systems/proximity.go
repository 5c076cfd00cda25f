package systems

import (
	"math"

	"github.com/automoto/durhamtour/components"
	cfg "github.com/automoto/durhamtour/config"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateProximity recomputes the nearby object, nearby location and hovered
// location from scratch, then advances hover cross-fades and the pin clock.
func UpdateProximity(ecs *ecs.ECS) {
	session := GetSession(ecs)
	scene := GetScene(ecs)
	prox := getOrCreateProximity(ecs)

	prox.WasNear = prox.Near()
	prox.NearbyObject = nil
	prox.NearbyLocation = nil
	prox.HoveredLocation = nil

	if playerEntry, ok := components.Player.First(ecs.World); ok {
		player := components.Player.Get(playerEntry)
		px, py := player.Position.X, player.Position.Y
		game := session.Config

		// Objects take priority; when one is in range locations are skipped.
		components.Collectible.Each(ecs.World, func(entry *donburi.Entry) {
			obj := components.Collectible.Get(entry)
			if !obj.Available() {
				return
			}
			cx, cy := obj.Center()
			if distance(px, py, cx, cy) < game.InteractionRadius {
				prox.NearbyObject = entry
			}
		})

		if prox.NearbyObject == nil {
			components.Location.Each(ecs.World, func(entry *donburi.Entry) {
				loc := components.Location.Get(entry)
				if !loc.Interactive() {
					return
				}
				cx, cy := loc.ActiveCenter(game.ActiveAreaScale)
				d := distance(px, py, cx, cy)
				if d < game.InteractionRadius {
					prox.NearbyLocation = entry
				}
				if d < game.HoverRadius {
					prox.HoveredLocation = entry
				}
			})
		}
	}

	step := session.Config.HoverStep
	components.Location.Each(ecs.World, func(entry *donburi.Entry) {
		loc := components.Location.Get(entry)
		if sameEntry(entry, prox.HoveredLocation) {
			loc.HoverTransition = math.Min(1, loc.HoverTransition+step)
		} else {
			loc.HoverTransition = math.Max(0, loc.HoverTransition-step)
		}
	})

	scene.PinClock += cfg.Pin.ClockStep

	if prox.WasNear && !prox.Near() && !AcquisitionActive(ecs) {
		resetPrompt(ecs)
	}
}

func distance(x1, y1, x2, y2 float64) float64 {
	return math.Hypot(x2-x1, y2-y1)
}
