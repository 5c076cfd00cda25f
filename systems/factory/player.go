package factory

import (
	"github.com/automoto/durhamtour/archetypes"
	"github.com/automoto/durhamtour/assets/animations"
	"github.com/automoto/durhamtour/components"
	cfg "github.com/automoto/durhamtour/config"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/features/math"
)

// CreatePlayer spawns the player centred at (x, y), facing down and idle.
func CreatePlayer(ecs *ecs.ECS, game cfg.GameConfig, x, y float64) *donburi.Entry {
	player := archetypes.Player.Spawn(ecs)

	components.Player.SetValue(player, components.PlayerData{
		Position: math.Vec2{X: x, Y: y},
		Size:     game.PlayerSize,
		Speed:    game.PlayerSpeed,
		Facing:   cfg.DirectionDown,
	})
	components.Trail.SetValue(player, components.TrailData{
		Max: game.TrailLength,
	})

	walk := animations.FromDef(cfg.WalkAnimation)
	walk.Hold(cfg.IdleFrame)
	animData := components.AnimationData{CurrentAnimation: walk}
	if session, ok := components.Session.First(ecs.World); ok {
		if lib := components.Session.Get(session).Library; lib != nil {
			animData.Sheets = lib.Walk
		}
	}
	components.Animation.SetValue(player, animData)

	return player
}
