package systems

import (
	"github.com/automoto/durhamtour/components"
	cfg "github.com/automoto/durhamtour/config"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/features/math"
)

// UpdatePlayer integrates held directions into position, clamps to the
// surface and drives the walk cycle and trail.
func UpdatePlayer(ecs *ecs.ECS) {
	scene := GetScene(ecs)
	if !scene.SurfaceSized {
		return
	}
	input := getOrCreateInput(ecs)
	interval := GetSession(ecs).Config.TrailInterval

	components.Player.Each(ecs.World, func(entry *donburi.Entry) {
		player := components.Player.Get(entry)
		trail := components.Trail.Get(entry)
		anim := components.Animation.Get(entry)

		moving := applyMovement(input, player)
		clampToSurface(player, scene.Width, scene.Height)
		player.Moving = moving

		if !moving {
			anim.CurrentAnimation.Hold(cfg.IdleFrame)
			player.MoveTicks = 0
			trail.Clear()
			return
		}

		player.MoveTicks++
		if interval > 0 && player.MoveTicks%interval == 0 {
			trail.Push(player.Position)
		}
		anim.CurrentAnimation.Update()
	})
}

// applyMovement moves by Speed for each held direction. Later directions
// in MovementOrder win the facing; diagonals are not normalised.
func applyMovement(input *components.InputData, player *components.PlayerData) bool {
	moving := false
	for _, action := range cfg.MovementOrder {
		if !GetAction(input, action).Pressed {
			continue
		}
		moving = true
		switch action {
		case cfg.ActionMoveUp:
			player.Position.Y -= player.Speed
			player.Facing = cfg.DirectionUp
		case cfg.ActionMoveDown:
			player.Position.Y += player.Speed
			player.Facing = cfg.DirectionDown
		case cfg.ActionMoveLeft:
			player.Position.X -= player.Speed
			player.Facing = cfg.DirectionLeft
		case cfg.ActionMoveRight:
			player.Position.X += player.Speed
			player.Facing = cfg.DirectionRight
		}
	}
	return moving
}

func clampToSurface(player *components.PlayerData, width, height float64) {
	half := player.Size / 2
	player.Position = math.Vec2{
		X: clamp(player.Position.X, half, width-half),
		Y: clamp(player.Position.Y, half, height-half),
	}
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
