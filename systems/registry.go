package systems

import (
	"log"
	"math"

	"github.com/automoto/durhamtour/components"
	"github.com/automoto/durhamtour/scenedata"
	"github.com/automoto/durhamtour/systems/factory"
	"github.com/automoto/durhamtour/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

const spaceCellSize = 16

// UpdateRegistry sizes the surface once the background settles, then marks
// entities loaded as their images arrive and resolves their positions once.
func UpdateRegistry(ecs *ecs.ECS) {
	session := GetSession(ecs)
	scene := GetScene(ecs)

	if !scene.SurfaceSized {
		if !syncSurface(ecs, session, scene) {
			return
		}
	}

	components.Location.Each(ecs.World, func(entry *donburi.Entry) {
		loc := components.Location.Get(entry)
		if !loc.Loaded && loc.Normal.Ready() && loc.Hover.Ready() {
			w, h := loc.Normal.Size()
			loc.Width = float64(w) * session.Config.ImageScale
			loc.Height = float64(h) * session.Config.ImageScale
			loc.Loaded = true
		}
		if loc.Loaded && loc.Resolved == nil {
			pos := scenedata.ResolvePosition(loc.Def.X, loc.Def.Y, scene.MapWidth, scene.MapHeight, loc.Width, loc.Height)
			loc.Resolved = &pos
			bounds := registerBounds(ecs, entry, pos, loc.Width, loc.Height, tags.ResolvLocation)
			components.Object.SetValue(entry, components.ObjectData{Object: bounds})

			scale := session.Config.ActiveAreaScale
			registerBounds(ecs, entry, scenedata.ResolvedPosition{
				X: pos.X + loc.Width*(1-scale)/2,
				Y: pos.Y + loc.Height*(1-scale)/2,
			}, loc.Width*scale, loc.Height*scale, tags.ResolvActiveArea)
		}
	})

	components.Collectible.Each(ecs.World, func(entry *donburi.Entry) {
		obj := components.Collectible.Get(entry)
		if !obj.Loaded && obj.Frames[0].Ready() && obj.Frames[1].Ready() {
			w, h := obj.Frames[0].Size()
			obj.Width = float64(w) * session.Config.ObjectScale
			obj.Height = float64(h) * session.Config.ObjectScale
			obj.Loaded = true
		}
		if obj.Loaded && obj.Resolved == nil {
			pos := scenedata.ResolvePosition(obj.Def.X, obj.Def.Y, scene.MapWidth, scene.MapHeight, obj.Width, obj.Height)
			obj.Resolved = &pos
			bounds := registerBounds(ecs, entry, pos, obj.Width, obj.Height, tags.ResolvCollectible)
			components.Object.SetValue(entry, components.ObjectData{Object: bounds})
		}
	})
}

// syncSurface redefines the surface from the background image exactly once.
// It reports whether the surface is now sized.
func syncSurface(ecs *ecs.ECS, session *components.SessionData, scene *components.SceneData) bool {
	bg := scene.Background
	switch {
	case bg.Ready():
		w, h := bg.Size()
		scene.MapWidth = math.Round(float64(w) * session.Config.BackgroundScale)
		scene.MapHeight = math.Round(float64(h) * session.Config.BackgroundScale)
	case bg == nil || bg.Failed():
		// Without a background the placeholder grid fills the configured canvas.
		log.Printf("Warning: Background unavailable, using a %dx%d placeholder", session.Config.CanvasWidth, session.Config.CanvasHeight)
		scene.MapWidth = float64(session.Config.CanvasWidth)
		scene.MapHeight = float64(session.Config.CanvasHeight)
	default:
		return false
	}

	scene.Width, scene.Height = scene.MapWidth, scene.MapHeight
	scene.SurfaceSized = true

	if entry, ok := components.Player.First(ecs.World); ok {
		player := components.Player.Get(entry)
		player.Position.X = scene.Width / 2
		player.Position.Y = scene.Height / 2
	}

	factory.CreateSpace(ecs, int(math.Ceil(scene.Width)), int(math.Ceil(scene.Height)), spaceCellSize, spaceCellSize)
	return true
}

func registerBounds(ecs *ecs.ECS, entry *donburi.Entry, pos scenedata.ResolvedPosition, w, h float64, tag string) *resolv.Object {
	obj := resolv.NewObject(pos.X, pos.Y, w, h, tag)
	obj.Data = entry
	if spaceEntry, ok := components.Space.First(ecs.World); ok {
		components.Space.Get(spaceEntry).Add(obj)
	}
	return obj
}
