package factory

import (
	"github.com/automoto/durhamtour/archetypes"
	"github.com/automoto/durhamtour/components"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateSession stores the session collaborators in the world.
func CreateSession(ecs *ecs.ECS, session components.SessionData) *donburi.Entry {
	entry := archetypes.Session.Spawn(ecs)
	components.Session.SetValue(entry, session)
	return entry
}

// CreateScene creates the surface singleton sized to the configured canvas.
func CreateScene(ecs *ecs.ECS, session *components.SessionData) *donburi.Entry {
	entry := archetypes.Scene.Spawn(ecs)
	scene := components.SceneData{
		Width:  float64(session.Config.CanvasWidth),
		Height: float64(session.Config.CanvasHeight),
	}
	if session.Library != nil {
		scene.Background = session.Library.Background
	}
	components.Scene.SetValue(entry, scene)
	return entry
}
