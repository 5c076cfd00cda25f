package systems

import (
	"github.com/automoto/durhamtour/components"
	"github.com/automoto/durhamtour/config"
	"github.com/automoto/durhamtour/dialogue"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// GetSession returns the session singleton. A session without one gets the
// default tuning and a no-op presenter so systems never nil-check.
func GetSession(ecs *ecs.ECS) *components.SessionData {
	entry, ok := components.Session.First(ecs.World)
	if !ok {
		entry = ecs.World.Entry(ecs.World.Create(components.Session))
		components.Session.SetValue(entry, components.SessionData{
			Config: config.DefaultGame(),
		})
	}
	session := components.Session.Get(entry)
	if session.Presenter == nil {
		session.Presenter = dialogue.NopPresenter{}
	}
	return session
}

// GetScene returns the surface singleton, creating one at the configured canvas size.
func GetScene(ecs *ecs.ECS) *components.SceneData {
	entry, ok := components.Scene.First(ecs.World)
	if !ok {
		session := GetSession(ecs)
		entry = ecs.World.Entry(ecs.World.Create(components.Scene))
		components.Scene.SetValue(entry, components.SceneData{
			Width:  float64(session.Config.CanvasWidth),
			Height: float64(session.Config.CanvasHeight),
		})
	}
	return components.Scene.Get(entry)
}

func getOrCreateProximity(ecs *ecs.ECS) *components.ProximityData {
	entry, ok := components.Proximity.First(ecs.World)
	if !ok {
		entry = ecs.World.Entry(ecs.World.Create(components.Proximity))
	}
	return components.Proximity.Get(entry)
}

// GetProximity returns this tick's proximity designations.
func GetProximity(ecs *ecs.ECS) *components.ProximityData {
	return getOrCreateProximity(ecs)
}

func getOrCreateDialogueState(ecs *ecs.ECS) *components.DialogueStateData {
	entry, ok := components.DialogueState.First(ecs.World)
	if !ok {
		entry = ecs.World.Entry(ecs.World.Create(components.DialogueState))
		components.DialogueState.SetValue(entry, components.DialogueStateData{
			Current: dialogue.Prompt{Text: config.Text.DefaultPrompt},
		})
	}
	return components.DialogueState.Get(entry)
}

func sameEntry(a, b *donburi.Entry) bool {
	return a != nil && b != nil && a.Entity() == b.Entity()
}
