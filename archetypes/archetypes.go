package archetypes

import (
	"github.com/automoto/durhamtour/components"
	cfg "github.com/automoto/durhamtour/config"
	"github.com/automoto/durhamtour/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var (
	Session = newArchetype(
		components.Session,
	)
	Scene = newArchetype(
		components.Scene,
	)
	Space = newArchetype(
		components.Space,
	)
	Player = newArchetype(
		tags.Player,
		components.Player,
		components.Trail,
		components.Animation,
	)
	Location = newArchetype(
		tags.Location,
		components.Location,
		components.Object,
	)
	Collectible = newArchetype(
		tags.Collectible,
		components.Collectible,
		components.Animation,
		components.Object,
	)
	Acquisition = newArchetype(
		components.Acquisition,
	)
)

type archetype struct {
	components []donburi.IComponentType
}

func newArchetype(cs ...donburi.IComponentType) *archetype {
	return &archetype{
		components: cs,
	}
}

func (a *archetype) Spawn(ecs *ecs.ECS, cs ...donburi.IComponentType) *donburi.Entry {
	e := ecs.World.Entry(ecs.Create(
		cfg.Default,
		append(a.components, cs...)...,
	))
	return e
}
