package factory

import (
	"github.com/automoto/durhamtour/archetypes"
	"github.com/automoto/durhamtour/assets"
	"github.com/automoto/durhamtour/components"
	"github.com/automoto/durhamtour/scenedata"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateLocation spawns a location record and starts loading its images.
// Position and size stay unknown until the registry resolves them.
func CreateLocation(ecs *ecs.ECS, provider *assets.Provider, def scenedata.LocationDef, seed int) *donburi.Entry {
	return CreateLocationWithImages(ecs, def, seed, provider.Load(def.Image), provider.Load(def.ImageHover))
}

// CreateLocationWithImages spawns a location with already-created handles.
func CreateLocationWithImages(ecs *ecs.ECS, def scenedata.LocationDef, seed int, normal, hover *assets.Handle) *donburi.Entry {
	location := archetypes.Location.Spawn(ecs)
	components.Location.SetValue(location, components.LocationData{
		Def:    def,
		Seed:   seed,
		Normal: normal,
		Hover:  hover,
	})
	return location
}
