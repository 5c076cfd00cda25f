package factory

import (
	"github.com/automoto/durhamtour/archetypes"
	"github.com/automoto/durhamtour/assets"
	"github.com/automoto/durhamtour/assets/animations"
	"github.com/automoto/durhamtour/components"
	cfg "github.com/automoto/durhamtour/config"
	"github.com/automoto/durhamtour/scenedata"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateCollectible spawns an object record and starts loading both idle frames.
func CreateCollectible(ecs *ecs.ECS, provider *assets.Provider, def scenedata.ObjectDef, seed int) *donburi.Entry {
	return CreateCollectibleWithImages(ecs, def, seed, provider.Load(def.Frame1), provider.Load(def.Frame2))
}

// CreateCollectibleWithImages spawns an object with already-created handles.
func CreateCollectibleWithImages(ecs *ecs.ECS, def scenedata.ObjectDef, seed int, frame1, frame2 *assets.Handle) *donburi.Entry {
	collectible := archetypes.Collectible.Spawn(ecs)
	components.Collectible.SetValue(collectible, components.CollectibleData{
		Def:    def,
		Seed:   seed,
		Frames: [2]*assets.Handle{frame1, frame2},
	})

	// Frame numbers are 1-based to match the image keys.
	components.Animation.SetValue(collectible, components.AnimationData{
		CurrentAnimation: animations.FromDef(cfg.ObjectAnimation),
		Sheets: map[cfg.Direction][]*assets.Handle{
			cfg.DirectionDown: {nil, frame1, frame2},
		},
	})
	return collectible
}
