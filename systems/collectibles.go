package systems

import (
	"github.com/automoto/durhamtour/components"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateCollectibles toggles the idle frame of every object still on the map.
func UpdateCollectibles(ecs *ecs.ECS) {
	components.Collectible.Each(ecs.World, func(entry *donburi.Entry) {
		if !components.Collectible.Get(entry).Available() {
			return
		}
		if anim := components.Animation.Get(entry); anim.CurrentAnimation != nil {
			anim.CurrentAnimation.Update()
		}
	})
}
