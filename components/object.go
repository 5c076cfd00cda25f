package components

import (
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

// ObjectData is the resolved bounding box of an entity in the scene space.
type ObjectData struct {
	*resolv.Object
}

var Object = donburi.NewComponentType[ObjectData]()

// Space is the scene's resolv space, created once the background size is known.
var Space = donburi.NewComponentType[resolv.Space]()
