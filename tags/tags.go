package tags

import "github.com/yohamta/donburi"

var (
	Player      = donburi.NewTag().SetName("Player")
	Location    = donburi.NewTag().SetName("Location")
	Collectible = donburi.NewTag().SetName("Collectible")
)

// Resolv tags for entity bounds in the scene space
const (
	ResolvLocation    = "location"
	ResolvCollectible = "collectible"
	ResolvActiveArea  = "active"
)
