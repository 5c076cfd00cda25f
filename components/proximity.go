package components

import "github.com/yohamta/donburi"

// ProximityData is a singleton recomputed every tick.
type ProximityData struct {
	NearbyObject    *donburi.Entry
	NearbyLocation  *donburi.Entry
	HoveredLocation *donburi.Entry

	// Whether anything was nearby on the previous tick.
	WasNear bool
}

// Near reports whether an object or a location is in interaction range.
func (p *ProximityData) Near() bool {
	return p.NearbyObject != nil || p.NearbyLocation != nil
}

var Proximity = donburi.NewComponentType[ProximityData]()
