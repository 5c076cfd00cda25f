package components

import (
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"
)

// TrailData holds the particle trail behind the player, newest first.
type TrailData struct {
	Points []math.Vec2
	Max    int
}

// Push adds a point at the head and drops the oldest beyond Max.
func (t *TrailData) Push(p math.Vec2) {
	t.Points = append(t.Points, math.Vec2{})
	copy(t.Points[1:], t.Points)
	t.Points[0] = p
	if len(t.Points) > t.Max {
		t.Points = t.Points[:t.Max]
	}
}

func (t *TrailData) Clear() {
	t.Points = t.Points[:0]
}

var Trail = donburi.NewComponentType[TrailData]()
