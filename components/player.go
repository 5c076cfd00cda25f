package components

import (
	"github.com/automoto/durhamtour/config"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"
)

type PlayerData struct {
	Position  math.Vec2 // Centre, map space
	Size      float64
	Speed     float64
	Facing    config.Direction
	Moving    bool
	MoveTicks int // Ticks spent moving since the last stop
}

var Player = donburi.NewComponentType[PlayerData]()
