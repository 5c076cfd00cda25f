package config

// Direction is the facing of the player sprite
type Direction int

const (
	DirectionDown Direction = iota
	DirectionRight
	DirectionUp
	DirectionLeft
)

// SpinOrder is the facing sequence played at the start of an acquisition.
var SpinOrder = [...]Direction{DirectionDown, DirectionRight, DirectionUp, DirectionLeft}

func (d Direction) String() string {
	switch d {
	case DirectionUp:
		return "up"
	case DirectionLeft:
		return "left"
	case DirectionRight:
		return "right"
	default:
		return "down"
	}
}

type AnimationDef struct {
	First         int
	Last          int
	Step          int
	TicksPerFrame int
}

// Frame 1 of the walk sheet is the idle pose; walking loops 2 -> 3 -> 4.
var (
	IdleFrame       = 1
	WalkAnimation   = AnimationDef{First: 2, Last: 4, Step: 1, TicksPerFrame: 8}
	ObjectAnimation = AnimationDef{First: 1, Last: 2, Step: 1, TicksPerFrame: 30}
)
