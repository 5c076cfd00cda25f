package animations

import "github.com/automoto/durhamtour/config"

// Animation steps through a frame range on a fixed tick cadence.
type Animation struct {
	First         int
	Last          int
	Step          int // how many indices do we move per frame
	TicksPerFrame int // how many ticks before next frame
	counter       int
	frame         int
}

// Update advances the animation by one tick.
func (a *Animation) Update() {
	a.counter++
	if a.counter < a.TicksPerFrame {
		return
	}
	a.counter = 0
	a.frame += a.Step
	if a.frame > a.Last {
		// loop back to the beginning
		a.frame = a.First
	}
}

func (a *Animation) Frame() int {
	return a.frame
}

// Counter returns the ticks spent on the current frame.
func (a *Animation) Counter() int {
	return a.counter
}

// Hold parks the animation on a frame outside its range (e.g. an idle pose)
// so the next Update that completes a frame wraps back to First.
func (a *Animation) Hold(frame int) {
	a.frame = frame
	a.counter = 0
}

func NewAnimation(first, last, step, ticksPerFrame int) *Animation {
	return &Animation{
		First:         first,
		Last:          last,
		Step:          step,
		TicksPerFrame: ticksPerFrame,
		frame:         first,
	}
}

// FromDef builds an animation from a config definition.
func FromDef(def config.AnimationDef) *Animation {
	return NewAnimation(def.First, def.Last, def.Step, def.TicksPerFrame)
}
