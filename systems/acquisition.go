package systems

import (
	"github.com/automoto/durhamtour/components"
	cfg "github.com/automoto/durhamtour/config"
	"github.com/automoto/durhamtour/dialogue"
	"github.com/yohamta/donburi/ecs"
)

// AcquisitionActive reports whether an acquisition sequence is running.
func AcquisitionActive(ecs *ecs.ECS) bool {
	_, ok := components.Acquisition.First(ecs.World)
	return ok
}

// GetAcquisition returns the running acquisition, or nil.
func GetAcquisition(ecs *ecs.ECS) *components.AcquisitionData {
	entry, ok := components.Acquisition.First(ecs.World)
	if !ok {
		return nil
	}
	return components.Acquisition.Get(entry)
}

// UpdateAcquisition advances the acquisition sequence by one tick:
// spin through the four facings, hold the acquire pose, float the item
// above the player, then wait for a skip press or the hold timeout.
func UpdateAcquisition(ecs *ecs.ECS) {
	entry, ok := components.Acquisition.First(ecs.World)
	if !ok {
		return
	}
	acq := components.Acquisition.Get(entry)
	acq.Elapsed++

	switch acq.Step {
	case components.StepSpin:
		acq.Counter++
		if acq.Counter >= cfg.Acquisition.SpinTicksPerDirection {
			acq.Counter = 0
			acq.SpinDirection++
			if acq.SpinDirection >= cfg.Acquisition.SpinDirections {
				acq.Step = components.StepPose
				acq.SpinDirection = 0
			}
		}
		if playerEntry, ok := components.Player.First(ecs.World); ok {
			components.Player.Get(playerEntry).Facing = cfg.SpinOrder[acq.SpinDirection%len(cfg.SpinOrder)]
		}

	case components.StepPose:
		acq.Counter++
		if acq.Counter >= cfg.Acquisition.PoseTicks {
			acq.Counter = 0
			acq.Step = components.StepFloat
			msg := ""
			if acq.Target != nil && acq.Target.Valid() {
				msg = components.Collectible.Get(acq.Target).Def.AcquireMessage
			}
			// The action button hides for the rest of the sequence.
			showPrompt(ecs, dialogue.Prompt{Text: msg})
		}

	case components.StepFloat:
		acq.Counter++
		y, _ := acq.FloatTween.Update(1)
		opacity, _ := acq.LinesTween.Update(1)
		acq.FloatY = float64(y)
		acq.LinesOpacity = float64(opacity)
		if acq.Counter >= cfg.Acquisition.FloatTicks {
			acq.Counter = 0
			acq.Step = components.StepHold
		}

	case components.StepHold:
		acq.Counter++
		input := getOrCreateInput(ecs)
		if interactPressed(input, true) {
			input.Consumed = true
			acq.Step = components.StepDone
		} else if acq.Counter >= cfg.Acquisition.HoldTicks {
			acq.Step = components.StepDone
		}
	}

	if acq.Step == components.StepDone {
		ecs.World.Remove(entry.Entity())
		resetPrompt(ecs)
	}
}
