package components

import (
	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
)

// AcquisitionStep is a phase of the item acquisition sequence.
type AcquisitionStep int

const (
	StepSpin AcquisitionStep = iota
	StepPose
	StepFloat
	StepHold
	StepDone
)

func (s AcquisitionStep) String() string {
	switch s {
	case StepSpin:
		return "spin"
	case StepPose:
		return "pose"
	case StepFloat:
		return "float"
	case StepHold:
		return "hold"
	default:
		return "done"
	}
}

// AcquisitionData lives on its own entity for the duration of one acquisition.
type AcquisitionData struct {
	Target        *donburi.Entry
	Step          AcquisitionStep
	Counter       int // Ticks spent in the current step
	SpinDirection int // Index into config.SpinOrder
	FloatY        float64
	LinesOpacity  float64

	FloatTween *gween.Tween
	LinesTween *gween.Tween

	// Ticks since the trigger, for diagnostics.
	Elapsed int
}

var Acquisition = donburi.NewComponentType[AcquisitionData]()
