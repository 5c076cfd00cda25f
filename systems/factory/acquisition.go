package factory

import (
	"github.com/automoto/durhamtour/archetypes"
	"github.com/automoto/durhamtour/components"
	cfg "github.com/automoto/durhamtour/config"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateAcquisition starts the acquisition sequence for target.
func CreateAcquisition(ecs *ecs.ECS, target *donburi.Entry) *donburi.Entry {
	acquisition := archetypes.Acquisition.Spawn(ecs)

	// The float phase moves and fades in linearly over its duration, one unit per tick.
	duration := float32(cfg.Acquisition.FloatTicks)
	components.Acquisition.SetValue(acquisition, components.AcquisitionData{
		Target:     target,
		Step:       components.StepSpin,
		FloatTween: gween.New(0, float32(cfg.Acquisition.FloatDistance), duration, ease.Linear),
		LinesTween: gween.New(0, 1, duration, ease.Linear),
	})
	return acquisition
}
