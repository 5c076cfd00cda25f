package systems

import (
	"github.com/automoto/durhamtour/components"
	cfg "github.com/automoto/durhamtour/config"
	"github.com/automoto/durhamtour/dialogue"
	"github.com/automoto/durhamtour/systems/factory"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateInteraction routes interact presses and presenter events to object
// collection or the location panel. Nothing is routed during an acquisition;
// the hold skip is handled by UpdateAcquisition.
func UpdateInteraction(ecs *ecs.ECS) {
	session := GetSession(ecs)
	state := getOrCreateDialogueState(ecs)
	acquiring := AcquisitionActive(ecs)

	closed := false
	for _, ev := range session.Presenter.Events() {
		if acquiring {
			continue
		}
		switch ev.Kind {
		case dialogue.EventClose:
			closed = true
			resetPrompt(ecs)
		case dialogue.EventLearnMore:
			runPending(ecs, state)
		}
	}
	if acquiring {
		return
	}

	// A tap on the open panel, or the tap that just closed it, belongs to
	// the panel, not the map.
	input := getOrCreateInput(ecs)
	if !interactPressed(input, !closed && !session.Presenter.LocationOpen()) {
		return
	}

	// A visible action button is pressed by the interact key.
	if state.Pending != components.PendingNone {
		input.Consumed = true
		runPending(ecs, state)
		return
	}

	prox := getOrCreateProximity(ecs)
	confirm := session.Config.ConfirmWithPrompt
	switch {
	case prox.NearbyObject != nil && !components.Collectible.Get(prox.NearbyObject).Collected:
		input.Consumed = true
		obj := components.Collectible.Get(prox.NearbyObject)
		if confirm {
			showPrompt(ecs, dialogue.Prompt{Text: obj.Def.Dialogue, ActionLabel: obj.Def.Button()})
			state.Pending = components.PendingCollect
			state.Target = prox.NearbyObject
			return
		}
		collect(ecs, prox.NearbyObject)

	case prox.NearbyLocation != nil:
		input.Consumed = true
		loc := components.Location.Get(prox.NearbyLocation)
		if confirm {
			showPrompt(ecs, dialogue.Prompt{Text: loc.Def.DialogueLine(), ActionLabel: cfg.Text.InvestigateButton})
			state.Pending = components.PendingInvestigate
			state.Target = prox.NearbyLocation
			return
		}
		investigate(ecs, prox.NearbyLocation)
	}
}

func runPending(ecs *ecs.ECS, state *components.DialogueStateData) {
	target := state.Target
	pending := state.Pending
	state.Pending = components.PendingNone
	state.Target = nil
	if target == nil || !target.Valid() {
		return
	}

	switch pending {
	case components.PendingCollect:
		if !components.Collectible.Get(target).Collected {
			collect(ecs, target)
		}
	case components.PendingInvestigate:
		GetSession(ecs).Presenter.ShowLocation(dialogue.ContentFor(components.Location.Get(target).Def))
	}
}

// collect marks the object collected and starts its acquisition sequence.
func collect(ecs *ecs.ECS, entry *donburi.Entry) {
	obj := components.Collectible.Get(entry)
	obj.Collected = true

	if entry.HasComponent(components.Object) {
		if bounds := components.Object.Get(entry).Object; bounds != nil {
			if spaceEntry, ok := components.Space.First(ecs.World); ok {
				components.Space.Get(spaceEntry).Remove(bounds)
			}
		}
	}

	showPrompt(ecs, dialogue.Prompt{Text: obj.Def.Dialogue})
	factory.CreateAcquisition(ecs, entry)
}

func investigate(ecs *ecs.ECS, entry *donburi.Entry) {
	loc := components.Location.Get(entry)
	showPrompt(ecs, dialogue.Prompt{Text: loc.Def.DialogueLine()})
	GetSession(ecs).Presenter.ShowLocation(dialogue.ContentFor(loc.Def))
}

func showPrompt(ecs *ecs.ECS, p dialogue.Prompt) {
	state := getOrCreateDialogueState(ecs)
	state.Current = p
	state.Pending = components.PendingNone
	state.Target = nil
	GetSession(ecs).Presenter.ShowPrompt(p)
}

// resetPrompt restores the default instruction line and drops any pending action.
func resetPrompt(ecs *ecs.ECS) {
	state := getOrCreateDialogueState(ecs)
	state.Current = dialogue.Prompt{Text: cfg.Text.DefaultPrompt}
	state.Pending = components.PendingNone
	state.Target = nil
	GetSession(ecs).Presenter.ResetPrompt()
}

// CurrentPrompt returns the prompt the strip is showing.
func CurrentPrompt(ecs *ecs.ECS) dialogue.Prompt {
	return getOrCreateDialogueState(ecs).Current
}
