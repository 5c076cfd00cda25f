package systems

import (
	"testing"

	"github.com/automoto/durhamtour/components"
	cfg "github.com/automoto/durhamtour/config"
	"github.com/automoto/durhamtour/dialogue"
	"github.com/automoto/durhamtour/scenedata"
)

func TestInteractOpensLocationPanel(t *testing.T) {
	tr := newTour(t, testConfig())
	tr.location("hayti", scenedata.Pct(50), scenedata.Pct(50))
	tr.tick()
	tr.tick(cfg.ActionInteract)

	if len(tr.rec.Locations) != 1 {
		t.Fatalf("location panels = %d, want 1", len(tr.rec.Locations))
	}
	got := tr.rec.Locations[0]
	if got.Title != "Location hayti" {
		t.Errorf("title = %q, want %q", got.Title, "Location hayti")
	}
	if got.Link != "https://example.org/hayti" {
		t.Errorf("link = %q", got.Link)
	}
	if got.Preview.Text() != "About hayti" {
		t.Errorf("preview = %q, want the description", got.Preview.Text())
	}
	if p, _ := tr.rec.LastPrompt(); p.Text != cfg.Text.LocationFallback {
		t.Errorf("prompt = %q, want the fallback line", p.Text)
	}
}

func TestInteractAwayFromEverythingDoesNothing(t *testing.T) {
	tr := newTour(t, testConfig())
	tr.location("hayti", scenedata.Pct(10), scenedata.Pct(10))
	tr.tick()
	tr.tick(cfg.ActionInteract)

	if len(tr.rec.Locations) != 0 || len(tr.rec.Prompts) != 0 {
		t.Errorf("press far away produced %d panels and %d prompts", len(tr.rec.Locations), len(tr.rec.Prompts))
	}
}

func TestHeldInteractFiresOnce(t *testing.T) {
	tr := newTour(t, testConfig())
	tr.location("hayti", scenedata.Pct(50), scenedata.Pct(50))
	tr.tick()
	tr.ticks(10, cfg.ActionInteract)

	if len(tr.rec.Locations) != 1 {
		t.Errorf("holding interact opened %d panels, want 1", len(tr.rec.Locations))
	}
}

func TestTapInteractsUnlessPanelIsOpen(t *testing.T) {
	tr := newTour(t, testConfig())
	tr.location("hayti", scenedata.Pct(50), scenedata.Pct(50))
	tr.tick()
	tr.tap()
	if len(tr.rec.Locations) != 1 {
		t.Fatalf("tap opened %d panels, want 1", len(tr.rec.Locations))
	}

	tr.tap()
	if len(tr.rec.Locations) != 1 {
		t.Errorf("tap on the open panel reopened it: %d panels", len(tr.rec.Locations))
	}

	tr.rec.Push(dialogue.EventClose)
	tr.tick()
	tr.tap()
	if len(tr.rec.Locations) != 2 {
		t.Errorf("tap after closing = %d panels, want 2", len(tr.rec.Locations))
	}
}

func TestTapThatClosesPanelDoesNotReopenIt(t *testing.T) {
	tr := newTour(t, testConfig())
	tr.location("hayti", scenedata.Pct(50), scenedata.Pct(50))
	tr.tick()
	tr.tick(cfg.ActionInteract)
	if len(tr.rec.Locations) != 1 {
		t.Fatalf("location panels = %d, want 1", len(tr.rec.Locations))
	}

	// An outside tap closes the panel and reaches the map in the same tick.
	tr.rec.Push(dialogue.EventClose)
	tr.tap()

	if len(tr.rec.Locations) != 1 {
		t.Errorf("closing tap reopened the panel: %d panels, want 1", len(tr.rec.Locations))
	}
	if tr.rec.Open {
		t.Error("panel open after the closing tap")
	}
	if got := CurrentPrompt(tr.ecs).Text; got != cfg.Text.DefaultPrompt {
		t.Errorf("prompt = %q, want the default", got)
	}

	// The next tap is a map interaction again.
	tr.tap()
	if len(tr.rec.Locations) != 2 {
		t.Errorf("tap after the panel closed = %d panels, want 2", len(tr.rec.Locations))
	}
}

func TestCloseEventResetsPrompt(t *testing.T) {
	tr := newTour(t, testConfig())
	tr.location("hayti", scenedata.Pct(50), scenedata.Pct(50))
	tr.tick()
	tr.tick(cfg.ActionInteract)

	tr.rec.Push(dialogue.EventClose)
	tr.tick()
	if tr.rec.Resets != 1 {
		t.Errorf("resets = %d, want 1", tr.rec.Resets)
	}
	if got := CurrentPrompt(tr.ecs).Text; got != cfg.Text.DefaultPrompt {
		t.Errorf("prompt = %q, want the default", got)
	}
}

func TestConfirmModeObject(t *testing.T) {
	game := testConfig()
	game.ConfirmWithPrompt = true
	tr := newTour(t, game)
	entry := tr.object("pride-button", scenedata.Pct(50), scenedata.Pct(50))
	tr.tick()

	tr.tick(cfg.ActionInteract)
	obj := collectibleData(entry)
	if obj.Collected || AcquisitionActive(tr.ecs) {
		t.Fatal("first press collected in confirm mode")
	}
	p, _ := tr.rec.LastPrompt()
	if p.Text != obj.Def.Dialogue || p.ActionLabel != "Pick it up" {
		t.Errorf("prompt = %+v, want the dialogue with the object's button", p)
	}

	tr.tick()
	tr.tick(cfg.ActionInteract)
	if !obj.Collected || !AcquisitionActive(tr.ecs) {
		t.Error("second press did not collect")
	}
}

func TestConfirmModeActionButton(t *testing.T) {
	game := testConfig()
	game.ConfirmWithPrompt = true
	tr := newTour(t, game)
	tr.location("hayti", scenedata.Pct(50), scenedata.Pct(50))
	tr.tick()

	tr.tick(cfg.ActionInteract)
	if len(tr.rec.Locations) != 0 {
		t.Fatal("first press opened the panel in confirm mode")
	}
	if p, _ := tr.rec.LastPrompt(); p.ActionLabel != cfg.Text.InvestigateButton {
		t.Errorf("action label = %q, want %q", p.ActionLabel, cfg.Text.InvestigateButton)
	}
	if state := getOrCreateDialogueState(tr.ecs); state.Pending != components.PendingInvestigate {
		t.Errorf("pending = %v, want investigate", state.Pending)
	}

	tr.rec.Push(dialogue.EventLearnMore)
	tr.tick()
	if len(tr.rec.Locations) != 1 {
		t.Errorf("action button opened %d panels, want 1", len(tr.rec.Locations))
	}
	if state := getOrCreateDialogueState(tr.ecs); state.Pending != components.PendingNone {
		t.Errorf("pending after running = %v, want none", state.Pending)
	}
}

func TestConfirmPendingDroppedWhenLeaving(t *testing.T) {
	game := testConfig()
	game.ConfirmWithPrompt = true
	tr := newTour(t, game)
	entry := tr.object("pride-button", scenedata.Pct(50), scenedata.Pct(50))
	tr.tick()
	tr.tick(cfg.ActionInteract)

	tr.moveTo(100, 100)
	tr.tick()
	tr.tick(cfg.ActionInteract)
	if collectibleData(entry).Collected {
		t.Error("pending collect ran after walking away")
	}
}
