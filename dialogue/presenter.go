// Package dialogue defines the surface the tour talks to when it needs to
// show text: a prompt strip that is always present and a location panel.
package dialogue

// Prompt is the line shown in the prompt strip. An empty ActionLabel hides
// the action button.
type Prompt struct {
	Text        string
	ActionLabel string
}

// EventKind identifies a user action reported by a presenter.
type EventKind int

const (
	// EventClose is sent when the location panel is dismissed.
	EventClose EventKind = iota
	// EventLearnMore is sent when the prompt's action button is pressed.
	EventLearnMore
)

type Event struct {
	Kind EventKind
}

// Presenter displays dialogue content. Implementations must not block.
type Presenter interface {
	// ShowPrompt replaces the prompt strip text and action button.
	ShowPrompt(p Prompt)
	// ResetPrompt restores the default instruction line and hides the button.
	ResetPrompt()
	// ShowLocation opens the location panel.
	ShowLocation(c LocationContent)
	// LocationOpen reports whether the location panel is showing.
	LocationOpen() bool
	// Events drains the user actions collected since the last call.
	Events() []Event
}

// NopPresenter ignores everything. Used when no dialogue surface exists.
type NopPresenter struct{}

func (NopPresenter) ShowPrompt(Prompt)            {}
func (NopPresenter) ResetPrompt()                 {}
func (NopPresenter) ShowLocation(LocationContent) {}
func (NopPresenter) LocationOpen() bool           { return false }
func (NopPresenter) Events() []Event              { return nil }
