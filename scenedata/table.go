package scenedata

import (
	"strings"

	"github.com/automoto/durhamtour/config"
)

// LocationDef is the static description of a point of interest.
type LocationDef struct {
	ID              string
	Name            string
	Image           string
	ImageHover      string
	X, Y            Coord
	PinOffset       *float64
	Dialogue        string
	Description     string
	Address         string
	Characteristics []string
	PreviewText     string
	Link            string
}

// PinOffsetOr returns the location's own pin offset or the fallback.
func (d LocationDef) PinOffsetOr(fallback float64) float64 {
	if d.PinOffset != nil {
		return *d.PinOffset
	}
	return fallback
}

// DialogueLine returns the prompt line for the location.
func (d LocationDef) DialogueLine() string {
	if strings.TrimSpace(d.Dialogue) == "" {
		return config.Text.LocationFallback
	}
	return d.Dialogue
}

// PreviewSource returns the long-form text shown in the location panel.
func (d LocationDef) PreviewSource() string {
	if d.PreviewText != "" {
		return d.PreviewText
	}
	return d.Description
}

// ObjectDef is the static description of a collectible.
type ObjectDef struct {
	ID             string
	Name           string
	Frame1         string
	Frame2         string
	X, Y           Coord
	Dialogue       string
	AcquireMessage string
	ButtonText     string
}

// Button returns the action label for confirm-mode prompts.
func (d ObjectDef) Button() string {
	if d.ButtonText == "" {
		return config.Text.InvestigateButton
	}
	return d.ButtonText
}

// Tuning holds optional overrides for GameConfig read from the scene file.
type Tuning struct {
	PlayerSpeed       *float64
	InteractionRadius *float64
	HoverRadius       *float64
	PinOffset         *float64
	ImageScale        *float64
	ObjectScale       *float64
	ConfirmWithPrompt *bool
}

// Apply returns cfg with every set override applied.
func (t Tuning) Apply(cfg config.GameConfig) config.GameConfig {
	set := func(dst *float64, v *float64) {
		if v != nil {
			*dst = *v
		}
	}
	set(&cfg.PlayerSpeed, t.PlayerSpeed)
	set(&cfg.InteractionRadius, t.InteractionRadius)
	set(&cfg.HoverRadius, t.HoverRadius)
	set(&cfg.PinOffset, t.PinOffset)
	set(&cfg.ImageScale, t.ImageScale)
	set(&cfg.ObjectScale, t.ObjectScale)
	if t.ConfirmWithPrompt != nil {
		cfg.ConfirmWithPrompt = *t.ConfirmWithPrompt
	}
	return cfg
}

// Table is the ordered list of entities in a scene. Order matters: it is the
// proximity iteration order and the seed for per-entity animation phases.
type Table struct {
	Name      string
	Locations []LocationDef
	Objects   []ObjectDef
	Tuning    Tuning
}
