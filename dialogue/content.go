package dialogue

import (
	"strings"

	"github.com/automoto/durhamtour/config"
	"github.com/automoto/durhamtour/scenedata"
)

// LocationContent is everything the location panel shows.
type LocationContent struct {
	ID              string
	Title           string
	Image           string
	Address         string
	Characteristics []string
	Preview         Preview
	Link            string
}

// ContentFor builds panel content from a location definition.
func ContentFor(def scenedata.LocationDef) LocationContent {
	return LocationContent{
		ID:              def.ID,
		Title:           def.Name,
		Image:           def.ImageHover,
		Address:         def.Address,
		Characteristics: def.Characteristics,
		Preview:         NewPreview(def.PreviewSource(), config.Text.PreviewWords),
		Link:            def.Link,
	}
}

// Preview is long-form text that collapses to its first words.
type Preview struct {
	full     string
	short    string
	long     bool
	Expanded bool
}

// NewPreview splits text on whitespace; more than limit words makes it collapsible.
func NewPreview(text string, limit int) Preview {
	p := Preview{full: text}
	words := strings.Fields(text)
	if limit > 0 && len(words) > limit {
		p.long = true
		p.short = strings.Join(words[:limit], " ")
	}
	return p
}

// Collapsible reports whether the text exceeds the word limit.
func (p Preview) Collapsible() bool {
	return p.long
}

// Text returns the text to display in the current state.
func (p Preview) Text() string {
	switch {
	case !p.long:
		return p.full
	case p.Expanded:
		return p.full + " "
	default:
		return p.short + "... "
	}
}

// Toggle flips between collapsed and expanded. No-op for short text.
func (p *Preview) Toggle() {
	if p.long {
		p.Expanded = !p.Expanded
	}
}

// ToggleLabel returns "See more"/"See less", or "" for short text.
func (p Preview) ToggleLabel() string {
	switch {
	case !p.long:
		return ""
	case p.Expanded:
		return config.Text.SeeLess
	default:
		return config.Text.SeeMore
	}
}
