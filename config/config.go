package config

import (
	"image/color"
	"math"
)

// GameConfig contains the tuning constants for a tour session.
// It is handed to the session by value and never mutated afterwards.
type GameConfig struct {
	// Surface
	CanvasWidth     int
	CanvasHeight    int
	BackgroundScale float64 // Surface size relative to the background image

	// Player
	PlayerSpeed float64 // Pixels per tick
	PlayerSize  float64

	// Proximity
	InteractionRadius float64
	HoverRadius       float64
	ActiveAreaScale   float64 // Inner part of a location's bounds used for distance checks
	HoverStep         float64 // Hover cross-fade change per tick

	// Imagery
	PinOffset   float64 // Default vertical pin offset below a location's top edge
	ImageScale  float64 // Location images
	ObjectScale float64 // Collectible images
	PinScale    float64
	BustWidth   float64

	// Trail
	TrailLength   int
	TrailInterval int // Ticks between trail points

	// Interaction
	ConfirmWithPrompt bool   // Require a second press (or the action button) before acting
	TopmostLocation   string // Location ID always drawn above the others
}

// AcquisitionConfig contains the timings of the item acquisition sequence (in ticks)
type AcquisitionConfig struct {
	SpinTicksPerDirection int
	SpinDirections        int
	PoseTicks             int
	FloatTicks            int
	HoldTicks             int
	FloatDistance         float64
	LineCount             int
	LineBaseLength        float64
	LinePulse             float64
	LineWidth             float32
}

// PinConfig contains the pin marker animation constants
type PinConfig struct {
	ClockStep     float64 // Added to the shared clock each tick
	BounceHeight  float64
	Variants      int
	VariantSpeed  float64
	VariantSpread float64
}

// CollectibleConfig contains idle and nearby animation values for objects
type CollectibleConfig struct {
	BobHeight   float64
	PulseScale  float64
	ClockFactor float64
}

// TrailStyleConfig contains the trail particle look
type TrailStyleConfig struct {
	Palette   []color.RGBA
	MaxAlpha  float64
	MaxRadius float64
}

// BackgroundConfig contains the placeholder background drawn until the map is ready
type BackgroundConfig struct {
	Fill     color.RGBA
	Grid     color.RGBA
	GridSize float64
}

// DebugConfig contains debug/testing command-line options
type DebugConfig struct {
	Overlay bool // Draw entity bounds and radii
}

// Global configuration instances
var Acquisition AcquisitionConfig
var Pin PinConfig
var Collectible CollectibleConfig
var Trail TrailStyleConfig
var Background BackgroundConfig
var Debug DebugConfig

// Shared RGBA color constants
var (
	White        = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	Gold         = color.RGBA{R: 255, G: 215, B: 0, A: 255}
	PlayerPink   = color.RGBA{R: 255, G: 20, B: 147, A: 255}
	BlackOverlay = color.RGBA{R: 0, G: 0, B: 0, A: 180}
	PanelCream   = color.RGBA{R: 250, G: 244, B: 230, A: 245}
	InkDark      = color.RGBA{R: 40, G: 32, B: 48, A: 255}
	LinkBlue     = color.RGBA{R: 36, G: 64, B: 142, A: 255}
	DebugCyan    = color.RGBA{R: 0, G: 255, B: 255, A: 255}
	DebugYellow  = color.RGBA{R: 255, G: 255, B: 0, A: 255}
	DebugMagenta = color.RGBA{R: 255, G: 0, B: 255, A: 255}
)

// DefaultGame returns the tuning used by the tour.
func DefaultGame() GameConfig {
	return GameConfig{
		CanvasWidth:     1024,
		CanvasHeight:    768,
		BackgroundScale: 0.2,

		PlayerSpeed: 3,
		PlayerSize:  40,

		InteractionRadius: 80,
		HoverRadius:       80,
		ActiveAreaScale:   0.75,
		HoverStep:         0.15,

		PinOffset:   15,
		ImageScale:  0.2,
		ObjectScale: 0.1,
		PinScale:    0.15,
		BustWidth:   120,

		TrailLength:   20,
		TrailInterval: 2,

		TopmostLocation: "lambda-youth",
	}
}

// PinPhase returns the animation phase offset for the entity with the given seed.
// Consecutive seeds are spread by the golden ratio so neighbouring pins never line up.
func PinPhase(seed int) float64 {
	return float64(seed+1) * math.Phi
}

func init() {
	Acquisition = AcquisitionConfig{
		SpinTicksPerDirection: 8,
		SpinDirections:        4,
		PoseTicks:             10,
		FloatTicks:            30,
		HoldTicks:             300,
		FloatDistance:         25,
		LineCount:             8,
		LineBaseLength:        15,
		LinePulse:             5,
		LineWidth:             2,
	}

	Pin = PinConfig{
		ClockStep:     0.1,
		BounceHeight:  3,
		Variants:      3,
		VariantSpeed:  1.5,
		VariantSpread: 0.5,
	}

	Collectible = CollectibleConfig{
		BobHeight:   5,
		PulseScale:  0.1,
		ClockFactor: 2,
	}

	Trail = TrailStyleConfig{
		Palette: []color.RGBA{
			{R: 0xE4, G: 0x03, B: 0x03, A: 0xFF},
			{R: 0xFF, G: 0x8C, B: 0x00, A: 0xFF},
			{R: 0xFF, G: 0xED, B: 0x00, A: 0xFF},
			{R: 0x00, G: 0x80, B: 0x26, A: 0xFF},
			{R: 0x24, G: 0x40, B: 0x8E, A: 0xFF},
			{R: 0x73, G: 0x29, B: 0x82, A: 0xFF},
		},
		MaxAlpha:  0.7,
		MaxRadius: 8,
	}

	Background = BackgroundConfig{
		Fill:     color.RGBA{R: 0x8F, G: 0xBC, B: 0x8F, A: 0xFF},
		Grid:     color.RGBA{R: 0x7A, G: 0x9D, B: 0x7A, A: 0xFF},
		GridSize: 40,
	}
}
