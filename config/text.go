package config

// TextConfig contains the fixed strings shown by the tour
type TextConfig struct {
	DefaultPrompt     string
	LocationFallback  string
	InvestigateButton string
	SeeMore           string
	SeeLess           string
	LinkLabel         string
	CloseButton       string
	Loading           string
	PreviewWords      int
}

// AssetPathConfig contains the asset keys shared by every session
type AssetPathConfig struct {
	Scene         string
	Background    string
	WalkSprite    string // fmt pattern: direction, frame
	AcquireSprite string
	Pins          []string
	Bust          string
	LegendIcon    string // fmt pattern: characteristic key
}

var Text TextConfig
var AssetPaths AssetPathConfig

func init() {
	Text = TextConfig{
		DefaultPrompt:     "I can use Arrow Keys or WASD to move and press SPACE to interact with objects.",
		LocationFallback:  "Hmm, this place looks interesting...",
		InvestigateButton: "Investigate...",
		SeeMore:           "See more",
		SeeLess:           "See less",
		LinkLabel:         "Read more on Open Durham",
		CloseButton:       "Close",
		Loading:           "Loading map",
		PreviewWords:      100,
	}

	AssetPaths = AssetPathConfig{
		Scene:         "scenes/durham.tmx",
		Background:    "assets/BackgroundMap.png",
		WalkSprite:    "assets/Sprite/sprite-%s_%d.png",
		AcquireSprite: "assets/Sprite/sprite-acquire.png",
		Pins: []string{
			"assets/locationpin-1.png",
			"assets/locationpin-2.png",
			"assets/locationpin-3.png",
		},
		Bust:       "assets/bustsprite/bust-sprite_bull-neutral.png",
		LegendIcon: "assets/legend/icon_%s.png",
	}
}
