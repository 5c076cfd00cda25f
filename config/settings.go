package config

import "github.com/yohamta/donburi/ecs"

// Default is the only render layer; renderers draw in registration order.
const Default ecs.LayerID = 0

// SettingsConfig contains persistence and window configuration
type SettingsConfig struct {
	AppName        string
	SettingsKey    string
	WindowTitle    string
	TPS            int
	DefaultBaseDir string
	BaseEnv        string
}

// Settings is the global settings configuration
var Settings SettingsConfig

func init() {
	Settings = SettingsConfig{
		AppName:        "durhamtour",
		SettingsKey:    "settings",
		WindowTitle:    "Queer History of Durham",
		TPS:            60,
		DefaultBaseDir: "public",
		BaseEnv:        "DURHAM_ASSETS",
	}
}
