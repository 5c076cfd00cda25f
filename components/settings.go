package components

import "github.com/yohamta/donburi"

// SettingsData stores user display preferences for the session
type SettingsData struct {
	Debug      bool
	Fullscreen bool
}

var Settings = donburi.NewComponentType[SettingsData]()
