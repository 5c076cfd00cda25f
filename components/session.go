package components

import (
	"github.com/automoto/durhamtour/assets"
	"github.com/automoto/durhamtour/config"
	"github.com/automoto/durhamtour/dialogue"
	"github.com/automoto/durhamtour/scenedata"
	"github.com/yohamta/donburi"
)

// SessionData is the explicitly constructed game session: the tuning and
// collaborators every system reads instead of package globals.
type SessionData struct {
	Config    config.GameConfig
	Presenter dialogue.Presenter
	Provider  *assets.Provider
	Library   *assets.Library
	Table     scenedata.Table
}

var Session = donburi.NewComponentType[SessionData]()
