package assets

import (
	"embed"
	"fmt"
	"io/fs"

	"github.com/automoto/durhamtour/config"
)

var (
	//go:embed all:scenes
	sceneFS embed.FS
)

// SceneFS exposes the embedded scene tables.
func SceneFS() fs.FS {
	return sceneFS
}

// Library holds the handles shared by the whole tour: map, player sprites, pins and portrait.
type Library struct {
	Background *Handle
	Walk       map[config.Direction][]*Handle // indexed by frame, 1..4
	Acquire    *Handle
	Pins       []*Handle
	Bust       *Handle
}

// LoadLibrary starts loading every shared image.
func LoadLibrary(p *Provider) *Library {
	l := &Library{
		Background: p.Load(config.AssetPaths.Background),
		Walk:       make(map[config.Direction][]*Handle),
		Acquire:    p.Load(config.AssetPaths.AcquireSprite),
		Bust:       p.Load(config.AssetPaths.Bust),
	}
	for _, dir := range config.SpinOrder {
		frames := make([]*Handle, config.WalkAnimation.Last+1)
		for frame := config.IdleFrame; frame <= config.WalkAnimation.Last; frame++ {
			frames[frame] = p.Load(fmt.Sprintf(config.AssetPaths.WalkSprite, dir, frame))
		}
		l.Walk[dir] = frames
	}
	for _, key := range config.AssetPaths.Pins {
		l.Pins = append(l.Pins, p.Load(key))
	}
	return l
}

// SpritesReady reports whether every walk frame is loaded.
func (l *Library) SpritesReady() bool {
	for _, frames := range l.Walk {
		for _, h := range frames[config.IdleFrame:] {
			if !h.Ready() {
				return false
			}
		}
	}
	return len(l.Walk) > 0
}

// PinsReady reports whether every pin variant is loaded; pins are drawn only then.
func (l *Library) PinsReady() bool {
	for _, h := range l.Pins {
		if !h.Ready() {
			return false
		}
	}
	return len(l.Pins) > 0
}

// Group returns every library handle, for loading progress.
func (l *Library) Group() *Group {
	g := NewGroup(l.Background, l.Acquire, l.Bust)
	g.Add(l.Pins...)
	for _, dir := range config.SpinOrder {
		g.Add(l.Walk[dir][config.IdleFrame:]...)
	}
	return g
}

// LegendIconKey returns the asset key for a characteristic icon.
func LegendIconKey(characteristic string) string {
	return fmt.Sprintf(config.AssetPaths.LegendIcon, characteristic)
}
