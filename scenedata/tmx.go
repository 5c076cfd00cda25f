package scenedata

import (
	"fmt"
	"io/fs"
	"strconv"
	"strings"

	"github.com/lafriks/go-tiled"
)

// Object layer names in the scene file.
const (
	LayerLocations = "Locations"
	LayerObjects   = "Objects"
	LayerTuning    = "Tuning"
)

// Load reads a scene table from a Tiled map. Only object layers are used;
// each object's custom properties carry the entity fields.
func Load(fsys fs.FS, path string) (Table, error) {
	levelMap, err := tiled.LoadFile(path, tiled.WithFileSystem(fsys))
	if err != nil {
		return Table{}, fmt.Errorf("load scene %s: %w", path, err)
	}

	table := Table{Name: path}
	for _, og := range levelMap.ObjectGroups {
		switch og.Name {
		case LayerLocations:
			for _, o := range og.Objects {
				def, err := locationFromObject(o)
				if err != nil {
					return Table{}, fmt.Errorf("scene %s: %w", path, err)
				}
				table.Locations = append(table.Locations, def)
			}
		case LayerObjects:
			for _, o := range og.Objects {
				def, err := objectFromObject(o)
				if err != nil {
					return Table{}, fmt.Errorf("scene %s: %w", path, err)
				}
				table.Objects = append(table.Objects, def)
			}
		case LayerTuning:
			for _, o := range og.Objects {
				t, err := tuningFromObject(o)
				if err != nil {
					return Table{}, fmt.Errorf("scene %s: %w", path, err)
				}
				table.Tuning = t
			}
		}
	}
	return table, nil
}

func entityID(o *tiled.Object) string {
	if id := o.Properties.GetString("id"); id != "" {
		return id
	}
	return strconv.FormatUint(uint64(o.ID), 10)
}

// position reads the "x"/"y" properties, falling back to the object's own
// placement in the map when a property is absent.
func position(o *tiled.Object) (Coord, Coord, error) {
	axis := func(prop string, placed float64) (Coord, error) {
		s := o.Properties.GetString(prop)
		if strings.TrimSpace(s) == "" {
			return Px(placed), nil
		}
		c, err := ParseCoord(s)
		if err != nil {
			return Coord{}, fmt.Errorf("%s %s: %w", o.Name, prop, err)
		}
		return c, nil
	}
	x, err := axis("x", o.X)
	if err != nil {
		return Coord{}, Coord{}, err
	}
	y, err := axis("y", o.Y)
	if err != nil {
		return Coord{}, Coord{}, err
	}
	return x, y, nil
}

func locationFromObject(o *tiled.Object) (LocationDef, error) {
	x, y, err := position(o)
	if err != nil {
		return LocationDef{}, err
	}
	pinOffset, err := optionalFloat(o.Properties.GetString("pinOffset"))
	if err != nil {
		return LocationDef{}, fmt.Errorf("location %s: pinOffset: %w", o.Name, err)
	}

	return LocationDef{
		ID:              entityID(o),
		Name:            o.Name,
		Image:           o.Properties.GetString("image"),
		ImageHover:      o.Properties.GetString("imageHover"),
		X:               x,
		Y:               y,
		PinOffset:       pinOffset,
		Dialogue:        o.Properties.GetString("dialogue"),
		Description:     o.Properties.GetString("description"),
		Address:         o.Properties.GetString("address"),
		Characteristics: splitList(o.Properties.GetString("characteristics")),
		PreviewText:     o.Properties.GetString("previewText"),
		Link:            o.Properties.GetString("link"),
	}, nil
}

func objectFromObject(o *tiled.Object) (ObjectDef, error) {
	x, y, err := position(o)
	if err != nil {
		return ObjectDef{}, err
	}
	return ObjectDef{
		ID:             entityID(o),
		Name:           o.Name,
		Frame1:         o.Properties.GetString("frame1"),
		Frame2:         o.Properties.GetString("frame2"),
		X:              x,
		Y:              y,
		Dialogue:       o.Properties.GetString("dialogue"),
		AcquireMessage: o.Properties.GetString("acquireMessage"),
		ButtonText:     o.Properties.GetString("buttonText"),
	}, nil
}

func tuningFromObject(o *tiled.Object) (Tuning, error) {
	var t Tuning
	fields := []struct {
		name string
		dst  **float64
	}{
		{"playerSpeed", &t.PlayerSpeed},
		{"interactionRadius", &t.InteractionRadius},
		{"hoverRadius", &t.HoverRadius},
		{"pinOffset", &t.PinOffset},
		{"imageScale", &t.ImageScale},
		{"objectScale", &t.ObjectScale},
	}
	for _, f := range fields {
		v, err := optionalFloat(o.Properties.GetString(f.name))
		if err != nil {
			return Tuning{}, fmt.Errorf("tuning %s: %w", f.name, err)
		}
		*f.dst = v
	}
	if s := o.Properties.GetString("confirmWithPrompt"); s != "" {
		b, err := strconv.ParseBool(s)
		if err != nil {
			return Tuning{}, fmt.Errorf("tuning confirmWithPrompt: %w", err)
		}
		t.ConfirmWithPrompt = &b
	}
	return t, nil
}

func optionalFloat(s string) (*float64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return nil, err
	}
	return &v, nil
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
