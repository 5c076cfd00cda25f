package scenedata

import (
	"fmt"
	"strconv"
	"strings"
)

// CoordKind tells how a Coord value is interpreted.
type CoordKind int

const (
	Pixels CoordKind = iota
	Percent
)

// Coord is one axis of a configured position: either absolute pixels or a
// percentage of the background that marks the entity's centre.
type Coord struct {
	Kind  CoordKind
	Value float64
}

func Px(v float64) Coord  { return Coord{Kind: Pixels, Value: v} }
func Pct(v float64) Coord { return Coord{Kind: Percent, Value: v} }

// ParseCoord accepts "42.5%" or "120".
func ParseCoord(s string) (Coord, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return Coord{}, fmt.Errorf("empty coordinate")
	}
	if pct, ok := strings.CutSuffix(s, "%"); ok {
		v, err := strconv.ParseFloat(strings.TrimSpace(pct), 64)
		if err != nil {
			return Coord{}, fmt.Errorf("parse percent coordinate %q: %w", s, err)
		}
		return Pct(v), nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return Coord{}, fmt.Errorf("parse pixel coordinate %q: %w", s, err)
	}
	return Px(v), nil
}

func (c Coord) String() string {
	if c.Kind == Percent {
		return strconv.FormatFloat(c.Value, 'f', -1, 64) + "%"
	}
	return strconv.FormatFloat(c.Value, 'f', -1, 64)
}

// Resolve converts the coordinate to a top-left pixel offset.
// Percentages address the centre: pct/100*background - size/2.
func (c Coord) Resolve(background, size float64) float64 {
	if c.Kind == Percent {
		return c.Value/100*background - size/2
	}
	return c.Value
}

// ResolvedPosition is the absolute top-left corner of an entity in map space.
type ResolvedPosition struct {
	X, Y float64
}

// ResolvePosition resolves both axes against the background and entity size.
func ResolvePosition(x, y Coord, bgW, bgH, w, h float64) ResolvedPosition {
	return ResolvedPosition{
		X: x.Resolve(bgW, w),
		Y: y.Resolve(bgH, h),
	}
}
