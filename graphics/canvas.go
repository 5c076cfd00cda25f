// Package graphics is the drawing surface the renderers target. The ebiten
// implementation draws to the screen; tests record calls instead.
package graphics

import (
	"image/color"

	"github.com/automoto/durhamtour/assets"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

type Canvas interface {
	Size() (w, h float64)
	// DrawImage stretches a ready handle into the given rectangle. Pending handles are skipped.
	DrawImage(img *assets.Handle, x, y, w, h, alpha float64)
	FillRect(x, y, w, h float64, c color.Color)
	FillCircle(cx, cy, r float64, c color.Color)
	StrokeLine(x0, y0, x1, y1 float64, width float32, c color.Color)
}

// WithAlpha returns c with its opacity multiplied by alpha.
func WithAlpha(c color.RGBA, alpha float64) color.NRGBA {
	if alpha < 0 {
		alpha = 0
	}
	if alpha > 1 {
		alpha = 1
	}
	return color.NRGBA{R: c.R, G: c.G, B: c.B, A: uint8(float64(c.A) * alpha)}
}

// EbitenCanvas draws onto an ebiten image.
type EbitenCanvas struct {
	Screen *ebiten.Image
	op     ebiten.DrawImageOptions
}

func (c *EbitenCanvas) Size() (float64, float64) {
	b := c.Screen.Bounds()
	return float64(b.Dx()), float64(b.Dy())
}

func (c *EbitenCanvas) DrawImage(h *assets.Handle, x, y, w, hgt, alpha float64) {
	img := h.Image()
	if img == nil || alpha <= 0 {
		return
	}
	b := img.Bounds()
	if b.Dx() == 0 || b.Dy() == 0 {
		return
	}

	c.op.GeoM.Reset()
	c.op.ColorScale.Reset()
	c.op.GeoM.Scale(w/float64(b.Dx()), hgt/float64(b.Dy()))
	c.op.GeoM.Translate(x, y)
	c.op.ColorScale.ScaleAlpha(float32(alpha))
	c.op.Filter = ebiten.FilterLinear
	c.Screen.DrawImage(img, &c.op)
}

func (c *EbitenCanvas) FillRect(x, y, w, h float64, clr color.Color) {
	vector.FillRect(c.Screen, float32(x), float32(y), float32(w), float32(h), clr, false)
}

func (c *EbitenCanvas) FillCircle(cx, cy, r float64, clr color.Color) {
	vector.FillCircle(c.Screen, float32(cx), float32(cy), float32(r), clr, true)
}

func (c *EbitenCanvas) StrokeLine(x0, y0, x1, y1 float64, width float32, clr color.Color) {
	vector.StrokeLine(c.Screen, float32(x0), float32(y0), float32(x1), float32(y1), width, clr, true)
}
