package assets

import (
	"image"
	"sync/atomic"

	"github.com/hajimehoshi/ebiten/v2"
)

const (
	statePending int32 = iota
	stateReady
	stateFailed
)

// Handle is a reference to an image that may still be loading.
// Readiness flips exactly once, from the loader goroutine; the game loop
// only ever polls it.
type Handle struct {
	key   string
	state atomic.Int32
	src   image.Image
	w, h  int

	// Created lazily on the game goroutine.
	img *ebiten.Image
}

func newHandle(key string) *Handle {
	return &Handle{key: key}
}

// Preloaded returns a handle that is already ready with the given image.
func Preloaded(key string, img image.Image) *Handle {
	h := newHandle(key)
	h.resolve(img)
	return h
}

// FailedHandle returns a handle that has permanently failed.
func FailedHandle(key string) *Handle {
	h := newHandle(key)
	h.fail()
	return h
}

func (h *Handle) resolve(img image.Image) {
	b := img.Bounds()
	h.src = img
	h.w, h.h = b.Dx(), b.Dy()
	h.state.Store(stateReady)
}

func (h *Handle) fail() {
	h.state.Store(stateFailed)
}

func (h *Handle) Key() string {
	return h.key
}

// Ready reports whether the image finished loading. Safe on a nil handle.
func (h *Handle) Ready() bool {
	return h != nil && h.state.Load() == stateReady
}

// Failed reports whether all load attempts were exhausted.
func (h *Handle) Failed() bool {
	return h != nil && h.state.Load() == stateFailed
}

// Settled reports whether the handle will never change state again.
func (h *Handle) Settled() bool {
	return h.Ready() || h.Failed()
}

// Size returns the intrinsic pixel size, or zeros while pending.
func (h *Handle) Size() (int, int) {
	if !h.Ready() {
		return 0, 0
	}
	return h.w, h.h
}

// Image returns the GPU image for drawing. Must be called from the game goroutine.
func (h *Handle) Image() *ebiten.Image {
	if !h.Ready() {
		return nil
	}
	if h.img == nil {
		h.img = ebiten.NewImageFromImage(h.src)
	}
	return h.img
}
