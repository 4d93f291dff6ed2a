//go:build ebiten

package render

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"afterglow/internal/core"
)

// RectPainter keeps a persistent offscreen image that drained changes are
// painted into, so only changed cells cost draw calls.
type RectPainter struct {
	w, h   int
	bg     color.Color
	canvas *ebiten.Image
}

// NewRectPainter allocates a painter for a w x h pixel target.
func NewRectPainter(w, h int, bg color.Color) *RectPainter {
	p := &RectPainter{bg: bg}
	p.Resize(w, h)
	return p
}

// Resize reallocates the offscreen image when the target size changes. It
// reports true when the old contents were discarded and the caller must
// repaint everything.
func (p *RectPainter) Resize(w, h int) bool {
	if w <= 0 {
		w = 1
	}
	if h <= 0 {
		h = 1
	}
	if p.canvas != nil && w == p.w && h == p.h {
		return false
	}
	if p.canvas != nil {
		p.canvas.Dispose()
	}
	p.w, p.h = w, h
	p.canvas = ebiten.NewImage(w, h)
	p.canvas.Fill(p.bg)
	return true
}

// Paint fills every change rectangle on the offscreen image.
func (p *RectPainter) Paint(changes []core.Change) {
	for _, ch := range changes {
		r := ch.Rect
		vector.DrawFilledRect(p.canvas, float32(r.X), float32(r.Y), float32(r.W), float32(r.H), ch.Color, false)
	}
}

// Blit draws the offscreen image onto dst.
func (p *RectPainter) Blit(dst *ebiten.Image) {
	dst.DrawImage(p.canvas, &ebiten.DrawImageOptions{})
}

// Size returns the dimensions of the offscreen image.
func (p *RectPainter) Size() (int, int) { return p.w, p.h }
