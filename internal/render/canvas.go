package render

import (
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"io"

	"github.com/pkg/errors"

	"afterglow/internal/core"
)

// Canvas keeps an in-memory RGBA frame that is updated incrementally from
// drained changes.
type Canvas struct {
	img *image.RGBA
}

// NewCanvas allocates a w x h canvas filled with bg.
func NewCanvas(w, h int, bg color.Color) *Canvas {
	if w <= 0 {
		w = 1
	}
	if h <= 0 {
		h = 1
	}
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.Draw(img, img.Bounds(), image.NewUniform(bg), image.Point{}, draw.Src)
	return &Canvas{img: img}
}

// Size returns the canvas dimensions in pixels.
func (c *Canvas) Size() (int, int) {
	b := c.img.Bounds()
	return b.Dx(), b.Dy()
}

// Paint fills every change rectangle with its color.
func (c *Canvas) Paint(changes []core.Change) {
	for _, ch := range changes {
		r := pixelBounds(ch.Rect).Intersect(c.img.Bounds())
		if r.Empty() {
			continue
		}
		draw.Draw(c.img, r, image.NewUniform(ch.Color), image.Point{}, draw.Src)
	}
}

// Image exposes the backing image.
func (c *Canvas) Image() *image.RGBA { return c.img }

// WritePNG encodes the current frame as PNG.
func (c *Canvas) WritePNG(w io.Writer) error {
	if err := png.Encode(w, c.img); err != nil {
		return errors.Wrap(err, "[WritePNG] failed to encode frame")
	}
	return nil
}
