package render

import (
	"image"
	"math"

	"afterglow/internal/core"
)

// pixelBounds snaps a target rectangle to whole pixels. Both edges are
// rounded, so rectangles that share an edge in target space share it in
// pixel space too and no seams appear between neighboring cells.
func pixelBounds(r core.Rect) image.Rectangle {
	x0 := int(math.Round(r.X))
	y0 := int(math.Round(r.Y))
	x1 := int(math.Round(r.X + r.W))
	y1 := int(math.Round(r.Y + r.H))
	return image.Rect(x0, y0, x1, y1)
}
