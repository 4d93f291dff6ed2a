package render

import (
	"image/color"

	"github.com/gdamore/tcell/v2"

	"afterglow/internal/core"
)

// TerminalPainter paints changes as background-colored blanks on a tcell
// screen, one target unit per terminal column or row.
type TerminalPainter struct {
	screen tcell.Screen
}

// NewTerminalPainter wraps an initialized screen.
func NewTerminalPainter(screen tcell.Screen) *TerminalPainter {
	return &TerminalPainter{screen: screen}
}

// Paint writes the changes into the screen buffer. The caller decides when to
// Show.
func (p *TerminalPainter) Paint(changes []core.Change) {
	w, h := p.screen.Size()
	for _, ch := range changes {
		r := pixelBounds(ch.Rect)
		style := tcell.StyleDefault.Background(TerminalColor(ch.Color))
		for y := max(r.Min.Y, 0); y < min(r.Max.Y, h); y++ {
			for x := max(r.Min.X, 0); x < min(r.Max.X, w); x++ {
				p.screen.SetContent(x, y, ' ', nil, style)
			}
		}
	}
}

// TerminalColor converts an RGBA color to a true-color tcell color.
func TerminalColor(c color.RGBA) tcell.Color {
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}
