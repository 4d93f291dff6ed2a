//go:build ebiten

package ui

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"

	"afterglow/internal/core"
)

const (
	hudPadding    = 6
	hudLineHeight = 14
	hudCharWidth  = 7
)

// HUD renders a translucent stats panel in the top-left corner.
type HUD struct {
	sim     core.Sim
	visible bool
}

// NewHUD constructs a HUD for the provided simulation.
func NewHUD(sim core.Sim, visible bool) *HUD {
	return &HUD{sim: sim, visible: visible}
}

// Toggle flips HUD visibility.
func (h *HUD) Toggle() {
	if h == nil {
		return
	}
	h.visible = !h.visible
}

// Visible reports whether the panel is drawn.
func (h *HUD) Visible() bool { return h != nil && h.visible }

// Draw paints the panel onto screen.
func (h *HUD) Draw(screen *ebiten.Image, stats *core.Stats, paused bool) {
	if !h.Visible() {
		return
	}
	lines := StatusLines(h.sim, stats, paused)
	widest := 0
	for _, l := range lines {
		widest = max(widest, len(l))
	}
	w := float32(widest*hudCharWidth + 2*hudPadding)
	ht := float32(len(lines)*hudLineHeight + 2*hudPadding)
	vector.DrawFilledRect(screen, 0, 0, w, ht, color.RGBA{R: 16, G: 16, B: 20, A: 200}, false)

	face := basicfont.Face7x13
	for i, l := range lines {
		y := hudPadding + (i+1)*hudLineHeight - 3
		text.Draw(screen, l, face, hudPadding, y, color.White)
	}
}
