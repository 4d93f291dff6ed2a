//go:build ebiten

package app

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/pkg/errors"

	"afterglow/internal/core"
)

// RunWindow opens a window and drives sim until the user quits.
func RunWindow(sim core.Sim, cfg *Config) error {
	game := New(sim, cfg)

	ebiten.SetWindowTitle(sim.Name())
	ebiten.SetWindowSize(cfg.Window, cfg.Window)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	// The sim keeps its own fixed step; ebiten only needs to poll often
	// enough to honor it.
	ebiten.SetTPS(max(cfg.TPS, ebiten.DefaultTPS))

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		return err
	}
	return nil
}
