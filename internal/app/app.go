//go:build ebiten

package app

import (
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"afterglow/internal/core"
	"afterglow/internal/render"
	"afterglow/internal/ui"
)

// Game adapts a core simulation to the ebiten.Game interface. Update advances
// the sim on its own fixed step; Draw drains the changes into a persistent
// canvas, so each frame only repaints what changed.
type Game struct {
	sim     core.Sim
	painter *render.RectPainter
	hud     *ui.HUD
	timer   *core.FixedStep
	stats   *core.Stats

	width, height int

	paused   bool
	tickOnce bool
	seed     int64
	laps     stepTimer
	stepped  bool
}

// New constructs a Game for the provided simulation.
func New(sim core.Sim, cfg *Config) *Game {
	return &Game{
		sim:     sim,
		painter: render.NewRectPainter(cfg.Window, cfg.Window, backgroundColor),
		hud:     ui.NewHUD(sim, cfg.HUD),
		timer:   core.NewFixedStep(cfg.TPS),
		stats:   core.NewStats(),
		width:   cfg.Window,
		height:  cfg.Window,
		seed:    cfg.Seed,
	}
}

// Reset reinitializes the simulation state with the provided seed.
func (g *Game) Reset(seed int64) {
	g.seed = seed
	g.sim.Reset(seed)
	g.tickOnce = false
	g.stats = core.NewStats()
}

// Update handles per-frame logic and advances the simulation.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.paused = !g.paused
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyN) {
		g.tickOnce = true
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.Reset(g.seed)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyS) {
		g.Reset(time.Now().UnixNano())
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyH) {
		g.hud.Toggle()
	}

	due := g.timer.ShouldStep()
	if (!g.paused && due) || g.tickOnce {
		g.sim.Step()
		g.tickOnce = false
		g.stepped = true
	}
	return nil
}

// Draw renders the current simulation state.
func (g *Game) Draw(screen *ebiten.Image) {
	if g.painter.Resize(g.width, g.height) {
		if r, ok := g.sim.(core.Redrawer); ok {
			r.Redraw()
		}
	}
	changes := g.sim.Changes(float64(g.width), float64(g.height))
	g.painter.Paint(changes)
	if g.stepped {
		g.recordStats(len(changes))
		g.stepped = false
	}

	g.painter.Blit(screen)
	g.hud.Draw(screen, g.stats, g.paused)
}

func (g *Game) recordStats(changes int) {
	generation, population := simCounters(g.sim)
	g.stats.Update(generation, population, changes, g.laps.lap(time.Now()))
}

// Layout follows the window size so the grid always fills it.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	g.width, g.height = max(outsideWidth, 1), max(outsideHeight, 1)
	return g.width, g.height
}
