package app

import (
	"context"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"

	"afterglow/internal/core"
	"afterglow/internal/render"
	"afterglow/internal/ui"
)

var errQuit = errors.New("quit requested")

// termSession is the terminal host. Only the goroutine running the loop in
// RunTerminal touches the sim, so Step and Changes strictly alternate.
type termSession struct {
	sim     core.Sim
	screen  tcell.Screen
	painter *render.TerminalPainter
	stats   *core.Stats
	laps    stepTimer

	seed    int64
	paused  bool
	stepped bool
}

func newTermSession(sim core.Sim, screen tcell.Screen, seed int64) *termSession {
	return &termSession{
		sim:     sim,
		screen:  screen,
		painter: render.NewTerminalPainter(screen),
		stats:   core.NewStats(),
		seed:    seed,
	}
}

// target returns the grid area in terminal cells. Each grid cell spans two
// columns so it looks roughly square.
func (s *termSession) target() (float64, float64) {
	size := s.sim.Size()
	return float64(2 * size.W), float64(size.H)
}

func (s *termSession) handle(ev tcell.Event) error {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC {
			return errQuit
		}
		switch ev.Rune() {
		case 'q':
			return errQuit
		case ' ':
			s.paused = !s.paused
			s.draw()
		case 'n':
			s.advance()
			s.draw()
		case 'r':
			s.reset(s.seed)
		case 's':
			s.reset(time.Now().UnixNano())
		}
	case *tcell.EventResize:
		s.screen.Clear()
		if r, ok := s.sim.(core.Redrawer); ok {
			r.Redraw()
		}
		s.draw()
		s.screen.Sync()
	}
	return nil
}

func (s *termSession) advance() {
	s.sim.Step()
	s.stepped = true
}

func (s *termSession) reset(seed int64) {
	s.seed = seed
	s.sim.Reset(seed)
	s.stats = core.NewStats()
	s.draw()
}

// tick advances one generation unless paused and repaints.
func (s *termSession) tick() {
	if !s.paused {
		s.advance()
	}
	s.draw()
}

func (s *termSession) draw() {
	w, h := s.target()
	changes := s.sim.Changes(w, h)
	s.painter.Paint(changes)
	if s.stepped {
		generation, population := simCounters(s.sim)
		s.stats.Update(generation, population, len(changes), s.laps.lap(time.Now()))
		s.stepped = false
	}
	s.drawStatus(int(h))
	s.screen.Show()
}

func (s *termSession) drawStatus(row int) {
	width, height := s.screen.Size()
	if row >= height {
		return
	}
	line := []rune(ui.StatusBar(s.sim, s.stats, s.paused, width))
	for x := 0; x < width; x++ {
		r := ' '
		if x < len(line) {
			r = line[x]
		}
		s.screen.SetContent(x, row, r, nil, tcell.StyleDefault)
	}
}

// RunTerminal drives sim on screen at cfg.TPS generations per second until
// ctx is cancelled or the user presses q or Esc. The screen must already be
// initialized; the caller owns Fini.
func RunTerminal(ctx context.Context, sim core.Sim, screen tcell.Screen, cfg *Config) error {
	s := newTermSession(sim, screen, cfg.Seed)
	step := core.NewFixedStep(cfg.TPS).Step()
	events := make(chan tcell.Event, 16)

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		screen.ChannelEvents(events, ctx.Done())
		return nil
	})
	g.Go(func() error {
		ticker := time.NewTicker(step)
		defer ticker.Stop()

		s.draw()
		for {
			select {
			case <-ctx.Done():
				return nil
			case ev, ok := <-events:
				if !ok {
					return nil
				}
				if err := s.handle(ev); err != nil {
					return err
				}
			case <-ticker.C:
				s.tick()
			}
		}
	})

	if err := g.Wait(); err != nil && !errors.Is(err, errQuit) {
		return errors.Wrap(err, "[RunTerminal] terminal loop failed")
	}
	return nil
}
