package app

import (
	"context"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"

	"afterglow/internal/render"
	"afterglow/internal/sims/afterglow"
)

func newTestScreen(t *testing.T, w, h int) tcell.SimulationScreen {
	t.Helper()
	screen := tcell.NewSimulationScreen("")
	if err := screen.Init(); err != nil {
		t.Fatal(err)
	}
	screen.SetSize(w, h)
	t.Cleanup(screen.Fini)
	return screen
}

func newBlinker(t *testing.T) *afterglow.Automata {
	t.Helper()
	a, err := afterglow.New(5)
	if err != nil {
		t.Fatal(err)
	}
	if err := a.Place(afterglow.Blinker, 1, 1); err != nil {
		t.Fatal(err)
	}
	return a
}

func background(screen tcell.Screen, x, y int) tcell.Color {
	_, _, style, _ := screen.GetContent(x, y)
	_, bg, _ := style.Decompose()
	return bg
}

func TestTermSessionDrawsCellsTwoColumnsWide(t *testing.T) {
	screen := newTestScreen(t, 20, 8)
	s := newTermSession(newBlinker(t), screen, 1)
	s.draw()

	alive := render.TerminalColor(afterglow.AliveColor)
	// Blinker cell (2,1) covers columns 4 and 5 of row 1.
	if background(screen, 4, 1) != alive || background(screen, 5, 1) != alive {
		t.Fatal("seeded cell not painted across two columns")
	}
	if background(screen, 6, 1) == alive {
		t.Fatal("neighboring dead cell painted alive")
	}
}

func TestTermSessionTickAndKeys(t *testing.T) {
	screen := newTestScreen(t, 20, 8)
	a := newBlinker(t)
	s := newTermSession(a, screen, 1)
	s.draw()

	s.tick()
	if a.Generation() != 1 || s.stats.LastChanges != 4 {
		t.Fatalf("generation=%d changes=%d after one tick", a.Generation(), s.stats.LastChanges)
	}

	if err := s.handle(tcell.NewEventKey(tcell.KeyRune, ' ', tcell.ModNone)); err != nil {
		t.Fatal(err)
	}
	s.tick()
	if a.Generation() != 1 {
		t.Fatalf("paused tick advanced to generation %d", a.Generation())
	}

	if err := s.handle(tcell.NewEventKey(tcell.KeyRune, 'n', tcell.ModNone)); err != nil {
		t.Fatal(err)
	}
	if a.Generation() != 2 {
		t.Fatalf("single step left generation at %d", a.Generation())
	}

	if err := s.handle(tcell.NewEventKey(tcell.KeyRune, 'r', tcell.ModNone)); err != nil {
		t.Fatal(err)
	}
	if a.Generation() != 0 {
		t.Fatalf("reset left generation at %d", a.Generation())
	}

	if err := s.handle(tcell.NewEventKey(tcell.KeyRune, 'q', tcell.ModNone)); err != errQuit {
		t.Fatalf("q returned %v, want errQuit", err)
	}
	if err := s.handle(tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone)); err != errQuit {
		t.Fatalf("Esc returned %v, want errQuit", err)
	}
}

func TestTermSessionResizeRepaintsEverything(t *testing.T) {
	screen := newTestScreen(t, 20, 8)
	a := newBlinker(t)
	s := newTermSession(a, screen, 1)
	s.draw()

	if err := s.handle(tcell.NewEventResize(20, 8)); err != nil {
		t.Fatal(err)
	}
	off := render.TerminalColor(afterglow.OffColor)
	if background(screen, 0, 0) != off || background(screen, 9, 4) != off {
		t.Fatal("resize should repaint dead cells too")
	}
}

func TestRunTerminalQuitsOnKey(t *testing.T) {
	screen := newTestScreen(t, 20, 8)
	cfg := NewConfig()
	cfg.TPS = 1000

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	screen.InjectKey(tcell.KeyRune, 'q', tcell.ModNone)
	if err := RunTerminal(ctx, newBlinker(t), screen, cfg); err != nil {
		t.Fatal(err)
	}
	if ctx.Err() != nil {
		t.Fatal("RunTerminal only returned after the timeout")
	}
}

func TestRunTerminalStopsOnCancel(t *testing.T) {
	screen := newTestScreen(t, 20, 8)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if err := RunTerminal(ctx, newBlinker(t), screen, NewConfig()); err != nil {
		t.Fatal(err)
	}
}
