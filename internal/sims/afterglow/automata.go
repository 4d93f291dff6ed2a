package afterglow

import (
	"github.com/pkg/errors"

	"afterglow/internal/core"
)

var (
	// ErrInvalidSize is returned when constructing a grid smaller than 1x1.
	ErrInvalidSize = errors.New("grid size must be at least 1")
	// ErrOutOfRange is returned for coordinates outside the grid.
	ErrOutOfRange = errors.New("coordinate outside grid")
)

// Automata is a square Game of Life grid whose dead cells fade out over
// TrailMax generations. It tracks which cells changed color so hosts can
// repaint only those.
//
// Automata is not safe for concurrent use.
type Automata struct {
	cfg  Config
	size int

	cells []Cell
	dirty *dirtyList

	generation int
	population int
}

// New returns an empty size x size grid using the default seeding options.
func New(size int) (*Automata, error) {
	cfg := DefaultConfig()
	cfg.Size = size
	return NewWithConfig(cfg)
}

// NewWithConfig returns an empty grid configured from cfg. Cells are only
// populated by BirthCellAt or Reset.
func NewWithConfig(cfg Config) (*Automata, error) {
	if cfg.Size < 1 {
		return nil, errors.Wrapf(ErrInvalidSize, "[NewWithConfig] got size %d", cfg.Size)
	}
	if _, ok := seeders[cfg.Pattern]; !ok {
		return nil, errors.Wrapf(ErrUnknownPattern, "[NewWithConfig] pattern %q", cfg.Pattern)
	}
	return &Automata{
		cfg:   cfg,
		size:  cfg.Size,
		cells: make([]Cell, cfg.Size*cfg.Size),
		dirty: newDirtyList(cfg.Size),
	}, nil
}

// Name returns the simulation identifier.
func (a *Automata) Name() string { return "afterglow" }

// Size reports the grid dimensions.
func (a *Automata) Size() core.Size { return core.Size{W: a.size, H: a.size} }

// Generation returns the number of generations advanced since construction
// or the last Reset.
func (a *Automata) Generation() int { return a.generation }

// Population returns the number of living cells.
func (a *Automata) Population() int { return a.population }

// Pending returns the number of cells touched since the last drain. Changes
// may report fewer when some of them are back to their last drained color.
func (a *Automata) Pending() int { return a.dirty.len() }

func (a *Automata) contains(x, y int) bool { return a.dirty.marks.Contains(x, y) }

func (a *Automata) index(x, y int) int { return y*a.size + x }

func (a *Automata) checkBounds(op string, x, y int) error {
	if a.contains(x, y) {
		return nil
	}
	return errors.Wrapf(ErrOutOfRange, "[%s] (%d,%d) outside %dx%d grid", op, x, y, a.size, a.size)
}

// BirthCellAt makes the cell at (x, y) alive, cancelling any afterglow.
func (a *Automata) BirthCellAt(x, y int) error {
	if err := a.checkBounds("BirthCellAt", x, y); err != nil {
		return err
	}
	c := &a.cells[a.index(x, y)]
	if c.alive {
		return nil
	}
	c.alive = true
	c.prevAlive = true
	c.trail = 0
	a.population++
	a.dirty.add(x, y)
	return nil
}

// CellAt returns a copy of the cell at (x, y).
func (a *Automata) CellAt(x, y int) (Cell, error) {
	if err := a.checkBounds("CellAt", x, y); err != nil {
		return Cell{}, err
	}
	return a.cells[a.index(x, y)], nil
}

// Neighbors returns copies of the in-grid Moore neighbors of (x, y), in
// row-major order. Cells past the grid edge are skipped, not wrapped.
func (a *Automata) Neighbors(x, y int) ([]Cell, error) {
	if err := a.checkBounds("Neighbors", x, y); err != nil {
		return nil, err
	}
	out := make([]Cell, 0, len(neighborOffsets))
	for _, off := range neighborOffsets {
		nx, ny := x+off[0], y+off[1]
		if !a.contains(nx, ny) {
			continue
		}
		out = append(out, a.cells[a.index(nx, ny)])
	}
	return out, nil
}

// LiveNeighbors counts the living cells among Neighbors(x, y).
func (a *Automata) LiveNeighbors(x, y int) (int, error) {
	if err := a.checkBounds("LiveNeighbors", x, y); err != nil {
		return 0, err
	}
	n := 0
	for _, off := range neighborOffsets {
		nx, ny := x+off[0], y+off[1]
		if a.contains(nx, ny) && a.cells[a.index(nx, ny)].alive {
			n++
		}
	}
	return n, nil
}

// snapshotNeighbors counts living neighbors as of the start of the current
// generation.
func (a *Automata) snapshotNeighbors(x, y int) int {
	n := 0
	for _, off := range neighborOffsets {
		nx, ny := x+off[0], y+off[1]
		if a.contains(nx, ny) && a.cells[a.index(nx, ny)].prevAlive {
			n++
		}
	}
	return n
}

// Step advances every cell by one generation. All cells are evaluated against
// the state at the start of the call, so the sweep order does not matter.
func (a *Automata) Step() {
	for i := range a.cells {
		a.cells[i].prevAlive = a.cells[i].alive
	}

	population := 0
	for y := 0; y < a.size; y++ {
		for x := 0; x < a.size; x++ {
			neighbors := a.snapshotNeighbors(x, y)

			c := &a.cells[a.index(x, y)]
			next := nextAlive(c.prevAlive, neighbors)
			if c.advance(next) {
				a.dirty.add(x, y)
			}
			if next {
				population++
			}
		}
	}

	a.population = population
	a.generation++
}

// Changes returns one entry per cell whose color differs from the color it had
// at the previous call, in the order the changes were found, with rectangles
// laid out over a width x height target. A cell that changed and then returned
// to its previously drained color is not reported. The pending set is emptied.
func (a *Automata) Changes(width, height float64) []core.Change {
	if a.dirty.len() == 0 {
		return nil
	}
	cw, ch := cellExtent(a.size, width, height)
	out := make([]core.Change, 0, a.dirty.len())
	for _, p := range a.dirty.points {
		c := a.cells[a.index(p.X, p.Y)].Color()
		if !a.dirty.report(a.index(p.X, p.Y), c) {
			continue
		}
		out = append(out, core.Change{Rect: cellRect(p, cw, ch), Color: c})
	}
	a.dirty.reset()
	if len(out) == 0 {
		return nil
	}
	return out
}

// Redraw marks every cell as changed so the next Changes call covers the
// whole grid.
func (a *Automata) Redraw() {
	for y := 0; y < a.size; y++ {
		for x := 0; x < a.size; x++ {
			a.dirty.add(x, y)
		}
	}
	a.dirty.forceAll()
}

// Clear kills every cell without afterglow. Cells that were not already
// showing the off color are reported by the next Changes call.
func (a *Automata) Clear() {
	for y := 0; y < a.size; y++ {
		for x := 0; x < a.size; x++ {
			if a.cells[a.index(x, y)].kill() {
				a.dirty.add(x, y)
			}
		}
	}
	a.population = 0
	a.generation = 0
}

// Reset clears the grid and seeds it with the configured pattern. Seed 0 is
// reserved: it selects Config.Seed, so a board seeded from 0 itself is not
// reachable through Reset.
func (a *Automata) Reset(seed int64) {
	if seed == 0 {
		seed = a.cfg.Seed
	}
	a.Clear()
	seeders[a.cfg.Pattern](a, core.NewRNG(seed))
}

func init() {
	core.Register("afterglow", func(cfg map[string]string) (core.Sim, error) {
		a, err := NewWithConfig(FromMap(cfg))
		if err != nil {
			return nil, err
		}
		return a, nil
	})
}
