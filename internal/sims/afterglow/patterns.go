package afterglow

import (
	"sort"

	"github.com/pkg/errors"

	"afterglow/internal/core"
)

// ErrUnknownPattern is returned when a configured seeding pattern does not exist.
var ErrUnknownPattern = errors.New("unknown seeding pattern")

// Pattern lists live cells relative to a top-left anchor.
type Pattern []core.Point

var (
	// Glider travels one cell down and right every four generations.
	Glider = Pattern{{X: 1, Y: 0}, {X: 2, Y: 1}, {X: 0, Y: 2}, {X: 1, Y: 2}, {X: 2, Y: 2}}
	// Blinker is a vertical period-2 oscillator.
	Blinker = Pattern{{X: 1, Y: 0}, {X: 1, Y: 1}, {X: 1, Y: 2}}
	// Block is a 2x2 still life.
	Block = Pattern{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 0, Y: 1}, {X: 1, Y: 1}}

	// Sparks are the two small seeds of the classic demo board.
	sparkA = Pattern{{X: 2, Y: 1}, {X: 3, Y: 1}, {X: 1, Y: 1}, {X: 2, Y: 2}, {X: 1, Y: 0}, {X: 0, Y: 0}}
	sparkB = Pattern{{X: 1, Y: 2}, {X: 0, Y: 2}, {X: 2, Y: 2}, {X: 2, Y: 1}, {X: 1, Y: 0}}
)

// Extent returns the width and height of the pattern's bounding box.
func (p Pattern) Extent() core.Size {
	var s core.Size
	for _, pt := range p {
		s.W = max(s.W, pt.X+1)
		s.H = max(s.H, pt.Y+1)
	}
	return s
}

// Place births every cell of p shifted by (x, y). If any cell would fall
// outside the grid nothing is placed and ErrOutOfRange is returned.
func (a *Automata) Place(p Pattern, x, y int) error {
	for _, pt := range p {
		if err := a.checkBounds("Place", x+pt.X, y+pt.Y); err != nil {
			return err
		}
	}
	for _, pt := range p {
		// Bounds were checked above.
		_ = a.BirthCellAt(x+pt.X, y+pt.Y)
	}
	return nil
}

// placeCentered drops p in the middle of the grid when it fits.
func (a *Automata) placeCentered(p Pattern) {
	ext := p.Extent()
	_ = a.Place(p, (a.size-ext.W)/2, (a.size-ext.H)/2)
}

type seeder func(a *Automata, rng *core.RNG)

var seeders = map[string]seeder{
	"random":  seedRandom,
	"glider":  func(a *Automata, _ *core.RNG) { a.placeCentered(Glider) },
	"blinker": func(a *Automata, _ *core.RNG) { a.placeCentered(Blinker) },
	"block":   func(a *Automata, _ *core.RNG) { a.placeCentered(Block) },
	"mixed":   seedMixed,
	"classic": seedClassic,
}

// PatternNames lists the seeding patterns accepted by Config.Pattern.
func PatternNames() []string {
	names := make([]string, 0, len(seeders))
	for name := range seeders {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func seedRandom(a *Automata, rng *core.RNG) {
	for y := 0; y < a.size; y++ {
		for x := 0; x < a.size; x++ {
			if rng.Chance(a.cfg.Density) {
				_ = a.BirthCellAt(x, y)
			}
		}
	}
}

// seedMixed scatters a couple of gliders and blinkers over random noise.
func seedMixed(a *Automata, rng *core.RNG) {
	if a.size >= 10 {
		_ = a.Place(Glider, 5, 5)
		if a.size >= 20 {
			_ = a.Place(Glider, a.size-8, 5)
		}
		_ = a.Place(Blinker, a.size/4, a.size/4)
		if a.size >= 30 {
			_ = a.Place(Blinker, 3*a.size/4, 3*a.size/4)
		}
	}
	seedRandom(a, rng)
}

// seedClassic reproduces the fixed demo board: two sparks that grow into a
// long-lived burst.
func seedClassic(a *Automata, _ *core.RNG) {
	_ = a.Place(sparkA, 38, 39)
	_ = a.Place(sparkB, 69, 18)
}
