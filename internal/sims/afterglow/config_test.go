package afterglow

import (
	"testing"

	"github.com/pkg/errors"

	"afterglow/internal/core"
)

func TestFromMap(t *testing.T) {
	c := FromMap(map[string]string{
		"size":    "64",
		"seed":    "-9",
		"density": "0.45",
		"pattern": "glider",
	})
	if c.Size != 64 || c.Seed != -9 || c.Density != 0.45 || c.Pattern != "glider" {
		t.Fatalf("unexpected config %+v", c)
	}

	bad := FromMap(map[string]string{
		"size":    "many",
		"seed":    "x",
		"density": "1.5",
		"pattern": "",
	})
	if bad != DefaultConfig() {
		t.Fatalf("invalid values should keep defaults, got %+v", bad)
	}
	if FromMap(nil) != DefaultConfig() {
		t.Fatal("nil map should yield defaults")
	}

	for _, size := range []string{"0", "-3"} {
		c := FromMap(map[string]string{"size": size})
		if c.Size == DefaultConfig().Size {
			t.Fatalf("size %s was replaced by the default", size)
		}
		if _, err := NewWithConfig(c); !errors.Is(err, ErrInvalidSize) {
			t.Fatalf("size %s: err=%v, want ErrInvalidSize", size, err)
		}
	}
}

func TestUnknownPatternRejected(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Pattern = "spaceship"
	if _, err := NewWithConfig(cfg); !errors.Is(err, ErrUnknownPattern) {
		t.Fatalf("err=%v, want ErrUnknownPattern", err)
	}
}

func TestPlaceIsAllOrNothing(t *testing.T) {
	a := newSeeded(t, 4)
	if err := a.Place(Glider, 2, 2); !errors.Is(err, ErrOutOfRange) {
		t.Fatalf("err=%v, want ErrOutOfRange", err)
	}
	if a.Population() != 0 || a.Pending() != 0 {
		t.Fatalf("partial placement: population=%d pending=%d", a.Population(), a.Pending())
	}
	if err := a.Place(Glider, 1, 1); err != nil {
		t.Fatal(err)
	}
	if a.Population() != len(Glider) {
		t.Fatalf("population=%d, want %d", a.Population(), len(Glider))
	}
}

func TestPatternExtent(t *testing.T) {
	if got := Glider.Extent(); got != (core.Size{W: 3, H: 3}) {
		t.Fatalf("glider extent %v", got)
	}
	if got := Block.Extent(); got != (core.Size{W: 2, H: 2}) {
		t.Fatalf("block extent %v", got)
	}
}

func TestEveryPatternSeeds(t *testing.T) {
	for _, name := range PatternNames() {
		cfg := DefaultConfig()
		cfg.Pattern = name
		a, err := NewWithConfig(cfg)
		if err != nil {
			t.Fatalf("%s: %v", name, err)
		}
		a.Reset(1)
		if a.Population() == 0 {
			t.Fatalf("pattern %q seeded nothing on a %dx%d grid", name, cfg.Size, cfg.Size)
		}
		if a.Pending() != a.Population() {
			t.Fatalf("pattern %q: pending=%d population=%d", name, a.Pending(), a.Population())
		}
	}
}

func TestRegistryBuildsAutomata(t *testing.T) {
	factory, ok := core.Sims()["afterglow"]
	if !ok {
		t.Fatal("afterglow is not registered")
	}
	sim, err := factory(map[string]string{"size": "8"})
	if err != nil {
		t.Fatal(err)
	}
	if sim.Name() != "afterglow" || sim.Size() != (core.Size{W: 8, H: 8}) {
		t.Fatalf("unexpected sim %s %v", sim.Name(), sim.Size())
	}
	if _, ok := sim.(core.Redrawer); !ok {
		t.Fatal("automata should support full redraws")
	}
	if _, err := factory(map[string]string{"pattern": "nope"}); err == nil {
		t.Fatal("expected an error for an unknown pattern")
	}
	if sim, err := factory(map[string]string{"size": "0"}); !errors.Is(err, ErrInvalidSize) {
		t.Fatalf("size 0 built %v with err=%v, want ErrInvalidSize", sim, err)
	}
}

func TestParametersSnapshot(t *testing.T) {
	a := newSeeded(t, 6, core.Point{X: 1, Y: 1})
	snap := a.Parameters()
	values := map[string]string{}
	for _, g := range snap.Groups {
		for _, p := range g.Params {
			values[p.Key] = p.Value
		}
	}
	want := map[string]string{
		"size":       "6",
		"trail_max":  "10",
		"generation": "0",
		"population": "1",
		"pending":    "1",
		"pattern":    "random",
	}
	for k, v := range want {
		if values[k] != v {
			t.Fatalf("parameter %s=%q, want %q", k, values[k], v)
		}
	}
}
