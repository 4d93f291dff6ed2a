package app

import (
	"encoding/json"
	"flag"
	"os"
	"strconv"

	"github.com/pkg/errors"

	"afterglow/internal/core"
)

// Host modes.
const (
	ModeWindow   = "window"
	ModeTerminal = "term"
	ModeHeadless = "headless"
)

// Config represents the command-line parameters for the application. Every
// field can also be set from a JSON file passed with -config.
type Config struct {
	Sim     string  `json:"sim"`
	Mode    string  `json:"mode"`
	Size    int     `json:"size"`
	Window  int     `json:"window"`
	TPS     int     `json:"tps"`
	Seed    int64   `json:"seed"`
	Density float64 `json:"density"`
	Pattern string  `json:"pattern"`
	HUD     bool    `json:"hud"`

	Steps int    `json:"steps"`
	Out   string `json:"out"`

	ConfigPath string `json:"-"`
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	return &Config{
		Sim:     "afterglow",
		Mode:    ModeWindow,
		Size:    100,
		Window:  500,
		TPS:     60,
		Seed:    42,
		Density: 0.2,
		Pattern: "random",
		HUD:     true,
		Steps:   100,
		Out:     "afterglow.png",
	}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.StringVar(&c.Sim, "sim", c.Sim, "simulation to run")
	fs.StringVar(&c.Mode, "mode", c.Mode, "host mode: window, term or headless")
	fs.IntVar(&c.Size, "size", c.Size, "grid size in cells per side")
	fs.IntVar(&c.Window, "window", c.Window, "window size in pixels (window and headless modes)")
	fs.IntVar(&c.TPS, "tps", c.TPS, "generations per second")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "seed for the initial population")
	fs.Float64Var(&c.Density, "density", c.Density, "initial live-cell density for the random pattern")
	fs.StringVar(&c.Pattern, "pattern", c.Pattern, "seeding pattern")
	fs.BoolVar(&c.HUD, "hud", c.HUD, "show the stats overlay")
	fs.IntVar(&c.Steps, "steps", c.Steps, "generations to run in headless mode")
	fs.StringVar(&c.Out, "out", c.Out, "PNG written by headless mode")
	fs.StringVar(&c.ConfigPath, "config", c.ConfigPath, "optional JSON config file")
}

// LoadConfig overlays the JSON file at filename onto c.
func LoadConfig(filename string, c *Config) error {
	data, err := os.ReadFile(filename)
	if err != nil {
		return errors.Wrapf(err, "[LoadConfig] failed to read file: %+v", filename)
	}
	if err = json.Unmarshal(data, c); err != nil {
		return errors.Wrapf(err, "[LoadConfig] failed to unmarshal data from file: %+v", filename)
	}
	return nil
}

// Validate rejects settings no host mode can run with.
func (c *Config) Validate() error {
	switch c.Mode {
	case ModeWindow, ModeTerminal, ModeHeadless:
	default:
		return errors.Errorf("[Validate] unknown mode %q", c.Mode)
	}
	if c.Size < 1 {
		return errors.Errorf("[Validate] size must be positive, got %d", c.Size)
	}
	if c.Window < 1 {
		return errors.Errorf("[Validate] window must be positive, got %d", c.Window)
	}
	if c.Density < 0 || c.Density > 1 {
		return errors.Errorf("[Validate] density must be within [0, 1], got %g", c.Density)
	}
	if c.Mode == ModeHeadless && c.Steps < 0 {
		return errors.Errorf("[Validate] steps must not be negative, got %d", c.Steps)
	}
	return nil
}

// SimOptions renders the sim-specific settings as a factory config map.
func (c *Config) SimOptions() map[string]string {
	return map[string]string{
		"size":    strconv.Itoa(c.Size),
		"seed":    strconv.FormatInt(c.Seed, 10),
		"density": strconv.FormatFloat(c.Density, 'f', -1, 64),
		"pattern": c.Pattern,
	}
}

// NewSim builds the configured simulation from the registry.
func NewSim(c *Config) (core.Sim, error) {
	factory, ok := core.Sims()[c.Sim]
	if !ok {
		return nil, errors.Errorf("[NewSim] unknown sim %q", c.Sim)
	}
	sim, err := factory(c.SimOptions())
	if err != nil {
		return nil, errors.Wrapf(err, "[NewSim] failed to build %q", c.Sim)
	}
	return sim, nil
}
