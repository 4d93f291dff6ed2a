package afterglow

import "strconv"

// Config controls the grid dimensions and how Reset seeds it.
type Config struct {
	Size int

	Seed    int64
	Density float64
	Pattern string
}

// DefaultConfig returns the standard configuration.
func DefaultConfig() Config {
	return Config{Size: 100, Seed: 42, Density: 0.2, Pattern: "random"}
}

// FromMap populates a Config from a string map (flag-style key/value pairs).
// Unparseable values keep their defaults. Any integer size is passed through
// so NewWithConfig can reject sizes below 1.
func FromMap(cfg map[string]string) Config {
	c := DefaultConfig()
	if cfg == nil {
		return c
	}
	if v, ok := cfg["size"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil {
			c.Size = parsed
		}
	}
	if v, ok := cfg["seed"]; ok {
		if parsed, err := strconv.ParseInt(v, 10, 64); err == nil {
			c.Seed = parsed
		}
	}
	if v, ok := cfg["density"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed >= 0 && parsed <= 1 {
			c.Density = parsed
		}
	}
	if v, ok := cfg["pattern"]; ok && v != "" {
		c.Pattern = v
	}
	return c
}
