package culture

import "strconv"

// Config controls frame dimensions and the day range to render.
type Config struct {
	Width  int
	Height int

	Seed int64

	DayMin float64
	DayMax float64
}

// DefaultConfig returns the standard configuration.
func DefaultConfig() Config {
	return Config{
		Width:  400,
		Height: 300,
		Seed:   1337,
		DayMin: MinDay,
		DayMax: MaxDay,
	}
}

// FromMap populates the config from a string map (flag-style key/value pairs).
func FromMap(cfg map[string]string) Config {
	c := DefaultConfig()
	if cfg == nil {
		return c
	}
	if v, ok := cfg["w"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Width = parsed
		}
	}
	if v, ok := cfg["h"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Height = parsed
		}
	}
	if v, ok := cfg["seed"]; ok {
		if parsed, err := strconv.ParseInt(v, 10, 64); err == nil {
			c.Seed = parsed
		}
	}
	if v, ok := cfg["day_min"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed >= MinDay {
			c.DayMin = parsed
		}
	}
	if v, ok := cfg["day_max"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed <= MaxDay {
			c.DayMax = parsed
		}
	}
	if c.DayMax < c.DayMin {
		c.DayMax = c.DayMin
	}
	return c
}
