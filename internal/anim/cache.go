package anim

import (
	"math"

	"cardiogen/internal/culture"
	"cardiogen/internal/render"
	"cardiogen/pkg/core"
)

// Cache holds previously composed preview frames for the life of a session.
// Entries are never evicted. Owned by the caller and passed into the preview
// entry point explicitly; there is no ambient cache state.
type Cache struct {
	frames map[float64]*render.Frame
}

// NewCache returns an empty preview cache.
func NewCache() *Cache {
	return &Cache{frames: make(map[float64]*render.Frame)}
}

// Len reports the number of cached frames.
func (c *Cache) Len() int { return len(c.frames) }

// PreviewKey snaps a day value to the nearest half day, the granularity
// previews are cached at.
func PreviewKey(day float64) float64 {
	return math.Round(day*2) / 2
}

// Preview returns a single frame for the day's preview key, composing it on
// the first request and serving the cached frame afterwards. Cached frames
// are read-only.
func (c *Cache) Preview(rng *core.RNG, interp *culture.Interpolator, day float64, w, h int) *render.Frame {
	key := PreviewKey(day)
	if f, ok := c.frames[key]; ok {
		return f
	}
	traits := interp.At(key)
	f := render.Compose(rng, traits, key, TimePoint(key), w, h)
	c.frames[key] = f
	return f
}
