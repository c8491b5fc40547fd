package render

import (
	"image/color"
	"math"

	"cardiogen/internal/culture"
	"cardiogen/pkg/core"
)

// debrisPerLevel scales DebrisLevel onto a particle count.
const debrisPerLevel = 80

// DebrisCount returns the number of debris particles for a record.
func DebrisCount(c culture.Characteristics) int {
	return int(math.Round(c.DebrisLevel * debrisPerLevel))
}

// RenderDebris scatters small particles over the whole canvas. Color and
// opacity switch in two buckets at DebrisLevel 0.5: faint gray below,
// reddish-brown above. A damage signal, not a gradient.
func RenderDebris(rng *core.RNG, f *Frame, c culture.Characteristics) {
	count := DebrisCount(c)
	if count == 0 {
		return
	}

	tint := color.RGBA{R: 180, G: 180, B: 180, A: 80}
	if c.DebrisLevel >= 0.5 {
		tint = color.RGBA{R: 160, G: 100, B: 100, A: 100}
	}

	w, h := f.Size()
	for i := 0; i < count; i++ {
		x := rng.Float64() * float64(w)
		y := rng.Float64() * float64(h)
		size := 1 + rng.Float64()*3
		fillEllipse(f.Img, x, y, size, size, tint)
	}
}
