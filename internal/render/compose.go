package render

import (
	"image/color"
	"math"

	"cardiogen/internal/culture"
	"cardiogen/pkg/core"
)

const connectionAlpha = 120

// BeatPulse returns the half-sine pulse scalar in [0, 1] for a point on the
// animation timeline. Beat frequency rises with beating strength, so mature
// cultures pulse faster.
func BeatPulse(c culture.Characteristics, timePoint float64) float64 {
	frequency := 1.0 + c.BeatingStrength
	phase := math.Mod(timePoint*frequency, 1.0)
	return math.Sin(phase * math.Pi)
}

// Compose builds one finished frame for a characteristic record at a point
// on the animation timeline: blank canvas, cluster layout, connection lines,
// cell morphology, debris, label overlay. Stochastic detail comes from the
// provided RNG; deterministic structure from the record.
func Compose(rng *core.RNG, c culture.Characteristics, day, timePoint float64, w, h int) *Frame {
	f := NewFrame(w, h, color.RGBA{R: 255, G: 255, B: 255, A: 255})
	f.Day = day
	f.Title = c.Title

	layout := Layout(rng, c, w, h)

	conn := color.RGBA{R: c.ColorBase.R, G: c.ColorBase.G, B: c.ColorBase.B, A: connectionAlpha}
	for _, e := range layout.Edges {
		a := layout.Centers[e.A]
		b := layout.Centers[e.B]
		drawLine(f.Img, a.X, a.Y, b.X, b.Y, 2, conn)
	}

	pulse := BeatPulse(c, timePoint)
	RenderCells(rng, f, c, layout, pulse)
	RenderDebris(rng, f, c)
	drawOverlay(f)
	return f
}
