package culture

import "math"

// Interpolator derives the characteristics for any fractional day by linear
// interpolation between the bracketing anchors. Continuous fields blend;
// Title and Shape are copied from the floor anchor, so they step at integer
// day boundaries while everything else changes smoothly. That asymmetry is
// deliberate and matches the authored stage transitions.
//
// Results are memoized by day key. An Interpolator is not safe for
// concurrent use; the whole pipeline runs on one goroutine.
type Interpolator struct {
	memo map[float64]Characteristics
}

// NewInterpolator returns an empty, memoizing interpolator.
func NewInterpolator() *Interpolator {
	return &Interpolator{memo: make(map[float64]Characteristics)}
}

// At returns the characteristics for the given day. Days at or above MaxDay
// return the day-8 anchor verbatim; days below MinDay clamp to the day-1
// anchor rather than extrapolating.
func (it *Interpolator) At(day float64) Characteristics {
	if c, ok := it.memo[day]; ok {
		return c
	}
	c := interpolate(day)
	it.memo[day] = c
	return c
}

func interpolate(day float64) Characteristics {
	if day <= MinDay {
		return anchors[0]
	}
	if day >= MaxDay {
		return anchors[MaxDay-1]
	}

	floor := int(day)
	ceil := floor + 1
	if ceil > MaxDay {
		ceil = MaxDay
	}
	t := day - float64(floor)

	lo := anchors[floor-1]
	hi := anchors[ceil-1]

	c := Characteristics{
		Title:                 lo.Title,
		Shape:                 lo.Shape,
		Elongation:            lerp(lo.Elongation, hi.Elongation, t),
		Alignment:             lerp(lo.Alignment, hi.Alignment, t),
		Connection:            lerp(lo.Connection, hi.Connection, t),
		SarcomereOrganization: lerp(lo.SarcomereOrganization, hi.SarcomereOrganization, t),
		BeatingStrength:       lerp(lo.BeatingStrength, hi.BeatingStrength, t),
		BeatingSync:           lerp(lo.BeatingSync, hi.BeatingSync, t),
		NucleusSize:           lerp(lo.NucleusSize, hi.NucleusSize, t),
		DebrisLevel:           lerp(lo.DebrisLevel, hi.DebrisLevel, t),
		CellClustering:        lerp(lo.CellClustering, hi.CellClustering, t),
		ColorBase: RGB{
			R: lerpChannel(lo.ColorBase.R, hi.ColorBase.R, t),
			G: lerpChannel(lo.ColorBase.G, hi.ColorBase.G, t),
			B: lerpChannel(lo.ColorBase.B, hi.ColorBase.B, t),
		},
	}
	c.CellCount = int(math.Round(lerp(float64(lo.CellCount), float64(hi.CellCount), t)))
	return c
}

func lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}

// lerpChannel blends a color channel and truncates toward zero, the same
// rounding the authored table was tuned against.
func lerpChannel(a, b uint8, t float64) uint8 {
	return uint8(float64(a) + (float64(b)-float64(a))*t)
}
