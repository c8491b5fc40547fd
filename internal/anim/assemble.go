// Package anim samples the day axis, composes keyframes and serializes them
// into a looping animation artifact.
package anim

import (
	"fmt"
	"math"

	"cardiogen/internal/culture"
	"cardiogen/internal/render"
	"cardiogen/pkg/core"
)

// Speed is the coarse playback setting exposed to callers.
type Speed string

const (
	SpeedSlow   Speed = "slow"
	SpeedMedium Speed = "medium"
	SpeedFast   Speed = "fast"
)

// DelayMS maps a speed setting onto the per-frame display duration in
// milliseconds. Unknown speeds fall back to medium.
func (s Speed) DelayMS() int {
	switch s {
	case SpeedSlow:
		return 500
	case SpeedFast:
		return 125
	default:
		return 250
	}
}

// secondsPerDay maps the 1-8 day axis onto a nominal 60-second timeline so
// beat phase stays continuous across the whole range.
const secondsPerDay = 60.0 / 7.0

// TimePoint converts a day value into the shared animation timeline.
func TimePoint(day float64) float64 {
	return (day - culture.MinDay) * secondsPerDay
}

// Keyframes returns the sampling policy for a day span: a fixed 12 frames
// for narrow ranges, proportional density otherwise.
func Keyframes(min, max float64) int {
	span := max - min
	if span <= 2 {
		return 12
	}
	return int(math.Round(16 * span / 7))
}

// Artifact is an ordered, uniformly timed, looping frame sequence. It is
// never mutated after Assemble returns it; a later Assemble call produces a
// replacement, not a merge.
type Artifact struct {
	Frames  []*render.Frame
	DelayMS int
	Loop    bool
}

// Assemble composes the keyframe set for the configured day range. The
// progress callback, when non-nil, fires once per finished frame with a
// monotonically increasing done count.
func Assemble(cfg culture.Config, speed Speed, progress func(done, total int)) (*Artifact, error) {
	if cfg.DayMax <= cfg.DayMin {
		return nil, fmt.Errorf("day range %.2f-%.2f: min must be below max", cfg.DayMin, cfg.DayMax)
	}

	total := Keyframes(cfg.DayMin, cfg.DayMax)
	if total <= 0 {
		return nil, fmt.Errorf("day range %.2f-%.2f yields no keyframes", cfg.DayMin, cfg.DayMax)
	}

	rng := core.NewRNG(cfg.Seed)
	interp := culture.NewInterpolator()

	art := &Artifact{
		Frames:  make([]*render.Frame, 0, total),
		DelayMS: speed.DelayMS(),
		Loop:    true,
	}
	for i, day := range linspace(cfg.DayMin, cfg.DayMax, total) {
		c := interp.At(day)
		frame := render.Compose(rng, c, day, TimePoint(day), cfg.Width, cfg.Height)
		art.Frames = append(art.Frames, frame)
		if progress != nil {
			progress(i+1, total)
		}
	}
	return art, nil
}

// linspace returns n evenly spaced values across [min, max] inclusive.
func linspace(min, max float64, n int) []float64 {
	out := make([]float64, n)
	if n == 1 {
		out[0] = min
		return out
	}
	step := (max - min) / float64(n-1)
	for i := range out {
		out[i] = min + step*float64(i)
	}
	out[n-1] = max
	return out
}
