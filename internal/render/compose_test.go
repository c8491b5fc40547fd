package render

import (
	"bytes"
	"math"
	"testing"

	"cardiogen/internal/culture"
	"cardiogen/pkg/core"
)

func TestBeatPulseRange(t *testing.T) {
	for day := 1; day <= 8; day++ {
		c := culture.Anchor(day)
		for tp := 0.0; tp < 60; tp += 0.37 {
			pulse := BeatPulse(c, tp)
			if pulse < 0 || pulse > 1 {
				t.Fatalf("day %d t=%.2f: pulse %.4f outside [0, 1]", day, tp, pulse)
			}
		}
	}
}

func TestBeatPulseFrequencyTracksStrength(t *testing.T) {
	weak := culture.Characteristics{BeatingStrength: 0.1}
	strong := culture.Characteristics{BeatingStrength: 1.0}

	period := func(c culture.Characteristics) float64 {
		return 1 / (1 + c.BeatingStrength)
	}
	if period(strong) >= period(weak) {
		t.Fatal("stronger beating must shorten the beat period")
	}
	// One full period later the pulse repeats.
	c := strong
	p := period(c)
	if d := math.Abs(BeatPulse(c, 0.3) - BeatPulse(c, 0.3+p)); d > 1e-9 {
		t.Fatalf("pulse not periodic over one beat: delta %.12f", d)
	}
}

func TestComposeCoversFullDayRange(t *testing.T) {
	interp := culture.NewInterpolator()
	rng := core.NewRNG(5)
	for day := 1.0; day <= 8.0; day += 0.5 {
		c := interp.At(day)
		f := Compose(rng, c, day, (day-1)*60/7, 400, 300)
		w, h := f.Size()
		if w != 400 || h != 300 {
			t.Fatalf("day %.1f: frame %dx%d, want 400x300", day, w, h)
		}
		if f.Day != day {
			t.Fatalf("frame day label %.2f, want %.2f", f.Day, day)
		}
		if f.Title != c.Title {
			t.Fatalf("frame title %q, want %q", f.Title, c.Title)
		}
	}
}

func TestComposeDeterministicForSeed(t *testing.T) {
	c := culture.NewInterpolator().At(4.5)
	a := Compose(core.NewRNG(123), c, 4.5, 30, 200, 150)
	b := Compose(core.NewRNG(123), c, 4.5, 30, 200, 150)
	if !bytes.Equal(a.Img.Pix, b.Img.Pix) {
		t.Fatal("same seed and inputs must produce identical pixels")
	}
}

func TestComposeDrawsOverlayStrip(t *testing.T) {
	c := culture.NewInterpolator().At(2)
	f := Compose(core.NewRNG(3), c, 2, 0, 400, 300)
	r, g, b, _ := f.Img.At(12, 12).RGBA()
	if r>>8 == 255 && g>>8 == 255 && b>>8 == 255 {
		t.Fatal("overlay strip area still pure white")
	}
}

func TestComposeTinyCanvas(t *testing.T) {
	c := culture.NewInterpolator().At(7.25)
	f := Compose(core.NewRNG(9), c, 7.25, 50, 40, 30)
	if w, h := f.Size(); w != 40 || h != 30 {
		t.Fatalf("frame %dx%d, want 40x30", w, h)
	}
}
