package anim

import (
	"testing"

	"cardiogen/internal/culture"
)

func TestKeyframePolicy(t *testing.T) {
	cases := []struct {
		min, max float64
		want     int
	}{
		{1, 8, 16}, // proportional branch: round(16*7/7)
		{1, 3, 12}, // short-range branch
		{6, 8, 12},
		{3, 6, 7}, // round(16*3/7)
		{1, 4, 7},
	}
	for _, tc := range cases {
		if got := Keyframes(tc.min, tc.max); got != tc.want {
			t.Fatalf("Keyframes(%.0f, %.0f) = %d, want %d", tc.min, tc.max, got, tc.want)
		}
	}
}

func TestTimePointMapping(t *testing.T) {
	if got := TimePoint(1); got != 0 {
		t.Fatalf("TimePoint(1) = %.4f, want 0", got)
	}
	if got, want := TimePoint(8), 60.0; got != want {
		t.Fatalf("TimePoint(8) = %.4f, want %.4f", got, want)
	}
}

func TestAssembleFullRange(t *testing.T) {
	cfg := culture.DefaultConfig()
	cfg.Width = 120
	cfg.Height = 90
	cfg.Seed = 42

	var calls []int
	art, err := Assemble(cfg, SpeedMedium, func(done, total int) {
		if total != 16 {
			t.Fatalf("progress total = %d, want 16", total)
		}
		calls = append(calls, done)
	})
	if err != nil {
		t.Fatalf("Assemble: %v", err)
	}

	if len(art.Frames) != 16 {
		t.Fatalf("frames = %d, want 16", len(art.Frames))
	}
	if art.DelayMS != 250 {
		t.Fatalf("delay = %dms, want 250", art.DelayMS)
	}
	if !art.Loop {
		t.Fatal("artifact must loop")
	}

	if len(calls) != 16 {
		t.Fatalf("progress fired %d times, want 16", len(calls))
	}
	for i, done := range calls {
		if done != i+1 {
			t.Fatalf("progress call %d reported done=%d, want %d", i, done, i+1)
		}
	}

	first := art.Frames[0]
	last := art.Frames[len(art.Frames)-1]
	if first.Day != cfg.DayMin || last.Day != cfg.DayMax {
		t.Fatalf("frame days span %.2f-%.2f, want %.2f-%.2f", first.Day, last.Day, cfg.DayMin, cfg.DayMax)
	}
	for i := 1; i < len(art.Frames); i++ {
		if art.Frames[i].Day <= art.Frames[i-1].Day {
			t.Fatalf("frame days not increasing at %d: %.3f then %.3f", i, art.Frames[i-1].Day, art.Frames[i].Day)
		}
	}
}

func TestAssembleShortRangeUsesDenseSampling(t *testing.T) {
	cfg := culture.DefaultConfig()
	cfg.Width = 80
	cfg.Height = 60
	cfg.DayMin = 1
	cfg.DayMax = 3

	art, err := Assemble(cfg, SpeedFast, nil)
	if err != nil {
		t.Fatalf("Assemble: %v", err)
	}
	if len(art.Frames) != 12 {
		t.Fatalf("frames = %d, want 12", len(art.Frames))
	}
	if art.DelayMS != 125 {
		t.Fatalf("delay = %dms, want 125", art.DelayMS)
	}
}

func TestAssembleRejectsMalformedRange(t *testing.T) {
	cfg := culture.DefaultConfig()
	cfg.DayMin = 5
	cfg.DayMax = 5
	if _, err := Assemble(cfg, SpeedSlow, nil); err == nil {
		t.Fatal("expected error for min == max")
	}

	cfg.DayMax = 2
	if _, err := Assemble(cfg, SpeedSlow, nil); err == nil {
		t.Fatal("expected error for min > max")
	}
}

func TestSpeedDelays(t *testing.T) {
	if SpeedSlow.DelayMS() != 500 || SpeedMedium.DelayMS() != 250 || SpeedFast.DelayMS() != 125 {
		t.Fatalf("speed map = %d/%d/%d, want 500/250/125",
			SpeedSlow.DelayMS(), SpeedMedium.DelayMS(), SpeedFast.DelayMS())
	}
	if Speed("warp").DelayMS() != 250 {
		t.Fatal("unknown speed must fall back to medium")
	}
}

func TestLinspaceEndpointsInclusive(t *testing.T) {
	vals := linspace(2, 5, 7)
	if len(vals) != 7 {
		t.Fatalf("len = %d, want 7", len(vals))
	}
	if vals[0] != 2 || vals[6] != 5 {
		t.Fatalf("endpoints %.3f, %.3f, want 2 and 5", vals[0], vals[6])
	}
}
