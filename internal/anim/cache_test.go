package anim

import (
	"testing"

	"cardiogen/internal/culture"
	"cardiogen/pkg/core"
)

func TestPreviewKeySnapsToHalfDays(t *testing.T) {
	cases := []struct{ in, want float64 }{
		{1.0, 1.0},
		{1.2, 1.0},
		{1.3, 1.5},
		{1.5, 1.5},
		{1.74, 1.5},
		{1.76, 2.0},
		{8.0, 8.0},
	}
	for _, tc := range cases {
		if got := PreviewKey(tc.in); got != tc.want {
			t.Fatalf("PreviewKey(%.2f) = %.2f, want %.2f", tc.in, got, tc.want)
		}
	}
}

func TestPreviewComposesOnceAndCaches(t *testing.T) {
	cache := NewCache()
	rng := core.NewRNG(5)
	interp := culture.NewInterpolator()

	first := cache.Preview(rng, interp, 3.4, 120, 90)
	if first == nil {
		t.Fatal("nil preview frame")
	}
	if cache.Len() != 1 {
		t.Fatalf("cache holds %d frames, want 1", cache.Len())
	}

	// 3.6 rounds to the same half-day key as 3.4.
	second := cache.Preview(rng, interp, 3.6, 120, 90)
	if second != first {
		t.Fatal("same preview key must return the cached frame")
	}
	if cache.Len() != 1 {
		t.Fatalf("cache grew to %d on a hit", cache.Len())
	}

	third := cache.Preview(rng, interp, 4.0, 120, 90)
	if third == first {
		t.Fatal("distinct preview keys must not share a frame")
	}
	if cache.Len() != 2 {
		t.Fatalf("cache holds %d frames, want 2", cache.Len())
	}
}
