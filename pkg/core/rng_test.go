package core

import (
	"math"
	"testing"
)

func TestSeedDeterminism(t *testing.T) {
	a := NewRNG(42)
	b := NewRNG(42)
	for i := 0; i < 100; i++ {
		if a.Float64() != b.Float64() {
			t.Fatalf("draw %d diverged for identical seeds", i)
		}
	}
}

func TestChanceSaturation(t *testing.T) {
	r := NewRNG(1)
	for i := 0; i < 50; i++ {
		if r.Chance(0) {
			t.Fatal("Chance(0) returned true")
		}
		if !r.Chance(1) {
			t.Fatal("Chance(1) returned false")
		}
		if r.Chance(-0.5) {
			t.Fatal("negative probability returned true")
		}
		if !r.Chance(1.5) {
			t.Fatal("probability above 1 returned false")
		}
	}
}

func TestRangeBounds(t *testing.T) {
	r := NewRNG(7)
	for i := 0; i < 200; i++ {
		v := r.Range(-3, 5)
		if v < -3 || v >= 5 {
			t.Fatalf("Range(-3, 5) = %v", v)
		}
	}
	if v := r.Range(2, 2); v != 2 {
		t.Fatalf("degenerate range returned %v, want 2", v)
	}
}

func TestAngleBounds(t *testing.T) {
	r := NewRNG(13)
	for i := 0; i < 200; i++ {
		a := r.Angle()
		if a < 0 || a >= 2*math.Pi {
			t.Fatalf("Angle() = %v outside [0, 2π)", a)
		}
	}
}
