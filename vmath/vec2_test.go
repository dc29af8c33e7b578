package vmath

import (
	"math"
	"testing"
)

func TestV2Normalize(t *testing.T) {
	tests := []struct {
		name string
		in   Vec2
		want Vec2
	}{
		{"unit x", V2(3, 0), V2(1, 0)},
		{"diagonal", V2(3, 4), V2(0.6, 0.8)},
		{"zero", V2(0, 0), V2(0, 0)},
		{"nan", V2(math.NaN(), 1), V2(0, 0)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := V2Normalize(tt.in)
			if math.Abs(got.X-tt.want.X) > 1e-12 || math.Abs(got.Y-tt.want.Y) > 1e-12 {
				t.Errorf("V2Normalize(%v) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestCellOfTruncatesTowardZero(t *testing.T) {
	tests := []struct {
		in   Vec2
		want Cell
	}{
		{V2(3.9, 2.1), Cell{3, 2}},
		{V2(-3.9, -0.5), Cell{-3, 0}},
		{V2(0, 0), Cell{0, 0}},
	}
	for _, tt := range tests {
		if got := CellOf(tt.in); got != tt.want {
			t.Errorf("CellOf(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestSignedAngle(t *testing.T) {
	if got := SignedAngle(V2(1, 0), V2(0, 1)); math.Abs(got-math.Pi/2) > 1e-12 {
		t.Errorf("ccw quarter turn = %v", got)
	}
	if got := SignedAngle(V2(1, 0), V2(0, -1)); math.Abs(got+math.Pi/2) > 1e-12 {
		t.Errorf("cw quarter turn = %v", got)
	}
	if got := SignedAngle(V2(1, 0), V2(0, 0)); got != 0 {
		t.Errorf("zero target = %v", got)
	}
}

func TestWrapAngle(t *testing.T) {
	for _, a := range []float64{0, 1, -1, math.Pi, 3 * math.Pi, -7.5, 100} {
		w := WrapAngle(a)
		if w <= -math.Pi || w > math.Pi {
			t.Errorf("WrapAngle(%v) = %v out of range", a, w)
		}
		if d := math.Mod(math.Abs(w-a), Tau); d > 1e-9 && Tau-d > 1e-9 {
			t.Errorf("WrapAngle(%v) = %v not congruent", a, w)
		}
	}
	if WrapAngle(math.NaN()) != 0 {
		t.Error("NaN should wrap to 0")
	}
}

func TestFastRandDeterministic(t *testing.T) {
	a := NewFastRand(42)
	b := NewFastRand(42)
	for i := 0; i < 100; i++ {
		if a.Next() != b.Next() {
			t.Fatalf("sequence diverged at %d", i)
		}
	}
}

func TestFastRandRange(t *testing.T) {
	r := NewFastRand(7)
	for i := 0; i < 10000; i++ {
		f := r.Float64()
		if f < 0 || f >= 1 {
			t.Fatalf("Float64 out of range: %v", f)
		}
		v := r.Range(5, 10)
		if v < 5 || v >= 10 {
			t.Fatalf("Range out of bounds: %v", v)
		}
		n := r.IntRange(9, 90)
		if n < 9 || n >= 90 {
			t.Fatalf("IntRange out of bounds: %v", n)
		}
	}
	if r.Range(3, 3) != 3 || r.Range(4, 1) != 4 {
		t.Error("empty range should return lo")
	}
}
