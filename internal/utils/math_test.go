package utils

import (
	"math"
	"testing"
)

func TestNormalizeDegrees(t *testing.T) {
	cases := []struct {
		in, want float64
	}{
		{0, 0},
		{359.5, 359.5},
		{360, 0},
		{720, 0},
		{370, 10},
		{-10, 350},
		{-360, 0},
		{-725, 355},
		{-1e-18, 0},
	}
	for _, c := range cases {
		got := NormalizeDegrees(c.in)
		if math.Abs(got-c.want) > 1e-9 {
			t.Errorf("NormalizeDegrees(%v) = %v, want %v", c.in, got, c.want)
		}
		if got < 0 || got >= 360 {
			t.Errorf("NormalizeDegrees(%v) = %v out of [0,360)", c.in, got)
		}
	}
}

func TestAngularSeparation(t *testing.T) {
	cases := []struct {
		a, b, want float64
	}{
		{10, 15, 5},
		{10, 200, 170},
		{350, 10, 20},
		{-10, 10, 20},
		{0, 180, 180},
		{90, 90, 0},
	}
	for _, c := range cases {
		if got := AngularSeparation(c.a, c.b); math.Abs(got-c.want) > 1e-9 {
			t.Errorf("AngularSeparation(%v, %v) = %v, want %v", c.a, c.b, got, c.want)
		}
		if AngularSeparation(c.a, c.b) != AngularSeparation(c.b, c.a) {
			t.Errorf("AngularSeparation not symmetric for %v, %v", c.a, c.b)
		}
	}
}

func TestPRNGRangeIsSeededAndBounded(t *testing.T) {
	a := NewPRNGService(42)
	b := NewPRNGService(42)
	for i := 0; i < 100; i++ {
		x, y := a.Range(0.4, 1.6), b.Range(0.4, 1.6)
		if x != y {
			t.Fatalf("same seed diverged at %d: %v != %v", i, x, y)
		}
		if x < 0.4 || x >= 1.6 {
			t.Fatalf("Range out of bounds: %v", x)
		}
	}
	if got := a.Range(2, 1); got != 2 {
		t.Errorf("empty range should return lo, got %v", got)
	}
}
