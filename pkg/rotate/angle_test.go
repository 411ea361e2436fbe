package rotate

import (
	"math"
	"testing"
)

func TestNormalizeRange(t *testing.T) {
	inputs := []float64{
		0, 1, 359.5, 360, 361, 720, -1, -360, -361, -0.25,
		1e-12, -1e-12, 12345.678, -98765.4321, 1e9, -1e9, 1e300, -1e300,
	}
	for _, in := range inputs {
		got := Normalize(in)
		if got < 0 || got >= 360 {
			t.Fatalf("Normalize(%v) = %v, want value in [0, 360)", in, got)
		}
		if again := Normalize(got); again != got {
			t.Fatalf("Normalize(Normalize(%v)) = %v, want %v", in, again, got)
		}
	}
}

func TestNormalizeValues(t *testing.T) {
	cases := []struct {
		in, want float64
	}{
		{0, 0},
		{90, 90},
		{360, 0},
		{370, 10},
		{-10, 350},
		{-370, 350},
		{1080, 0},
		{-720, 0},
		{45.5, 45.5},
	}
	for _, tc := range cases {
		if got := Normalize(tc.in); got != tc.want {
			t.Errorf("Normalize(%v) = %v, want %v", tc.in, got, tc.want)
		}
	}
}

func TestNormalizeNoNegativeZero(t *testing.T) {
	got := Normalize(-360)
	if math.Signbit(got) {
		t.Fatalf("Normalize(-360) = %v, want +0", got)
	}
}

func TestNormalizeNonFinite(t *testing.T) {
	if got := Normalize(math.Inf(1)); !math.IsInf(got, 1) {
		t.Errorf("Normalize(+Inf) = %v, want +Inf", got)
	}
	if got := Normalize(math.NaN()); !math.IsNaN(got) {
		t.Errorf("Normalize(NaN) = %v, want NaN", got)
	}
}

func TestSnapTruncates(t *testing.T) {
	cases := []struct {
		angle float64
		step  int
		want  float64
	}{
		{37, 15, 30},
		{44, 15, 30},
		{44.99, 15, 30},
		{45, 15, 45},
		{14.9, 15, 0},
		{359.9, 15, 345},
		{100, 90, 90},
		{123.4, 0, 123.4},
		{123.4, -5, 123.4},
	}
	for _, tc := range cases {
		if got := Snap(tc.angle, tc.step); got != tc.want {
			t.Errorf("Snap(%v, %d) = %v, want %v", tc.angle, tc.step, got, tc.want)
		}
	}
}

func TestRadiansDegrees(t *testing.T) {
	if got := Radians(180); got != math.Pi {
		t.Errorf("Radians(180) = %v, want π", got)
	}
	if got := Degrees(math.Pi / 2); math.Abs(got-90) > 1e-12 {
		t.Errorf("Degrees(π/2) = %v, want 90", got)
	}
}
