package testutil

import (
	"fmt"
	"math"
	"testing"

	"github.com/cwbudde/algo-vecmath"

	"github.com/cwbudde/algo-ema/dsp/core"
)

// RequireSamplesEqual fails t if got and want differ in length or in any
// sample.
func RequireSamplesEqual[T core.Signed](t *testing.T, got, want []T) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("length mismatch: got %d, want %d", len(got), len(want))
	}
	for i := range got {
		if got[i] != want[i] {
			t.Fatalf("index %d: got %d, want %d", i, got[i], want[i])
		}
	}
}

// RequireWithinLSB fails t if any fixed-point sample in got is further
// than lsb from the floating-point value in want.
func RequireWithinLSB[T core.Signed](t *testing.T, got []T, want []float64, lsb float64) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("length mismatch: got %d, want %d", len(got), len(want))
	}
	diff := difference(ToFloat64(got), want)
	for i, d := range diff {
		if math.Abs(d) > lsb {
			t.Fatalf("index %d: got %d, want %v (diff %v > %v LSB)", i, got[i], want[i], math.Abs(d), lsb)
		}
	}
}

// difference returns a - b. Both slices must have the same length.
func difference(a, b []float64) []float64 {
	diff := make([]float64, len(b))
	vecmath.ScaleBlock(diff, b, -1)
	vecmath.AddBlockInPlace(diff, a)
	return diff
}

// MaxAbsDiff returns the largest |a[i] - b[i]|.
// Returns an error if the slices differ in length.
func MaxAbsDiff(a, b []float64) (float64, error) {
	if len(a) != len(b) {
		return 0, fmt.Errorf("length mismatch: %d vs %d", len(a), len(b))
	}
	var peak float64
	for _, d := range difference(a, b) {
		peak = math.Max(peak, math.Abs(d))
	}
	return peak, nil
}

// RMSDiff returns the root-mean-square difference between two slices.
// Returns an error if the slices differ in length. Empty slices yield 0.
func RMSDiff(a, b []float64) (float64, error) {
	if len(a) != len(b) {
		return 0, fmt.Errorf("length mismatch: %d vs %d", len(a), len(b))
	}
	if len(a) == 0 {
		return 0, nil
	}

	diff := difference(a, b)
	vecmath.MulBlockInPlace(diff, diff)

	var sum float64
	for _, sq := range diff {
		sum += sq
	}
	return math.Sqrt(sum / float64(len(diff))), nil
}
