package testutil

import (
	"math"
	"math/rand"

	"github.com/cwbudde/algo-ema/dsp/core"
)

// Constant returns a signal of length samples all equal to v.
func Constant[T core.Signed](v T, length int) []T {
	out := make([]T, length)
	for i := range out {
		out[i] = v
	}
	return out
}

// Step returns before zero samples followed by after samples of level.
func Step[T core.Signed](level T, before, after int) []T {
	out := make([]T, before+after)
	for i := before; i < len(out); i++ {
		out[i] = level
	}
	return out
}

// DeterministicNoise generates uniform integer noise in [lo, hi] with a
// fixed seed for reproducibility.
func DeterministicNoise[T core.Signed](seed int64, lo, hi T, length int) []T {
	out := make([]T, length)
	rng := rand.New(rand.NewSource(seed))
	span := int64(hi) - int64(lo) + 1
	for i := range out {
		out[i] = T(int64(lo) + rng.Int63n(span))
	}
	return out
}

// DeterministicSine generates round(offset + amplitude*sin(2πi/period)).
func DeterministicSine[T core.Signed](offset, amplitude, period float64, length int) []T {
	out := make([]T, length)
	step := 2 * math.Pi / period
	for i := range out {
		out[i] = T(math.Round(offset + amplitude*math.Sin(step*float64(i))))
	}
	return out
}

// ToFloat64 converts integer samples to float64.
func ToFloat64[T core.Signed](in []T) []float64 {
	out := make([]float64, len(in))
	for i, v := range in {
		out[i] = float64(v)
	}
	return out
}

// ReferenceEMA runs the ideal floating-point filter y += 2^-shift·(x - y)
// from y = 0.
func ReferenceEMA(input []float64, shift uint) []float64 {
	alpha := math.Ldexp(1, -int(shift))
	out := make([]float64, len(input))
	var y float64
	for i, x := range input {
		y += alpha * (x - y)
		out[i] = y
	}
	return out
}
