package ema

import (
	"math"
	"math/cmplx"

	"github.com/cwbudde/algo-ema/dsp/core"
)

// Alpha returns the smoothing factor 2^-K.
func (f *Filter[T]) Alpha() float64 {
	return math.Ldexp(1, -int(f.shift))
}

// Response computes the complex frequency response of the ideal filter
// at the given frequency (Hz) and sample rate (Hz):
//
//	H(e^jw) = α / (1 - (1-α) e^-jw)
func (f *Filter[T]) Response(freqHz, sampleRate float64) complex128 {
	w := 2 * math.Pi * freqHz / sampleRate
	a := f.Alpha()
	return complex(a, 0) / (1 - complex(1-a, 0)*cmplx.Exp(complex(0, -w)))
}

// MagnitudeDB returns the magnitude response in dB at the given frequency.
func (f *Filter[T]) MagnitudeDB(freqHz, sampleRate float64) float64 {
	return core.LinearToDB(cmplx.Abs(f.Response(freqHz, sampleRate)))
}

// CutoffHz returns the -3 dB frequency for the given sample rate.
//
//	fc = fs/(2π) · acos((α² + 2α - 2) / (2α - 2))
func (f *Filter[T]) CutoffHz(sampleRate float64) float64 {
	a := f.Alpha()
	return sampleRate / (2 * math.Pi) * math.Acos((a*a+2*a-2)/(2*a-2))
}

// SettlingSteps feeds a constant level into a zero-state copy of the filter
// and returns the 1-based step at which the output first equals level.
// It reports false when that does not happen within limit steps. The
// receiver's state is left untouched.
func (f *Filter[T]) SettlingSteps(level T, limit int) (int, bool) {
	probe := newFilter[T](f.shift)
	for i := 1; i <= limit; i++ {
		if probe.ProcessSample(level) == level {
			return i, true
		}
	}
	return 0, false
}
