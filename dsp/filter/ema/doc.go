// Package ema provides a single-pole exponential moving average (EMA)
// low-pass filter on fixed-point integers.
//
// A [Filter] implements the difference equation
//
//	y[n] = α·x[n] + (1-α)·y[n-1],  α = 2^-K
//
// with a power-of-two pole location, so processing needs only shifts,
// additions and subtractions. No division or floating point is used on the
// sample path. The accumulator keeps 2K extra fractional bits, and each
// output is rounded half up back to the input scale.
//
// The shift K and the integer type T are fixed when the filter is built:
//
//	f, err := ema.New[int32](4) // α = 1/16
//	y := f.ProcessSample(adcReading)
//
// T must be at least M+1+2K bits wide, where M is the number of magnitude
// bits of the input (M = 10 for a 10-bit ADC). Bipolar full-scale swings
// need one bit more. [Filter.MaxInputBits] reports the bound for a given
// filter. Wider inputs overflow silently with Go's wrapping integer
// semantics. The filter never saturates.
//
// A [Bank] holds one independent filter per channel for multi-channel
// streams. [Filter.Response], [Filter.CutoffHz] and [Filter.SettlingSteps]
// describe a configuration without touching filter state.
//
// Filters are not safe for concurrent use. Distinct filters share nothing.
package ema
