package ema

import (
	"fmt"

	"github.com/cwbudde/algo-ema/dsp/core"
)

const minShift = 1

// Filter is a fixed-point exponential moving average filter with α = 2^-K.
type Filter[T core.Signed] struct {
	shift     uint
	precision uint

	// smoothed value scaled by 2^(2K)
	state T
}

// New creates a filter with smoothing shift K. The accumulator starts at
// zero. K must be at least 1 and leave one sign bit and one magnitude bit
// of T free above the 2K fractional bits.
func New[T core.Signed](shift uint) (*Filter[T], error) {
	if err := validateShift[T](shift); err != nil {
		return nil, err
	}

	f := newFilter[T](shift)
	return &f, nil
}

func newFilter[T core.Signed](shift uint) Filter[T] {
	return Filter[T]{shift: shift, precision: 2 * shift}
}

// MaxShift returns the largest shift accepted for T.
func MaxShift[T core.Signed]() uint {
	return (core.BitWidth[T]() - 2) / 2
}

func validateShift[T core.Signed](shift uint) error {
	maxShift := MaxShift[T]()
	if shift < minShift || shift > maxShift {
		return fmt.Errorf("ema: shift must be in [%d, %d] for %d-bit samples: %d",
			minShift, maxShift, core.BitWidth[T](), shift)
	}
	return nil
}

// ProcessSample filters one input sample and returns the new output:
//
//	state += ((x << 2K) - state) >> K
//	y = (state + 2^(2K-1)) >> 2K
func (f *Filter[T]) ProcessSample(x T) T {
	diff := x<<f.precision - f.state
	f.state += diff >> f.shift
	return core.RoundShift(f.state, f.precision)
}

// ProcessInPlace filters buf in place.
func (f *Filter[T]) ProcessInPlace(buf []T) {
	for i, x := range buf {
		buf[i] = f.ProcessSample(x)
	}
}

// ProcessTo filters src into dst. Both slices must have the same length.
func (f *Filter[T]) ProcessTo(dst, src []T) {
	if len(dst) != len(src) {
		panic(fmt.Sprintf("ema: ProcessTo length mismatch: dst=%d src=%d", len(dst), len(src)))
	}
	for i, x := range src {
		dst[i] = f.ProcessSample(x)
	}
}

// Shift returns K.
func (f *Filter[T]) Shift() uint { return f.shift }

// Precision returns the number of fractional accumulator bits (2K).
func (f *Filter[T]) Precision() uint { return f.precision }

// MaxInputBits returns the number of magnitude bits an input may use
// without overflowing the accumulator: bits(T) - 1 - 2K. The bound holds
// for inputs of one sign, such as raw ADC counts. Streams that swing across
// zero at full scale need one bit less, since the scaled difference spans
// twice the input range.
func (f *Filter[T]) MaxInputBits() uint {
	return core.BitWidth[T]() - 1 - f.precision
}
