package ema

import (
	"fmt"

	"github.com/cwbudde/algo-ema/dsp/core"
)

// Bank holds one independent [Filter] per channel, all with the same shift.
// A Bank must be created with [NewBank].
type Bank[T core.Signed] struct {
	channels []Filter[T]
}

// NewBank creates a bank of channels filters with smoothing shift K.
func NewBank[T core.Signed](channels int, shift uint) (*Bank[T], error) {
	if channels <= 0 {
		return nil, fmt.Errorf("ema: channel count must be > 0: %d", channels)
	}
	if err := validateShift[T](shift); err != nil {
		return nil, err
	}

	b := &Bank[T]{channels: make([]Filter[T], channels)}
	for i := range b.channels {
		b.channels[i] = newFilter[T](shift)
	}
	return b, nil
}

// Channels returns the number of channels.
func (b *Bank[T]) Channels() int { return len(b.channels) }

// Channel returns the filter for channel i.
func (b *Bank[T]) Channel(i int) *Filter[T] {
	if i < 0 || i >= len(b.channels) {
		panic(fmt.Sprintf("ema: channel index out of range: %d (channels=%d)", i, len(b.channels)))
	}
	return &b.channels[i]
}

// ProcessFrame filters one sample per channel in place.
// len(frame) must equal Channels().
func (b *Bank[T]) ProcessFrame(frame []T) {
	if len(frame) != len(b.channels) {
		panic(fmt.Sprintf("ema: frame length %d does not match channels %d", len(frame), len(b.channels)))
	}
	for i := range frame {
		frame[i] = b.channels[i].ProcessSample(frame[i])
	}
}

// ProcessInterleaved filters an interleaved multi-channel block in place.
// len(buf) must be a multiple of Channels().
func (b *Bank[T]) ProcessInterleaved(buf []T) {
	n := len(b.channels)
	if n == 0 {
		panic("ema: interleaved processing on a bank with no channels")
	}
	if len(buf)%n != 0 {
		panic(fmt.Sprintf("ema: interleaved length %d is not a multiple of channels %d", len(buf), n))
	}
	for off := 0; off < len(buf); off += n {
		b.ProcessFrame(buf[off : off+n])
	}
}
