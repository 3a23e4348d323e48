package ema

import (
	"strings"
	"testing"

	"github.com/cwbudde/algo-ema/internal/testutil"
)

func TestNewBankValidation(t *testing.T) {
	if _, err := NewBank[int32](0, 4); err == nil {
		t.Fatal("expected error for zero channels")
	}
	if _, err := NewBank[int32](-2, 4); err == nil {
		t.Fatal("expected error for negative channels")
	}
	if _, err := NewBank[int16](2, 8); err == nil {
		t.Fatal("expected error for shift=8 on int16")
	}

	b, err := NewBank[int32](3, 4)
	if err != nil {
		t.Fatalf("NewBank() error = %v", err)
	}
	if b.Channels() != 3 {
		t.Fatalf("Channels() = %d, want 3", b.Channels())
	}
	for i := 0; i < b.Channels(); i++ {
		if s := b.Channel(i).Shift(); s != 4 {
			t.Fatalf("channel %d shift = %d, want 4", i, s)
		}
	}
}

func TestBankChannelIsolation(t *testing.T) {
	const n = 256
	b, err := NewBank[int32](2, 3)
	if err != nil {
		t.Fatal(err)
	}

	left := testutil.DeterministicNoise(11, int32(0), int32(1023), n)
	right := testutil.Constant[int32](0, n)

	wantLeft := processAll(mustNew[int32](t, 3), left)

	frame := make([]int32, 2)
	for i := 0; i < n; i++ {
		frame[0], frame[1] = left[i], right[i]
		b.ProcessFrame(frame)
		if frame[0] != wantLeft[i] {
			t.Fatalf("left index %d: got %d, want %d", i, frame[0], wantLeft[i])
		}
		if frame[1] != 0 {
			t.Fatalf("right index %d: got %d, want 0 (cross-talk)", i, frame[1])
		}
	}
}

func TestBankInterleavedMatchesFrames(t *testing.T) {
	const channels, frames = 3, 100
	b1, err := NewBank[int16](channels, 2)
	if err != nil {
		t.Fatal(err)
	}
	b2, err := NewBank[int16](channels, 2)
	if err != nil {
		t.Fatal(err)
	}

	in := testutil.DeterministicNoise(5, int16(-500), int16(500), channels*frames)

	want := append([]int16(nil), in...)
	for off := 0; off < len(want); off += channels {
		b1.ProcessFrame(want[off : off+channels])
	}

	got := append([]int16(nil), in...)
	b2.ProcessInterleaved(got)
	testutil.RequireSamplesEqual(t, got, want)
}

func TestBankChannelSharesState(t *testing.T) {
	b, err := NewBank[int32](2, 2)
	if err != nil {
		t.Fatal(err)
	}
	b.ProcessFrame([]int32{100, 0})

	// The second output of a K=2 step of 100 is 44.
	if got := b.Channel(0).ProcessSample(100); got != 44 {
		t.Fatalf("Channel(0).ProcessSample() = %d, want 44", got)
	}
}

func TestBankPanics(t *testing.T) {
	b, err := NewBank[int32](2, 2)
	if err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name string
		fn   func()
	}{
		{name: "channel index", fn: func() { b.Channel(2) }},
		{name: "negative channel index", fn: func() { b.Channel(-1) }},
		{name: "frame length", fn: func() { b.ProcessFrame(make([]int32, 3)) }},
		{name: "interleaved length", fn: func() { b.ProcessInterleaved(make([]int32, 5)) }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			defer func() {
				if recover() == nil {
					t.Fatal("expected panic")
				}
			}()
			tt.fn()
		})
	}
}

func TestZeroBankInterleavedPanicsWithMessage(t *testing.T) {
	var b Bank[int32]
	defer func() {
		msg, ok := recover().(string)
		if !ok || !strings.HasPrefix(msg, "ema: ") {
			t.Fatalf("recovered %q, want an ema: panic message", msg)
		}
	}()
	b.ProcessInterleaved(nil)
}
