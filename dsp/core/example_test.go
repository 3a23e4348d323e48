package core_test

import (
	"fmt"

	"github.com/cwbudde/algo-ema/dsp/core"
)

func ExampleRoundShift() {
	// 40/16 = 2.5 rounds up, 39/16 = 2.4375 rounds down.
	fmt.Println(core.RoundShift(int32(40), 4), core.RoundShift(int32(39), 4))

	// Output:
	// 3 2
}

func ExampleBitWidth() {
	fmt.Println(core.BitWidth[int16](), core.BitWidth[int64]())

	// Output:
	// 16 64
}
