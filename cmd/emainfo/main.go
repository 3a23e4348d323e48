// Command emainfo prints properties of fixed-point EMA filter configurations.
//
// Usage:
//
//	emainfo [flags] [shift ...]
//
// Without arguments it prints every shift valid for the selected width.
//
// Examples:
//
//	emainfo 4
//	emainfo -width 16 -rate 1000 2 3 4
//	emainfo -level 4095 -step 12 5
package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/cwbudde/algo-ema/dsp/core"
	"github.com/cwbudde/algo-ema/dsp/filter/ema"
)

const settleLimit = 1 << 20

type row struct {
	width     uint
	shift     uint
	alpha     float64
	inputBits uint
	cutoffHz  float64
	settle    int
	settled   bool
	step      []int64
}

func main() {
	width := flag.Uint("width", 32, "sample and accumulator width in bits (8, 16, 32, 64)")
	rate := flag.Float64("rate", 1000, "sample rate in Hz used for the cutoff column")
	level := flag.Int64("level", 1023, "step level used for settling and step response")
	steps := flag.Int("step", 0, "print the first N outputs of the step response")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: emainfo [flags] [shift ...]\n\n")
		fmt.Fprintf(os.Stderr, "Prints properties of fixed-point EMA filters with alpha = 2^-shift.\n")
		fmt.Fprintf(os.Stderr, "Without arguments, prints every shift valid for -width.\n\n")
		fmt.Fprintf(os.Stderr, "Flags:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  emainfo 4\n")
		fmt.Fprintf(os.Stderr, "  emainfo -width 16 -rate 1000 2 3 4\n")
		fmt.Fprintf(os.Stderr, "  emainfo -level 4095 -step 12 5\n")
	}
	flag.Parse()

	maxShift, err := maxShiftFor(*width)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
	if *rate <= 0 {
		fmt.Fprintf(os.Stderr, "error: sample rate must be > 0: %v\n", *rate)
		os.Exit(1)
	}

	shifts := parseShifts(os.Stderr, flag.Args(), maxShift)

	var rows []row
	for _, shift := range shifts {
		r, err := analyzeWidth(*width, shift, *rate, *level, *steps)
		if err != nil {
			fmt.Fprintf(os.Stderr, "warning: %v\n", err)
			continue
		}
		rows = append(rows, r)
	}
	if len(rows) == 0 {
		fmt.Fprintf(os.Stderr, "error: no valid filter configurations\n")
		os.Exit(1)
	}

	if err := printAnalysis(os.Stdout, rows, *rate, *level); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
	if *steps > 0 {
		if err := printSteps(os.Stdout, rows); err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			os.Exit(1)
		}
	}
}

func maxShiftFor(width uint) (uint, error) {
	switch width {
	case 8:
		return ema.MaxShift[int8](), nil
	case 16:
		return ema.MaxShift[int16](), nil
	case 32:
		return ema.MaxShift[int32](), nil
	case 64:
		return ema.MaxShift[int64](), nil
	default:
		return 0, fmt.Errorf("unsupported width %d (use 8, 16, 32 or 64)", width)
	}
}

// parseShifts returns the requested shifts, or 1..maxShift when args is
// empty. Unparsable or out-of-range values are reported to warn and skipped.
func parseShifts(warn io.Writer, args []string, maxShift uint) []uint {
	if len(args) == 0 {
		all := make([]uint, 0, maxShift)
		for k := uint(1); k <= maxShift; k++ {
			all = append(all, k)
		}
		return all
	}

	var shifts []uint
	for _, arg := range args {
		k, err := strconv.ParseUint(strings.TrimSpace(arg), 10, 8)
		if err != nil || k < 1 || uint(k) > maxShift {
			fmt.Fprintf(warn, "warning: invalid shift %q (want 1..%d)\n", arg, maxShift)
			continue
		}
		shifts = append(shifts, uint(k))
	}
	return shifts
}

func analyzeWidth(width, shift uint, rate float64, level int64, steps int) (row, error) {
	switch width {
	case 8:
		return analyze[int8](shift, rate, level, steps)
	case 16:
		return analyze[int16](shift, rate, level, steps)
	case 32:
		return analyze[int32](shift, rate, level, steps)
	case 64:
		return analyze[int64](shift, rate, level, steps)
	default:
		return row{}, fmt.Errorf("unsupported width %d", width)
	}
}

func analyze[T core.Signed](shift uint, rate float64, level int64, steps int) (row, error) {
	f, err := ema.New[T](shift)
	if err != nil {
		return row{}, err
	}

	bits := f.MaxInputBits()
	if limit := int64(1)<<bits - 1; level > limit || level < -limit {
		return row{}, fmt.Errorf("shift %d: level %d exceeds %d input bits", shift, level, bits)
	}

	r := row{
		width:     core.BitWidth[T](),
		shift:     shift,
		alpha:     f.Alpha(),
		inputBits: bits,
		cutoffHz:  f.CutoffHz(rate),
	}
	r.settle, r.settled = f.SettlingSteps(T(level), settleLimit)

	for i := 0; i < steps; i++ {
		r.step = append(r.step, int64(f.ProcessSample(T(level))))
	}
	return r, nil
}

func printAnalysis(w io.Writer, rows []row, rate float64, level int64) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	if _, err := fmt.Fprintf(tw, "Width\tShift\tAlpha\tInput Bits\tCutoff @%g Hz\tSettle to %d\n", rate, level); err != nil {
		return fmt.Errorf("failed to write output header: %w", err)
	}
	if _, err := fmt.Fprintf(tw, "-----\t-----\t-----\t----------\t-------------\t----------\n"); err != nil {
		return fmt.Errorf("failed to write output header: %w", err)
	}

	for _, r := range rows {
		settle := "never"
		if r.settled {
			settle = strconv.Itoa(r.settle)
		}
		if _, err := fmt.Fprintf(tw, "%d\t%d\t%.8g\t%d\t%.4f\t%s\n",
			r.width,
			r.shift,
			r.alpha,
			r.inputBits,
			r.cutoffHz,
			settle,
		); err != nil {
			return fmt.Errorf("failed to write output row: %w", err)
		}
	}
	if err := tw.Flush(); err != nil {
		return fmt.Errorf("failed to flush output: %w", err)
	}
	return nil
}

func printSteps(w io.Writer, rows []row) error {
	for _, r := range rows {
		vals := make([]string, len(r.step))
		for i, v := range r.step {
			vals[i] = strconv.FormatInt(v, 10)
		}
		if _, err := fmt.Fprintf(w, "\nstep response (width=%d shift=%d): %s\n",
			r.width, r.shift, strings.Join(vals, " ")); err != nil {
			return fmt.Errorf("failed to write step response: %w", err)
		}
	}
	return nil
}
