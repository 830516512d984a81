// SPDX-License-Identifier: EPL-2.0

package utils

import (
	"math"
	"testing"
)

func TestRoundToInt64(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input float64
		want  int64
	}{
		{name: "zero", input: 0, want: 0},
		{name: "exact positive", input: 100, want: 100},
		{name: "exact negative", input: -100, want: -100},
		{name: "below half", input: 1.49, want: 1},
		{name: "half positive", input: 1.5, want: 2},
		{name: "half negative", input: -1.5, want: -2},
		{name: "above half negative", input: -0.51, want: -1},
		{name: "int32 max", input: math.MaxInt32, want: math.MaxInt32},
		{name: "int32 min", input: math.MinInt32, want: math.MinInt32},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := RoundToInt64(tt.input); got != tt.want {
				t.Errorf("RoundToInt64(%v) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestNarrow(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		input  int64
		want16 int16
		want32 int32
	}{
		{name: "zero", input: 0, want16: 0, want32: 0},
		{name: "in range", input: -1234, want16: -1234, want32: -1234},
		{name: "int16 max", input: math.MaxInt16, want16: math.MaxInt16, want32: math.MaxInt16},
		{name: "wraps past int16 max", input: math.MaxInt16 + 1, want16: math.MinInt16, want32: math.MaxInt16 + 1},
		{name: "wraps past int32 max", input: math.MaxInt32 + 1, want16: 0, want32: math.MinInt32},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := Narrow[int16](tt.input); got != tt.want16 {
				t.Errorf("Narrow[int16](%d) = %d, want %d", tt.input, got, tt.want16)
			}
			if got := Narrow[int32](tt.input); got != tt.want32 {
				t.Errorf("Narrow[int32](%d) = %d, want %d", tt.input, got, tt.want32)
			}
		})
	}
}

func TestHalfRange(t *testing.T) {
	t.Parallel()

	if got := HalfRange[int16](); got != 0x8000 {
		t.Errorf("HalfRange[int16]() = %#x, want 0x8000", got)
	}
	if got := HalfRange[int32](); got != 0x80000000 {
		t.Errorf("HalfRange[int32]() = %#x, want 0x80000000", got)
	}
}

// TestRoundToInt64Monotonic checks rounding never reorders inputs.
func TestRoundToInt64Monotonic(t *testing.T) {
	t.Parallel()

	prev := RoundToInt64(-100)
	for f := -99.9; f <= 100; f += 0.1 {
		curr := RoundToInt64(f)
		if curr < prev {
			t.Errorf("RoundToInt64 not monotonic: f=%v gives %v, previous %v", f, curr, prev)
		}
		prev = curr
	}
}

// TestRoundToInt64_ZeroAllocs verifies no heap allocations
func TestRoundToInt64_ZeroAllocs(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping allocation test in short mode")
	}

	allocs := testing.AllocsPerRun(1000, func() {
		_ = Narrow[int16](RoundToInt64(0.5))
	})

	if allocs > 0 {
		t.Errorf("RoundToInt64 allocated %v times, want 0", allocs)
	}
}

func BenchmarkRoundToInt64(b *testing.B) {
	var result int16
	input := 1234.5

	b.ResetTimer()
	b.ReportAllocs()

	for range b.N {
		result = Narrow[int16](RoundToInt64(input))
	}

	_ = result
}
