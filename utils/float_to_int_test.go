// SPDX-License-Identifier: EPL-2.0

package utils

import (
	"math"
	"testing"
)

func TestFloat64ToInt16(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input float64
		want  int16
	}{
		{name: "zero", input: 0, want: 0},
		{name: "max positive", input: 1, want: math.MaxInt16},
		{name: "max negative", input: -1, want: math.MinInt16},
		{name: "half positive rounds away from zero", input: 0.5, want: 16384}, // 16383.5
		{name: "half negative", input: -0.5, want: -16384},
		{name: "quarter positive", input: 0.25, want: 8192}, // 8191.75
		{name: "quarter negative", input: -0.25, want: -8192},
		{name: "small positive", input: 0.001, want: 33},  // 32.767
		{name: "small negative", input: -0.001, want: -33}, // -32.768
		{name: "clamp over max", input: 1.5, want: math.MaxInt16},
		{name: "clamp under min", input: -1.5, want: math.MinInt16},
		{name: "clamp way over max", input: 100, want: math.MaxInt16},
		{name: "positive infinity", input: math.Inf(1), want: math.MaxInt16},
		{name: "negative infinity", input: math.Inf(-1), want: math.MinInt16},
		{name: "NaN is silence", input: math.NaN(), want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := Float64ToInt16(tt.input); got != tt.want {
				t.Errorf("Float64ToInt16(%v) = %d, want %d", tt.input, got, tt.want)
			}
		})
	}
}

// The two signs scale differently; a single constant would either
// overflow at +1 or never reach -32768.
func TestFloat64ToInt16Asymmetry(t *testing.T) {
	t.Parallel()

	pos := Float64ToInt16(1)
	neg := Float64ToInt16(-1)

	if int(pos)+int(neg) != -1 {
		t.Errorf("Float64ToInt16(1) + Float64ToInt16(-1) = %d, want -1", int(pos)+int(neg))
	}
}

func TestFloat64ToInt16Monotonic(t *testing.T) {
	t.Parallel()

	prev := Float64ToInt16(-1)
	for i := -999; i <= 1000; i++ {
		f := float64(i) / 1000
		curr := Float64ToInt16(f)
		if curr < prev {
			t.Errorf("Float64ToInt16 not monotonic: f=%v gives %d, previous %d", f, curr, prev)
		}
		prev = curr
	}
}

func TestInt16ToFloat64RoundTrip(t *testing.T) {
	t.Parallel()

	for _, v := range []int16{math.MinInt16, -16384, -1, 0, 1, 16384, math.MaxInt16} {
		f := Int16ToFloat64(v)
		if f < -1 || f > 1 {
			t.Errorf("Int16ToFloat64(%d) = %v, outside [-1, 1]", v, f)
		}
		if back := Float64ToInt16(f); back != v {
			t.Errorf("Float64ToInt16(Int16ToFloat64(%d)) = %d", v, back)
		}
	}
}

func TestClamp(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in, want float64
	}{
		{0.3, 0.3},
		{-0.3, -0.3},
		{1.0000001, 1},
		{-7, -1},
		{math.NaN(), 0},
	}

	for _, tt := range tests {
		if got := Clamp(tt.in); got != tt.want {
			t.Errorf("Clamp(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestEncodeStereo(t *testing.T) {
	t.Parallel()

	left := []float64{0, 1, -1, 0.5}
	right := []float64{0.25, -0.25, 2}

	got := EncodeStereo(left, right)
	want := []int16{0, 8192, math.MaxInt16, -8192, math.MinInt16, math.MaxInt16}

	if len(got) != len(want) {
		t.Fatalf("len(EncodeStereo) = %d, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("EncodeStereo()[%d] = %d, want %d", i, got[i], want[i])
		}
	}
}

func BenchmarkEncodeStereo(b *testing.B) {
	left := make([]float64, 44100)
	right := make([]float64, 44100)
	for i := range left {
		left[i] = math.Sin(float64(i) * 0.01)
		right[i] = math.Cos(float64(i) * 0.01)
	}

	b.ReportAllocs()
	for b.Loop() {
		_ = EncodeStereo(left, right)
	}
}
