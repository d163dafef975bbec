// SPDX-License-Identifier: EPL-2.0

package synth

import (
	"math"
	"testing"
)

const eps = 1e-9

func TestEnvelopes(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		got  float64
		want float64
	}{
		{"exp decay start", ExpDecay(0, 8), 1},
		{"exp decay", ExpDecay(0.5, 2), math.Exp(-1)},
		{"fade in start", LinearFade(0, 10, 2, 3), 0},
		{"fade in middle", LinearFade(1, 10, 2, 3), 0.5},
		{"fade sustain", LinearFade(5, 10, 2, 3), 1},
		{"fade out", LinearFade(8.5, 10, 2, 3), 0.5},
		{"fade end", LinearFade(10, 10, 2, 3), 0},
		{"half sine start", HalfSine(0, 2), 0},
		{"half sine peak", HalfSine(1, 2), 1},
		{"swell start", Swell(0, 4), 0.5},
		{"swell peak", Swell(2, 4), 1},
		{"beat phase", BeatPhase(0.75, 0.5), 0.5},
		{"beat phase wraps", BeatPhase(1.0, 0.5), 0},
		{"pulse onset", PercussivePulse(0.5, 0.5, 10), 1},
		{"pulse decay", PercussivePulse(0.25, 0.5, 10), math.Exp(-5)},
		{"rise start", RiseAndFall(0, 1), 0.36},
		{"rise peak", RiseAndFall(0.8, 1), 1},
		{"rise end", RiseAndFall(2, 2), 0.96},
	}

	for _, tt := range tests {
		if math.Abs(tt.got-tt.want) > eps {
			t.Errorf("%s = %v, want %v", tt.name, tt.got, tt.want)
		}
	}
}

func TestRiseAndFall_NeverNegative(t *testing.T) {
	t.Parallel()

	for i := range 100 {
		if v := RiseAndFall(float64(i)*0.1, 1); v < 0 {
			t.Fatalf("RiseAndFall(%v, 1) = %v, want >= 0", float64(i)*0.1, v)
		}
	}
}

func TestSoftClip(t *testing.T) {
	t.Parallel()

	if SoftClip(0) != 0 {
		t.Errorf("SoftClip(0) = %v, want 0", SoftClip(0))
	}

	for _, s := range []float64{0.1, 0.5, 1, 3, 100, math.MaxFloat64} {
		pos, neg := SoftClip(s), SoftClip(-s)
		if pos >= 0.7+eps || pos <= 0 {
			t.Errorf("SoftClip(%v) = %v, want in (0, 0.7]", s, pos)
		}
		if pos != -neg {
			t.Errorf("SoftClip(%v) = %v, SoftClip(-%v) = %v, want odd symmetry", s, pos, s, neg)
		}
	}

	buf := []float64{0, 2, -2}
	SoftClipBuffer(buf)
	if buf[1] != SoftClip(2) || buf[2] != SoftClip(-2) {
		t.Errorf("SoftClipBuffer() = %v", buf)
	}
}
