// SPDX-License-Identifier: EPL-2.0

package utils

import "math"

// Clamp limits x to [-1, 1]. NaN becomes silence.
func Clamp(x float64) float64 {
	switch {
	case math.IsNaN(x):
		return 0
	case x > 1:
		return 1
	case x < -1:
		return -1
	}
	return x
}

// Float64ToInt16 converts a sample to signed 16-bit PCM.
// Negative values scale by 32768 and positive ones by 32767, so -1 maps
// to math.MinInt16 and 1 to math.MaxInt16.
func Float64ToInt16(x float64) int16 {
	x = Clamp(x)
	if x < 0 {
		return int16(math.Round(x * 32768))
	}
	return int16(math.Round(x * 32767))
}

// Int16ToFloat64 is the inverse of Float64ToInt16 up to rounding.
func Int16ToFloat64(v int16) float64 {
	if v < 0 {
		return float64(v) / 32768
	}
	return float64(v) / 32767
}

// EncodeStereo converts two channel buffers into interleaved PCM frames,
// left first. The shorter buffer bounds the frame count.
func EncodeStereo(left, right []float64) []int16 {
	frames := min(len(left), len(right))
	out := make([]int16, frames*2)
	for i := range frames {
		out[2*i] = Float64ToInt16(left[i])
		out[2*i+1] = Float64ToInt16(right[i])
	}
	return out
}
