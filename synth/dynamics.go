// SPDX-License-Identifier: EPL-2.0

package synth

import "math"

// SoftClip compresses s with tanh(1.5s) and scales the result by 0.7.
func SoftClip(s float64) float64 {
	return math.Tanh(s*1.5) * 0.7
}

// SoftClipBuffer applies SoftClip to every sample of buf in place.
func SoftClipBuffer(buf []float64) {
	for i, s := range buf {
		buf[i] = SoftClip(s)
	}
}
