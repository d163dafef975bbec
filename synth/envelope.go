// SPDX-License-Identifier: EPL-2.0

package synth

import "math"

// Envelope shapes. All take elapsed time t and, where relevant, the total
// duration d, both in seconds, and return an amplitude multiplier.

// ExpDecay returns exp(-t*k).
func ExpDecay(t, k float64) float64 {
	return math.Exp(-t * k)
}

// LinearFade ramps up over attack seconds and down over the final release
// seconds of d.
func LinearFade(t, d, attack, release float64) float64 {
	return math.Min(1, t/attack) * math.Min(1, (d-t)/release)
}

// HalfSine rises from 0 to 1 at the midpoint of d and back to 0.
func HalfSine(t, d float64) float64 {
	return math.Sin(math.Pi * t / d)
}

// Swell is HalfSine lifted into [0.5, 1].
func Swell(t, d float64) float64 {
	return 0.5 + 0.5*math.Sin(math.Pi*t/d)
}

// BeatPhase returns the position of t within its beat of the given length, in [0, 1).
func BeatPhase(t, beat float64) float64 {
	return math.Mod(t, beat) / beat
}

// PercussivePulse decays from 1 at the start of every beat with the given
// steepness. beat is the beat length in seconds (60/bpm for a quarter note).
func PercussivePulse(t, beat, steepness float64) float64 {
	return math.Exp(-BeatPhase(t, beat) * steepness)
}

// RiseAndFall peaks at 80% of d: max(0, 1-(t/d-0.8)^2).
func RiseAndFall(t, d float64) float64 {
	x := t/d - 0.8
	return math.Max(0, 1-x*x)
}
