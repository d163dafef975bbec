// SPDX-License-Identifier: EPL-2.0

package synth

import (
	"math"
	"math/rand/v2"
)

// Sine returns sin(2*pi*freq*t). The phase is taken directly from t, so a
// time varying freq gives the reference "sweep" sound rather than a true chirp.
func Sine(freq, t float64) float64 {
	return math.Sin(2 * math.Pi * freq * t)
}

// Noise is a seeded white noise source. It is not safe for concurrent use;
// every channel owns its own.
type Noise struct {
	rng *rand.Rand
}

// NewNoise returns a noise stream for the given seed and stream index.
// Equal arguments always produce equal sequences.
func NewNoise(seed, stream uint64) *Noise {
	return &Noise{rng: rand.New(rand.NewPCG(seed, stream))}
}

// Next returns a uniform value in [-1, 1).
func (n *Noise) Next() float64 {
	return n.rng.Float64()*2 - 1
}

// OnePole is the memory of a one-pole low-pass filter.
type OnePole struct {
	Last float64
}

// Step blends in with the previous output and returns the new filter
// state along with the output sample.
func (f OnePole) Step(in, mix float64) (OnePole, float64) {
	out := in*mix + f.Last*(1-mix)
	return OnePole{Last: out}, out
}
