// SPDX-License-Identifier: EPL-2.0

package synth

import "math"

type effectRecipe struct {
	effect   Effect
	preset   Preset
	duration float64
}

func (effectRecipe) limited() bool { return false }

// sample evaluates the recipe with envelopes at t and oscillators at
// phase, which runs StereoOffset ahead on the second channel.
func (r effectRecipe) sample(ch *channel, t, phase float64) float64 {
	d := r.duration
	f := r.preset.BaseFreqs
	k := r.preset.Decay

	switch r.effect {
	case Explosion:
		body := ch.noise.Next()*0.7 + Sine(f[0], phase)*0.5 + Sine(f[1], phase)*0.3
		return body * ExpDecay(t, k) * (1 - t/d) * 0.8

	case Laser:
		return Sine(laserFrequency(f, phase), phase) * ExpDecay(t, k) * 0.6

	case Whoosh:
		var out float64
		ch.filter, out = ch.filter.Step(ch.noise.Next(), 0.5)
		return out * HalfSine(t, d) * 0.5

	case AmbientEffect:
		chord := Sine(f[0], phase)*0.3 + Sine(f[1], phase)*0.3 + Sine(f[2], phase)*0.2
		return chord * Swell(t, d) * 0.4

	case Notification:
		freq := f[0]
		if phase >= d/2 {
			freq = f[1]
		}
		return Sine(freq, phase) * ExpDecay(t, k) * 0.5

	case Click:
		return ch.noise.Next() * ExpDecay(t, k) * 0.7

	case PowerUp:
		freq := f[0] + (phase/d)*f[1]
		tone := Sine(freq, phase)*0.6 + Sine(freq*2, phase)*0.3 + Sine(freq*3, phase)*0.1
		return tone * RiseAndFall(t, d)

	case Alarm:
		freq := f[0] + f[1]*math.Sin(2*math.Pi*4*phase)
		return Sine(freq, phase) * (0.7 + 0.3*HalfSine(t, d)) * 0.5
	}

	return 0
}

// laserFrequency sweeps down from f[0]+f[1] towards f[1].
func laserFrequency(f []float64, t float64) float64 {
	return f[0]*math.Exp(-5*t) + f[1]
}
