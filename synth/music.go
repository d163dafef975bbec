// SPDX-License-Identifier: EPL-2.0

package synth

import "math"

const (
	musicAttack  = 2.0
	musicRelease = 3.0

	kickFreq = 55.0

	// Tempo thresholds for the rhythm layers. The kick follows the
	// requested tempo, the hi-hat the preset's nominal one.
	kickMinTempo  = 70
	hihatMinTempo = 100
)

type musicRecipe struct {
	preset   Preset
	duration float64
	bpm      float64
	beat     float64
	bar      float64
}

func newMusicRecipe(p Preset, duration float64, bpm uint32) musicRecipe {
	beat := 60 / float64(bpm)
	return musicRecipe{
		preset:   p,
		duration: duration,
		bpm:      float64(bpm),
		beat:     beat,
		bar:      4 * beat,
	}
}

func (musicRecipe) limited() bool { return true }

// sample sums the layers. Envelopes and amplitude LFOs follow t, every
// oscillator and frequency choice follows phase.
func (r musicRecipe) sample(ch *channel, t, phase float64) float64 {
	p := r.preset
	root := p.BaseFreqs[0]

	// drone
	s := Sine(root, phase)*0.12 + Sine(root*2, phase)*0.06

	// pad: every voice drifts by up to 0.2% and breathes on its own LFO
	for i, f := range p.BaseFreqs {
		v := float64(i + 1)
		detuned := f * (1 + 0.002*math.Sin(2*math.Pi*0.07*v*phase))
		amp := 0.5 + 0.5*math.Sin(2*math.Pi*0.05*v*t+v)
		s += (Sine(detuned, phase)*0.05 + Sine(detuned*2, phase)*0.02) * amp
	}

	if r.bpm > kickMinTempo {
		s += Sine(kickFreq, phase) * PercussivePulse(t, r.beat, 10) * 0.25
	}

	if p.Tempo > hihatMinTempo {
		s += ch.noise.Next() * PercussivePulse(t, r.beat/4, 40) * 0.03
	}

	s += Sine(r.arpeggioFrequency(phase), phase) * PercussivePulse(t, r.beat/2, 5) * 0.1

	// sub-bass, one swell per bar
	s += Sine(root/2, phase) * (0.5 + 0.5*math.Sin(2*math.Pi*t/r.bar)) * 0.08

	// air
	s += ch.noise.Next() * Swell(t, r.duration) * 0.01

	return s * LinearFade(t, r.duration, musicAttack, musicRelease)
}

// arpeggioFrequency steps through the preset scale every half beat.
func (r musicRecipe) arpeggioFrequency(t float64) float64 {
	scale := r.preset.Scale
	step := int(math.Floor(t/(r.beat/2))) % len(scale)
	return r.preset.BaseFreqs[1] * math.Pow(2, float64(scale[step])/12)
}
