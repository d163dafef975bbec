// SPDX-License-Identifier: EPL-2.0

package synth

import (
	"fmt"
	"slices"
)

// Shape tags the envelope class a preset is built around.
type Shape int

const (
	ShapeDecay Shape = iota
	ShapeSweep
	ShapeSwell
	ShapePercussive
	ShapeRise
	ShapePulse
	ShapeFade
)

var shapeNames = [...]string{
	ShapeDecay:      "decay",
	ShapeSweep:      "sweep",
	ShapeSwell:      "swell",
	ShapePercussive: "percussive",
	ShapeRise:       "rise",
	ShapePulse:      "pulse",
	ShapeFade:       "fade",
}

func (s Shape) String() string {
	if s < 0 || int(s) >= len(shapeNames) {
		return fmt.Sprintf("shape(%d)", int(s))
	}
	return shapeNames[s]
}

// Preset holds the static synthesis parameters of a category.
type Preset struct {
	// BaseFreqs in Hz. Effects use them as recipe constants, music
	// uses index 0 as the root and index 1 as the arpeggio anchor.
	BaseFreqs []float64
	// Scale as semitone offsets from BaseFreqs[1]; music only.
	Scale []int
	// Tempo is the nominal BPM; zero for effects.
	Tempo uint32
	// Decay is the exponential decay constant k in exp(-t*k).
	Decay float64
	Shape Shape
}

var effectPresets = [effectCount]Preset{
	Explosion:     {BaseFreqs: []float64{50, 100}, Decay: 3, Shape: ShapeDecay},
	Laser:         {BaseFreqs: []float64{1500, 200}, Decay: 8, Shape: ShapeSweep},
	Whoosh:        {Shape: ShapeSwell},
	AmbientEffect: {BaseFreqs: []float64{220, 221.5, 330}, Shape: ShapeSwell},
	Notification:  {BaseFreqs: []float64{880, 1100}, Decay: 4, Shape: ShapeDecay},
	Click:         {Decay: 50, Shape: ShapePercussive},
	PowerUp:       {BaseFreqs: []float64{200, 800}, Shape: ShapeRise},
	Alarm:         {BaseFreqs: []float64{600, 200}, Shape: ShapeSwell},
}

var moodPresets = [moodCount]Preset{
	Calm: {
		BaseFreqs: []float64{130.81, 261.63, 329.63, 392.00},
		Scale:     []int{0, 2, 4, 7, 9},
		Tempo:     70,
		Shape:     ShapeSwell,
	},
	Energetic: {
		BaseFreqs: []float64{164.81, 329.63, 415.30, 493.88},
		Scale:     []int{0, 2, 4, 5, 7, 9, 11},
		Tempo:     128,
		Shape:     ShapePulse,
	},
	Mysterious: {
		BaseFreqs: []float64{146.83, 293.66, 349.23, 440.00},
		Scale:     []int{0, 1, 3, 5, 7, 8, 10},
		Tempo:     80,
		Shape:     ShapeSwell,
	},
	Happy: {
		BaseFreqs: []float64{196.00, 392.00, 493.88, 587.33},
		Scale:     []int{0, 2, 4, 7, 9, 12},
		Tempo:     120,
		Shape:     ShapePulse,
	},
	Sad: {
		BaseFreqs: []float64{110.00, 220.00, 261.63, 329.63},
		Scale:     []int{0, 2, 3, 5, 7, 8, 10},
		Tempo:     60,
		Shape:     ShapeFade,
	},
	Epic: {
		BaseFreqs: []float64{98.00, 196.00, 233.08, 293.66},
		Scale:     []int{0, 2, 3, 5, 7, 10, 12},
		Tempo:     110,
		Shape:     ShapePulse,
	},
	AmbientMood: {
		BaseFreqs: []float64{110.00, 220.00, 277.18, 329.63},
		Scale:     []int{0, 2, 4, 7, 9},
		Tempo:     60,
		Shape:     ShapeFade,
	},
	Tension: {
		BaseFreqs: []float64{103.83, 207.65, 246.94, 311.13},
		Scale:     []int{0, 1, 3, 6, 7, 10},
		Tempo:     140,
		Shape:     ShapePulse,
	},
}

// Resolve returns the preset of c. The returned slices are copies and
// may be modified by the caller.
func Resolve(c Category) (Preset, error) {
	if c == nil || !c.Valid() {
		return Preset{}, fmt.Errorf("%w: %v", ErrUnknownCategory, c)
	}

	var p Preset
	switch v := c.(type) {
	case Effect:
		p = effectPresets[v]
	case Mood:
		p = moodPresets[v]
	}

	p.BaseFreqs = slices.Clone(p.BaseFreqs)
	p.Scale = slices.Clone(p.Scale)
	return p, nil
}
