// SPDX-License-Identifier: EPL-2.0

package synth

import "fmt"

// channel is the mutable state of one channel's render.
type channel struct {
	noise  *Noise
	filter OnePole
}

// recipe produces one sample of a channel. t is the elapsed time used by
// envelopes; phase is the time fed to oscillators.
type recipe interface {
	sample(ch *channel, t, phase float64) float64
	// limited reports whether the finished buffer passes through SoftClip.
	limited() bool
}

func newRecipe(req Request) (recipe, error) {
	p, err := Resolve(req.category)
	if err != nil {
		return nil, err
	}

	switch c := req.category.(type) {
	case Effect:
		return effectRecipe{effect: c, preset: p, duration: req.duration}, nil
	case Mood:
		return newMusicRecipe(p, req.duration, req.tempo), nil
	default:
		return nil, fmt.Errorf("%w: %v", ErrUnknownCategory, c)
	}
}
