// SPDX-License-Identifier: EPL-2.0

package synth

import (
	"context"
	"errors"
	"fmt"
	"sync"
)

// cancelCheckInterval is how many samples a channel renders between
// context checks.
const cancelCheckInterval = 4096

// Render synthesizes req into a stereo Track. Both channels render
// concurrently; each owns its noise generator and filter state. Render
// returns early with the context error if ctx is cancelled.
func Render(ctx context.Context, req Request) (*Track, error) {
	if req.category == nil || req.frames == 0 {
		return nil, fmt.Errorf("%w: request was not built with a constructor", ErrInvalidParameter)
	}

	rec, err := newRecipe(req)
	if err != nil {
		return nil, err
	}

	track := &Track{sampleRate: req.sampleRate}

	var (
		wg   sync.WaitGroup
		errs [Channels]error
	)
	for c := range Channels {
		wg.Go(func() {
			track.channels[c], errs[c] = renderChannel(ctx, rec, req, c)
		})
	}
	wg.Wait()

	if err := errors.Join(errs[:]...); err != nil {
		return nil, err
	}
	return track, nil
}

func renderChannel(ctx context.Context, rec recipe, req Request, index int) ([]float64, error) {
	// Both channels replay the same noise stream; only the phase offset
	// sets them apart.
	ch := &channel{noise: NewNoise(req.seed, 0)}
	offset := float64(index) * StereoOffset
	rate := float64(req.sampleRate)

	buf := make([]float64, req.frames)
	for i := range buf {
		if i%cancelCheckInterval == 0 {
			if err := ctx.Err(); err != nil {
				return nil, fmt.Errorf("rendering channel %d: %w", index, err)
			}
		}
		t := float64(i) / rate
		buf[i] = rec.sample(ch, t, t+offset)
	}

	if rec.limited() {
		SoftClipBuffer(buf)
	}
	return buf, nil
}
