// SPDX-License-Identifier: EPL-2.0

package audsynth

import (
	"fmt"
	"io"

	"github.com/ik5/audsynth/audio"
	"github.com/ik5/audsynth/utils"
)

// ReadPCM16 drains src and returns its samples as interleaved 16-bit PCM
// along with the channel count. Reading back a file written by Export
// returns exactly the rendered samples.
func ReadPCM16(src audio.Source, bufferSize int) ([]int16, int, error) {
	channels := src.Channels()
	if channels < 1 {
		return nil, 0, fmt.Errorf("%w: %d channels", audio.ErrInvalidDstSize, channels)
	}
	if bufferSize < 1 {
		bufferSize = src.BufSize()
	}
	// round down to whole frames, keeping at least one
	bufferSize = max(bufferSize-bufferSize%channels, channels)

	pcm16 := make([]int16, 0, max(src.SampleRate(), 0)*channels)
	buf := make([]float32, bufferSize)

	for {
		n, err := src.ReadSamples(buf)
		for _, x := range buf[:n] {
			pcm16 = append(pcm16, utils.Float64ToInt16(float64(x)))
		}

		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, channels, fmt.Errorf("%w", err)
		}
		if n == 0 {
			break
		}
	}

	return pcm16, channels, nil
}
