// SPDX-License-Identifier: EPL-2.0

package synth

import (
	"fmt"
	"io"
	"time"

	"github.com/gopxl/beep"
	"github.com/ik5/audsynth/audio"
	"github.com/ik5/audsynth/utils"
)

// Track is a rendered stereo signal. Samples are float64 and may exceed
// [-1, 1] for effect recipes; PCM clamps them.
type Track struct {
	sampleRate uint32
	channels   [Channels][]float64
}

func (t *Track) SampleRate() uint32 { return t.sampleRate }

// Frames is the number of samples per channel.
func (t *Track) Frames() int { return len(t.channels[0]) }

func (t *Track) Duration() time.Duration {
	return time.Duration(t.Frames()) * time.Second / time.Duration(t.sampleRate)
}

// Channel returns the buffer of channel i (0 = left, 1 = right). The
// slice is shared with the track and must not be modified.
func (t *Track) Channel(i int) []float64 {
	return t.channels[i]
}

// PCM returns interleaved 16-bit samples, left first.
func (t *Track) PCM() []int16 {
	return utils.EncodeStereo(t.channels[0], t.channels[1])
}

// Source streams the track as interleaved float32 samples.
func (t *Track) Source() audio.Source {
	return &trackSource{track: t}
}

// Format describes the track for beep consumers.
func (t *Track) Format() beep.Format {
	return beep.Format{
		SampleRate:  beep.SampleRate(t.sampleRate),
		NumChannels: Channels,
		Precision:   2,
	}
}

// Streamer returns a seekable beep stream over the track, clamped to [-1, 1].
func (t *Track) Streamer() beep.StreamSeeker {
	return &trackStreamer{track: t}
}

type trackSource struct {
	track *Track
	pos   int
}

func (s *trackSource) SampleRate() int { return int(s.track.sampleRate) }
func (s *trackSource) Channels() int   { return Channels }
func (s *trackSource) BufSize() int    { return 4096 }
func (s *trackSource) Close() error    { return nil }

func (s *trackSource) ReadSamples(dst []float32) (int, error) {
	if len(dst)%Channels != 0 {
		return 0, audio.ErrInvalidDstSize
	}

	frames := s.track.Frames()
	if s.pos >= frames {
		return 0, io.EOF
	}

	n := min(len(dst)/Channels, frames-s.pos)
	left, right := s.track.channels[0], s.track.channels[1]
	for i := range n {
		dst[2*i] = float32(utils.Clamp(left[s.pos+i]))
		dst[2*i+1] = float32(utils.Clamp(right[s.pos+i]))
	}
	s.pos += n

	if s.pos >= frames {
		return n * Channels, io.EOF
	}
	return n * Channels, nil
}

type trackStreamer struct {
	track *Track
	pos   int
}

func (s *trackStreamer) Stream(samples [][2]float64) (int, bool) {
	frames := s.track.Frames()
	if s.pos >= frames {
		return 0, false
	}

	n := min(len(samples), frames-s.pos)
	left, right := s.track.channels[0], s.track.channels[1]
	for i := range n {
		samples[i][0] = utils.Clamp(left[s.pos+i])
		samples[i][1] = utils.Clamp(right[s.pos+i])
	}
	s.pos += n
	return n, true
}

func (s *trackStreamer) Err() error    { return nil }
func (s *trackStreamer) Len() int      { return s.track.Frames() }
func (s *trackStreamer) Position() int { return s.pos }

func (s *trackStreamer) Seek(p int) error {
	if p < 0 || p > s.track.Frames() {
		return fmt.Errorf("seek to %d outside [0, %d]", p, s.track.Frames())
	}
	s.pos = p
	return nil
}
