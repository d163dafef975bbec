// SPDX-License-Identifier: EPL-2.0

// Package analysis measures level statistics of an audio.Source.
package analysis

import (
	"errors"
	"fmt"
	"io"
	"math"
	"time"

	"github.com/ik5/audsynth/audio"
)

// SilenceFloor is reported in place of -Inf for digital silence.
const SilenceFloor = -96.0

// ClipThreshold is the magnitude at or above which a sample counts as clipped.
const ClipThreshold = 0.999

// ErrInvalidBufSize is returned when the read buffer cannot hold one frame.
var ErrInvalidBufSize = errors.New("buffer size must hold at least one frame")

// ChannelStats holds the measurements of a single channel.
type ChannelStats struct {
	Peak     float64 `json:"peak"`      // Largest absolute sample value
	PeakDBFS float64 `json:"peak_dbfs"` // Peak level (dBFS)
	RMS      float64 `json:"rms"`       // Root mean square of all samples
	RMSDBFS  float64 `json:"rms_dbfs"`  // RMS level (dBFS)
	Clipped  int64   `json:"clipped"`   // Samples at or beyond ClipThreshold
}

// Stats describes a whole stream.
type Stats struct {
	SampleRate int            `json:"sample_rate"`
	Frames     int64          `json:"frames"`
	Duration   time.Duration  `json:"duration"`
	Channels   []ChannelStats `json:"channels"`
}

// Peak is the largest channel peak.
func (s Stats) Peak() float64 {
	var p float64
	for _, c := range s.Channels {
		p = max(p, c.Peak)
	}
	return p
}

// Clipped is the number of clipped samples over all channels.
func (s Stats) Clipped() int64 {
	var n int64
	for _, c := range s.Channels {
		n += c.Clipped
	}
	return n
}

// DBFS converts a linear amplitude to decibels relative to full scale.
func DBFS(v float64) float64 {
	if v <= 0 {
		return SilenceFloor
	}
	return max(20*math.Log10(v), SilenceFloor)
}

// Measure reads src to the end, bufSize frames at a time, and returns its
// statistics. A bufSize of zero or less uses src.BufSize(). The source is
// not closed.
func Measure(src audio.Source, bufSize int) (Stats, error) {
	channels := src.Channels()
	if channels < 1 {
		return Stats{}, fmt.Errorf("%w: %d channels", audio.ErrInvalidDstSize, channels)
	}
	if bufSize <= 0 {
		bufSize = src.BufSize()
	}
	if bufSize < 1 {
		return Stats{}, ErrInvalidBufSize
	}

	buf := make([]float32, bufSize*channels)
	peak := make([]float64, channels)
	sumSq := make([]float64, channels)
	clipped := make([]int64, channels)

	var samples int64
	for {
		n, err := src.ReadSamples(buf)
		if n%channels != 0 {
			return Stats{}, fmt.Errorf("%w: read %d samples", audio.ErrInvalidDstSize, n)
		}

		for i, v := range buf[:n] {
			ch := i % channels
			a := math.Abs(float64(v))
			peak[ch] = max(peak[ch], a)
			sumSq[ch] += a * a
			if a >= ClipThreshold {
				clipped[ch]++
			}
		}
		samples += int64(n)

		if err == io.EOF {
			break
		}
		if err != nil {
			return Stats{}, fmt.Errorf("reading samples: %w", err)
		}
		if n == 0 {
			break
		}
	}

	frames := samples / int64(channels)
	stats := Stats{
		SampleRate: src.SampleRate(),
		Frames:     frames,
		Channels:   make([]ChannelStats, channels),
	}
	if rate := src.SampleRate(); rate > 0 {
		stats.Duration = time.Duration(float64(frames) / float64(rate) * float64(time.Second))
	}

	for ch := range channels {
		var rms float64
		if frames > 0 {
			rms = math.Sqrt(sumSq[ch] / float64(frames))
		}
		stats.Channels[ch] = ChannelStats{
			Peak:     peak[ch],
			PeakDBFS: DBFS(peak[ch]),
			RMS:      rms,
			RMSDBFS:  DBFS(rms),
			Clipped:  clipped[ch],
		}
	}

	return stats, nil
}
