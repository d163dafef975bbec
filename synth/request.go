// SPDX-License-Identifier: EPL-2.0

package synth

import (
	"fmt"
	"math"
	"time"
)

const (
	// Channels is fixed; every render is stereo.
	Channels = 2

	// StereoOffset is the time shift, in seconds, of the second channel.
	StereoOffset = 0.003

	MinTempo = 40
	MaxTempo = 180

	// MaxFrames caps a single render at one hour of 48kHz audio per channel.
	MaxFrames = 3600 * 48000
)

// Request is a validated, immutable synthesis request. Build one with
// NewEffectRequest or NewMusicRequest; the zero value is not renderable.
type Request struct {
	category   Category
	duration   float64
	sampleRate uint32
	tempo      uint32
	seed       uint64
	frames     int
}

// Option customizes a Request at construction.
type Option func(*Request)

// WithSeed sets the noise seed. Two requests with equal parameters and
// seed render identical output. The default seed is 0.
func WithSeed(seed uint64) Option {
	return func(r *Request) {
		r.seed = seed
	}
}

// NewEffectRequest builds a request for a one-shot sound effect.
func NewEffectRequest(e Effect, durationSeconds float64, sampleRate uint32, opts ...Option) (Request, error) {
	if !e.Valid() {
		return Request{}, fmt.Errorf("%w: %v", ErrUnknownCategory, e)
	}
	return newRequest(e, durationSeconds, sampleRate, 0, opts)
}

// NewMusicRequest builds a request for a music loop. A bpm of zero
// selects the mood's preset tempo; any other value must lie within
// [MinTempo, MaxTempo].
func NewMusicRequest(m Mood, durationSeconds float64, sampleRate uint32, bpm uint32, opts ...Option) (Request, error) {
	if !m.Valid() {
		return Request{}, fmt.Errorf("%w: %v", ErrUnknownCategory, m)
	}
	if bpm == 0 {
		bpm = moodPresets[m].Tempo
	}
	if bpm < MinTempo || bpm > MaxTempo {
		return Request{}, fmt.Errorf("%w: tempo %d bpm outside [%d, %d]", ErrInvalidParameter, bpm, MinTempo, MaxTempo)
	}
	return newRequest(m, durationSeconds, sampleRate, bpm, opts)
}

func newRequest(c Category, duration float64, sampleRate, bpm uint32, opts []Option) (Request, error) {
	if math.IsNaN(duration) || math.IsInf(duration, 0) || duration <= 0 {
		return Request{}, fmt.Errorf("%w: duration %v", ErrInvalidParameter, duration)
	}
	if sampleRate == 0 {
		return Request{}, fmt.Errorf("%w: sample rate must be positive", ErrInvalidParameter)
	}

	frames := math.Floor(float64(sampleRate) * duration)
	if frames > MaxFrames {
		return Request{}, fmt.Errorf("%w: %.0f frames per channel exceeds %d", ErrResourceExhausted, frames, MaxFrames)
	}
	if frames < 1 {
		return Request{}, fmt.Errorf("%w: duration %v yields no samples at %d Hz", ErrInvalidParameter, duration, sampleRate)
	}

	r := Request{
		category:   c,
		duration:   duration,
		sampleRate: sampleRate,
		tempo:      bpm,
		frames:     int(frames),
	}
	for _, opt := range opts {
		opt(&r)
	}
	return r, nil
}

func (r Request) Category() Category { return r.category }

// Duration in seconds.
func (r Request) Duration() float64 { return r.duration }

func (r Request) SampleRate() uint32 { return r.sampleRate }

// Tempo in BPM; zero for effects.
func (r Request) Tempo() uint32 { return r.tempo }

func (r Request) Seed() uint64 { return r.seed }

// Frames is the per-channel sample count, floor(sampleRate * duration).
func (r Request) Frames() int { return r.frames }

// IsMusic reports whether r selects a mood rather than an effect.
func (r Request) IsMusic() bool {
	return r.category != nil && r.category.family() == familyMusic
}

func (r Request) String() string {
	if r.IsMusic() {
		return fmt.Sprintf("%v %v @ %d Hz, %d bpm", r.category, time.Duration(r.duration*float64(time.Second)), r.sampleRate, r.tempo)
	}
	return fmt.Sprintf("%v %v @ %d Hz", r.category, time.Duration(r.duration*float64(time.Second)), r.sampleRate)
}
