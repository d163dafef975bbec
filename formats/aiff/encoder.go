// SPDX-License-Identifier: EPL-2.0

package aiff

import (
	"errors"
	"fmt"
	"io"

	"github.com/go-audio/aiff"
	goaudio "github.com/go-audio/audio"
)

// WriteAIFF16 writes interleaved 16-bit PCM frames as an AIFF file.
// The encoder patches chunk sizes after the data, so w must be seekable.
func WriteAIFF16(w io.WriteSeeker, sampleRate, channels int, samples []int16) error {
	if channels < 1 || len(samples) == 0 || len(samples)%channels != 0 {
		return fmt.Errorf("%w: %d samples over %d channels", ErrInvalidChannelLayout, len(samples), channels)
	}

	data := make([]int, len(samples))
	for i, s := range samples {
		data[i] = int(s)
	}

	buf := &goaudio.IntBuffer{
		Format: &goaudio.Format{
			NumChannels: channels,
			SampleRate:  sampleRate,
		},
		Data:           data,
		SourceBitDepth: 16,
	}

	enc := aiff.NewEncoder(w, sampleRate, 16, channels)
	if err := enc.Write(buf); err != nil {
		return fmt.Errorf("writing aiff frames: %w", errors.Join(err, enc.Close()))
	}
	if err := enc.Close(); err != nil {
		return fmt.Errorf("finalizing aiff: %w", err)
	}
	return nil
}

// EncodeAIFF16 returns the file WriteAIFF16 would write as a byte slice.
func EncodeAIFF16(sampleRate, channels int, samples []int16) ([]byte, error) {
	f := &memFile{}
	if err := WriteAIFF16(f, sampleRate, channels, samples); err != nil {
		return nil, err
	}
	return f.data, nil
}

// memFile is an in-memory io.WriteSeeker
type memFile struct {
	data []byte
	pos  int64
}

func (f *memFile) Write(p []byte) (int, error) {
	end := f.pos + int64(len(p))
	if end > int64(len(f.data)) {
		f.data = append(f.data, make([]byte, end-int64(len(f.data)))...)
	}
	copy(f.data[f.pos:end], p)
	f.pos = end
	return len(p), nil
}

func (f *memFile) Seek(offset int64, whence int) (int64, error) {
	var next int64
	switch whence {
	case io.SeekStart:
		next = offset
	case io.SeekCurrent:
		next = f.pos + offset
	case io.SeekEnd:
		next = int64(len(f.data)) + offset
	default:
		return 0, fmt.Errorf("invalid whence: %d", whence)
	}

	if next < 0 {
		return 0, fmt.Errorf("negative position")
	}
	f.pos = next
	return next, nil
}
