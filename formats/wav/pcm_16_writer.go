// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"io"
	"math"
)

// HeaderSize is the length of the canonical RIFF/WAVE header.
const HeaderSize = 44

const bitsPerSample = 16

// WriteWAV16 writes a 16-bit PCM WAV at sampleRate. samples must be
// interleaved frames of channels int16 values (L, R, L, R, ... for stereo).
// The output is the canonical 44-byte header followed by the data chunk,
// with no extension or metadata chunks.
func WriteWAV16(w io.Writer, sampleRate, channels int, samples []int16) error {
	header, err := pcm16Header(sampleRate, channels, len(samples))
	if err != nil {
		return err
	}

	// Write header in one operation
	if _, err := w.Write(header); err != nil {
		return fmt.Errorf("%w", err)
	}

	if len(samples) == 0 {
		return nil
	}

	// Write 8K samples at a time to bound the scratch buffer
	const chunkSize = 8192
	buf := make([]byte, min(len(samples), chunkSize)*2)

	for i := 0; i < len(samples); i += chunkSize {
		chunk := samples[i:min(i+chunkSize, len(samples))]
		out := buf[:len(chunk)*2]

		for j, s := range chunk {
			binary.LittleEndian.PutUint16(out[j*2:], uint16(s))
		}

		if _, err := w.Write(out); err != nil {
			return fmt.Errorf("%w", err)
		}
	}

	return nil
}

// EncodeWAV16 returns the file WriteWAV16 would write as a byte slice.
func EncodeWAV16(sampleRate, channels int, samples []int16) ([]byte, error) {
	buf := bytes.NewBuffer(make([]byte, 0, HeaderSize+len(samples)*2))
	if err := WriteWAV16(buf, sampleRate, channels, samples); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func pcm16Header(sampleRate, channels, numSamples int) ([]byte, error) {
	if channels < 1 || channels > math.MaxUint16/2 || numSamples%channels != 0 {
		return nil, fmt.Errorf("%w: %d samples over %d channels", ErrInvalidChannelLayout, numSamples, channels)
	}
	if sampleRate <= 0 || uint64(sampleRate) > math.MaxUint32 {
		return nil, fmt.Errorf("%w: %d Hz", ErrInvalidSampleRate, sampleRate)
	}
	if uint64(numSamples)*2 > math.MaxUint32-(HeaderSize-8) {
		return nil, fmt.Errorf("%w: %d samples", ErrDataTooLarge, numSamples)
	}

	numChannels := uint16(channels)
	blockAlign := numChannels * (bitsPerSample / 8)
	byteRate := uint64(sampleRate) * uint64(blockAlign)
	if byteRate > math.MaxUint32 {
		return nil, fmt.Errorf("%w: byte rate of %d Hz x %d channels", ErrInvalidSampleRate, sampleRate, channels)
	}
	dataSize := uint32(numSamples * 2)

	header := make([]byte, HeaderSize)

	// RIFF header (12 bytes)
	copy(header[0:4], "RIFF")
	binary.LittleEndian.PutUint32(header[4:8], HeaderSize-8+dataSize)
	copy(header[8:12], "WAVE")

	// fmt chunk (24 bytes)
	copy(header[12:16], "fmt ")
	binary.LittleEndian.PutUint32(header[16:20], 16) // PCM fmt chunk size
	binary.LittleEndian.PutUint16(header[20:22], 1)  // PCM format
	binary.LittleEndian.PutUint16(header[22:24], numChannels)
	binary.LittleEndian.PutUint32(header[24:28], uint32(sampleRate))
	binary.LittleEndian.PutUint32(header[28:32], uint32(byteRate))
	binary.LittleEndian.PutUint16(header[32:34], blockAlign)
	binary.LittleEndian.PutUint16(header[34:36], bitsPerSample)

	// data chunk header (8 bytes)
	copy(header[36:40], "data")
	binary.LittleEndian.PutUint32(header[40:44], dataSize)

	return header, nil
}
