// SPDX-License-Identifier: EPL-2.0

package audsynth

import (
	"bytes"
	"context"
	"crypto/rand"
	"encoding/binary"
	"fmt"
	"io"

	"github.com/ik5/audsynth/audio"
	"github.com/ik5/audsynth/formats/aiff"
	"github.com/ik5/audsynth/formats/wav"
	"github.com/ik5/audsynth/synth"
)

// Container formats accepted by Export.
const (
	FormatWAV  = "wav"
	FormatAIFF = "aiff"
)

// Formats lists the export formats in preference order.
func Formats() []string {
	return []string{FormatWAV, FormatAIFF}
}

// NewSeed returns a seed drawn from the operating system's entropy source.
func NewSeed() uint64 {
	var b [8]byte
	_, _ = rand.Read(b[:]) // never fails on supported platforms
	return binary.LittleEndian.Uint64(b[:])
}

// Generate renders req and returns it as a complete WAV file: a 44-byte
// header followed by Frames()*4 bytes of interleaved 16-bit stereo PCM.
func Generate(ctx context.Context, req synth.Request) ([]byte, error) {
	track, err := synth.Render(ctx, req)
	if err != nil {
		return nil, err
	}

	return wav.EncodeWAV16(int(track.SampleRate()), synth.Channels, track.PCM())
}

// Write renders req and writes it to w as WAV.
func Write(ctx context.Context, w io.Writer, req synth.Request) error {
	return Export(ctx, w, req, FormatWAV)
}

// Export renders req and writes it to w in the named container format.
// AIFF output is buffered in memory unless w is an io.WriteSeeker.
func Export(ctx context.Context, w io.Writer, req synth.Request, format string) error {
	switch format {
	case FormatWAV, FormatAIFF:
	default:
		return fmt.Errorf("%w: %q", audio.ErrUnknownFormat, format)
	}

	track, err := synth.Render(ctx, req)
	if err != nil {
		return err
	}
	rate := int(track.SampleRate())

	if format == FormatWAV {
		return wav.WriteWAV16(w, rate, synth.Channels, track.PCM())
	}

	if ws, ok := w.(io.WriteSeeker); ok {
		return aiff.WriteAIFF16(ws, rate, synth.Channels, track.PCM())
	}

	data, err := aiff.EncodeAIFF16(rate, synth.Channels, track.PCM())
	if err != nil {
		return err
	}
	if _, err := io.Copy(w, bytes.NewReader(data)); err != nil {
		return fmt.Errorf("writing aiff: %w", err)
	}
	return nil
}
