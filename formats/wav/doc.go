// SPDX-License-Identifier: EPL-2.0

// Package wav writes and reads 16-bit PCM WAV files.
//
// # Writing
//
// WriteWAV16 and EncodeWAV16 emit the canonical 44-byte RIFF/WAVE header
// followed by interleaved little-endian samples. Nothing else is written:
// no extensible format, no LIST or fact chunks.
//
//	frames := []int16{l0, r0, l1, r1}
//	err := wav.WriteWAV16(file, 44100, 2, frames)
//
// The layout, with all fields little-endian:
//
//	offset  size  field
//	 0      4     "RIFF"
//	 4      4     file size - 8
//	 8      4     "WAVE"
//	12      4     "fmt "
//	16      4     16
//	20      2     1 (PCM)
//	22      2     channels
//	24      4     sample rate
//	28      4     byte rate = rate * channels * 2
//	32      2     block align = channels * 2
//	34      2     16
//	36      4     "data"
//	40      4     data size
//	44      ...   samples
//
// # Reading
//
// Decoder uses github.com/go-audio/wav, so files with extra chunks
// decode as well. Only PCM 16-bit is accepted; samples are returned as
// float32 in [-1.0, 1.0).
//
//	source, err := wav.Decoder{}.Decode(file)
//	if errors.Is(err, wav.ErrNotWavFile) {
//	    // not RIFF/WAVE
//	}
package wav
