// SPDX-License-Identifier: EPL-2.0

// Package aiff reads and writes 16-bit PCM AIFF files through
// github.com/go-audio/aiff.
//
// AIFF is the big-endian sibling of WAV and is offered as an alternate
// uncompressed export:
//
//	f, _ := os.Create("calm-calm-70bpm.aiff")
//	err := aiff.WriteAIFF16(f, 44100, 2, track.PCM())
//
// Writing needs an io.WriteSeeker; EncodeAIFF16 builds the file in memory
// when only an io.Writer is available.
//
// Decoder returns an audio.Source of float32 samples in [-1.0, 1.0).
// Only 16-bit files are accepted.
package aiff
