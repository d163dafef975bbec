// SPDX-License-Identifier: EPL-2.0

// Package vorbis decodes Ogg Vorbis files into an audio.Source.
//
// github.com/jfreymuth/oggvorbis already produces interleaved float32
// samples, so ReadSamples fills the caller's buffer directly. The channel
// count and sample rate are taken from the identification header.
//
// Only decoding is provided. The decoder is registered under "ogg" and
// "oga" by the audsynth command so that inspect can report level
// statistics for reference material.
package vorbis
