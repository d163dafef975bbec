// SPDX-License-Identifier: EPL-2.0

// Package mp3 decodes MP3 files into an audio.Source.
//
// Decoding is done by github.com/hajimehoshi/go-mp3, which always yields
// 16-bit little-endian stereo PCM. The source converts those samples to
// float32 in [-1, 1]:
//
//	f, _ := os.Open("theme.mp3")
//	src, err := mp3.Decoder{}.Decode(f)
//	if err != nil {
//	    return err
//	}
//	stats, err := analysis.Measure(src, 4096)
//
// Mono files come out duplicated into both channels. Encoding is not
// supported; rendered tracks are written as WAV or AIFF.
package mp3
