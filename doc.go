// SPDX-License-Identifier: EPL-2.0

// Package audsynth renders procedural sound effects and music loops and
// encodes them as 16-bit stereo WAV (or AIFF) files.
//
// Every sound is built from closed-form oscillators, seeded noise and
// envelope shapes; no samples or models are involved, so a request with a
// fixed seed always produces the same bytes.
//
// # Quick Start
//
//	req, err := synth.NewEffectRequest(synth.Laser, 1, 44100)
//	if err != nil {
//	    return err
//	}
//	wavBytes, err := audsynth.Generate(ctx, req)
//
// wavBytes holds the canonical 44-byte header followed by 44100 interleaved
// stereo frames.
//
// Music loops are requested by mood. A tempo of zero selects the mood's
// own tempo:
//
//	req, err := synth.NewMusicRequest(synth.Tension, 30, 44100, 0,
//	    synth.WithSeed(audsynth.NewSeed()))
//	f, _ := os.Create(audsynth.Filename("boss fight", req, "wav"))
//	err = audsynth.Export(ctx, f, req, audsynth.FormatWAV)
//
// # Packages
//
//   - synth: catalog, envelopes, oscillators and the stereo renderer
//   - utils: float to 16-bit PCM conversion
//   - formats/wav, formats/aiff: containers for rendered tracks
//   - formats/mp3, formats/vorbis: decoders for reference material
//   - analysis: peak, RMS and clipping statistics of any audio.Source
//
// Rendering is CPU-bound and takes a context so long loops can be
// abandoned; the two channels render in parallel.
package audsynth
