// SPDX-License-Identifier: EPL-2.0

// Package audio provides the streaming primitives shared by the format
// decoders, the synthesizer and the analysis tools.
//
// # Source Interface
//
// A Source yields interleaved float32 samples in [-1.0, 1.0]:
//
//	type Source interface {
//	    SampleRate() int
//	    Channels() int
//	    ReadSamples(dst []float32) (int, error)
//	    BufSize() int
//	    Close() error
//	}
//
// Decoded files (formats/wav, formats/aiff, formats/mp3, formats/vorbis)
// and rendered tracks (synth.Track.Source) all implement it, so any of
// them can be fed to analysis.Measure.
//
// # Format Registry
//
// The registry maps format keys and file extensions to decoders:
//
//	registry := audio.NewRegistry()
//	registry.Register(wav.Decoder{}, "wav", "wave")
//	registry.Register(vorbis.Decoder{}, "ogg", "oga")
//	decoder, err := registry.ForPath("calm-calm-70bpm.wav")
//
// # Error Handling
//
// ReadSamples returns io.EOF when no more data is available. The last
// read may return n > 0 together with io.EOF:
//
//	for {
//	    n, err := source.ReadSamples(buf)
//	    // process buf[:n]
//	    if err == io.EOF {
//	        break
//	    }
//	    if err != nil {
//	        return err
//	    }
//	}
package audio
