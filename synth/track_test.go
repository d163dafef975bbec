// SPDX-License-Identifier: EPL-2.0

package synth

import (
	"errors"
	"io"
	"testing"
	"time"

	"github.com/gopxl/beep"
	"github.com/ik5/audsynth/audio"
)

func newTestTrack(left, right []float64) *Track {
	return &Track{sampleRate: 4, channels: [Channels][]float64{left, right}}
}

func TestTrack_Metadata(t *testing.T) {
	t.Parallel()

	track := newTestTrack(make([]float64, 6), make([]float64, 6))

	if track.Frames() != 6 {
		t.Errorf("Frames() = %d, want 6", track.Frames())
	}
	if track.Duration() != 1500*time.Millisecond {
		t.Errorf("Duration() = %v, want 1.5s", track.Duration())
	}

	want := beep.Format{SampleRate: 4, NumChannels: 2, Precision: 2}
	if track.Format() != want {
		t.Errorf("Format() = %+v, want %+v", track.Format(), want)
	}
}

func TestTrack_PCM(t *testing.T) {
	t.Parallel()

	track := newTestTrack([]float64{1, -1, 2}, []float64{0, -0.5, -2})
	want := []int16{32767, 0, -32768, -16384, 32767, -32768}

	got := track.PCM()
	if len(got) != len(want) {
		t.Fatalf("len(PCM()) = %d, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("PCM()[%d] = %d, want %d", i, got[i], want[i])
		}
	}
}

func TestTrack_Source(t *testing.T) {
	t.Parallel()

	track := newTestTrack([]float64{0.5, 1.5, -0.25}, []float64{-0.5, 0, -3})
	src := track.Source()

	if src.SampleRate() != 4 || src.Channels() != 2 {
		t.Fatalf("source = %d Hz, %d channels", src.SampleRate(), src.Channels())
	}

	if _, err := src.ReadSamples(make([]float32, 3)); !errors.Is(err, audio.ErrInvalidDstSize) {
		t.Errorf("misaligned ReadSamples() error = %v, want ErrInvalidDstSize", err)
	}

	dst := make([]float32, 4)
	n, err := src.ReadSamples(dst)
	if n != 4 || err != nil {
		t.Fatalf("first ReadSamples() = %d, %v; want 4, nil", n, err)
	}
	if want := []float32{0.5, -0.5, 1, 0}; [4]float32(dst) != [4]float32(want) {
		t.Errorf("first read = %v, want %v", dst, want)
	}

	n, err = src.ReadSamples(dst)
	if n != 2 || err != io.EOF {
		t.Fatalf("second ReadSamples() = %d, %v; want 2, io.EOF", n, err)
	}
	if dst[0] != -0.25 || dst[1] != -1 {
		t.Errorf("second read = %v, want [-0.25 -1]", dst[:2])
	}

	if n, err := src.ReadSamples(dst); n != 0 || err != io.EOF {
		t.Errorf("ReadSamples() after end = %d, %v; want 0, io.EOF", n, err)
	}
}

func TestTrack_Streamer(t *testing.T) {
	t.Parallel()

	track := newTestTrack([]float64{0.1, 0.2, 0.3, 5}, []float64{-0.1, -0.2, -0.3, -5})
	s := track.Streamer()

	if s.Len() != 4 {
		t.Errorf("Len() = %d, want 4", s.Len())
	}

	buf := make([][2]float64, 3)
	n, ok := s.Stream(buf)
	if n != 3 || !ok {
		t.Fatalf("Stream() = %d, %v; want 3, true", n, ok)
	}
	if buf[2] != [2]float64{0.3, -0.3} {
		t.Errorf("frame 2 = %v", buf[2])
	}
	if s.Position() != 3 {
		t.Errorf("Position() = %d, want 3", s.Position())
	}

	n, ok = s.Stream(buf)
	if n != 1 || !ok || buf[0] != [2]float64{1, -1} {
		t.Errorf("Stream() = %d, %v, %v; want 1, true, [1 -1]", n, ok, buf[0])
	}

	if n, ok := s.Stream(buf); n != 0 || ok {
		t.Errorf("Stream() at end = %d, %v; want 0, false", n, ok)
	}

	if err := s.Seek(1); err != nil {
		t.Fatalf("Seek(1) error = %v", err)
	}
	if n, _ := s.Stream(buf); n != 3 || buf[0][0] != 0.2 {
		t.Errorf("after Seek(1) Stream() = %d, first %v", n, buf[0])
	}

	if err := s.Seek(5); err == nil {
		t.Error("Seek(5) error = nil, want error")
	}
	if s.Err() != nil {
		t.Errorf("Err() = %v, want nil", s.Err())
	}
}

func TestTrack_StreamerWithBeep(t *testing.T) {
	t.Parallel()

	req, err := NewEffectRequest(Alarm, 0.5, 8000)
	track := mustRender(t, req, err)

	taken := beep.Take(1000, track.Streamer())
	buf := make([][2]float64, 512)

	total := 0
	for {
		n, ok := taken.Stream(buf)
		total += n
		if !ok {
			break
		}
	}
	if total != 1000 {
		t.Errorf("streamed %d frames, want 1000", total)
	}
}
