// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"errors"
	"fmt"
	"testing"
)

func TestErrors_Messages(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		err  error
		want string
	}{
		{"ErrNotWavFile", ErrNotWavFile, "not a WAV file"},
		{"ErrOnlyPCM16bitSupported", ErrOnlyPCM16bitSupported, "only PCM 16-bit supported"},
		{"ErrInvalidChannelLayout", ErrInvalidChannelLayout, "sample count must be a positive multiple of channels"},
		{"ErrInvalidSampleRate", ErrInvalidSampleRate, "invalid WAV sample rate"},
		{"ErrDataTooLarge", ErrDataTooLarge, "PCM data exceeds WAV size limit"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if tt.err.Error() != tt.want {
				t.Errorf("%s.Error() = %q, want %q", tt.name, tt.err.Error(), tt.want)
			}
			if !errors.Is(fmt.Errorf("%w: context", tt.err), tt.err) {
				t.Errorf("errors.Is() failed for wrapped %s", tt.name)
			}
		})
	}
}

func TestErrors_Distinct(t *testing.T) {
	t.Parallel()

	all := []error{ErrNotWavFile, ErrOnlyPCM16bitSupported, ErrInvalidChannelLayout, ErrInvalidSampleRate, ErrDataTooLarge}
	for i, a := range all {
		for j, b := range all {
			if i != j && errors.Is(a, b) {
				t.Errorf("errors.Is(%v, %v) = true, want false", a, b)
			}
		}
	}
}
