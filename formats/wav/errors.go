// SPDX-License-Identifier: EPL-2.0

package wav

import "errors"

var (
	ErrNotWavFile            = errors.New("not a WAV file")
	ErrOnlyPCM16bitSupported = errors.New("only PCM 16-bit supported")
	ErrInvalidChannelLayout  = errors.New("sample count must be a positive multiple of channels")
	ErrInvalidSampleRate     = errors.New("invalid WAV sample rate")
	ErrDataTooLarge          = errors.New("PCM data exceeds WAV size limit")
)
