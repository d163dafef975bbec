// SPDX-License-Identifier: EPL-2.0

package synth

import "errors"

var (
	// ErrInvalidParameter indicates a request field outside its accepted range
	ErrInvalidParameter = errors.New("invalid synthesis parameter")

	// ErrUnknownCategory indicates a category outside the preset catalog
	ErrUnknownCategory = errors.New("unknown category")

	// ErrResourceExhausted indicates a request that would need an unreasonably large buffer
	ErrResourceExhausted = errors.New("requested render is too large")
)
