// SPDX-License-Identifier: EPL-2.0

package audio

import "errors"

var (
	ErrInvalidDstSize = errors.New("dst size must be multiple of channels")
	// ErrLayoutMismatch is returned when a stream cannot be relabelled to
	// the requested format without converting samples.
	ErrLayoutMismatch = errors.New("format does not match stream layout")
)
