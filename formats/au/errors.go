// SPDX-License-Identifier: EPL-2.0

package au

import "errors"

var (
	// ErrNotAuFile indicates the input does not start with the .snd magic.
	ErrNotAuFile = errors.New("not an AU file")

	// ErrUnsupportedEncoding indicates an encoding code this package does not decode.
	ErrUnsupportedEncoding = errors.New("unsupported AU encoding")

	// ErrBadHeader indicates header fields that cannot describe a stream.
	ErrBadHeader = errors.New("malformed AU header")
)
