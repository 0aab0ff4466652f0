// SPDX-License-Identifier: EPL-2.0

package aiff

import "errors"

var (
	// ErrNotAiffFile indicates the file is not a valid AIFF file
	ErrNotAiffFile = errors.New("not an AIFF file")

	// ErrUnsupportedAiffLayout indicates an unsupported bit depth or channel count
	ErrUnsupportedAiffLayout = errors.New("unsupported AIFF layout")

	// ErrUnsupportedCompression indicates an AIFF-C compression type other
	// than uncompressed PCM or 32-bit float
	ErrUnsupportedCompression = errors.New("unsupported AIFF-C compression")

	// ErrMissingChunk indicates the COMM or SSND chunk was not found
	ErrMissingChunk = errors.New("AIFF chunk not found")
)
