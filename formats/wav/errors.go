// SPDX-License-Identifier: EPL-2.0

package wav

import "errors"

var (
	// ErrNotWavFile indicates the input does not start with a RIFF/WAVE header.
	ErrNotWavFile = errors.New("not a WAV file")

	// ErrUnsupportedWavLayout indicates a fmt chunk this package cannot decode,
	// such as IEEE float or compressed data.
	ErrUnsupportedWavLayout = errors.New("unsupported WAV layout")

	// ErrMissingData indicates the file has no data chunk.
	ErrMissingData = errors.New("WAV data chunk not found")
)
