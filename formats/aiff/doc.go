// SPDX-License-Identifier: EPL-2.0

// Package aiff provides the AIFF (Audio Interchange File Format) codec
// providers.
//
// Reader and Writer plug into an spi.Registry under the codec domain and
// are registered into spi.Default() on import. Plain AIFF samples are
// decoded and encoded with github.com/go-audio/aiff.
//
// # Supported Formats
//
// Reader:
//   - AIFF, signed PCM 8, 16, 24 and 32-bit
//   - AIFF-C with compression NONE or twos (big-endian PCM), sowt
//     (little-endian PCM) and fl32 (32-bit float)
//
// Writer:
//   - AIFF, signed PCM 8, 16, 24 and 32-bit
//
// Other AIFF-C compression types are rejected so the next reader can try.
//
// # Decoding
//
//	out := aiff.Reader{}.Decode(file)
//	if out.Kind() == spi.Success {
//	    stream := out.Value()
//	    fmt.Println(stream.Format()) // PCM_SIGNED 44100.0 Hz, 16 bit, stereo, big-endian
//	}
//
// Describe reads only the chunk headers and reports the file as format.AIFF
// or format.AIFC.
//
// # AIFF vs. WAV
//
// AIFF is similar to WAV but:
//   - Uses big-endian byte order (WAV uses little-endian)
//   - Stores 8-bit samples signed (WAV stores them unsigned)
//   - Stores sample rate as 80-bit float (WAV uses 32-bit int)
package aiff
