// SPDX-License-Identifier: EPL-2.0

// Package rewind adapts forward-only readers and plain writers to the
// seeking interfaces codec libraries expect.
//
// Reader buffers everything it has read so a caller can mark a position,
// let a parser consume bytes, and seek back. Buffer is an in-memory
// io.WriteSeeker for encoders that patch their headers after writing the
// payload.
package rewind
