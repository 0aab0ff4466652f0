// SPDX-License-Identifier: EPL-2.0

// Package format describes audio data without touching it.
//
// It holds the identifiers the rest of the module passes around:
//   - Type names a container kind (WAVE, AU, AIFF, ...)
//   - Encoding names how samples are stored (PCM_SIGNED, PCM_FLOAT, ...)
//   - Format describes the sample layout of a stream
//   - FileFormat and ExtendedFileFormat describe a whole file
//
// # File descriptors
//
// FileFormat keeps its lengths as int32, which overflows for long files.
// ExtendedFileFormat stores the real 64-bit lengths next to the narrow view:
//
//	ff := format.NewExtendedFileFormat(format.WAVE, f, 5_000_000_000, format.NotSpecified, nil)
//	ff.FrameLength()     // NotSpecified, does not fit in int32
//	ff.FrameLengthLong() // 5000000000
//
// Properties given to any descriptor are copied on the way in and on the way
// out, so descriptors are safe to share.
package format
