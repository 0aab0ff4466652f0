// SPDX-License-Identifier: EPL-2.0

package format

import (
	"fmt"
	"math"
)

// FileFormat describes an audio file with 32-bit length fields.
type FileFormat struct {
	typ         Type
	format      Format
	frameLength int32
	byteLength  int32
	properties  Properties
}

// NewFileFormat returns a narrow file descriptor. Use NotSpecified for
// unknown lengths. props may be nil.
func NewFileFormat(t Type, f Format, frameLength, byteLength int32, props Properties) FileFormat {
	return FileFormat{
		typ:         t,
		format:      f,
		frameLength: frameLength,
		byteLength:  byteLength,
		properties:  props.Clone(),
	}
}

func (ff FileFormat) Type() Type     { return ff.typ }
func (ff FileFormat) Format() Format { return ff.format }

// FrameLength returns the length in sample frames, or NotSpecified.
func (ff FileFormat) FrameLength() int32 { return ff.frameLength }

// ByteLength returns the size of the whole file in bytes, or NotSpecified.
func (ff FileFormat) ByteLength() int32 { return ff.byteLength }

// Properties returns a copy of the file properties.
func (ff FileFormat) Properties() Properties { return ff.properties.Clone() }

// Property returns a single property value.
func (ff FileFormat) Property(key string) (any, bool) {
	v, ok := ff.properties[key]
	return v, ok
}

// ExtendedFileFormat is a FileFormat whose lengths are kept as int64.
// The embedded narrow view reports NotSpecified for any length that does not
// fit in an int32.
type ExtendedFileFormat struct {
	FileFormat

	frameLength int64
	byteLength  int64
}

// NewExtendedFileFormat returns a descriptor with wide length fields.
func NewExtendedFileFormat(t Type, f Format, frameLength, byteLength int64, props Properties) *ExtendedFileFormat {
	return &ExtendedFileFormat{
		FileFormat:  NewFileFormat(t, f, narrow(frameLength), narrow(byteLength), props),
		frameLength: frameLength,
		byteLength:  byteLength,
	}
}

// ExtendFileFormat copies a narrow descriptor and attaches its true lengths.
// When props is nil the properties of ff are kept.
func ExtendFileFormat(ff FileFormat, frameLength, byteLength int64, props Properties) *ExtendedFileFormat {
	if props == nil {
		props = ff.properties
	}
	return NewExtendedFileFormat(ff.typ, ff.format, frameLength, byteLength, props)
}

// FrameLengthLong returns the stored frame length, even when it exceeds the
// int32 range.
func (ff *ExtendedFileFormat) FrameLengthLong() int64 { return ff.frameLength }

// ByteLengthLong returns the stored byte length, even when it exceeds the
// int32 range.
func (ff *ExtendedFileFormat) ByteLengthLong() int64 { return ff.byteLength }

func (ff *ExtendedFileFormat) String() string {
	return fmt.Sprintf("%s (.%s) file, frame length: %d, byte length: %d, data format: %s",
		ff.typ, ff.typ.Extension(), ff.frameLength, ff.byteLength, ff.format)
}

func narrow(v int64) int32 {
	if v > math.MaxInt32 || v < math.MinInt32 {
		return NotSpecified
	}
	return int32(v)
}
