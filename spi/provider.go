// SPDX-License-Identifier: EPL-2.0

package spi

import (
	"io"
	"io/fs"

	"github.com/ik5/audsys/audio"
	"github.com/ik5/audsys/format"
)

// FileReader parses audio files.
//
// Describe and Decode receive the input positioned at the start of the file.
// A reader that does not recognise the bytes rejects; the caller rewinds
// the input before asking the next reader. On success Decode's stream owns
// the remainder of the input.
type FileReader interface {
	Describe(rs io.ReadSeeker) Outcome[*format.ExtendedFileFormat]
	Decode(rs io.ReadSeeker) Outcome[audio.Stream]
}

// FileWriter serialises streams into audio files.
type FileWriter interface {
	// Types lists every file type the writer can produce.
	Types() []format.Type
	// TypesFor lists the file types the writer can produce from s.
	TypesFor(s audio.Stream) []format.Type
	// Write encodes s as t into w and returns the number of bytes written.
	// It rejects before writing anything when t or s is not supported.
	Write(s audio.Stream, t format.Type, w io.Writer) Outcome[int64]
}

// CompressionWriter is a FileWriter variant taking encoder properties such
// as format.PropQuality. Unknown properties are ignored.
type CompressionWriter interface {
	Types() []format.Type
	TypesFor(s audio.Stream) []format.Type
	Write(s audio.Stream, t format.Type, props format.Properties, w io.Writer) Outcome[int64]
}

// ResourceReader reads audio files stored in a file system.
type ResourceReader interface {
	DescribeResource(fsys fs.FS, name string) Outcome[*format.ExtendedFileFormat]
	DecodeResource(fsys fs.FS, name string) Outcome[audio.Stream]
}

// EncodingProvider declares which encodings and file types a set of codecs
// handles. Its methods answer from static tables or by asking other
// providers; they never fail.
type EncodingProvider interface {
	ReaderEncodings() []format.Encoding
	IsReaderSupportedEncoding(e format.Encoding) bool
	WriterEncodings() []format.Encoding
	IsWriterSupportedEncoding(e format.Encoding) bool
	WriterEncodingsForType(t format.Type) []format.Encoding
	WriterEncodingsFor(s audio.Stream) []format.Encoding
	IsWriterSupportedEncodingFor(e format.Encoding, s audio.Stream) bool
	EncodingByName(name string) (format.Encoding, bool)

	ReaderTypes() []format.Type
	IsReaderSupportedType(t format.Type) bool
	WriterTypes() []format.Type
	IsWriterSupportedType(t format.Type) bool
	WriterTypesFor(s audio.Stream) []format.Type
	IsWriterSupportedTypeFor(t format.Type, s audio.Stream) bool
	TypeByName(name string) (format.Type, bool)
	TypeBySuffix(suffix string) (format.Type, bool)
}
