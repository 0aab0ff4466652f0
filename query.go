// SPDX-License-Identifier: EPL-2.0

package audsys

import (
	"github.com/ik5/audsys/audio"
	"github.com/ik5/audsys/format"
	"github.com/ik5/audsys/spi"
)

// Capability queries are answered by every registered EncodingProvider.
// Lists are unions without duplicates, "is supported" questions hold when
// any provider says so, and lookups return the first answer in registration
// order.

func (s *System) encodings() []spi.Candidate[spi.EncodingProvider] {
	return candidates[spi.EncodingProvider](s)
}

// ReaderEncodings lists the encodings some reader can decode.
func (s *System) ReaderEncodings() []format.Encoding {
	return spi.Aggregate(s.encodings(), spi.EncodingProvider.ReaderEncodings)
}

func (s *System) IsReaderSupportedEncoding(e format.Encoding) bool {
	return spi.Any(s.encodings(), func(p spi.EncodingProvider) bool { return p.IsReaderSupportedEncoding(e) })
}

// WriterEncodings lists the encodings some writer can produce.
func (s *System) WriterEncodings() []format.Encoding {
	return spi.Aggregate(s.encodings(), spi.EncodingProvider.WriterEncodings)
}

func (s *System) IsWriterSupportedEncoding(e format.Encoding) bool {
	return spi.Any(s.encodings(), func(p spi.EncodingProvider) bool { return p.IsWriterSupportedEncoding(e) })
}

// WriterEncodingsForType lists the encodings files of type t can be written
// with.
func (s *System) WriterEncodingsForType(t format.Type) []format.Encoding {
	return spi.Aggregate(s.encodings(), func(p spi.EncodingProvider) []format.Encoding { return p.WriterEncodingsForType(t) })
}

// WriterEncodingsFor lists the encodings stream can be written with.
func (s *System) WriterEncodingsFor(stream audio.Stream) []format.Encoding {
	if stream == nil {
		return []format.Encoding{}
	}
	return spi.Aggregate(s.encodings(), func(p spi.EncodingProvider) []format.Encoding { return p.WriterEncodingsFor(stream) })
}

func (s *System) IsWriterSupportedEncodingFor(e format.Encoding, stream audio.Stream) bool {
	if stream == nil {
		return false
	}
	return spi.Any(s.encodings(), func(p spi.EncodingProvider) bool { return p.IsWriterSupportedEncodingFor(e, stream) })
}

// EncodingByName finds an encoding by its case-insensitive name.
func (s *System) EncodingByName(name string) (format.Encoding, bool) {
	return spi.First(s.encodings(), func(p spi.EncodingProvider) (format.Encoding, bool) { return p.EncodingByName(name) })
}

// ReaderTypes lists the file types some reader can parse.
func (s *System) ReaderTypes() []format.Type {
	return spi.Aggregate(s.encodings(), spi.EncodingProvider.ReaderTypes)
}

func (s *System) IsReaderSupportedType(t format.Type) bool {
	return spi.Any(s.encodings(), func(p spi.EncodingProvider) bool { return p.IsReaderSupportedType(t) })
}

// WriterTypes lists the file types some writer can produce.
func (s *System) WriterTypes() []format.Type {
	return spi.Aggregate(s.encodings(), spi.EncodingProvider.WriterTypes)
}

func (s *System) IsWriterSupportedType(t format.Type) bool {
	return spi.Any(s.encodings(), func(p spi.EncodingProvider) bool { return p.IsWriterSupportedType(t) })
}

// WriterTypesFor lists the file types stream can be written as.
func (s *System) WriterTypesFor(stream audio.Stream) []format.Type {
	if stream == nil {
		return []format.Type{}
	}
	return spi.Aggregate(s.encodings(), func(p spi.EncodingProvider) []format.Type { return p.WriterTypesFor(stream) })
}

func (s *System) IsWriterSupportedTypeFor(t format.Type, stream audio.Stream) bool {
	if stream == nil {
		return false
	}
	return spi.Any(s.encodings(), func(p spi.EncodingProvider) bool { return p.IsWriterSupportedTypeFor(t, stream) })
}

// TypeByName finds a file type by its case-insensitive name.
func (s *System) TypeByName(name string) (format.Type, bool) {
	return spi.First(s.encodings(), func(p spi.EncodingProvider) (format.Type, bool) { return p.TypeByName(name) })
}

// TypeBySuffix finds a file type by its extension, with or without the
// leading dot.
func (s *System) TypeBySuffix(suffix string) (format.Type, bool) {
	return spi.First(s.encodings(), func(p spi.EncodingProvider) (format.Type, bool) { return p.TypeBySuffix(suffix) })
}
