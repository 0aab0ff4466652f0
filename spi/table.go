// SPDX-License-Identifier: EPL-2.0

package spi

import (
	"slices"
	"strings"

	"github.com/ik5/audsys/audio"
	"github.com/ik5/audsys/format"
)

// EncodingTable is an EncodingProvider answering from fixed lists.
// Stream-dependent writer queries go through StreamTypes.
type EncodingTable struct {
	ID             string
	ReadEncodings  []format.Encoding
	WriteEncodings []format.Encoding
	ReadTypes      []format.Type
	WriteTypes     []format.Type

	// StreamTypes returns the file types some writer can produce from a
	// stream. Only types also listed in WriteTypes are reported. Nil means
	// no stream is writable.
	StreamTypes func(s audio.Stream) []format.Type
}

func (t *EncodingTable) Name() string { return t.ID }

func (t *EncodingTable) ReaderEncodings() []format.Encoding {
	return slices.Clone(t.ReadEncodings)
}

func (t *EncodingTable) IsReaderSupportedEncoding(e format.Encoding) bool {
	return format.ContainsEncoding(t.ReadEncodings, e)
}

func (t *EncodingTable) WriterEncodings() []format.Encoding {
	return slices.Clone(t.WriteEncodings)
}

func (t *EncodingTable) IsWriterSupportedEncoding(e format.Encoding) bool {
	return format.ContainsEncoding(t.WriteEncodings, e)
}

func (t *EncodingTable) WriterEncodingsForType(ft format.Type) []format.Encoding {
	if !t.IsWriterSupportedType(ft) {
		return []format.Encoding{}
	}
	return t.WriterEncodings()
}

func (t *EncodingTable) WriterEncodingsFor(s audio.Stream) []format.Encoding {
	if len(t.WriterTypesFor(s)) == 0 {
		return []format.Encoding{}
	}
	return t.WriterEncodings()
}

func (t *EncodingTable) IsWriterSupportedEncodingFor(e format.Encoding, s audio.Stream) bool {
	return len(t.WriterTypesFor(s)) > 0 && t.IsWriterSupportedEncoding(e)
}

func (t *EncodingTable) EncodingByName(name string) (format.Encoding, bool) {
	for _, e := range t.ReadEncodings {
		if strings.EqualFold(e.Name(), name) {
			return e, true
		}
	}
	for _, e := range t.WriteEncodings {
		if strings.EqualFold(e.Name(), name) {
			return e, true
		}
	}
	return format.Encoding{}, false
}

func (t *EncodingTable) ReaderTypes() []format.Type {
	return slices.Clone(t.ReadTypes)
}

func (t *EncodingTable) IsReaderSupportedType(ft format.Type) bool {
	return format.ContainsType(t.ReadTypes, ft)
}

func (t *EncodingTable) WriterTypes() []format.Type {
	return slices.Clone(t.WriteTypes)
}

func (t *EncodingTable) IsWriterSupportedType(ft format.Type) bool {
	return format.ContainsType(t.WriteTypes, ft)
}

func (t *EncodingTable) WriterTypesFor(s audio.Stream) []format.Type {
	out := []format.Type{}
	if t.StreamTypes == nil || s == nil {
		return out
	}
	for _, ft := range t.StreamTypes(s) {
		if t.IsWriterSupportedType(ft) && !format.ContainsType(out, ft) {
			out = append(out, ft)
		}
	}
	return out
}

func (t *EncodingTable) IsWriterSupportedTypeFor(ft format.Type, s audio.Stream) bool {
	return format.ContainsType(t.WriterTypesFor(s), ft)
}

func (t *EncodingTable) TypeByName(name string) (format.Type, bool) {
	for _, ft := range t.allTypes() {
		if strings.EqualFold(ft.Name(), name) {
			return ft, true
		}
	}
	return format.Type{}, false
}

func (t *EncodingTable) TypeBySuffix(suffix string) (format.Type, bool) {
	suffix = strings.TrimPrefix(suffix, ".")
	for _, ft := range t.allTypes() {
		if strings.EqualFold(ft.Extension(), suffix) {
			return ft, true
		}
	}
	return format.Type{}, false
}

func (t *EncodingTable) allTypes() []format.Type {
	out := slices.Clone(t.ReadTypes)
	for _, ft := range t.WriteTypes {
		if !format.ContainsType(out, ft) {
			out = append(out, ft)
		}
	}
	return out
}
