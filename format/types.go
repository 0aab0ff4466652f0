// SPDX-License-Identifier: EPL-2.0

package format

import "strings"

// Type identifies an audio file container. Two types are equal when their
// name and extension are equal.
type Type struct {
	name      string
	extension string
}

// NewType returns a container type with the given name and file extension
// (without the leading dot).
func NewType(name, extension string) Type {
	return Type{name: name, extension: strings.TrimPrefix(extension, ".")}
}

// Well known container types.
var (
	WAVE = NewType("WAVE", "wav")
	AU   = NewType("AU", "au")
	SND  = NewType("SND", "snd")
	AIFF = NewType("AIFF", "aif")
	AIFC = NewType("AIFF-C", "aifc")
	MP3  = NewType("MP3", "mp3")
	OGG  = NewType("OGG", "ogg")
)

func (t Type) Name() string      { return t.name }
func (t Type) Extension() string { return t.extension }
func (t Type) String() string    { return t.name }

// IsZero reports whether t is the zero Type.
func (t Type) IsZero() bool { return t == Type{} }

// Encoding identifies how samples are represented.
type Encoding struct {
	name string
}

// NewEncoding returns an encoding with the given name.
func NewEncoding(name string) Encoding {
	return Encoding{name: name}
}

// Well known encodings.
var (
	PCMSigned   = NewEncoding("PCM_SIGNED")
	PCMUnsigned = NewEncoding("PCM_UNSIGNED")
	PCMFloat    = NewEncoding("PCM_FLOAT")
	ULaw        = NewEncoding("ULAW")
	ALaw        = NewEncoding("ALAW")
	MPEG1L3     = NewEncoding("MPEG1L3")
	Vorbis      = NewEncoding("VORBISENC")
)

func (e Encoding) Name() string   { return e.name }
func (e Encoding) String() string { return e.name }

// IsZero reports whether e is the zero Encoding.
func (e Encoding) IsZero() bool { return e == Encoding{} }

// IsPCM reports whether e is one of the linear PCM encodings.
func (e Encoding) IsPCM() bool {
	return e == PCMSigned || e == PCMUnsigned || e == PCMFloat
}

// ContainsType reports whether types holds t.
func ContainsType(types []Type, t Type) bool {
	for _, candidate := range types {
		if candidate == t {
			return true
		}
	}
	return false
}

// ContainsEncoding reports whether encodings holds e.
func ContainsEncoding(encodings []Encoding, e Encoding) bool {
	for _, candidate := range encodings {
		if candidate == e {
			return true
		}
	}
	return false
}
