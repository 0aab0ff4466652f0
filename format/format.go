// SPDX-License-Identifier: EPL-2.0

package format

import (
	"fmt"
	"strings"
)

// NotSpecified marks an integer or float field whose value is unknown.
const NotSpecified = -1

// Format describes the arrangement of samples in a stream.
type Format struct {
	encoding         Encoding
	sampleRate       float32
	sampleSizeInBits int
	channels         int
	frameSize        int
	frameRate        float32
	bigEndian        bool
	properties       Properties
}

// New returns a Format with every field given explicitly. props may be nil.
func New(encoding Encoding, sampleRate float32, sampleSizeInBits, channels, frameSize int,
	frameRate float32, bigEndian bool, props Properties) Format {
	return Format{
		encoding:         encoding,
		sampleRate:       sampleRate,
		sampleSizeInBits: sampleSizeInBits,
		channels:         channels,
		frameSize:        frameSize,
		frameRate:        frameRate,
		bigEndian:        bigEndian,
		properties:       props.Clone(),
	}
}

// NewPCM returns a linear PCM Format. The frame size is derived from the
// sample size and channel count, and the frame rate equals the sample rate.
func NewPCM(sampleRate float32, sampleSizeInBits, channels int, signed, bigEndian bool, props Properties) Format {
	encoding := PCMUnsigned
	if signed {
		encoding = PCMSigned
	}

	frameSize := NotSpecified
	if sampleSizeInBits != NotSpecified && channels != NotSpecified {
		frameSize = (sampleSizeInBits + 7) / 8 * channels
	}

	return New(encoding, sampleRate, sampleSizeInBits, channels, frameSize, sampleRate, bigEndian, props)
}

func (f Format) Encoding() Encoding    { return f.encoding }
func (f Format) SampleRate() float32   { return f.sampleRate }
func (f Format) SampleSizeInBits() int { return f.sampleSizeInBits }
func (f Format) Channels() int         { return f.channels }
func (f Format) FrameSize() int        { return f.frameSize }
func (f Format) FrameRate() float32    { return f.frameRate }
func (f Format) BigEndian() bool       { return f.bigEndian }

// Properties returns a copy of the format properties.
func (f Format) Properties() Properties { return f.properties.Clone() }

// Property returns a single property value.
func (f Format) Property(key string) (any, bool) {
	v, ok := f.properties[key]
	return v, ok
}

// WithSampleRate returns a copy of f running at rate. The frame rate follows
// the sample rate for PCM encodings.
func (f Format) WithSampleRate(rate float32) Format {
	out := f
	out.sampleRate = rate
	if f.encoding.IsPCM() {
		out.frameRate = rate
	}
	return out
}

// WithChannels returns a copy of f carrying channels channels.
func (f Format) WithChannels(channels int) Format {
	out := f
	out.channels = channels
	if f.sampleSizeInBits != NotSpecified && channels != NotSpecified {
		out.frameSize = (f.sampleSizeInBits + 7) / 8 * channels
	} else {
		out.frameSize = NotSpecified
	}
	return out
}

// Matches reports whether a stream in format f can be handled as other.
// NotSpecified fields in other match anything; endianness only matters for
// samples wider than one byte.
func (f Format) Matches(other Format) bool {
	if f.encoding != other.encoding {
		return false
	}
	if other.channels != NotSpecified && other.channels != f.channels {
		return false
	}
	if other.sampleRate != NotSpecified && other.sampleRate != f.sampleRate {
		return false
	}
	if other.sampleSizeInBits != NotSpecified && other.sampleSizeInBits != f.sampleSizeInBits {
		return false
	}
	if other.frameSize != NotSpecified && other.frameSize != f.frameSize {
		return false
	}
	if other.frameRate != NotSpecified && other.frameRate != f.frameRate {
		return false
	}
	if f.sampleSizeInBits > 8 && f.bigEndian != other.bigEndian {
		return false
	}
	return true
}

func (f Format) String() string {
	var b strings.Builder
	b.WriteString(f.encoding.String())

	if f.sampleRate == NotSpecified {
		b.WriteString(" unknown sample rate")
	} else {
		fmt.Fprintf(&b, " %.1f Hz", f.sampleRate)
	}

	if f.sampleSizeInBits == NotSpecified {
		b.WriteString(", unknown bits per sample")
	} else {
		fmt.Fprintf(&b, ", %d bit", f.sampleSizeInBits)
	}

	switch f.channels {
	case 1:
		b.WriteString(", mono")
	case 2:
		b.WriteString(", stereo")
	case NotSpecified:
		b.WriteString(", unknown number of channels")
	default:
		fmt.Fprintf(&b, ", %d channels", f.channels)
	}

	if f.sampleSizeInBits > 8 {
		if f.bigEndian {
			b.WriteString(", big-endian")
		} else {
			b.WriteString(", little-endian")
		}
	}

	return b.String()
}
