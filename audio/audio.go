// SPDX-License-Identifier: EPL-2.0

package audio

import "github.com/ik5/audsys/format"

// Source is a pull-based stream of interleaved float32 samples.
type Source interface {
	// SampleRate of the PCM stream in Hz.
	SampleRate() int
	// Channels count (e.g., 1=mono, 2=stereo).
	Channels() int
	// ReadSamples fills dst with interleaved float32 samples in [-1,1].
	// Returns number of float32 values written (not frames). When n == 0 with err == io.EOF, the stream is finished.
	ReadSamples(dst []float32) (n int, err error)

	BufSize() int

	// Close releases any resources.
	Close() error
}

// Stream is a Source that also knows how its samples were stored and how
// long it is. Decoders return Streams and writers consume them.
type Stream interface {
	Source

	// Format describes the sample layout the stream was decoded from, or
	// the layout a writer should use.
	Format() format.Format
	// FrameLength is the number of frames in the stream, or
	// format.NotSpecified when unknown.
	FrameLength() int64
}

// FormatOf returns the format of src. Plain sources are described as
// native-endian 32-bit float PCM.
func FormatOf(src Source) format.Format {
	if s, ok := src.(Stream); ok {
		return s.Format()
	}

	rate := float32(src.SampleRate())
	return format.New(format.PCMFloat, rate, 32, src.Channels(), 4*src.Channels(), rate, false, nil)
}

// FrameLengthOf returns the frame count of src, or format.NotSpecified for
// plain sources.
func FrameLengthOf(src Source) int64 {
	if s, ok := src.(Stream); ok {
		return s.FrameLength()
	}
	return format.NotSpecified
}
