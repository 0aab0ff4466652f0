// SPDX-License-Identifier: EPL-2.0

// Package audio provides the stream abstraction shared by every codec and
// the processing stages built on it.
//
// # Streams
//
// A Source yields interleaved float32 samples in [-1,1]. A Stream adds the
// format the samples were decoded from (or should be encoded to) and a frame
// count:
//
//	type Stream interface {
//	    Source
//	    Format() format.Format
//	    FrameLength() int64
//	}
//
// Decoders return Streams; writers read them. NewStream attaches format
// information to any Source, and Relabel changes only the declared PCM
// layout (encoding, sample size, byte order) of an existing Stream.
//
// # Processing
//
// Resampler changes the sample rate using cubic interpolation, MonoMixer
// averages channels down to one. Both are Streams themselves, reporting the
// format of their input adjusted to their output:
//
//	mono := audio.NewMonoMixer(audio.NewResampler(stream, 16000))
//	buf := make([]float32, 4096)
//	n, err := mono.ReadSamples(buf)
//
// # End of stream
//
// ReadSamples returns io.EOF once no data is left. Samples returned together
// with io.EOF are valid and must be processed first.
package audio
