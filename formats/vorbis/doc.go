// SPDX-License-Identifier: EPL-2.0

// Package vorbis provides the Ogg Vorbis reader provider.
//
// This package uses github.com/jfreymuth/oggvorbis to decode Ogg Vorbis
// files. The Reader and an EncodingTable declaring VORBISENC/OGG are
// registered into spi.Default() under the codec domain on import.
//
// # Describing
//
// Describe reports type OGG with encoding VORBISENC. The frame length and
// duration are known when the input is seekable, which every input handed
// over by the facade is. The nominal bit rate and the TITLE, ARTIST and
// COMMENT (or DESCRIPTION) comments become descriptor properties:
//
//	ff := vorbis.Reader{}.Describe(file).Value()
//	title, _ := ff.Property(format.PropTitle)
//
// # Decoding
//
// Decode returns an audio.Stream of 32-bit float PCM in [-1.0, 1.0] with the
// channel count of the file, interleaved:
//
//	[L0, R0, L1, R1, L2, R2, ...]
//
// To convert to mono:
//
//	stream := vorbis.Reader{}.Decode(file).Value()
//	mono := audio.NewMonoMixer(stream)
//
// # Limitations
//
//   - Vorbis encoding is not supported (decoding only)
//   - Chained streams are decoded as a single logical stream
package vorbis
