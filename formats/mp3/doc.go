// SPDX-License-Identifier: EPL-2.0

// Package mp3 provides the MP3 reader provider.
//
// This package uses github.com/hajimehoshi/go-mp3 to decode MP3 files. The
// Reader and an EncodingTable declaring MPEG1L3/MP3 are registered into
// spi.Default() under the codec domain on import.
//
// # Describing
//
// Describe reports the file as stored: type MP3, encoding MPEG1L3, the
// sample rate and two channels. With a seekable input go-mp3 scans every
// frame header, so the frame length, duration and average bit rate are
// known:
//
//	ff := mp3.Reader{}.Describe(file).Value()
//	d, _ := ff.Property(format.PropDuration) // microseconds
//
// # Decoding
//
// Decode returns an audio.Stream of 16-bit signed little-endian stereo PCM,
// which is what go-mp3 always produces:
//
//	stream := mp3.Reader{}.Decode(file).Value()
//	mono := audio.NewMonoMixer(audio.NewResampler(stream, 8000))
//
// Input that starts with neither an ID3v2 tag nor an MPEG frame sync is
// rejected without running the decoder.
//
// # Limitations
//
//   - MP3 writing is not supported (decoding only)
//   - Output is always stereo (use MonoMixer to convert)
package mp3
