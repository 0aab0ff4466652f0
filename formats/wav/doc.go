// SPDX-License-Identifier: EPL-2.0

// Package wav provides the WAVE codec providers.
//
// Reader and Writer plug into an spi.Registry under the codec domain; the
// package registers both into spi.Default() on import. Parsing and encoding
// go through github.com/go-audio/wav.
//
// # Supported Formats
//
//   - PCM 8-bit (unsigned), 16, 24 and 32-bit (signed), little-endian
//   - Any channel count and sample rate
//   - LIST/INFO title, artist and comment, reported as format properties
//
// IEEE float and compressed WAVE files are rejected, so the dispatcher
// moves on to the next reader.
//
// # Decoding
//
//	out := wav.Reader{}.Decode(file)
//	if out.Kind() != spi.Success {
//	    // out.Reason() or out.Err()
//	}
//	stream := out.Value()
//	fmt.Println(stream.Format()) // PCM_SIGNED 16000.0 Hz, 16 bit, mono, little-endian
//
// # Writing
//
//	out := wav.Writer{}.Write(stream, format.WAVE, file)
//
// The writer accepts streams whose format is integer PCM at one of the
// depths above. Use audio.Relabel to pick the stored depth for a float
// stream. WriteWAV16 is a shortcut for mono 16-bit sample slices:
//
//	err := wav.WriteWAV16(file, 8000, samples)
package wav
