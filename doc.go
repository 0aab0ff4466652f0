// SPDX-License-Identifier: EPL-2.0

// Package audsys is a facade over pluggable audio codec providers.
//
// Codec packages under formats/ register readers, writers and capability
// tables into a provider registry (see package spi). A System asks that
// registry for candidates on every call, aggregates their capabilities and
// dispatches describe, decode and write actions to them in registration
// order: a provider that does not handle the input is skipped, a provider
// whose input or output breaks ends the call with its error.
//
// # Supported Formats
//
//   - WAV (PCM 8/16/24/32-bit) via formats/wav, read and write
//   - AIFF and AIFF-C (PCM 8/16/24/32-bit) via formats/aiff, AIFF write
//   - AU (PCM 8/16/24/32-bit and 32-bit float) via formats/au, read and write
//   - SND via formats/snd, written as AU
//   - MP3 via formats/mp3, read only
//   - Ogg Vorbis via formats/vorbis, read only
//
// # Quick Start
//
// The package-level functions use Default(), which sees every provider
// installed into spi.Default():
//
//	ff, err := audsys.DescribeFile("input.wav")
//	fmt.Println(ff.Format(), ff.FrameLengthLong())
//
//	stream, err := audsys.DecodeFile("input.mp3")
//	defer stream.Close()
//	n, err := audsys.WriteFile(stream, format.WAVE, 1, "output.wav")
//
// Failures are reported with sentinel errors:
//
//	_, err := audsys.DescribeFile("notes.txt")
//	if errors.Is(err, audsys.ErrUnsupported) {
//	    // no reader recognised the file
//	}
//
// # Conversion
//
// Convert changes the sample rate, mixes down to mono and relabels the
// sample layout:
//
//	target := format.NewPCM(8000, 16, 1, true, false, nil)
//	mono8k, err := audsys.Convert(target, stream)
//
// ResampleToMono16 collects a whole stream as 16-bit mono samples.
//
// # Private Systems
//
// New builds a System with its own registry, logger and metrics:
//
//	reg := spi.NewRegistry()
//	bridge.Register(reg, nil)
//	sys := audsys.New(
//	    audsys.WithRegistry(reg),
//	    audsys.WithLogger(slog.Default()),
//	    audsys.WithMetrics(audsys.NewMetrics()),
//	)
package audsys
