// SPDX-License-Identifier: EPL-2.0

// Package bridge holds the facade-domain providers. Each of them answers by
// asking the codec-domain providers of the same registry, and never looks
// at facade-domain providers other than the exact types it names, so none
// of them can end up calling itself.
//
// EncodingProvider declares the PCM encodings and the WAVE, AU, SND and AIFF
// family of file types, and asks the codec writers which of those types a
// given stream can be written as.
//
// CompressionWriter accepts encoder properties and hands the stream to the
// first codec writer that takes it. The codec writers have no tunable
// encoders, so the properties are ignored.
//
// ResourceReader opens a file from an fs.FS and hands it to the codec
// readers:
//
//	rr := bridge.NewResourceReader(spi.Default(), nil)
//	out := rr.DecodeResource(os.DirFS("sounds"), "beep.wav")
//
// Importing the package registers the bridge providers into spi.Default().
// Register also installs every format package, for private registries.
package bridge
