// SPDX-License-Identifier: EPL-2.0

// Package au reads and writes Sun/NeXT audio files (.au, .snd).
//
// Supported encodings are linear PCM with 8, 16, 24 or 32 bit samples and
// 32-bit IEEE float, all big-endian. The package registers a Reader and a
// Writer into spi.Default when imported.
package au
