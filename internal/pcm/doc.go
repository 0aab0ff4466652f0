// SPDX-License-Identifier: EPL-2.0

// Package pcm converts between the float32 samples carried by audio.Source
// and the integer samples stored in files.
package pcm
