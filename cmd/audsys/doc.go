// SPDX-License-Identifier: EPL-2.0

// Package main hosts the audsys command line tool.
//
// The Cobra command tree exposes the audsys facade: info describes files,
// types lists what the installed providers can read and write, convert
// decodes a file, optionally resamples or mixes it down, and writes it in
// another type. Configuration is loaded once per invocation and flags
// override it.
package main
