// SPDX-License-Identifier: EPL-2.0

package au

import (
	"encoding/binary"
	"fmt"
	"io"

	"github.com/ik5/audsys/format"
	"github.com/ik5/audsys/internal/pcm"
)

const (
	magic       = 0x2e736e64 // ".snd"
	headerSize  = 24
	unknownSize = 0xffffffff
)

// Encoding codes from the file header.
const (
	codeULaw    = 1
	codePCM8    = 2
	codePCM16   = 3
	codePCM24   = 4
	codePCM32   = 5
	codeFloat32 = 6
	codeFloat64 = 7
	codeALaw    = 27
)

type header struct {
	dataOffset uint32
	dataSize   uint32
	encoding   uint32
	sampleRate uint32
	channels   uint32
}

func readHeader(r io.Reader) (header, error) {
	var raw [headerSize]byte
	if _, err := io.ReadFull(r, raw[:]); err != nil {
		return header{}, fmt.Errorf("reading AU header: %w", err)
	}

	if binary.BigEndian.Uint32(raw[0:4]) != magic {
		return header{}, ErrNotAuFile
	}

	h := header{
		dataOffset: binary.BigEndian.Uint32(raw[4:8]),
		dataSize:   binary.BigEndian.Uint32(raw[8:12]),
		encoding:   binary.BigEndian.Uint32(raw[12:16]),
		sampleRate: binary.BigEndian.Uint32(raw[16:20]),
		channels:   binary.BigEndian.Uint32(raw[20:24]),
	}

	if h.dataOffset < headerSize || h.channels == 0 || h.sampleRate == 0 {
		return header{}, ErrBadHeader
	}
	return h, nil
}

func (h header) put(dst []byte) {
	binary.BigEndian.PutUint32(dst[0:4], magic)
	binary.BigEndian.PutUint32(dst[4:8], h.dataOffset)
	binary.BigEndian.PutUint32(dst[8:12], h.dataSize)
	binary.BigEndian.PutUint32(dst[12:16], h.encoding)
	binary.BigEndian.PutUint32(dst[16:20], h.sampleRate)
	binary.BigEndian.PutUint32(dst[20:24], h.channels)
}

// layout maps an encoding code to a sample layout.
func layout(code uint32) (pcm.Layout, bool) {
	switch code {
	case codePCM8:
		return pcm.Layout{Bits: 8, Signed: true, BigEndian: true}, true
	case codePCM16:
		return pcm.Layout{Bits: 16, Signed: true, BigEndian: true}, true
	case codePCM24:
		return pcm.Layout{Bits: 24, Signed: true, BigEndian: true}, true
	case codePCM32:
		return pcm.Layout{Bits: 32, Signed: true, BigEndian: true}, true
	case codeFloat32:
		return pcm.Layout{Bits: 32, Float: true, BigEndian: true}, true
	default:
		return pcm.Layout{}, false
	}
}

// code picks the encoding code for writing a stream in f.
func code(f format.Format) (uint32, bool) {
	switch f.Encoding() {
	case format.PCMFloat:
		if f.SampleSizeInBits() == 32 {
			return codeFloat32, true
		}
	case format.PCMSigned, format.PCMUnsigned:
		switch f.SampleSizeInBits() {
		case 8:
			return codePCM8, true
		case 16:
			return codePCM16, true
		case 24:
			return codePCM24, true
		case 32:
			return codePCM32, true
		}
	}
	return 0, false
}

func (h header) format(l pcm.Layout) format.Format {
	rate := float32(h.sampleRate)
	channels := int(h.channels)
	if l.Float {
		return format.New(format.PCMFloat, rate, 32, channels, 4*channels, rate, true, nil)
	}
	return format.NewPCM(rate, l.Bits, channels, true, true, nil)
}
