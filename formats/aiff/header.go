// SPDX-License-Identifier: EPL-2.0

package aiff

import (
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"math"

	"github.com/ik5/audsys/format"
	"github.com/ik5/audsys/internal/pcm"
)

const (
	formAIFF = "AIFF"
	formAIFC = "AIFC"

	maxCommSize = 512
)

// header is what the FORM, COMM and SSND chunks say about a file.
type header struct {
	form        string
	fileSize    int64
	channels    int
	frames      int64
	bits        int
	sampleRate  float64
	compression string
	dataStart   int64
	hasComm     bool
	hasData     bool
}

// readHeader walks the chunks of an AIFF or AIFF-C file until it has seen
// both COMM and SSND. rs must be positioned at the FORM header.
func readHeader(rs io.ReadSeeker) (header, error) {
	var h header

	var form [12]byte
	if _, err := io.ReadFull(rs, form[:]); err != nil {
		return h, fmt.Errorf("%w: %w", ErrNotAiffFile, err)
	}
	h.form = string(form[8:12])
	if string(form[0:4]) != "FORM" || (h.form != formAIFF && h.form != formAIFC) {
		return h, ErrNotAiffFile
	}
	h.fileSize = int64(binary.BigEndian.Uint32(form[4:8])) + 8
	h.compression = "NONE"

	pos := int64(len(form))
	for !h.hasComm || !h.hasData {
		var ch [8]byte
		if _, err := io.ReadFull(rs, ch[:]); err != nil {
			if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
				break
			}
			return h, err
		}
		id := string(ch[0:4])
		size := int64(binary.BigEndian.Uint32(ch[4:8]))
		pos += 8
		next := pos + size + size%2

		switch id {
		case "COMM":
			if err := h.readComm(rs, size); err != nil {
				return h, err
			}
		case "SSND":
			var ssnd [8]byte
			if _, err := io.ReadFull(rs, ssnd[:]); err != nil {
				return h, fmt.Errorf("%w: short SSND chunk", ErrMissingChunk)
			}
			h.dataStart = pos + 8 + int64(binary.BigEndian.Uint32(ssnd[0:4]))
			h.hasData = true
		}

		if _, err := rs.Seek(next, io.SeekStart); err != nil {
			return h, err
		}
		pos = next
	}

	if !h.hasComm {
		return h, fmt.Errorf("%w: COMM", ErrMissingChunk)
	}
	if !h.hasData && h.frames > 0 {
		return h, fmt.Errorf("%w: SSND", ErrMissingChunk)
	}
	return h, nil
}

func (h *header) readComm(r io.Reader, size int64) error {
	if size < 18 || size > maxCommSize {
		return fmt.Errorf("%w: COMM size %d", ErrNotAiffFile, size)
	}

	raw := make([]byte, size)
	if _, err := io.ReadFull(r, raw); err != nil {
		return fmt.Errorf("%w: short COMM chunk", ErrNotAiffFile)
	}

	h.channels = int(binary.BigEndian.Uint16(raw[0:2]))
	h.frames = int64(binary.BigEndian.Uint32(raw[2:6]))
	h.bits = int(binary.BigEndian.Uint16(raw[6:8]))
	h.sampleRate = extended(raw[8:18])

	if h.form == formAIFC {
		if size < 22 {
			return fmt.Errorf("%w: AIFF-C COMM without compression type", ErrNotAiffFile)
		}
		h.compression = string(raw[18:22])
	}
	h.hasComm = true
	return nil
}

// extended decodes an IEEE 754 80-bit extended float.
func extended(b []byte) float64 {
	exp := int(binary.BigEndian.Uint16(b[0:2]) & 0x7fff)
	mant := binary.BigEndian.Uint64(b[2:10])
	if exp == 0 && mant == 0 {
		return 0
	}

	v := math.Ldexp(float64(mant), exp-16383-63)
	if b[0]&0x80 != 0 {
		v = -v
	}
	return v
}

// layout maps the COMM description to a sample layout.
func (h header) layout() (pcm.Layout, error) {
	var l pcm.Layout
	switch h.compression {
	case "NONE", "twos":
		l = pcm.Layout{Bits: h.bits, Signed: true, BigEndian: true}
	case "sowt":
		l = pcm.Layout{Bits: h.bits, Signed: true}
	case "fl32", "FL32":
		l = pcm.Layout{Bits: 32, Float: true, BigEndian: true}
	default:
		return l, fmt.Errorf("%w: %q", ErrUnsupportedCompression, h.compression)
	}

	if !l.Valid() || h.channels < 1 || h.sampleRate <= 0 {
		return l, fmt.Errorf("%w: %d bit, %d channels, %.1f Hz",
			ErrUnsupportedAiffLayout, h.bits, h.channels, h.sampleRate)
	}
	return l, nil
}

func (h header) fileType() format.Type {
	if h.form == formAIFC {
		return format.AIFC
	}
	return format.AIFF
}

func (h header) format(l pcm.Layout) format.Format {
	rate := float32(h.sampleRate)
	if l.Float {
		return format.New(format.PCMFloat, rate, 32, h.channels, 4*h.channels, rate, true, nil)
	}
	return format.NewPCM(rate, l.Bits, h.channels, true, l.BigEndian, nil)
}
