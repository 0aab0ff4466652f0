// SPDX-License-Identifier: EPL-2.0

package pcm

import (
	"errors"
	"fmt"
	"io"
)

// Layout describes how one sample is stored.
type Layout struct {
	Bits      int
	Float     bool
	Signed    bool
	BigEndian bool
}

// Valid reports whether the layout can be packed.
func (l Layout) Valid() bool {
	if l.Float {
		return l.Bits == 32
	}
	return ValidBitDepth(l.Bits)
}

// Bytes is the storage size of one sample.
func (l Layout) Bytes() int { return l.Bits / 8 }

func (l Layout) encode(dst []byte, x float32) {
	if l.Float {
		PutFloat32(dst, x, l.BigEndian)
		return
	}
	Put(dst, FloatToInt(x, l.Bits), l.Bits, l.Signed, l.BigEndian)
}

func (l Layout) decode(src []byte) float32 {
	if l.Float {
		return GetFloat32(src, l.BigEndian)
	}
	return IntToFloat(Get(src, l.Bits, l.Signed, l.BigEndian), l.Bits)
}

// FrameReader decodes packed interleaved samples from a byte stream.
type FrameReader struct {
	r        io.Reader
	layout   Layout
	channels int
	buf      []byte
	eof      bool
}

// NewFrameReader returns a reader of channels-wide frames stored as layout.
func NewFrameReader(r io.Reader, layout Layout, channels int) *FrameReader {
	return &FrameReader{r: r, layout: layout, channels: channels}
}

// Channels is the frame width the reader was created with.
func (f *FrameReader) Channels() int { return f.channels }

// ReadSamples fills dst with whole frames. A trailing partial frame is
// dropped.
func (f *FrameReader) ReadSamples(dst []float32) (int, error) {
	if f.eof {
		return 0, io.EOF
	}

	frames := len(dst) / f.channels
	if frames == 0 {
		return 0, nil
	}

	width := f.layout.Bytes()
	need := frames * f.channels * width
	if cap(f.buf) < need {
		f.buf = make([]byte, need)
	}
	f.buf = f.buf[:need]

	n, err := io.ReadFull(f.r, f.buf)
	if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
		f.eof = true
		err = io.EOF
	} else if err != nil {
		return 0, fmt.Errorf("reading samples: %w", err)
	}

	samples := n / (f.channels * width) * f.channels
	for i := range samples {
		dst[i] = f.layout.decode(f.buf[i*width:])
	}

	if samples == 0 && err != nil {
		return 0, err
	}
	return samples, err
}

// SampleReader is the pulling side of an audio stream.
type SampleReader interface {
	Channels() int
	ReadSamples(dst []float32) (int, error)
}

// WriteFrames pulls every sample out of src, packs it as layout and writes
// it to w. It returns the number of bytes written.
func WriteFrames(w io.Writer, src SampleReader, layout Layout, bufFrames int) (int64, error) {
	if !layout.Valid() {
		return 0, ErrUnsupportedBitDepth
	}

	channels := src.Channels()
	width := layout.Bytes()
	samples := make([]float32, max(bufFrames, 1)*channels)
	out := make([]byte, len(samples)*width)

	var written int64
	for {
		n, err := src.ReadSamples(samples)
		if n > 0 {
			for i := range n {
				layout.encode(out[i*width:], samples[i])
			}
			m, werr := w.Write(out[:n*width])
			written += int64(m)
			if werr != nil {
				return written, werr
			}
		}

		if errors.Is(err, io.EOF) {
			return written, nil
		}
		if err != nil {
			return written, err
		}
	}
}
