// SPDX-License-Identifier: EPL-2.0

package pcm

import (
	"errors"
	"fmt"
	"io"

	goaudio "github.com/go-audio/audio"
)

// IntDecoder is the sample-pulling half of the go-audio wav and aiff
// decoders. The end of data is a call returning 0 samples or io.EOF.
type IntDecoder interface {
	PCMBuffer(buf *goaudio.IntBuffer) (int, error)
}

// IntEncoder is the sample-pushing half of the go-audio encoders.
type IntEncoder interface {
	Write(buf *goaudio.IntBuffer) error
}

// IntReader adapts an IntDecoder to float samples. 8-bit values are
// normalised per layout.Signed whichever way the decoder reports them.
type IntReader struct {
	dec      IntDecoder
	layout   Layout
	channels int
	buf      *goaudio.IntBuffer
	eof      bool
}

// NewIntReader reads channels-wide frames stored as layout from dec.
func NewIntReader(dec IntDecoder, layout Layout, channels int) *IntReader {
	return &IntReader{dec: dec, layout: layout, channels: channels}
}

func (r *IntReader) value(v int) int {
	if r.layout.Bits != 8 {
		return v
	}
	if r.layout.Signed {
		return int(int8(v))
	}
	return v - 128
}

// Channels is the frame width the reader was created with.
func (r *IntReader) Channels() int { return r.channels }

func (r *IntReader) ReadSamples(dst []float32) (int, error) {
	if r.eof {
		return 0, io.EOF
	}

	want := len(dst) / r.channels * r.channels
	if want == 0 {
		return 0, nil
	}

	if r.buf == nil || cap(r.buf.Data) < want {
		r.buf = &goaudio.IntBuffer{Data: make([]int, want)}
	}
	r.buf.Data = r.buf.Data[:want]

	n, err := r.dec.PCMBuffer(r.buf)
	switch {
	case errors.Is(err, io.EOF):
		r.eof = true
	case err != nil:
		return 0, fmt.Errorf("reading samples: %w", err)
	case n == 0:
		r.eof = true
	}
	if n == 0 {
		return 0, io.EOF
	}

	for i, v := range r.buf.Data[:n] {
		dst[i] = IntToFloat(r.value(v), r.layout.Bits)
	}
	return n, nil
}

// WriteInts pulls every sample out of src and hands it to enc as integers
// stored per layout. Unsigned 8-bit samples are offset by 128. It returns
// the number of frames encoded.
func WriteInts(enc IntEncoder, src SampleReader, sampleRate int, layout Layout, bufFrames int) (int64, error) {
	if layout.Float || !layout.Valid() {
		return 0, ErrUnsupportedBitDepth
	}

	bits := layout.Bits
	offset := 0
	if bits == 8 && !layout.Signed {
		offset = 128
	}

	channels := src.Channels()
	samples := make([]float32, max(bufFrames, 1)*channels)
	buf := &goaudio.IntBuffer{
		Format:         &goaudio.Format{NumChannels: channels, SampleRate: sampleRate},
		Data:           make([]int, len(samples)),
		SourceBitDepth: bits,
	}

	var frames int64
	for {
		n, err := src.ReadSamples(samples)
		if n > 0 {
			n -= n % channels
			buf.Data = buf.Data[:n]
			for i, x := range samples[:n] {
				buf.Data[i] = FloatToInt(x, bits) + offset
			}
			if werr := enc.Write(buf); werr != nil {
				return frames, werr
			}
			frames += int64(n / channels)
		}

		if errors.Is(err, io.EOF) {
			return frames, nil
		}
		if err != nil {
			return frames, err
		}
	}
}
