// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"fmt"
	"io"
	"math"

	"github.com/ik5/audsys/format"
	"github.com/ik5/audsys/internal/pcm"
)

// Resampler converts src to another sample rate with cubic interpolation.
// Samples stay interleaved and the channel count is kept. A one-pole
// low-pass filter runs on the input when downsampling.
type Resampler struct {
	src      Source
	srcRate  float64
	dstRate  float64
	ratio    float64 // source frames per output frame
	channels int

	// window[0..3] hold frames t-1, t0, t+1, t+2. Slots past either end
	// of the source repeat the nearest real frame and are not marked present.
	window  [4][]float32
	present [4]bool
	primed  bool

	// fractional position between window[1] and window[2]
	pos float64

	srcBuf []float32
	eof    bool

	lowPass     bool
	alpha       float32
	filterState []float32
}

// NewResampler returns a Resampler producing dstRate Hz from src.
func NewResampler(src Source, dstRate int) *Resampler {
	channels := src.Channels()
	ratio := float64(src.SampleRate()) / float64(dstRate)

	r := &Resampler{
		src:         src,
		srcRate:     float64(src.SampleRate()),
		dstRate:     float64(dstRate),
		ratio:       ratio,
		channels:    channels,
		srcBuf:      make([]float32, 4096),
		lowPass:     ratio > 1.0,
		filterState: make([]float32, channels),
	}
	if r.lowPass {
		r.alpha = 0.5
	}

	for i := range r.window {
		r.window[i] = make([]float32, channels)
	}

	return r
}

func (r *Resampler) SampleRate() int { return int(r.dstRate) }
func (r *Resampler) Channels() int   { return r.channels }
func (r *Resampler) BufSize() int    { return r.src.BufSize() }

// Format is the source format moved to the destination rate.
func (r *Resampler) Format() format.Format {
	return FormatOf(r.src).WithSampleRate(float32(r.dstRate))
}

// FrameLength scales the source frame length by the rate ratio.
func (r *Resampler) FrameLength() int64 {
	n := FrameLengthOf(r.src)
	if n == format.NotSpecified {
		return n
	}
	return int64(math.Ceil(float64(n) * r.dstRate / r.srcRate))
}

func (r *Resampler) Close() error {
	if err := r.src.Close(); err != nil {
		return fmt.Errorf("resampler: %w", err)
	}
	return nil
}

func (r *Resampler) smooth(frame []float32) {
	if !r.lowPass {
		return
	}
	for c := range r.channels {
		frame[c] = r.alpha*frame[c] + (1-r.alpha)*r.filterState[c]
		r.filterState[c] = frame[c]
	}
}

// pull reads the next source frame into slot i. At the end of the source
// the slot repeats slot i-1.
func (r *Resampler) pull(i int) error {
	if !r.eof {
		n, err := r.src.ReadSamples(r.srcBuf[:r.channels])
		if n > 0 {
			copy(r.window[i], r.srcBuf[:n])
			r.smooth(r.window[i])
			r.present[i] = true
		}
		switch {
		case err == io.EOF:
			r.eof = true
		case err != nil:
			return fmt.Errorf("resampler: %w", err)
		}
		if n > 0 {
			return nil
		}
	}

	copy(r.window[i], r.window[i-1])
	r.present[i] = false
	return nil
}

// advance shifts the window by one frame.
func (r *Resampler) advance() error {
	copy(r.window[0], r.window[1])
	copy(r.window[1], r.window[2])
	copy(r.window[2], r.window[3])
	r.present[0], r.present[1], r.present[2] = r.present[1], r.present[2], r.present[3]
	return r.pull(3)
}

// prime loads the first source frame into window[1], repeated into
// window[0], and the two following frames after it.
func (r *Resampler) prime() error {
	n, err := r.src.ReadSamples(r.srcBuf[:r.channels])
	switch {
	case err == io.EOF:
		r.eof = true
	case err != nil:
		return fmt.Errorf("resampler: %w", err)
	}
	if n == 0 {
		return io.EOF
	}

	copy(r.filterState, r.srcBuf[:n])
	copy(r.window[0], r.srcBuf[:n])
	copy(r.window[1], r.srcBuf[:n])
	r.present[1] = true
	r.primed = true

	if err := r.pull(2); err != nil {
		return err
	}
	return r.pull(3)
}

// ReadSamples produces samples at the destination rate. len(dst) must be a
// multiple of the channel count. Output position t maps to source frame
// t*ratio, so the first output equals the first source frame and output
// stops once the position passes the last source frame.
func (r *Resampler) ReadSamples(dst []float32) (int, error) {
	if len(dst)%r.channels != 0 {
		return 0, ErrInvalidDstSize
	}

	if !r.primed {
		if r.eof {
			return 0, io.EOF
		}
		if err := r.prime(); err != nil {
			return 0, err
		}
	}

	written := 0
	frames := len(dst) / r.channels

	for written < frames {
		for r.pos >= 1.0 && r.present[1] {
			r.pos -= 1.0
			if err := r.advance(); err != nil {
				return written * r.channels, err
			}
		}

		if !r.present[1] {
			return written * r.channels, io.EOF
		}

		x := float32(r.pos)
		out := dst[written*r.channels : (written+1)*r.channels]
		for c := range out {
			out[c] = pcm.CubicInterpolate(r.window[0][c], r.window[1][c], r.window[2][c], r.window[3][c], x)
		}

		written++
		r.pos += r.ratio
	}

	return written * r.channels, nil
}
