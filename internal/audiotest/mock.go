// SPDX-License-Identifier: EPL-2.0

// Package audiotest holds synthetic streams shared by package tests.
package audiotest

import (
	"errors"
	"io"
	"math"

	"github.com/ik5/audsys/format"
)

// ErrInjected is the read error returned after FailAfter triggers.
var ErrInjected = errors.New("audiotest: injected read failure")

// MockSource generates samples from a waveform function. It satisfies
// audio.Stream without importing the audio package so that package's own
// tests can use it.
type MockSource struct {
	sampleRate int
	channels   int
	frames     int // total frames to generate
	generated  int
	waveform   func(frame, channel int) float32

	format    format.Format
	failAfter int
	closed    bool
}

// NewMockSource creates a source of frames frames. By default it describes
// itself as signed 16-bit little-endian PCM.
func NewMockSource(sampleRate, channels, frames int, waveform func(frame, channel int) float32) *MockSource {
	return &MockSource{
		sampleRate: sampleRate,
		channels:   channels,
		frames:     frames,
		waveform:   waveform,
		format:     format.NewPCM(float32(sampleRate), 16, channels, true, false, nil),
		failAfter:  -1,
	}
}

// NewSilentSource creates a source of zeros.
func NewSilentSource(sampleRate, channels, frames int) *MockSource {
	return NewMockSource(sampleRate, channels, frames, func(int, int) float32 { return 0 })
}

// NewSineSource creates a sine tone at frequency Hz on every channel.
func NewSineSource(sampleRate, channels, frames int, frequency float64) *MockSource {
	return NewMockSource(sampleRate, channels, frames, func(frame, _ int) float32 {
		t := float64(frame) / float64(sampleRate)
		return float32(math.Sin(2 * math.Pi * frequency * t))
	})
}

// NewConstantSource creates a source holding value everywhere.
func NewConstantSource(sampleRate, channels, frames int, value float32) *MockSource {
	return NewMockSource(sampleRate, channels, frames, func(int, int) float32 { return value })
}

// NewRampSource creates a source whose samples step through a sawtooth that
// survives 8-bit quantisation, handy for codec round trips.
func NewRampSource(sampleRate, channels, frames int) *MockSource {
	return NewMockSource(sampleRate, channels, frames, func(frame, channel int) float32 {
		return float32((frame+channel*7)%64-32) / 64
	})
}

// WithFormat makes the source report f. Sample rate and channels of f
// should match the source.
func (m *MockSource) WithFormat(f format.Format) *MockSource {
	m.format = f
	return m
}

// FailAfter makes reads return ErrInjected once frames frames were produced.
func (m *MockSource) FailAfter(frames int) *MockSource {
	m.failAfter = frames
	return m
}

func (m *MockSource) SampleRate() int              { return m.sampleRate }
func (m *MockSource) Channels() int                { return m.channels }
func (m *MockSource) BufSize() int                 { return 4096 }
func (m *MockSource) Format() format.Format        { return m.format }
func (m *MockSource) FrameLength() int64           { return int64(m.frames) }
func (m *MockSource) Closed() bool                 { return m.closed }
func (m *MockSource) Close() error                 { m.closed = true; return nil }
func (m *MockSource) Sample(frame, ch int) float32 { return m.waveform(frame, ch) }

// Reset rewinds the generator.
func (m *MockSource) Reset() {
	m.generated = 0
}

func (m *MockSource) ReadSamples(dst []float32) (int, error) {
	if m.failAfter >= 0 && m.generated >= m.failAfter {
		return 0, ErrInjected
	}
	if m.generated >= m.frames {
		return 0, io.EOF
	}

	count := min(len(dst)/m.channels, m.frames-m.generated)
	if m.failAfter >= 0 {
		count = min(count, m.failAfter-m.generated)
	}

	for f := range count {
		for ch := range m.channels {
			dst[f*m.channels+ch] = m.waveform(m.generated+f, ch)
		}
	}
	m.generated += count

	if m.generated >= m.frames {
		return count * m.channels, io.EOF
	}
	return count * m.channels, nil
}

// Reader is the sample-pulling half of a stream.
type Reader interface {
	ReadSamples(dst []float32) (int, error)
}

// Collect drains r and returns every sample it produced.
func Collect(r Reader) ([]float32, error) {
	var out []float32
	buf := make([]float32, 1024)
	for {
		n, err := r.ReadSamples(buf)
		out = append(out, buf[:n]...)
		if errors.Is(err, io.EOF) {
			return out, nil
		}
		if err != nil {
			return out, err
		}
	}
}
