// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"io"
	"math"
	"testing"

	"github.com/ik5/audsys/format"
	"github.com/ik5/audsys/internal/audiotest"
)

// plainSource is a Source without format information.
type plainSource struct {
	rate, channels int
}

func (p plainSource) SampleRate() int                    { return p.rate }
func (p plainSource) Channels() int                      { return p.channels }
func (p plainSource) BufSize() int                       { return 1024 }
func (p plainSource) Close() error                       { return nil }
func (p plainSource) ReadSamples([]float32) (int, error) { return 0, io.EOF }

func TestMonoMixer_Average(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		channels int
		value    func(ch int) float32
		want     float32
	}{
		{"mono passthrough", 1, func(int) float32 { return 0.5 }, 0.5},
		{"stereo", 2, func(ch int) float32 { return 0.4 + 0.2*float32(ch) }, 0.5},
		{"quad", 4, func(ch int) float32 { return float32(ch) / 10 }, 0.15},
		{"5.1", 6, func(int) float32 { return 0.5 }, 0.5},
		{"octo", 8, func(ch int) float32 { return float32(ch) * 0.1 }, 0.35},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			src := audiotest.NewMockSource(8000, tt.channels, 100, func(_, ch int) float32 { return tt.value(ch) })
			m := NewMonoMixer(src)

			if m.Channels() != 1 {
				t.Fatalf("Channels() = %d, want 1", m.Channels())
			}

			buf := make([]float32, 10)
			n, err := m.ReadSamples(buf)
			if err != nil {
				t.Fatalf("ReadSamples() error = %v", err)
			}
			if n != 10 {
				t.Fatalf("ReadSamples() n = %d, want 10", n)
			}
			for i := range n {
				if math.Abs(float64(buf[i]-tt.want)) > 0.001 {
					t.Errorf("buf[%d] = %v, want %v", i, buf[i], tt.want)
				}
			}
		})
	}
}

func TestMonoMixer_Format(t *testing.T) {
	t.Parallel()

	src := audiotest.NewSilentSource(44100, 2, 100)
	m := NewMonoMixer(src)

	f := m.Format()
	if f.Channels() != 1 {
		t.Errorf("Format().Channels() = %d, want 1", f.Channels())
	}
	if f.FrameSize() != 2 {
		t.Errorf("Format().FrameSize() = %d, want 2", f.FrameSize())
	}
	if f.Encoding() != format.PCMSigned {
		t.Errorf("Format().Encoding() = %v, want PCM_SIGNED", f.Encoding())
	}
	if m.FrameLength() != 100 {
		t.Errorf("FrameLength() = %d, want 100", m.FrameLength())
	}
	if m.SampleRate() != 44100 || m.BufSize() != src.BufSize() {
		t.Errorf("metadata not carried over: rate=%d bufsize=%d", m.SampleRate(), m.BufSize())
	}
}

func TestMonoMixer_EOF(t *testing.T) {
	t.Parallel()

	m := NewMonoMixer(audiotest.NewSilentSource(8000, 2, 5))

	buf := make([]float32, 10)
	n, err := m.ReadSamples(buf)
	if err != io.EOF || n != 5 {
		t.Errorf("ReadSamples() = (%d, %v), want (5, io.EOF)", n, err)
	}

	n, err = m.ReadSamples(buf)
	if err != io.EOF || n != 0 {
		t.Errorf("second ReadSamples() = (%d, %v), want (0, io.EOF)", n, err)
	}
}

func TestMonoMixer_EmptyBuffer(t *testing.T) {
	t.Parallel()

	m := NewMonoMixer(audiotest.NewSilentSource(8000, 2, 100))

	n, err := m.ReadSamples(nil)
	if n != 0 || err != nil {
		t.Errorf("ReadSamples(nil) = (%d, %v), want (0, nil)", n, err)
	}
}

func TestMonoMixer_LargeBuffer(t *testing.T) {
	t.Parallel()

	m := NewMonoMixer(audiotest.NewSineSource(8000, 2, 8000, 440.0))

	samples, err := audiotest.Collect(m)
	if err != nil {
		t.Fatalf("Collect() error = %v", err)
	}
	if len(samples) != 8000 {
		t.Errorf("got %d samples, want 8000", len(samples))
	}

	buf := make([]float32, 16384)
	m = NewMonoMixer(audiotest.NewSineSource(8000, 2, 8000, 440.0))
	if n, _ := m.ReadSamples(buf); n != 8000 {
		t.Errorf("ReadSamples() n = %d, want 8000", n)
	}
}

func TestMonoMixer_Close(t *testing.T) {
	t.Parallel()

	src := audiotest.NewSilentSource(8000, 2, 1000)
	if err := NewMonoMixer(src).Close(); err != nil {
		t.Fatalf("Close() error = %v", err)
	}
	if !src.Closed() {
		t.Error("Close() did not close the source")
	}
}

func TestMonoMixer_ZeroAllocs(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping allocation test in short mode")
	}

	src := audiotest.NewSineSource(8000, 2, 1_000_000, 440.0)
	m := NewMonoMixer(src)
	buf := make([]float32, 4096)

	_, _ = m.ReadSamples(buf)

	allocs := testing.AllocsPerRun(100, func() {
		src.Reset()
		_, _ = m.ReadSamples(buf)
	})
	if allocs > 0 {
		t.Errorf("ReadSamples() allocated %v times, want 0", allocs)
	}
}

func BenchmarkMonoMixer_StereoToMono(b *testing.B) {
	src := audiotest.NewSineSource(8000, 2, 100000, 440.0)
	m := NewMonoMixer(src)
	buf := make([]float32, 4096)

	b.ResetTimer()
	b.ReportAllocs()

	for b.Loop() {
		src.Reset()
		for {
			if _, err := m.ReadSamples(buf); err != nil {
				break
			}
		}
	}
}

func BenchmarkMonoMixer_ManyChannels(b *testing.B) {
	src := audiotest.NewConstantSource(8000, 16, 100000, 0.0625)
	m := NewMonoMixer(src)
	buf := make([]float32, 4096)

	b.ResetTimer()
	b.ReportAllocs()

	for b.Loop() {
		src.Reset()
		for {
			if _, err := m.ReadSamples(buf); err != nil {
				break
			}
		}
	}
}
