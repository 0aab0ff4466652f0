// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"fmt"
	"io"

	"github.com/ik5/audsys/internal/pcm"
	"github.com/ik5/audsys/internal/rewind"
)

// WriteWAV16 writes a mono 16-bit PCM WAV at sampleRate. samples must be int16 PCM.
func WriteWAV16(w io.Writer, sampleRate int, samples []int16) error {
	var buf rewind.Buffer
	if err := encode(&buf, &int16Source{rate: sampleRate, samples: samples}, 16); err != nil {
		return err
	}

	if _, err := buf.WriteTo(w); err != nil {
		return fmt.Errorf("%w", err)
	}
	return nil
}

// int16Source replays a slice of mono samples.
type int16Source struct {
	rate    int
	samples []int16
	pos     int
}

func (s *int16Source) SampleRate() int { return s.rate }
func (s *int16Source) Channels() int   { return 1 }
func (s *int16Source) BufSize() int    { return 4096 }
func (s *int16Source) Close() error    { return nil }

func (s *int16Source) ReadSamples(dst []float32) (int, error) {
	if s.pos >= len(s.samples) {
		return 0, io.EOF
	}

	n := copy16(dst, s.samples[s.pos:])
	s.pos += n
	return n, nil
}

func copy16(dst []float32, src []int16) int {
	n := min(len(dst), len(src))
	for i := range n {
		dst[i] = pcm.IntToFloat(int(src[i]), 16)
	}
	return n
}
