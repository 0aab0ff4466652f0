// SPDX-License-Identifier: EPL-2.0

package audsys

import (
	"fmt"
	"io"

	"github.com/ik5/audsys/audio"
	"github.com/ik5/audsys/internal/pcm"
)

// ResampleToMono16 is a high-level convenience function that resamples audio to a target
// sample rate, converts it to mono, and collects all samples as 16-bit PCM data.
//
// This function creates a processing pipeline:
//  1. Resamples the source audio to targetRate using cubic interpolation
//  2. Converts the resampled audio to mono by averaging channels
//  3. Reads all samples from the pipeline
//  4. Converts float32 samples to int16 PCM format
//
// bufferSize is the number of samples pulled per read; zero or less uses
// the source's own BufSize. The returned rate is always targetRate.
//
// Any decoded stream works as src:
//
//	stream, _ := audsys.DecodeFile("input.mp3")
//	pcm16, rate, err := audsys.ResampleToMono16(stream, 8000, 4096)
//	if err != nil {
//	    panic(err)
//	}
//	// pcm16 now contains mono 16-bit PCM at 8kHz
func ResampleToMono16(src audio.Source, targetRate int, bufferSize int) ([]int16, int, error) {
	if src == nil {
		return nil, targetRate, ErrNilArgument
	}
	if targetRate <= 0 {
		return nil, targetRate, fmt.Errorf("%w: sample rate %d", ErrConversionUnsupported, targetRate)
	}
	if bufferSize <= 0 {
		bufferSize = max(src.BufSize(), 1)
	}

	mono := audio.NewMonoMixer(audio.NewResampler(src, targetRate))

	// Start with about two seconds and grow as needed.
	pcm16 := make([]int16, 0, targetRate*2)
	buf := make([]float32, bufferSize)

	for {
		n, err := mono.ReadSamples(buf)
		for _, x := range buf[:n] {
			pcm16 = append(pcm16, pcm.Float32ToInt16(x))
		}

		if err == io.EOF {
			break
		}

		if err != nil {
			return nil, targetRate, fmt.Errorf("resampling to mono: %w", err)
		}
	}

	return pcm16, targetRate, nil
}
