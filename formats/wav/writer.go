// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"fmt"
	"io"

	goaudio "github.com/go-audio/audio"
	"github.com/go-audio/wav"

	"github.com/ik5/audsys/audio"
	"github.com/ik5/audsys/format"
	"github.com/ik5/audsys/internal/pcm"
	"github.com/ik5/audsys/internal/rewind"
	"github.com/ik5/audsys/spi"
)

const writeBufferFrames = 4096

// Writer is the WAVE file writer provider. It stores integer PCM only:
// unsigned 8-bit or signed 16, 24 and 32-bit, little-endian.
type Writer struct{}

func (Writer) Name() string { return "wav.Writer" }

func (Writer) Types() []format.Type {
	return []format.Type{format.WAVE}
}

func (Writer) TypesFor(s audio.Stream) []format.Type {
	if !writable(s.Format()) {
		return []format.Type{}
	}
	return []format.Type{format.WAVE}
}

func writable(f format.Format) bool {
	bits := f.SampleSizeInBits()
	switch f.Encoding() {
	case format.PCMSigned:
		return bits > 8 && pcm.ValidBitDepth(bits)
	case format.PCMUnsigned:
		return bits == 8
	default:
		return false
	}
}

func (Writer) Write(s audio.Stream, t format.Type, sink io.Writer) spi.Outcome[int64] {
	if t != format.WAVE {
		return spi.Rejectf[int64]("WAV writer cannot produce %s", t)
	}

	f := s.Format()
	if !writable(f) {
		return spi.Rejectf[int64]("WAV writer cannot store %s", f)
	}

	var buf rewind.Buffer
	if err := encode(&buf, s, f.SampleSizeInBits()); err != nil {
		return spi.Fail[int64](err)
	}

	n, err := buf.WriteTo(sink)
	if err != nil {
		return spi.Fail[int64](fmt.Errorf("writing WAV file: %w", err))
	}
	return spi.Ok(n)
}

// encode runs the go-audio encoder over s. The encoder patches its header
// by seeking, so it writes into memory.
func encode(ws io.WriteSeeker, s audio.Source, bits int) error {
	channels := s.Channels()
	enc := wav.NewEncoder(ws, s.SampleRate(), bits, channels, formatPCM)

	// An empty first buffer emits the headers even for silent streams.
	empty := &goaudio.IntBuffer{
		Format: &goaudio.Format{NumChannels: channels, SampleRate: s.SampleRate()},
		Data:   []int{},
	}
	if err := enc.Write(empty); err != nil {
		return fmt.Errorf("writing WAV header: %w", err)
	}

	l := pcm.Layout{Bits: bits, Signed: bits > 8}
	if _, err := pcm.WriteInts(enc, s, s.SampleRate(), l, writeBufferFrames); err != nil {
		return fmt.Errorf("writing WAV data: %w", err)
	}

	if err := enc.Close(); err != nil {
		return fmt.Errorf("closing WAV file: %w", err)
	}
	return nil
}
