// SPDX-License-Identifier: EPL-2.0

package aiff

import (
	"fmt"
	"io"

	"github.com/go-audio/aiff"
	goaudio "github.com/go-audio/audio"

	"github.com/ik5/audsys/audio"
	"github.com/ik5/audsys/format"
	"github.com/ik5/audsys/internal/pcm"
	"github.com/ik5/audsys/internal/rewind"
	"github.com/ik5/audsys/spi"
)

const writeBufferFrames = 4096

// Writer is the AIFF file writer provider. It stores signed 8, 16, 24 and
// 32-bit PCM, big-endian.
type Writer struct{}

func (Writer) Name() string { return "aiff.Writer" }

func (Writer) Types() []format.Type {
	return []format.Type{format.AIFF}
}

func (Writer) TypesFor(s audio.Stream) []format.Type {
	if !writable(s.Format()) {
		return []format.Type{}
	}
	return []format.Type{format.AIFF}
}

func writable(f format.Format) bool {
	return f.Encoding() == format.PCMSigned && pcm.ValidBitDepth(f.SampleSizeInBits())
}

func (Writer) Write(s audio.Stream, t format.Type, sink io.Writer) spi.Outcome[int64] {
	if t != format.AIFF {
		return spi.Rejectf[int64]("AIFF writer cannot produce %s", t)
	}

	f := s.Format()
	if !writable(f) {
		return spi.Rejectf[int64]("AIFF writer cannot store %s", f)
	}

	var buf rewind.Buffer
	if err := encode(&buf, s, f.SampleSizeInBits()); err != nil {
		return spi.Fail[int64](err)
	}

	n, err := buf.WriteTo(sink)
	if err != nil {
		return spi.Fail[int64](fmt.Errorf("writing AIFF file: %w", err))
	}
	return spi.Ok(n)
}

// encode runs the go-audio encoder over s. The encoder patches its header
// by seeking, so it writes into memory.
func encode(ws io.WriteSeeker, s audio.Source, bits int) error {
	channels := s.Channels()
	enc := aiff.NewEncoder(ws, s.SampleRate(), bits, channels)

	// An empty first buffer emits the headers even for silent streams.
	empty := &goaudio.IntBuffer{
		Format: &goaudio.Format{NumChannels: channels, SampleRate: s.SampleRate()},
		Data:   []int{},
	}
	if err := enc.Write(empty); err != nil {
		return fmt.Errorf("writing AIFF header: %w", err)
	}

	l := pcm.Layout{Bits: bits, Signed: true, BigEndian: true}
	if _, err := pcm.WriteInts(enc, s, s.SampleRate(), l, writeBufferFrames); err != nil {
		return fmt.Errorf("writing AIFF data: %w", err)
	}

	if err := enc.Close(); err != nil {
		return fmt.Errorf("closing AIFF file: %w", err)
	}
	return nil
}
