// SPDX-License-Identifier: EPL-2.0

package au

import (
	"fmt"
	"io"

	"github.com/ik5/audsys/audio"
	"github.com/ik5/audsys/format"
	"github.com/ik5/audsys/internal/pcm"
	"github.com/ik5/audsys/spi"
)

const writeBufferFrames = 4096

// Writer is the AU file writer provider. Output to an io.WriteSeeker gets
// its data size patched into the header; other sinks carry the "unknown
// size" marker.
type Writer struct{}

func (Writer) Name() string { return "au.Writer" }

func (Writer) Types() []format.Type {
	return []format.Type{format.AU}
}

func (Writer) TypesFor(s audio.Stream) []format.Type {
	if _, ok := code(s.Format()); !ok {
		return []format.Type{}
	}
	return []format.Type{format.AU}
}

func (w Writer) Write(s audio.Stream, t format.Type, sink io.Writer) spi.Outcome[int64] {
	if t != format.AU {
		return spi.Rejectf[int64]("AU writer cannot produce %s", t)
	}

	f := s.Format()
	enc, ok := code(f)
	if !ok {
		return spi.Rejectf[int64]("AU writer cannot store %s", f)
	}
	l, _ := layout(enc)

	h := header{
		dataOffset: headerSize,
		dataSize:   unknownSize,
		encoding:   enc,
		sampleRate: uint32(s.SampleRate()),
		channels:   uint32(s.Channels()),
	}

	var start int64
	ws, seekable := sink.(io.WriteSeeker)
	if seekable {
		pos, err := ws.Seek(0, io.SeekCurrent)
		if err != nil {
			seekable = false
		}
		start = pos
	}

	var raw [headerSize]byte
	h.put(raw[:])
	n, err := sink.Write(raw[:])
	if err != nil {
		return spi.Fail[int64](fmt.Errorf("writing AU header: %w", err))
	}
	total := int64(n)

	m, err := pcm.WriteFrames(sink, s, l, writeBufferFrames)
	total += m
	if err != nil {
		return spi.Fail[int64](fmt.Errorf("writing AU data: %w", err))
	}

	if seekable && m < unknownSize {
		if err := patchSize(ws, start, total, uint32(m)); err != nil {
			return spi.Fail[int64](err)
		}
	}

	return spi.Ok(total)
}

func patchSize(ws io.WriteSeeker, start, total int64, size uint32) error {
	var raw [4]byte
	raw[0], raw[1], raw[2], raw[3] = byte(size>>24), byte(size>>16), byte(size>>8), byte(size)

	if _, err := ws.Seek(start+8, io.SeekStart); err != nil {
		return fmt.Errorf("patching AU header: %w", err)
	}
	if _, err := ws.Write(raw[:]); err != nil {
		return fmt.Errorf("patching AU header: %w", err)
	}
	if _, err := ws.Seek(start+total, io.SeekStart); err != nil {
		return fmt.Errorf("patching AU header: %w", err)
	}
	return nil
}
