// SPDX-License-Identifier: EPL-2.0

package au

import (
	"errors"
	"fmt"
	"io"

	"github.com/ik5/audsys/audio"
	"github.com/ik5/audsys/format"
	"github.com/ik5/audsys/internal/pcm"
	"github.com/ik5/audsys/spi"
)

// Reader is the AU file reader provider.
type Reader struct{}

func (Reader) Name() string { return "au.Reader" }

type parsed struct {
	header header
	layout pcm.Layout
	format format.Format
}

func parse(r io.Reader) (parsed, error) {
	h, err := readHeader(r)
	if err != nil {
		return parsed{}, err
	}

	l, ok := layout(h.encoding)
	if !ok {
		return parsed{}, fmt.Errorf("%w: code %d", ErrUnsupportedEncoding, h.encoding)
	}

	return parsed{header: h, layout: l, format: h.format(l)}, nil
}

func (p parsed) fileFormat() *format.ExtendedFileFormat {
	frames, bytes := int64(format.NotSpecified), int64(format.NotSpecified)
	if p.header.dataSize != unknownSize {
		frames = int64(p.header.dataSize) / int64(p.format.FrameSize())
		bytes = int64(p.header.dataOffset) + int64(p.header.dataSize)
	}

	var props format.Properties
	if frames != format.NotSpecified {
		props = format.Properties{
			format.PropDuration: frames * 1_000_000 / int64(p.header.sampleRate),
		}
	}
	return format.NewExtendedFileFormat(format.AU, p.format, frames, bytes, props)
}

func (Reader) Describe(rs io.ReadSeeker) spi.Outcome[*format.ExtendedFileFormat] {
	probe, err := spi.NewProbe(rs)
	if err != nil {
		return spi.Fail[*format.ExtendedFileFormat](err)
	}

	p, err := parse(probe)
	if err != nil {
		return spi.Classify[*format.ExtendedFileFormat](probe, err)
	}
	return spi.Ok(p.fileFormat())
}

func (Reader) Decode(rs io.ReadSeeker) spi.Outcome[audio.Stream] {
	probe, err := spi.NewProbe(rs)
	if err != nil {
		return spi.Fail[audio.Stream](err)
	}

	p, err := parse(probe)
	if err != nil {
		return spi.Classify[audio.Stream](probe, err)
	}

	skip := int64(p.header.dataOffset) - headerSize
	if _, err := io.CopyN(io.Discard, probe, skip); err != nil {
		if probe.Err() != nil {
			return spi.Fail[audio.Stream](probe.Err())
		}
		if !errors.Is(err, io.EOF) {
			return spi.Fail[audio.Stream](err)
		}
		return spi.Reject[audio.Stream]("AU data offset beyond end of input")
	}

	var data io.Reader = rs
	if p.header.dataSize != unknownSize {
		data = io.LimitReader(rs, int64(p.header.dataSize))
	}

	ff := p.fileFormat()
	src := &source{
		FrameReader: pcm.NewFrameReader(data, p.layout, int(p.header.channels)),
		sampleRate:  int(p.header.sampleRate),
		channels:    int(p.header.channels),
	}
	return spi.Ok(audio.NewStream(src, p.format, ff.FrameLengthLong()))
}

type source struct {
	*pcm.FrameReader

	sampleRate int
	channels   int
}

func (s *source) SampleRate() int { return s.sampleRate }
func (s *source) Channels() int   { return s.channels }
func (s *source) BufSize() int    { return 4096 }
func (s *source) Close() error    { return nil }
