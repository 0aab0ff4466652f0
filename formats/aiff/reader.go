// SPDX-License-Identifier: EPL-2.0

package aiff

import (
	"io"

	"github.com/go-audio/aiff"

	"github.com/ik5/audsys/audio"
	"github.com/ik5/audsys/format"
	"github.com/ik5/audsys/internal/pcm"
	"github.com/ik5/audsys/spi"
)

// Reader is the AIFF and AIFF-C file reader provider.
type Reader struct{}

func (Reader) Name() string { return "aiff.Reader" }

type parsed struct {
	header header
	layout pcm.Layout
	format format.Format
}

func parse(rs io.ReadSeeker) (parsed, error) {
	h, err := readHeader(rs)
	if err != nil {
		return parsed{}, err
	}

	l, err := h.layout()
	if err != nil {
		return parsed{}, err
	}
	return parsed{header: h, layout: l, format: h.format(l)}, nil
}

func (p parsed) fileFormat() *format.ExtendedFileFormat {
	props := format.Properties{
		format.PropDuration: int64(float64(p.header.frames) * 1_000_000 / p.header.sampleRate),
	}
	return format.NewExtendedFileFormat(p.header.fileType(), p.format, p.header.frames, p.header.fileSize, props)
}

func (p parsed) dataSize() int64 {
	return p.header.frames * int64(p.format.FrameSize())
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

	var samples pcm.SampleReader
	if p.header.form == formAIFF && p.header.frames > 0 {
		samples, err = goaudioSamples(probe, p)
	} else {
		samples, err = rawSamples(probe, p)
	}
	if err != nil {
		return spi.Classify[audio.Stream](probe, err)
	}

	src := &source{
		SampleReader: samples,
		sampleRate:   int(p.header.sampleRate),
		channels:     p.header.channels,
	}
	return spi.Ok(audio.NewStream(src, p.format, p.header.frames))
}

// goaudioSamples decodes plain AIFF through go-audio. The decoder sees the
// file only up to the end of the sample data.
func goaudioSamples(rs io.ReadSeeker, p parsed) (pcm.SampleReader, error) {
	if _, err := rs.Seek(0, io.SeekStart); err != nil {
		return nil, err
	}

	dec := aiff.NewDecoder(&section{rs: rs, end: p.header.dataStart + p.dataSize()})
	if !dec.IsValidFile() {
		return nil, ErrNotAiffFile
	}
	dec.ReadInfo()

	return pcm.NewIntReader(dec, p.layout, p.header.channels), nil
}

// rawSamples unpacks AIFF-C data, whose compression types go-audio does
// not handle.
func rawSamples(rs io.ReadSeeker, p parsed) (pcm.SampleReader, error) {
	if _, err := rs.Seek(p.header.dataStart, io.SeekStart); err != nil {
		return nil, err
	}

	data := io.LimitReader(rs, p.dataSize())
	return pcm.NewFrameReader(data, p.layout, p.header.channels), nil
}

// section is a ReadSeeker that ends at a fixed offset.
type section struct {
	rs  io.ReadSeeker
	pos int64
	end int64
}

func (s *section) Read(b []byte) (int, error) {
	if s.pos >= s.end {
		return 0, io.EOF
	}
	if int64(len(b)) > s.end-s.pos {
		b = b[:s.end-s.pos]
	}

	n, err := s.rs.Read(b)
	s.pos += int64(n)
	return n, err
}

func (s *section) Seek(offset int64, whence int) (int64, error) {
	if whence == io.SeekEnd {
		offset += s.end
		whence = io.SeekStart
	}

	abs, err := s.rs.Seek(offset, whence)
	if err != nil {
		return s.pos, err
	}
	s.pos = abs
	return abs, nil
}

type source struct {
	pcm.SampleReader

	sampleRate int
	channels   int
}

func (s *source) SampleRate() int { return s.sampleRate }
func (s *source) Channels() int   { return s.channels }
func (s *source) BufSize() int    { return 4096 }
func (s *source) Close() error    { return nil }
