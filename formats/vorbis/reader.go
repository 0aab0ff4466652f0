// SPDX-License-Identifier: EPL-2.0

package vorbis

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/jfreymuth/oggvorbis"

	"github.com/ik5/audsys/audio"
	"github.com/ik5/audsys/format"
	"github.com/ik5/audsys/spi"
)

// ErrNotOggFile indicates the input does not start with an Ogg page.
var ErrNotOggFile = errors.New("not an Ogg Vorbis file")

// oggReader is an interface for oggvorbis.Reader to allow testing
type oggReader interface {
	SampleRate() int
	Channels() int
	Read([]float32) (int, error)
}

// Reader is the Ogg Vorbis file reader provider. Decoded streams are
// 32-bit float PCM.
type Reader struct{}

func (Reader) Name() string { return "vorbis.Reader" }

func sniff(r io.Reader) error {
	var head [4]byte
	if _, err := io.ReadFull(r, head[:]); err != nil {
		return fmt.Errorf("%w: %w", ErrNotOggFile, err)
	}
	if string(head[:]) != "OggS" {
		return ErrNotOggFile
	}
	return nil
}

func open(rs io.ReadSeeker) (*oggvorbis.Reader, error) {
	if err := sniff(rs); err != nil {
		return nil, err
	}
	if _, err := rs.Seek(0, io.SeekStart); err != nil {
		return nil, err
	}

	dec, err := oggvorbis.NewReader(clamped{rs})
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrNotOggFile, err)
	}
	if dec.Channels() <= 0 || dec.SampleRate() <= 0 {
		return nil, ErrNotOggFile
	}
	return dec, nil
}

// clamped turns a seek before the start of the input into a seek to the
// start. oggvorbis looks for the last page one maximum page size before the
// end, which is out of range for short files.
type clamped struct {
	io.ReadSeeker
}

func (c clamped) Seek(offset int64, whence int) (int64, error) {
	if whence != io.SeekEnd || offset >= 0 {
		return c.ReadSeeker.Seek(offset, whence)
	}

	end, err := c.ReadSeeker.Seek(0, io.SeekEnd)
	if err != nil {
		return 0, err
	}
	return c.ReadSeeker.Seek(max(end+offset, 0), io.SeekStart)
}

// frames returns the length in sample frames. oggvorbis reports zero when it
// could not find the last granule position.
func frames(dec *oggvorbis.Reader) int64 {
	if dec.Length() <= 0 {
		return format.NotSpecified
	}
	return dec.Length()
}

// tags maps Vorbis comments onto descriptor properties. Comment names are
// case-insensitive and the first occurrence wins.
func tags(comments []string) format.Properties {
	props := format.Properties{}
	for _, c := range comments {
		key, value, ok := strings.Cut(c, "=")
		if !ok || value == "" {
			continue
		}

		var prop string
		switch strings.ToUpper(key) {
		case "TITLE":
			prop = format.PropTitle
		case "ARTIST":
			prop = format.PropAuthor
		case "COMMENT", "DESCRIPTION":
			prop = format.PropComment
		default:
			continue
		}
		if _, dup := props[prop]; !dup {
			props[prop] = value
		}
	}
	return props
}

func (Reader) Describe(rs io.ReadSeeker) spi.Outcome[*format.ExtendedFileFormat] {
	probe, err := spi.NewProbe(rs)
	if err != nil {
		return spi.Fail[*format.ExtendedFileFormat](err)
	}

	dec, err := open(probe)
	if err != nil {
		return spi.Classify[*format.ExtendedFileFormat](probe, err)
	}

	size, err := probe.Seek(0, io.SeekEnd)
	if err != nil {
		return spi.Fail[*format.ExtendedFileFormat](err)
	}

	rate := float32(dec.SampleRate())
	f := format.New(format.Vorbis, rate, format.NotSpecified, dec.Channels(),
		format.NotSpecified, rate, false, nil)

	n := frames(dec)
	props := tags(dec.CommentHeader().Comments)
	props[format.PropVBR] = true
	if nominal := dec.Bitrate().Nominal; nominal > 0 {
		props[format.PropBitrate] = nominal
	}
	if n > 0 {
		props[format.PropDuration] = n * 1_000_000 / int64(dec.SampleRate())
	}

	return spi.Ok(format.NewExtendedFileFormat(format.OGG, f, n, size, props))
}

func (Reader) Decode(rs io.ReadSeeker) spi.Outcome[audio.Stream] {
	probe, err := spi.NewProbe(rs)
	if err != nil {
		return spi.Fail[audio.Stream](err)
	}

	dec, err := open(probe)
	if err != nil {
		return spi.Classify[audio.Stream](probe, err)
	}

	src := newSource(dec)
	return spi.Ok(audio.NewStream(src, floatFormat(src.sampleRate, src.channels), frames(dec)))
}

func floatFormat(rate, channels int) format.Format {
	return format.New(format.PCMFloat, float32(rate), 32, channels, 4*channels, float32(rate), false, nil)
}

type source struct {
	dec        oggReader
	sampleRate int
	channels   int
}

func newSource(dec oggReader) *source {
	return &source{
		dec:        dec,
		sampleRate: dec.SampleRate(),
		channels:   dec.Channels(),
	}
}

func (s *source) SampleRate() int { return s.sampleRate }
func (s *source) Channels() int   { return s.channels }
func (s *source) Close() error    { return nil }
func (s *source) BufSize() int    { return 4096 }

// ReadSamples decodes straight into dst. oggvorbis counts values, not
// frames, and only ever returns whole frames.
func (s *source) ReadSamples(dst []float32) (int, error) {
	dst = dst[:len(dst)/s.channels*s.channels]
	if len(dst) == 0 {
		return 0, nil
	}

	n, err := s.dec.Read(dst)
	switch {
	case err == nil:
		return n, nil
	case errors.Is(err, io.EOF):
		return n, io.EOF
	default:
		return n, fmt.Errorf("decoding vorbis: %w", err)
	}
}
