// SPDX-License-Identifier: EPL-2.0

package mp3

import (
	"errors"
	"fmt"
	"io"

	gomp3 "github.com/hajimehoshi/go-mp3"

	"github.com/ik5/audsys/audio"
	"github.com/ik5/audsys/format"
	"github.com/ik5/audsys/internal/pcm"
	"github.com/ik5/audsys/spi"
)

// ErrNotMP3File indicates the input starts with neither an ID3 tag nor an
// MPEG audio frame.
var ErrNotMP3File = errors.New("not an MP3 file")

// go-mp3 always produces 16-bit little-endian stereo.
const (
	outChannels   = 2
	outFrameBytes = 4
)

var outLayout = pcm.Layout{Bits: 16, Signed: true}

// mp3Reader is an interface for gomp3.Decoder to allow testing
type mp3Reader interface {
	Read([]byte) (int, error)
	SampleRate() int
}

// Reader is the MP3 file reader provider. Decoded streams are 16-bit
// signed stereo PCM.
type Reader struct{}

func (Reader) Name() string { return "mp3.Reader" }

// sniff accepts an ID3v2 tag or an MPEG frame sync at the start of r.
func sniff(r io.Reader) error {
	var head [3]byte
	if _, err := io.ReadFull(r, head[:]); err != nil {
		return fmt.Errorf("%w: %w", ErrNotMP3File, err)
	}
	if string(head[:]) == "ID3" {
		return nil
	}
	if head[0] == 0xff && head[1]&0xe0 == 0xe0 {
		return nil
	}
	return ErrNotMP3File
}

func open(rs io.ReadSeeker) (*gomp3.Decoder, error) {
	if err := sniff(rs); err != nil {
		return nil, err
	}
	if _, err := rs.Seek(0, io.SeekStart); err != nil {
		return nil, err
	}

	dec, err := gomp3.NewDecoder(rs)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrNotMP3File, err)
	}
	return dec, nil
}

func pcmFormat(rate int) format.Format {
	return format.NewPCM(float32(rate), 16, outChannels, true, false, nil)
}

func frames(dec *gomp3.Decoder) int64 {
	if dec.Length() < 0 {
		return format.NotSpecified
	}
	return dec.Length() / outFrameBytes
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

	rate := dec.SampleRate()
	n := frames(dec)

	size, err := probe.Seek(0, io.SeekEnd)
	if err != nil {
		return spi.Fail[*format.ExtendedFileFormat](err)
	}

	f := format.New(format.MPEG1L3, float32(rate), format.NotSpecified, outChannels,
		format.NotSpecified, float32(rate), false, nil)

	var props format.Properties
	if n > 0 {
		micros := n * 1_000_000 / int64(rate)
		props = format.Properties{
			format.PropDuration: micros,
			format.PropBitrate:  int(size * 8 * 1_000_000 / micros),
		}
	}
	return spi.Ok(format.NewExtendedFileFormat(format.MP3, f, n, size, props))
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

	return spi.Ok(audio.NewStream(newSource(dec), pcmFormat(dec.SampleRate()), frames(dec)))
}

type source struct {
	*pcm.FrameReader

	sampleRate int
}

func newSource(dec mp3Reader) *source {
	return &source{
		FrameReader: pcm.NewFrameReader(dec, outLayout, outChannels),
		sampleRate:  dec.SampleRate(),
	}
}

func (s *source) SampleRate() int { return s.sampleRate }
func (s *source) Channels() int   { return outChannels }
func (s *source) Close() error    { return nil }
func (s *source) BufSize() int    { return 4096 }
