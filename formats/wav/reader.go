// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"io"

	"github.com/go-audio/wav"

	"github.com/ik5/audsys/audio"
	"github.com/ik5/audsys/format"
	"github.com/ik5/audsys/internal/pcm"
	"github.com/ik5/audsys/spi"
)

const formatPCM = 1

// Reader is the WAVE file reader provider.
type Reader struct{}

func (Reader) Name() string { return "wav.Reader" }

type parsed struct {
	dec      *wav.Decoder
	riffSize int64
	format   format.Format
	frames   int64
}

// riffSize checks the RIFF/WAVE magic and returns the declared file size.
func riffSize(r io.Reader) (int64, error) {
	var head [12]byte
	if _, err := io.ReadFull(r, head[:]); err != nil {
		return 0, fmt.Errorf("%w: %w", ErrNotWavFile, err)
	}
	if !bytes.Equal(head[0:4], []byte("RIFF")) || !bytes.Equal(head[8:12], []byte("WAVE")) {
		return 0, ErrNotWavFile
	}
	return int64(binary.LittleEndian.Uint32(head[4:8])) + 8, nil
}

// parse leaves rs positioned at the first sample.
func parse(rs io.ReadSeeker) (parsed, error) {
	size, err := riffSize(rs)
	if err != nil {
		return parsed{}, err
	}
	if _, err := rs.Seek(0, io.SeekStart); err != nil {
		return parsed{}, err
	}

	dec := wav.NewDecoder(rs)
	dec.ReadInfo()
	if err := dec.Err(); err != nil {
		return parsed{}, fmt.Errorf("%w: %w", ErrNotWavFile, err)
	}

	bits := int(dec.BitDepth)
	if dec.WavAudioFormat != formatPCM || dec.NumChans == 0 || dec.SampleRate == 0 || !pcm.ValidBitDepth(bits) {
		return parsed{}, fmt.Errorf("%w: format %d, %d bit, %d channels",
			ErrUnsupportedWavLayout, dec.WavAudioFormat, bits, dec.NumChans)
	}

	if err := dec.FwdToPCM(); err != nil || dec.PCMChunk == nil {
		return parsed{}, ErrMissingData
	}

	channels := int(dec.NumChans)
	frames := int64(dec.PCMSize / (bits / 8 * channels))
	// The chunk reader is the whole file; keep trailing chunks out of the samples.
	dec.PCMChunk.R = fullReader{io.LimitReader(dec.PCMChunk.R, frames*int64(bits/8*channels))}

	f := format.NewPCM(float32(dec.SampleRate), bits, channels, bits > 8, false, metadata(dec))
	return parsed{dec: dec, riffSize: size, format: f, frames: frames}, nil
}

func metadata(dec *wav.Decoder) format.Properties {
	if dec.Metadata == nil {
		return nil
	}

	props := format.Properties{}
	if dec.Metadata.Title != "" {
		props[format.PropTitle] = dec.Metadata.Title
	}
	if dec.Metadata.Artist != "" {
		props[format.PropAuthor] = dec.Metadata.Artist
	}
	if dec.Metadata.Comments != "" {
		props[format.PropComment] = dec.Metadata.Comments
	}
	if len(props) == 0 {
		return nil
	}
	return props
}

func (p parsed) fileFormat() *format.ExtendedFileFormat {
	props := format.Properties{
		format.PropDuration: p.frames * 1_000_000 / int64(p.format.SampleRate()),
	}
	return format.NewExtendedFileFormat(format.WAVE, p.format, p.frames, p.riffSize, props)
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

	bits := p.format.SampleSizeInBits()
	l := pcm.Layout{Bits: bits, Signed: bits > 8}

	src := &source{
		IntReader:  pcm.NewIntReader(p.dec, l, p.format.Channels()),
		sampleRate: int(p.dec.SampleRate),
		channels:   p.format.Channels(),
	}
	return spi.Ok(audio.NewStream(src, p.format, p.frames))
}

// fullReader fills every read it can. The go-audio decoder drops a sample
// split across two short reads.
type fullReader struct{ r io.Reader }

func (f fullReader) Read(p []byte) (int, error) {
	n, err := io.ReadFull(f.r, p)
	if errors.Is(err, io.ErrUnexpectedEOF) {
		err = nil
	}
	return n, err
}

type source struct {
	*pcm.IntReader

	sampleRate int
	channels   int
}

func (s *source) SampleRate() int { return s.sampleRate }
func (s *source) Channels() int   { return s.channels }
func (s *source) BufSize() int    { return 4096 }
func (s *source) Close() error    { return nil }
