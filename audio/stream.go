// SPDX-License-Identifier: EPL-2.0

package audio

import "github.com/ik5/audsys/format"

type stream struct {
	Source

	format      format.Format
	frameLength int64
}

// NewStream attaches a format and a frame length to src. The sample rate and
// channel count of f must agree with src.
func NewStream(src Source, f format.Format, frameLength int64) Stream {
	if s, ok := src.(*stream); ok {
		src = s.Source
	}

	return &stream{
		Source:      src,
		format:      f,
		frameLength: frameLength,
	}
}

func (s *stream) Format() format.Format { return s.format }
func (s *stream) FrameLength() int64    { return s.frameLength }

// Relabel returns s described as f. Samples are untouched, so only the
// encoding, sample size and byte order may differ.
func Relabel(s Stream, f format.Format) (Stream, error) {
	src := s.Format()
	if int(f.SampleRate()) != s.SampleRate() || f.Channels() != s.Channels() {
		return nil, ErrLayoutMismatch
	}
	if !src.Encoding().IsPCM() || !f.Encoding().IsPCM() {
		return nil, ErrLayoutMismatch
	}

	return NewStream(s, f, s.FrameLength()), nil
}
