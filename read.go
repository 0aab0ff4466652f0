// SPDX-License-Identifier: EPL-2.0

package audsys

import (
	"errors"
	"io"
	"io/fs"
	"os"

	"github.com/ik5/audsys/audio"
	"github.com/ik5/audsys/format"
	"github.com/ik5/audsys/internal/rewind"
	"github.com/ik5/audsys/spi"
)

const subjectStream = "audio stream"

// Describe identifies the audio file r holds. A reader that cannot seek is
// buffered, so every provider sees it from the same position.
func (s *System) Describe(r io.Reader) (*format.ExtendedFileFormat, error) {
	ff, err := s.describe(r)
	s.finish("describe", err)
	return ff, err
}

func (s *System) describe(r io.Reader) (*format.ExtendedFileFormat, error) {
	if r == nil {
		return nil, ErrNilArgument
	}

	return spi.DispatchStream(s.observer(), "describe", subjectStream, candidates[spi.FileReader](s), rewind.Wrap(r),
		func(p spi.FileReader, rs io.ReadSeeker) spi.Outcome[*format.ExtendedFileFormat] {
			return p.Describe(rs)
		})
}

// DescribeFile opens path, describes it and closes it again.
func (s *System) DescribeFile(path string) (*format.ExtendedFileFormat, error) {
	if path == "" {
		s.finish("describe", ErrNilArgument)
		return nil, ErrNilArgument
	}

	f, err := os.Open(path)
	if err != nil {
		err = spi.SourceNotFound(path, err)
		s.finish("describe", err)
		return nil, err
	}
	defer f.Close()

	return s.Describe(f)
}

// DescribeResource describes the file name of fsys through the registered
// resource readers.
func (s *System) DescribeResource(fsys fs.FS, name string) (*format.ExtendedFileFormat, error) {
	ff, err := s.describeResource(fsys, name)
	s.finish("describe", err)
	return ff, err
}

func (s *System) describeResource(fsys fs.FS, name string) (*format.ExtendedFileFormat, error) {
	if fsys == nil || name == "" {
		return nil, ErrNilArgument
	}

	return spi.Dispatch(s.observer(), "describe", "resource "+name, candidates[spi.ResourceReader](s),
		func(p spi.ResourceReader) spi.Outcome[*format.ExtendedFileFormat] {
			return p.DescribeResource(fsys, name)
		})
}

// Decode returns the decoded audio of r. The stream reads from r, so r must
// stay open until the stream is drained.
func (s *System) Decode(r io.Reader) (audio.Stream, error) {
	st, err := s.decode(r)
	s.finish("decode", err)
	return st, err
}

func (s *System) decode(r io.Reader) (audio.Stream, error) {
	if r == nil {
		return nil, ErrNilArgument
	}

	return spi.DispatchStream(s.observer(), "decode", subjectStream, candidates[spi.FileReader](s), rewind.Wrap(r),
		func(p spi.FileReader, rs io.ReadSeeker) spi.Outcome[audio.Stream] {
			return p.Decode(rs)
		})
}

// DecodeFile decodes path. Closing the stream closes the file.
func (s *System) DecodeFile(path string) (audio.Stream, error) {
	if path == "" {
		s.finish("decode", ErrNilArgument)
		return nil, ErrNilArgument
	}

	f, err := os.Open(path)
	if err != nil {
		err = spi.SourceNotFound(path, err)
		s.finish("decode", err)
		return nil, err
	}

	st, err := s.Decode(f)
	if err != nil {
		f.Close()
		return nil, err
	}
	return &fileStream{Stream: st, file: f}, nil
}

// DecodeResource decodes the file name of fsys through the registered
// resource readers. Closing the stream releases the resource.
func (s *System) DecodeResource(fsys fs.FS, name string) (audio.Stream, error) {
	st, err := s.decodeResource(fsys, name)
	s.finish("decode", err)
	return st, err
}

func (s *System) decodeResource(fsys fs.FS, name string) (audio.Stream, error) {
	if fsys == nil || name == "" {
		return nil, ErrNilArgument
	}

	return spi.Dispatch(s.observer(), "decode", "resource "+name, candidates[spi.ResourceReader](s),
		func(p spi.ResourceReader) spi.Outcome[audio.Stream] {
			return p.DecodeResource(fsys, name)
		})
}

type fileStream struct {
	audio.Stream

	file *os.File
}

func (s *fileStream) Close() error {
	return errors.Join(s.Stream.Close(), s.file.Close())
}
