// SPDX-License-Identifier: EPL-2.0

package audsys

import (
	"io"
	"os"

	"github.com/ik5/audsys/audio"
	"github.com/ik5/audsys/format"
	"github.com/ik5/audsys/spi"
)

// Write encodes stream as t into w, asking for the given quality. quality is
// clamped to [0, 1]. It returns the number of bytes written.
func (s *System) Write(stream audio.Stream, t format.Type, quality float32, w io.Writer) (int64, error) {
	return s.WriteWithProperties(stream, t, format.Properties{format.PropQuality: clampQuality(quality)}, w)
}

// WriteWithProperties encodes stream as t into w through the registered
// compression writers. Properties a writer does not know are ignored.
//
// When a writer fails after it started emitting bytes, w is left as it is.
func (s *System) WriteWithProperties(stream audio.Stream, t format.Type, props format.Properties, w io.Writer) (int64, error) {
	n, err := s.write(stream, t, props, w)
	s.finish("write", err)
	if err == nil {
		s.metrics.written(n)
	}
	return n, err
}

func (s *System) write(stream audio.Stream, t format.Type, props format.Properties, w io.Writer) (int64, error) {
	if stream == nil || t.IsZero() || w == nil {
		return 0, ErrNilArgument
	}

	return spi.Dispatch(s.observer(), "write", "file type "+t.Name(), candidates[spi.CompressionWriter](s),
		func(p spi.CompressionWriter) spi.Outcome[int64] {
			return p.Write(stream, t, props.Clone(), w)
		})
}

// countingFile counts the bytes that reach f. It seeks so writers can
// still patch their headers.
type countingFile struct {
	f *os.File
	n int64
}

func (c *countingFile) Write(p []byte) (int, error) {
	n, err := c.f.Write(p)
	c.n += int64(n)
	return n, err
}

func (c *countingFile) Seek(offset int64, whence int) (int64, error) {
	return c.f.Seek(offset, whence)
}

// WriteFile writes stream as t to a new file at path. The file is removed
// again when the write fails before any byte reached it. A file holding
// partial output is kept.
func (s *System) WriteFile(stream audio.Stream, t format.Type, quality float32, path string) (int64, error) {
	if stream == nil || t.IsZero() || path == "" {
		s.finish("write", ErrNilArgument)
		return 0, ErrNilArgument
	}

	f, err := os.Create(path)
	if err != nil {
		s.finish("write", err)
		return 0, err
	}

	cw := &countingFile{f: f}
	n, err := s.Write(stream, t, quality, cw)
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	if err != nil && cw.n == 0 {
		os.Remove(path)
	}
	return n, err
}

func clampQuality(q float32) float32 {
	// NaN compares false both ways and ends up as 0.
	if !(q > 0) {
		return 0
	}
	return min(q, 1)
}
