// SPDX-License-Identifier: EPL-2.0

package rewind

import (
	"errors"
	"fmt"
	"io"
)

var (
	ErrInvalidWhence  = errors.New("rewind: invalid whence")
	ErrNegativeOffset = errors.New("rewind: negative position")
)

const chunkSize = 32 * 1024

// Reader is an io.ReadSeeker over a forward-only io.Reader. Every byte read
// from the source is kept so any earlier position can be revisited.
type Reader struct {
	src  io.Reader
	data []byte
	pos  int64
	eof  bool
	err  error // sticky source error other than io.EOF
}

// New returns a Reader over r.
func New(r io.Reader) *Reader {
	return &Reader{src: r}
}

// Wrap returns r itself when it can report its position, and a Reader
// otherwise. An *os.File over a pipe or terminal has a Seek method that
// always fails, so having the method is not enough.
func Wrap(r io.Reader) io.ReadSeeker {
	if rs, ok := r.(io.ReadSeeker); ok {
		if _, err := rs.Seek(0, io.SeekCurrent); err == nil {
			return rs
		}
	}
	return New(r)
}

// fill reads from the source until at least n bytes are buffered or the
// source is exhausted.
func (r *Reader) fill(n int64) error {
	for int64(len(r.data)) < n && !r.eof {
		if r.err != nil {
			return r.err
		}

		if cap(r.data)-len(r.data) < chunkSize {
			grown := make([]byte, len(r.data), 2*cap(r.data)+chunkSize)
			copy(grown, r.data)
			r.data = grown
		}

		m, err := r.src.Read(r.data[len(r.data):cap(r.data)])
		r.data = r.data[:len(r.data)+m]

		switch {
		case errors.Is(err, io.EOF):
			r.eof = true
		case err != nil:
			r.err = err
			return err
		}
	}
	return nil
}

func (r *Reader) Read(p []byte) (int, error) {
	if len(p) == 0 {
		return 0, nil
	}

	if err := r.fill(r.pos + int64(len(p))); err != nil && r.pos >= int64(len(r.data)) {
		return 0, err
	}
	if r.pos >= int64(len(r.data)) {
		return 0, io.EOF
	}

	n := copy(p, r.data[r.pos:])
	r.pos += int64(n)
	return n, nil
}

func (r *Reader) Seek(offset int64, whence int) (int64, error) {
	var abs int64
	switch whence {
	case io.SeekStart:
		abs = offset
	case io.SeekCurrent:
		abs = r.pos + offset
	case io.SeekEnd:
		if err := r.fill(1<<62 - 1); err != nil {
			return r.pos, fmt.Errorf("rewind: seeking to end: %w", err)
		}
		abs = int64(len(r.data)) + offset
	default:
		return r.pos, ErrInvalidWhence
	}

	if abs < 0 {
		return r.pos, ErrNegativeOffset
	}

	r.pos = abs
	return abs, nil
}

// Buffered returns the number of source bytes held in memory.
func (r *Reader) Buffered() int { return len(r.data) }

// Close closes the source when it is an io.Closer.
func (r *Reader) Close() error {
	if c, ok := r.src.(io.Closer); ok {
		return c.Close()
	}
	return nil
}
